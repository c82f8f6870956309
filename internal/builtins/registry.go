// Package builtins implements the fixed table of language primitives
// described in spec.md §4.2: arithmetic, comparison, string, I/O, and
// type-test operators, each with a declared arity contract.
package builtins

import (
	"bufio"
	"io"

	"github.com/mattholt/prefixlang/internal/ast"
	"github.com/mattholt/prefixlang/internal/ierrors"
	"github.com/mattholt/prefixlang/internal/value"
)

// Host is the narrow slice of interpreter behavior a handful of builtins
// (MAIN, EXIT, IMPORT) need, kept separate from
// extension.Host so this package never imports internal/interp.
type Host interface {
	IsMainModule() bool
	Import(path string) *ierrors.Error
	Exit(code int)
}

// Context is passed to every builtin call: the environment in effect at
// the call site, its source position, I/O streams, and the host.
type Context struct {
	Env    *value.Environment
	Line   int
	Col    int
	Stdout io.Writer
	Stdin  *bufio.Reader
	Host   Host
}

// Errf is a convenience constructor for a Kind error at the context's
// call-site position.
func (c *Context) Errf(kind ierrors.Kind, format string, args ...any) *ierrors.Error {
	return ierrors.New(kind, c.Line, c.Col, format, args...)
}

// Func is a builtin's implementation. args and nodes are parallel
// slices: nodes holds the original, unevaluated AST for each argument,
// needed by DEL/EXIST which never evaluate their operand.
type Func func(ctx *Context, args []value.Value, nodes []ast.Expr) (value.Value, *ierrors.Error)

// Builtin describes one operator's arity contract and implementation.
// MaxArgs of -1 means unbounded.
type Builtin struct {
	Name    string
	MinArgs int
	MaxArgs int
	// Raw is true for operators (DEL, EXIST) whose arguments the
	// evaluator must not evaluate before dispatch (spec.md §4.3).
	Raw bool
	Fn  Func
}

// Table is the fixed name -> Builtin map. It is built once at package
// init and never mutated at runtime, unlike the extension operator
// table.
var Table = map[string]*Builtin{}

func register(b *Builtin) {
	Table[b.Name] = b
}

// Lookup returns the builtin registered under name, if any.
func Lookup(name string) (*Builtin, bool) {
	b, ok := Table[name]
	return b, ok
}

// CheckArity reports an Arity error if got does not satisfy [min, max]
// (max == -1 meaning unbounded).
func CheckArity(b *Builtin, got int, line, col int) *ierrors.Error {
	if got < b.MinArgs || (b.MaxArgs >= 0 && got > b.MaxArgs) {
		return ierrors.New(ierrors.Arity, line, col,
			"%s expects between %d and %d arguments, got %d", b.Name, b.MinArgs, b.MaxArgs, got)
	}
	return nil
}
