package builtins

import (
	"github.com/mattholt/prefixlang/internal/ast"
	"github.com/mattholt/prefixlang/internal/ierrors"
	"github.com/mattholt/prefixlang/internal/value"
)

func init() {
	register(&Builtin{Name: "CDIV", MinArgs: 2, MaxArgs: 2, Fn: ceilDiv})
}

// ceilDiv implements CDIV: Int/Int -> ceiling of the integer quotient.
func ceilDiv(ctx *Context, args []value.Value, nodes []ast.Expr) (value.Value, *ierrors.Error) {
	a, b := args[0], args[1]
	if a.Tag != value.TagInt || b.Tag != value.TagInt {
		return value.Null, ctx.Errf(ierrors.Type, "CDIV requires integer arguments")
	}
	if b.I == 0 {
		return value.Null, ctx.Errf(ierrors.Arithmetic, "division by zero")
	}
	q := a.I / b.I
	r := a.I % b.I
	if r != 0 && (r > 0) == (b.I > 0) {
		q++
	}
	return value.Int(q), nil
}
