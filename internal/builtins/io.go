package builtins

import (
	"fmt"
	"strings"

	"github.com/mattholt/prefixlang/internal/ast"
	"github.com/mattholt/prefixlang/internal/ierrors"
	"github.com/mattholt/prefixlang/internal/value"
)

func init() {
	register(&Builtin{Name: "PRINT", MinArgs: 0, MaxArgs: -1, Fn: printOp})
	register(&Builtin{Name: "INPUT", MinArgs: 0, MaxArgs: 1, Fn: inputOp})
}

// printOp emits each argument in its displayed form separated by spaces,
// then a newline (spec.md §4.2).
func printOp(ctx *Context, args []value.Value, nodes []ast.Expr) (value.Value, *ierrors.Error) {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = a.String()
	}
	fmt.Fprintln(ctx.Stdout, strings.Join(parts, " "))
	return value.Null, nil
}

// inputOp optionally prints a prompt, then reads a line, trimming a
// single trailing newline (spec.md §4.2).
func inputOp(ctx *Context, args []value.Value, nodes []ast.Expr) (value.Value, *ierrors.Error) {
	if len(args) == 1 {
		s, err := requireStr(ctx, args[0])
		if err != nil {
			return value.Null, err
		}
		fmt.Fprint(ctx.Stdout, s)
	}
	if ctx.Stdin == nil {
		return value.Str(""), nil
	}
	line, readErr := ctx.Stdin.ReadString('\n')
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	if readErr != nil && line == "" {
		return value.Str(""), nil
	}
	return value.Str(line), nil
}
