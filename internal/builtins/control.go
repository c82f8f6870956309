package builtins

import (
	"github.com/mattholt/prefixlang/internal/ast"
	"github.com/mattholt/prefixlang/internal/ierrors"
	"github.com/mattholt/prefixlang/internal/value"
)

func init() {
	register(&Builtin{Name: "ASSERT", MinArgs: 1, MaxArgs: 2, Fn: assertOp})
	register(&Builtin{Name: "THROW", MinArgs: 1, MaxArgs: 1, Fn: throwOp})
}

// assertOp fails on a falsy first argument, with an optional message as
// the second argument (spec.md §4.2).
func assertOp(ctx *Context, args []value.Value, nodes []ast.Expr) (value.Value, *ierrors.Error) {
	if args[0].Truthy() {
		return value.Null, nil
	}
	if len(args) == 2 {
		return value.Null, ctx.Errf(ierrors.Control, "assertion failed: %s", args[1].String())
	}
	return value.Null, ctx.Errf(ierrors.Control, "assertion failed")
}

// throwOp fails with its string argument as message, so that an
// enclosing TRY/CATCH can bind it as the exception message.
func throwOp(ctx *Context, args []value.Value, nodes []ast.Expr) (value.Value, *ierrors.Error) {
	msg, err := requireStr(ctx, args[0])
	if err != nil {
		return value.Null, err
	}
	return value.Null, ctx.Errf(ierrors.Control, "%s", msg)
}
