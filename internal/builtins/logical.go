package builtins

import (
	"github.com/mattholt/prefixlang/internal/ast"
	"github.com/mattholt/prefixlang/internal/ierrors"
	"github.com/mattholt/prefixlang/internal/value"
)

func init() {
	register(&Builtin{Name: "AND", MinArgs: 2, MaxArgs: 2, Fn: logicalBin(func(a, b bool) bool { return a && b })})
	register(&Builtin{Name: "OR", MinArgs: 2, MaxArgs: 2, Fn: logicalBin(func(a, b bool) bool { return a || b })})
	register(&Builtin{Name: "XOR", MinArgs: 2, MaxArgs: 2, Fn: logicalBin(func(a, b bool) bool { return a != b })})
	register(&Builtin{Name: "NOT", MinArgs: 1, MaxArgs: 1, Fn: notOp})
	register(&Builtin{Name: "BOOL", MinArgs: 1, MaxArgs: 1, Fn: boolOp})
}

func logicalBin(op func(a, b bool) bool) Func {
	return func(ctx *Context, args []value.Value, nodes []ast.Expr) (value.Value, *ierrors.Error) {
		return boolInt(op(args[0].Truthy(), args[1].Truthy())), nil
	}
}

func notOp(ctx *Context, args []value.Value, nodes []ast.Expr) (value.Value, *ierrors.Error) {
	return boolInt(!args[0].Truthy()), nil
}

func boolOp(ctx *Context, args []value.Value, nodes []ast.Expr) (value.Value, *ierrors.Error) {
	return boolInt(args[0].Truthy()), nil
}
