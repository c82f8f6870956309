package builtins

import (
	"github.com/mattholt/prefixlang/internal/ast"
	"github.com/mattholt/prefixlang/internal/ierrors"
	"github.com/mattholt/prefixlang/internal/value"
)

func init() {
	register(&Builtin{Name: "BAND", MinArgs: 2, MaxArgs: 2, Fn: intBinOp(func(a, b int64) int64 { return a & b })})
	register(&Builtin{Name: "BOR", MinArgs: 2, MaxArgs: 2, Fn: intBinOp(func(a, b int64) int64 { return a | b })})
	register(&Builtin{Name: "BXOR", MinArgs: 2, MaxArgs: 2, Fn: intBinOp(func(a, b int64) int64 { return a ^ b })})
	register(&Builtin{Name: "BNOT", MinArgs: 1, MaxArgs: 1, Fn: bnotOp})
	register(&Builtin{Name: "SHL", MinArgs: 2, MaxArgs: 2, Fn: shiftOp(func(a int64, n uint) int64 { return a << n })})
	register(&Builtin{Name: "SHR", MinArgs: 2, MaxArgs: 2, Fn: shiftOp(func(a int64, n uint) int64 { return a >> n })})
}

func requireInt(ctx *Context, v value.Value) (int64, *ierrors.Error) {
	if v.Tag != value.TagInt {
		return 0, ctx.Errf(ierrors.Type, "expected an integer argument, got %s", v.TypeName())
	}
	return v.I, nil
}

func intBinOp(op func(a, b int64) int64) Func {
	return func(ctx *Context, args []value.Value, nodes []ast.Expr) (value.Value, *ierrors.Error) {
		a, err := requireInt(ctx, args[0])
		if err != nil {
			return value.Null, err
		}
		b, err := requireInt(ctx, args[1])
		if err != nil {
			return value.Null, err
		}
		return value.Int(op(a, b)), nil
	}
}

func bnotOp(ctx *Context, args []value.Value, nodes []ast.Expr) (value.Value, *ierrors.Error) {
	a, err := requireInt(ctx, args[0])
	if err != nil {
		return value.Null, err
	}
	return value.Int(^a), nil
}

func shiftOp(op func(a int64, n uint) int64) Func {
	return func(ctx *Context, args []value.Value, nodes []ast.Expr) (value.Value, *ierrors.Error) {
		a, err := requireInt(ctx, args[0])
		if err != nil {
			return value.Null, err
		}
		n, err := requireInt(ctx, args[1])
		if err != nil {
			return value.Null, err
		}
		if n < 0 {
			return value.Null, ctx.Errf(ierrors.Arithmetic, "negative shift amount")
		}
		return value.Int(op(a, uint(n))), nil
	}
}
