package builtins

import (
	"math"

	"github.com/mattholt/prefixlang/internal/ast"
	"github.com/mattholt/prefixlang/internal/ierrors"
	"github.com/mattholt/prefixlang/internal/value"
)

func init() {
	register(&Builtin{Name: "IADD", MinArgs: 2, MaxArgs: 2, Fn: coerceIntBinOp(func(a, b int64) int64 { return a + b })})
	register(&Builtin{Name: "ISUB", MinArgs: 2, MaxArgs: 2, Fn: coerceIntBinOp(func(a, b int64) int64 { return a - b })})
	register(&Builtin{Name: "IMUL", MinArgs: 2, MaxArgs: 2, Fn: coerceIntBinOp(func(a, b int64) int64 { return a * b })})
	register(&Builtin{Name: "IDIV", MinArgs: 2, MaxArgs: 2, Fn: coerceIntDiv})
	register(&Builtin{Name: "IPOW", MinArgs: 2, MaxArgs: 2, Fn: coerceIntPow})
	register(&Builtin{Name: "ISUM", MinArgs: 1, MaxArgs: -1, Fn: coerceIntReduce(0, func(a, b int64) int64 { return a + b })})
	register(&Builtin{Name: "IPROD", MinArgs: 1, MaxArgs: -1, Fn: coerceIntReduce(1, func(a, b int64) int64 { return a * b })})

	register(&Builtin{Name: "FADD", MinArgs: 2, MaxArgs: 2, Fn: coerceFltBinOp(func(a, b float64) float64 { return a + b })})
	register(&Builtin{Name: "FSUB", MinArgs: 2, MaxArgs: 2, Fn: coerceFltBinOp(func(a, b float64) float64 { return a - b })})
	register(&Builtin{Name: "FMUL", MinArgs: 2, MaxArgs: 2, Fn: coerceFltBinOp(func(a, b float64) float64 { return a * b })})
	register(&Builtin{Name: "FDIV", MinArgs: 2, MaxArgs: 2, Fn: coerceFltDiv})
	register(&Builtin{Name: "FPOW", MinArgs: 2, MaxArgs: 2, Fn: coerceFltPow})
	register(&Builtin{Name: "FSUM", MinArgs: 1, MaxArgs: -1, Fn: coerceFltReduce(0, func(a, b float64) float64 { return a + b })})
	register(&Builtin{Name: "FPROD", MinArgs: 1, MaxArgs: -1, Fn: coerceFltReduce(1, func(a, b float64) float64 { return a * b })})
}

// toInt coerces a numeric Value to int64, truncating a Flt toward zero,
// per spec.md §4.2's "coercing integer" contract.
func toInt(ctx *Context, v value.Value) (int64, *ierrors.Error) {
	switch v.Tag {
	case value.TagInt:
		return v.I, nil
	case value.TagFlt:
		return int64(v.F), nil
	default:
		return 0, ctx.Errf(ierrors.Type, "expected numeric argument, got %s", v.TypeName())
	}
}

// toFlt coerces a numeric Value to float64, per spec.md §4.2's "coercing
// float" contract.
func toFlt(ctx *Context, v value.Value) (float64, *ierrors.Error) {
	switch v.Tag {
	case value.TagInt:
		return float64(v.I), nil
	case value.TagFlt:
		return v.F, nil
	default:
		return 0, ctx.Errf(ierrors.Type, "expected numeric argument, got %s", v.TypeName())
	}
}

func coerceIntBinOp(op func(a, b int64) int64) Func {
	return func(ctx *Context, args []value.Value, nodes []ast.Expr) (value.Value, *ierrors.Error) {
		a, err := toInt(ctx, args[0])
		if err != nil {
			return value.Null, err
		}
		b, err := toInt(ctx, args[1])
		if err != nil {
			return value.Null, err
		}
		return value.Int(op(a, b)), nil
	}
}

func coerceIntDiv(ctx *Context, args []value.Value, nodes []ast.Expr) (value.Value, *ierrors.Error) {
	a, err := toInt(ctx, args[0])
	if err != nil {
		return value.Null, err
	}
	b, err := toInt(ctx, args[1])
	if err != nil {
		return value.Null, err
	}
	if b == 0 {
		return value.Null, ctx.Errf(ierrors.Arithmetic, "division by zero")
	}
	return value.Int(a / b), nil
}

func coerceIntPow(ctx *Context, args []value.Value, nodes []ast.Expr) (value.Value, *ierrors.Error) {
	a, err := toInt(ctx, args[0])
	if err != nil {
		return value.Null, err
	}
	b, err := toInt(ctx, args[1])
	if err != nil {
		return value.Null, err
	}
	if b < 0 {
		return value.Null, ctx.Errf(ierrors.Arithmetic, "negative exponent in integer IPOW")
	}
	return value.Int(intPow(a, b)), nil
}

func coerceIntReduce(identity int64, op func(a, b int64) int64) Func {
	return func(ctx *Context, args []value.Value, nodes []ast.Expr) (value.Value, *ierrors.Error) {
		acc := identity
		for _, a := range args {
			n, err := toInt(ctx, a)
			if err != nil {
				return value.Null, err
			}
			acc = op(acc, n)
		}
		return value.Int(acc), nil
	}
}

func coerceFltBinOp(op func(a, b float64) float64) Func {
	return func(ctx *Context, args []value.Value, nodes []ast.Expr) (value.Value, *ierrors.Error) {
		a, err := toFlt(ctx, args[0])
		if err != nil {
			return value.Null, err
		}
		b, err := toFlt(ctx, args[1])
		if err != nil {
			return value.Null, err
		}
		return value.Flt(op(a, b)), nil
	}
}

func coerceFltDiv(ctx *Context, args []value.Value, nodes []ast.Expr) (value.Value, *ierrors.Error) {
	a, err := toFlt(ctx, args[0])
	if err != nil {
		return value.Null, err
	}
	b, err := toFlt(ctx, args[1])
	if err != nil {
		return value.Null, err
	}
	if b == 0 {
		return value.Null, ctx.Errf(ierrors.Arithmetic, "division by zero")
	}
	return value.Flt(a / b), nil
}

func coerceFltPow(ctx *Context, args []value.Value, nodes []ast.Expr) (value.Value, *ierrors.Error) {
	a, err := toFlt(ctx, args[0])
	if err != nil {
		return value.Null, err
	}
	b, err := toFlt(ctx, args[1])
	if err != nil {
		return value.Null, err
	}
	return value.Flt(math.Pow(a, b)), nil
}

func coerceFltReduce(identity float64, op func(a, b float64) float64) Func {
	return func(ctx *Context, args []value.Value, nodes []ast.Expr) (value.Value, *ierrors.Error) {
		acc := identity
		for _, a := range args {
			f, err := toFlt(ctx, a)
			if err != nil {
				return value.Null, err
			}
			acc = op(acc, f)
		}
		return value.Flt(acc), nil
	}
}
