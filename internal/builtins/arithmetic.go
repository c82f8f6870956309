package builtins

import (
	"math"

	"github.com/mattholt/prefixlang/internal/ast"
	"github.com/mattholt/prefixlang/internal/ierrors"
	"github.com/mattholt/prefixlang/internal/value"
)

func init() {
	register(&Builtin{Name: "ADD", MinArgs: 2, MaxArgs: 2, Fn: strictArith(func(a, b int64) int64 { return a + b }, func(a, b float64) float64 { return a + b })})
	register(&Builtin{Name: "SUB", MinArgs: 2, MaxArgs: 2, Fn: strictArith(func(a, b int64) int64 { return a - b }, func(a, b float64) float64 { return a - b })})
	register(&Builtin{Name: "MUL", MinArgs: 2, MaxArgs: 2, Fn: strictArith(func(a, b int64) int64 { return a * b }, func(a, b float64) float64 { return a * b })})
	register(&Builtin{Name: "DIV", MinArgs: 2, MaxArgs: 2, Fn: strictDiv})
	register(&Builtin{Name: "MOD", MinArgs: 2, MaxArgs: 2, Fn: strictMod})
	register(&Builtin{Name: "POW", MinArgs: 2, MaxArgs: 2, Fn: strictPow})
}

// sameNumericTag requires both values to carry the same numeric tag (Int or
// Flt), per spec.md §4.2's "strict arithmetic" contract.
func sameNumericTag(ctx *Context, a, b value.Value) *ierrors.Error {
	if a.Tag != value.TagInt && a.Tag != value.TagFlt {
		return ctx.Errf(ierrors.Type, "expected numeric argument, got %s", a.TypeName())
	}
	if a.Tag != b.Tag {
		return ctx.Errf(ierrors.Type, "mismatched operand types %s and %s", a.TypeName(), b.TypeName())
	}
	return nil
}

func strictArith(intOp func(a, b int64) int64, fltOp func(a, b float64) float64) Func {
	return func(ctx *Context, args []value.Value, nodes []ast.Expr) (value.Value, *ierrors.Error) {
		a, b := args[0], args[1]
		if err := sameNumericTag(ctx, a, b); err != nil {
			return value.Null, err
		}
		if a.Tag == value.TagInt {
			return value.Int(intOp(a.I, b.I)), nil
		}
		return value.Flt(fltOp(a.F, b.F)), nil
	}
}

func strictDiv(ctx *Context, args []value.Value, nodes []ast.Expr) (value.Value, *ierrors.Error) {
	a, b := args[0], args[1]
	if err := sameNumericTag(ctx, a, b); err != nil {
		return value.Null, err
	}
	if a.Tag == value.TagInt {
		if b.I == 0 {
			return value.Null, ctx.Errf(ierrors.Arithmetic, "division by zero")
		}
		return value.Int(a.I / b.I), nil
	}
	if b.F == 0 {
		return value.Null, ctx.Errf(ierrors.Arithmetic, "division by zero")
	}
	return value.Flt(a.F / b.F), nil
}

func strictMod(ctx *Context, args []value.Value, nodes []ast.Expr) (value.Value, *ierrors.Error) {
	a, b := args[0], args[1]
	if err := sameNumericTag(ctx, a, b); err != nil {
		return value.Null, err
	}
	if a.Tag == value.TagInt {
		if b.I == 0 {
			return value.Null, ctx.Errf(ierrors.Arithmetic, "division by zero")
		}
		return value.Int(a.I % b.I), nil
	}
	if b.F == 0 {
		return value.Null, ctx.Errf(ierrors.Arithmetic, "division by zero")
	}
	return value.Flt(math.Mod(a.F, b.F)), nil
}

func strictPow(ctx *Context, args []value.Value, nodes []ast.Expr) (value.Value, *ierrors.Error) {
	a, b := args[0], args[1]
	if err := sameNumericTag(ctx, a, b); err != nil {
		return value.Null, err
	}
	if a.Tag == value.TagInt {
		if b.I < 0 {
			return value.Null, ctx.Errf(ierrors.Arithmetic, "negative exponent in integer POW")
		}
		return value.Int(intPow(a.I, b.I)), nil
	}
	return value.Flt(math.Pow(a.F, b.F)), nil
}

func intPow(base, exp int64) int64 {
	result := int64(1)
	for exp > 0 {
		if exp&1 == 1 {
			result *= base
		}
		base *= base
		exp >>= 1
	}
	return result
}
