package builtins

import (
	"math"
	"math/bits"

	"github.com/mattholt/prefixlang/internal/ast"
	"github.com/mattholt/prefixlang/internal/ierrors"
	"github.com/mattholt/prefixlang/internal/value"
)

func init() {
	register(&Builtin{Name: "ROOT", MinArgs: 2, MaxArgs: 2, Fn: intRoot(false)})
	register(&Builtin{Name: "IROOT", MinArgs: 2, MaxArgs: 2, Fn: intRoot(true)})
	register(&Builtin{Name: "FROOT", MinArgs: 2, MaxArgs: 2, Fn: fltRoot})
	register(&Builtin{Name: "LOG", MinArgs: 1, MaxArgs: 1, Fn: logOp})
	register(&Builtin{Name: "CLOG", MinArgs: 1, MaxArgs: 1, Fn: clogOp})
}

// intRoot implements the integer ROOT/IROOT contract: binary search for
// the floor of the n-th root of x, with sign rules for a negative base
// (an even root of a negative integer fails; an odd root returns the
// negated positive root). coerce selects IROOT's Flt->Int truncation of
// its operands; ROOT itself requires both operands to already be Int.
func intRoot(coerce bool) Func {
	return func(ctx *Context, args []value.Value, nodes []ast.Expr) (value.Value, *ierrors.Error) {
		var x, n int64
		var err *ierrors.Error
		if coerce {
			if x, err = toInt(ctx, args[0]); err != nil {
				return value.Null, err
			}
			if n, err = toInt(ctx, args[1]); err != nil {
				return value.Null, err
			}
		} else {
			if args[0].Tag != value.TagInt || args[1].Tag != value.TagInt {
				return value.Null, ctx.Errf(ierrors.Type, "ROOT requires integer arguments")
			}
			x, n = args[0].I, args[1].I
		}
		if n <= 0 {
			return value.Null, ctx.Errf(ierrors.Arithmetic, "ROOT requires a positive exponent")
		}
		neg := x < 0
		if neg && n%2 == 0 {
			return value.Null, ctx.Errf(ierrors.Arithmetic, "even root of negative integer")
		}
		ax := x
		if neg {
			ax = -x
		}
		r := floorIntRoot(ax, n)
		if neg {
			r = -r
		}
		return value.Int(r), nil
	}
}

// floorIntRoot binary-searches for the largest r >= 0 with r^n <= x.
func floorIntRoot(x, n int64) int64 {
	if x == 0 {
		return 0
	}
	lo, hi := int64(0), x
	for lo < hi {
		mid := lo + (hi-lo+1)/2
		if intPowOverflows(mid, n, x) {
			hi = mid - 1
		} else {
			lo = mid
		}
	}
	return lo
}

// intPowOverflows reports whether mid^n > limit, computed
// multiplication-at-a-time so it never overflows past limit.
func intPowOverflows(mid, n, limit int64) bool {
	acc := int64(1)
	for i := int64(0); i < n; i++ {
		if acc > limit/mid {
			return true
		}
		acc *= mid
	}
	return false
}

func fltRoot(ctx *Context, args []value.Value, nodes []ast.Expr) (value.Value, *ierrors.Error) {
	x, err := toFlt(ctx, args[0])
	if err != nil {
		return value.Null, err
	}
	n, err := toFlt(ctx, args[1])
	if err != nil {
		return value.Null, err
	}
	if n == 0 {
		return value.Null, ctx.Errf(ierrors.Arithmetic, "FROOT requires a nonzero exponent")
	}
	if x < 0 {
		return value.Null, ctx.Errf(ierrors.Arithmetic, "FROOT of negative number")
	}
	return value.Flt(math.Pow(x, 1/n)), nil
}

func logOp(ctx *Context, args []value.Value, nodes []ast.Expr) (value.Value, *ierrors.Error) {
	switch args[0].Tag {
	case value.TagInt:
		if args[0].I <= 0 {
			return value.Null, ctx.Errf(ierrors.Arithmetic, "LOG requires a positive argument")
		}
		return value.Int(int64(bits.Len64(uint64(args[0].I)) - 1)), nil
	case value.TagFlt:
		if args[0].F <= 0 {
			return value.Null, ctx.Errf(ierrors.Arithmetic, "LOG requires a positive argument")
		}
		return value.Flt(math.Log2(args[0].F)), nil
	default:
		return value.Null, ctx.Errf(ierrors.Type, "LOG requires a numeric argument")
	}
}

// clogOp implements CLOG, ceil(log2 x): the bit-length of a positive
// integer, or the exact base-2 exponent (bit-length minus one) when x is
// itself a power of two.
func clogOp(ctx *Context, args []value.Value, nodes []ast.Expr) (value.Value, *ierrors.Error) {
	if args[0].Tag != value.TagInt {
		return value.Null, ctx.Errf(ierrors.Type, "CLOG requires an integer argument")
	}
	x := args[0].I
	if x <= 0 {
		return value.Null, ctx.Errf(ierrors.Arithmetic, "CLOG requires a positive argument")
	}
	n := bits.Len64(uint64(x))
	if x&(x-1) == 0 {
		return value.Int(int64(n - 1)), nil
	}
	return value.Int(int64(n)), nil
}
