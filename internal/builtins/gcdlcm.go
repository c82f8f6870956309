package builtins

import (
	"github.com/mattholt/prefixlang/internal/ast"
	"github.com/mattholt/prefixlang/internal/ierrors"
	"github.com/mattholt/prefixlang/internal/value"
)

func init() {
	register(&Builtin{Name: "GCD", MinArgs: 2, MaxArgs: 2, Fn: gcdOp})
	register(&Builtin{Name: "LCM", MinArgs: 2, MaxArgs: 2, Fn: lcmOp})
}

// asIntegerValued accepts an Int, or a Flt with no fractional part,
// per spec.md §4.2 ("Int or integer-valued Flt").
func asIntegerValued(ctx *Context, v value.Value) (int64, *ierrors.Error) {
	switch v.Tag {
	case value.TagInt:
		return v.I, nil
	case value.TagFlt:
		if v.F != float64(int64(v.F)) {
			return 0, ctx.Errf(ierrors.Type, "expected an integer-valued float, got %v", v.F)
		}
		return int64(v.F), nil
	default:
		return 0, ctx.Errf(ierrors.Type, "expected a numeric argument, got %s", v.TypeName())
	}
}

func abs64(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}

func euclidGCD(a, b int64) int64 {
	a, b = abs64(a), abs64(b)
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func gcdOp(ctx *Context, args []value.Value, nodes []ast.Expr) (value.Value, *ierrors.Error) {
	a, err := asIntegerValued(ctx, args[0])
	if err != nil {
		return value.Null, err
	}
	b, err := asIntegerValued(ctx, args[1])
	if err != nil {
		return value.Null, err
	}
	return value.Int(euclidGCD(a, b)), nil
}

func lcmOp(ctx *Context, args []value.Value, nodes []ast.Expr) (value.Value, *ierrors.Error) {
	a, err := asIntegerValued(ctx, args[0])
	if err != nil {
		return value.Null, err
	}
	b, err := asIntegerValued(ctx, args[1])
	if err != nil {
		return value.Null, err
	}
	if a == 0 || b == 0 {
		return value.Int(0), nil
	}
	g := euclidGCD(a, b)
	return value.Int(abs64(a/g*b)), nil
}
