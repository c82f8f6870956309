package builtins

import (
	"github.com/mattholt/prefixlang/internal/ast"
	"github.com/mattholt/prefixlang/internal/ierrors"
	"github.com/mattholt/prefixlang/internal/value"
)

func init() {
	register(&Builtin{Name: "EQ", MinArgs: 2, MaxArgs: 2, Fn: eqOp})
	register(&Builtin{Name: "LT", MinArgs: 2, MaxArgs: 2, Fn: orderedCmp(func(c int) bool { return c < 0 })})
	register(&Builtin{Name: "LTE", MinArgs: 2, MaxArgs: 2, Fn: orderedCmp(func(c int) bool { return c <= 0 })})
	register(&Builtin{Name: "GT", MinArgs: 2, MaxArgs: 2, Fn: orderedCmp(func(c int) bool { return c > 0 })})
	register(&Builtin{Name: "GTE", MinArgs: 2, MaxArgs: 2, Fn: orderedCmp(func(c int) bool { return c >= 0 })})
}

func boolInt(b bool) value.Value {
	if b {
		return value.Int(1)
	}
	return value.Int(0)
}

// eqOp implements EQ: structural equality when tags match, 0 on type
// mismatch (spec.md §4.2).
func eqOp(ctx *Context, args []value.Value, nodes []ast.Expr) (value.Value, *ierrors.Error) {
	a, b := args[0], args[1]
	if a.Tag != b.Tag {
		return value.Int(0), nil
	}
	return boolInt(a.Equal(b)), nil
}

// numericCompare requires both arguments to share a numeric tag and
// returns their three-way comparison.
func numericCompare(ctx *Context, a, b value.Value) (int, *ierrors.Error) {
	if a.Tag != value.TagInt && a.Tag != value.TagFlt {
		return 0, ctx.Errf(ierrors.Type, "expected a numeric argument, got %s", a.TypeName())
	}
	if a.Tag != b.Tag {
		return 0, ctx.Errf(ierrors.Type, "mismatched operand types %s and %s", a.TypeName(), b.TypeName())
	}
	if a.Tag == value.TagInt {
		switch {
		case a.I < b.I:
			return -1, nil
		case a.I > b.I:
			return 1, nil
		default:
			return 0, nil
		}
	}
	switch {
	case a.F < b.F:
		return -1, nil
	case a.F > b.F:
		return 1, nil
	default:
		return 0, nil
	}
}

func orderedCmp(accept func(c int) bool) Func {
	return func(ctx *Context, args []value.Value, nodes []ast.Expr) (value.Value, *ierrors.Error) {
		c, err := numericCompare(ctx, args[0], args[1])
		if err != nil {
			return value.Null, err
		}
		return boolInt(accept(c)), nil
	}
}
