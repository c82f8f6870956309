package builtins

import (
	"github.com/mattholt/prefixlang/internal/ast"
	"github.com/mattholt/prefixlang/internal/ierrors"
	"github.com/mattholt/prefixlang/internal/value"
)

func init() {
	register(&Builtin{Name: "SUM", MinArgs: 1, MaxArgs: -1, Fn: sumOp})
	register(&Builtin{Name: "PROD", MinArgs: 1, MaxArgs: -1, Fn: prodOp})
	register(&Builtin{Name: "MAX", MinArgs: 1, MaxArgs: -1, Fn: extremeOp(true)})
	register(&Builtin{Name: "MIN", MinArgs: 1, MaxArgs: -1, Fn: extremeOp(false)})
	register(&Builtin{Name: "ANY", MinArgs: 1, MaxArgs: -1, Fn: anyOp})
	register(&Builtin{Name: "ALL", MinArgs: 1, MaxArgs: -1, Fn: allOp})
}

// sameTagAll requires every argument to carry the same runtime tag as
// the first, returning that tag.
func sameTagAll(ctx *Context, args []value.Value) (value.Tag, *ierrors.Error) {
	tag := args[0].Tag
	for _, a := range args[1:] {
		if a.Tag != tag {
			return 0, ctx.Errf(ierrors.Type, "mismatched argument types %s and %s", tag, a.TypeName())
		}
	}
	return tag, nil
}

func sumOp(ctx *Context, args []value.Value, nodes []ast.Expr) (value.Value, *ierrors.Error) {
	tag, err := sameTagAll(ctx, args)
	if err != nil {
		return value.Null, err
	}
	switch tag {
	case value.TagInt:
		var acc int64
		for _, a := range args {
			acc += a.I
		}
		return value.Int(acc), nil
	case value.TagFlt:
		var acc float64
		for _, a := range args {
			acc += a.F
		}
		return value.Flt(acc), nil
	default:
		return value.Null, ctx.Errf(ierrors.Type, "SUM requires numeric arguments")
	}
}

func prodOp(ctx *Context, args []value.Value, nodes []ast.Expr) (value.Value, *ierrors.Error) {
	tag, err := sameTagAll(ctx, args)
	if err != nil {
		return value.Null, err
	}
	switch tag {
	case value.TagInt:
		acc := int64(1)
		for _, a := range args {
			acc *= a.I
		}
		return value.Int(acc), nil
	case value.TagFlt:
		acc := 1.0
		for _, a := range args {
			acc *= a.F
		}
		return value.Flt(acc), nil
	default:
		return value.Null, ctx.Errf(ierrors.Type, "PROD requires numeric arguments")
	}
}

// extremeOp implements MAX/MIN: same-tag enforcement, with string
// comparison by length (spec.md §4.2).
func extremeOp(wantMax bool) Func {
	return func(ctx *Context, args []value.Value, nodes []ast.Expr) (value.Value, *ierrors.Error) {
		tag, err := sameTagAll(ctx, args)
		if err != nil {
			return value.Null, err
		}
		best := args[0]
		for _, a := range args[1:] {
			better := false
			switch tag {
			case value.TagInt:
				better = (a.I > best.I) == wantMax && a.I != best.I
			case value.TagFlt:
				better = (a.F > best.F) == wantMax && a.F != best.F
			case value.TagStr:
				better = (len(a.S) > len(best.S)) == wantMax && len(a.S) != len(best.S)
			default:
				return value.Null, ctx.Errf(ierrors.Type, "MAX/MIN require numeric or string arguments")
			}
			if better {
				best = a
			}
		}
		return best, nil
	}
}

func anyOp(ctx *Context, args []value.Value, nodes []ast.Expr) (value.Value, *ierrors.Error) {
	for _, a := range args {
		if a.Truthy() {
			return value.Int(1), nil
		}
	}
	return value.Int(0), nil
}

func allOp(ctx *Context, args []value.Value, nodes []ast.Expr) (value.Value, *ierrors.Error) {
	for _, a := range args {
		if !a.Truthy() {
			return value.Int(0), nil
		}
	}
	return value.Int(1), nil
}
