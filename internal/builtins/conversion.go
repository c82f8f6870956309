package builtins

import (
	"github.com/mattholt/prefixlang/internal/ast"
	"github.com/mattholt/prefixlang/internal/ierrors"
	"github.com/mattholt/prefixlang/internal/value"
)

func init() {
	register(&Builtin{Name: "INT", MinArgs: 1, MaxArgs: 1, Fn: intConv})
	register(&Builtin{Name: "FLT", MinArgs: 1, MaxArgs: 1, Fn: fltConv})
	register(&Builtin{Name: "STR", MinArgs: 1, MaxArgs: 1, Fn: strConv})
	register(&Builtin{Name: "ISINT", MinArgs: 1, MaxArgs: 1, Fn: isTag(value.TagInt)})
	register(&Builtin{Name: "ISFLT", MinArgs: 1, MaxArgs: 1, Fn: isTag(value.TagFlt)})
	register(&Builtin{Name: "ISSTR", MinArgs: 1, MaxArgs: 1, Fn: isTag(value.TagStr)})
	register(&Builtin{Name: "TYPE", MinArgs: 1, MaxArgs: 1, Fn: typeOp})
}

// intConv implements INT(x): a base-2 string is parsed per spec.md §4.1;
// an Int passes through; a Flt is truncated toward zero.
func intConv(ctx *Context, args []value.Value, nodes []ast.Expr) (value.Value, *ierrors.Error) {
	switch args[0].Tag {
	case value.TagInt:
		return args[0], nil
	case value.TagFlt:
		return value.Int(int64(args[0].F)), nil
	case value.TagStr:
		return value.Int(value.IntFromBinaryString(args[0].S)), nil
	default:
		return value.Null, ctx.Errf(ierrors.Type, "INT() does not accept %s", args[0].TypeName())
	}
}

func fltConv(ctx *Context, args []value.Value, nodes []ast.Expr) (value.Value, *ierrors.Error) {
	switch args[0].Tag {
	case value.TagFlt:
		return args[0], nil
	case value.TagInt:
		return value.Flt(float64(args[0].I)), nil
	case value.TagStr:
		return value.Flt(value.FloatFromBinaryString(args[0].S)), nil
	default:
		return value.Null, ctx.Errf(ierrors.Type, "FLT() does not accept %s", args[0].TypeName())
	}
}

func strConv(ctx *Context, args []value.Value, nodes []ast.Expr) (value.Value, *ierrors.Error) {
	switch args[0].Tag {
	case value.TagStr:
		return args[0], nil
	case value.TagInt, value.TagFlt, value.TagFunc, value.TagTns, value.TagNull:
		return value.Str(args[0].String()), nil
	default:
		return value.Null, ctx.Errf(ierrors.Type, "STR() does not accept %s", args[0].TypeName())
	}
}

func isTag(tag value.Tag) Func {
	return func(ctx *Context, args []value.Value, nodes []ast.Expr) (value.Value, *ierrors.Error) {
		return boolInt(args[0].Tag == tag), nil
	}
}

func typeOp(ctx *Context, args []value.Value, nodes []ast.Expr) (value.Value, *ierrors.Error) {
	return value.Str(args[0].TypeName()), nil
}
