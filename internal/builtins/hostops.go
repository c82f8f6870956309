package builtins

import (
	"runtime"

	"github.com/mattholt/prefixlang/internal/ast"
	"github.com/mattholt/prefixlang/internal/ierrors"
	"github.com/mattholt/prefixlang/internal/value"
)

func init() {
	register(&Builtin{Name: "MAIN", MinArgs: 0, MaxArgs: 0, Fn: mainOp})
	register(&Builtin{Name: "OS", MinArgs: 0, MaxArgs: 0, Fn: osOp})
	register(&Builtin{Name: "EXIT", MinArgs: 0, MaxArgs: 1, Fn: exitOp})
	register(&Builtin{Name: "IMPORT", MinArgs: 1, MaxArgs: 1, Fn: importOp})
}

// mainOp returns 1 for the primary module, 0 otherwise. spec.md §9
// flags the original's unconditional "return 1" as an open question;
// SPEC_FULL.md §12 resolves it by threading IsMainModule through the
// host instead.
func mainOp(ctx *Context, args []value.Value, nodes []ast.Expr) (value.Value, *ierrors.Error) {
	return boolInt(ctx.Host.IsMainModule()), nil
}

func osOp(ctx *Context, args []value.Value, nodes []ast.Expr) (value.Value, *ierrors.Error) {
	return value.Str(runtime.GOOS), nil
}

func exitOp(ctx *Context, args []value.Value, nodes []ast.Expr) (value.Value, *ierrors.Error) {
	code := int64(0)
	if len(args) == 1 {
		if args[0].Tag != value.TagInt {
			return value.Null, ctx.Errf(ierrors.Type, "EXIT requires an integer code")
		}
		code = args[0].I
	}
	ctx.Host.Exit(int(code))
	return value.Null, nil
}

func importOp(ctx *Context, args []value.Value, nodes []ast.Expr) (value.Value, *ierrors.Error) {
	path, err := requireStr(ctx, args[0])
	if err != nil {
		return value.Null, err
	}
	if ierr := ctx.Host.Import(path); ierr != nil {
		return value.Null, ierr
	}
	return value.Null, nil
}
