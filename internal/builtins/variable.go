package builtins

import (
	"github.com/mattholt/prefixlang/internal/ast"
	"github.com/mattholt/prefixlang/internal/ierrors"
	"github.com/mattholt/prefixlang/internal/value"
)

func init() {
	register(&Builtin{Name: "DEL", MinArgs: 1, MaxArgs: 1, Raw: true, Fn: delOp})
	register(&Builtin{Name: "EXIST", MinArgs: 1, MaxArgs: 1, Raw: true, Fn: existOp})
	register(&Builtin{Name: "COPY", MinArgs: 1, MaxArgs: 1, Fn: copyOp})
}

// bareIdent requires nodes[0] to be a plain identifier AST node,
// unevaluated, per spec.md §4.2/§4.3: DEL and EXIST inspect the binding
// named by the argument, not its value.
func bareIdent(ctx *Context, nodes []ast.Expr) (string, *ierrors.Error) {
	id, ok := nodes[0].(*ast.Ident)
	if !ok {
		return "", ctx.Errf(ierrors.Type, "expected a bare identifier argument")
	}
	return id.Name, nil
}

func delOp(ctx *Context, args []value.Value, nodes []ast.Expr) (value.Value, *ierrors.Error) {
	name, err := bareIdent(ctx, nodes)
	if err != nil {
		return value.Null, err
	}
	ctx.Env.Delete(name)
	return value.Null, nil
}

func existOp(ctx *Context, args []value.Value, nodes []ast.Expr) (value.Value, *ierrors.Error) {
	name, err := bareIdent(ctx, nodes)
	if err != nil {
		return value.Null, err
	}
	return boolInt(ctx.Env.Exists(name)), nil
}

func copyOp(ctx *Context, args []value.Value, nodes []ast.Expr) (value.Value, *ierrors.Error) {
	return args[0].DeepCopy(), nil
}
