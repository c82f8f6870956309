package interp

import (
	"github.com/mattholt/prefixlang/internal/ast"
	"github.com/mattholt/prefixlang/internal/builtins"
	"github.com/mattholt/prefixlang/internal/ierrors"
	"github.com/mattholt/prefixlang/internal/value"
)

// EvalExpr evaluates a single expression node against env, per spec.md
// §4.3.
func (it *Interpreter) EvalExpr(node ast.Expr, env *value.Environment) (value.Value, *ierrors.Error) {
	switch n := node.(type) {
	case *ast.IntLit:
		return value.Int(n.Value), nil
	case *ast.FloatLit:
		return value.Flt(n.Value), nil
	case *ast.StringLit:
		return value.Str(n.Value), nil
	case *ast.Ident:
		return it.evalIdent(n, env)
	case *ast.Call:
		return it.evalCall(n, env)
	}
	pos := node.Pos()
	return value.Null, ierrors.New(ierrors.Name, pos.Line, pos.Column, "cannot evaluate node of type %T", node)
}

// evalIdent resolves a bare identifier: first as a variable binding in
// scope, then as a user-defined function name (so a function can be
// passed around as a value without being called), per spec.md §4.1.
func (it *Interpreter) evalIdent(n *ast.Ident, env *value.Environment) (value.Value, *ierrors.Error) {
	if v, _, initialized, found := env.Get(n.Name); found {
		if !initialized {
			return value.Null, ierrors.New(ierrors.Uninitialized, n.Pos().Line, n.Pos().Column,
				"variable %q is declared but not yet assigned", n.Name)
		}
		return v, nil
	}
	if fn, ok := it.Functions[n.Name]; ok {
		return value.FuncV(fn), nil
	}
	return value.Null, ierrors.New(ierrors.Name, n.Pos().Line, n.Pos().Column, "undefined name %q", n.Name)
}

// evalCall implements the dispatch order of spec.md §4.3: builtin
// operator, then extension-registered operator, then user-defined
// function by name, then a callee expression evaluating to a function
// value.
func (it *Interpreter) evalCall(n *ast.Call, env *value.Environment) (value.Value, *ierrors.Error) {
	pos := n.Pos()

	if ident, ok := n.Callee.(*ast.Ident); ok {
		if b, ok := builtins.Lookup(ident.Name); ok {
			return it.callBuiltin(b, n.Args, env, pos.Line, pos.Column)
		}
		if opFn, ok := it.Ext.Lookup(ident.Name); ok {
			args, nodes, err := it.evalArgs(n.Args, env, nil)
			if err != nil {
				return value.Null, err
			}
			it.countInstruction()
			return opFn(it, args, nodes, env, pos.Line, pos.Column)
		}
		if fn, ok := it.Functions[ident.Name]; ok {
			args, _, err := it.evalArgs(n.Args, env, nil)
			if err != nil {
				return value.Null, err
			}
			return it.callFunction(fn, args, pos.Line, pos.Column)
		}
	}

	callee, err := it.EvalExpr(n.Callee, env)
	if err != nil {
		return value.Null, err
	}
	if callee.Tag != value.TagFunc {
		return value.Null, ierrors.New(ierrors.Type, pos.Line, pos.Column,
			"cannot call a value of type %s", callee.TypeName())
	}
	args, _, err := it.evalArgs(n.Args, env, nil)
	if err != nil {
		return value.Null, err
	}
	return it.callFunction(callee.Fn, args, pos.Line, pos.Column)
}

// evalArgs evaluates each argument left to right. rawAt, when non-nil,
// reports whether the i-th argument must be passed unevaluated (DEL and
// EXIST); rawAt is nil for every call site except callBuiltin, which
// supplies it from the Builtin's Raw flag.
func (it *Interpreter) evalArgs(exprs []ast.Expr, env *value.Environment, rawAt func(i int) bool) ([]value.Value, []ast.Expr, *ierrors.Error) {
	args := make([]value.Value, len(exprs))
	for i, e := range exprs {
		if rawAt != nil && rawAt(i) {
			args[i] = value.Null
			continue
		}
		v, err := it.EvalExpr(e, env)
		if err != nil {
			return nil, nil, err
		}
		args[i] = v
	}
	return args, exprs, nil
}

// callBuiltin evaluates arguments (skipping evaluation entirely for a
// Raw builtin, spec.md §4.3) and dispatches to the builtin's Go
// implementation, counting it as one executed instruction.
func (it *Interpreter) callBuiltin(b *builtins.Builtin, argExprs []ast.Expr, env *value.Environment, line, col int) (value.Value, *ierrors.Error) {
	args, nodes, err := it.evalArgs(argExprs, env, func(i int) bool { return b.Raw })
	if err != nil {
		return value.Null, err
	}
	if aerr := builtins.CheckArity(b, len(args), line, col); aerr != nil {
		return value.Null, aerr
	}
	it.countInstruction()
	ctx := it.builtinCtx(env, line, col)
	return b.Fn(ctx, args, nodes)
}
