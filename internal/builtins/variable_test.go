package builtins

import (
	"testing"

	"github.com/mattholt/prefixlang/internal/ast"
	"github.com/mattholt/prefixlang/internal/value"
)

func TestDelRemovesBinding(t *testing.T) {
	env := value.NewEnvironment()
	env.Define("x", value.DInt)
	_ = env.Assign("x", value.Int(1), value.DInt, true)

	ctx := &Context{Env: env, Line: 1, Col: 1}
	b, _ := Lookup("DEL")
	_, err := b.Fn(ctx, []value.Value{value.Null}, []ast.Expr{&ast.Ident{Name: "x"}})
	if err != nil {
		t.Fatalf("DEL error = %v", err)
	}
	if env.Exists("x") {
		t.Errorf("Exists(x) = true after DEL, want false")
	}
}

func TestExistOp(t *testing.T) {
	env := value.NewEnvironment()
	env.Define("x", value.DInt)

	ctx := &Context{Env: env, Line: 1, Col: 1}
	b, _ := Lookup("EXIST")
	v, err := b.Fn(ctx, []value.Value{value.Null}, []ast.Expr{&ast.Ident{Name: "x"}})
	if err != nil || v.I != 1 {
		t.Errorf("EXIST(x) = (%+v, %v), want (1, nil)", v, err)
	}
	v, err = b.Fn(ctx, []value.Value{value.Null}, []ast.Expr{&ast.Ident{Name: "nope"}})
	if err != nil || v.I != 0 {
		t.Errorf("EXIST(nope) = (%+v, %v), want (0, nil)", v, err)
	}
}

func TestDelRejectsNonIdentArgument(t *testing.T) {
	ctx := &Context{Env: value.NewEnvironment(), Line: 1, Col: 1}
	b, _ := Lookup("DEL")
	_, err := b.Fn(ctx, []value.Value{value.Null}, []ast.Expr{&ast.IntLit{Value: 1}})
	if err == nil {
		t.Errorf("DEL(1) error = nil, want a Type error")
	}
}

func TestCopyIsIndependent(t *testing.T) {
	v, err := call(t, "COPY", value.Int(5))
	if err != nil || v.I != 5 {
		t.Errorf("COPY(5) = (%+v, %v), want (5, nil)", v, err)
	}
}
