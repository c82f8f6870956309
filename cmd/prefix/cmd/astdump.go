package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattholt/prefixlang/internal/ast"
)

// dumpBlock renders an AST for --dump-ast / the parse subcommand. It is
// a debugging aid, not a load-bearing part of the evaluator, so it
// favors a compact, readable shape over round-trippable syntax.
func dumpBlock(w io.Writer, b *ast.Block, depth int) {
	for _, stmt := range b.Stmts {
		dumpStmt(w, stmt, depth)
	}
}

func indent(depth int) string { return strings.Repeat("  ", depth) }

func dumpStmt(w io.Writer, s ast.Stmt, depth int) {
	pad := indent(depth)
	switch n := s.(type) {
	case *ast.Block:
		fmt.Fprintf(w, "%sBlock\n", pad)
		dumpBlock(w, n, depth+1)
	case *ast.ExprStmt:
		fmt.Fprintf(w, "%sExprStmt: %s\n", pad, dumpExpr(n.X))
	case *ast.Decl:
		fmt.Fprintf(w, "%sDecl %s %s\n", pad, n.Type, n.Name)
	case *ast.Assign:
		if n.Type != ast.Unknown {
			fmt.Fprintf(w, "%sAssign(decl) %s %s = %s\n", pad, n.Type, n.Name, dumpExpr(n.Value))
		} else {
			fmt.Fprintf(w, "%sAssign %s = %s\n", pad, n.Name, dumpExpr(n.Value))
		}
	case *ast.If:
		fmt.Fprintf(w, "%sIf %s\n", pad, dumpExpr(n.Cond))
		dumpBlock(w, n.Then, depth+1)
		for _, arm := range n.ElseIf {
			fmt.Fprintf(w, "%sElseIf %s\n", pad, dumpExpr(arm.Cond))
			dumpBlock(w, arm.Body, depth+1)
		}
		if n.Else != nil {
			fmt.Fprintf(w, "%sElse\n", pad)
			dumpBlock(w, n.Else, depth+1)
		}
	case *ast.While:
		fmt.Fprintf(w, "%sWhile %s\n", pad, dumpExpr(n.Cond))
		dumpBlock(w, n.Body, depth+1)
	case *ast.For:
		fmt.Fprintf(w, "%sFor %s in 0..%s\n", pad, n.Counter, dumpExpr(n.Limit))
		dumpBlock(w, n.Body, depth+1)
	case *ast.FuncDef:
		fmt.Fprintf(w, "%sFuncDef %s -> %s\n", pad, n.Name, n.ReturnType)
		dumpBlock(w, n.Body, depth+1)
	case *ast.Return:
		if n.Value == nil {
			fmt.Fprintf(w, "%sReturn\n", pad)
		} else {
			fmt.Fprintf(w, "%sReturn %s\n", pad, dumpExpr(n.Value))
		}
	case *ast.Break:
		fmt.Fprintf(w, "%sBreak %d\n", pad, n.Depth)
	case *ast.Continue:
		fmt.Fprintf(w, "%sContinue\n", pad)
	case *ast.Try:
		fmt.Fprintf(w, "%sTry\n", pad)
		dumpBlock(w, n.Body, depth+1)
		fmt.Fprintf(w, "%sCatch %s\n", pad, n.CatchName)
		dumpBlock(w, n.Catch, depth+1)
	case *ast.Goto:
		fmt.Fprintf(w, "%sGoto %s\n", pad, dumpExpr(n.Target))
	case *ast.GotoPoint:
		fmt.Fprintf(w, "%sGotoPoint %s\n", pad, dumpExpr(n.Label))
	default:
		fmt.Fprintf(w, "%s<unknown statement %T>\n", pad, s)
	}
}

func dumpExpr(e ast.Expr) string {
	switch n := e.(type) {
	case *ast.IntLit:
		return fmt.Sprintf("%d", n.Value)
	case *ast.FloatLit:
		return fmt.Sprintf("%g", n.Value)
	case *ast.StringLit:
		return fmt.Sprintf("%q", n.Value)
	case *ast.Ident:
		return n.Name
	case *ast.Call:
		parts := make([]string, len(n.Args))
		for i, a := range n.Args {
			parts[i] = dumpExpr(a)
		}
		return fmt.Sprintf("%s(%s)", dumpExpr(n.Callee), strings.Join(parts, ", "))
	}
	return fmt.Sprintf("<unknown expr %T>", e)
}
