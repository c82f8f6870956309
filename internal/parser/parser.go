// Package parser builds an *ast.Block program from a token stream, per the
// AST contract in SPEC_FULL.md §6. The grammar implemented here is a
// concrete, minimal surface syntax for the prefix language described in
// spec.md; it exists so the repository has something runnable end to end,
// not as a load-bearing part of the evaluator/value/extension subsystems.
package parser

import (
	"fmt"

	"github.com/mattholt/prefixlang/internal/ast"
	"github.com/mattholt/prefixlang/internal/lexer"
	"github.com/mattholt/prefixlang/internal/token"
)

// ParseError is a single syntax error with its source position.
type ParseError struct {
	Message string
	Pos     token.Position
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s at %d:%d", e.Message, e.Pos.Line, e.Pos.Column)
}

// Parser is a single-pass recursive-descent parser with one token of
// lookahead.
type Parser struct {
	l      *lexer.Lexer
	cur    token.Token
	peek   token.Token
	errors []*ParseError
}

// New creates a Parser over the given source text.
func New(input string) *Parser {
	p := &Parser{l: lexer.New(input)}
	p.next()
	p.next()
	return p
}

func (p *Parser) next() {
	p.cur = p.peek
	p.peek = p.l.NextToken()
}

func (p *Parser) errorf(pos token.Position, format string, args ...any) {
	p.errors = append(p.errors, &ParseError{Message: fmt.Sprintf(format, args...), Pos: pos})
}

// Errors returns every syntax error accumulated during ParseProgram.
func (p *Parser) Errors() []*ParseError { return p.errors }

func (p *Parser) expect(k token.Kind) token.Token {
	if p.cur.Kind != k {
		p.errorf(p.cur.Pos, "expected %s, got %s %q", k, p.cur.Kind, p.cur.Literal)
		return p.cur
	}
	t := p.cur
	p.next()
	return t
}

// ParseProgram parses the entire input as a top-level block.
func (p *Parser) ParseProgram() *ast.Block {
	pos := p.cur.Pos
	var stmts []ast.Stmt
	for p.cur.Kind != token.EOF {
		s := p.parseStmt()
		if s != nil {
			stmts = append(stmts, s)
		} else {
			p.next() // avoid infinite loop on unrecoverable token
		}
	}
	return ast.NewBlock(pos, stmts)
}

func (p *Parser) parseStmt() ast.Stmt {
	switch p.cur.Kind {
	case token.LBRACE:
		return p.parseBlock()
	case token.TINT, token.TFLT, token.TSTR, token.TFUNC, token.TTNS:
		return p.parseTypedStmt()
	case token.IF:
		return p.parseIf()
	case token.WHILE:
		return p.parseWhile()
	case token.FOR:
		return p.parseFor()
	case token.FUNC:
		return p.parseFuncDef()
	case token.RETURN:
		return p.parseReturn()
	case token.BREAK:
		return p.parseBreak()
	case token.CONTINUE:
		return p.parseContinue()
	case token.TRY:
		return p.parseTry()
	case token.GOTO:
		return p.parseGoto()
	case token.GOTOPOINT:
		return p.parseGotoPoint()
	case token.IDENT:
		return p.parseIdentLeadStmt()
	case token.SEMI:
		p.next()
		return nil
	default:
		p.errorf(p.cur.Pos, "unexpected token %s %q", p.cur.Kind, p.cur.Literal)
		return nil
	}
}

func (p *Parser) parseBlock() *ast.Block {
	pos := p.expect(token.LBRACE).Pos
	var stmts []ast.Stmt
	for p.cur.Kind != token.RBRACE && p.cur.Kind != token.EOF {
		s := p.parseStmt()
		if s != nil {
			stmts = append(stmts, s)
		} else if p.cur.Kind != token.RBRACE {
			p.next()
		}
	}
	p.expect(token.RBRACE)
	return ast.NewBlock(pos, stmts)
}

func declType(k token.Kind) ast.DeclType {
	switch k {
	case token.TINT:
		return ast.Int
	case token.TFLT:
		return ast.Flt
	case token.TSTR:
		return ast.Str
	case token.TFUNC:
		return ast.Func
	case token.TTNS:
		return ast.Tns
	}
	return ast.Unknown
}

// parseTypedStmt parses `TYPE name;` (Decl) or `TYPE name = expr;`
// (declaring Assign).
func (p *Parser) parseTypedStmt() ast.Stmt {
	pos := p.cur.Pos
	dt := declType(p.cur.Kind)
	p.next()
	name := p.expect(token.IDENT).Literal
	if p.cur.Kind == token.ASSIGN {
		p.next()
		val := p.parseExpr()
		p.expect(token.SEMI)
		return ast.NewAssign(pos, name, dt, val)
	}
	p.expect(token.SEMI)
	return ast.NewDecl(pos, name, dt)
}

// parseIdentLeadStmt disambiguates a plain assignment (`x = expr;`) from
// an expression statement (`PRINT(x);`).
func (p *Parser) parseIdentLeadStmt() ast.Stmt {
	pos := p.cur.Pos
	if p.peek.Kind == token.ASSIGN {
		name := p.cur.Literal
		p.next() // ident
		p.next() // =
		val := p.parseExpr()
		p.expect(token.SEMI)
		return ast.NewAssign(pos, name, ast.Unknown, val)
	}
	x := p.parseExpr()
	p.expect(token.SEMI)
	return ast.NewExprStmt(pos, x)
}

func (p *Parser) parseIf() ast.Stmt {
	pos := p.cur.Pos
	p.next() // IF
	cond := p.parseExpr()
	then := p.parseBlock()

	var elseIfs []ast.ElseIf
	var els *ast.Block
	for p.cur.Kind == token.ELSEIF {
		p.next()
		c := p.parseExpr()
		b := p.parseBlock()
		elseIfs = append(elseIfs, ast.ElseIf{Cond: c, Body: b})
	}
	if p.cur.Kind == token.ELSE {
		p.next()
		els = p.parseBlock()
	}
	return ast.NewIf(pos, cond, then, elseIfs, els)
}

func (p *Parser) parseWhile() ast.Stmt {
	pos := p.cur.Pos
	p.next() // WHILE
	cond := p.parseExpr()
	body := p.parseBlock()
	return ast.NewWhile(pos, cond, body)
}

func (p *Parser) parseFor() ast.Stmt {
	pos := p.cur.Pos
	p.next() // FOR
	counter := p.expect(token.IDENT).Literal
	limit := p.parseExpr()
	body := p.parseBlock()
	return ast.NewFor(pos, counter, limit, body)
}

func (p *Parser) parseFuncDef() ast.Stmt {
	pos := p.cur.Pos
	p.next() // FUNC
	rt := declType(p.cur.Kind)
	if rt == ast.Unknown {
		p.errorf(p.cur.Pos, "expected return type, got %s %q", p.cur.Kind, p.cur.Literal)
	} else {
		p.next()
	}
	name := p.expect(token.IDENT).Literal
	p.expect(token.LPAREN)
	var params []ast.Param
	for p.cur.Kind != token.RPAREN && p.cur.Kind != token.EOF {
		pt := declType(p.cur.Kind)
		if pt == ast.Unknown {
			p.errorf(p.cur.Pos, "expected parameter type, got %s %q", p.cur.Kind, p.cur.Literal)
		} else {
			p.next()
		}
		pname := p.expect(token.IDENT).Literal
		var def ast.Expr
		if p.cur.Kind == token.ASSIGN {
			p.next()
			def = p.parseExpr()
		}
		params = append(params, ast.Param{Name: pname, Type: pt, Default: def})
		if p.cur.Kind == token.COMMA {
			p.next()
		}
	}
	p.expect(token.RPAREN)

	var body *ast.Block
	if p.cur.Kind == token.COLON {
		// single-statement form: FUNC INT add(...): RETURN ADD(a, b)
		p.next()
		stmtPos := p.cur.Pos
		s := p.parseStmt()
		if s == nil {
			s = ast.NewReturn(stmtPos, nil)
		}
		body = ast.NewBlock(stmtPos, []ast.Stmt{s})
	} else {
		body = p.parseBlock()
	}
	return ast.NewFuncDef(pos, name, rt, params, body)
}

func (p *Parser) parseReturn() ast.Stmt {
	pos := p.cur.Pos
	p.next() // RETURN
	if p.cur.Kind == token.SEMI {
		p.next()
		return ast.NewReturn(pos, nil)
	}
	val := p.parseExpr()
	p.expect(token.SEMI)
	return ast.NewReturn(pos, val)
}

func (p *Parser) parseBreak() ast.Stmt {
	pos := p.cur.Pos
	p.next() // BREAK
	depth := 1
	if p.cur.Kind == token.INT {
		depth = parseIntLiteral(p.cur.Literal)
		p.next()
	}
	p.expect(token.SEMI)
	return ast.NewBreak(pos, depth)
}

func (p *Parser) parseContinue() ast.Stmt {
	pos := p.cur.Pos
	p.next() // CONTINUE
	p.expect(token.SEMI)
	return ast.NewContinue(pos)
}

func (p *Parser) parseTry() ast.Stmt {
	pos := p.cur.Pos
	p.next() // TRY
	body := p.parseBlock()
	p.expect(token.CATCH)
	var name string
	if p.cur.Kind == token.IDENT {
		name = p.cur.Literal
		p.next()
	}
	catch := p.parseBlock()
	return ast.NewTry(pos, body, name, catch)
}

func (p *Parser) parseGoto() ast.Stmt {
	pos := p.cur.Pos
	p.next() // GOTO
	target := p.parseExpr()
	p.expect(token.SEMI)
	return ast.NewGoto(pos, target)
}

func (p *Parser) parseGotoPoint() ast.Stmt {
	pos := p.cur.Pos
	p.next() // GOTOPOINT
	label := p.parseExpr()
	p.expect(token.SEMI)
	return ast.NewGotoPoint(pos, label)
}

// ---- expressions ----
//
// The only compound expression form is a call: CALLEE(arg, arg, ...).
// Bare literals and identifiers are expressions in their own right, which
// keeps the grammar faithful to "every expression is operator-first"
// while still allowing a value or variable to appear where an argument is
// expected.

func (p *Parser) parseExpr() ast.Expr {
	pos := p.cur.Pos
	switch p.cur.Kind {
	case token.INT:
		v := parseIntLiteral(p.cur.Literal)
		p.next()
		return ast.NewIntLit(pos, int64(v))
	case token.FLOAT:
		v := parseFloatLiteral(p.cur.Literal)
		p.next()
		return ast.NewFloatLit(pos, v)
	case token.STRING:
		v := p.cur.Literal
		p.next()
		return ast.NewStringLit(pos, v)
	case token.IDENT:
		name := p.cur.Literal
		p.next()
		if p.cur.Kind == token.LPAREN {
			return p.parseCallTail(pos, ast.NewIdent(pos, name))
		}
		return ast.NewIdent(pos, name)
	case token.LPAREN:
		p.next()
		inner := p.parseExpr()
		p.expect(token.RPAREN)
		if p.cur.Kind == token.LPAREN {
			return p.parseCallTail(pos, inner)
		}
		return inner
	default:
		p.errorf(pos, "unexpected token in expression: %s %q", p.cur.Kind, p.cur.Literal)
		p.next()
		return ast.NewIntLit(pos, 0)
	}
}

func (p *Parser) parseCallTail(pos token.Position, callee ast.Expr) ast.Expr {
	p.expect(token.LPAREN)
	var args []ast.Expr
	for p.cur.Kind != token.RPAREN && p.cur.Kind != token.EOF {
		args = append(args, p.parseExpr())
		if p.cur.Kind == token.COMMA {
			p.next()
		}
	}
	p.expect(token.RPAREN)
	return ast.NewCall(pos, callee, args)
}

func parseIntLiteral(s string) int {
	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}
	n := 0
	for _, r := range s {
		n = n*10 + int(r-'0')
	}
	if neg {
		n = -n
	}
	return n
}

func parseFloatLiteral(s string) float64 {
	var intPart, fracPart string
	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}
	dot := -1
	for i, r := range s {
		if r == '.' {
			dot = i
			break
		}
	}
	if dot < 0 {
		intPart = s
	} else {
		intPart = s[:dot]
		fracPart = s[dot+1:]
	}
	whole := float64(parseIntLiteral(intPart))
	frac := 0.0
	weight := 0.1
	for _, r := range fracPart {
		frac += float64(r-'0') * weight
		weight /= 10
	}
	whole += frac
	if neg {
		whole = -whole
	}
	return whole
}
