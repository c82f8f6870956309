package lexer

import (
	"testing"

	"github.com/mattholt/prefixlang/internal/token"
)

func TestNextTokenPunctuationAndKeywords(t *testing.T) {
	input := `IF (x) { PRINT(1); } ELSE { PRINT(0); }`

	want := []token.Kind{
		token.IF, token.LPAREN, token.IDENT, token.RPAREN, token.LBRACE,
		token.IDENT, token.LPAREN, token.INT, token.RPAREN, token.SEMI,
		token.RBRACE, token.ELSE, token.LBRACE,
		token.IDENT, token.LPAREN, token.INT, token.RPAREN, token.SEMI,
		token.RBRACE, token.EOF,
	}

	l := New(input)
	for i, k := range want {
		tok := l.NextToken()
		if tok.Kind != k {
			t.Fatalf("token %d: Kind = %v, want %v (literal %q)", i, tok.Kind, k, tok.Literal)
		}
	}
}

func TestNextTokenNumbers(t *testing.T) {
	l := New("5 -5 3.25 -3.25")
	cases := []struct {
		kind token.Kind
		lit  string
	}{
		{token.INT, "5"},
		{token.INT, "-5"},
		{token.FLOAT, "3.25"},
		{token.FLOAT, "-3.25"},
	}
	for _, c := range cases {
		tok := l.NextToken()
		if tok.Kind != c.kind || tok.Literal != c.lit {
			t.Errorf("got (%v, %q), want (%v, %q)", tok.Kind, tok.Literal, c.kind, c.lit)
		}
	}
}

func TestNextTokenStringEscapes(t *testing.T) {
	l := New(`"a\nb\tc\"d"`)
	tok := l.NextToken()
	if tok.Kind != token.STRING {
		t.Fatalf("Kind = %v, want STRING", tok.Kind)
	}
	want := "a\nb\tc\"d"
	if tok.Literal != want {
		t.Errorf("Literal = %q, want %q", tok.Literal, want)
	}
}

func TestNextTokenLineComment(t *testing.T) {
	l := New("PRINT(1); // trailing comment\nPRINT(2);")
	var kinds []token.Kind
	for {
		tok := l.NextToken()
		kinds = append(kinds, tok.Kind)
		if tok.Kind == token.EOF {
			break
		}
	}
	// two PRINT(...); statements, no ILLEGAL token from the comment
	for _, k := range kinds {
		if k == token.ILLEGAL {
			t.Fatalf("found ILLEGAL token, comment was not skipped: %v", kinds)
		}
	}
}

func TestNextTokenIllegal(t *testing.T) {
	l := New("@")
	tok := l.NextToken()
	if tok.Kind != token.ILLEGAL {
		t.Errorf("Kind = %v, want ILLEGAL", tok.Kind)
	}
}

func TestNextTokenColumnsCountRunes(t *testing.T) {
	l := New(`"café" x`)
	strTok := l.NextToken()
	if strTok.Kind != token.STRING {
		t.Fatalf("Kind = %v, want STRING", strTok.Kind)
	}
	identTok := l.NextToken()
	if identTok.Kind != token.IDENT {
		t.Fatalf("Kind = %v, want IDENT", identTok.Kind)
	}
	// "café" is 6 runes (including quotes); the identifier should start
	// at column 8 (1-indexed), not further out due to café's UTF-8 byte
	// length.
	if identTok.Pos.Column != 8 {
		t.Errorf("identifier column = %d, want 8 (rune-counted, not byte-counted)", identTok.Pos.Column)
	}
}
