// Package lexer provides pattern tokenization.
package lexer

import (
	"testing"
	"unicode/utf8"

	"github.com/kolkov/regfsm/internal/token"
)

func TestScanBasicTokens(t *testing.T) {
	tests := []struct {
		input    string
		expected []token.Token
	}{
		{"", []token.Token{token.EOF}},
		{"a", []token.Token{token.CHAR, token.EOF}},
		{"|", []token.Token{token.ALT, token.EOF}},
		{"*", []token.Token{token.STAR, token.EOF}},
		{"(", []token.Token{token.LPAREN, token.EOF}},
		{")", []token.Token{token.RPAREN, token.EOF}},
		{"[", []token.Token{token.LBRACKET, token.EOF}},
		{"]", []token.Token{token.RBRACKET, token.EOF}},
		{"-", []token.Token{token.DASH, token.EOF}},
		{`\w`, []token.Token{token.ESCAPE, token.EOF}},
		{`\*`, []token.Token{token.ESCAPE, token.EOF}},
		{"a|b*", []token.Token{token.CHAR, token.ALT, token.CHAR, token.STAR, token.EOF}},
		{"[a-z]", []token.Token{token.LBRACKET, token.CHAR, token.DASH, token.CHAR, token.RBRACKET, token.EOF}},
		{"+?.{}", []token.Token{token.CHAR, token.CHAR, token.CHAR, token.CHAR, token.CHAR, token.EOF}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			l := NewFromString(tt.input)
			for i, exp := range tt.expected {
				tok := l.Scan()
				if tok.Type != exp {
					t.Errorf("token[%d]: expected %v, got %v", i, exp, tok.Type)
				}
			}
		})
	}
}

func TestScanRunes(t *testing.T) {
	l := NewFromString(`🌈\d\\`)

	tok := l.Scan()
	if tok.Type != token.CHAR || tok.Rune != '🌈' {
		t.Fatalf("got %v %q, want char '🌈'", tok.Type, tok.Rune)
	}

	tok = l.Scan()
	if tok.Type != token.ESCAPE || tok.Rune != 'd' {
		t.Fatalf("got %v %q, want escape 'd'", tok.Type, tok.Rune)
	}

	tok = l.Scan()
	if tok.Type != token.ESCAPE || tok.Rune != '\\' {
		t.Fatalf("got %v %q, want escape '\\\\'", tok.Type, tok.Rune)
	}

	if tok = l.Scan(); tok.Type != token.EOF {
		t.Fatalf("got %v, want EOF", tok.Type)
	}
}

func TestScanIllegal(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  rune
	}{
		{"dangling escape", `a\`, '\\'},
		{"bad encoding", "a\xff", utf8.RuneError},
		{"bad escaped encoding", "a\\\xff", utf8.RuneError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewFromString(tt.input)
			if tok := l.Scan(); tok.Type != token.CHAR {
				t.Fatalf("first token = %v, want char", tok.Type)
			}
			tok := l.Scan()
			if tok.Type != token.ILLEGAL {
				t.Fatalf("second token = %v, want illegal", tok.Type)
			}
			if tok.Rune != tt.want {
				t.Errorf("illegal rune = %q, want %q", tok.Rune, tt.want)
			}
			if tok.Pos.Index != 1 {
				t.Errorf("illegal index = %d, want 1", tok.Pos.Index)
			}
		})
	}
}

func TestScanPositions(t *testing.T) {
	l := NewFromString("é\n(x")

	tests := []struct {
		typ    token.Token
		line   int
		column int
		offset int
		index  int
	}{
		{token.CHAR, 1, 1, 0, 0},
		{token.CHAR, 1, 2, 2, 1},
		{token.LPAREN, 2, 1, 3, 2},
		{token.CHAR, 2, 2, 4, 3},
		{token.EOF, 2, 3, 5, 4},
	}

	for i, tt := range tests {
		tok := l.Scan()
		if tok.Type != tt.typ {
			t.Fatalf("token[%d] = %v, want %v", i, tok.Type, tt.typ)
		}
		p := tok.Pos
		if p.Line != tt.line || p.Column != tt.column || p.Offset != tt.offset || p.Index != tt.index {
			t.Errorf("token[%d] pos = %+v, want line %d col %d offset %d index %d",
				i, p, tt.line, tt.column, tt.offset, tt.index)
		}
	}
}

func TestScanEndPosition(t *testing.T) {
	l := New([]byte(`\w`), "pat")
	tok := l.Scan()
	if tok.End.Offset != 2 || tok.End.Index != 2 {
		t.Errorf("End = %+v, want offset 2 index 2", tok.End)
	}
	if tok.Pos.Filename != "pat" {
		t.Errorf("Filename = %q, want %q", tok.Pos.Filename, "pat")
	}
	if next := l.Scan(); next.Type != token.EOF || next.Pos != tok.End {
		t.Errorf("next token = %v at %v, want EOF at %v", next.Type, next.Pos, tok.End)
	}
}
