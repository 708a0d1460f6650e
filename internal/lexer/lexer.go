// Package lexer provides pattern tokenization.
//
// The lexer works one codepoint at a time. Metacharacters are classified
// without context; the parser decides what they mean inside a character
// class. A backslash and the codepoint following it form one ESCAPE token.
package lexer

import (
	"unicode/utf8"

	"github.com/kolkov/regfsm/internal/token"
)

// Lexer tokenizes a pattern.
type Lexer struct {
	src []byte         // Pattern source
	pos token.Position // Position of the next unread codepoint
}

// New creates a new Lexer for the given pattern.
func New(src []byte, filename string) *Lexer {
	return &Lexer{
		src: src,
		pos: token.Start(filename),
	}
}

// NewFromString creates a new Lexer from a string.
func NewFromString(src string) *Lexer {
	return New([]byte(src), "")
}

// Token represents a scanned token with its position and value.
type Token struct {
	Type token.Token
	Pos  token.Position // Position of the first codepoint
	End  token.Position // Position immediately after the token
	// Rune is the literal codepoint. For ESCAPE it is the escaped codepoint;
	// for ILLEGAL it is utf8.RuneError (bad encoding) or '\\' (dangling escape).
	Rune rune
}

// Scan scans and returns the next token.
func (l *Lexer) Scan() Token {
	start := l.pos

	r, ok := l.read()
	switch {
	case r == eof:
		return Token{Type: token.EOF, Pos: start, End: start}
	case !ok:
		return Token{Type: token.ILLEGAL, Pos: start, End: l.pos, Rune: utf8.RuneError}
	case r != '\\':
		return Token{Type: token.Lookup(r), Pos: start, End: l.pos, Rune: r}
	}

	esc, ok := l.read()
	switch {
	case esc == eof:
		return Token{Type: token.ILLEGAL, Pos: start, End: l.pos, Rune: '\\'}
	case !ok:
		return Token{Type: token.ILLEGAL, Pos: start, End: l.pos, Rune: utf8.RuneError}
	}
	return Token{Type: token.ESCAPE, Pos: start, End: l.pos, Rune: esc}
}

const eof = -1

// read consumes one codepoint. It reports false for an invalid encoding,
// consuming a single byte so that scanning always makes progress.
func (l *Lexer) read() (rune, bool) {
	if l.pos.Offset >= len(l.src) {
		return eof, true
	}
	r, size := utf8.DecodeRune(l.src[l.pos.Offset:])
	l.pos = l.pos.Advance(r, size)
	if r == utf8.RuneError && size == 1 {
		return r, false
	}
	return r, true
}
