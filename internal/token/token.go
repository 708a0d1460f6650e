// Package token defines lexical tokens for regular-expression patterns.
package token

import "fmt"

// Token represents a lexical token type.
type Token uint8

const (
	// Special tokens
	ILLEGAL Token = iota // <illegal>
	EOF                  // EOF

	// Literal codepoint
	CHAR // char

	// Escape: a backslash followed by one codepoint
	ESCAPE // escape

	// Operators and delimiters
	ALT      // |
	STAR     // *
	LPAREN   // (
	RPAREN   // )
	LBRACKET // [
	RBRACKET // ]
	DASH     // -
)

var names = [...]string{
	ILLEGAL:  "<illegal>",
	EOF:      "end of pattern",
	CHAR:     "char",
	ESCAPE:   "escape",
	ALT:      "|",
	STAR:     "*",
	LPAREN:   "(",
	RPAREN:   ")",
	LBRACKET: "[",
	RBRACKET: "]",
	DASH:     "-",
}

// String returns a human-readable name for the token.
func (t Token) String() string {
	if int(t) < len(names) && names[t] != "" {
		return names[t]
	}
	return fmt.Sprintf("token(%d)", t)
}

// operators maps metacharacters to their token types.
var operators = map[rune]Token{
	'|': ALT,
	'*': STAR,
	'(': LPAREN,
	')': RPAREN,
	'[': LBRACKET,
	']': RBRACKET,
	'-': DASH,
}

// Lookup returns the token type for a single unescaped codepoint.
// Returns CHAR if r is not a metacharacter.
func Lookup(r rune) Token {
	if tok, ok := operators[r]; ok {
		return tok
	}
	return CHAR
}

// IsMeta reports whether r must be escaped to appear as a literal
// outside a character class.
func IsMeta(r rune) bool {
	switch r {
	case '|', '*', '(', ')', '[', '\\':
		return true
	}
	return false
}

// IsSetMeta reports whether r must be escaped to appear as a literal
// inside a character class.
func IsSetMeta(r rune) bool {
	return r == ']' || r == '\\' || r == '-' || r == '['
}
