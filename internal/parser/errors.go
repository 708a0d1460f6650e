// Package parser provides a recursive descent parser for regular-expression patterns.
package parser

import (
	"fmt"

	"github.com/kolkov/regfsm/internal/token"
)

// ErrorKind classifies parse errors.
type ErrorKind uint8

const (
	// UnexpectedEnd: the pattern ends where a codepoint is required,
	// such as the upper bound of a range.
	UnexpectedEnd ErrorKind = iota + 1
	// UnterminatedGroup: '(' without a matching ')'.
	UnterminatedGroup
	// UnterminatedSet: '[' without a matching ']'.
	UnterminatedSet
	// DanglingEscape: '\' at the end of the pattern.
	DanglingEscape
	// UnknownEscapeClass: '\' followed by a letter or digit that does not
	// name a class, or a class escape inside a set.
	UnknownEscapeClass
	// UnmatchedGroupClose: ')' without a matching '('.
	UnmatchedGroupClose
	// MissingRepeatOperand: '*' with nothing before it to repeat.
	MissingRepeatOperand
	// InvalidRange: a set range whose low bound exceeds its high bound.
	InvalidRange
	// InvalidUTF8: the pattern is not valid UTF-8.
	InvalidUTF8
	// TooDeep: groups nest deeper than the configured limit.
	TooDeep
)

var kindNames = [...]string{
	UnexpectedEnd:        "unexpected end of pattern",
	UnterminatedGroup:    "unterminated group",
	UnterminatedSet:      "unterminated set",
	DanglingEscape:       "dangling escape",
	UnknownEscapeClass:   "unknown escape",
	UnmatchedGroupClose:  "unmatched ')'",
	MissingRepeatOperand: "missing repeat operand",
	InvalidRange:         "invalid range",
	InvalidUTF8:          "invalid UTF-8",
	TooDeep:              "nesting too deep",
}

// String returns a short description of the error kind.
func (k ErrorKind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return fmt.Sprintf("ErrorKind(%d)", k)
}

// ParseError represents a syntax error encountered during parsing.
// It implements the error interface and includes source position information.
type ParseError struct {
	Kind    ErrorKind      // Error classification
	Pos     token.Position // Position where the error was detected
	Open    token.Position // Opening delimiter of the unterminated construct (optional)
	Message string         // Human-readable error message
}

// Error returns a formatted error message with position information.
func (e *ParseError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s: %s", e.Pos, e.Message)
	}
	return e.Message
}

// Is reports whether target is a *ParseError of the same kind, so that
// errors.Is(err, &ParseError{Kind: UnterminatedSet}) works.
func (e *ParseError) Is(target error) bool {
	t, ok := target.(*ParseError)
	return ok && t.Kind == e.Kind
}

// errorf creates a ParseError at the given position with formatted message.
// The message is prefixed with the kind description.
func errorf(kind ErrorKind, pos token.Position, format string, args ...any) *ParseError {
	msg := kind.String()
	if format != "" {
		msg += ": " + fmt.Sprintf(format, args...)
	}
	return &ParseError{
		Kind:    kind,
		Pos:     pos,
		Message: msg,
	}
}

// unterminated creates a ParseError for a construct opened at open and
// still open at pos.
func unterminated(kind ErrorKind, pos, open token.Position, closer rune) *ParseError {
	e := errorf(kind, pos, "missing %q for construct opened at %s", closer, open)
	e.Open = open
	return e
}
