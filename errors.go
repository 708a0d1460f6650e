package regfsm

import (
	"errors"
	"fmt"

	"github.com/kolkov/regfsm/internal/fsm"
	"github.com/kolkov/regfsm/internal/parser"
)

// ErrorKind classifies parse errors.
type ErrorKind = parser.ErrorKind

// Parse error kinds.
const (
	UnexpectedEnd        = parser.UnexpectedEnd
	UnterminatedGroup    = parser.UnterminatedGroup
	UnterminatedSet      = parser.UnterminatedSet
	DanglingEscape       = parser.DanglingEscape
	UnknownEscapeClass   = parser.UnknownEscapeClass
	UnmatchedGroupClose  = parser.UnmatchedGroupClose
	MissingRepeatOperand = parser.MissingRepeatOperand
	InvalidRange         = parser.InvalidRange
	InvalidUTF8          = parser.InvalidUTF8
	TooDeep              = parser.TooDeep
)

// ParseError represents a syntax error in a pattern.
type ParseError struct {
	Kind     ErrorKind // Error classification
	Filename string    // Config.Filename, if set
	Offset   int       // 0-based byte offset
	Index    int       // 0-based codepoint index
	Line     int       // 1-based line number
	Column   int       // 1-based column, in codepoints
	Message  string    // Error description
}

func (e *ParseError) Error() string {
	if e.Filename != "" {
		return fmt.Sprintf("parse error at %s:%d:%d: %s", e.Filename, e.Line, e.Column, e.Message)
	}
	return fmt.Sprintf("parse error at %d:%d: %s", e.Line, e.Column, e.Message)
}

// Is reports whether target is a *ParseError of the same kind.
func (e *ParseError) Is(target error) bool {
	t, ok := target.(*ParseError)
	return ok && t.Kind == e.Kind
}

// InvalidError reports a structurally invalid node arena passed to [New].
type InvalidError = fsm.InvalidError

// convertError turns an internal parser error into the public type.
func convertError(err error) error {
	var pe *parser.ParseError
	if !errors.As(err, &pe) {
		return &ParseError{Message: err.Error()}
	}
	return &ParseError{
		Kind:     pe.Kind,
		Filename: pe.Pos.Filename,
		Offset:   pe.Pos.Offset,
		Index:    pe.Pos.Index,
		Line:     pe.Pos.Line,
		Column:   pe.Pos.Column,
		Message:  pe.Message,
	}
}
