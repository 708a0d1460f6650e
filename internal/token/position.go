package token

import "fmt"

// Position represents a position in a pattern.
type Position struct {
	// Filename is the name the pattern was loaded from (optional).
	Filename string
	// Line number (1-indexed).
	Line int
	// Column is the codepoint offset on the line (1-indexed).
	Column int
	// Offset is the byte offset from the start of the pattern (0-indexed).
	Offset int
	// Index is the codepoint offset from the start of the pattern (0-indexed).
	Index int
}

// Start returns the position of the first codepoint of a pattern.
func Start(filename string) Position {
	return Position{Filename: filename, Line: 1, Column: 1}
}

// String returns a string representation of the position.
// Format: "filename:line:column" or "line:column" if filename is empty.
func (p Position) String() string {
	if p.Filename != "" {
		return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Column)
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// IsValid returns true if the position is valid (line > 0).
func (p Position) IsValid() bool {
	return p.Line > 0
}

// Advance returns the position following the codepoint r, which occupies
// size bytes at p.
func (p Position) Advance(r rune, size int) Position {
	p.Offset += size
	p.Index++
	if r == '\n' {
		p.Line++
		p.Column = 1
	} else {
		p.Column++
	}
	return p
}

// Before returns true if p is before other in the pattern.
func (p Position) Before(other Position) bool {
	return p.Offset < other.Offset
}

// Span represents a range in a pattern from Start to End.
type Span struct {
	Start Position
	End   Position
}

// String returns a string representation of the span.
func (s Span) String() string {
	if s.Start.Line == s.End.Line {
		return fmt.Sprintf("%s-%d", s.Start.String(), s.End.Column)
	}
	return fmt.Sprintf("%s-%s", s.Start.String(), s.End.String())
}

// Contains returns true if the span contains the given position.
func (s Span) Contains(p Position) bool {
	return !p.Before(s.Start) && p.Before(s.End)
}
