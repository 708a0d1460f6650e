// Package ast defines the abstract syntax tree for regular-expression patterns.
//
// The AST is a closed tagged union. Consumers switch on the concrete node
// type; the unexported marker methods keep other packages from adding cases.
//
// Node hierarchy:
//
//	Node (interface)
//	├── Char        - one literal codepoint
//	├── Primitive   - one codepoint of a named class (\w, \d)
//	├── Sequence    - concatenation, possibly empty
//	├── Choice      - binary alternation
//	├── Repetition  - Kleene star
//	├── Set         - character class of SetElem
//	└── Range       - inclusive codepoint range (Set elements only)
//
// Grouping parentheses do not produce a node of their own.
package ast

import (
	"fmt"

	"github.com/kolkov/regfsm/internal/token"
)

// Node is the interface implemented by all AST nodes.
type Node interface {
	// Pos returns the position of the first codepoint belonging to this node.
	Pos() token.Position

	// End returns the position of the first codepoint immediately after this node.
	End() token.Position

	node() // marker method to prevent external implementations
}

// SetElem is the interface for character class elements: *Char or *Range.
type SetElem interface {
	Node
	setElem()
}

// Base provides the position fields shared by all nodes.
type Base struct {
	StartPos token.Position // Position of first codepoint
	EndPos   token.Position // Position after last codepoint
}

func (b *Base) Pos() token.Position { return b.StartPos }
func (b *Base) End() token.Position { return b.EndPos }
func (b *Base) node()               {}

// MakeBase creates a Base with the given positions.
func MakeBase(start, end token.Position) Base {
	return Base{StartPos: start, EndPos: end}
}

// Class names a predefined character class.
type Class uint8

const (
	Word  Class = iota // \w
	Digit              // \d
)

// String returns the escape that denotes the class.
func (c Class) String() string {
	switch c {
	case Word:
		return `\w`
	case Digit:
		return `\d`
	default:
		return fmt.Sprintf("class(%d)", c)
	}
}

// Char matches exactly one literal codepoint.
type Char struct {
	Base
	Value rune
}

func (*Char) setElem() {}

// Primitive matches one codepoint belonging to Class.
type Primitive struct {
	Base
	Class Class
}

// Sequence matches its items one after another.
// An empty Sequence matches the empty string.
type Sequence struct {
	Base
	Items []Node
}

// Choice matches either Left or Right.
type Choice struct {
	Base
	Left  Node
	Right Node
}

// Repetition matches zero or more occurrences of Inner.
type Repetition struct {
	Base
	Inner Node
}

// Set matches one codepoint equal to a listed Char or inside a listed Range.
// An empty Set matches nothing.
type Set struct {
	Base
	Elems []SetElem
}

// Range matches one codepoint c with Lo <= c && c <= Hi.
type Range struct {
	Base
	Lo rune
	Hi rune
}

func (*Range) setElem() {}

// Contains reports whether r lies within the range, bounds included.
func (r *Range) Contains(c rune) bool {
	return r.Lo <= c && c <= r.Hi
}

// NodeSpan returns the source span covered by n.
func NodeSpan(n Node) token.Span {
	return token.Span{Start: n.Pos(), End: n.End()}
}
