package regfsm

import "github.com/kolkov/regfsm/internal/fsm"

// FSM is a compiled automaton. Node 0 is the start node.
type FSM = fsm.FSM

// Node is one state of an FSM.
type Node = fsm.Node

// Transition is a labeled edge to another node, by index.
type Transition = fsm.Transition

// Condition labels a transition.
type Condition = fsm.Condition

// ConditionKind discriminates conditions.
type ConditionKind = fsm.Kind

// Class names a predefined ASCII character class.
type Class = fsm.Class

// Condition kinds.
const (
	KindEpsilon = fsm.KindEpsilon
	KindChar    = fsm.KindChar
	KindRange   = fsm.KindRange
	KindClass   = fsm.KindClass
)

// Character classes.
const (
	Word  = fsm.Word
	Digit = fsm.Digit
)

// Epsilon returns a condition that consumes no input.
func Epsilon() Condition { return fsm.Epsilon() }

// OnChar returns a condition matching exactly r.
func OnChar(r rune) Condition { return fsm.OnChar(r) }

// OnRange returns a condition matching lo through hi, both included.
func OnRange(lo, hi rune) Condition { return fsm.OnRange(lo, hi) }

// OnClass returns a condition matching one codepoint of c.
func OnClass(c Class) Condition { return fsm.OnClass(c) }

// New builds an FSM from a node arena, as emitted by WriteGo. The nodes
// are copied. It returns an *InvalidError if a target is out of range, a
// condition is malformed or epsilon transitions form a cycle.
func New(nodes []Node) (*FSM, error) {
	return fsm.New(nodes)
}

// MustNew is like New but panics on error.
func MustNew(nodes []Node) *FSM {
	f, err := New(nodes)
	if err != nil {
		panic(err)
	}
	return f
}

// ParseListing reads the output of FSM.Disassemble back into an FSM.
func ParseListing(text string) (*FSM, error) {
	return fsm.ParseListing(text)
}
