// Package fsm defines the compiled automaton: a nondeterministic
// finite-state machine stored as an arena of nodes whose transitions
// refer to other nodes by index.
//
// Node 0 is the start state. A node is terminal when Accept is set;
// there may be several. Repetition introduces back-edges, so the graph
// may be cyclic, but every cycle consumes input.
//
// An FSM is immutable once built and safe for concurrent use.
package fsm

import (
	"fmt"
	"slices"
)

// Transition is a labeled edge to the node at index Target.
type Transition struct {
	Target int
	Cond   Condition
}

// String returns the transition as written in a disassembly listing.
func (t Transition) String() string {
	return fmt.Sprintf("%s -> %d", t.Cond, t.Target)
}

// Node is one state of the automaton.
type Node struct {
	Accept bool
	Out    []Transition // ordered outgoing transitions
}

// FSM is a compiled automaton.
type FSM struct {
	nodes []Node
}

// New copies nodes into a new FSM and validates it.
func New(nodes []Node) (*FSM, error) {
	f := &FSM{nodes: cloneNodes(nodes)}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return f, nil
}

func cloneNodes(nodes []Node) []Node {
	out := make([]Node, len(nodes))
	for i, n := range nodes {
		out[i] = Node{Accept: n.Accept, Out: slices.Clone(n.Out)}
	}
	return out
}

// Len returns the number of nodes.
func (f *FSM) Len() int {
	return len(f.nodes)
}

// Start returns the index of the start node, which is always 0.
func (f *FSM) Start() int {
	return 0
}

// Node returns a copy of node i. It panics if i is out of range.
func (f *FSM) Node(i int) Node {
	n := f.nodes[i]
	return Node{Accept: n.Accept, Out: slices.Clone(n.Out)}
}

// Nodes returns a copy of the arena.
func (f *FSM) Nodes() []Node {
	return cloneNodes(f.nodes)
}

// IsAccept reports whether node i is an accept state.
func (f *FSM) IsAccept(i int) bool {
	return f.nodes[i].Accept
}

// Out returns the number of transitions leaving node i.
func (f *FSM) Out(i int) int {
	return len(f.nodes[i].Out)
}

// Transition returns the j-th transition leaving node i.
func (f *FSM) Transition(i, j int) Transition {
	return f.nodes[i].Out[j]
}

// Accepting returns the indices of all accept nodes in ascending order.
func (f *FSM) Accepting() []int {
	var acc []int
	for i, n := range f.nodes {
		if n.Accept {
			acc = append(acc, i)
		}
	}
	return acc
}

// NumTransitions returns the total number of transitions.
func (f *FSM) NumTransitions() int {
	total := 0
	for _, n := range f.nodes {
		total += len(n.Out)
	}
	return total
}

// Equal reports whether f and g have identical node numbering,
// accept flags and transition lists.
func (f *FSM) Equal(g *FSM) bool {
	if len(f.nodes) != len(g.nodes) {
		return false
	}
	for i := range f.nodes {
		a, b := f.nodes[i], g.nodes[i]
		if a.Accept != b.Accept || !slices.Equal(a.Out, b.Out) {
			return false
		}
	}
	return true
}

// Reachable returns, for every node, whether it can be reached from the
// start node along any transitions.
func (f *FSM) Reachable() []bool {
	seen := make([]bool, len(f.nodes))
	if len(f.nodes) == 0 {
		return seen
	}
	stack := []int{0}
	seen[0] = true
	for len(stack) > 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, t := range f.nodes[i].Out {
			if !seen[t.Target] {
				seen[t.Target] = true
				stack = append(stack, t.Target)
			}
		}
	}
	return seen
}
