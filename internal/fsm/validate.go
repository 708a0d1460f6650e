package fsm

import "fmt"

// InvalidError reports a structural defect in a node arena.
type InvalidError struct {
	Node       int // offending node, or -1 for the arena as a whole
	Transition int // offending transition within Node, or -1
	Message    string
}

func (e *InvalidError) Error() string {
	switch {
	case e.Node < 0:
		return "invalid fsm: " + e.Message
	case e.Transition < 0:
		return fmt.Sprintf("invalid fsm: node %d: %s", e.Node, e.Message)
	default:
		return fmt.Sprintf("invalid fsm: node %d transition %d: %s", e.Node, e.Transition, e.Message)
	}
}

func invalid(node, tr int, format string, args ...any) *InvalidError {
	return &InvalidError{Node: node, Transition: tr, Message: fmt.Sprintf(format, args...)}
}

// Validate checks the arena invariants: at least one node, every target in
// range, well-formed conditions and no cycle made only of epsilon
// transitions. It returns nil or an *InvalidError.
func (f *FSM) Validate() error {
	if len(f.nodes) == 0 {
		return invalid(-1, -1, "no start node")
	}
	for i, n := range f.nodes {
		for j, t := range n.Out {
			if t.Target < 0 || t.Target >= len(f.nodes) {
				return invalid(i, j, "target %d out of range [0, %d)", t.Target, len(f.nodes))
			}
			if err := checkCondition(t.Cond); err != "" {
				return invalid(i, j, "%s", err)
			}
		}
	}
	return f.checkEpsilonCycles()
}

func checkCondition(c Condition) string {
	switch c.Kind {
	case KindEpsilon:
		return ""
	case KindChar:
		if c.Lo != c.Hi {
			return fmt.Sprintf("char condition with distinct bounds %q, %q", c.Lo, c.Hi)
		}
	case KindRange:
		if c.Hi < c.Lo {
			return fmt.Sprintf("inverted range %q-%q", c.Lo, c.Hi)
		}
	case KindClass:
		if c.Class != Word && c.Class != Digit {
			return fmt.Sprintf("unknown %s", c.Class)
		}
	default:
		return "unknown condition " + c.Kind.String()
	}
	return ""
}

// DFS colors for epsilon cycle detection.
const (
	white = iota
	grey
	black
)

// checkEpsilonCycles runs an iterative depth-first search over the
// epsilon subgraph and fails on the first back-edge.
func (f *FSM) checkEpsilonCycles() error {
	type frame struct {
		node int
		next int // index of the next transition to examine
	}
	color := make([]uint8, len(f.nodes))
	var stack []frame
	for root := range f.nodes {
		if color[root] != white {
			continue
		}
		color[root] = grey
		stack = append(stack[:0], frame{node: root})
		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			out := f.nodes[top.node].Out
			if top.next == len(out) {
				color[top.node] = black
				stack = stack[:len(stack)-1]
				continue
			}
			j := top.next
			top.next++
			t := out[j]
			if !t.Cond.IsEpsilon() {
				continue
			}
			switch color[t.Target] {
			case grey:
				return invalid(top.node, j, "epsilon cycle through node %d", t.Target)
			case white:
				color[t.Target] = grey
				stack = append(stack, frame{node: t.Target})
			}
		}
	}
	return nil
}
