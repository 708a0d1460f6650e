package fsm

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// WriteDOT writes the automaton in Graphviz DOT syntax. Accept nodes are
// drawn as double circles and an invisible point marks the start node.
func (f *FSM) WriteDOT(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "digraph fsm {")
	fmt.Fprintln(bw, "    rankdir=LR;")
	for i, n := range f.nodes {
		shape := "circle"
		if n.Accept {
			shape = "doublecircle"
		}
		fmt.Fprintf(bw, "    n%d [shape=%s];\n", i, shape)
	}
	for i, n := range f.nodes {
		for _, t := range n.Out {
			fmt.Fprintf(bw, "    n%d -> n%d [label=%s];\n", i, t.Target, dotLabel(t.Cond))
		}
	}
	fmt.Fprintf(bw, "    _start [shape=point];\n    _start -> n%d;\n", f.Start())
	fmt.Fprintln(bw, "}")
	return bw.Flush()
}

// dotLabel quotes a condition as a DOT string. Epsilon is drawn as ε.
func dotLabel(c Condition) string {
	if c.IsEpsilon() {
		return `"ε"`
	}
	return strconv.Quote(c.String())
}
