// Package compiler turns a parsed pattern into a Thompson-style
// nondeterministic automaton.
//
// Construction threads a frontier through the tree: each construct receives
// the nodes its first transitions leave from and returns the nodes its
// matches end on. Node 0 is the start and the final frontier becomes the
// set of accept nodes.
package compiler

import (
	"fmt"

	"github.com/kolkov/regfsm/internal/ast"
	"github.com/kolkov/regfsm/internal/fsm"
)

// CompileError reports an internal invariant violation. It is raised with
// panic: every tree produced by the parser compiles.
type CompileError struct {
	Message string
}

func (e *CompileError) Error() string {
	return e.Message
}

func panicf(format string, args ...any) {
	panic(&CompileError{Message: "compiler: " + fmt.Sprintf(format, args...)})
}

// Compile builds the automaton for node. It panics with a *CompileError if
// node is nil or not a well-formed tree.
func Compile(node ast.Node) *fsm.FSM {
	b := newBuilder()
	start := b.add()
	exits := b.compile(node, frontier{nodes: []int{start}, owned: true})
	for _, n := range exits.nodes {
		b.nodes[n].Accept = true
	}
	return b.finish()
}

// frontier is the set of nodes the next construct attaches to.
// owned is set when it is a single node with no outgoing transitions that
// only the next construct will ever extend.
type frontier struct {
	nodes []int
	owned bool
}

func single(n int) frontier {
	return frontier{nodes: []int{n}, owned: true}
}

// builder holds the node arena under construction. It is local to one
// Compile call.
type builder struct {
	nodes  []fsm.Node
	filled []bool
}

func newBuilder() *builder {
	return &builder{}
}

// add appends a new node with no transitions and returns its index.
func (b *builder) add() int {
	b.nodes = append(b.nodes, fsm.Node{})
	b.filled = append(b.filled, true)
	return len(b.nodes) - 1
}

// reserve appends a placeholder slot. Transitions may target it right
// away; its own transitions are installed later by fill.
func (b *builder) reserve() int {
	b.nodes = append(b.nodes, fsm.Node{})
	b.filled = append(b.filled, false)
	return len(b.nodes) - 1
}

// fill installs the transition list of a reserved slot.
func (b *builder) fill(i int, out ...fsm.Transition) {
	if b.filled[i] {
		panicf("node %d filled twice", i)
	}
	b.nodes[i].Out = out
	b.filled[i] = true
}

// link appends a transition from a filled node.
func (b *builder) link(from, to int, cond fsm.Condition) {
	if !b.filled[from] {
		panicf("link from unfilled node %d", from)
	}
	b.nodes[from].Out = append(b.nodes[from].Out, fsm.Transition{Target: to, Cond: cond})
}

// linkAll links every frontier node to the same target.
func (b *builder) linkAll(fr frontier, to int, cond fsm.Condition) {
	for _, n := range fr.nodes {
		b.link(n, to, cond)
	}
}

// finish checks that every placeholder has been filled and freezes the
// arena.
func (b *builder) finish() *fsm.FSM {
	for i, ok := range b.filled {
		if !ok {
			panicf("node %d reserved but never filled", i)
		}
	}
	f, err := fsm.New(b.nodes)
	if err != nil {
		panicf("%v", err)
	}
	return f
}

func (b *builder) compile(node ast.Node, fr frontier) frontier {
	switch n := node.(type) {
	case *ast.Char:
		return b.step(fr, fsm.OnChar(n.Value))
	case *ast.Primitive:
		return b.step(fr, fsm.OnClass(classOf(n.Class)))
	case *ast.Sequence:
		if len(n.Items) == 0 {
			return b.step(fr, fsm.Epsilon())
		}
		for _, item := range n.Items {
			fr = b.compile(item, fr)
		}
		return fr
	case *ast.Choice:
		return b.compileChoice(n, fr)
	case *ast.Repetition:
		return b.compileRepetition(n, fr)
	case *ast.Set:
		return b.compileSet(n, fr)
	case *ast.Range:
		return b.step(fr, fsm.OnRange(n.Lo, n.Hi))
	case nil:
		panicf("nil node")
	default:
		panicf("unexpected node %T", node)
	}
	return frontier{}
}

// step allocates one node and reaches it from every frontier node by cond.
func (b *builder) step(fr frontier, cond fsm.Condition) frontier {
	to := b.add()
	b.linkAll(fr, to, cond)
	return single(to)
}

// compileChoice compiles every alternative of a right-leaning chain from
// one branch node and returns the union of their exits.
func (b *builder) compileChoice(n *ast.Choice, fr frontier) frontier {
	branch := b.join(fr)
	var exits []int
	for _, alt := range ast.Alternatives(n) {
		out := b.compile(alt, frontier{nodes: []int{branch}})
		exits = append(exits, out.nodes...)
	}
	return frontier{nodes: exits}
}

// join returns a single node standing for fr: the frontier node itself,
// or a new node reached from each of them by epsilon.
func (b *builder) join(fr frontier) int {
	if len(fr.nodes) == 1 {
		return fr.nodes[0]
	}
	j := b.add()
	b.linkAll(fr, j, fsm.Epsilon())
	return j
}

// compileSet links one transition per element to a single target node.
// A multi-node frontier is joined first so the transition count stays
// linear in the number of elements.
func (b *builder) compileSet(n *ast.Set, fr frontier) frontier {
	if len(fr.nodes) > 1 && len(n.Elems) > 1 {
		fr = frontier{nodes: []int{b.join(fr)}}
	}
	to := b.add()
	for _, from := range fr.nodes {
		for _, e := range n.Elems {
			switch e := e.(type) {
			case *ast.Char:
				b.link(from, to, fsm.OnChar(e.Value))
			case *ast.Range:
				b.link(from, to, fsm.OnRange(e.Lo, e.Hi))
			default:
				panicf("unexpected set element %T", e)
			}
		}
	}
	return single(to)
}

// compileRepetition builds
//
//	loop --eps--> entry --body--> exits --eps--> loop
//	loop --eps--> cont
//
// The loop node is the frontier node when the frontier owns it. Otherwise
// it is reserved up front so the body can link back to it and filled once
// the continuation node exists.
func (b *builder) compileRepetition(n *ast.Repetition, fr frontier) frontier {
	body := n.Inner
	if ast.MatchesEmpty(body) {
		body = strip(body)
	}
	if body == nil {
		return b.step(fr, fsm.Epsilon())
	}

	var loop int
	reserved := !(fr.owned && len(fr.nodes) == 1)
	if reserved {
		loop = b.reserve()
		b.linkAll(fr, loop, fsm.Epsilon())
	} else {
		loop = fr.nodes[0]
	}

	entry := b.add()
	exits := b.compile(body, single(entry))
	for _, x := range exits.nodes {
		b.link(x, loop, fsm.Epsilon())
	}
	cont := b.add()

	if reserved {
		b.fill(loop,
			fsm.Transition{Target: entry, Cond: fsm.Epsilon()},
			fsm.Transition{Target: cont, Cond: fsm.Epsilon()},
		)
	} else {
		b.link(loop, entry, fsm.Epsilon())
		b.link(loop, cont, fsm.Epsilon())
	}
	return single(cont)
}

// strip rewrites a tree that matches the empty string into one that does
// not and has the same Kleene closure. It returns nil when the closure is
// just the empty string.
func strip(node ast.Node) ast.Node {
	if !ast.MatchesEmpty(node) {
		return node
	}
	switch n := node.(type) {
	case *ast.Repetition:
		return strip(n.Inner)
	case *ast.Choice:
		return choiceOf(n.Base, []ast.Node{strip(n.Left), strip(n.Right)})
	case *ast.Sequence:
		// Every item matches the empty string, so (x y ...)* is (x|y|...)*.
		parts := make([]ast.Node, len(n.Items))
		for i, item := range n.Items {
			parts[i] = strip(item)
		}
		return choiceOf(n.Base, parts)
	default:
		panicf("unexpected nullable node %T", node)
		return nil
	}
}

// choiceOf folds the non-nil parts into a right-leaning choice.
func choiceOf(base ast.Base, parts []ast.Node) ast.Node {
	var out ast.Node
	for i := len(parts) - 1; i >= 0; i-- {
		switch {
		case parts[i] == nil:
		case out == nil:
			out = parts[i]
		default:
			out = &ast.Choice{Base: base, Left: parts[i], Right: out}
		}
	}
	return out
}

func classOf(c ast.Class) fsm.Class {
	switch c {
	case ast.Word:
		return fsm.Word
	case ast.Digit:
		return fsm.Digit
	default:
		panicf("unknown class %v", c)
		return 0
	}
}
