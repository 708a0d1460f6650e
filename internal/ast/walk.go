package ast

// Walk traverses an AST in depth-first pre-order.
// For each node, it calls fn(node). If fn returns false,
// the children of that node are not visited.
//
// Walk keeps an explicit stack, so long alternation chains do not
// deepen the call stack.
//
// Example: count all literal codepoints
//
//	count := 0
//	ast.Walk(root, func(n ast.Node) bool {
//	    if _, ok := n.(*ast.Char); ok {
//	        count++
//	    }
//	    return true // continue traversal
//	})
func Walk(node Node, fn func(Node) bool) {
	if node == nil {
		return
	}
	stack := []Node{node}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(n) {
			continue
		}
		// Children are pushed in reverse so they pop in source order.
		switch n := n.(type) {
		case *Char, *Primitive, *Range:
			// no children
		case *Sequence:
			for i := len(n.Items) - 1; i >= 0; i-- {
				stack = append(stack, n.Items[i])
			}
		case *Choice:
			stack = append(stack, n.Right, n.Left)
		case *Repetition:
			stack = append(stack, n.Inner)
		case *Set:
			for i := len(n.Elems) - 1; i >= 0; i-- {
				stack = append(stack, n.Elems[i])
			}
		}
	}
}

// Depth returns the height of the tree rooted at node.
// A leaf has depth 1; nil has depth 0.
func Depth(node Node) int {
	type frame struct {
		n     Node
		level int
	}
	if node == nil {
		return 0
	}
	deepest := 0
	stack := []frame{{node, 1}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if f.level > deepest {
			deepest = f.level
		}
		next := f.level + 1
		switch n := f.n.(type) {
		case *Sequence:
			for _, item := range n.Items {
				stack = append(stack, frame{item, next})
			}
		case *Choice:
			stack = append(stack, frame{n.Left, next}, frame{n.Right, next})
		case *Repetition:
			stack = append(stack, frame{n.Inner, next})
		case *Set:
			for _, e := range n.Elems {
				stack = append(stack, frame{e, next})
			}
		}
	}
	return deepest
}

// Alternatives flattens a right-leaning Choice chain into its alternatives.
// A node that is not a Choice is returned as the only alternative.
func Alternatives(node Node) []Node {
	var alts []Node
	for {
		c, ok := node.(*Choice)
		if !ok {
			return append(alts, node)
		}
		alts = append(alts, c.Left)
		node = c.Right
	}
}

// MatchesEmpty reports whether the pattern accepts the empty string.
func MatchesEmpty(node Node) bool {
	switch n := node.(type) {
	case *Char, *Primitive, *Set, *Range:
		return false
	case *Repetition:
		return true
	case *Sequence:
		for _, item := range n.Items {
			if !MatchesEmpty(item) {
				return false
			}
		}
		return true
	case *Choice:
		for _, alt := range Alternatives(n) {
			if MatchesEmpty(alt) {
				return true
			}
		}
		return false
	default:
		return false
	}
}
