// Package fsmtest provides test support for compiled automata: a reference
// simulation that defines acceptance, and an oracle backed by an
// independent regex engine for differential checks.
package fsmtest

import (
	"fmt"
	"strings"

	"github.com/coregx/coregex"

	"github.com/kolkov/regfsm/internal/ast"
	"github.com/kolkov/regfsm/internal/fsm"
)

// Accepts reports whether f accepts the whole of input. It simulates the
// automaton on the set of active nodes: epsilon transitions are followed
// without consuming input, every other transition consumes one codepoint
// whose Condition.Matches it.
func Accepts(f *fsm.FSM, input string) bool {
	active := closure(f, []int{f.Start()})
	for _, r := range input {
		var next []int
		for _, n := range active {
			for j := range f.Out(n) {
				t := f.Transition(n, j)
				if !t.Cond.IsEpsilon() && t.Cond.Matches(r) {
					next = append(next, t.Target)
				}
			}
		}
		if len(next) == 0 {
			return false
		}
		active = closure(f, next)
	}
	for _, n := range active {
		if f.IsAccept(n) {
			return true
		}
	}
	return false
}

// closure returns the nodes reachable from seeds by epsilon transitions,
// seeds included, without duplicates.
func closure(f *fsm.FSM, seeds []int) []int {
	seen := make(map[int]bool, len(seeds))
	var out []int
	stack := append([]int(nil), seeds...)
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
		for j := range f.Out(n) {
			if t := f.Transition(n, j); t.Cond.IsEpsilon() {
				stack = append(stack, t.Target)
			}
		}
	}
	return out
}

// Oracle decides whole-string acceptance with coregex, from an RE2
// rendering of the same tree.
type Oracle struct {
	pattern string
	re      *coregex.Regexp
}

// NewOracle renders node as an anchored RE2 pattern and compiles it.
// ok is false when the tree has no RE2 rendering (an empty set).
func NewOracle(node ast.Node) (o *Oracle, ok bool, err error) {
	var sb strings.Builder
	sb.WriteString("^(?:")
	if !writeRE2(&sb, node) {
		return nil, false, nil
	}
	sb.WriteString(")$")

	pattern := sb.String()
	re, err := coregex.Compile(pattern)
	if err != nil {
		return nil, true, fmt.Errorf("fsmtest: compile %q: %w", pattern, err)
	}
	return &Oracle{pattern: pattern, re: re}, true, nil
}

// Pattern returns the RE2 pattern the oracle was compiled from.
func (o *Oracle) Pattern() string {
	return o.pattern
}

// Accepts reports whether the oracle matches the whole of input.
func (o *Oracle) Accepts(input string) bool {
	return o.re.MatchString(input)
}

// RE2 returns the RE2 rendering of node, or false for an empty set.
func RE2(node ast.Node) (string, bool) {
	var sb strings.Builder
	if !writeRE2(&sb, node) {
		return "", false
	}
	return sb.String(), true
}

func writeRE2(sb *strings.Builder, node ast.Node) bool {
	switch n := node.(type) {
	case *ast.Char:
		writeRE2Rune(sb, n.Value)
	case *ast.Primitive:
		switch n.Class {
		case ast.Word:
			sb.WriteString("[0-9A-Za-z_]")
		case ast.Digit:
			sb.WriteString("[0-9]")
		default:
			return false
		}
	case *ast.Sequence:
		sb.WriteString("(?:")
		for _, item := range n.Items {
			if !writeRE2(sb, item) {
				return false
			}
		}
		sb.WriteString(")")
	case *ast.Choice:
		sb.WriteString("(?:")
		for i, alt := range ast.Alternatives(n) {
			if i > 0 {
				sb.WriteByte('|')
			}
			if !writeRE2(sb, alt) {
				return false
			}
		}
		sb.WriteString(")")
	case *ast.Repetition:
		sb.WriteString("(?:")
		if !writeRE2(sb, n.Inner) {
			return false
		}
		sb.WriteString(")*")
	case *ast.Set:
		if len(n.Elems) == 0 {
			return false
		}
		sb.WriteByte('[')
		for _, e := range n.Elems {
			switch e := e.(type) {
			case *ast.Char:
				writeRE2Rune(sb, e.Value)
			case *ast.Range:
				writeRE2Rune(sb, e.Lo)
				sb.WriteByte('-')
				writeRE2Rune(sb, e.Hi)
			}
		}
		sb.WriteByte(']')
	case *ast.Range:
		sb.WriteByte('[')
		writeRE2Rune(sb, n.Lo)
		sb.WriteByte('-')
		writeRE2Rune(sb, n.Hi)
		sb.WriteByte(']')
	default:
		return false
	}
	return true
}

// writeRE2Rune writes r so that it is literal both inside and outside a
// bracket expression.
func writeRE2Rune(sb *strings.Builder, r rune) {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		sb.WriteRune(r)
	default:
		fmt.Fprintf(sb, `\x{%x}`, r)
	}
}
