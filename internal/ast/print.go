package ast

import (
	"fmt"
	"io"
	"strings"

	"github.com/kolkov/regfsm/internal/token"
)

// Printer provides pretty-printing for AST nodes.
// It outputs an indented tree with source spans, suitable for debugging.
type Printer struct {
	w      io.Writer
	indent int
	err    error
}

// NewPrinter creates a new Printer that writes to w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Print writes a pretty-printed representation of the node to the writer.
func (p *Printer) Print(node Node) error {
	p.printNode(node)
	return p.err
}

func (p *Printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *Printer) writeIndent() {
	if p.err != nil {
		return
	}
	for i := 0; i < p.indent; i++ {
		_, p.err = io.WriteString(p.w, "    ")
	}
}

func (p *Printer) line(n Node, format string, args ...any) {
	p.writeIndent()
	p.printf(format, args...)
	p.printf(" %s\n", NodeSpan(n))
}

func (p *Printer) children(nodes ...Node) {
	p.indent++
	for _, c := range nodes {
		p.printNode(c)
	}
	p.indent--
}

func (p *Printer) printNode(node Node) {
	if node == nil {
		p.writeIndent()
		p.printf("<nil>\n")
		return
	}

	switch n := node.(type) {
	case *Char:
		p.line(n, "Char %q", n.Value)
	case *Primitive:
		p.line(n, "Primitive %s", n.Class)
	case *Range:
		p.line(n, "Range %q-%q", n.Lo, n.Hi)
	case *Sequence:
		p.line(n, "Sequence")
		p.children(n.Items...)
	case *Choice:
		p.line(n, "Choice")
		p.children(n.Left, n.Right)
	case *Repetition:
		p.line(n, "Repetition")
		p.children(n.Inner)
	case *Set:
		p.line(n, "Set")
		elems := make([]Node, len(n.Elems))
		for i, e := range n.Elems {
			elems[i] = e
		}
		p.children(elems...)
	default:
		p.writeIndent()
		p.printf("<%T>\n", node)
	}
}

// String renders node back to pattern syntax. Parsing the result yields
// a tree of the same shape.
func String(node Node) string {
	var sb strings.Builder
	writePattern(&sb, node)
	return sb.String()
}

func writePattern(sb *strings.Builder, node Node) {
	switch n := node.(type) {
	case nil:
	case *Char:
		writeRune(sb, n.Value, token.IsMeta)
	case *Primitive:
		sb.WriteString(n.Class.String())
	case *Range:
		sb.WriteByte('[')
		writeRange(sb, n)
		sb.WriteByte(']')
	case *Set:
		sb.WriteByte('[')
		for _, e := range n.Elems {
			switch e := e.(type) {
			case *Char:
				writeRune(sb, e.Value, token.IsSetMeta)
			case *Range:
				writeRange(sb, e)
			}
		}
		sb.WriteByte(']')
	case *Sequence:
		for _, item := range n.Items {
			writeGrouped(sb, item, needsGroupInSequence(item))
		}
	case *Choice:
		_, leftChoice := n.Left.(*Choice)
		writeGrouped(sb, n.Left, leftChoice)
		sb.WriteByte('|')
		writePattern(sb, n.Right)
	case *Repetition:
		switch n.Inner.(type) {
		case *Char, *Primitive, *Set, *Range:
			writePattern(sb, n.Inner)
		default:
			writeGrouped(sb, n.Inner, true)
		}
		sb.WriteByte('*')
	}
}

func needsGroupInSequence(n Node) bool {
	switch n.(type) {
	case *Choice, *Sequence:
		return true
	}
	return false
}

func writeGrouped(sb *strings.Builder, n Node, group bool) {
	if group {
		sb.WriteByte('(')
	}
	writePattern(sb, n)
	if group {
		sb.WriteByte(')')
	}
}

func writeRange(sb *strings.Builder, r *Range) {
	writeRune(sb, r.Lo, token.IsSetMeta)
	sb.WriteByte('-')
	writeRune(sb, r.Hi, token.IsSetMeta)
}

func writeRune(sb *strings.Builder, r rune, meta func(rune) bool) {
	if meta(r) {
		sb.WriteByte('\\')
	}
	sb.WriteRune(r)
}
