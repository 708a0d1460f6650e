package ast_test

import (
	"strings"
	"testing"

	"github.com/kolkov/regfsm/internal/ast"
	"github.com/kolkov/regfsm/internal/parser"
	"github.com/kolkov/regfsm/internal/token"
)

func parse(t *testing.T, src string) ast.Node {
	t.Helper()
	node, err := parser.Parse(src)
	if err != nil {
		t.Fatalf("Parse(%q) error = %v", src, err)
	}
	return node
}

// TestNodeInterface verifies all node types implement Node correctly.
func TestNodeInterface(t *testing.T) {
	pos := token.Position{Line: 1, Column: 1, Offset: 0}
	endPos := token.Position{Line: 1, Column: 4, Offset: 3, Index: 3}
	base := ast.MakeBase(pos, endPos)

	nodes := []ast.Node{
		&ast.Char{Base: base},
		&ast.Primitive{Base: base},
		&ast.Sequence{Base: base},
		&ast.Choice{Base: base},
		&ast.Repetition{Base: base},
		&ast.Set{Base: base},
		&ast.Range{Base: base},
	}

	for _, n := range nodes {
		if n.Pos() != pos {
			t.Errorf("%T.Pos() = %v, want %v", n, n.Pos(), pos)
		}
		if n.End() != endPos {
			t.Errorf("%T.End() = %v, want %v", n, n.End(), endPos)
		}
		span := ast.NodeSpan(n)
		if !span.Contains(token.Position{Line: 1, Column: 2, Offset: 1}) {
			t.Errorf("%T span %s should contain offset 1", n, span)
		}
		if span.Contains(endPos) {
			t.Errorf("%T span %s should not contain its end", n, span)
		}
	}

	// Set elements are limited to Char and Range.
	var _ ast.SetElem = &ast.Char{}
	var _ ast.SetElem = &ast.Range{}
}

func TestClassString(t *testing.T) {
	if got := ast.Word.String(); got != `\w` {
		t.Errorf("Word.String() = %q", got)
	}
	if got := ast.Digit.String(); got != `\d` {
		t.Errorf("Digit.String() = %q", got)
	}
	if got := ast.Class(9).String(); got != "class(9)" {
		t.Errorf("Class(9).String() = %q", got)
	}
}

func TestRangeContains(t *testing.T) {
	r := &ast.Range{Lo: 'a', Hi: 'c'}
	for _, c := range "abc" {
		if !r.Contains(c) {
			t.Errorf("Contains(%q) = false, want true", c)
		}
	}
	for _, c := range "`d" {
		if r.Contains(c) {
			t.Errorf("Contains(%q) = true, want false", c)
		}
	}
}

func TestWalkOrder(t *testing.T) {
	root := parse(t, "a(b|[c-d])*")

	var kinds []string
	ast.Walk(root, func(n ast.Node) bool {
		switch n := n.(type) {
		case *ast.Char:
			kinds = append(kinds, string(n.Value))
		case *ast.Range:
			kinds = append(kinds, string(n.Lo)+"-"+string(n.Hi))
		case *ast.Sequence:
			kinds = append(kinds, "seq")
		case *ast.Choice:
			kinds = append(kinds, "alt")
		case *ast.Repetition:
			kinds = append(kinds, "star")
		case *ast.Set:
			kinds = append(kinds, "set")
		}
		return true
	})

	want := "seq a star alt b set c-d"
	if got := strings.Join(kinds, " "); got != want {
		t.Errorf("Walk order = %q, want %q", got, want)
	}
}

func TestWalkSkipChildren(t *testing.T) {
	root := parse(t, "a(bc)*d")

	count := 0
	ast.Walk(root, func(n ast.Node) bool {
		if _, ok := n.(*ast.Char); ok {
			count++
		}
		_, isRep := n.(*ast.Repetition)
		return !isRep
	})
	if count != 2 {
		t.Errorf("visited %d chars, want 2", count)
	}

	ast.Walk(nil, func(ast.Node) bool {
		t.Fatal("fn called for nil root")
		return true
	})
}

func TestDepth(t *testing.T) {
	tests := []struct {
		src  string
		want int
	}{
		{"a", 1},
		{"ab", 2},
		{"a*", 2},
		{"(a*)*", 3},
		{"[a-b]", 2},
		{"a|b|c", 3},
		{"x(a|b*)", 4},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			if got := ast.Depth(parse(t, tt.src)); got != tt.want {
				t.Errorf("Depth(%q) = %d, want %d", tt.src, got, tt.want)
			}
		})
	}

	if got := ast.Depth(nil); got != 0 {
		t.Errorf("Depth(nil) = %d, want 0", got)
	}
}

func TestAlternatives(t *testing.T) {
	alts := ast.Alternatives(parse(t, "a|bc|"))
	if len(alts) != 3 {
		t.Fatalf("len = %d, want 3", len(alts))
	}
	if got := ast.String(alts[1]); got != "bc" {
		t.Errorf("alts[1] = %q, want %q", got, "bc")
	}
	if got := ast.String(alts[2]); got != "" {
		t.Errorf("alts[2] = %q, want empty", got)
	}

	if alts := ast.Alternatives(parse(t, "ab")); len(alts) != 1 {
		t.Errorf("non-choice alternatives = %d, want 1", len(alts))
	}
}

func TestMatchesEmpty(t *testing.T) {
	tests := []struct {
		src  string
		want bool
	}{
		{"", true},
		{"a", false},
		{"a*", true},
		{"a*b*", true},
		{"a*b", false},
		{"a|", true},
		{"a|b", false},
		{"a|b|()", true},
		{"[]", false},
		{"[a-z]*", true},
		{`\w`, false},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			if got := ast.MatchesEmpty(parse(t, tt.src)); got != tt.want {
				t.Errorf("MatchesEmpty(%q) = %v, want %v", tt.src, got, tt.want)
			}
		})
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		name string
		node ast.Node
		want string
	}{
		{"char", &ast.Char{Value: 'a'}, "a"},
		{"meta char", &ast.Char{Value: '*'}, `\*`},
		{"backslash", &ast.Char{Value: '\\'}, `\\`},
		{"class", &ast.Primitive{Class: ast.Digit}, `\d`},
		{"empty", &ast.Sequence{}, ""},
		{"range", &ast.Range{Lo: 'a', Hi: 'z'}, "[a-z]"},
		{
			"choice in sequence",
			&ast.Sequence{Items: []ast.Node{
				&ast.Choice{Left: &ast.Char{Value: 'a'}, Right: &ast.Char{Value: 'b'}},
				&ast.Char{Value: 'c'},
			}},
			"(a|b)c",
		},
		{
			"left-leaning choice",
			&ast.Choice{
				Left:  &ast.Choice{Left: &ast.Char{Value: 'a'}, Right: &ast.Char{Value: 'b'}},
				Right: &ast.Char{Value: 'c'},
			},
			"(a|b)|c",
		},
		{
			"star of sequence",
			&ast.Repetition{Inner: &ast.Sequence{Items: []ast.Node{
				&ast.Char{Value: 'a'}, &ast.Char{Value: 'b'},
			}}},
			"(ab)*",
		},
		{
			"set escapes",
			&ast.Set{Elems: []ast.SetElem{
				&ast.Char{Value: ']'},
				&ast.Range{Lo: '-', Hi: '/'},
				&ast.Char{Value: '*'},
			}},
			`[\]\--/*]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ast.String(tt.node); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPrinter(t *testing.T) {
	var sb strings.Builder
	if err := ast.NewPrinter(&sb).Print(parse(t, "a[b-c]*")); err != nil {
		t.Fatalf("Print error = %v", err)
	}

	want := strings.Join([]string{
		"Sequence 1:1-8",
		"    Char 'a' 1:1-2",
		"    Repetition 1:2-8",
		"        Set 1:2-7",
		"            Range 'b'-'c' 1:3-6",
		"",
	}, "\n")
	if got := sb.String(); got != want {
		t.Errorf("Print output:\n%s\nwant:\n%s", got, want)
	}
}

func TestPrinterNil(t *testing.T) {
	var sb strings.Builder
	if err := ast.NewPrinter(&sb).Print(nil); err != nil {
		t.Fatalf("Print error = %v", err)
	}
	if sb.String() != "<nil>\n" {
		t.Errorf("Print(nil) = %q", sb.String())
	}
}
