package fsm

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Disassemble returns a human-readable listing of the automaton, one
// block per node:
//
//	0:
//	    eps -> 1
//	1:
//	    'a' -> 2
//	2: accept
//
// ParseListing reads the same format back.
func (f *FSM) Disassemble() string {
	var sb strings.Builder
	for i, n := range f.nodes {
		fmt.Fprintf(&sb, "%d:", i)
		if n.Accept {
			sb.WriteString(" accept")
		}
		sb.WriteByte('\n')
		for _, t := range n.Out {
			fmt.Fprintf(&sb, "    %s\n", t)
		}
	}
	return sb.String()
}

// Listing grammar. Rune literals use Go quoting as produced by
// strconv.QuoteRune.
var listingLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Rune", Pattern: `'(?:\\(?:x[0-9a-fA-F]{2}|u[0-9a-fA-F]{4}|U[0-9a-fA-F]{8}|[0-7]{3}|[abfnrtv\\'"])|[^'\\\n])'`},
	{Name: "Class", Pattern: `\\[wd]`},
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Ident", Pattern: `[a-z]+`},
	{Name: "Arrow", Pattern: `->`},
	{Name: "Punct", Pattern: `[:-]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

type listing struct {
	Nodes []*listingNode `parser:"@@*"`
}

type listingNode struct {
	Pos    lexer.Position
	Index  int            `parser:"@Int ':'"`
	Accept bool           `parser:"@'accept'?"`
	Out    []*listingEdge `parser:"@@*"`
}

type listingEdge struct {
	Pos    lexer.Position
	Cond   *listingCond `parser:"@@"`
	Target int          `parser:"'->' @Int"`
}

type listingCond struct {
	Epsilon bool         `parser:"  @'eps'"`
	Class   string       `parser:"| @Class"`
	Span    *listingSpan `parser:"| @@"`
}

type listingSpan struct {
	Lo string  `parser:"@Rune"`
	Hi *string `parser:"('-' @Rune)?"`
}

var listingParser = participle.MustBuild[listing](
	participle.Lexer(listingLexer),
	participle.Elide("Whitespace"),
)

// ParseListing parses the output of Disassemble back into an FSM.
// Node blocks must appear in index order starting at 0.
func ParseListing(text string) (*FSM, error) {
	l, err := listingParser.ParseString("listing", text)
	if err != nil {
		return nil, fmt.Errorf("fsm listing: %w", err)
	}

	nodes := make([]Node, len(l.Nodes))
	for i, ln := range l.Nodes {
		if ln.Index != i {
			return nil, fmt.Errorf("fsm listing: %s: node %d out of order, want %d", ln.Pos, ln.Index, i)
		}
		nodes[i].Accept = ln.Accept
		for _, e := range ln.Out {
			cond, err := e.Cond.condition()
			if err != nil {
				return nil, fmt.Errorf("fsm listing: %s: %w", e.Pos, err)
			}
			nodes[i].Out = append(nodes[i].Out, Transition{Target: e.Target, Cond: cond})
		}
	}
	return New(nodes)
}

func (c *listingCond) condition() (Condition, error) {
	switch {
	case c.Epsilon:
		return Epsilon(), nil
	case c.Class == `\w`:
		return OnClass(Word), nil
	case c.Class == `\d`:
		return OnClass(Digit), nil
	case c.Span != nil:
		lo, err := unquoteRune(c.Span.Lo)
		if err != nil {
			return Condition{}, err
		}
		if c.Span.Hi == nil {
			return OnChar(lo), nil
		}
		hi, err := unquoteRune(*c.Span.Hi)
		if err != nil {
			return Condition{}, err
		}
		return OnRange(lo, hi), nil
	default:
		return Condition{}, fmt.Errorf("unknown condition %q", c.Class)
	}
}

func unquoteRune(lit string) (rune, error) {
	if len(lit) < 3 || lit[0] != '\'' || lit[len(lit)-1] != '\'' {
		return 0, fmt.Errorf("bad rune literal %s", lit)
	}
	r, _, tail, err := strconv.UnquoteChar(lit[1:len(lit)-1], '\'')
	if err != nil {
		return 0, fmt.Errorf("bad rune literal %s: %w", lit, err)
	}
	if tail != "" {
		return 0, fmt.Errorf("bad rune literal %s", lit)
	}
	return r, nil
}
