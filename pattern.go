package regfsm

import (
	"log/slog"
	"strings"

	"github.com/kolkov/regfsm/internal/ast"
	"github.com/kolkov/regfsm/internal/compiler"
)

// Pattern is a parsed pattern. It is immutable and may be compiled any
// number of times; every compilation yields the same automaton.
type Pattern struct {
	source string
	tree   ast.Node
	logger *slog.Logger
}

// Compile builds the automaton for the pattern.
func (p *Pattern) Compile() *FSM {
	f := compiler.Compile(p.tree)
	p.logger.Debug("compiled pattern",
		"pattern", p.source,
		"nodes", f.Len(),
		"transitions", f.NumTransitions(),
		"accepting", len(f.Accepting()),
		"depth", ast.Depth(p.tree),
	)
	return f
}

// Source returns the pattern text as given to Parse.
func (p *Pattern) Source() string {
	return p.source
}

// String returns the pattern in canonical form: redundant groups dropped,
// metacharacters escaped. Parsing it again yields the same tree.
func (p *Pattern) String() string {
	return ast.String(p.tree)
}

// Tree returns an indented dump of the syntax tree with source spans,
// one node per line.
func (p *Pattern) Tree() string {
	var sb strings.Builder
	// Writes to a strings.Builder cannot fail.
	_ = ast.NewPrinter(&sb).Print(p.tree)
	return sb.String()
}

// MatchesEmpty reports whether the pattern accepts the empty string.
func (p *Pattern) MatchesEmpty() bool {
	return ast.MatchesEmpty(p.tree)
}
