package parser

import (
	"unicode/utf8"

	"github.com/kolkov/regfsm/internal/ast"
	"github.com/kolkov/regfsm/internal/lexer"
	"github.com/kolkov/regfsm/internal/token"
)

// DefaultMaxDepth is the group and set nesting limit used when
// Options.MaxDepth is zero.
const DefaultMaxDepth = 1000

// Options controls parsing.
type Options struct {
	// Filename is recorded in error positions (optional).
	Filename string
	// MaxDepth limits how deeply groups may nest. Zero means DefaultMaxDepth.
	MaxDepth int
}

// Parser is a recursive descent parser for patterns.
//
// Grammar:
//
//	regex    ::= term ('|' regex)?
//	term     ::= factor*
//	factor   ::= base '*'*
//	base     ::= char | '\' char | '(' regex ')' | '[' set-elem* ']'
//	set-elem ::= char ('-' char)?
type Parser struct {
	lexer *lexer.Lexer // Lexer instance
	tok   lexer.Token  // Current token (single codepoint lookahead)

	depth    int // current group nesting
	maxDepth int
}

// Parse parses a pattern with default options.
func Parse(src string) (ast.Node, error) {
	return ParseWithOptions(src, Options{})
}

// ParseWithOptions parses a pattern.
// It returns the AST or a *ParseError; it never panics on malformed input.
func ParseWithOptions(src string, opts Options) (ast.Node, error) {
	p := &Parser{
		lexer:    lexer.New([]byte(src), opts.Filename),
		maxDepth: opts.MaxDepth,
	}
	if p.maxDepth <= 0 {
		p.maxDepth = DefaultMaxDepth
	}
	p.next() // Initialize first token

	node, err := p.parseRegex()
	if err != nil {
		return nil, err
	}

	// parseRegex stops only at end of input or a ')' it did not open.
	if p.tok.Type != token.EOF {
		return nil, errorf(UnmatchedGroupClose, p.tok.Pos, "")
	}
	return node, nil
}

// next advances to the next token.
func (p *Parser) next() {
	p.tok = p.lexer.Scan()
}

// -----------------------------------------------------------------------------
// Nonterminals
// -----------------------------------------------------------------------------

// parseRegex parses term ('|' term)* and folds the alternatives into a
// right-leaning Choice chain. The loop keeps long alternations off the
// call stack.
func (p *Parser) parseRegex() (ast.Node, error) {
	first, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	alts := []ast.Node{first}

	for p.tok.Type == token.ALT {
		p.next()
		alt, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		alts = append(alts, alt)
	}

	node := alts[len(alts)-1]
	for i := len(alts) - 2; i >= 0; i-- {
		node = &ast.Choice{
			Base:  ast.MakeBase(alts[i].Pos(), node.End()),
			Left:  alts[i],
			Right: node,
		}
	}
	return node, nil
}

// parseTerm parses factor*. A term of exactly one factor is returned
// as that factor.
func (p *Parser) parseTerm() (ast.Node, error) {
	start := p.tok.Pos
	var items []ast.Node

loop:
	for {
		switch p.tok.Type {
		case token.EOF, token.ALT, token.RPAREN:
			break loop
		}
		f, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		items = append(items, f)
	}

	switch len(items) {
	case 0:
		return &ast.Sequence{Base: ast.MakeBase(start, start)}, nil
	case 1:
		return items[0], nil
	default:
		return &ast.Sequence{
			Base:  ast.MakeBase(start, items[len(items)-1].End()),
			Items: items,
		}, nil
	}
}

// parseFactor parses base '*'*. Consecutive stars collapse into a
// single Repetition.
func (p *Parser) parseFactor() (ast.Node, error) {
	if p.tok.Type == token.STAR {
		return nil, errorf(MissingRepeatOperand, p.tok.Pos, "nothing to repeat")
	}

	base, err := p.parseBase()
	if err != nil {
		return nil, err
	}

	if p.tok.Type != token.STAR {
		return base, nil
	}
	end := p.tok.End
	for p.tok.Type == token.STAR {
		end = p.tok.End
		p.next()
	}
	return &ast.Repetition{
		Base:  ast.MakeBase(base.Pos(), end),
		Inner: base,
	}, nil
}

// parseBase parses a literal, an escape, a group or a set.
func (p *Parser) parseBase() (ast.Node, error) {
	tok := p.tok
	switch tok.Type {
	case token.CHAR, token.RBRACKET, token.DASH:
		p.next()
		return &ast.Char{Base: ast.MakeBase(tok.Pos, tok.End), Value: tok.Rune}, nil

	case token.ESCAPE:
		p.next()
		return escape(tok)

	case token.ILLEGAL:
		return nil, illegal(tok)

	case token.LPAREN:
		return p.parseGroup()

	case token.LBRACKET:
		return p.parseSet()

	case token.EOF:
		return nil, errorf(UnexpectedEnd, tok.Pos, "")

	default:
		// ALT, RPAREN and STAR are consumed by the callers.
		return nil, errorf(UnexpectedEnd, tok.Pos, "unexpected %s", tok.Type)
	}
}

// parseGroup parses '(' regex ')'. The group's value is its inner regex.
func (p *Parser) parseGroup() (ast.Node, error) {
	open := p.tok.Pos
	if err := p.enter(open); err != nil {
		return nil, err
	}
	defer p.leave()
	p.next() // consume '('

	inner, err := p.parseRegex()
	if err != nil {
		return nil, err
	}
	if p.tok.Type != token.RPAREN {
		return nil, unterminated(UnterminatedGroup, p.tok.Pos, open, ')')
	}
	p.next() // consume ')'
	return inner, nil
}

// parseSet parses '[' set-elem* ']'.
func (p *Parser) parseSet() (ast.Node, error) {
	open := p.tok.Pos
	if err := p.enter(open); err != nil {
		return nil, err
	}
	defer p.leave()
	p.next() // consume '['

	var elems []ast.SetElem
	for {
		switch p.tok.Type {
		case token.RBRACKET:
			end := p.tok.End
			p.next()
			return &ast.Set{Base: ast.MakeBase(open, end), Elems: elems}, nil
		case token.EOF:
			return nil, unterminated(UnterminatedSet, p.tok.Pos, open, ']')
		}

		lo := p.tok
		loRune, err := setRune(lo)
		if err != nil {
			return nil, err
		}
		p.next()

		if p.tok.Type != token.DASH {
			elems = append(elems, &ast.Char{Base: ast.MakeBase(lo.Pos, lo.End), Value: loRune})
			continue
		}

		dash := p.tok
		p.next()
		switch p.tok.Type {
		case token.RBRACKET:
			// A '-' right before ']' is literal.
			elems = append(elems,
				&ast.Char{Base: ast.MakeBase(lo.Pos, lo.End), Value: loRune},
				&ast.Char{Base: ast.MakeBase(dash.Pos, dash.End), Value: '-'},
			)
			continue
		case token.EOF:
			e := errorf(UnexpectedEnd, p.tok.Pos, "range %q- has no upper bound", loRune)
			e.Open = open
			return nil, e
		}

		hi := p.tok
		hiRune, err := setRune(hi)
		if err != nil {
			return nil, err
		}
		p.next()

		if hiRune < loRune {
			return nil, errorf(InvalidRange, lo.Pos, "%q-%q", loRune, hiRune)
		}
		elems = append(elems, &ast.Range{
			Base: ast.MakeBase(lo.Pos, hi.End),
			Lo:   loRune,
			Hi:   hiRune,
		})
	}
}

// enter records one more level of nesting.
func (p *Parser) enter(pos token.Position) error {
	if p.depth >= p.maxDepth {
		return errorf(TooDeep, pos, "limit is %d", p.maxDepth)
	}
	p.depth++
	return nil
}

func (p *Parser) leave() {
	p.depth--
}

// -----------------------------------------------------------------------------
// Escapes and literals
// -----------------------------------------------------------------------------

// escape converts an escape token outside a set.
// \w and \d name classes; other letters and digits are reserved and
// rejected; anything else stands for itself.
func escape(tok lexer.Token) (ast.Node, error) {
	base := ast.MakeBase(tok.Pos, tok.End)
	switch tok.Rune {
	case 'w':
		return &ast.Primitive{Base: base, Class: ast.Word}, nil
	case 'd':
		return &ast.Primitive{Base: base, Class: ast.Digit}, nil
	}
	if isAlnum(tok.Rune) {
		return nil, errorf(UnknownEscapeClass, tok.Pos, `\%c`, tok.Rune)
	}
	return &ast.Char{Base: base, Value: tok.Rune}, nil
}

// setRune returns the codepoint a token stands for inside a set.
// Inside a set every metacharacter other than ']' is literal.
func setRune(tok lexer.Token) (rune, error) {
	switch tok.Type {
	case token.ILLEGAL:
		return 0, illegal(tok)
	case token.ESCAPE:
		switch {
		case tok.Rune == 'w' || tok.Rune == 'd':
			return 0, errorf(UnknownEscapeClass, tok.Pos, `class \%c is not allowed in a set`, tok.Rune)
		case isAlnum(tok.Rune):
			return 0, errorf(UnknownEscapeClass, tok.Pos, `\%c`, tok.Rune)
		}
	}
	return tok.Rune, nil
}

// illegal converts an ILLEGAL token into the matching error.
func illegal(tok lexer.Token) *ParseError {
	if tok.Rune == utf8.RuneError {
		return errorf(InvalidUTF8, tok.Pos, "at byte offset %d", tok.Pos.Offset)
	}
	return errorf(DanglingEscape, tok.Pos, `'\' at end of pattern`)
}

func isAlnum(r rune) bool {
	return 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z' || '0' <= r && r <= '9'
}
