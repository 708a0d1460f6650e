// Package regfsm compiles regular-expression patterns into
// nondeterministic finite-state machines.
//
// A pattern is parsed into a syntax tree and then compiled, Thompson
// style, into an [FSM]: an arena of nodes whose transitions refer to
// other nodes by index. Node 0 is the start; any node may be an accept
// node. Walking the automaton over input is left to the caller; the
// per-codepoint meaning of each transition is given by [Condition.Matches].
//
// # Quick Start
//
//	f, err := regfsm.Compile(`u(w|o)!`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Print(f.Disassemble())
//
// # Syntax
//
// The pattern language is deliberately small:
//
//	c       a literal codepoint
//	\w \d   ASCII word character, ASCII digit
//	\c      c taken literally, for any c that is not an ASCII letter or digit
//	xy      concatenation
//	x|y     alternation, lowest precedence
//	x*      zero or more x; x** is the same as x*
//	(x)     grouping; () is the empty pattern
//	[...]   one codepoint from a set of codepoints and inclusive ranges a-z
//
// Inside a set only ']' and '\' must be escaped. A '-' that cannot start a
// range is literal. Class escapes are not allowed in sets.
//
// # Error Handling
//
// Parse failures are returned as [*ParseError], carrying an [ErrorKind]
// and the position of the offending codepoint. Use [errors.Is] with a
// ParseError of the wanted kind to test for one:
//
//	errors.Is(err, &regfsm.ParseError{Kind: regfsm.UnterminatedGroup})
//
// # Thread Safety
//
// Compiled [FSM] values are immutable and safe for concurrent use.
package regfsm
