package fsm

import (
	"fmt"
	"strconv"
)

// Class names a predefined character class.
// Membership is decided by raw codepoint comparison against ASCII tables.
type Class uint8

const (
	Word  Class = iota // [0-9A-Za-z_]
	Digit              // [0-9]
)

// String returns the escape that denotes the class.
func (c Class) String() string {
	switch c {
	case Word:
		return `\w`
	case Digit:
		return `\d`
	default:
		return fmt.Sprintf("class(%d)", c)
	}
}

// Name returns the Go identifier of the class constant.
func (c Class) Name() string {
	switch c {
	case Word:
		return "Word"
	case Digit:
		return "Digit"
	default:
		return fmt.Sprintf("Class(%d)", c)
	}
}

// Pre-built class tables, indexed by ASCII codepoint.
var (
	digitTable [128]bool // \d: 0-9
	wordTable  [128]bool // \w: a-z, A-Z, 0-9, _
)

func init() {
	for c := '0'; c <= '9'; c++ {
		digitTable[c] = true
		wordTable[c] = true
	}
	for c := 'a'; c <= 'z'; c++ {
		wordTable[c] = true
	}
	for c := 'A'; c <= 'Z'; c++ {
		wordTable[c] = true
	}
	wordTable['_'] = true
}

// Contains reports whether r belongs to the class.
func (c Class) Contains(r rune) bool {
	if r < 0 || r >= 128 {
		return false
	}
	switch c {
	case Word:
		return wordTable[r]
	case Digit:
		return digitTable[r]
	default:
		return false
	}
}

// Kind discriminates transition conditions.
type Kind uint8

const (
	KindEpsilon Kind = iota // consumes no input
	KindChar                // one literal codepoint
	KindRange               // one codepoint in [Lo, Hi]
	KindClass               // one codepoint of Class
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindEpsilon:
		return "epsilon"
	case KindChar:
		return "char"
	case KindRange:
		return "range"
	case KindClass:
		return "class"
	default:
		return fmt.Sprintf("kind(%d)", k)
	}
}

// Condition labels a transition. It is a small value type; the fields
// that matter depend on Kind:
//
//	KindEpsilon  none
//	KindChar     Lo (== Hi)
//	KindRange    Lo, Hi (inclusive)
//	KindClass    Class
type Condition struct {
	Kind  Kind
	Lo    rune
	Hi    rune
	Class Class
}

// Epsilon returns a condition that consumes no input.
func Epsilon() Condition {
	return Condition{Kind: KindEpsilon}
}

// OnChar returns a condition matching exactly r.
func OnChar(r rune) Condition {
	return Condition{Kind: KindChar, Lo: r, Hi: r}
}

// OnRange returns a condition matching lo through hi, both included.
func OnRange(lo, hi rune) Condition {
	return Condition{Kind: KindRange, Lo: lo, Hi: hi}
}

// OnClass returns a condition matching one codepoint of c.
func OnClass(c Class) Condition {
	return Condition{Kind: KindClass, Class: c}
}

// IsEpsilon reports whether the condition consumes no input.
func (c Condition) IsEpsilon() bool {
	return c.Kind == KindEpsilon
}

// Matches reports whether the condition consumes r.
// Epsilon conditions never consume input and so never match.
func (c Condition) Matches(r rune) bool {
	switch c.Kind {
	case KindChar:
		return r == c.Lo
	case KindRange:
		return c.Lo <= r && r <= c.Hi
	case KindClass:
		return c.Class.Contains(r)
	default:
		return false
	}
}

// String returns the condition as written in a disassembly listing.
func (c Condition) String() string {
	switch c.Kind {
	case KindEpsilon:
		return "eps"
	case KindChar:
		return strconv.QuoteRune(c.Lo)
	case KindRange:
		return strconv.QuoteRune(c.Lo) + "-" + strconv.QuoteRune(c.Hi)
	case KindClass:
		return c.Class.String()
	default:
		return c.Kind.String()
	}
}
