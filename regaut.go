package regaut

import (
	"fmt"
	"strconv"
)

// --- Symbols ---------------------------------------------------------------

// Symbol is the label of an automaton transition. It is either a literal
// character of a pattern or the distinguished Epsilon symbol.
type Symbol rune

// Epsilon labels transitions which are traversable without consuming input.
// It is not a valid character, so it cannot collide with a literal.
const Epsilon Symbol = -1

// EpsilonGlyph is the glyph used to display epsilon transitions.
const EpsilonGlyph = "ɛ"

// IsEpsilon is true for the epsilon symbol.
func (sym Symbol) IsEpsilon() bool {
	return sym == Epsilon
}

// Rune returns the literal character of a symbol, or -1 for epsilon.
func (sym Symbol) Rune() rune {
	return rune(sym)
}

func (sym Symbol) String() string {
	if sym.IsEpsilon() {
		return EpsilonGlyph
	}
	return string(rune(sym))
}

// GoString is used for %#v and shows a quoted literal.
func (sym Symbol) GoString() string {
	if sym.IsEpsilon() {
		return "Epsilon"
	}
	return strconv.QuoteRune(rune(sym))
}

// --- Spans ------------------------------------------------------------

// Span is a small type for capturing a run of pattern text. A span denotes
// a start byte offset and the offset just behind the end.
type Span [2]int // (x…y)

// From returns the start value of a span.
func (s Span) From() int {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() int {
	return s[1]
}

// Len returns the length of (x…y)
func (s Span) Len() int {
	return s[1] - s[0]
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}
