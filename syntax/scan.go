package syntax

import (
	"fmt"
	"unicode/utf8"

	"github.com/npillmayer/regaut"
)

type tokType int

const (
	tokEOF      tokType = iota
	tokLiteral          // any non-meta character
	tokAlt              // |
	tokStar             // *
	tokPlus             // +
	tokOptional         // ?
	tokLParen           // (
	tokRParen           // )
	tokInvalid          // byte which is not valid UTF-8
)

var tokNames = [...]string{"EOF", "literal", "'|'", "'*'", "'+'", "'?'", "'('", "')'", "invalid"}

func (t tokType) String() string {
	return tokNames[t]
}

func (t tokType) isQuantifier() bool {
	return t == tokStar || t == tokPlus || t == tokOptional
}

// token is a single character of a pattern, categorized.
type token struct {
	typ  tokType
	char rune
	span regaut.Span
}

func (t token) String() string {
	if t.typ == tokLiteral {
		return fmt.Sprintf("%q%v", t.char, t.span)
	}
	return fmt.Sprintf("%s%v", t.typ, t.span)
}

// found is the character to report in errors; -1 at end of input.
func (t token) found() rune {
	if t.typ == tokEOF {
		return -1
	}
	return t.char
}

// cursor is a forward-only scanner over a pattern, with one token of lookahead.
type cursor struct {
	input string
	pos   int   // byte offset behind look
	look  token // lookahead
}

func newCursor(input string) *cursor {
	c := &cursor{input: input}
	c.advance()
	return c
}

// advance consumes the lookahead token and scans the next one.
func (c *cursor) advance() {
	if c.pos >= len(c.input) {
		c.look = token{typ: tokEOF, char: -1, span: regaut.Span{c.pos, c.pos}}
		return
	}
	r, size := utf8.DecodeRuneInString(c.input[c.pos:])
	span := regaut.Span{c.pos, c.pos + size}
	c.pos += size
	c.look = token{typ: categorize(r, size), char: r, span: span}
}

func categorize(r rune, size int) tokType {
	switch r {
	case '|':
		return tokAlt
	case '*':
		return tokStar
	case '+':
		return tokPlus
	case '?':
		return tokOptional
	case '(':
		return tokLParen
	case ')':
		return tokRParen
	case utf8.RuneError:
		if size <= 1 {
			return tokInvalid
		}
	}
	return tokLiteral
}
