package syntax

import (
	"github.com/npillmayer/regaut/ast"
)

// Parse parses a pattern and returns its syntax tree, or an *Error.
//
//    Parse("ab*")   ⇒  Concat(Literal a, Star(Literal b))
//    Parse("(ab)*") ⇒  Star(Group(Concat(Literal a, Literal b)))
//    Parse("a||b")  ⇒  error EmptyAlternative
//
func Parse(pattern string) (*ast.Node, error) {
	p := newParser(pattern)
	tracer().Debugf("parse %q", pattern)
	if p.look().typ == tokEOF {
		return ast.Empty(), nil
	}
	tree, err := p.alt()
	if err != nil {
		tracer().Debugf("parse %q failed: %v", pattern, err)
		return nil, err
	}
	if t := p.look(); t.typ != tokEOF { // only ')' may stop alt at top level
		return nil, errorAt(UnexpectedChar, t)
	}
	tracer().Debugf("parse %q ⇒ %s", pattern, tree)
	return tree, nil
}

// MustParse is like Parse, but panics on error. It is intended for
// patterns known to be correct, e.g. in tests.
func MustParse(pattern string) *ast.Node {
	tree, err := Parse(pattern)
	if err != nil {
		panic(err)
	}
	return tree
}

type parser struct {
	cur  *cursor
	open []int // positions of unclosed '('
}

func newParser(pattern string) *parser {
	return &parser{cur: newCursor(pattern)}
}

func (p *parser) look() token {
	return p.cur.look
}

func (p *parser) advance() {
	p.cur.advance()
}

// All grammar functions return (nil, nil) if there is no viable token at
// the current position. Callers decide whether this is acceptable.

// alt ::= concat ( '|' concat )*
func (p *parser) alt() (*ast.Node, error) {
	left, err := p.concat()
	if err != nil {
		return nil, err
	}
	if left == nil {
		return nil, p.missingAlternative(false)
	}
	for p.look().typ == tokAlt {
		p.advance()
		right, err := p.concat()
		if err != nil {
			return nil, err
		}
		if right == nil {
			return nil, p.missingAlternative(true)
		}
		left = ast.Alt(left, right)
	}
	return left, nil
}

// missingAlternative categorizes the token at which an alternative
// unexpectedly has no content.
func (p *parser) missingAlternative(afterBar bool) error {
	t := p.look()
	switch t.typ {
	case tokStar, tokPlus, tokOptional:
		return errorAt(DanglingQuantifier, t)
	case tokInvalid:
		return errorAt(UnexpectedChar, t)
	case tokEOF:
		if !afterBar && len(p.open) > 0 {
			return p.unterminated()
		}
	case tokRParen:
		if !afterBar && len(p.open) == 0 {
			return errorAt(UnexpectedChar, t)
		}
	}
	return errorAt(EmptyAlternative, t)
}

// concat ::= repeat+
func (p *parser) concat() (*ast.Node, error) {
	var left *ast.Node
	for {
		right, err := p.repeat()
		if err != nil {
			return nil, err
		}
		if right == nil {
			return left, nil
		}
		if left == nil {
			left = right
		} else {
			left = ast.Concat(left, right)
		}
	}
}

// repeat ::= atom quantifier?
func (p *parser) repeat() (*ast.Node, error) {
	atom, err := p.atom()
	if atom == nil || err != nil {
		return nil, err
	}
	q := p.look()
	if !q.typ.isQuantifier() {
		return atom, nil
	}
	p.advance()
	if t := p.look(); t.typ.isQuantifier() {
		return nil, errorAt(DanglingQuantifier, t)
	}
	return ast.Quantify(quantifierKind(q.typ), atom), nil
}

func quantifierKind(t tokType) ast.Kind {
	switch t {
	case tokStar:
		return ast.StarNode
	case tokPlus:
		return ast.PlusNode
	}
	return ast.OptionalNode
}

// atom ::= literal | '(' alt ')'
func (p *parser) atom() (*ast.Node, error) {
	t := p.look()
	switch t.typ {
	case tokLiteral:
		p.advance()
		return ast.Literal(t.char), nil
	case tokLParen:
		p.advance()
		p.open = append(p.open, t.span.From())
		inner, err := p.alt()
		if err != nil {
			return nil, err
		}
		if p.look().typ != tokRParen {
			return nil, p.unterminated()
		}
		p.advance()
		p.open = p.open[:len(p.open)-1]
		return ast.Group(inner), nil
	case tokInvalid:
		return nil, errorAt(UnexpectedChar, t)
	}
	return nil, nil
}

func (p *parser) unterminated() error {
	return &Error{
		Kind:  UnterminatedGroup,
		Pos:   p.open[len(p.open)-1],
		Found: p.look().found(),
	}
}
