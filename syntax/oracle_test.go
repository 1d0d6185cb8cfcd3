package syntax

import (
	"math/rand"
	"testing"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/npillmayer/regaut/ast"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// An independent grammar for the pattern language, built with participle.
// Parse has to agree with it on every well-formed pattern.

var oracleLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Meta", Pattern: `[|*+?()]`},
	{Name: "Char", Pattern: `[^|*+?()]`},
})

type pAlt struct {
	Concats []*pConcat `parser:"@@ ( '|' @@ )*"`
}

type pConcat struct {
	Repeats []*pRepeat `parser:"@@+"`
}

type pRepeat struct {
	Atom  *pAtom `parser:"@@"`
	Quant string `parser:"@( '*' | '+' | '?' )?"`
}

type pAtom struct {
	Char  *string `parser:"  @Char"`
	Group *pAlt   `parser:"| '(' @@ ')'"`
}

var oracle = participle.MustBuild[pAlt](participle.Lexer(oracleLexer))

func (a *pAlt) tree() *ast.Node {
	n := a.Concats[0].tree()
	for _, c := range a.Concats[1:] {
		n = ast.Alt(n, c.tree())
	}
	return n
}

func (c *pConcat) tree() *ast.Node {
	n := c.Repeats[0].tree()
	for _, r := range c.Repeats[1:] {
		n = ast.Concat(n, r.tree())
	}
	return n
}

func (r *pRepeat) tree() *ast.Node {
	n := r.Atom.tree()
	switch r.Quant {
	case "*":
		return ast.Star(n)
	case "+":
		return ast.Plus(n)
	case "?":
		return ast.Optional(n)
	}
	return n
}

func (a *pAtom) tree() *ast.Node {
	if a.Group != nil {
		return ast.Group(a.Group.tree())
	}
	return ast.Literal([]rune(*a.Char)[0])
}

func oracleParse(t *testing.T, pattern string) *ast.Node {
	p, err := oracle.ParseString("", pattern)
	if err != nil {
		t.Fatalf("oracle cannot parse %q: %v", pattern, err)
	}
	return p.tree()
}

func TestOracleAgreement(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "regaut.syntax")
	defer teardown()
	//
	for _, pattern := range []string{
		"a", "ab", "abc", "a|b|c", "ab|cd", "a*b+c?",
		"(a)", "((a))", "(ab)*", "(a|b)*c", "a(a|b)*", "x(y(z|w)+)?",
		"ä€|ß", "a b", "(a*)+",
	} {
		tree, err := Parse(pattern)
		if err != nil {
			t.Errorf("%q: %v", pattern, err)
			continue
		}
		if expected := oracleParse(t, pattern); !ast.Equal(tree, expected) {
			t.Errorf("%q: oracle has %s, parser has %s", pattern, expected, tree)
		}
	}
}

// randomTree produces a tree of at most the given depth over {a,b,c}.
func randomTree(rnd *rand.Rand, depth int) *ast.Node {
	if depth == 0 {
		return ast.Literal(rune('a' + rnd.Intn(3)))
	}
	switch rnd.Intn(7) {
	case 0, 1:
		return ast.Concat(randomTree(rnd, depth-1), randomTree(rnd, depth-1))
	case 2:
		return ast.Alt(randomTree(rnd, depth-1), randomTree(rnd, depth-1))
	case 3:
		return ast.Star(randomTree(rnd, depth-1))
	case 4:
		return ast.Plus(randomTree(rnd, depth-1))
	case 5:
		return ast.Optional(randomTree(rnd, depth-1))
	}
	return ast.Literal(rune('a' + rnd.Intn(3)))
}

func TestOracleRandomPatterns(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "regaut.syntax")
	defer teardown()
	//
	rnd := rand.New(rand.NewSource(4711))
	for i := 0; i < 300; i++ {
		pattern := ast.Render(randomTree(rnd, 1+rnd.Intn(5)))
		tree, err := Parse(pattern)
		if err != nil {
			t.Errorf("%q: %v", pattern, err)
			continue
		}
		if expected := oracleParse(t, pattern); !ast.Equal(tree, expected) {
			t.Errorf("%q: oracle has %s, parser has %s", pattern, expected, tree)
		}
	}
}
