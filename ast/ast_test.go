package ast

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func lit(r rune) *Node {
	return Literal(r)
}

// a(a|b)*
func sample() *Node {
	return Concat(lit('a'), Star(Group(Alt(lit('a'), lit('b')))))
}

func TestConstructors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "regaut.ast")
	defer teardown()
	//
	n := Concat(lit('a'), Plus(lit('b')))
	if n.Kind() != ConcatNode || n.Left().Char() != 'a' || n.Right().Kind() != PlusNode {
		t.Errorf("unexpected tree structure for %s", n)
	}
	if n.Right().Child().Char() != 'b' {
		t.Errorf("expected child of Plus to be 'b', is %q", n.Right().Child().Char())
	}
	if len(Empty().Children()) != 0 || len(Star(lit('x')).Children()) != 1 || len(n.Children()) != 2 {
		t.Errorf("unexpected number of children")
	}
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected constructor to panic for nil child")
		}
	}()
	Alt(lit('a'), nil)
}

func TestPreOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "regaut.ast")
	defer teardown()
	//
	tree := sample()
	expected := []Kind{ConcatNode, LiteralNode, StarNode, GroupNode, AltNode, LiteralNode, LiteralNode}
	chars := []rune{0, 'a', 0, 0, 0, 'a', 'b'}
	depths := []int{0, 1, 1, 2, 3, 4, 4}
	seen := make(map[*Node]bool)
	it := tree.PreOrder()
	i := 0
	for it.Next() {
		n := it.Node()
		t.Logf("%d: %s @ depth %d", i, n.Kind(), it.Depth())
		if i == 0 && n != tree {
			t.Errorf("expected traversal to start at root")
		}
		if i >= len(expected) {
			t.Fatalf("traversal yields more than %d nodes", len(expected))
		}
		if n.Kind() != expected[i] || n.Char() != chars[i] || it.Depth() != depths[i] {
			t.Errorf("node #%d: expected %s %q @%d, have %s %q @%d", i, expected[i], chars[i],
				depths[i], n.Kind(), n.Char(), it.Depth())
		}
		if seen[n] {
			t.Errorf("node #%d visited twice", i)
		}
		seen[n] = true
		i++
	}
	if i != len(expected) || tree.Size() != len(expected) {
		t.Errorf("expected %d nodes, traversal yielded %d, size is %d", len(expected), i, tree.Size())
	}
	if it.Node() != nil || it.Next() {
		t.Errorf("expected exhausted iterator to stay exhausted")
	}
}

func TestPreOrderRestart(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "regaut.ast")
	defer teardown()
	//
	tree := sample()
	it := tree.PreOrder()
	it.Next()
	it.Next()
	it.Reset()
	if !it.Next() || it.Node() != tree {
		t.Errorf("expected reset iterator to start at root again")
	}
	cnt := 1
	for it.Next() {
		cnt++
	}
	it2 := tree.PreOrder()
	cnt2 := 0
	for it2.Next() {
		cnt2++
	}
	if cnt != 7 || cnt2 != 7 {
		t.Errorf("expected restarted and fresh traversals to yield 7 nodes, have %d and %d", cnt, cnt2)
	}
	if Render(tree) != "a(a|b)*" {
		t.Errorf("traversal modified tree: %s", tree)
	}
}

func TestDeepTraversal(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "regaut.ast")
	defer teardown()
	//
	const depth = 100000
	tree := lit('a')
	for i := 0; i < depth; i++ {
		tree = Group(tree)
	}
	if tree.Size() != depth+1 {
		t.Errorf("expected %d nodes, have %d", depth+1, tree.Size())
	}
	if !EqualModuloGroups(tree, lit('a')) {
		t.Errorf("expected groups to be transparent")
	}
}

func TestRender(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "regaut.ast")
	defer teardown()
	//
	for i, test := range []struct {
		tree *Node
		text string
	}{
		{Empty(), ""},
		{lit('a'), "a"},
		{Concat(Concat(lit('a'), lit('b')), lit('c')), "abc"},
		{Concat(lit('a'), Concat(lit('b'), lit('c'))), "a(bc)"},
		{Alt(Alt(lit('a'), lit('b')), lit('c')), "a|b|c"},
		{Alt(lit('a'), Alt(lit('b'), lit('c'))), "a|(b|c)"},
		{Alt(Concat(lit('a'), lit('b')), Concat(lit('b'), lit('c'))), "ab|bc"},
		{Concat(Alt(lit('a'), lit('b')), lit('c')), "(a|b)c"},
		{Concat(lit('a'), Alt(lit('b'), lit('c'))), "a(b|c)"},
		{Concat(lit('a'), Star(lit('b'))), "ab*"},
		{Star(Concat(lit('a'), lit('b'))), "(ab)*"},
		{Plus(Alt(lit('a'), lit('b'))), "(a|b)+"},
		{Optional(lit('a')), "a?"},
		{Star(Plus(lit('a'))), "(a+)*"},
		{Star(Group(Concat(lit('a'), lit('b')))), "(ab)*"},
		{Group(Group(lit('a'))), "((a))"},
		{Concat(lit('ä'), lit('€')), "ä€"},
	} {
		if s := Render(test.tree); s != test.text {
			t.Errorf("test %d: expected %q, rendered %q", i, test.text, s)
		}
	}
}

func TestEqual(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "regaut.ast")
	defer teardown()
	//
	if !Equal(sample(), sample()) {
		t.Errorf("expected two sample trees to be equal")
	}
	if Equal(Concat(lit('a'), lit('b')), Concat(lit('a'), lit('c'))) {
		t.Errorf("expected trees with different literals to differ")
	}
	if Equal(Star(lit('a')), Plus(lit('a'))) {
		t.Errorf("expected trees with different kinds to differ")
	}
	g := Star(Group(Concat(lit('a'), lit('b'))))
	s := Star(Concat(lit('a'), lit('b')))
	if Equal(g, s) {
		t.Errorf("expected Equal to respect groups")
	}
	if !EqualModuloGroups(g, s) {
		t.Errorf("expected EqualModuloGroups to ignore groups")
	}
	if Equal(nil, lit('a')) || !Equal(nil, nil) {
		t.Errorf("unexpected result for nil trees")
	}
}

func TestSignature(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "regaut.ast")
	defer teardown()
	//
	sig1 := Signature(sample())
	sig2 := Signature(sample())
	sig3 := Signature(Concat(lit('a'), Star(Alt(lit('a'), lit('b')))))
	t.Logf("Σ1 = %s", sig1)
	t.Logf("Σ3 = %s", sig3)
	if sig1 == "" || sig1 != sig2 {
		t.Errorf("expected equal trees to have equal signatures")
	}
	if sig1 == sig3 {
		t.Errorf("expected different trees to have different signatures")
	}
}

func TestAlphabet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "regaut.ast")
	defer teardown()
	//
	tree := Alt(Concat(lit('c'), lit('a')), Star(Concat(lit('b'), lit('a'))))
	alpha := Alphabet(tree)
	if string(alpha) != "abc" {
		t.Errorf("expected alphabet to be \"abc\", is %q", string(alpha))
	}
	if len(Alphabet(Empty())) != 0 {
		t.Errorf("expected empty alphabet for Empty")
	}
}
