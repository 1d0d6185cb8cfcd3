package ast

import (
	"fmt"
)

// Kind discriminates the variants of a syntax tree node.
type Kind int8

// Node kinds. Unary nodes (Star, Plus, Optional, Group) keep their single
// child as the first child.
const (
	EmptyNode    Kind = iota // matches nothing, zero-width
	LiteralNode              // a single character
	ConcatNode               // left followed by right
	AltNode                  // left or right
	StarNode                 // zero or more repetitions
	PlusNode                 // one or more repetitions
	OptionalNode             // zero or one occurrence
	GroupNode                // parenthesized sub-expression
)

var kindNames = [...]string{"Empty", "Literal", "Concat", "Alt", "Star", "Plus", "Optional", "Group"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int8(k))
	}
	return kindNames[k]
}

// IsQuantifier is true for Star, Plus and Optional.
func (k Kind) IsQuantifier() bool {
	return k == StarNode || k == PlusNode || k == OptionalNode
}

// IsBinary is true for Concat and Alt.
func (k Kind) IsBinary() bool {
	return k == ConcatNode || k == AltNode
}

// Node is a node of a syntax tree. Nodes are created with the constructor
// functions of this package and are read-only afterwards.
type Node struct {
	kind  Kind
	char  rune  // for Literal
	left  *Node // first child
	right *Node // second child of binary nodes
}

// Empty creates a node matching the empty string.
func Empty() *Node {
	return &Node{kind: EmptyNode}
}

// Literal creates a node matching character r.
func Literal(r rune) *Node {
	return &Node{kind: LiteralNode, char: r}
}

// Concat creates a concatenation node. It takes ownership of both children.
func Concat(left, right *Node) *Node {
	return binary(ConcatNode, left, right)
}

// Alt creates an alternation node. It takes ownership of both children.
func Alt(left, right *Node) *Node {
	return binary(AltNode, left, right)
}

// Star creates a Kleene-star node for n.
func Star(n *Node) *Node {
	return unary(StarNode, n)
}

// Plus creates a one-or-more node for n.
func Plus(n *Node) *Node {
	return unary(PlusNode, n)
}

// Optional creates a zero-or-one node for n.
func Optional(n *Node) *Node {
	return unary(OptionalNode, n)
}

// Group creates a parenthesized node for n. Groups do not change the
// meaning of n; they are kept to control precedence during rendering.
func Group(n *Node) *Node {
	return unary(GroupNode, n)
}

// Quantify wraps n into a quantifier node of kind k.
// k must be one of StarNode, PlusNode or OptionalNode.
func Quantify(k Kind, n *Node) *Node {
	if !k.IsQuantifier() {
		panic(fmt.Sprintf("ast.Quantify() with non-quantifier kind %s", k))
	}
	return unary(k, n)
}

func unary(k Kind, child *Node) *Node {
	if child == nil {
		panic(fmt.Sprintf("ast: %s node with nil child", k))
	}
	return &Node{kind: k, left: child}
}

func binary(k Kind, left, right *Node) *Node {
	if left == nil || right == nil {
		panic(fmt.Sprintf("ast: %s node with nil child", k))
	}
	return &Node{kind: k, left: left, right: right}
}

// Kind returns the variant of a node.
func (n *Node) Kind() Kind {
	return n.kind
}

// Char returns the character of a Literal node, or 0 for all other kinds.
func (n *Node) Char() rune {
	return n.char
}

// Left returns the first child of a binary node, or the child of a unary node.
func (n *Node) Left() *Node {
	return n.left
}

// Right returns the second child of a binary node, nil otherwise.
func (n *Node) Right() *Node {
	return n.right
}

// Child returns the single child of a unary node (same as Left).
func (n *Node) Child() *Node {
	return n.left
}

// Children returns the children of a node, in order.
func (n *Node) Children() []*Node {
	switch {
	case n.left == nil:
		return nil
	case n.right == nil:
		return []*Node{n.left}
	}
	return []*Node{n.left, n.right}
}

// Size returns the number of nodes of the tree rooted at n.
func (n *Node) Size() int {
	if n == nil {
		return 0
	}
	cnt := 0
	it := n.PreOrder()
	for it.Next() {
		cnt++
	}
	return cnt
}

// String renders a tree as pattern text (see Render).
func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}
	return Render(n)
}
