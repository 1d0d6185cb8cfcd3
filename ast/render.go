package ast

import "strings"

// Render produces pattern text for a tree. Re-parsing the text yields a
// tree equal to n, up to Group nodes (see EqualModuloGroups).
//
// Parentheses are inserted where the grammar would otherwise re-associate:
//
//    Alt or Concat as the child of a quantifier:  (ab)*  (a|b)?
//    a quantified node under a quantifier:        (a*)+
//    Alt as an operand of Concat:                 (a|b)c
//    right-nested Concat/Alt:                     a(bc)  a|(b|c)
//
// Empty renders as the empty string.
func Render(n *Node) string {
	var b strings.Builder
	render(&b, n)
	return b.String()
}

func render(b *strings.Builder, n *Node) {
	switch n.kind {
	case EmptyNode:
	case LiteralNode:
		b.WriteRune(n.char)
	case ConcatNode:
		renderWrapped(b, n.left, n.left.kind == AltNode)
		renderWrapped(b, n.right, n.right.kind.IsBinary())
	case AltNode:
		render(b, n.left)
		b.WriteByte('|')
		renderWrapped(b, n.right, n.right.kind == AltNode)
	case StarNode, PlusNode, OptionalNode:
		c := n.left.kind
		renderWrapped(b, n.left, c.IsBinary() || c.IsQuantifier())
		b.WriteByte(quantifierChar(n.kind))
	case GroupNode:
		renderWrapped(b, n.left, true)
	default:
		tracer().Errorf("cannot render node of kind %s", n.kind)
	}
}

func renderWrapped(b *strings.Builder, n *Node, parens bool) {
	if parens {
		b.WriteByte('(')
	}
	render(b, n)
	if parens {
		b.WriteByte(')')
	}
}

func quantifierChar(k Kind) byte {
	switch k {
	case StarNode:
		return '*'
	case PlusNode:
		return '+'
	}
	return '?'
}
