package ast

import (
	"github.com/cnf/structhash"
)

// Equal reports whether two trees are structurally equal, i.e. have the same
// shape, node kinds and literal characters.
func Equal(a, b *Node) bool {
	return equal(a, b, false)
}

// EqualModuloGroups is like Equal, but treats Group nodes as transparent.
// This is the equality of the round-trip law Parse(Render(t)) ≡ t.
func EqualModuloGroups(a, b *Node) bool {
	return equal(a, b, true)
}

func equal(a, b *Node, skipGroups bool) bool {
	type pair struct{ a, b *Node }
	pending := []pair{{a, b}}
	for len(pending) > 0 {
		p := pending[len(pending)-1]
		pending = pending[:len(pending)-1]
		x, y := p.a, p.b
		if skipGroups {
			x, y = stripGroups(x), stripGroups(y)
		}
		if x == nil || y == nil {
			if x != y {
				return false
			}
			continue
		}
		if x.kind != y.kind || x.char != y.char {
			return false
		}
		pending = append(pending, pair{x.right, y.right}, pair{x.left, y.left})
	}
	return true
}

func stripGroups(n *Node) *Node {
	for n != nil && n.kind == GroupNode {
		n = n.left
	}
	return n
}

// shape is the hashable mirror image of a node.
type shape struct {
	Kind     int
	Char     int32
	Children []shape
}

func shapeOf(n *Node) shape {
	s := shape{Kind: int(n.kind), Char: n.char}
	for _, ch := range n.Children() {
		s.Children = append(s.Children, shapeOf(ch))
	}
	return s
}

// Signature returns a structural hash of a tree. Trees which are Equal have
// the same signature.
func Signature(n *Node) string {
	if n == nil {
		return ""
	}
	sig, err := structhash.Hash(shapeOf(n), 1)
	if err != nil {
		tracer().Errorf("cannot compute signature: %v", err)
		return ""
	}
	return sig
}
