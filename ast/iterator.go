package ast

import (
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/emirpasic/gods/utils"
)

// Iterator produces the nodes of a tree in pre-order: a node first, then the
// subtree of its first child, then the subtree of its second child.
//
// Pending nodes are kept on an explicit stack, so traversal depth is not
// bound by the call stack. Iterators never modify the tree.
//
//     it := tree.PreOrder()
//     for it.Next() {
//         n := it.Node()
//         …
//     }
//     it.Reset()  // start over
//
type Iterator struct {
	root    *Node
	pending *arraystack.Stack // of pendingNode
	current pendingNode
}

type pendingNode struct {
	node  *Node
	depth int
}

// PreOrder returns a fresh pre-order iterator for the tree rooted at n.
func (n *Node) PreOrder() *Iterator {
	it := &Iterator{
		root:    n,
		pending: arraystack.New(),
	}
	it.Reset()
	return it
}

// Reset restarts the iteration at the root of the tree.
func (it *Iterator) Reset() {
	it.pending.Clear()
	it.current = pendingNode{}
	if it.root != nil {
		it.pending.Push(pendingNode{node: it.root})
	}
}

// Next advances the iterator to the next node. It returns false if all
// nodes have been visited.
func (it *Iterator) Next() bool {
	x, ok := it.pending.Pop()
	if !ok {
		it.current = pendingNode{}
		return false
	}
	it.current = x.(pendingNode)
	n := it.current.node
	// push right first to pop left first
	if n.right != nil {
		it.pending.Push(pendingNode{node: n.right, depth: it.current.depth + 1})
	}
	if n.left != nil {
		it.pending.Push(pendingNode{node: n.left, depth: it.current.depth + 1})
	}
	return true
}

// Node returns the current node, or nil if the iterator is exhausted or
// Next has not been called yet.
func (it *Iterator) Node() *Node {
	return it.current.node
}

// Depth returns the distance of the current node from the root.
func (it *Iterator) Depth() int {
	return it.current.depth
}

// Alphabet returns the distinct literal characters of a tree, sorted.
func Alphabet(n *Node) []rune {
	set := treeset.NewWith(utils.RuneComparator)
	it := n.PreOrder()
	for it.Next() {
		if it.Node().kind == LiteralNode {
			set.Add(it.Node().char)
		}
	}
	runes := make([]rune, 0, set.Size())
	for _, r := range set.Values() {
		runes = append(runes, r.(rune))
	}
	return runes
}
