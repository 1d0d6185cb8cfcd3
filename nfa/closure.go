package nfa

import (
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/npillmayer/regaut"
)

// EpsilonClosure returns all states reachable from the given states by
// epsilon transitions only, including the given states themselves.
// Indices out of range are ignored. The result is in increasing order.
func (n *NFA) EpsilonClosure(states ...int) []int {
	closure := treeset.NewWithIntComparator()
	pending := arraystack.New()
	for _, s := range states {
		if n.valid(s) && !closure.Contains(s) {
			closure.Add(s)
			pending.Push(s)
		}
	}
	for !pending.Empty() {
		x, _ := pending.Pop()
		for _, t := range n.Targets(x.(int), regaut.Epsilon) {
			if !closure.Contains(t) {
				closure.Add(t)
				pending.Push(t)
			}
		}
	}
	return ints(closure)
}
