package nfa

import (
	"errors"
	"fmt"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
	"github.com/npillmayer/regaut"
)

// ErrInvalidState is wrapped by errors for state indices out of range.
var ErrInvalidState = errors.New("invalid state index")

// transitions maps symbols to sets of target states. Keys are ordered by
// symbol, with epsilon first; targets are ordered by index.
type transitions = *treemap.Map

func newTransitions() transitions {
	return treemap.NewWith(symbolComparator)
}

// We need this for the transition maps. It sorts symbols by code point.
func symbolComparator(s1, s2 interface{}) int {
	return utils.IntComparator(int(s1.(regaut.Symbol)), int(s2.(regaut.Symbol)))
}

// Edge is a single transition (from, symbol, to).
type Edge struct {
	From   int
	Symbol regaut.Symbol
	To     int
}

func (e Edge) String() string {
	return fmt.Sprintf("%d -%s-> %d", e.From, e.Symbol, e.To)
}

// === Table =================================================================

// Table is a growing state table for constructing an automaton.
// The zero value is not usable; create one with NewTable.
type Table struct {
	states []transitions
	frozen bool
}

// NewTable creates an empty state table.
func NewTable() *Table {
	return &Table{states: make([]transitions, 0, 16)}
}

// Len returns the number of states allocated so far.
func (t *Table) Len() int {
	return len(t.states)
}

// NewState allocates a new state without transitions and returns its index.
func (t *Table) NewState() int {
	t.mustNotBeFrozen()
	t.states = append(t.states, newTransitions())
	return len(t.states) - 1
}

// AddEdge adds a transition from state from to state to, labeled with sym.
// Adding an existing transition again has no effect.
// State from must have been allocated; target to is checked by Freeze.
func (t *Table) AddEdge(from int, sym regaut.Symbol, to int) {
	t.mustNotBeFrozen()
	if from < 0 || from >= len(t.states) {
		panic(fmt.Sprintf("nfa.Table.AddEdge() with invalid source state %d", from))
	}
	trans := t.states[from]
	var targets *treeset.Set
	if x, found := trans.Get(sym); found {
		targets = x.(*treeset.Set)
	} else {
		targets = treeset.NewWithIntComparator()
		trans.Put(sym, targets)
	}
	targets.Add(to)
}

func (t *Table) mustNotBeFrozen() {
	if t.frozen {
		panic("nfa.Table used after Freeze()")
	}
}

// Freeze completes construction and returns the immutable automaton with
// the given start state and final states. All state indices, including
// transition targets, have to be less than Len().
//
// After Freeze the table is consumed, even if Freeze returns an error.
func (t *Table) Freeze(start int, finals ...int) (*NFA, error) {
	t.mustNotBeFrozen()
	t.frozen = true
	n := &NFA{
		states: t.states,
		start:  start,
		finals: treeset.NewWithIntComparator(),
	}
	t.states = nil
	if !n.valid(start) {
		return nil, fmt.Errorf("start state %d: %w", start, ErrInvalidState)
	}
	for _, f := range finals {
		if !n.valid(f) {
			return nil, fmt.Errorf("final state %d: %w", f, ErrInvalidState)
		}
		n.finals.Add(f)
	}
	for _, e := range n.Edges() {
		if !n.valid(e.To) {
			return nil, fmt.Errorf("target of edge %v: %w", e, ErrInvalidState)
		}
	}
	tracer().Debugf("froze NFA with %d states, start = %d, finals = %v", n.Len(), start, finals)
	return n, nil
}

// === NFA ===================================================================

// NFA is an immutable nondeterministic finite automaton.
type NFA struct {
	states []transitions
	start  int
	finals *treeset.Set
}

func (n *NFA) valid(state int) bool {
	return state >= 0 && state < len(n.states)
}

// Len returns the number of states.
func (n *NFA) Len() int {
	return len(n.states)
}

// Start returns the index of the start state.
func (n *NFA) Start() int {
	return n.start
}

// Finals returns the indices of the accepting states, in increasing order.
func (n *NFA) Finals() []int {
	return ints(n.finals)
}

// IsFinal is true if state is an accepting state.
func (n *NFA) IsFinal(state int) bool {
	return n.finals.Contains(state)
}

// Symbols returns the symbols state has transitions for, in increasing
// order (epsilon first).
func (n *NFA) Symbols(state int) []regaut.Symbol {
	if !n.valid(state) {
		return nil
	}
	keys := n.states[state].Keys()
	syms := make([]regaut.Symbol, len(keys))
	for i, k := range keys {
		syms[i] = k.(regaut.Symbol)
	}
	return syms
}

// Targets returns the states reachable from state by a single transition
// labeled sym, in increasing order.
func (n *NFA) Targets(state int, sym regaut.Symbol) []int {
	if !n.valid(state) {
		return nil
	}
	if x, found := n.states[state].Get(sym); found {
		return ints(x.(*treeset.Set))
	}
	return nil
}

// Edges returns all transitions, ordered by source state, symbol and
// target state.
func (n *NFA) Edges() []Edge {
	edges := make([]Edge, 0, len(n.states))
	for from := range n.states {
		it := n.states[from].Iterator()
		for it.Next() {
			sym := it.Key().(regaut.Symbol)
			for _, to := range ints(it.Value().(*treeset.Set)) {
				edges = append(edges, Edge{From: from, Symbol: sym, To: to})
			}
		}
	}
	return edges
}

// EdgeCount returns the number of transitions.
func (n *NFA) EdgeCount() int {
	cnt := 0
	for _, trans := range n.states {
		for _, x := range trans.Values() {
			cnt += x.(*treeset.Set).Size()
		}
	}
	return cnt
}

// Dump is a debugging helper.
func (n *NFA) Dump() {
	tracer().Debugf("--- NFA with %d states, start %d, finals %v ---", n.Len(), n.start, n.Finals())
	for _, e := range n.Edges() {
		tracer().Debugf("    %v", e)
	}
	tracer().Debugf("-------------------------")
}

func ints(set *treeset.Set) []int {
	vals := set.Values()
	r := make([]int, len(vals))
	for i, v := range vals {
		r[i] = v.(int)
	}
	return r
}
