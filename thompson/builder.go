package thompson

import (
	"errors"

	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/npillmayer/regaut"
	"github.com/npillmayer/regaut/ast"
	"github.com/npillmayer/regaut/nfa"
	"github.com/npillmayer/schuko/gconf"
)

// Errors returned by Builder.Build.
var (
	ErrBuilderConsumed = errors.New("thompson: builder has already been used")
	ErrNilTree         = errors.New("thompson: cannot build automaton for nil tree")
)

// fragment is a sub-automaton under construction.
type fragment struct {
	entry, exit int
}

// Builder lowers a syntax tree to an NFA. A builder is single-use: it is
// consumed by its first call to Build.
type Builder struct {
	table *nfa.Table
	used  bool
}

// NewBuilder creates a builder with an empty state table.
func NewBuilder() *Builder {
	return &Builder{table: nfa.NewTable()}
}

// Build lowers a tree and returns the immutable automaton. States are
// numbered in order of creation, depth-first and left to right.
//
// Every tree produced by package syntax can be lowered; Build fails only if
// called with a nil tree or more than once.
func (b *Builder) Build(root *ast.Node) (*nfa.NFA, error) {
	if b.used {
		return nil, ErrBuilderConsumed
	}
	b.used = true
	if root == nil {
		return nil, ErrNilTree
	}
	tracer().Debugf("=== build NFA for %s ===", root)
	frag := b.lower(root)
	a, err := b.table.Freeze(frag.entry, frag.exit)
	if err != nil {
		if gconf.GetBool("panic-on-malformed-nfa") {
			panic(err)
		}
		tracer().Errorf("malformed NFA: %v", err)
		return nil, err
	}
	a.Dump()
	return a, nil
}

// lowerTask is an entry of the work stack: a node to lower, and whether its
// children have already been scheduled.
type lowerTask struct {
	node     *ast.Node
	expanded bool
}

// lower walks the tree in post-order, using an explicit work stack. Children
// leave their fragments on the fragment stack, from where their parent
// collects them.
func (b *Builder) lower(root *ast.Node) fragment {
	tasks := arraystack.New()
	frags := arraystack.New()
	tasks.Push(lowerTask{node: root})
	for !tasks.Empty() {
		x, _ := tasks.Pop()
		task := x.(lowerTask)
		children := task.node.Children()
		if !task.expanded && len(children) > 0 {
			tasks.Push(lowerTask{node: task.node, expanded: true})
			for i := len(children) - 1; i >= 0; i-- { // leftmost child on top
				tasks.Push(lowerTask{node: children[i]})
			}
			continue
		}
		frags.Push(b.fragment(task.node, frags))
	}
	x, _ := frags.Pop()
	return x.(fragment)
}

// fragment creates the fragment for node n, given the fragments of its
// children on top of frags.
func (b *Builder) fragment(n *ast.Node, frags *arraystack.Stack) fragment {
	switch n.Kind() {
	case ast.EmptyNode:
		f := b.pair()
		b.epsilon(f.entry, f.exit)
		return f
	case ast.LiteralNode:
		f := b.pair()
		b.table.AddEdge(f.entry, regaut.Symbol(n.Char()), f.exit)
		return f
	case ast.ConcatNode:
		B, A := pop(frags), pop(frags)
		b.epsilon(A.exit, B.entry)
		return fragment{entry: A.entry, exit: B.exit}
	case ast.AltNode:
		B, A := pop(frags), pop(frags)
		f := b.pair()
		b.epsilon(f.entry, A.entry)
		b.epsilon(f.entry, B.entry)
		b.epsilon(A.exit, f.exit)
		b.epsilon(B.exit, f.exit)
		return f
	case ast.StarNode:
		A := pop(frags)
		f := b.pair()
		b.epsilon(f.entry, A.entry)
		b.epsilon(f.entry, f.exit) // skip
		b.epsilon(A.exit, A.entry) // loop
		b.epsilon(A.exit, f.exit)
		return f
	case ast.PlusNode:
		A := pop(frags)
		f := b.pair()
		b.epsilon(f.entry, A.entry)
		b.epsilon(A.exit, A.entry) // loop
		b.epsilon(A.exit, f.exit)
		return f
	case ast.OptionalNode:
		A := pop(frags)
		f := b.pair()
		b.epsilon(f.entry, A.entry)
		b.epsilon(f.entry, f.exit) // skip
		b.epsilon(A.exit, f.exit)
		return f
	case ast.GroupNode:
		return pop(frags)
	}
	panic("thompson: unknown node kind " + n.Kind().String())
}

func (b *Builder) pair() fragment {
	entry := b.table.NewState()
	return fragment{entry: entry, exit: b.table.NewState()}
}

func (b *Builder) epsilon(from, to int) {
	b.table.AddEdge(from, regaut.Epsilon, to)
}

func pop(frags *arraystack.Stack) fragment {
	x, _ := frags.Pop()
	return x.(fragment)
}
