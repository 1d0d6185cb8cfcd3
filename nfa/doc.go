/*
Package nfa implements nondeterministic finite automata with epsilon
transitions.

Automata are assembled in a Table, which grows monotonically: states are
numbered 0…N-1 in order of creation and are never removed or renumbered.
Freezing a table yields an immutable NFA. A frozen table cannot be
extended any more.

    t := nfa.NewTable()
    s0, s1 := t.NewState(), t.NewState()
    t.AddEdge(s0, 'a', s1)
    a, err := t.Freeze(s0, s1)      // start state s0, final state s1

An NFA may be exported to Graphviz's Dot format:

    a.ToGraphViz(os.Stdout)

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package nfa

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'regaut.nfa'.
func tracer() tracing.Trace {
	return tracing.Select("regaut.nfa")
}
