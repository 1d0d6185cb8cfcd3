/*
Package thompson lowers syntax trees of regular expressions to
nondeterministic finite automata, using Thompson's construction.

Every node of a tree is lowered to a fragment, a sub-automaton with a
single entry state and a single exit state. Fragments are composed with
epsilon transitions:

    Empty        entry -ɛ-> exit
    Literal c    entry -c-> exit
    Concat A B   A.exit -ɛ-> B.entry
    Alt A B      entry -ɛ-> A.entry, B.entry;  A.exit, B.exit -ɛ-> exit
    Star A       entry -ɛ-> A.entry, exit;  A.exit -ɛ-> A.entry, exit
    Plus A       entry -ɛ-> A.entry;  A.exit -ɛ-> A.entry, exit
    Optional A   entry -ɛ-> A.entry, exit;  A.exit -ɛ-> exit
    Group A      fragment of A

The start state of the resulting automaton is the entry of the root's
fragment, its single final state is the root's exit.

    a, err := thompson.Compile("a(a|b)*")
    …
    a.ToGraphViz(os.Stdout)

Configuration

If global configuration flag "panic-on-malformed-nfa" is set (see package
schuko/gconf), construction panics if the resulting automaton fails
validation, instead of returning an error. This should never happen and is
intended for debugging only.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package thompson

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'regaut.thompson'.
func tracer() tracing.Trace {
	return tracing.Select("regaut.thompson")
}
