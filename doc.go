/*
Package regaut is a front end for compiling regular expressions to automata.

It parses a small regular expression language into abstract syntax trees
and lowers these into nondeterministic finite automata by Thompson
construction. Package structure is as follows:

■ ast: Package ast defines the syntax tree of a pattern, together with
pre-order traversal and rendering back to pattern text.

■ syntax: Package syntax implements a recursive-descent parser for patterns.

■ nfa: Package nfa implements an automaton model with epsilon transitions
and its export to Graphviz's Dot format.

■ thompson: Package thompson lowers syntax trees to automata.

The base package contains data types which are used throughout all the other packages.

Pattern Language

    |       alternation (lowest precedence)
    *  +  ? quantifiers, binding to the immediately preceding atom
    ( )     grouping

Every other character is a literal. There is no escaping mechanism.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package regaut
