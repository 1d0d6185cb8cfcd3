/*
Package tviz/main provides a command line tool (T.VIZ) to inspect the
automata which package thompson creates for regular expressions.

Given a pattern argument, T.VIZ prints the automaton in Graphviz Dot format
and exits:

    tviz 'a(a|b)*' | dot -Tpng -o nfa.png

Without a pattern argument, T.VIZ starts an interactive session. Commands are

    :dot <pattern>      print the automaton in Dot format (default command)
    :ast <pattern>      display the syntax tree
    :render <pattern>   print the pattern as re-created from its syntax tree
    :info <pattern>     print size, start and final states of the automaton
    :help               list commands
    :quit               end the session

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'regaut.tviz'
func tracer() tracing.Trace {
	return tracing.Select("regaut.tviz")
}
