/*
Package ast defines abstract syntax trees for regular expression patterns.

A tree is built bottom-up, usually by package syntax, and is immutable
afterwards. Every composite node exclusively owns its children, so trees
never share nodes and never contain cycles.

    t := ast.Concat(ast.Literal('a'), ast.Star(ast.Literal('b')))
    fmt.Println(t)                  // prints ab*
    it := t.PreOrder()
    for it.Next() {
        fmt.Println(it.Node().Kind())  // Concat, Literal, Star, Literal
    }

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ast

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'regaut.ast'.
func tracer() tracing.Trace {
	return tracing.Select("regaut.ast")
}
