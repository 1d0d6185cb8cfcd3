/*
Package syntax implements a recursive-descent parser for regular expression
patterns, producing trees of package ast.

Grammar (precedence low to high):

    alt     ::=  concat ( '|' concat )*
    concat  ::=  repeat+
    repeat  ::=  atom quantifier?
    atom    ::=  literal  |  '(' alt ')'
    quantifier ::=  '*'  |  '+'  |  '?'

A literal is any character other than the metacharacters | * + ? ( ).
The empty pattern parses to an Empty node.

The parser consumes its input with a single forward cursor and one
character of lookahead. Failures are reported as *Error values; on failure
no tree is returned.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package syntax

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'regaut.syntax'.
func tracer() tracing.Trace {
	return tracing.Select("regaut.syntax")
}
