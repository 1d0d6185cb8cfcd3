package thompson

import (
	"github.com/npillmayer/regaut/nfa"
	"github.com/npillmayer/regaut/syntax"
)

// Compile parses a pattern and lowers it to an NFA. Syntax errors are
// returned as *syntax.Error.
func Compile(pattern string) (*nfa.NFA, error) {
	tree, err := syntax.Parse(pattern)
	if err != nil {
		return nil, err
	}
	return NewBuilder().Build(tree)
}

// MustCompile is like Compile, but panics on error.
func MustCompile(pattern string) *nfa.NFA {
	a, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return a
}
