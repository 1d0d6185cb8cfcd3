package regaut

import (
	"fmt"
	"testing"
)

func TestSymbol(t *testing.T) {
	if !Epsilon.IsEpsilon() || Symbol('a').IsEpsilon() {
		t.Errorf("expected only Epsilon to be epsilon")
	}
	if Epsilon.String() != "ɛ" || Symbol('ä').String() != "ä" {
		t.Errorf("unexpected symbol strings %s and %s", Epsilon, Symbol('ä'))
	}
	if s := fmt.Sprintf("%#v", Symbol('x')); s != "'x'" {
		t.Errorf("expected %%#v of x to be quoted, is %s", s)
	}
	if Symbol('x').Rune() != 'x' || Epsilon.Rune() != -1 {
		t.Errorf("unexpected runes for symbols")
	}
}

func TestSpan(t *testing.T) {
	s := Span{3, 5}
	if s.From() != 3 || s.To() != 5 || s.Len() != 2 {
		t.Errorf("unexpected span values for %v", s)
	}
	if s.String() != "(3…5)" {
		t.Errorf("unexpected span string %s", s)
	}
}
