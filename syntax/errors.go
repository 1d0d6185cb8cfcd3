package syntax

import "fmt"

// ErrorKind categorizes syntax errors.
type ErrorKind int

// Kinds of syntax errors.
const (
	UnexpectedChar     ErrorKind = iota + 1 // character not allowed where an atom is expected
	UnterminatedGroup                       // '(' without matching ')'
	DanglingQuantifier                      // quantifier without an unquantified atom before it
	EmptyAlternative                        // alternative without content, as in "a|" or "()"
)

func (k ErrorKind) String() string {
	switch k {
	case UnexpectedChar:
		return "unexpected character"
	case UnterminatedGroup:
		return "unterminated group"
	case DanglingQuantifier:
		return "dangling quantifier"
	case EmptyAlternative:
		return "empty alternative"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Error is the error type returned by Parse.
//
// Pos is the byte offset in the pattern where the error has been detected,
// Found is the character found there (-1 at the end of the pattern).
// For UnterminatedGroup, Pos is the position of the unmatched '('.
type Error struct {
	Kind  ErrorKind
	Pos   int
	Found rune
}

// Sentinel values to test for error kinds with errors.Is.
var (
	ErrUnexpectedChar     = &Error{Kind: UnexpectedChar}
	ErrUnterminatedGroup  = &Error{Kind: UnterminatedGroup}
	ErrDanglingQuantifier = &Error{Kind: DanglingQuantifier}
	ErrEmptyAlternative   = &Error{Kind: EmptyAlternative}
)

func (e *Error) Error() string {
	switch {
	case e.Kind == UnterminatedGroup:
		return fmt.Sprintf("syntax error at %d: %s, missing ')'", e.Pos, e.Kind)
	case e.Found < 0:
		return fmt.Sprintf("syntax error at %d: %s at end of pattern", e.Pos, e.Kind)
	}
	return fmt.Sprintf("syntax error at %d: %s %q", e.Pos, e.Kind, e.Found)
}

// Is matches errors of the same kind, regardless of position.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

func errorAt(kind ErrorKind, t token) *Error {
	return &Error{Kind: kind, Pos: t.span.From(), Found: t.found()}
}
