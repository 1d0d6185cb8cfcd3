package main

import (
	"strings"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// Token types for the command line scanner.
const (
	tokCommand = iota + 1
)

// command is a line of user input, split into command name and pattern.
type command struct {
	name    string
	pattern string
}

const defaultCommand = ":dot"

// commandLexer creates a lexmachine lexer recognizing command names.
// Patterns are not tokenized, as every character is a valid pattern character.
func commandLexer() (*lexmachine.Lexer, error) {
	lexer := lexmachine.NewLexer()
	lexer.Add([]byte(`( |\t)+`), skip)
	lexer.Add([]byte(`:[a-z]+`), func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(tokCommand, string(m.Bytes), m), nil
	})
	if err := lexer.Compile(); err != nil {
		tracer().Errorf("Error compiling DFA: %v", err)
		return nil, err
	}
	return lexer, nil
}

func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// splitCommand splits a line into a command and its pattern. Lines not
// starting with a command are patterns for the default command. A single
// blank separates a command from its pattern; further blanks belong to the
// pattern.
func splitCommand(lexer *lexmachine.Lexer, line string) command {
	bare := command{name: defaultCommand, pattern: line}
	scan, err := lexer.Scanner([]byte(line))
	if err != nil {
		return bare
	}
	tok, err, eof := scan.Next()
	if err != nil || eof {
		tracer().Debugf("no command in line %q", line)
		return bare
	}
	t := tok.(*lexmachine.Token)
	rest := line[t.TC+len(t.Lexeme):]
	rest = strings.TrimPrefix(rest, " ")
	tracer().Debugf("command %s, pattern %q", t.Lexeme, rest)
	return command{name: string(t.Lexeme), pattern: rest}
}
