package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"
	"github.com/timtadh/lexmachine"

	"github.com/npillmayer/regaut/ast"
	"github.com/npillmayer/regaut/nfa"
	"github.com/npillmayer/regaut/syntax"
	"github.com/npillmayer/regaut/thompson"
)

// Intp is our interpreter object
type Intp struct {
	repl   *readline.Instance
	lexer  *lexmachine.Lexer
	opts   []nfa.ExportOption
	cache  map[string]*nfa.NFA // automata by tree signature
	output *os.File
}

// NewIntp creates an interpreter. Export options are applied to every Dot export.
func NewIntp(opts ...nfa.ExportOption) (*Intp, error) {
	lexer, err := commandLexer()
	if err != nil {
		return nil, err
	}
	return &Intp{
		lexer:  lexer,
		opts:   opts,
		cache:  make(map[string]*nfa.NFA),
		output: os.Stdout,
	}, nil
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		quit, err := intp.Execute(line)
		if err != nil {
			continue
		}
		if quit {
			break
		}
	}
	println("Good bye!")
}

// Execute executes a command, given on a line by itself.
// It returns true if the user asked to quit.
func (intp *Intp) Execute(line string) (bool, error) {
	cmd := splitCommand(intp.lexer, line)
	switch cmd.name {
	case ":quit":
		return true, nil
	case ":help":
		printUsage()
		return false, nil
	case ":dot":
		a, err := intp.compile(cmd.pattern)
		if err != nil {
			return false, err
		}
		return false, a.ToGraphViz(intp.output, intp.opts...)
	case ":ast":
		tree, err := intp.parse(cmd.pattern)
		if err != nil {
			return false, err
		}
		pterm.DefaultTree.WithRoot(treeDisplay(tree)).Render()
		return false, nil
	case ":render":
		tree, err := intp.parse(cmd.pattern)
		if err != nil {
			return false, err
		}
		pterm.Info.Println(ast.Render(tree))
		return false, nil
	case ":info":
		a, err := intp.compile(cmd.pattern)
		if err != nil {
			return false, err
		}
		pterm.Info.Printf("%d states, %d edges, start %d, finals %v\n",
			a.Len(), a.EdgeCount(), a.Start(), a.Finals())
		pterm.Info.Printf("ɛ-closure of start = %v\n", a.EpsilonClosure(a.Start()))
		return false, nil
	}
	err := fmt.Errorf("unknown command %s, try :help", cmd.name)
	pterm.Error.Println(err.Error())
	return false, err
}

// Export writes the Dot representation of a pattern's automaton to a
// file, or to stdout if filename is empty.
func (intp *Intp) Export(pattern string, filename string) error {
	a, err := intp.compile(pattern)
	if err != nil {
		return err
	}
	if filename == "" {
		return a.ToGraphViz(intp.output, intp.opts...)
	}
	if err = nfa.NFA2GraphViz(a, filename, intp.opts...); err != nil {
		pterm.Error.Println(err.Error())
		return err
	}
	pterm.Info.Printf("Dot output written to %s\n", filename)
	return nil
}

func (intp *Intp) parse(pattern string) (*ast.Node, error) {
	tree, err := syntax.Parse(pattern)
	if err != nil {
		reportError(pattern, err)
		return nil, err
	}
	return tree, nil
}

// compile lowers a pattern, re-using automata for structurally equal trees.
func (intp *Intp) compile(pattern string) (*nfa.NFA, error) {
	tree, err := intp.parse(pattern)
	if err != nil {
		return nil, err
	}
	sig := ast.Signature(tree)
	if a, ok := intp.cache[sig]; ok && sig != "" {
		tracer().Debugf("re-using automaton for %s", sig)
		return a, nil
	}
	a, err := thompson.NewBuilder().Build(tree)
	if err != nil {
		pterm.Error.Println(err.Error())
		return nil, err
	}
	intp.cache[sig] = a
	return a, nil
}

// reportError prints a syntax error with a marker below the offending
// position of the pattern.
func reportError(pattern string, err error) {
	pterm.Error.Println(err.Error())
	var serr *syntax.Error
	if !errors.As(err, &serr) {
		return
	}
	col := utf8.RuneCountInString(pattern[:serr.Pos])
	pterm.Println("    " + pattern)
	pterm.Println("    " + strings.Repeat(" ", col) + "^")
}

// treeDisplay converts a syntax tree to a pterm tree.
func treeDisplay(tree *ast.Node) pterm.TreeNode {
	var ll pterm.LeveledList
	it := tree.PreOrder()
	for it.Next() {
		ll = append(ll, pterm.LeveledListItem{
			Level: it.Depth(),
			Text:  nodeLabel(it.Node()),
		})
	}
	tracer().Debugf("|ll| = %d, ll = %v", len(ll), ll)
	return pterm.NewTreeFromLeveledList(ll)
}

func nodeLabel(n *ast.Node) string {
	if n.Kind() == ast.LiteralNode {
		return fmt.Sprintf("%s %q", n.Kind(), n.Char())
	}
	return n.Kind().String()
}
