package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"

	"github.com/npillmayer/regaut/nfa"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

// tracing keys of the packages in this module
var traceKeys = []string{"regaut.ast", "regaut.syntax", "regaut.nfa", "regaut.thompson", "regaut.tviz"}

// main() either exports the automaton for a pattern given as an argument,
// or starts an interactive CLI ("T.VIZ").
func main() {
	// set up logging
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "Error", "Trace level [Debug|Info|Error]")
	outf := flag.String("o", "", "Output file for Dot export")
	split := flag.Bool("split", false, "Draw one edge per target state")
	flag.Parse()
	setTraceLevel(traceLevel(*tlevel))
	//
	intp, err := NewIntp(nfa.SplitTargets(*split))
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(3)
	}
	if flag.NArg() > 0 {
		pattern := strings.Join(flag.Args(), " ")
		tracer().Infof("Input argument is \"%s\"", pattern)
		if err := intp.Export(pattern, *outf); err != nil {
			os.Exit(2)
		}
		return
	}
	//
	// set up REPL
	repl, err := readline.New("tviz> ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	defer repl.Close()
	intp.repl = repl
	pterm.Info.Println("Welcome to T.VIZ") // colored welcome message
	pterm.Info.Println("Quit with <ctrl>D or :quit, list commands with :help")
	intp.REPL()
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func setTraceLevel(level tracing.TraceLevel) {
	for _, key := range traceKeys {
		tracing.Select(key).SetTraceLevel(level)
	}
}

func traceLevel(l string) tracing.TraceLevel {
	return tracing.TraceLevelFromString(l)
}

func usage() string {
	return `:dot <pattern>      print the automaton in Dot format (default command)
:ast <pattern>      display the syntax tree
:render <pattern>   print the pattern as re-created from its syntax tree
:info <pattern>     print size, start and final states of the automaton
:help               list commands
:quit               end the session`
}

func printUsage() {
	fmt.Println(usage())
}
