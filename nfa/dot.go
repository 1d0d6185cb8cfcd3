package nfa

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
)

// ExportOption configures the Graphviz export.
type ExportOption func(*dotConfig)

type dotConfig struct {
	splitTargets bool // one edge per target instead of { t1 t2 }
}

// SplitTargets sets or clears option SplitTargets: if set, a state with
// several targets for the same symbol is drawn with one edge per target.
// Otherwise the targets are combined into a single edge statement to a
// target list { t1 t2 … }.
func SplitTargets(b bool) ExportOption {
	return func(c *dotConfig) {
		c.splitTargets = b
	}
}

var labelEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`)

// ToGraphViz exports an NFA to Graphviz's Dot format.
//
// The graph is laid out left to right. Edges are labeled with their symbol,
// epsilon edges with ɛ. Final states are drawn with a double circle, the
// start state is marked by an arrow from an invisible node.
func (n *NFA) ToGraphViz(w io.Writer, opts ...ExportOption) error {
	var cfg dotConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	var b bytes.Buffer
	b.WriteString("digraph {\n\trankdir=\"LR\"\n")
	for from := range n.states {
		for _, sym := range n.Symbols(from) {
			label := labelEscaper.Replace(sym.String())
			targets := n.Targets(from, sym)
			if cfg.splitTargets || len(targets) == 1 {
				for _, to := range targets {
					fmt.Fprintf(&b, "\t%d -> %d [label=\"%s\"]\n", from, to, label)
				}
				continue
			}
			fmt.Fprintf(&b, "\t%d -> %s [label=\"%s\"]\n", from, targetList(targets), label)
		}
	}
	b.WriteString("\n")
	for _, f := range n.Finals() {
		fmt.Fprintf(&b, "\t%d [shape=\"doublecircle\"]\n", f)
	}
	b.WriteString("\n\t_ [style=\"invis\", width=0, height=0, label=\"\"]\n")
	fmt.Fprintf(&b, "\t_ -> %d\n", n.start)
	b.WriteString("}\n")
	_, err := w.Write(b.Bytes())
	return err
}

func targetList(targets []int) string {
	var b strings.Builder
	b.WriteString("{")
	for _, t := range targets {
		fmt.Fprintf(&b, " %d", t)
	}
	b.WriteString(" }")
	return b.String()
}

// NFA2GraphViz exports an NFA to the Graphviz Dot format, given a filename.
func NFA2GraphViz(n *NFA, filename string, opts ...ExportOption) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("cannot export NFA: %w", err)
	}
	defer f.Close()
	if err = n.ToGraphViz(f, opts...); err != nil {
		return err
	}
	return f.Close()
}
