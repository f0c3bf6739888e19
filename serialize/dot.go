// Package serialize emits an Nfa as DOT and as the
// plain-text `.mata` transitions section this core's host format uses.
package serialize

import (
	"fmt"
	"strings"

	"github.com/matalib/mata/nfa"
	"github.com/matalib/mata/symbol"
)

func symbolLabel(sym nfa.Symbol) string {
	if symbol.IsAnyEpsilon(sym) {
		return "eps"
	}

	return fmt.Sprintf("%d", sym)
}

// ToDOT renders a as a DOT digraph: circle-shaped states, doublecircle
// finals, one `<src> -> {<targets…> } [label=<symbol>];` line per
// symbol-post, and one invisible `i<init> -> <init>;` arrow-source node
// per initial state:
//
//	digraph finiteAutomaton {
//	node [shape=circle];
//	1 [shape=doublecircle];
//	0 -> {1 } [label=120];
//	node [shape=none, label=""];
//	i0 -> 0;
//	}
func ToDOT(a *nfa.Nfa) string {
	var b strings.Builder

	b.WriteString("digraph finiteAutomaton {\n")
	b.WriteString("node [shape=circle];\n")

	for _, s := range a.Final.Items() {
		fmt.Fprintf(&b, "%d [shape=doublecircle];\n", s)
	}

	for src := 0; src < a.Delta.NumOfStates(); src++ {
		for _, post := range a.Delta.StatePostOf(nfa.State(src)).Posts() {
			fmt.Fprintf(&b, "%d -> {", src)
			for _, tgt := range post.Targets.Slice() {
				fmt.Fprintf(&b, "%d ", tgt)
			}
			fmt.Fprintf(&b, "} [label=%s];\n", symbolLabel(post.Symbol))
		}
	}

	b.WriteString("node [shape=none, label=\"\"];\n")
	for _, s := range a.Initial.Items() {
		fmt.Fprintf(&b, "i%d -> %d;\n", s, s)
	}

	b.WriteString("}\n")

	return b.String()
}
