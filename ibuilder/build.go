// SPDX-License-Identifier: MIT
package ibuilder

import (
	"github.com/matalib/mata/mataerr"
	"github.com/matalib/mata/minterm"
	"github.com/matalib/mata/nfa"
)

// BuildNfa constructs an Nfa directly from ia's explicit symbols.
// Returns mataerr.ErrBadInput if ia is Symbolic — use
// BuildMintermizedNfa for that case.
func BuildNfa(ia *IntermediateAut) (*nfa.Nfa, error) {
	if ia.Symbolic {
		return nil, mataerr.Wrap(mataerr.ErrBadInput, "ibuilder: BuildNfa requires an explicit IntermediateAut")
	}

	out := nfa.New()
	for _, s := range ia.Initial {
		out.SetInitial(nfa.State(s))
	}
	for _, s := range ia.Final {
		out.SetFinal(nfa.State(s))
	}
	for _, t := range ia.Transitions {
		out.AddTransition(nfa.State(t.Src), nfa.Symbol(t.Symbol), nfa.State(t.Tgt))
	}
	if ia.NumStates > 0 {
		out.AddState(nfa.State(ia.NumStates - 1))
	}

	return out, nil
}

// BuildMintermizedNfa converts every raw formula tree in ia.Transitions
// to a BDD (minterm.FromFormula's bottom-up walk), mintermizes the
// resulting set, assigns each minterm a fresh explicit Symbol (its index
// into the minterm slice), and builds an Nfa whose edges are the minterms
// each original formula covers.
func BuildMintermizedNfa(ia *IntermediateAut, opts ...Option) (*nfa.Nfa, []minterm.Minterm, error) {
	if !ia.Symbolic {
		return nil, nil, mataerr.Wrap(mataerr.ErrBadInput, "ibuilder: BuildMintermizedNfa requires a symbolic IntermediateAut")
	}

	cfg := newConfig(ia, opts...)
	m := cfg.manager

	formulas := make([]minterm.Node, len(ia.Transitions))
	for i, t := range ia.Transitions {
		node, err := minterm.FromFormula(m, t.Formula)
		if err != nil {
			return nil, nil, err
		}
		formulas[i] = node
	}
	minterms := minterm.Mintermize(m, formulas)

	out := nfa.New()
	for _, s := range ia.Initial {
		out.SetInitial(nfa.State(s))
	}
	for _, s := range ia.Final {
		out.SetFinal(nfa.State(s))
	}
	for i, t := range ia.Transitions {
		for _, idx := range minterm.Cover(m, formulas[i], minterms) {
			out.AddTransition(nfa.State(t.Src), nfa.Symbol(idx), nfa.State(t.Tgt))
		}
	}
	if ia.NumStates > 0 {
		out.AddState(nfa.State(ia.NumStates - 1))
	}

	return out, minterms, nil
}
