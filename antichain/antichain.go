// Package antichain implements the subsumption-pruned worklist engine
// for language inclusion, universality, and equivalence. It operates on
// the minimal Automaton interface below rather than *nfa.Nfa directly, so nfa can adapt to it (nfa/
// inclusion.go) without an import cycle.
package antichain

import "github.com/matalib/mata/symbol"

// State is a plain state index.
type State = int

// Symbol re-exports symbol.Symbol.
type Symbol = symbol.Symbol

// Automaton is the minimal collaborator Inclusion/Universal/Equivalent
// need.
type Automaton interface {
	NumStates() int
	Initial() []State
	IsFinal(State) bool
	Post(q State, a Symbol) []State
	UsedSymbols() []Symbol
}

// Counterexample is a word accepted by the left-hand automaton (or by
// Σ*, for Universal) but rejected by the right-hand one.
type Counterexample struct {
	Word []Symbol
}
