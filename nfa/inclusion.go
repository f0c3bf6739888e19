package nfa

import "github.com/matalib/mata/antichain"

// antichainView adapts *Nfa to antichain.Automaton, mirroring
// the nfaLTS adapter reduce.go builds for the simulation engine.
type antichainView struct {
	a       *Nfa
	symbols []antichain.Symbol
}

func newAntichainView(a *Nfa) *antichainView {
	seen := make(map[Symbol]bool)
	for t := range a.Delta.Transitions() {
		seen[t.Sym] = true
	}
	syms := make([]antichain.Symbol, 0, len(seen))
	for s := range seen {
		syms = append(syms, antichain.Symbol(s))
	}

	return &antichainView{a: a, symbols: syms}
}

func (v *antichainView) NumStates() int { return v.a.Size() }
func (v *antichainView) Initial() []antichain.State {
	items := v.a.Initial.Items()
	out := make([]antichain.State, len(items))
	for i, s := range items {
		out[i] = antichain.State(s)
	}

	return out
}
func (v *antichainView) IsFinal(q antichain.State) bool { return v.a.Final.Contains(State(q)) }
func (v *antichainView) UsedSymbols() []antichain.Symbol { return v.symbols }
func (v *antichainView) Post(q antichain.State, sym antichain.Symbol) []antichain.State {
	tgts := v.a.Post(State(q), Symbol(sym))
	out := make([]antichain.State, len(tgts))
	for i, t := range tgts {
		out[i] = antichain.State(t)
	}

	return out
}

// IsIncludedIn reports whether L(a) ⊆ L(b), with alphabet nil meaning
// "derive it as the union of used symbols".
func (a *Nfa) IsIncludedIn(b *Nfa, alphabet []Symbol) (bool, []Symbol) {
	var syms []antichain.Symbol
	if alphabet != nil {
		syms = make([]antichain.Symbol, len(alphabet))
		for i, s := range alphabet {
			syms[i] = antichain.Symbol(s)
		}
	}

	ok, cex := antichain.Included(newAntichainView(a), newAntichainView(b), syms)
	if ok {
		return true, nil
	}

	return false, toSymbols(cex.Word)
}

// IsEquivalentTo reports whether L(a) == L(b).
func (a *Nfa) IsEquivalentTo(b *Nfa, alphabet []Symbol) (bool, []Symbol) {
	var syms []antichain.Symbol
	if alphabet != nil {
		syms = make([]antichain.Symbol, len(alphabet))
		for i, s := range alphabet {
			syms[i] = antichain.Symbol(s)
		}
	}

	ok, cex := antichain.Equivalent(newAntichainView(a), newAntichainView(b), syms)
	if ok {
		return true, nil
	}

	return false, toSymbols(cex.Word)
}

// IsUniversal reports whether L(a) == sigma*.
func (a *Nfa) IsUniversal(sigma []Symbol) (bool, []Symbol) {
	syms := make([]antichain.Symbol, len(sigma))
	for i, s := range sigma {
		syms[i] = antichain.Symbol(s)
	}

	ok, cex := antichain.Universal(newAntichainView(a), syms)
	if ok {
		return true, nil
	}

	return false, toSymbols(cex.Word)
}

func toSymbols(word []antichain.Symbol) []Symbol {
	out := make([]Symbol, len(word))
	for i, s := range word {
		out[i] = Symbol(s)
	}

	return out
}
