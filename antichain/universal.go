package antichain

// sigmaStar is the automaton Automaton implementation representing Σ*:
// a single state, initial and final, with a self-loop on every symbol of
// sigma.
type sigmaStar struct {
	sigma []Symbol
}

func (s sigmaStar) NumStates() int         { return 1 }
func (s sigmaStar) Initial() []State       { return []State{0} }
func (s sigmaStar) IsFinal(State) bool     { return true }
func (s sigmaStar) UsedSymbols() []Symbol  { return s.sigma }
func (s sigmaStar) Post(State, Symbol) []State {
	return []State{0}
}

// Universal checks L(b) == Σ*, i.e. Included(Σ*, b, sigma).
func Universal(b Automaton, sigma []Symbol) (bool, *Counterexample) {
	return Included(sigmaStar{sigma: sigma}, b, sigma)
}

// Equivalent checks L(a) == L(b) via two inclusion calls.
func Equivalent(a, b Automaton, alphabet []Symbol) (bool, *Counterexample) {
	if alphabet == nil {
		alphabet = unionSymbols(a, b)
	}
	if ok, cex := Included(a, b, alphabet); !ok {
		return false, cex
	}
	if ok, cex := Included(b, a, alphabet); !ok {
		return false, cex
	}

	return true, nil
}
