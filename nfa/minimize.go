package nfa

// Minimize computes a minimal deterministic automaton for L(a) using
// Brzozowski's algorithm:
// determinize(reverse(determinize(reverse(a)))).
//
// The result is deterministic and, when a's reachable part has no two
// inequivalent states merged incorrectly (Brzozowski's classical
// guarantee), has the minimum number of reachable states among DFAs
// recognizing L(a).
func (a *Nfa) Minimize() *Nfa {
	return a.Reverse().Determinize().Reverse().Determinize()
}
