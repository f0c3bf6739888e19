package nfa

// Reverse returns the automaton whose language is the reverse of a's: all
// edges are flipped and Initial/Final swap roles.
//
// reverse(reverse(a)) has the same language as a.
func (a *Nfa) Reverse() *Nfa {
	out := New()
	out.Initial = a.Final.Clone()
	out.Final = a.Initial.Clone()

	for t := range a.Delta.Transitions() {
		out.Delta.Add(t.Tgt, t.Sym, t.Src)
	}
	// Preserve the state count even if the highest state has no incoming
	// edges in the reversed direction.
	if n := a.Delta.NumOfStates(); n > 0 {
		out.AddState(State(n - 1))
	}
	out.Alphabet = a.Alphabet

	return out
}

// ReverseFragile is a second reversal: it groups the source edges by
// (target, symbol) in first-seen order, then adds every reversed edge
// through Delta.Add, so each insertion still goes through the same ordered
// insert Reverse uses. Epsilon edges are not grouped separately and the
// eps argument is not consulted. Both variants produce language-equivalent
// automata.
func (a *Nfa) ReverseFragile(eps Symbol) *Nfa {
	out := New()
	out.Initial = a.Final.Clone()
	out.Final = a.Initial.Clone()
	out.Alphabet = a.Alphabet

	type bucketKey struct {
		tgt State
		sym Symbol
	}
	buckets := make(map[bucketKey][]State)
	var order []bucketKey

	for t := range a.Delta.Transitions() {
		k := bucketKey{tgt: t.Tgt, sym: t.Sym}
		if _, ok := buckets[k]; !ok {
			order = append(order, k)
		}
		buckets[k] = append(buckets[k], t.Src)
	}

	for _, k := range order {
		for _, src := range buckets[k] {
			out.Delta.Add(k.tgt, k.sym, src)
		}
	}
	if n := a.Delta.NumOfStates(); n > 0 {
		out.AddState(State(n - 1))
	}

	return out
}
