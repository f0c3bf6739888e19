package nfa

import "github.com/matalib/mata/alphabet"

// MakeComplete returns a clone of a that is complete with respect to
// sigma: every reachable state gets an edge to sink on every symbol of
// sigma it was missing. A self-loop on every
// symbol of sigma is added at sink, but only if at least one redirection
// to sink actually happened — an automaton already complete is returned
// unchanged (plus the now-unused sink state, if it was not already part
// of a).
//
// make_complete(a, sigma) is complete with respect to sigma.
func (a *Nfa) MakeComplete(sigma []Symbol, sink State) *Nfa {
	out := a.Clone()
	out.AddState(sink)

	reach := out.Reachable()
	redirected := false

	for q := range reach {
		have := make(map[Symbol]bool, out.Delta.StatePostOf(q).Len())
		for _, p := range out.Delta.StatePostOf(q).Posts() {
			have[p.Symbol] = true
		}
		for _, sym := range sigma {
			if !have[sym] {
				out.Delta.Add(q, sym, sink)
				redirected = true
			}
		}
	}

	if redirected {
		for _, sym := range sigma {
			out.Delta.Add(sink, sym, sink)
		}
	}

	return out
}

// CompleteWithAlphabet is MakeComplete using the symbols reported by an
// external alphabet.Alphabet collaborator.
func (a *Nfa) CompleteWithAlphabet(alph alphabet.Alphabet, sink State) *Nfa {
	return a.MakeComplete(alph.Symbols(), sink)
}
