package nfa

import "github.com/matalib/mata/alphabet"

// Complement returns the classical complement of a with respect to sigma
//: determinize, make it complete over sigma using
// sink as the trap state, then swap final and non-final states.
//
// L(complement(a, sigma)) == sigma* \ L(a) whenever L(a) only uses symbols
// from sigma.
func (a *Nfa) Complement(sigma []Symbol, sink State) *Nfa {
	det := a.Determinize()
	comp := det.MakeComplete(sigma, sink)

	out := comp.Clone()
	out.Final = out.Final.Clone()
	out.Final.Clear()
	for q := 0; q < out.Size(); q++ {
		if !comp.Final.Contains(State(q)) {
			out.SetFinal(State(q))
		}
	}

	return out
}

// ComplementWithAlphabet is Complement using the symbols reported by an
// external alphabet.Alphabet collaborator, mirroring CompleteWithAlphabet.
func (a *Nfa) ComplementWithAlphabet(alph alphabet.Alphabet, sink State) *Nfa {
	return a.Complement(alph.Symbols(), sink)
}
