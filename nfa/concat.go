package nfa

// shiftedClone renumbers every state of a by adding offset, returning the
// new automaton plus the shift function (used by both Concat modes to
// union two state spaces under one fresh numbering).
func shiftedClone(a *Nfa, offset State) (*Nfa, func(State) State) {
	shift := func(s State) State { return s + offset }
	out := New()
	out.Alphabet = a.Alphabet
	for _, s := range a.Initial.Items() {
		out.SetInitial(shift(s))
	}
	for _, s := range a.Final.Items() {
		out.SetFinal(shift(s))
	}
	for t := range a.Delta.Transitions() {
		out.Delta.Add(shift(t.Src), t.Sym, shift(t.Tgt))
	}
	if n := a.Size(); n > 0 {
		out.AddState(shift(State(n - 1)))
	}

	return out, shift
}

// Concat returns the non-epsilon concatenation of lhs and rhs:
// every edge of lhs that targets an lhs.Final state gets a parallel edge,
// on the same symbol, into each (renumbered) rhs initial state, in
// addition to its original target — preserving any further transitions
// lhs.Final states may have of their own. Only rhs.Final (renumbered) is
// final in the result. If lhs accepts the empty word (some lhs.Initial is
// also lhs.Final), every renumbered rhs initial is additionally made
// initial in the result, so a run can skip lhs entirely.
func Concat(lhs, rhs *Nfa) *Nfa {
	lhsOut, lhsShift := shiftedClone(lhs, 0)
	rhsOut, rhsShift := shiftedClone(rhs, State(lhs.Size()))

	out := New()
	out.Alphabet = lhs.Alphabet
	for _, s := range lhsOut.Initial.Items() {
		out.SetInitial(s)
	}
	for _, s := range lhs.Initial.Items() {
		if lhs.Final.Contains(s) {
			for _, i := range rhs.Initial.Items() {
				out.SetInitial(rhsShift(i))
			}
			break
		}
	}
	for _, s := range rhsOut.Final.Items() {
		out.SetFinal(s)
	}
	for t := range lhsOut.Delta.Transitions() {
		out.Delta.Add(t.Src, t.Sym, t.Tgt)
	}
	for t := range rhsOut.Delta.Transitions() {
		out.Delta.Add(t.Src, t.Sym, t.Tgt)
	}

	for t := range lhs.Delta.Transitions() {
		if !lhs.Final.Contains(t.Tgt) {
			continue
		}
		for _, i := range rhs.Initial.Items() {
			out.Delta.Add(lhsShift(t.Src), t.Sym, rhsShift(i))
		}
	}
	if n := lhs.Size() + rhs.Size(); n > 0 {
		out.AddState(State(n - 1))
	}

	return out
}

// ConcatEpsilon returns the epsilon-preserving concatenation of lhs and
// rhs: union the two deltas under a fresh numbering and add an
// eps edge from every lhs final to every (renumbered) rhs initial.
func ConcatEpsilon(lhs, rhs *Nfa, eps Symbol) *Nfa {
	lhsOut, lhsShift := shiftedClone(lhs, 0)
	rhsOut, rhsShift := shiftedClone(rhs, State(lhs.Size()))

	out := New()
	out.Alphabet = lhs.Alphabet
	for _, s := range lhsOut.Initial.Items() {
		out.SetInitial(s)
	}
	for _, s := range rhsOut.Final.Items() {
		out.SetFinal(s)
	}
	for t := range lhsOut.Delta.Transitions() {
		out.Delta.Add(t.Src, t.Sym, t.Tgt)
	}
	for t := range rhsOut.Delta.Transitions() {
		out.Delta.Add(t.Src, t.Sym, t.Tgt)
	}
	for _, f := range lhs.Final.Items() {
		for _, i := range rhs.Initial.Items() {
			out.Delta.Add(lhsShift(f), eps, rhsShift(i))
		}
	}
	if n := lhs.Size() + rhs.Size(); n > 0 {
		out.AddState(State(n - 1))
	}

	return out
}
