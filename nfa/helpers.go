package nfa

import "github.com/matalib/mata/sparseset"

// filteredSparseSet rebuilds a SparseSet keeping only members that pass
// staying, renamed through rename. Used by Trim and other operations that
// renumber state spaces.
func filteredSparseSet(s *sparseset.SparseSet[State], staying func(State) bool, rename func(State) State) *sparseset.SparseSet[State] {
	out := sparseset.New[State](s.Len())
	for _, q := range s.Items() {
		if staying(q) {
			out.Add(rename(q))
		}
	}

	return out
}

// mappedSparseSet rebuilds a SparseSet applying f to every member
// (f returns ok=false to drop a member).
func mappedSparseSet(s *sparseset.SparseSet[State], f func(State) (State, bool)) *sparseset.SparseSet[State] {
	out := sparseset.New[State](s.Len())
	for _, q := range s.Items() {
		if nq, ok := f(q); ok {
			out.Add(nq)
		}
	}

	return out
}
