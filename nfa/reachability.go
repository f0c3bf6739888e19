package nfa

// reachableFrom runs an iterative DFS from every state in starts over
// succ, returning the set of states discovered.
func reachableFrom(n int, starts []State, succ func(State) []State) map[State]bool {
	seen := make(map[State]bool, n)
	var stack []State
	for _, s := range starts {
		if !seen[s] {
			seen[s] = true
			stack = append(stack, s)
		}
	}
	for len(stack) > 0 {
		q := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, nxt := range succ(q) {
			if !seen[nxt] {
				seen[nxt] = true
				stack = append(stack, nxt)
			}
		}
	}

	return seen
}

func (a *Nfa) successors(q State) []State {
	var out []State
	for _, p := range a.Delta.StatePostOf(q).Posts() {
		out = append(out, p.Targets.Slice()...)
	}

	return out
}

func (a *Nfa) predecessors(q State) []State {
	var out []State
	for src := 0; src < a.Delta.NumOfStates(); src++ {
		for _, p := range a.Delta.StatePostOf(State(src)).Posts() {
			if p.Targets.Contains(q) {
				out = append(out, State(src))
			}
		}
	}

	return out
}

// Reachable returns the set of states reachable from some initial state.
func (a *Nfa) Reachable() map[State]bool {
	return reachableFrom(a.Size(), a.Initial.Items(), a.successors)
}

// CoReachable returns the set of states that can reach some final state
// (computed as reachability on the reversed automaton).
func (a *Nfa) CoReachable() map[State]bool {
	return reachableFrom(a.Size(), a.Final.Items(), a.predecessors)
}

// Trim removes states that are not both reachable from some initial state
// and co-reachable to some final state, renumbering the remaining states
// densely starting at 0. Returns the trimmed automaton and the renaming
// from old state indices to new ones (old states not present in the map
// were discarded).
//
// Preserves language: L(a.Trim()) == L(a).
func (a *Nfa) Trim() (*Nfa, map[State]State) {
	reach := a.Reachable()
	coreach := a.CoReachable()

	useful := make(map[State]bool, a.Size())
	for q := range reach {
		if coreach[q] {
			useful[q] = true
		}
	}

	renaming := make(map[State]State, len(useful))
	next := State(0)
	for q := 0; q < a.Size(); q++ {
		if useful[State(q)] {
			renaming[State(q)] = next
			next++
		}
	}

	staying := func(q State) bool { return useful[q] }
	rename := func(q State) State { return renaming[q] }

	out := &Nfa{
		Delta:    a.Delta.Defragment(staying, rename),
		Alphabet: a.Alphabet,
		Initial:  filteredSparseSet(a.Initial, staying, rename),
		Final:    filteredSparseSet(a.Final, staying, rename),
	}

	return out, renaming
}
