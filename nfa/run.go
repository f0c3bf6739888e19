package nfa

// Run replays word against a from every
// initial state in parallel (the NFA subset-of-states semantics, without
// materializing a determinized automaton), returning whether some run
// lands on a final state, plus one witnessing state-path for each distinct
// accepting state the word ends in (the first path found to that state).
// Each returned path lists every state actually visited in delta,
// including every intermediate state of a multi-hop epsilon closure.
//
// Epsilon transitions are followed at every step, including before
// consuming the first symbol and after consuming the last one.
func (a *Nfa) Run(word []Symbol) (bool, [][]State) {
	closure := a.epsilonClosurePaths(EPSILON)

	type frontierEntry struct {
		state State
		path  []State
	}

	var frontier []frontierEntry
	seedSeen := make(map[State]bool)
	for _, s := range a.Initial.Items() {
		for r, chain := range closure[s] {
			if seedSeen[r] {
				continue
			}
			seedSeen[r] = true
			p := append([]State{s}, chain...)
			frontier = append(frontier, frontierEntry{state: r, path: p})
		}
	}

	for _, sym := range word {
		next := make(map[State][]State) // state -> first witnessing path found
		for _, fe := range frontier {
			for _, tgt := range a.Delta.StatePostOf(fe.state).Find(sym).Slice() {
				for r, chain := range closure[tgt] {
					if _, ok := next[r]; ok {
						continue
					}
					p := append(append([]State(nil), fe.path...), tgt)
					p = append(p, chain...)
					next[r] = p
				}
			}
		}

		frontier = frontier[:0]
		for st, p := range next {
			frontier = append(frontier, frontierEntry{state: st, path: p})
		}
	}

	var accepting [][]State
	for _, fe := range frontier {
		if a.Final.Contains(fe.state) {
			accepting = append(accepting, fe.path)
		}
	}

	return len(accepting) > 0, accepting
}
