package nfa

// Witness is a counterexample accepted word plus the state path it drives
// a through, from some initial state to some final state.
type Witness struct {
	Word []Symbol
	Path []State
}

// IsLangEmpty reports whether L(a) is empty, short-circuiting a BFS over
// reachable states the moment a final state is discovered.
// When the language is non-empty, the second return value is a witness
// word/path reconstructed by walking parent pointers back to an initial
// state.
func (a *Nfa) IsLangEmpty() (bool, *Witness) {
	type parentEdge struct {
		prev State
		sym  Symbol
		has  bool
	}

	parent := make(map[State]parentEdge, a.Size())
	visited := make(map[State]bool, a.Size())
	var queue []State

	for _, s := range a.Initial.Items() {
		if !visited[s] {
			visited[s] = true
			parent[s] = parentEdge{has: false}
			queue = append(queue, s)
		}
	}

	var found State
	ok := false
	for _, s := range queue {
		if a.Final.Contains(s) {
			found, ok = s, true

			break
		}
	}

	for i := 0; !ok && i < len(queue); i++ {
		cur := queue[i]
		for _, sp := range a.Delta.StatePostOf(cur).Posts() {
			for _, tgt := range sp.Targets.Slice() {
				if visited[tgt] {
					continue
				}
				visited[tgt] = true
				parent[tgt] = parentEdge{prev: cur, sym: sp.Symbol, has: true}
				if a.Final.Contains(tgt) {
					found, ok = tgt, true

					break
				}
				queue = append(queue, tgt)
			}
			if ok {
				break
			}
		}
	}

	if !ok {
		return true, nil
	}

	var word []Symbol
	var path []State
	cur := found
	for {
		path = append([]State{cur}, path...)
		pe := parent[cur]
		if !pe.has {
			break
		}
		word = append([]Symbol{pe.sym}, word...)
		cur = pe.prev
	}

	return false, &Witness{Word: word, Path: path}
}
