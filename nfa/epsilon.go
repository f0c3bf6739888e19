package nfa

// epsilonClosure computes the reflexive-transitive closure of eps-labeled
// edges by fixed-point iteration.
func (a *Nfa) epsilonClosure(eps Symbol) map[State]map[State]bool {
	n := a.Size()
	closure := make(map[State]map[State]bool, n)
	for q := 0; q < n; q++ {
		closure[State(q)] = map[State]bool{State(q): true}
	}

	changed := true
	for changed {
		changed = false
		for q := 0; q < n; q++ {
			for r := range closure[State(q)] {
				for _, nxt := range a.Delta.StatePostOf(r).Find(eps).Slice() {
					if !closure[State(q)][nxt] {
						closure[State(q)][nxt] = true
						changed = true
					}
				}
			}
		}
	}

	return closure
}

// RemoveEpsilon eliminates eps-labeled transitions: a state q is final in
// the result iff any state of its epsilon closure is final in a; its
// outgoing (non-epsilon) edges are the union of the non-epsilon edges of
// every state in its closure.
func (a *Nfa) RemoveEpsilon(eps Symbol) *Nfa {
	closure := a.epsilonClosure(eps)
	out := New()
	out.Alphabet = a.Alphabet
	out.Initial = a.Initial.Clone()

	n := a.Size()
	for q := 0; q < n; q++ {
		for r := range closure[State(q)] {
			if a.Final.Contains(r) {
				out.SetFinal(State(q))

				break
			}
		}
		for r := range closure[State(q)] {
			for _, p := range a.Delta.StatePostOf(r).Posts() {
				if p.Symbol == eps {
					continue
				}
				for _, tgt := range p.Targets.Slice() {
					out.Delta.Add(State(q), p.Symbol, tgt)
				}
			}
		}
	}
	if n > 0 {
		out.AddState(State(n - 1))
	}

	return out
}

// epsilonClosurePaths computes, for every state q, a shortest-path BFS
// tree over eps-labeled edges rooted at q. The result maps q to a map
// from each state r in q's epsilon closure to the chain of intermediate
// states between q and r (exclusive of q, inclusive of r); the chain for
// q itself is empty. Used by Run to report exact closure hops in a
// witness path rather than collapsing them to a single jump.
func (a *Nfa) epsilonClosurePaths(eps Symbol) map[State]map[State][]State {
	n := a.Size()
	result := make(map[State]map[State][]State, n)
	for q := 0; q < n; q++ {
		src := State(q)
		parent := map[State]State{}
		visited := map[State]bool{src: true}
		queue := []State{src}
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			for _, nxt := range a.Delta.StatePostOf(cur).Find(eps).Slice() {
				if visited[nxt] {
					continue
				}
				visited[nxt] = true
				parent[nxt] = cur
				queue = append(queue, nxt)
			}
		}

		paths := make(map[State][]State, len(visited))
		for r := range visited {
			if r == src {
				paths[r] = nil
				continue
			}
			var chain []State
			for cur := r; cur != src; cur = parent[cur] {
				chain = append(chain, cur)
			}
			for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
				chain[i], chain[j] = chain[j], chain[i]
			}
			paths[r] = chain
		}
		result[src] = paths
	}

	return result
}

// HasEpsilon reports whether any transition in a is labeled eps.
func (a *Nfa) HasEpsilon(eps Symbol) bool {
	for t := range a.Delta.Transitions() {
		if t.Sym == eps {
			return true
		}
	}

	return false
}
