package nfa

import "github.com/matalib/mata/tarjan"

// tarjanGraph adapts Nfa to tarjan.Graph.
type tarjanGraph struct{ a *Nfa }

func (g tarjanGraph) NumStates() int { return g.a.Size() }
func (g tarjanGraph) Successors(q int) []int {
	succ := g.a.successors(State(q))
	out := make([]int, len(succ))
	for i, s := range succ {
		out[i] = int(s)
	}

	return out
}

// UsefulStates computes, via the non-recursive Tarjan walker, the set of
// states that can reach some final state: on discovering a state the
// flag starts true iff it is final; on closing an SCC, if any member has the flag, the whole SCC (and the
// flag) propagates upward through the Tarjan stack.
func (a *Nfa) UsefulStates() map[State]bool {
	n := a.Size()
	flag := make([]bool, n)
	useful := make(map[State]bool, n)
	g := tarjanGraph{a: a}

	starts := make([]int, n)
	for i := range starts {
		starts[i] = i
	}

	tarjan.Walk(g, starts, tarjan.Callbacks{
		StateDiscover: func(q int) bool {
			if a.Final.Contains(State(q)) {
				flag[q] = true
			}

			return false
		},
		SuccStateDiscover: func(src, tgt int) bool {
			// A successor whose SCC already closed flagged (a cross edge)
			// passes its flag to src here; successors still open pass it
			// on via SCCDiscover below.
			if flag[tgt] {
				flag[src] = true
			}

			return false
		},
		SCCDiscover: func(scc []int, tstack []int) bool {
			anyFlagged := false
			for _, q := range scc {
				if flag[q] {
					anyFlagged = true

					break
				}
			}
			if anyFlagged {
				for _, q := range scc {
					flag[q] = true
					useful[State(q)] = true
				}
				// Propagate upward: every state still on the Tarjan stack
				// is an ancestor of this SCC in the DFS tree and can reach
				// it, hence can reach a final state too.
				for _, q := range tstack {
					flag[q] = true
				}
			}

			return false
		},
	})

	return useful
}

// IsLangEmptySCC decides emptiness by short-circuiting the Tarjan walk as
// soon as any final state is discovered reachable.
func (a *Nfa) IsLangEmptySCC() bool {
	g := tarjanGraph{a: a}
	found := false

	starts := make([]int, 0, a.Initial.Len())
	for _, s := range a.Initial.Items() {
		starts = append(starts, int(s))
	}

	tarjan.Walk(g, starts, tarjan.Callbacks{
		StateDiscover: func(q int) bool {
			if a.Final.Contains(State(q)) {
				found = true
			}

			return found
		},
	})

	return !found
}

// IsAcyclic reports whether the automaton's whole transition graph (every
// state below Size(), reachable or not) is acyclic: any SCC of size > 1,
// or any self-loop, sets acyclic false.
func (a *Nfa) IsAcyclic() bool {
	g := tarjanGraph{a: a}
	acyclic := true

	starts := make([]int, a.Size())
	for i := range starts {
		starts[i] = i
	}

	tarjan.Walk(g, starts, tarjan.Callbacks{
		SuccStateDiscover: func(src, tgt int) bool {
			if src == tgt {
				acyclic = false
			}

			return !acyclic
		},
		SCCDiscover: func(scc []int, tstack []int) bool {
			if len(scc) > 1 {
				acyclic = false
			}

			return !acyclic
		},
	})

	return acyclic
}
