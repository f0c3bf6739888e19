// Package tarjan implements a non-recursive, iterative Tarjan
// strongly-connected-components walker exposing four caller callbacks.
// It drives Nfa's useful-state computation, acyclicity check, and
// SCC-based emptiness test.
//
// The traversal keeps an explicit work-stack of (vertex,
// successor-cursor) frames instead of recursing, so arbitrarily deep
// automata never exhaust the Go call stack.
package tarjan

// Graph is the minimal collaborator this walker needs: a dense state space
// [0, NumStates()) and, for each state, its successor states.
type Graph interface {
	NumStates() int
	Successors(q int) []int
}

// Callbacks are invoked at the traversal's four hook points. Any callback
// returning true stops the traversal immediately; Walk then returns true.
//
//   - StateDiscover(q): called once, when q is first discovered.
//   - SuccStateDiscover(src, tgt): called once per explored edge src->tgt.
//   - SCCStateDiscover(q): called once per state of a just-closed SCC.
//   - SCCDiscover(scc, tarjanStack): called once when an SCC's root is
//     popped; tarjanStack is the current Tarjan stack (bottom to top,
//     excluding the just-closed SCC), passed so callers may propagate
//     information upward (e.g. "can reach a final state").
type Callbacks struct {
	StateDiscover     func(q int) bool
	SuccStateDiscover func(src, tgt int) bool
	SCCStateDiscover  func(q int) bool
	SCCDiscover       func(scc []int, tarjanStack []int) bool
}

type frame struct {
	v int
	i int
}

// Walk runs Tarjan's algorithm from every state in starts that has not yet
// been discovered (earlier starts may already have covered it), invoking
// cb along the way. Returns true iff a callback requested early stop.
//
// Invariants maintained throughout: states are indexed in discovery order;
// low[q] is the minimum discovery index reachable from q via tree/back
// edges; a state is on the Tarjan stack iff its SCC has not yet closed.
func Walk(g Graph, starts []int, cb Callbacks) bool {
	n := g.NumStates()
	index := make([]int, n)
	low := make([]int, n)
	onStack := make([]bool, n)
	for i := range index {
		index[i] = -1
	}
	var tstack []int
	counter := 0

	for _, s := range starts {
		if s < 0 || s >= n || index[s] != -1 {
			continue
		}

		index[s], low[s] = counter, counter
		counter++
		onStack[s] = true
		tstack = append(tstack, s)
		if cb.StateDiscover != nil && cb.StateDiscover(s) {
			return true
		}

		work := []frame{{v: s, i: 0}}
		for len(work) > 0 {
			top := &work[len(work)-1]
			v := top.v
			succs := g.Successors(v)

			if top.i < len(succs) {
				w := succs[top.i]
				top.i++
				if cb.SuccStateDiscover != nil && cb.SuccStateDiscover(v, w) {
					return true
				}

				switch {
				case index[w] == -1:
					index[w], low[w] = counter, counter
					counter++
					onStack[w] = true
					tstack = append(tstack, w)
					if cb.StateDiscover != nil && cb.StateDiscover(w) {
						return true
					}
					work = append(work, frame{v: w, i: 0})
				case onStack[w]:
					if index[w] < low[v] {
						low[v] = index[w]
					}
				}

				continue
			}

			// All successors of v explored: pop v.
			work = work[:len(work)-1]
			if len(work) > 0 {
				parent := work[len(work)-1].v
				if low[v] < low[parent] {
					low[parent] = low[v]
				}
			}

			if low[v] == index[v] {
				var scc []int
				for {
					w := tstack[len(tstack)-1]
					tstack = tstack[:len(tstack)-1]
					onStack[w] = false
					scc = append(scc, w)
					if cb.SCCStateDiscover != nil && cb.SCCStateDiscover(w) {
						return true
					}
					if w == v {
						break
					}
				}
				if cb.SCCDiscover != nil && cb.SCCDiscover(scc, append([]int(nil), tstack...)) {
					return true
				}
			}
		}
	}

	return false
}
