package nfa

import (
	"strconv"
	"strings"

	"github.com/matalib/mata/delta"
	"github.com/matalib/mata/ordvec"
	"github.com/matalib/mata/sparseset"
)

// canonSubset builds a stable string key for a macro-state, used to
// canonicalize the subset-map from OrdVector<State> to State.
func canonSubset(set *ordvec.OrdVector[State]) string {
	var b strings.Builder
	for i, s := range set.Slice() {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(int(s)))
	}

	return b.String()
}

func intersectsFinal(set *ordvec.OrdVector[State], final *sparseset.SparseSet[State]) bool {
	for _, s := range set.Slice() {
		if final.Contains(s) {
			return true
		}
	}

	return false
}

// Determinize performs the standard subset construction.
//
// Epsilon is never treated as an ordinary symbol here (DESIGN.md records
// the policy choice). If a has any EPSILON transitions, they are
// eliminated first via RemoveEpsilon, then the subset construction runs on
// the epsilon-free result.
//
// determinize(a) is deterministic and has the same language as a.
func (a *Nfa) Determinize() *Nfa {
	src := a
	if a.HasEpsilon(EPSILON) {
		src = a.RemoveEpsilon(EPSILON)
	}

	out := New()
	out.Alphabet = src.Alphabet

	subsetID := make(map[string]State)
	var macroStates []ordvec.OrdVector[State]

	var initSet ordvec.OrdVector[State]
	for _, s := range src.Initial.Items() {
		initSet.Insert(s)
	}

	id0 := State(0)
	subsetID[canonSubset(&initSet)] = id0
	macroStates = append(macroStates, initSet)
	out.SetInitial(id0)
	if intersectsFinal(&initSet, src.Final) {
		out.SetFinal(id0)
	}

	worklist := []State{id0}
	for len(worklist) > 0 {
		curID := worklist[0]
		worklist = worklist[1:]
		cur := macroStates[curID]

		rows := make([]*delta.StatePost, 0, cur.Len())
		for _, s := range cur.Slice() {
			rows = append(rows, src.Delta.StatePostOf(s))
		}

		for _, st := range delta.SyncUnion(rows) {
			tgtSet := st.Union
			key := canonSubset(&tgtSet)
			tgtID, ok := subsetID[key]
			if !ok {
				tgtID = State(len(macroStates))
				subsetID[key] = tgtID
				macroStates = append(macroStates, tgtSet)
				worklist = append(worklist, tgtID)
				if intersectsFinal(&tgtSet, src.Final) {
					out.SetFinal(tgtID)
				}
			}
			out.Delta.Add(curID, st.Symbol, tgtID)
		}
	}

	return out
}

// IsDeterministic reports whether every state has at most one initial
// candidate path and at most one target per symbol.
func (a *Nfa) IsDeterministic() bool {
	if a.Initial.Len() > 1 {
		return false
	}
	for q := 0; q < a.Size(); q++ {
		for _, p := range a.Delta.StatePostOf(State(q)).Posts() {
			if p.Targets.Len() > 1 {
				return false
			}
		}
	}

	return true
}
