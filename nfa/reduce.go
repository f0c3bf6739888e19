package nfa

import (
	"github.com/matalib/mata/matrix"
	"github.com/matalib/mata/simulation"
)

// nfaLTS adapts *Nfa to simulation.LTS, using every
// symbol actually present on some transition as the label set — the
// simulation engine never needs the full declared alphabet, only the
// symbols it can actually branch on.
type nfaLTS struct {
	a      *Nfa
	labels []simulation.Symbol
}

func newNfaLTS(a *Nfa) *nfaLTS {
	seen := make(map[Symbol]bool)
	for t := range a.Delta.Transitions() {
		seen[t.Sym] = true
	}
	labels := make([]simulation.Symbol, 0, len(seen))
	for s := range seen {
		labels = append(labels, simulation.Symbol(s))
	}

	return &nfaLTS{a: a, labels: labels}
}

func (l *nfaLTS) NumStates() int              { return l.a.Size() }
func (l *nfaLTS) Labels() []simulation.Symbol { return l.labels }
func (l *nfaLTS) Post(q simulation.State, sym simulation.Symbol) []simulation.State {
	tgts := l.a.Post(State(q), Symbol(sym))
	out := make([]simulation.State, len(tgts))
	for i, t := range tgts {
		out[i] = simulation.State(t)
	}

	return out
}

// statusPartition splits [0, n) into an unmarked and a marked block
// (dropping whichever is empty) and seeds the block relation so an
// unmarked state may be simulated by a marked one but never the other way
// around. With marked = final this is the P0/R0 a language-preserving
// forward simulation needs: a final state's simulator must itself accept
// the empty suffix.
func statusPartition(n int, marked func(State) bool) (simulation.Partition, simulation.Relation) {
	var plain, flagged []simulation.State
	for q := 0; q < n; q++ {
		if marked(State(q)) {
			flagged = append(flagged, q)
		} else {
			plain = append(plain, q)
		}
	}

	var p0 simulation.Partition
	if len(plain) > 0 {
		p0 = append(p0, plain)
	}
	if len(flagged) > 0 {
		p0 = append(p0, flagged)
	}

	r0 := simulation.ReflexiveRelation(len(p0))
	if len(p0) == 2 {
		r0.Set(0, 1, true)
	}

	return p0, r0
}

// simulationRelation computes the state-level simulation preorder driving
// Reduce. Forward simulation partitions by final status; backward
// simulation runs on the reversed LTS and partitions by initial status
// (initial states are the finals of the reverse); bidirectional
// intersects the two.
func (a *Nfa) simulationRelation(d simulation.Direction) (simulation.Relation, error) {
	n := a.Size()
	lts := newNfaLTS(a)

	switch d {
	case simulation.Forward:
		p0, r0 := statusPartition(n, a.Final.Contains)

		return simulation.Compute(lts, p0, r0)
	case simulation.Backward:
		p0, r0 := statusPartition(n, a.Initial.Contains)

		return simulation.Compute(simulation.Reverse(lts), p0, r0)
	default:
		p0, r0 := statusPartition(n, a.Final.Contains)
		fwd, err := simulation.Compute(lts, p0, r0)
		if err != nil {
			return nil, err
		}
		p0, r0 = statusPartition(n, a.Initial.Contains)
		back, err := simulation.Compute(simulation.Reverse(lts), p0, r0)
		if err != nil {
			return nil, err
		}

		mutual := matrix.New(matrix.Cascade, n)
		for p := 0; p < n; p++ {
			for _, q := range fwd.Row(p) {
				if back.Get(p, q) {
					mutual.Set(p, q, true)
				}
			}
		}

		return mutual, nil
	}
}

// ReduceOption configures Reduce.
type ReduceOption func(*reduceConfig)

type reduceConfig struct {
	direction simulation.Direction
}

// WithDirection sets the direction of the simulation relation driving
// Reduce ({algorithm: simulation, direction: ..., type: ...} in the
// parameter-map form, see ReduceFromParams).
func WithDirection(d simulation.Direction) ReduceOption {
	return func(c *reduceConfig) { c.direction = d }
}

// Reduce computes the simulation-equivalence quotient of a. States related
// in both directions (mutual simulation) are merged; the resulting
// automaton has no two simulation-equivalent reachable states.
//
// This implements reduce's "type: after" mode: the quotient is built
// once, after the full simulation relation is final, rather than
// incrementally redirecting edges mid-computation ("type: with" — an
// acceleration structure for inclusion checking, not exposed as a
// standalone operation here).
func (a *Nfa) Reduce(opts ...ReduceOption) (*Nfa, error) {
	cfg := reduceConfig{direction: simulation.Bidirectional}
	for _, o := range opts {
		o(&cfg)
	}

	r, err := a.simulationRelation(cfg.direction)
	if err != nil {
		return nil, err
	}
	rep := simulation.Quotient(r, a.Size())

	out := New()
	out.Alphabet = a.Alphabet
	for _, s := range a.Initial.Items() {
		out.SetInitial(State(rep[int(s)]))
	}
	for _, s := range a.Final.Items() {
		out.SetFinal(State(rep[int(s)]))
	}
	for t := range a.Delta.Transitions() {
		out.Delta.Add(State(rep[int(t.Src)]), t.Sym, State(rep[int(t.Tgt)]))
	}

	return out, nil
}
