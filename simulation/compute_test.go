package simulation_test

import (
	"math/rand"
	"testing"

	"github.com/matalib/mata/mataerr"
	"github.com/matalib/mata/simulation"
	"github.com/stretchr/testify/require"
)

// mapLTS implements simulation.LTS from a literal transition table.
type mapLTS struct {
	n    int
	post map[simulation.Symbol]map[simulation.State][]simulation.State
}

func (m mapLTS) NumStates() int { return m.n }
func (m mapLTS) Labels() []simulation.Symbol {
	labels := make([]simulation.Symbol, 0, len(m.post))
	for a := range m.post {
		labels = append(labels, a)
	}

	return labels
}
func (m mapLTS) Post(q simulation.State, a simulation.Symbol) []simulation.State {
	return m.post[a][q]
}

// exampleLTS: Q={0,1,2}, L={a,b}, post_a={0->{1},2->{1}},
// post_b={1->{2}}. 0 and 2 have identical outgoing behavior.
func exampleLTS() mapLTS {
	return mapLTS{
		n: 3,
		post: map[simulation.Symbol]map[simulation.State][]simulation.State{
			'a': {0: {1}, 2: {1}},
			'b': {1: {2}},
		},
	}
}

func singleBlockInputs(n int) (simulation.Partition, simulation.Relation) {
	return simulation.SingleBlockPartition(n), simulation.FullRelation(1)
}

func TestComputeIdentifies0And2AsEquivalent(t *testing.T) {
	p0, r0 := singleBlockInputs(3)
	r, err := simulation.Compute(exampleLTS(), p0, r0)
	require.NoError(t, err)

	require.True(t, r.Get(0, 2))
	require.True(t, r.Get(2, 0))
	require.False(t, r.Get(0, 1))
	require.False(t, r.Get(1, 0))

	classes := simulation.Quotient(r, 3)
	require.Equal(t, classes[0], classes[2])
	require.NotEqual(t, classes[0], classes[1])
}

func TestComputeSatisfiesSimulationInvariant(t *testing.T) {
	lts := exampleLTS()
	p0, r0 := singleBlockInputs(3)
	r, err := simulation.Compute(lts, p0, r0)
	require.NoError(t, err)

	for p := 0; p < 3; p++ {
		for _, q := range r.Row(p) {
			for _, a := range lts.Labels() {
				for _, pPrime := range lts.Post(p, a) {
					found := false
					for _, qPrime := range lts.Post(q, a) {
						if r.Get(pPrime, qPrime) {
							found = true
						}
					}
					require.True(t, found, "p=%d q=%d a=%c", p, q, a)
				}
			}
		}
	}
}

func TestComputeDeadStatesSimulatedByEverything(t *testing.T) {
	lts := mapLTS{
		n: 3,
		post: map[simulation.Symbol]map[simulation.State][]simulation.State{
			'a': {0: {1}},
		},
	}
	p0, r0 := singleBlockInputs(3)
	r, err := simulation.Compute(lts, p0, r0)
	require.NoError(t, err)

	// 1 and 2 have no outgoing edges: anything simulates them.
	for q := 0; q < 3; q++ {
		require.True(t, r.Get(1, q))
		require.True(t, r.Get(2, q))
	}
	// 0 moves on a; 1 and 2 cannot answer.
	require.False(t, r.Get(0, 1))
	require.False(t, r.Get(0, 2))
	require.True(t, r.Get(0, 0))
}

func TestComputeRespectsInitialPartition(t *testing.T) {
	// 0 and 1 behave identically, but the caller's partition separates
	// them; the result must stay inside R0's expansion.
	lts := mapLTS{n: 2, post: map[simulation.Symbol]map[simulation.State][]simulation.State{}}
	p0 := simulation.Partition{{0}, {1}}
	r0 := simulation.ReflexiveRelation(2)

	r, err := simulation.Compute(lts, p0, r0)
	require.NoError(t, err)
	require.True(t, r.Get(0, 0))
	require.True(t, r.Get(1, 1))
	require.False(t, r.Get(0, 1))
	require.False(t, r.Get(1, 0))
}

func TestComputeEmptyLTS(t *testing.T) {
	lts := mapLTS{n: 0}
	r, err := simulation.Compute(lts, nil, simulation.ReflexiveRelation(0))
	require.NoError(t, err)
	require.Equal(t, 0, r.Size())
}

func TestComputeRejectsBadInputs(t *testing.T) {
	lts := exampleLTS()

	tests := []struct {
		name string
		p0   simulation.Partition
		r0   simulation.Relation
	}{
		{"state in two blocks", simulation.Partition{{0, 1}, {1, 2}}, simulation.ReflexiveRelation(2)},
		{"state missing", simulation.Partition{{0, 1}}, simulation.ReflexiveRelation(1)},
		{"empty block", simulation.Partition{{0, 1, 2}, {}}, simulation.ReflexiveRelation(2)},
		{"state out of range", simulation.Partition{{0, 1, 2, 7}}, simulation.ReflexiveRelation(1)},
		{"relation size mismatch", simulation.SingleBlockPartition(3), simulation.ReflexiveRelation(2)},
		{"relation not reflexive", simulation.SingleBlockPartition(3), func() simulation.Relation {
			r := simulation.ReflexiveRelation(1)
			r.Set(0, 0, false)

			return r
		}()},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := simulation.Compute(lts, tc.p0, tc.r0)
			require.ErrorIs(t, err, mataerr.ErrBadInput)
		})
	}
}

// naiveSimulation is a reference oracle: expand R0 over the partition to
// state pairs, then strike violating pairs until a fixpoint. Both it and
// the partition-refinement engine compute the unique greatest simulation
// inside R0's expansion, so their outputs must agree exactly.
func naiveSimulation(lts simulation.LTS, p0 simulation.Partition, r0 simulation.Relation) [][]bool {
	n := lts.NumStates()
	blockOf := make([]int, n)
	for i, states := range p0 {
		for _, q := range states {
			blockOf[q] = i
		}
	}
	rel := make([][]bool, n)
	for p := 0; p < n; p++ {
		rel[p] = make([]bool, n)
		for q := 0; q < n; q++ {
			rel[p][q] = r0.Get(blockOf[p], blockOf[q])
		}
	}

	labels := lts.Labels()
	simulates := func(p, q int) bool {
		for _, a := range labels {
			for _, pPrime := range lts.Post(p, a) {
				ok := false
				for _, qPrime := range lts.Post(q, a) {
					if rel[pPrime][qPrime] {
						ok = true

						break
					}
				}
				if !ok {
					return false
				}
			}
		}

		return true
	}

	for changed := true; changed; {
		changed = false
		for p := 0; p < n; p++ {
			for q := 0; q < n; q++ {
				if rel[p][q] && !simulates(p, q) {
					rel[p][q] = false
					changed = true
				}
			}
		}
	}

	return rel
}

func TestComputeAgreesWithNaiveOracleOnRandomLTSs(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 50; trial++ {
		n := 2 + rng.Intn(8)
		numLabels := 1 + rng.Intn(3)
		lts := mapLTS{n: n, post: make(map[simulation.Symbol]map[simulation.State][]simulation.State)}
		for a := 0; a < numLabels; a++ {
			sym := simulation.Symbol('a' + a)
			lts.post[sym] = make(map[simulation.State][]simulation.State)
			for q := 0; q < n; q++ {
				var tgts []simulation.State
				for r := 0; r < n; r++ {
					if rng.Intn(4) == 0 {
						tgts = append(tgts, r)
					}
				}
				if len(tgts) > 0 {
					lts.post[sym][q] = tgts
				}
			}
		}

		p0, r0 := singleBlockInputs(n)
		got, err := simulation.Compute(lts, p0, r0)
		require.NoError(t, err)
		want := naiveSimulation(lts, p0, r0)

		for p := 0; p < n; p++ {
			for q := 0; q < n; q++ {
				require.Equal(t, want[p][q], got.Get(p, q), "trial=%d p=%d q=%d", trial, p, q)
			}
		}
	}
}
