package tarjan_test

import (
	"sort"
	"testing"

	"github.com/matalib/mata/tarjan"
	"github.com/stretchr/testify/require"
)

type adjGraph struct {
	succ map[int][]int
	n    int
}

func (g adjGraph) NumStates() int          { return g.n }
func (g adjGraph) Successors(q int) []int { return g.succ[q] }

func TestWalkFindsSingleCycleAsOneSCC(t *testing.T) {
	g := adjGraph{n: 3, succ: map[int][]int{0: {1}, 1: {2}, 2: {0}}}

	var sccs [][]int
	tarjan.Walk(g, []int{0}, tarjan.Callbacks{
		SCCDiscover: func(scc []int, _ []int) bool {
			sorted := append([]int(nil), scc...)
			sort.Ints(sorted)
			sccs = append(sccs, sorted)
			return false
		},
	})

	require.Len(t, sccs, 1)
	require.Equal(t, []int{0, 1, 2}, sccs[0])
}

func TestWalkOnDagYieldsSingletonSCCsInPostorder(t *testing.T) {
	g := adjGraph{n: 3, succ: map[int][]int{0: {1}, 1: {2}, 2: {}}}

	var order []int
	tarjan.Walk(g, []int{0}, tarjan.Callbacks{
		SCCDiscover: func(scc []int, _ []int) bool {
			require.Len(t, scc, 1)
			order = append(order, scc[0])
			return false
		},
	})

	require.Equal(t, []int{2, 1, 0}, order)
}

func TestWalkStopsEarlyOnCallbackTrue(t *testing.T) {
	g := adjGraph{n: 3, succ: map[int][]int{0: {1}, 1: {2}, 2: {}}}

	visited := 0
	stopped := tarjan.Walk(g, []int{0}, tarjan.Callbacks{
		StateDiscover: func(q int) bool {
			visited++
			return q == 1
		},
	})

	require.True(t, stopped)
	require.Equal(t, 2, visited)
}

func TestWalkSkipsAlreadyDiscoveredStarts(t *testing.T) {
	g := adjGraph{n: 2, succ: map[int][]int{0: {1}, 1: {}}}

	discovered := map[int]int{}
	tarjan.Walk(g, []int{0, 1}, tarjan.Callbacks{
		StateDiscover: func(q int) bool {
			discovered[q]++
			return false
		},
	})

	require.Equal(t, 1, discovered[0])
	require.Equal(t, 1, discovered[1])
}
