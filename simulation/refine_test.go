package simulation

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSmartSetCountsMultiplicity(t *testing.T) {
	s := newSmartSet(5)
	s.add(3)
	s.add(3)
	s.add(1)

	require.True(t, s.contains(3))
	require.Equal(t, 2, s.size())
	require.Equal(t, []int{3, 1}, s.elements())

	s.removeStrict(3)
	require.True(t, s.contains(3), "one occurrence left")
	s.removeStrict(3)
	require.False(t, s.contains(3))
	require.Equal(t, []int{1}, s.elements())

	s.removeAll(1)
	require.True(t, s.empty())
}

func TestSmartSetAssignFlat(t *testing.T) {
	a := newSmartSet(4)
	a.add(0)
	a.add(0)
	a.add(2)

	b := newSmartSet(4)
	b.add(3)
	b.assignFlat(a)

	require.False(t, b.contains(3))
	require.True(t, b.contains(0))
	require.True(t, b.contains(2))

	// flat: a single removeStrict fully drops an element a held twice.
	b.removeStrict(0)
	require.False(t, b.contains(0))
}

// buildTestEngine wires a tiny engine with one block over [0, n) so list
// surgery can be tested in isolation.
func buildTestEngine(n int) (*engine, *block) {
	lts := &denseLTS{
		n:        n,
		labels:   0,
		delta1:   nil,
		bwLabels: make([][]int, n),
	}
	e := newEngine(lts)
	states := make([]State, n)
	for i := range states {
		states[i] = i
	}
	b := e.makeBlock(states)

	return e, b
}

func TestTrySplitSeversStrictSubset(t *testing.T) {
	e, b := buildTestEngine(5)
	b.tmp = append(b.tmp, 1, 3)

	head, size := e.trySplit(b)
	require.Equal(t, 2, size)
	require.Equal(t, 3, b.size)

	// New ring contains exactly {1, 3}.
	severed := map[State]bool{}
	q := head
	for {
		severed[q] = true
		q = e.next[q]
		if q == head {
			break
		}
	}
	require.Equal(t, map[State]bool{1: true, 3: true}, severed)

	// Remaining ring contains exactly {0, 2, 4}.
	remaining := map[State]bool{}
	e.eachMember(b, func(q State) { remaining[q] = true })
	require.Equal(t, map[State]bool{0: true, 2: true, 4: true}, remaining)
}

func TestTrySplitWholeBlockIsNoop(t *testing.T) {
	e, b := buildTestEngine(3)
	b.tmp = append(b.tmp, 0, 1, 2)

	_, size := e.trySplit(b)
	require.Equal(t, 0, size)
	require.Equal(t, 3, b.size)
	require.Empty(t, b.tmp)

	count := 0
	e.eachMember(b, func(State) { count++ })
	require.Equal(t, 3, count)
}

func TestTrySplitSingleState(t *testing.T) {
	e, b := buildTestEngine(4)
	b.tmp = append(b.tmp, 2)

	head, size := e.trySplit(b)
	require.Equal(t, 1, size)
	require.Equal(t, State(2), head)
	require.Equal(t, State(2), e.next[2])
	require.Equal(t, State(2), e.prev[2])
	require.Equal(t, 3, b.size)
}

func TestSharedCounterCopyOnWrite(t *testing.T) {
	pool := &slicePool{}
	d := &denseLTS{n: 4, labels: 1, delta1: []*smartSet{newSmartSet(4)}}
	d.delta1[0].add(0)
	d.delta1[0].add(2)
	layout := newCounterLayout(d, pool)

	parent := newSharedCounter(layout)
	parent.set(0, 0, 2)
	parent.set(0, 2, 1)

	inset := newSmartSet(1)
	inset.add(0)
	child := newSharedCounter(layout)
	child.copyLabels(inset, parent)

	// Shared until written.
	require.Equal(t, 1, child.decr(0, 0))
	require.Equal(t, 2, parent.rows[0].data[0], "parent row untouched by child decrement")
	require.Equal(t, 0, child.decr(0, 0))
	require.Equal(t, 1, parent.decr(0, 0))
}

func TestRemoveListCopyOnWriteAndRelease(t *testing.T) {
	pool := &slicePool{}

	var list *removeList
	require.True(t, appendRemove(&list, 7, pool), "first append creates the list")
	require.False(t, appendRemove(&list, 8, pool))

	shared := list.share()
	require.Same(t, list, shared)

	// Appending through a shared handle must not leak into the sibling.
	owner := list
	require.False(t, appendRemove(&owner, 9, pool))
	require.NotSame(t, shared, owner)
	require.Equal(t, []int{7, 8}, shared.items)
	require.Equal(t, []int{7, 8, 9}, owner.items)

	shared.release(pool)
	owner.release(pool)
	require.Len(t, pool.free, 2)
}
