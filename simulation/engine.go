package simulation

import "github.com/matalib/mata/matrix"

// engine carries the refinement state: the partition of
// blocks, the block-level candidate relation (split together with the
// blocks via ExtendCopying), the next/prev arrays realizing every block's
// circular member list, and the worklist of (block, label) pairs whose
// remove list is pending.
type engine struct {
	lts    *denseLTS
	layout *counterLayout
	pool   *slicePool

	partition []*block
	relation  matrix.ExtendableSquareMatrix

	next    []State
	prev    []State
	blockOf []*block

	queue []removeTask
}

type removeTask struct {
	b     *block
	label int
}

func newEngine(lts *denseLTS) *engine {
	pool := &slicePool{}

	return &engine{
		lts:     lts,
		layout:  newCounterLayout(lts, pool),
		pool:    pool,
		next:    make([]State, lts.n),
		prev:    make([]State, lts.n),
		blockOf: make([]*block, lts.n),
	}
}

// splitRelation grows the block relation by one row/column seeded from
// the parent's, so a freshly severed block starts related exactly where
// its parent was (including mutually to the parent itself).
func (e *engine) splitRelation(parentIdx int) {
	e.relation.ExtendCopying(parentIdx, parentIdx)
}

// internalSplit deposits every remove state into its block's tmp array
// and returns each touched block once.
func (e *engine) internalSplit(remove []int) []*block {
	var modified []*block
	mask := make([]bool, len(e.partition))
	for _, q := range remove {
		b := e.blockOf[q]
		b.tmp = append(b.tmp, q)
		if mask[b.index] {
			continue
		}
		mask[b.index] = true
		modified = append(modified, b)
	}

	return modified
}

// fastSplit splits blocks by a remove set during initialization, before
// counters and remove lists exist.
func (e *engine) fastSplit(remove []int) {
	for _, b := range e.internalSplit(remove) {
		head, size := e.trySplit(b)
		if size == 0 {
			continue
		}
		e.adoptSplit(b, head, size)
		e.splitRelation(b.index)
	}
}

// split is the main-loop variant: it additionally marks the block holding
// the severed states in removeMask, hands the child copies of the
// parent's counters and pending remove lists, and re-enqueues the child for
// every label the parent still has pending.
func (e *engine) split(removeMask []bool, remove []int) {
	for _, b := range e.internalSplit(remove) {
		head, size := e.trySplit(b)
		if size == 0 {
			removeMask[b.index] = true

			continue
		}
		nb := e.adoptSplit(b, head, size)
		e.splitRelation(b.index)
		removeMask[nb.index] = true
		nb.counter.copyLabels(nb.inset, b.counter)
		for _, a := range nb.inset.elements() {
			if b.remove[a] == nil {
				continue
			}
			e.queue = append(e.queue, removeTask{nb, a})
			nb.remove[a] = b.remove[a].share()
		}
	}
}

// buildPre returns each block holding an a-predecessor of b's members,
// once.
func (e *engine) buildPre(b *block, a int) []*block {
	mask := make([]bool, len(e.partition))
	var pre []*block
	e.eachMember(b, func(q State) {
		for _, p := range e.lts.pre[a][q] {
			pb := e.blockOf[p]
			if mask[pb.index] {
				continue
			}
			mask[pb.index] = true
			pre = append(pre, pb)
		}
	})

	return pre
}

func (e *engine) enqueueToRemove(b *block, label int, q State) {
	if appendRemove(&b.remove[label], q, e.pool) {
		e.queue = append(e.queue, removeTask{b, label})
	}
}

// processRemove is one refinement round: take b's pending remove
// list on label a, split every block it cuts, erase the relation pairs
// the splits invalidated, and decrement the counters behind each erased
// pair — zeros feed the queue for the next round.
func (e *engine) processRemove(b *block, a int) {
	remove := b.remove[a]
	b.remove[a] = nil

	preList := e.buildPre(b, a)
	removeMask := make([]bool, e.lts.n)
	e.split(removeMask, remove.items)
	remove.release(e.pool)

	for _, b1 := range preList {
		for _, col := range e.relation.Row(b1.index) {
			if !removeMask[col] {
				continue
			}
			e.relation.Set(b1.index, col, false)
			b2 := e.partition[col]
			for _, l := range b2.inset.elements() {
				if !b1.inset.contains(l) {
					continue
				}
				e.eachMember(b2, func(q State) {
					for _, p := range e.lts.pre[l][q] {
						if b1.counter.decr(l, p) == 0 {
							e.enqueueToRemove(b1, l, p)
						}
					}
				})
			}
		}
	}
}

// init builds the initial partition, block relation, counters, and remove
// lists. The inputs are assumed validated.
func (e *engine) init(p0 Partition, r0 Relation) {
	for _, states := range p0 {
		e.makeBlock(states)
	}

	e.relation = matrix.New(matrix.Cascade, e.lts.n)
	for i := range p0 {
		for j := range p0 {
			e.relation.Set(i, j, r0.Get(i, j))
		}
	}

	// Initial refinement: states with an a-successor cannot share a block
	// with states that have none.
	for a := 0; a < e.lts.labels; a++ {
		e.fastSplit(e.lts.delta1[a].elements())
	}

	// Relation pruning: a block whose states can move on a is not
	// simulated by one whose states cannot.
	numBlocks := len(e.partition)
	hasPost := make([][]bool, numBlocks)
	noPost := make([][]bool, e.lts.labels)
	for i := range hasPost {
		hasPost[i] = make([]bool, e.lts.labels)
	}
	for a := range noPost {
		noPost[a] = make([]bool, numBlocks)
	}
	for _, b := range e.partition {
		e.eachMember(b, func(q State) {
			for a := 0; a < e.lts.labels; a++ {
				if e.lts.delta1[a].contains(q) {
					hasPost[b.index][a] = true
				} else {
					noPost[a][b.index] = true
				}
			}
		})
	}
	for _, b1 := range e.partition {
		row := e.relation.Row(b1.index)
		for a := 0; a < e.lts.labels; a++ {
			if !hasPost[b1.index][a] {
				continue
			}
			for _, col := range row {
				if noPost[a][col] {
					e.relation.Set(b1.index, col, false)
				}
			}
		}
	}

	// Counter and remove-list initialization.
	s := newSmartSet(e.lts.n)
	for _, b1 := range e.partition {
		row := e.relation.Row(b1.index)
		related := make([]bool, len(e.partition))
		for _, col := range row {
			related[col] = true
		}

		size := 0
		for _, a := range b1.inset.elements() {
			if end := e.layout.labelMap[a].end; end > size {
				size = end
			}
		}
		b1.counter.resizeRows(size)

		for _, a := range b1.inset.elements() {
			for _, q := range e.lts.delta1[a].elements() {
				count := 0
				for _, r := range e.lts.post[a][q] {
					if related[e.blockOf[r].index] {
						count++
					}
				}
				if count > 0 {
					b1.counter.set(a, q, count)
				}
			}

			s.assignFlat(e.lts.delta1[a])
			for _, col := range row {
				e.eachMember(e.partition[col], func(st State) {
					for _, q := range e.lts.pre[a][st] {
						s.removeAll(q)
					}
				})
			}
			if s.empty() {
				continue
			}
			items := e.pool.get(s.size())
			items = append(items, s.elements()...)
			b1.remove[a] = newRemoveList(items)
			e.queue = append(e.queue, removeTask{b1, a})
		}
	}
}

// run drains the worklist.
func (e *engine) run() {
	for len(e.queue) > 0 {
		t := e.queue[len(e.queue)-1]
		e.queue = e.queue[:len(e.queue)-1]
		e.processRemove(t.b, t.label)
	}
}

// buildResult expands the block relation to state pairs, restricted to
// states below outputSize.
func (e *engine) buildResult(outputSize int) Relation {
	result := matrix.New(matrix.Cascade, outputSize)
	members := make([][]State, len(e.partition))
	for i, b := range e.partition {
		e.eachMember(b, func(q State) {
			if q < outputSize {
				members[i] = append(members[i], q)
			}
		})
	}
	for i := range e.partition {
		for _, j := range e.relation.Row(i) {
			for _, r := range members[i] {
				for _, t := range members[j] {
					result.Set(r, t, true)
				}
			}
		}
	}

	return result
}
