package simulation

// block is one class of the refined partition. Its member states form a
// circular doubly linked list realized as the engine's shared next/prev
// arrays, entered at head.
// inset tracks the labels entering the block (with multiplicity per
// member), remove holds the per-label pending-removal lists, counter the
// per-(label, predecessor) successor counts, and tmp collects the states
// a pending split will sever.
type block struct {
	index   int
	head    State
	size    int
	inset   *smartSet
	remove  []*removeList
	counter *sharedCounter
	tmp     []State
}

// link makes b follow a in the circular member list.
func (e *engine) link(a, b State) {
	e.next[a] = b
	e.prev[b] = a
}

// eachMember calls f on every state of b's circular list.
func (e *engine) eachMember(b *block, f func(q State)) {
	q := b.head
	for {
		f(q)
		q = e.next[q]
		if q == b.head {
			return
		}
	}
}

// makeBlock links states into a fresh circular list and registers the new
// block, deriving its inset from the incoming labels of its members.
func (e *engine) makeBlock(states []State) *block {
	b := &block{
		index:   len(e.partition),
		head:    states[0],
		size:    len(states),
		inset:   newSmartSet(e.lts.labels),
		remove:  make([]*removeList, e.lts.labels),
		counter: newSharedCounter(e.layout),
	}
	prev := states[len(states)-1]
	for _, q := range states {
		e.link(prev, q)
		prev = q
		e.blockOf[q] = b
		for _, a := range e.lts.bwLabels[q] {
			b.inset.add(a)
		}
	}
	e.partition = append(e.partition, b)

	return b
}

// adoptSplit registers the ring at head (already severed by trySplit) as
// a new block derived from parent: members move their incoming-label
// counts from the parent's inset to the child's and repoint to the child.
func (e *engine) adoptSplit(parent *block, head State, size int) *block {
	b := &block{
		index:   len(e.partition),
		head:    head,
		size:    size,
		inset:   newSmartSet(e.lts.labels),
		remove:  make([]*removeList, e.lts.labels),
		counter: newSharedCounter(e.layout),
	}
	e.eachMember(b, func(q State) {
		for _, a := range e.lts.bwLabels[q] {
			parent.inset.removeStrict(a)
			b.inset.add(a)
		}
		e.blockOf[q] = b
	})
	e.partition = append(e.partition, b)

	return b
}

// trySplit severs the states previously deposited in b.tmp into their own
// circular list and returns its entry point and size. When tmp covers the
// whole block there is nothing to sever: tmp is cleared and (-1, 0) comes
// back, leaving the block intact.
func (e *engine) trySplit(b *block) (State, int) {
	if len(b.tmp) == b.size {
		b.tmp = b.tmp[:0]

		return -1, 0
	}

	last := b.tmp[len(b.tmp)-1]
	b.tmp = b.tmp[:len(b.tmp)-1]
	b.head = e.next[last]
	e.link(e.prev[last], e.next[last])

	if len(b.tmp) == 0 {
		e.link(last, last)
		b.size--

		return last, 1
	}

	elem := last
	for _, q := range b.tmp {
		b.head = e.next[q]
		e.link(e.prev[q], e.next[q])
		e.link(elem, q)
		elem = q
	}
	e.link(elem, last)

	size := len(b.tmp) + 1
	b.tmp = b.tmp[:0]
	b.size -= size

	return last, size
}
