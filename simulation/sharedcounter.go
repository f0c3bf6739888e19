package simulation

// counterLayout is the flat addressing scheme every block's counter
// shares: for each label a, the states of delta1[a] get consecutive slots
// in one flat index space, chopped into rows of rowSize cells. key maps
// (a, q) to its flat slot; labelMap[a] is the half-open row range
// [first, end) covering label a's slots. Rows, not single cells, are the
// unit of sharing between counters; slots of adjacent labels can share a
// boundary row.
type counterLayout struct {
	n        int
	rowSize  int
	key      []int // key[a*n+q], -1 when q has no a-successor
	labelMap []counterRange
	pool     *slicePool
}

type counterRange struct {
	first int
	end   int
}

// counterRowSize picks the shared-row width: the smallest power of two
// that is at least 32 and exceeds floor(sqrt(states))/2, minus one word
// kept for the reference count (so never below 31).
func counterRowSize(states int) int {
	threshold := isqrt(states) >> 1
	rowSize := 32
	for rowSize <= threshold {
		rowSize <<= 1
	}

	return rowSize - 1
}

func isqrt(n int) int {
	if n < 2 {
		return n
	}
	x := n
	y := (x + 1) / 2
	for y < x {
		x = y
		y = (x + n/x) / 2
	}

	return x
}

func newCounterLayout(d *denseLTS, pool *slicePool) *counterLayout {
	l := &counterLayout{
		n:        d.n,
		rowSize:  counterRowSize(d.n),
		key:      make([]int, d.labels*d.n),
		labelMap: make([]counterRange, d.labels),
		pool:     pool,
	}
	for i := range l.key {
		l.key[i] = -1
	}

	x := 0
	for a := 0; a < d.labels; a++ {
		l.labelMap[a].first = x / l.rowSize
		size := d.delta1[a].size()
		if size > 0 {
			l.labelMap[a].end = (x+size-1)/l.rowSize + 1
		} else {
			l.labelMap[a].end = x / l.rowSize
		}
		for _, q := range d.delta1[a].elements() {
			l.key[a*d.n+q] = x
			x++
		}
	}

	return l
}

// counterRow is one reference-counted row of counter cells.
type counterRow struct {
	refs int
	data []int
}

// sharedCounter is one block's view of the counter: C[b, a, q] = number
// of a-successors of q still inside the union of blocks related to b.
// Rows start shared with the parent's after a split and are copied on
// first write.
type sharedCounter struct {
	layout *counterLayout
	rows   []*counterRow
}

func newSharedCounter(layout *counterLayout) *sharedCounter {
	return &sharedCounter{layout: layout}
}

func (c *sharedCounter) resizeRows(numRows int) {
	for len(c.rows) < numRows {
		c.rows = append(c.rows, nil)
	}
}

func (c *sharedCounter) slot(a int, q State) (row, off int) {
	x := c.layout.key[a*c.layout.n+q]

	return x / c.layout.rowSize, x % c.layout.rowSize
}

// ownedRow returns the row ready for writing, allocating a zeroed row or
// breaking sharing first (copy-on-write).
func (c *sharedCounter) ownedRow(r int) *counterRow {
	row := c.rows[r]
	if row == nil {
		data := c.layout.pool.get(c.layout.rowSize)[:c.layout.rowSize]
		clear(data)
		row = &counterRow{refs: 1, data: data}
		c.rows[r] = row

		return row
	}
	if row.refs > 1 {
		row.refs--
		data := c.layout.pool.get(c.layout.rowSize)[:c.layout.rowSize]
		copy(data, row.data)
		row = &counterRow{refs: 1, data: data}
		c.rows[r] = row
	}

	return row
}

func (c *sharedCounter) set(a int, q State, v int) {
	r, off := c.slot(a, q)
	c.resizeRows(r + 1)
	c.ownedRow(r).data[off] = v
}

// decr decrements C[b, a, q] and returns the new value; reaching zero is
// the engine's cue to schedule (b, a) for another refinement round.
func (c *sharedCounter) decr(a int, q State) int {
	r, off := c.slot(a, q)
	row := c.ownedRow(r)
	row.data[off]--

	return row.data[off]
}

// copyLabels shares the parent's rows for every label in inset with this
// counter.
// Sharing is per row; a later write through either owner copies first.
func (c *sharedCounter) copyLabels(inset *smartSet, parent *sharedCounter) {
	needed := 0
	for _, a := range inset.elements() {
		if end := c.layout.labelMap[a].end; end > needed {
			needed = end
		}
	}
	c.resizeRows(needed)

	for _, a := range inset.elements() {
		rng := c.layout.labelMap[a]
		for r := rng.first; r < rng.end; r++ {
			if r >= len(parent.rows) || parent.rows[r] == nil || c.rows[r] != nil {
				continue
			}
			parent.rows[r].refs++
			c.rows[r] = parent.rows[r]
		}
	}
}
