package simulation

// denseLTS materializes an LTS into per-label forward and backward
// adjacency (post_a / pre_a), with labels renumbered
// into the dense range [0, labels) so every per-label structure in the
// engine can be a plain slice.
type denseLTS struct {
	n      int
	labels int
	post   [][][]State // post[a][q]
	pre    [][][]State // pre[a][q]

	// delta1[a] = {q : post_a(q) ≠ ∅}.
	delta1 []*smartSet

	// bwLabels[q] = dense labels with at least one edge into q; the
	// source of every block's inset.
	bwLabels [][]int
}

func newDenseLTS(l LTS) *denseLTS {
	syms := l.Labels()
	d := &denseLTS{
		n:        l.NumStates(),
		labels:   len(syms),
		post:     make([][][]State, len(syms)),
		pre:      make([][][]State, len(syms)),
		delta1:   make([]*smartSet, len(syms)),
		bwLabels: make([][]int, l.NumStates()),
	}

	for a, sym := range syms {
		d.post[a] = make([][]State, d.n)
		d.pre[a] = make([][]State, d.n)
		d.delta1[a] = newSmartSet(d.n)
		for q := 0; q < d.n; q++ {
			tgts := l.Post(q, sym)
			if len(tgts) == 0 {
				continue
			}
			d.post[a][q] = tgts
			d.delta1[a].add(q)
			for _, r := range tgts {
				if len(d.pre[a][r]) == 0 {
					d.bwLabels[r] = append(d.bwLabels[r], a)
				}
				d.pre[a][r] = append(d.pre[a][r], q)
			}
		}
	}

	return d
}
