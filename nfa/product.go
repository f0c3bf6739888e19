package nfa

import "github.com/matalib/mata/delta"

// ProductMatrixThreshold is the |lhs|*|rhs| cutoff at or below which
// Product uses a dense 2D matrix of pair IDs, and above which it falls
// back to a vector of hash maps indexed by lhs state, to cap memory.
const ProductMatrixThreshold = 50_000_000

// pairIndex maps (lhs state, rhs state) pairs to a product State, lazily
// assigning fresh IDs.
type pairIndex interface {
	getOrCreate(p, q State, next *State) (id State, created bool)
}

type densePairIndex struct {
	rhsSize int
	ids     []State
}

func newDensePairIndex(lhsSize, rhsSize int) *densePairIndex {
	ids := make([]State, lhsSize*rhsSize)
	for i := range ids {
		ids[i] = -1
	}

	return &densePairIndex{rhsSize: rhsSize, ids: ids}
}

func (d *densePairIndex) getOrCreate(p, q State, next *State) (State, bool) {
	idx := int(p)*d.rhsSize + int(q)
	if d.ids[idx] >= 0 {
		return d.ids[idx], false
	}
	id := *next
	*next++
	d.ids[idx] = id

	return id, true
}

type hashPairIndex struct {
	m map[State]map[State]State
}

func newHashPairIndex() *hashPairIndex {
	return &hashPairIndex{m: make(map[State]map[State]State)}
}

func (h *hashPairIndex) getOrCreate(p, q State, next *State) (State, bool) {
	row, ok := h.m[p]
	if !ok {
		row = make(map[State]State)
		h.m[p] = row
	}
	if id, ok := row[q]; ok {
		return id, false
	}
	id := *next
	*next++
	row[q] = id

	return id, true
}

type productConfig struct {
	epsilonPreserving bool
	firstEpsilon      Symbol
}

// ProductOption configures Product.
type ProductOption func(*productConfig)

// WithEpsilonPreserving enables epsilon-preserving product:
// symbols >= firstEpsilon are added independently from each side (keeping
// the other component fixed) rather than requiring a common symbol on
// both operands.
func WithEpsilonPreserving(firstEpsilon Symbol) ProductOption {
	return func(c *productConfig) {
		c.epsilonPreserving = true
		c.firstEpsilon = firstEpsilon
	}
}

// WithSecondEpsilon is WithEpsilonPreserving(SecondEpsilon): both EPSILON
// and SecondEpsilon are treated as epsilon-like by the product.
func WithSecondEpsilon() ProductOption { return WithEpsilonPreserving(SecondEpsilon) }

func defaultProductConfig() productConfig {
	return productConfig{epsilonPreserving: false, firstEpsilon: EPSILON}
}

// FinalPredicate decides whether a product state (p, q) is final.
type FinalPredicate func(p, q State) bool

// IntersectionFinal is the FinalPredicate for language intersection: both
// components must be final.
func IntersectionFinal(lhs, rhs *Nfa) FinalPredicate {
	return func(p, q State) bool { return lhs.Final.Contains(p) && rhs.Final.Contains(q) }
}

// Product builds the product automaton of lhs and rhs under finalPred.
// The pair-to-product-state map is a dense matrix when |lhs|*|rhs| <=
// ProductMatrixThreshold, else a vector of hash maps.
func Product(lhs, rhs *Nfa, finalPred FinalPredicate, opts ...ProductOption) *Nfa {
	cfg := defaultProductConfig()
	for _, o := range opts {
		o(&cfg)
	}

	lhsSize, rhsSize := lhs.Size(), rhs.Size()
	var idx pairIndex
	if lhsSize*rhsSize <= ProductMatrixThreshold && lhsSize > 0 && rhsSize > 0 {
		idx = newDensePairIndex(lhsSize, rhsSize)
	} else {
		idx = newHashPairIndex()
	}

	out := New()
	next := State(0)
	var compL, compR []State // reverse maps: product state -> components

	register := func(p, q State) (State, bool) {
		id, created := idx.getOrCreate(p, q, &next)
		if created {
			compL = append(compL, p)
			compR = append(compR, q)
			if finalPred(p, q) {
				out.SetFinal(id)
			}
		}

		return id, created
	}

	var worklist []State
	for _, p := range lhs.Initial.Items() {
		for _, q := range rhs.Initial.Items() {
			id, _ := register(p, q)
			out.SetInitial(id)
			worklist = append(worklist, id)
		}
	}

	for len(worklist) > 0 {
		srcID := worklist[0]
		worklist = worklist[1:]
		p, q := compL[srcID], compR[srcID]

		lhsPost := lhs.Delta.StatePostOf(p)
		rhsPost := rhs.Delta.StatePostOf(q)

		for _, step := range delta.SyncCommon(lhsPost, rhsPost) {
			if cfg.epsilonPreserving && step.Symbol >= cfg.firstEpsilon {
				continue // handled independently below
			}
			for _, l := range step.LeftTargets.Slice() {
				for _, r := range step.RightTarget.Slice() {
					tgtID, created := register(l, r)
					if created {
						worklist = append(worklist, tgtID)
					}
					out.Delta.Add(srcID, step.Symbol, tgtID)
				}
			}
		}

		if !cfg.epsilonPreserving {
			continue
		}
		for _, sp := range lhsPost.Posts() {
			if sp.Symbol < cfg.firstEpsilon {
				continue
			}
			for _, l := range sp.Targets.Slice() {
				tgtID, created := register(l, q)
				if created {
					worklist = append(worklist, tgtID)
				}
				out.Delta.Add(srcID, sp.Symbol, tgtID)
			}
		}
		for _, sp := range rhsPost.Posts() {
			if sp.Symbol < cfg.firstEpsilon {
				continue
			}
			for _, r := range sp.Targets.Slice() {
				tgtID, created := register(p, r)
				if created {
					worklist = append(worklist, tgtID)
				}
				out.Delta.Add(srcID, sp.Symbol, tgtID)
			}
		}
	}

	return out
}

// Intersection returns Product(lhs, rhs, IntersectionFinal(lhs, rhs)),
// i.e. L(Intersection(lhs,rhs)) == L(lhs) ∩ L(rhs).
func Intersection(lhs, rhs *Nfa, opts ...ProductOption) *Nfa {
	return Product(lhs, rhs, IntersectionFinal(lhs, rhs), opts...)
}
