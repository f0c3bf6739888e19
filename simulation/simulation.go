// Package simulation computes LTS simulation relations: given a labeled
// transition system, an initial partition, and an initial relation over
// its blocks, it computes the coarsest simulation relation contained in
// the initial relation and consistent with the initial partition.
//
// The engine is a Ranzato–Tapparo-style partition refinement: the state
// space is kept as a partition of blocks (circular doubly linked member
// lists backed by next/prev arrays), the candidate relation lives on
// blocks and is split together with them, and a shared counter per
// (block, label, predecessor) tracks how many successors still land
// inside the block's related row, so a single decrement reaching zero —
// not a full per-pair re-check — is what schedules further refinement.
// Remove lists and counter rows are reference-counted and copy-on-write
// across blocks derived from a common ancestor, with their storage
// recycled through a free-list allocator.
package simulation

import "github.com/matalib/mata/matrix"

// State and Symbol are plain integer aliases so this package never
// imports nfa (nfa.Reduce imports simulation and adapts *Nfa to LTS, not
// the other way around).
type State = int
type Symbol = uint64

// LTS is the minimal collaborator the simulation engine needs: a state
// count, a label set, and a forward transition function. The backward
// map is derived internally.
type LTS interface {
	NumStates() int
	Labels() []Symbol
	Post(q State, a Symbol) []State
}

// Direction names which transition function drives refinement. The
// engine itself is direction-agnostic; callers reverse the LTS (see
// Reverse) and pick the matching initial partition before calling
// Compute.
type Direction int

const (
	Forward Direction = iota
	Backward
	Bidirectional
)

// Partition is an initial partition P0 of the LTS's states: a list of
// nonempty, pairwise disjoint blocks together covering [0, NumStates).
type Partition [][]State

// SingleBlockPartition is the trivial partition used when the caller has
// no finer initial grouping.
func SingleBlockPartition(n int) Partition {
	if n == 0 {
		return nil
	}
	block := make([]State, n)
	for q := 0; q < n; q++ {
		block[q] = q
	}

	return Partition{block}
}

// Relation is a boolean square matrix: block-level as Compute's R0 input,
// state-level as its output. Get(p, q) reads "p is simulated by q".
type Relation = matrix.ExtendableSquareMatrix

// ReflexiveRelation builds a k×k relation with just the diagonal set, the
// weakest R0 consistent with a k-block partition.
func ReflexiveRelation(k int) Relation {
	r := matrix.New(matrix.Cascade, k)
	for i := 0; i < k; i++ {
		r.Set(i, i, true)
	}

	return r
}

// FullRelation builds a k×k relation with every pair set; paired with
// SingleBlockPartition this is the R0 that constrains nothing beyond the
// LTS's own transitions.
func FullRelation(k int) Relation {
	r := matrix.New(matrix.Cascade, k)
	for i := 0; i < k; i++ {
		for j := 0; j < k; j++ {
			r.Set(i, j, true)
		}
	}

	return r
}
