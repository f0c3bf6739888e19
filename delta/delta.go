// Package delta implements the sparse transition relation shared by
// every Nfa: a per-source vector of symbol-posts, each a (symbol, sorted
// target set) pair, kept in ascending symbol order so transitions can be
// iterated in deterministic (source, symbol, target) order.
package delta

import (
	"sort"

	"github.com/matalib/mata/mataerr"
	"github.com/matalib/mata/ordvec"
	"github.com/matalib/mata/symbol"
)

// State is a small nonnegative integer identifying an automaton state.
type State int

// Symbol re-exports symbol.Symbol for convenience in Delta's public API.
type Symbol = symbol.Symbol

// SymbolPost is one entry of a StatePost: a symbol paired with its sorted,
// deduplicated set of target states.
//
// Invariant: Targets is never empty for a SymbolPost reachable from a
// StatePost — Delta.Remove prunes a SymbolPost as soon as its Targets
// becomes empty.
type SymbolPost struct {
	Symbol  Symbol
	Targets ordvec.OrdVector[State]
}

// StatePost is the per-state view of Delta: symbol-posts ordered by
// strictly increasing Symbol.
type StatePost struct {
	posts []SymbolPost
}

// emptyStatePost is the canonical zero-allocation result for reads of an
// out-of-range source state.
var emptyStatePost = StatePost{}

// Len returns the number of distinct symbols leaving this state.
func (p *StatePost) Len() int { return len(p.posts) }

// Posts returns the symbol-posts in ascending symbol order. Callers must
// not mutate the returned slice.
func (p *StatePost) Posts() []SymbolPost { return p.posts }

// find returns the index of the SymbolPost for sym, or the insertion point
// and false if absent.
func (p *StatePost) find(sym Symbol) (int, bool) {
	i := sort.Search(len(p.posts), func(i int) bool { return p.posts[i].Symbol >= sym })
	return i, i < len(p.posts) && p.posts[i].Symbol == sym
}

// Find returns the targets for sym, or an empty OrdVector if sym has no
// outgoing edges from this state.
func (p *StatePost) Find(sym Symbol) ordvec.OrdVector[State] {
	i, ok := p.find(sym)
	if !ok {
		return ordvec.OrdVector[State]{}
	}

	return p.posts[i].Targets
}

// EpsilonSymbolPost returns a pointer to the SymbolPost for eps (or nil if
// absent). When eps == symbol.EPSILON, this is an O(1) fast path: EPSILON
// sorts last, so the epsilon post, if present, is always the final element.
func (p *StatePost) EpsilonSymbolPost(eps Symbol) *SymbolPost {
	if eps == symbol.EPSILON {
		if n := len(p.posts); n > 0 && p.posts[n-1].Symbol == symbol.EPSILON {
			return &p.posts[n-1]
		}

		return nil
	}
	if i, ok := p.find(eps); ok {
		return &p.posts[i]
	}

	return nil
}

// Delta is the transition relation: an ordered sequence of StatePosts
// indexed by source State. Reads of an out-of-range source return
// emptyStatePost without allocating; writes grow the sequence as needed.
type Delta struct {
	rows []StatePost
}

// New returns an empty Delta.
func New() *Delta { return &Delta{} }

// NumOfStates returns the length of the row sequence.
func (d *Delta) NumOfStates() int { return len(d.rows) }

// growTo ensures rows can be indexed up to n-1.
func (d *Delta) growTo(n int) {
	for len(d.rows) < n {
		d.rows = append(d.rows, StatePost{})
	}
}

// StatePostOf returns the StatePost for src, or a canonical empty
// StatePost (no allocation) if src is out of range.
func (d *Delta) StatePostOf(src State) *StatePost {
	if int(src) < 0 || int(src) >= len(d.rows) {
		return &emptyStatePost
	}

	return &d.rows[src]
}

// Add inserts (src, sym, tgt), growing rows up to max(src, tgt)+1 as
// needed. If a SymbolPost for sym already exists at src, tgt is merged
// into its Targets; otherwise a new, ordered SymbolPost is inserted.
func (d *Delta) Add(src State, sym Symbol, tgt State) {
	n := int(src)
	if int(tgt) > n {
		n = int(tgt)
	}
	d.growTo(n + 1)

	row := &d.rows[src]
	i, ok := row.find(sym)
	if ok {
		row.posts[i].Targets.Insert(tgt)

		return
	}
	row.posts = append(row.posts, SymbolPost{})
	copy(row.posts[i+1:], row.posts[i:])
	row.posts[i] = SymbolPost{Symbol: sym}
	row.posts[i].Targets.Insert(tgt)
}

// Remove deletes (src, sym, tgt). Returns mataerr.ErrAbsentTransition if
// the transition is not present. If Targets becomes empty the SymbolPost
// itself is deleted.
func (d *Delta) Remove(src State, sym Symbol, tgt State) error {
	if int(src) < 0 || int(src) >= len(d.rows) {
		return mataerr.Wrapf(mataerr.ErrAbsentTransition, "delta.Remove(%d,%d,%d)", src, sym, tgt)
	}
	row := &d.rows[src]
	i, ok := row.find(sym)
	if !ok {
		return mataerr.Wrapf(mataerr.ErrAbsentTransition, "delta.Remove(%d,%d,%d)", src, sym, tgt)
	}
	if !row.posts[i].Targets.Remove(tgt) {
		return mataerr.Wrapf(mataerr.ErrAbsentTransition, "delta.Remove(%d,%d,%d)", src, sym, tgt)
	}
	if row.posts[i].Targets.IsEmpty() {
		row.posts = append(row.posts[:i], row.posts[i+1:]...)
	}

	return nil
}

// Contains reports whether (src, sym, tgt) is present.
func (d *Delta) Contains(src State, sym Symbol, tgt State) bool {
	if int(src) < 0 || int(src) >= len(d.rows) {
		return false
	}
	row := &d.rows[src]
	i, ok := row.find(sym)
	if !ok {
		return false
	}

	return row.posts[i].Targets.Contains(tgt)
}

// NumOfTransitions sums the Targets sizes across all SymbolPosts; linear
// in the number of transitions.
func (d *Delta) NumOfTransitions() int {
	n := 0
	for i := range d.rows {
		for _, p := range d.rows[i].posts {
			n += p.Targets.Len()
		}
	}

	return n
}

// Triple is one (src, sym, tgt) transition.
type Triple struct {
	Src, Tgt State
	Sym      Symbol
}

// Transitions returns a finite, non-restartable sequence of transitions in
// ascending (src, sym, tgt) order.
func (d *Delta) Transitions() func(yield func(Triple) bool) {
	return func(yield func(Triple) bool) {
		for src := range d.rows {
			for _, p := range d.rows[src].posts {
				for _, tgt := range p.Targets.Slice() {
					if !yield(Triple{Src: State(src), Sym: p.Symbol, Tgt: tgt}) {
						return
					}
				}
			}
		}
	}
}

// RenumberTargets returns a new Delta obtained by applying f to every
// target state, preserving source row indices.
func (d *Delta) RenumberTargets(f func(State) (State, bool)) *Delta {
	out := New()
	out.growTo(len(d.rows))
	for src := range d.rows {
		for _, p := range d.rows[src].posts {
			for _, tgt := range p.Targets.Slice() {
				if newTgt, ok := f(tgt); ok {
					out.Add(State(src), p.Symbol, newTgt)
				}
			}
		}
	}

	return out
}

// Defragment collapses rows and renames all appearing states according to
// staying/renaming, discarding transitions that touch removed states. It
// is the mechanism behind Nfa.Trim.
func (d *Delta) Defragment(staying func(State) bool, renaming func(State) State) *Delta {
	out := New()
	for src := range d.rows {
		s := State(src)
		if !staying(s) {
			continue
		}
		newSrc := renaming(s)
		for _, p := range d.rows[src].posts {
			for _, tgt := range p.Targets.Slice() {
				if !staying(tgt) {
					continue
				}
				out.Add(newSrc, p.Symbol, renaming(tgt))
			}
		}
	}

	return out
}

// Clone deep-copies the Delta.
func (d *Delta) Clone() *Delta {
	out := New()
	out.rows = make([]StatePost, len(d.rows))
	for i := range d.rows {
		out.rows[i].posts = make([]SymbolPost, len(d.rows[i].posts))
		for j, p := range d.rows[i].posts {
			out.rows[i].posts[j] = SymbolPost{Symbol: p.Symbol, Targets: p.Targets.Clone()}
		}
	}

	return out
}
