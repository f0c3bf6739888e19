package nfa

import (
	"github.com/matalib/mata/alphabet"
	"github.com/matalib/mata/delta"
	"github.com/matalib/mata/sparseset"
	"github.com/matalib/mata/symbol"
)

// State and Symbol re-export delta's definitions so callers of this
// package never need to import delta directly for the common case.
type State = delta.State
type Symbol = symbol.Symbol

// EPSILON and SecondEpsilon re-export the reserved symbol sentinels.
const (
	EPSILON       = symbol.EPSILON
	SecondEpsilon = symbol.SecondEpsilon
)

// Nfa is a nondeterministic finite automaton over finite words.
//
// Invariant: Size() == max(Initial.DomainSize(), Final.DomainSize(),
// Delta.NumOfStates()). A state is "in the automaton" iff it is less than
// Size(); it may or may not appear in any transition.
type Nfa struct {
	Delta   *delta.Delta
	Initial *sparseset.SparseSet[State]
	Final   *sparseset.SparseSet[State]

	// Alphabet is an optional, shared, non-owning reference.
	// Its lifetime is a precondition managed by the caller.
	Alphabet alphabet.Alphabet

	// Levels is the supplemented NFT (transducer) wrapper field: nil for a
	// plain Nfa, populated when this automaton was produced by wrapping an
	// NFA result with per-state levels.
	Levels map[State]uint
}

// New returns an empty Nfa.
func New() *Nfa {
	return &Nfa{
		Delta:   delta.New(),
		Initial: sparseset.New[State](8),
		Final:   sparseset.New[State](8),
	}
}

// Size returns one past the largest state index ever referenced by this
// automaton, across Initial, Final, and Delta.
func (a *Nfa) Size() int {
	n := a.Delta.NumOfStates()
	if d := a.Initial.DomainSize(); d > n {
		n = d
	}
	if d := a.Final.DomainSize(); d > n {
		n = d
	}

	return n
}

// HasState reports whether q is "in the automaton" (q < Size()).
func (a *Nfa) HasState(q State) bool { return int(q) >= 0 && int(q) < a.Size() }

// AddState ensures q participates in Size() even with no transitions, by
// touching Delta's row storage up to q (mirrors Delta.Add's growth without
// adding a transition). A state with no edges and not initial/final simply
// never surfaces in any traversal.
func (a *Nfa) AddState(q State) {
	if a.HasState(q) {
		return
	}
	// Force delta to grow by adding then removing a throwaway self-loop on
	// the reserved second-epsilon symbol, which no algorithm treats as a
	// real transition unless WithSecondEpsilon is set. Simpler and
	// allocation-light: grow Delta's rows directly through Add/Remove.
	a.Delta.Add(q, SecondEpsilon, q)
	_ = a.Delta.Remove(q, SecondEpsilon, q)
}

// SetInitial marks q as an initial state.
func (a *Nfa) SetInitial(q State) { a.Initial.Add(q) }

// SetFinal marks q as a final state.
func (a *Nfa) SetFinal(q State) { a.Final.Add(q) }

// AddTransition adds (src, sym, tgt) to Delta.
func (a *Nfa) AddTransition(src State, sym Symbol, tgt State) { a.Delta.Add(src, sym, tgt) }

// Post returns the set of states reachable from q on sym.
func (a *Nfa) Post(q State, sym Symbol) []State {
	t := a.Delta.StatePostOf(q).Find(sym)

	return t.Slice()
}

// Clone deep-copies Delta, Initial, and Final. Alphabet is a shared,
// non-owning reference and is copied by value (not deep-copied).
func (a *Nfa) Clone() *Nfa {
	out := &Nfa{
		Delta:    a.Delta.Clone(),
		Initial:  a.Initial.Clone(),
		Final:    a.Final.Clone(),
		Alphabet: a.Alphabet,
	}
	if a.Levels != nil {
		out.Levels = make(map[State]uint, len(a.Levels))
		for k, v := range a.Levels {
			out.Levels[k] = v
		}
	}

	return out
}
