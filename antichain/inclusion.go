package antichain

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

func canonSubset(s []State) string {
	sorted := append([]State(nil), s...)
	sort.Ints(sorted)
	var b strings.Builder
	for i, v := range sorted {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(v))
	}

	return b.String()
}

func dedupSorted(s []State) []State {
	sorted := append([]State(nil), s...)
	sort.Ints(sorted)
	out := sorted[:0]
	for i, v := range sorted {
		if i == 0 || v != sorted[i-1] {
			out = append(out, v)
		}
	}

	return out
}

func subset(small, big []State) bool {
	bigSet := make(map[State]bool, len(big))
	for _, v := range big {
		bigSet[v] = true
	}
	for _, v := range small {
		if !bigSet[v] {
			return false
		}
	}

	return true
}

// productState is a node of the search: an A state and a B subset. The
// word reaching it is not stored here; counterexample reconstruction
// follows the back-pointers in Included's paths map.
type productState struct {
	p State
	s []State
}

type antichainEntry struct {
	s []State
}

// postSubset computes post_B(S, a): the union, over every q in S, of
// B.Post(q, a).
func postSubset(b Automaton, s []State, a Symbol) []State {
	var out []State
	for _, q := range s {
		out = append(out, b.Post(q, a)...)
	}

	return dedupSorted(out)
}

func intersectsFinal(b Automaton, s []State) bool {
	for _, q := range s {
		if b.IsFinal(q) {
			return true
		}
	}

	return false
}

// Included checks L(a) ⊆ L(b). alphabet, when non-nil,
// restricts which symbols are explored; nil derives it as the union of
// both automata's used symbols.
func Included(a, b Automaton, alphabet []Symbol) (bool, *Counterexample) {
	if alphabet == nil {
		alphabet = unionSymbols(a, b)
	}

	distA := distanceToFinal(a)

	antichainMap := make(map[State][]antichainEntry)
	type backPointer struct {
		prevKey string
		prevP   State
		sym     Symbol
		hasPrev bool
	}
	paths := make(map[string]backPointer)

	keyOf := func(ps productState) string { return strconv.Itoa(ps.p) + "|" + canonSubset(ps.s) }

	// tryInsert returns false if ps is subsumed by an already-kept entry
	// for ps.p; otherwise it prunes every kept entry ps now subsumes.
	tryInsert := func(ps productState) bool {
		entries := antichainMap[ps.p]
		for _, e := range entries {
			if subset(e.s, ps.s) {
				return false
			}
		}
		kept := entries[:0]
		for _, e := range entries {
			if !subset(ps.s, e.s) {
				kept = append(kept, e)
			}
		}
		kept = append(kept, antichainEntry{s: ps.s})
		antichainMap[ps.p] = kept

		return true
	}

	reconstruct := func(lastKey string) *Counterexample {
		var word []Symbol
		k := lastKey
		for {
			bp, ok := paths[k]
			if !ok || !bp.hasPrev {
				break
			}
			word = append([]Symbol{bp.sym}, word...)
			k = bp.prevKey
		}

		return &Counterexample{Word: word}
	}

	var worklist []productState

	bInitFinal := intersectsFinal(b, b.Initial())
	for _, p := range a.Initial() {
		if a.IsFinal(p) && !bInitFinal {
			return false, &Counterexample{Word: nil}
		}
		ps := productState{p: p, s: append([]State(nil), b.Initial()...)}
		if tryInsert(ps) {
			worklist = append(worklist, ps)
			paths[keyOf(ps)] = backPointer{hasPrev: false}
		}
	}

	for len(worklist) > 0 {
		cur := worklist[0]
		worklist = worklist[1:]

		if distA[cur.p] == math.MaxInt {
			continue
		}

		for _, sym := range alphabet {
			sPrime := postSubset(b, cur.s, sym)
			for _, pPrime := range a.Post(cur.p, sym) {
				curKey := keyOf(cur)
				nextPS := productState{p: pPrime, s: sPrime}
				nextKey := keyOf(nextPS)

				if a.IsFinal(pPrime) && !intersectsFinal(b, sPrime) {
					paths[nextKey] = backPointer{prevKey: curKey, prevP: cur.p, sym: sym, hasPrev: true}

					return false, reconstruct(nextKey)
				}

				if tryInsert(nextPS) {
					worklist = append(worklist, nextPS)
					paths[nextKey] = backPointer{prevKey: curKey, prevP: cur.p, sym: sym, hasPrev: true}
				}
			}
		}
	}

	return true, nil
}

func unionSymbols(a, b Automaton) []Symbol {
	seen := make(map[Symbol]bool)
	for _, s := range a.UsedSymbols() {
		seen[s] = true
	}
	for _, s := range b.UsedSymbols() {
		seen[s] = true
	}
	out := make([]Symbol, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}
