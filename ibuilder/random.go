// SPDX-License-Identifier: MIT
package ibuilder

import "math/rand"

// RandomSparse returns an IntermediateAut over n states with an
// Erdős–Rényi-style transition relation: for every ordered pair (i, j)
// and every symbol in alphabet, the transition i-sym->j is included
// independently with probability p. State 0 is always initial; every
// state is final independently with probability pFinal. Trials run in a
// fixed ascending order so a fixed seed always reproduces the same
// automaton.
func RandomSparse(rng *rand.Rand, n int, alphabet []uint64, p, pFinal float64) *IntermediateAut {
	ia := &IntermediateAut{
		NumStates: n,
		Initial:   []int{0},
	}

	for i := 0; i < n; i++ {
		if rng.Float64() < pFinal {
			ia.Final = append(ia.Final, i)
		}
	}

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			for _, sym := range alphabet {
				if rng.Float64() < p {
					ia.Transitions = append(ia.Transitions, Transition{Src: i, Symbol: sym, Tgt: j})
				}
			}
		}
	}

	return ia
}
