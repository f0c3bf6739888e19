// Package symbol defines the alphabet value type shared by Delta, Nfa,
// the antichain engine, and mintermization.
package symbol

import "math"

// Symbol is a 64-bit alphabet value used to label Delta transitions.
type Symbol = uint64

// EPSILON is the reserved maximal Symbol value, interpreted as a silent
// (non-consuming) move during epsilon elimination and product
// construction.
const EPSILON Symbol = math.MaxUint64

// SecondEpsilon is the value immediately below EPSILON, optionally treated
// as a second epsilon label by two-sided product constructions that need
// to advance one operand's epsilon closure independently of the other's.
// It is honored only when a caller opts in via nfa.WithSecondEpsilon.
const SecondEpsilon Symbol = math.MaxUint64 - 1

// IsEpsilon reports whether s is the primary epsilon sentinel.
func IsEpsilon(s Symbol) bool { return s == EPSILON }

// IsAnyEpsilon reports whether s is either epsilon sentinel.
func IsAnyEpsilon(s Symbol) bool { return s == EPSILON || s == SecondEpsilon }
