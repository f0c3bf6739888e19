// Package nfa implements the Nfa data model and its graph-level
// algorithms: trim, reverse, epsilon elimination, determinization,
// product, concatenation, make-complete, complement, Brzozowski
// minimization, emptiness with counterexample, and simulation-based
// reduction.
package nfa

import "errors"

// Sentinel errors naming the failure kinds of Nfa construction and
// validation. No function in this package returns any of them.
var (
	// ErrNilNfa names a nil *Nfa passed where one is required.
	ErrNilNfa = errors.New("nfa: automaton is nil")

	// ErrStateNotFound names a referenced state that is not part of the
	// automaton (state >= Size()).
	ErrStateNotFound = errors.New("nfa: state not found")

	// ErrEmptyAlphabet names an operation given an empty alphabet.
	// MakeComplete and Complement return no error; given an empty
	// alphabet they add no edges to the sink.
	ErrEmptyAlphabet = errors.New("nfa: alphabet is empty")

	// ErrProductTooLarge names a product state space too large for the
	// dense pair index. Product has no option to disable its hash-map
	// fallback and always uses it above ProductMatrixThreshold.
	ErrProductTooLarge = errors.New("nfa: product state space too large")
)
