// Package mataerr centralizes the cross-cutting error kinds shared by
// every other package in this module. Every sentinel here names a *kind*,
// not a specific operation; packages that raise one of these kinds wrap
// it with operation-specific context via
// fmt.Errorf("pkg: context: %w", mataerr.ErrX) and callers branch with
// errors.Is.
//
// Policy:
//   - Only sentinel variables and the Wrap/Wrapf helpers are exported.
//   - Sentinels are never wrapped with formatted strings at definition site.
//   - Internal-invariant-failure sentinels are always treated as fatal bugs
//     by callers; they are returned, never panicked, so that library users
//     embedding this package in a larger service can log and abort cleanly.
package mataerr

import (
	"errors"
	"fmt"
)

var (
	// ErrAbsentTransition is returned when removing a transition that is
	// not present in a Delta.
	ErrAbsentTransition = errors.New("mata: absent transition")

	// ErrBadInput is returned when an initial partition is not a partition
	// of the state space, an initial relation disagrees with it, or a
	// formula mentions an unknown variable.
	ErrBadInput = errors.New("mata: bad input")

	// ErrUnknownParameter is returned when a parameter map lacks a
	// required key or uses a key/value this operation does not recognize.
	ErrUnknownParameter = errors.New("mata: unknown parameter")

	// ErrSerialization is returned when a `.mata` section has the wrong
	// type or a malformed body line.
	ErrSerialization = errors.New("mata: serialization error")

	// ErrInternalInvariant is returned when a structural invariant of the
	// data model is violated. Always a fatal bug in the caller or this
	// library.
	ErrInternalInvariant = errors.New("mata: internal invariant violated")
)

// Wrap attaches operation context to one of the sentinels above, preserving
// errors.Is matchability.
func Wrap(kind error, context string) error {
	return fmt.Errorf("%s: %w", context, kind)
}

// Wrapf is Wrap with a formatted context string.
func Wrapf(kind error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), kind)
}
