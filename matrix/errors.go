// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the
// matrix package. Panics are reserved for programmer errors in private
// helpers (if any).
package matrix

import "errors"

var (
	// ErrOutOfRange indicates that an index was negative. Positive indices
	// beyond the current size are never an error — they trigger growth.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrInvalidDimensions indicates that a requested initial size is
	// negative.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")
)
