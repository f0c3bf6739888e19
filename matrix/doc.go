// SPDX-License-Identifier: MIT
// Package matrix implements ExtendableSquareMatrix, a boolean n×n relation
// over state indices with three storage strategies: Cascade, a single
// flat slice in a layout that grows by appending 2n+1 cells per
// dimension step; Dynamic, a slice of rows all widened together; and
// Hashed, a map of maps for very sparse, very large relations.
//
// All three grow lazily to the largest index ever addressed — the
// simulation engine never pre-sizes the matrix to the final automaton
// size, and Get on an unaddressed pair reads as false rather than erroring.
package matrix
