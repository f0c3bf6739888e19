// SPDX-License-Identifier: MIT
// Package matrix: core ExtendableSquareMatrix interface.
package matrix

// ExtendableSquareMatrix is a boolean n×n relation matrix that grows on
// demand.
type ExtendableSquareMatrix interface {
	// Get reports the bit at (i, j). Indices beyond the current size read
	// as false rather than erroring — an unaddressed pair is simply
	// "not yet related".
	Get(i, j int) bool

	// Set stores the bit at (i, j), growing the matrix first if needed.
	Set(i, j int, v bool)

	// Size returns one past the largest index ever addressed.
	Size() int

	// Row returns the set of j such that Get(i, j) is true, in ascending
	// order.
	Row(i int) []int

	// Extend grows the matrix by one row and column, both initialized to
	// false, and returns the new row/column index n.
	Extend() int

	// ExtendCopying grows the matrix by one row and column the same way
	// Extend does, but seeds row/column n from an existing row rowSrc and
	// column colSrc. rowSrc/colSrc must each be an index <= the matrix's current
	// Size(); passing the boundary value Size() itself means "fill with
	// defaults" (false) for that axis instead of copying.
	ExtendCopying(rowSrc, colSrc int) int
}

// extend is the shared Extend implementation for all three strategies: it
// forces growth to include the next row/column via Set, without marking
// any cell true.
func extend(m ExtendableSquareMatrix) int {
	n := m.Size()
	m.Set(n, n, false)

	return n
}

// extendCopying is the shared ExtendCopying implementation for all three
// strategies, built only on the public Get/Set/Size contract so Cascade,
// Dynamic, and Hashed share one definition of "duplicate a row and
// column".
func extendCopying(m ExtendableSquareMatrix, rowSrc, colSrc int) int {
	n := m.Size()

	for j := 0; j < n; j++ {
		if rowSrc != n && m.Get(rowSrc, j) {
			m.Set(n, j, true)
		}
	}
	for i := 0; i < n; i++ {
		if colSrc != n && m.Get(i, colSrc) {
			m.Set(i, n, true)
		}
	}

	corner := rowSrc != n && colSrc != n && m.Get(rowSrc, colSrc)
	m.Set(n, n, corner)

	return n
}
