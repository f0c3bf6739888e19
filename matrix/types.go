// SPDX-License-Identifier: MIT
package matrix

// Strategy selects an ExtendableSquareMatrix implementation.
type Strategy int

const (
	// Cascade stores a single flat []bool in the cascade layout
	// a[i][j] = v[i>=j ? i*i+j : j*j+2*j-i], so growing by one dimension
	// appends 2n+1 cells without moving existing entries.
	Cascade Strategy = iota
	// Dynamic stores one []bool per row; growing the dimension appends rows
	// and widens every existing row to the new dimension.
	Dynamic
	// Hashed stores a map[int]map[int]bool; best when the relation stays
	// very sparse even as the addressable index range grows large.
	Hashed
)

// New constructs an ExtendableSquareMatrix of the given strategy. Cascade
// starts at Size() 0 with backing capacity reserved for initial×initial
// cells; Dynamic starts at initial×initial; Hashed ignores initial. A
// negative initial is treated as 0.
func New(strategy Strategy, initial int) ExtendableSquareMatrix {
	if initial < 0 {
		initial = 0
	}
	switch strategy {
	case Dynamic:
		return newDynamicMatrix(initial)
	case Hashed:
		return newHashedMatrix()
	default:
		return newCascadeMatrix(initial)
	}
}
