// SPDX-License-Identifier: MIT
package matrix

// cascadeMatrix is the "cascade" layout: a single flat
// vector addressed by a[i][j] = v[i>=j ? i*i+j : j*j+2*j-i], so growing
// the addressable dimension from n to n+1 appends exactly 2n+1 cells to
// the vector instead of reallocating and copying the existing n*n
// entries (the property Dynamic and Hashed don't have). capacity is the
// declared upfront bound C: the backing vector reserves C*C cells so
// growth within that bound never triggers a Go slice reallocation either.
type cascadeMatrix struct {
	n    int    // current addressable dimension (n x n)
	data []bool // cascade-ordered vector, len == n*n
}

var _ ExtendableSquareMatrix = (*cascadeMatrix)(nil)

func newCascadeMatrix(capacity int) *cascadeMatrix {
	if capacity < 1 {
		capacity = 1
	}

	return &cascadeMatrix{n: 0, data: make([]bool, 0, capacity*capacity)}
}

// cascadeIndex maps (i, j) into the flat cascade vector.
func cascadeIndex(i, j int) int {
	if i >= j {
		return i*i + j
	}

	return j*j + 2*j - i
}

// ensure grows the matrix one dimension step at a time until idx is
// addressable, appending 2*n+1 cells per step.
func (m *cascadeMatrix) ensure(idx int) {
	for idx >= m.n {
		m.data = append(m.data, make([]bool, 2*m.n+1)...)
		m.n++
	}
}

func (m *cascadeMatrix) Get(i, j int) bool {
	if i < 0 || j < 0 || i >= m.n || j >= m.n {
		return false
	}

	return m.data[cascadeIndex(i, j)]
}

func (m *cascadeMatrix) Set(i, j int, v bool) {
	if i < 0 || j < 0 {
		panic(ErrOutOfRange)
	}
	top := i
	if j > top {
		top = j
	}
	m.ensure(top)
	m.data[cascadeIndex(i, j)] = v
}

func (m *cascadeMatrix) Size() int { return m.n }

func (m *cascadeMatrix) Row(i int) []int {
	if i < 0 || i >= m.n {
		return nil
	}
	var out []int
	for j := 0; j < m.n; j++ {
		if m.data[cascadeIndex(i, j)] {
			out = append(out, j)
		}
	}

	return out
}

func (m *cascadeMatrix) Extend() int { return extend(m) }

func (m *cascadeMatrix) ExtendCopying(rowSrc, colSrc int) int { return extendCopying(m, rowSrc, colSrc) }
