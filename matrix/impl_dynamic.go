// SPDX-License-Identifier: MIT
package matrix

// dynamicMatrix stores one []bool row per addressed index. Growing the
// dimension appends the new rows and widens every existing row to the new
// dimension, so all rows always have the same width.
type dynamicMatrix struct {
	n    int
	rows [][]bool
}

var _ ExtendableSquareMatrix = (*dynamicMatrix)(nil)

func newDynamicMatrix(initial int) *dynamicMatrix {
	m := &dynamicMatrix{}
	m.ensure(initial - 1)

	return m
}

func growRow(row []bool, n int) []bool {
	if len(row) >= n {
		return row
	}
	grown := make([]bool, n)
	copy(grown, row)

	return grown
}

func (m *dynamicMatrix) ensure(idx int) {
	if idx < m.n {
		return
	}
	m.n = idx + 1
	for len(m.rows) < m.n {
		m.rows = append(m.rows, nil)
	}
	for i := range m.rows {
		m.rows[i] = growRow(m.rows[i], m.n)
	}
}

func (m *dynamicMatrix) Get(i, j int) bool {
	if i < 0 || j < 0 || i >= len(m.rows) || j >= len(m.rows[i]) {
		return false
	}

	return m.rows[i][j]
}

func (m *dynamicMatrix) Set(i, j int, v bool) {
	if i < 0 || j < 0 {
		panic(ErrOutOfRange)
	}
	top := i
	if j > top {
		top = j
	}
	m.ensure(top)
	m.rows[i][j] = v
}

func (m *dynamicMatrix) Size() int { return m.n }

func (m *dynamicMatrix) Row(i int) []int {
	if i < 0 || i >= len(m.rows) {
		return nil
	}
	var out []int
	for j, v := range m.rows[i] {
		if v {
			out = append(out, j)
		}
	}

	return out
}

func (m *dynamicMatrix) Extend() int { return extend(m) }

func (m *dynamicMatrix) ExtendCopying(rowSrc, colSrc int) int { return extendCopying(m, rowSrc, colSrc) }
