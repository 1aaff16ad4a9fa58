package matrix

import "fmt"

// SwapRows exchanges rows r1 and r2 in place. Out-of-range indices
// panic with ErrBounds. Swapping a row with itself is a no-op.
func (m *Matrix[T]) SwapRows(r1, r2 int) {
	if r1 < 0 || r1 >= m.rows || r2 < 0 || r2 >= m.rows {
		panic(fmt.Errorf("%w: rows %d, %d in %dx%d", ErrBounds, r1, r2, m.rows, m.cols))
	}
	for c := 0; c < m.cols; c++ {
		i, j := m.index(r1, c), m.index(r2, c)
		m.data[i], m.data[j] = m.data[j], m.data[i]
	}
}

// SwapCols exchanges columns c1 and c2 in place. Out-of-range indices
// panic with ErrBounds.
func (m *Matrix[T]) SwapCols(c1, c2 int) {
	if c1 < 0 || c1 >= m.cols || c2 < 0 || c2 >= m.cols {
		panic(fmt.Errorf("%w: cols %d, %d in %dx%d", ErrBounds, c1, c2, m.rows, m.cols))
	}
	for r := 0; r < m.rows; r++ {
		i, j := m.index(r, c1), m.index(r, c2)
		m.data[i], m.data[j] = m.data[j], m.data[i]
	}
}

// Transpose returns a new cols×rows matrix with element (i, j) equal
// to the receiver's (j, i). The source is read column by column so the
// result's row-major buffer fills in order.
//
// Example:
//
//	m := matrix.New(2, 3, []int{1, 2, 3, 4, 5, 6})
//	t := m.Transpose() // 3x2: [[1 4] [2 5] [3 6]]
func (m *Matrix[T]) Transpose() *Matrix[T] {
	data := make([]T, 0, len(m.data))
	for c := 0; c < m.cols; c++ {
		for r := 0; r < m.rows; r++ {
			data = append(data, m.data[m.index(r, c)])
		}
	}
	return &Matrix[T]{rows: m.cols, cols: m.rows, data: data}
}

// Apply replaces every cell with fn(cell), visiting cells in row-major
// order. For read-only traversal range over Values instead.
//
// Example:
//
//	m.Apply(func(v int) int { return v * 2 })
func (m *Matrix[T]) Apply(fn func(T) T) {
	for i := range m.data {
		m.data[i] = fn(m.data[i])
	}
}
