package matrix

import (
	"fmt"
	"strings"
)

// Matrix is a dense, non-resizable rows×cols container over elements
// of type T, stored row-major in one contiguous slice: element (r, c)
// lives at flat offset c + r*cols.
//
// The container itself places no constraints on T. Operations that
// need arithmetic are package-level functions constrained by Number,
// Real, or Float, so simple uses never pay for capabilities they do
// not exercise.
//
// Example:
//
//	m := matrix.FromRows([][]int{{1, 2}, {3, 4}})
//	v, ok := m.Get(1, 0) // 3, true
type Matrix[T any] struct {
	rows, cols int
	data       []T // row-major, len == rows*cols
}

// Rows returns the number of rows.
func (m *Matrix[T]) Rows() int {
	return m.rows
}

// Cols returns the number of columns.
func (m *Matrix[T]) Cols() int {
	return m.cols
}

// Dims returns the row and column counts.
func (m *Matrix[T]) Dims() (rows, cols int) {
	return m.rows, m.cols
}

// index maps (r, c) to its flat offset. Callers validate bounds.
func (m *Matrix[T]) index(r, c int) int {
	return c + r*m.cols
}

func (m *Matrix[T]) inRange(r, c int) bool {
	return r >= 0 && r < m.rows && c >= 0 && c < m.cols
}

// Get returns a copy of the element at (r, c). The second result is
// false when either index is out of range; the first is then the zero
// value of T.
func (m *Matrix[T]) Get(r, c int) (T, bool) {
	if !m.inRange(r, c) {
		var zero T
		return zero, false
	}
	return m.data[m.index(r, c)], true
}

// Ref returns a pointer to the element at (r, c), or false when out of
// range. The pointer aims into the live backing store: reads observe
// later mutations and writes through it modify the matrix in place.
func (m *Matrix[T]) Ref(r, c int) (*T, bool) {
	if !m.inRange(r, c) {
		return nil, false
	}
	return &m.data[m.index(r, c)], true
}

// Set writes v at (r, c) and reports whether the write happened.
// It returns false, leaving the matrix untouched, when either index is
// out of range. It never panics.
func (m *Matrix[T]) Set(r, c int, v T) bool {
	if !m.inRange(r, c) {
		return false
	}
	m.data[m.index(r, c)] = v
	return true
}

// At returns the element at (r, c) without the comma-ok check.
// Out-of-range indices panic with ErrBounds. Use Get for untrusted
// indices; At is for hot paths where bounds are already established.
func (m *Matrix[T]) At(r, c int) T {
	if !m.inRange(r, c) {
		panic(fmt.Errorf("%w: (%d,%d) in %dx%d", ErrBounds, r, c, m.rows, m.cols))
	}
	return m.data[m.index(r, c)]
}

// SetAt writes v at (r, c) without the comma-ok check.
// Out-of-range indices panic with ErrBounds.
func (m *Matrix[T]) SetAt(r, c int, v T) {
	if !m.inRange(r, c) {
		panic(fmt.Errorf("%w: (%d,%d) in %dx%d", ErrBounds, r, c, m.rows, m.cols))
	}
	m.data[m.index(r, c)] = v
}

// Data returns the backing slice in row-major order (zero-copy).
//
// WARNING: modifications to the returned slice modify the matrix.
func (m *Matrix[T]) Data() []T {
	return m.data
}

// Clone creates a deep copy of the matrix.
func (m *Matrix[T]) Clone() *Matrix[T] {
	data := make([]T, len(m.data))
	copy(data, m.data)
	return &Matrix[T]{rows: m.rows, cols: m.cols, data: data}
}

// String returns a human-readable representation of the matrix.
func (m *Matrix[T]) String() string {
	var zero T
	var b strings.Builder
	fmt.Fprintf(&b, "Matrix[%T](%dx%d)[", zero, m.rows, m.cols)
	for r := 0; r < m.rows; r++ {
		if r > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%v", m.data[r*m.cols:(r+1)*m.cols])
	}
	b.WriteByte(']')
	return b.String()
}

// Equal reports whether a and b have the same shape and identical
// elements. Comparison is exact; see EqualApprox for floats.
func Equal[T comparable](a, b *Matrix[T]) bool {
	if a.rows != b.rows || a.cols != b.cols {
		return false
	}
	for i := range a.data {
		if a.data[i] != b.data[i] {
			return false
		}
	}
	return true
}
