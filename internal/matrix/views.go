package matrix

import "iter"

// Row returns a lazy sequence over the cells of row r, left to right,
// or false when r is out of range.
//
// The sequence is a view, not a snapshot: each step reads the live
// backing store, so in-place edits made between obtaining the sequence
// and traversing it are observed. Ranging over it again restarts from
// the first column. Single-threaded access only; see the package
// documentation.
//
// Example:
//
//	row, ok := m.Row(1)
//	if ok {
//		for v := range row {
//			fmt.Println(v)
//		}
//	}
func (m *Matrix[T]) Row(r int) (iter.Seq[T], bool) {
	if r < 0 || r >= m.rows {
		return nil, false
	}
	return func(yield func(T) bool) {
		for c := 0; c < m.cols; c++ {
			if !yield(m.data[m.index(r, c)]) {
				return
			}
		}
	}, true
}

// Col returns a lazy sequence over the cells of column c, top to
// bottom, or false when c is out of range. View semantics match Row.
func (m *Matrix[T]) Col(c int) (iter.Seq[T], bool) {
	if c < 0 || c >= m.cols {
		return nil, false
	}
	return func(yield func(T) bool) {
		for r := 0; r < m.rows; r++ {
			if !yield(m.data[m.index(r, c)]) {
				return
			}
		}
	}, true
}

// Values returns a lazy sequence over every cell in row-major order.
func (m *Matrix[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := range m.data {
			if !yield(m.data[i]) {
				return
			}
		}
	}
}
