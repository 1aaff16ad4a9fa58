package matrix

import (
	"fmt"
	"iter"
)

func checkDims(rows, cols int) {
	if rows < 1 || cols < 1 {
		panic(fmt.Errorf("%w: got %dx%d", ErrDims, rows, cols))
	}
}

// New constructs a rows×cols matrix adopting data as its row-major
// backing store (no copy). Panics with ErrDims if rows or cols is not
// strictly positive, and with ErrData if len(data) != rows*cols.
//
// WARNING: the matrix owns data after the call; external writes to the
// slice modify the matrix.
//
// Example:
//
//	m := matrix.New(2, 3, []int{1, 2, 3, 4, 5, 6})
func New[T any](rows, cols int, data []T) *Matrix[T] {
	checkDims(rows, cols)
	if len(data) != rows*cols {
		panic(fmt.Errorf("%w: %d values for %dx%d", ErrData, len(data), rows, cols))
	}
	return &Matrix[T]{rows: rows, cols: cols, data: data}
}

// FromRows constructs a matrix from a slice of equally sized rows,
// copying the values. Panics with ErrDims on empty input and with
// ErrData on ragged rows.
//
// Example:
//
//	m := matrix.FromRows([][]float64{
//		{1, 0, 2, 0},
//		{0, 3, 0, 4},
//	})
func FromRows[T any](rows [][]T) *Matrix[T] {
	if len(rows) == 0 {
		panic(fmt.Errorf("%w: no rows", ErrDims))
	}
	cols := len(rows[0])
	checkDims(len(rows), cols)
	data := make([]T, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			panic(fmt.Errorf("%w: row %d has %d values, want %d", ErrData, i, len(row), cols))
		}
		data = append(data, row...)
	}
	return &Matrix[T]{rows: len(rows), cols: cols, data: data}
}

// FromIter constructs a rows×cols matrix by consuming exactly
// rows*cols values from seq, filling row by row. The sequence may be
// unbounded: pulling stops as soon as the matrix is full and surplus
// values are never produced. Panics with ErrDims if rows or cols is
// not strictly positive, and with ErrData if seq runs out early.
//
// Example:
//
//	naturals := func(yield func(int) bool) {
//		for i := 0; ; i++ {
//			if !yield(i) {
//				return
//			}
//		}
//	}
//	m := matrix.FromIter(3, 6, naturals)
//	v, _ := m.Get(1, 0) // 6
func FromIter[T any](rows, cols int, seq iter.Seq[T]) *Matrix[T] {
	checkDims(rows, cols)
	n := rows * cols
	data := make([]T, 0, n)
	for v := range seq {
		data = append(data, v)
		if len(data) == n {
			break
		}
	}
	if len(data) != n {
		panic(fmt.Errorf("%w: source yielded %d of %d values", ErrData, len(data), n))
	}
	return &Matrix[T]{rows: rows, cols: cols, data: data}
}

// Zeros constructs a rows×cols matrix with every cell set to the
// additive identity. Panics with ErrDims if rows or cols is not
// strictly positive.
func Zeros[T Number](rows, cols int) *Matrix[T] {
	checkDims(rows, cols)
	return &Matrix[T]{rows: rows, cols: cols, data: make([]T, rows*cols)}
}

// Full constructs a rows×cols matrix with every cell set to v.
func Full[T any](rows, cols int, v T) *Matrix[T] {
	checkDims(rows, cols)
	data := make([]T, rows*cols)
	for i := range data {
		data[i] = v
	}
	return &Matrix[T]{rows: rows, cols: cols, data: data}
}

// Identity constructs the n×n identity matrix: ones on the diagonal,
// zeros elsewhere. Panics with ErrDims if n is not strictly positive.
//
// Example:
//
//	id := matrix.Identity[int](3)
//	v, _ := id.Get(0, 0) // 1
//	v, _ = id.Get(0, 1)  // 0
func Identity[T Number](n int) *Matrix[T] {
	m := Zeros[T](n, n)
	for i := 0; i < n; i++ {
		m.Set(i, i, T(1))
	}
	return m
}
