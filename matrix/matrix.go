// Copyright 2026 The Slate Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package matrix

import (
	"iter"

	"github.com/slate-num/slate/internal/matrix"
)

// Type aliases for public API

// Matrix is a dense, non-resizable rows×cols container over elements
// of type T, stored row-major. Element (r, c) lives at flat offset
// c + r*cols of the backing slice.
//
// Accessors, views, and structural transforms are methods; everything
// that needs arithmetic on T is a package-level function constrained
// by Number, Real, or Float.
//
// Example:
//
//	m := matrix.New(2, 3, []int{1, 2, 3, 4, 5, 6})
//	v, ok := m.Get(1, 0) // 4, true
//	m.Set(0, 0, 9)       // true
type Matrix[T any] = matrix.Matrix[T]

// Number is the constraint for element types usable with arithmetic
// and inversion: the built-in integer, float, and complex types, and
// types defined on them.
type Number = matrix.Number

// Real is Number without the complex types; required where elements
// must convert to float64.
type Real = matrix.Real

// Float constrains the tolerance-based operations to the IEEE
// floating-point element types.
type Float = matrix.Float

// Sentinel errors carried by panics on the unchecked paths; match with
// errors.Is against a recovered value.
var (
	// ErrDims reports a constructor called with rows or cols < 1.
	ErrDims = matrix.ErrDims
	// ErrData reports backing data shorter or longer than rows*cols.
	ErrData = matrix.ErrData
	// ErrBounds reports an unchecked access outside the matrix.
	ErrBounds = matrix.ErrBounds
	// ErrShape reports operand dimensions incompatible with the
	// requested arithmetic.
	ErrShape = matrix.ErrShape
)

// Creation functions

// New constructs a rows×cols matrix adopting data as its row-major
// backing store (no copy). Panics with ErrDims if rows or cols is not
// strictly positive, and with ErrData if len(data) != rows*cols.
func New[T any](rows, cols int, data []T) *Matrix[T] {
	return matrix.New(rows, cols, data)
}

// FromRows constructs a matrix from a slice of equally sized rows,
// copying the values. Panics with ErrDims on empty input and with
// ErrData on ragged rows.
//
// Example:
//
//	m := matrix.FromRows([][]int{{1, 2}, {3, 4}})
func FromRows[T any](rows [][]T) *Matrix[T] {
	return matrix.FromRows(rows)
}

// FromIter constructs a rows×cols matrix by consuming exactly
// rows*cols values from seq, filling row by row. The sequence may be
// unbounded; surplus values are never pulled. Panics with ErrData if
// seq runs out early.
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
func FromIter[T any](rows, cols int, seq iter.Seq[T]) *Matrix[T] {
	return matrix.FromIter(rows, cols, seq)
}

// Zeros constructs a rows×cols matrix with every cell set to the
// additive identity.
func Zeros[T Number](rows, cols int) *Matrix[T] {
	return matrix.Zeros[T](rows, cols)
}

// Full constructs a rows×cols matrix with every cell set to v.
func Full[T any](rows, cols int, v T) *Matrix[T] {
	return matrix.Full(rows, cols, v)
}

// Identity constructs the n×n identity matrix.
//
// Example:
//
//	id := matrix.Identity[float64](3)
func Identity[T Number](n int) *Matrix[T] {
	return matrix.Identity[T](n)
}

// Comparison

// Equal reports whether a and b have the same shape and identical
// elements. Comparison is exact; see EqualApprox for floats.
func Equal[T comparable](a, b *Matrix[T]) bool {
	return matrix.Equal(a, b)
}

// EqualApprox reports whether a and b have the same shape and every
// pair of corresponding cells differs by at most tol.
func EqualApprox[T Float](a, b *Matrix[T], tol T) bool {
	return matrix.EqualApprox(a, b, tol)
}
