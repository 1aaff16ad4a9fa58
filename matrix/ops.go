// Copyright 2026 The Slate Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package matrix

import "github.com/slate-num/slate/internal/matrix"

// Element-wise arithmetic. Each operation comes in two forms: a
// fresh-result function that leaves both operands untouched and an
// InPlace variant that mutates its first operand's backing store
// directly (zero-copy). All of them panic with ErrShape when operand
// shapes differ.

// Add returns a + b element-wise in a fresh matrix.
func Add[T Number](a, b *Matrix[T]) *Matrix[T] {
	return matrix.Add(a, b)
}

// AddInPlace adds src into dst element-wise, mutating dst.
func AddInPlace[T Number](dst, src *Matrix[T]) {
	matrix.AddInPlace(dst, src)
}

// Sub returns a - b element-wise in a fresh matrix.
func Sub[T Number](a, b *Matrix[T]) *Matrix[T] {
	return matrix.Sub(a, b)
}

// SubInPlace subtracts src from dst element-wise, mutating dst.
func SubInPlace[T Number](dst, src *Matrix[T]) {
	matrix.SubInPlace(dst, src)
}

// Neg returns -m element-wise in a fresh matrix.
func Neg[T Number](m *Matrix[T]) *Matrix[T] {
	return matrix.Neg(m)
}

// NegInPlace negates every cell of m in place.
func NegInPlace[T Number](m *Matrix[T]) {
	matrix.NegInPlace(m)
}

// Scale returns m with every cell multiplied by k, in a fresh matrix.
func Scale[T Number](m *Matrix[T], k T) *Matrix[T] {
	return matrix.Scale(m, k)
}

// ScaleInPlace multiplies every cell of m by k in place.
func ScaleInPlace[T Number](m *Matrix[T], k T) {
	matrix.ScaleInPlace(m, k)
}

// Mul returns the matrix product a·b. It requires a.Cols() ==
// b.Rows() and panics with ErrShape otherwise. Each output cell is a
// dot product accumulated strictly left to right, which is observable
// for floating-point element types.
//
// Example:
//
//	m := matrix.FromRows([][]int{{1, 2}, {3, 4}})
//	p := matrix.Mul(m, matrix.Identity[int](2)) // equals m
func Mul[T Number](a, b *Matrix[T]) *Matrix[T] {
	return matrix.Mul(a, b)
}

// Convert returns a copy of m with every element converted to Dst
// using Go's conversion rules (float to integer truncates).
func Convert[Dst, Src Real](m *Matrix[Src]) *Matrix[Dst] {
	return matrix.Convert[Dst](m)
}

// Inverse computes the inverse of a square matrix by Gauss-Jordan
// elimination with row pivoting on an augmented [m | I] matrix.
// It returns (nil, false) when m is not square; that is the only
// failure it reports. Singular input is not detected — elimination
// proceeds through zero pivots and the returned matrix is then
// meaningless. Use InverseTol to have that case signaled.
func Inverse[T Number](m *Matrix[T]) (*Matrix[T], bool) {
	return matrix.Inverse(m)
}

// InverseTol is Inverse with convergence checking: after elimination
// the left half of the augmented matrix must equal the identity within
// tol in every cell, otherwise (nil, false) is returned. Singular and
// numerically near-singular input is therefore rejected instead of
// producing garbage.
func InverseTol[T Float](m *Matrix[T], tol T) (*Matrix[T], bool) {
	return matrix.InverseTol(m, tol)
}
