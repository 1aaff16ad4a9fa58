// Copyright 2026 The Slate Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package gonum bridges slate matrices to gonum's mat package.
//
// Slate deliberately stops at element-wise arithmetic and Gauss-Jordan
// inversion; decompositions, solvers, and the rest of numerical linear
// algebra belong to gonum. This package hands a Matrix to gonum either
// as a zero-copy read-only view (Wrap) or as a copied mat.Dense
// (ToDense), and imports results back (FromDense).
//
// Example:
//
//	m := matrix.FromRows([][]float64{{4, 7}, {2, 6}})
//	var lu mat.LU
//	lu.Factorize(gonum.Wrap(m))
package gonum

import (
	"gonum.org/v1/gonum/mat"

	"github.com/slate-num/slate/matrix"
)

// view adapts a Matrix to mat.Matrix. Elements convert to float64 on
// every read; the underlying store is shared, not copied.
type view[T matrix.Real] struct {
	m *matrix.Matrix[T]
}

// Dims returns the number of rows and columns.
func (v view[T]) Dims() (r, c int) {
	return v.m.Dims()
}

// At returns the element at (r, c) as a float64. Out-of-range indices
// panic, matching mat.Matrix semantics.
func (v view[T]) At(r, c int) float64 {
	return float64(v.m.At(r, c))
}

// T returns the transpose, lazily, in gonum's usual way.
func (v view[T]) T() mat.Matrix {
	return mat.Transpose{Matrix: v}
}

// Wrap exposes m as a read-only mat.Matrix backed by m's live store.
// Mutations of m between calls are visible through the view.
func Wrap[T matrix.Real](m *matrix.Matrix[T]) mat.Matrix {
	return view[T]{m: m}
}

// ToDense copies m into a freshly allocated mat.Dense.
func ToDense[T matrix.Real](m *matrix.Matrix[T]) *mat.Dense {
	return mat.DenseCopyOf(Wrap(m))
}

// FromDense copies d into a fresh float64 matrix.
func FromDense(d *mat.Dense) *matrix.Matrix[float64] {
	rows, cols := d.Dims()
	data := make([]float64, 0, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			data = append(data, d.At(r, c))
		}
	}
	return matrix.New(rows, cols, data)
}
