// Copyright 2026 The Slate Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package matrix provides a generic dense two-dimensional container
// with element-wise arithmetic, transposition, and matrix inversion
// via Gauss-Jordan elimination.
//
// # Overview
//
// Matrix[T] stores a fixed rows×cols grid of elements row-major in one
// contiguous slice. It is deliberately minimal: a container with
// bounds-checked access, structural transforms, and naive linear
// algebra, not a full linear-algebra suite. Callers who outgrow it can
// hand their data to gonum through the slate gonum adapter package.
//
// # Basic Usage
//
//	import "github.com/slate-num/slate/matrix"
//
//	func main() {
//	    m := matrix.FromRows([][]float64{
//	        {1, 0, 2, 0},
//	        {0, 3, 0, 4},
//	        {5, 0, 6, 0},
//	        {0, 7, 0, 8},
//	    })
//
//	    inv, ok := matrix.Inverse(m)
//	    if !ok {
//	        // m was not square
//	    }
//	    check := matrix.Mul(m, inv) // approximately identity
//	    _ = check
//	}
//
// # Element Types
//
// The container itself accepts any element type. Operations are
// package-level generic functions constrained to exactly the
// capabilities they use:
//   - Number: arithmetic and inversion (integers, floats, complex)
//   - Real: conversion to float64 (Convert, the adapters)
//   - Float: tolerance-based comparison (EqualApprox, InverseTol)
//
// # Error Handling
//
// Lookups and writes with untrusted indices use comma-ok results and
// never panic: Get, Ref, Set, Row, Col, and Inverse on a non-square
// matrix all report failure through their second result. Contract
// violations — invalid construction dimensions, an undersized data
// source, unchecked At/SetAt indexing out of range, shape-mismatched
// arithmetic — panic with an error matching one of the package
// sentinels (ErrDims, ErrData, ErrBounds, ErrShape) via errors.Is.
//
// # Concurrency
//
// No operation synchronizes internally. A Matrix may be shared between
// goroutines only under the caller's own discipline: exclusive access
// for mutation, shared access for reads. Row and column views read the
// live backing store on every traversal and must not race with writes.
package matrix
