package matrix

// augmentAndReduce builds the n×2n augmented matrix [m | I] and runs a
// Gauss-Jordan sweep over it: for each row, a pivot is located by
// scanning the lead column downward (advancing lead past all-zero
// columns), swapped into place, normalized, and eliminated from every
// other row across all 2n columns. m must be square.
func augmentAndReduce[T Number](m *Matrix[T]) *Matrix[T] {
	var zero T
	n := m.rows

	aug := Zeros[T](n, 2*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			aug.SetAt(i, j, m.At(i, j))
		}
		aug.SetAt(i, i+n, T(1))
	}

	lead := 0
	for r := 0; r < aug.rows; r++ {
		if aug.cols <= lead {
			break
		}

		// Scan downward from r for a non-zero entry in the lead
		// column; when the scan runs off the bottom, restart it at r
		// in the next column.
		i := r
		for aug.At(i, lead) == zero {
			i++
			if i == aug.rows {
				i = r
				lead++
				if lead == aug.cols {
					break
				}
			}
		}
		if lead == aug.cols {
			break
		}

		aug.SwapRows(i, r)

		// Normalize the pivot row. A zero pivot is left alone: that is
		// the singular case, and the sweep carries on (see Inverse).
		if div := aug.At(r, lead); div != zero {
			for j := 0; j < aug.cols; j++ {
				aug.SetAt(r, j, aug.At(r, j)/div)
			}
		}

		// Eliminate the lead column from every other row.
		for k := 0; k < aug.rows; k++ {
			if k == r {
				continue
			}
			mul := aug.At(k, lead)
			for j := 0; j < aug.cols; j++ {
				aug.SetAt(k, j, aug.At(k, j)-aug.At(r, j)*mul)
			}
		}

		lead++
	}

	return aug
}

// rightHalf extracts columns n..2n-1 of a reduced augmented matrix
// into a fresh n×n matrix.
func rightHalf[T Number](aug *Matrix[T], n int) *Matrix[T] {
	inv := Zeros[T](n, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			inv.SetAt(i, j, aug.At(i, j+n))
		}
	}
	return inv
}

// Inverse computes the inverse of a square matrix by Gauss-Jordan
// elimination with row pivoting on an augmented [m | I] matrix.
// It returns (nil, false) when m is not square; that is the only
// failure it reports.
//
// Singular input is not detected: elimination proceeds through zero
// pivots and the returned matrix is then meaningless. Pivot tests
// compare against zero exactly, which is only decisive for exact
// element types; floating-point callers accept approximate results, or
// use InverseTol to have the degenerate case signaled.
//
// Example:
//
//	m := matrix.FromRows([][]float64{
//		{1, 0, 2, 0},
//		{0, 3, 0, 4},
//		{5, 0, 6, 0},
//		{0, 7, 0, 8},
//	})
//	inv, ok := matrix.Inverse(m) // ok == true
//	_ = inv                      // [[-1.5 0 0.5 0] [0 -2 0 1] ...]
func Inverse[T Number](m *Matrix[T]) (*Matrix[T], bool) {
	if m.rows != m.cols {
		return nil, false
	}
	return rightHalf(augmentAndReduce(m), m.rows), true
}

// InverseTol is Inverse with convergence checking for floating-point
// matrices: after elimination the left half of the augmented matrix
// must equal the identity within tol in every cell, otherwise
// (nil, false) is returned. This turns the silent degenerate result of
// Inverse on singular or near-singular input into an explicit signal.
// tol must be non-negative.
func InverseTol[T Float](m *Matrix[T], tol T) (*Matrix[T], bool) {
	if m.rows != m.cols {
		return nil, false
	}
	n := m.rows
	aug := augmentAndReduce(m)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			var want T
			if i == j {
				want = 1
			}
			if abs(aug.At(i, j)-want) > tol {
				return nil, false
			}
		}
	}
	return rightHalf(aug, n), true
}
