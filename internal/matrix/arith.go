package matrix

import "fmt"

func checkSameShape[T any](op string, a, b *Matrix[T]) {
	if a.rows != b.rows || a.cols != b.cols {
		panic(fmt.Errorf("%w: %s %dx%d and %dx%d", ErrShape, op, a.rows, a.cols, b.rows, b.cols))
	}
}

// Add returns a + b element-wise in a fresh matrix; neither operand is
// modified. Panics with ErrShape if the shapes differ.
func Add[T Number](a, b *Matrix[T]) *Matrix[T] {
	checkSameShape("add", a, b)
	data := make([]T, len(a.data))
	for i := range data {
		data[i] = a.data[i] + b.data[i]
	}
	return &Matrix[T]{rows: a.rows, cols: a.cols, data: data}
}

// AddInPlace adds src into dst element-wise, mutating dst's backing
// store directly (zero-copy). Panics with ErrShape if the shapes
// differ.
func AddInPlace[T Number](dst, src *Matrix[T]) {
	checkSameShape("add", dst, src)
	for i := range dst.data {
		dst.data[i] += src.data[i]
	}
}

// Sub returns a - b element-wise in a fresh matrix; neither operand is
// modified. Panics with ErrShape if the shapes differ.
func Sub[T Number](a, b *Matrix[T]) *Matrix[T] {
	checkSameShape("sub", a, b)
	data := make([]T, len(a.data))
	for i := range data {
		data[i] = a.data[i] - b.data[i]
	}
	return &Matrix[T]{rows: a.rows, cols: a.cols, data: data}
}

// SubInPlace subtracts src from dst element-wise, mutating dst's
// backing store directly (zero-copy). Panics with ErrShape if the
// shapes differ.
func SubInPlace[T Number](dst, src *Matrix[T]) {
	checkSameShape("sub", dst, src)
	for i := range dst.data {
		dst.data[i] -= src.data[i]
	}
}

// Neg returns -m element-wise in a fresh matrix.
func Neg[T Number](m *Matrix[T]) *Matrix[T] {
	data := make([]T, len(m.data))
	for i := range data {
		data[i] = -m.data[i]
	}
	return &Matrix[T]{rows: m.rows, cols: m.cols, data: data}
}

// NegInPlace negates every cell of m in place.
func NegInPlace[T Number](m *Matrix[T]) {
	for i := range m.data {
		m.data[i] = -m.data[i]
	}
}

// Scale returns m with every cell multiplied by k, in a fresh matrix.
func Scale[T Number](m *Matrix[T], k T) *Matrix[T] {
	data := make([]T, len(m.data))
	for i := range data {
		data[i] = m.data[i] * k
	}
	return &Matrix[T]{rows: m.rows, cols: m.cols, data: data}
}

// ScaleInPlace multiplies every cell of m by k in place.
func ScaleInPlace[T Number](m *Matrix[T], k T) {
	for i := range m.data {
		m.data[i] *= k
	}
}

// Mul returns the matrix product a·b. It requires a.Cols() ==
// b.Rows() and panics with ErrShape otherwise; the result is
// a.Rows()×b.Cols().
//
// Each output cell is the dot product of a row of a and a column of b,
// seeded with the first product and accumulated strictly left to
// right. The accumulation order is part of the contract: it is
// observable for non-associative element types such as floats.
func Mul[T Number](a, b *Matrix[T]) *Matrix[T] {
	if a.cols != b.rows {
		panic(fmt.Errorf("%w: mul %dx%d by %dx%d", ErrShape, a.rows, a.cols, b.rows, b.cols))
	}
	data := make([]T, 0, a.rows*b.cols)
	for i := 0; i < a.rows; i++ {
		for j := 0; j < b.cols; j++ {
			acc := a.data[a.index(i, 0)] * b.data[b.index(0, j)]
			for k := 1; k < a.cols; k++ {
				acc = acc + a.data[a.index(i, k)]*b.data[b.index(k, j)]
			}
			data = append(data, acc)
		}
	}
	return &Matrix[T]{rows: a.rows, cols: b.cols, data: data}
}

// Convert returns a copy of m with every element converted to Dst
// using Go's conversion rules (float to integer truncates).
//
// Example:
//
//	f := matrix.Convert[float64](m) // m is a *Matrix[int]
func Convert[Dst, Src Real](m *Matrix[Src]) *Matrix[Dst] {
	data := make([]Dst, len(m.data))
	for i, v := range m.data {
		data[i] = Dst(v)
	}
	return &Matrix[Dst]{rows: m.rows, cols: m.cols, data: data}
}
