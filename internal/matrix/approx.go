package matrix

import (
	"math"

	"github.com/chewxy/math32"
)

// abs returns |v| for either float width. The float32 path stays in
// single precision via math32. Named float types fall through to the
// comparison branch, which is exact for both widths.
func abs[T Float](v T) T {
	switch x := any(v).(type) {
	case float32:
		return any(math32.Abs(x)).(T)
	case float64:
		return any(math.Abs(x)).(T)
	default:
		if v < 0 {
			return -v
		}
		return v
	}
}

// EqualApprox reports whether a and b have the same shape and every
// pair of corresponding cells differs by at most tol in absolute
// value. tol must be non-negative.
func EqualApprox[T Float](a, b *Matrix[T], tol T) bool {
	if a.rows != b.rows || a.cols != b.cols {
		return false
	}
	for i := range a.data {
		if abs(a.data[i]-b.data[i]) > tol {
			return false
		}
	}
	return true
}
