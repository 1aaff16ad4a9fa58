package matrix

// Number is the constraint for element types usable with matrix
// arithmetic and inversion. It admits the built-in numeric types:
// signed and unsigned integers, floats, and complex numbers.
//
// Every member supports +, -, *, /, comparison against zero, and
// conversion from the untyped constants 0 and 1, so additive and
// multiplicative identities are obtained with var zero T and T(1)
// without runtime dispatch.
//
// Integer division truncates; inverting an integer matrix is only
// meaningful when the true inverse happens to be integral (such as a
// permutation or identity matrix). Use a float element type otherwise.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64 | ~complex64 | ~complex128
}

// Real is Number without the complex types. Operations that must
// convert elements to float64 (adapters, type conversion) require it.
type Real interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Float is the constraint for tolerance-based operations, which are
// only meaningful for IEEE floating-point element types.
type Float interface {
	~float32 | ~float64
}
