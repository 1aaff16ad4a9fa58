package matrix

import "errors"

// Sentinel errors carried by panics on the unchecked paths. They are
// never returned: out-of-range lookups and failed writes use comma-ok
// results instead. A recovered panic value matches these via errors.Is.
var (
	// ErrDims reports a constructor called with rows or cols < 1.
	ErrDims = errors.New("matrix: rows and cols must be positive")

	// ErrData reports backing data whose length does not match
	// rows*cols, including a source sequence that ran out early.
	ErrData = errors.New("matrix: data length does not match dimensions")

	// ErrBounds reports an unchecked access outside the matrix.
	ErrBounds = errors.New("matrix: index out of range")

	// ErrShape reports operand dimensions incompatible with the
	// requested arithmetic.
	ErrShape = errors.New("matrix: dimension mismatch")
)
