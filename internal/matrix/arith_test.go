package matrix

import (
	"slices"
	"testing"
)

// Arithmetic Tests

func TestAdd(t *testing.T) {
	a := New(2, 2, []int{1, 2, 3, 4})
	b := New(2, 2, []int{10, 20, 30, 40})

	sum := Add(a, b)
	want := []int{11, 22, 33, 44}
	if !slices.Equal(sum.Data(), want) {
		t.Errorf("Add = %v, want %v", sum.Data(), want)
	}
	// Operands untouched.
	if !slices.Equal(a.Data(), []int{1, 2, 3, 4}) {
		t.Errorf("Add modified a: %v", a.Data())
	}
	if !slices.Equal(b.Data(), []int{10, 20, 30, 40}) {
		t.Errorf("Add modified b: %v", b.Data())
	}
}

func TestAddInPlace(t *testing.T) {
	a := New(2, 2, []int{1, 2, 3, 4})
	b := New(2, 2, []int{10, 20, 30, 40})

	AddInPlace(a, b)
	want := []int{11, 22, 33, 44}
	if !slices.Equal(a.Data(), want) {
		t.Errorf("AddInPlace dst = %v, want %v", a.Data(), want)
	}
}

func TestAddInPlaceAliased(t *testing.T) {
	a := New(2, 2, []int{1, 2, 3, 4})

	AddInPlace(a, a)
	want := []int{2, 4, 6, 8}
	if !slices.Equal(a.Data(), want) {
		t.Errorf("AddInPlace(a, a) = %v, want %v", a.Data(), want)
	}
}

func TestSub(t *testing.T) {
	a := New(2, 2, []float64{1, 2, 3, 4})
	b := New(2, 2, []float64{0.5, 1, 1.5, 2})

	diff := Sub(a, b)
	want := []float64{0.5, 1, 1.5, 2}
	if !slices.Equal(diff.Data(), want) {
		t.Errorf("Sub = %v, want %v", diff.Data(), want)
	}
}

func TestSubInPlace(t *testing.T) {
	a := New(1, 3, []int{5, 7, 9})
	b := New(1, 3, []int{1, 2, 3})

	SubInPlace(a, b)
	want := []int{4, 5, 6}
	if !slices.Equal(a.Data(), want) {
		t.Errorf("SubInPlace dst = %v, want %v", a.Data(), want)
	}
}

func TestNeg(t *testing.T) {
	m := New(2, 2, []int{1, -2, 3, -4})

	n := Neg(m)
	want := []int{-1, 2, -3, 4}
	if !slices.Equal(n.Data(), want) {
		t.Errorf("Neg = %v, want %v", n.Data(), want)
	}
	if !slices.Equal(m.Data(), []int{1, -2, 3, -4}) {
		t.Errorf("Neg modified operand: %v", m.Data())
	}

	NegInPlace(m)
	if !Equal(m, n) {
		t.Errorf("NegInPlace = %v, want %v", m, n)
	}
}

func TestScale(t *testing.T) {
	m := New(2, 2, []float64{1, 2, 3, 4})

	s := Scale(m, 0.5)
	want := []float64{0.5, 1, 1.5, 2}
	if !slices.Equal(s.Data(), want) {
		t.Errorf("Scale = %v, want %v", s.Data(), want)
	}

	ScaleInPlace(m, 2)
	want = []float64{2, 4, 6, 8}
	if !slices.Equal(m.Data(), want) {
		t.Errorf("ScaleInPlace = %v, want %v", m.Data(), want)
	}
}

func TestShapeMismatchPanics(t *testing.T) {
	a := Zeros[int](2, 3)
	b := Zeros[int](3, 2)

	assertPanics(t, ErrShape, func() { Add(a, b) })
	assertPanics(t, ErrShape, func() { Sub(a, b) })
	assertPanics(t, ErrShape, func() { AddInPlace(a, b) })
	assertPanics(t, ErrShape, func() { SubInPlace(a, b) })
}

func TestMul(t *testing.T) {
	a := New(2, 3, []int{1, 2, 3, 4, 5, 6})
	b := New(3, 2, []int{7, 8, 9, 10, 11, 12})

	p := Mul(a, b)
	assertDims(t, p, 2, 2, "Mul")
	want := []int{58, 64, 139, 154}
	if !slices.Equal(p.Data(), want) {
		t.Errorf("Mul = %v, want %v", p.Data(), want)
	}
}

func TestMulByIdentity(t *testing.T) {
	m := FromIter(3, 3, naturals())
	id := Identity[int](3)

	if !Equal(Mul(m, id), m) {
		t.Error("m * I != m")
	}
	if !Equal(Mul(id, m), m) {
		t.Error("I * m != m")
	}
}

func TestMulRectangularByIdentity(t *testing.T) {
	m := FromIter(2, 5, naturals())

	if !Equal(Mul(m, Identity[int](5)), m) {
		t.Error("m * I(cols) != m")
	}
	if !Equal(Mul(Identity[int](2), m), m) {
		t.Error("I(rows) * m != m")
	}
}

func TestMulNonConformablePanics(t *testing.T) {
	a := Zeros[int](2, 3)
	b := Zeros[int](2, 3)

	assertPanics(t, ErrShape, func() { Mul(a, b) })
}

func TestMulVector(t *testing.T) {
	a := New(2, 2, []float64{1, 2, 3, 4})
	x := New(2, 1, []float64{5, 6})

	p := Mul(a, x)
	assertDims(t, p, 2, 1, "Mul vector")
	want := []float64{17, 39}
	if !slices.Equal(p.Data(), want) {
		t.Errorf("Mul vector = %v, want %v", p.Data(), want)
	}
}

func TestConvert(t *testing.T) {
	m := New(2, 2, []int{1, 2, 3, 4})

	f := Convert[float64](m)
	want := []float64{1, 2, 3, 4}
	if !slices.Equal(f.Data(), want) {
		t.Errorf("Convert to float64 = %v, want %v", f.Data(), want)
	}

	back := Convert[int](Scale(f, 1.5))
	wantInts := []int{1, 3, 4, 6} // 1.5, 3, 4.5, 6 truncated
	if !slices.Equal(back.Data(), wantInts) {
		t.Errorf("Convert back to int = %v, want %v", back.Data(), wantInts)
	}
}

func TestComplexArithmetic(t *testing.T) {
	a := New(1, 2, []complex128{1 + 2i, 3})
	b := New(1, 2, []complex128{2 - 1i, 1i})

	sum := Add(a, b)
	want := []complex128{3 + 1i, 3 + 1i}
	if !slices.Equal(sum.Data(), want) {
		t.Errorf("complex Add = %v, want %v", sum.Data(), want)
	}
}
