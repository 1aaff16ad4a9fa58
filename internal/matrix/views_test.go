package matrix

import (
	"slices"
	"testing"
)

// View Tests

func TestRowContents(t *testing.T) {
	m := FromIter(3, 6, naturals())

	row, ok := m.Row(1)
	if !ok {
		t.Fatal("Row(1) reported out of range")
	}
	got := slices.Collect(row)
	want := []int{6, 7, 8, 9, 10, 11}
	if !slices.Equal(got, want) {
		t.Errorf("Row(1) = %v, want %v", got, want)
	}
}

func TestColContents(t *testing.T) {
	m := FromIter(3, 6, naturals())

	col, ok := m.Col(1)
	if !ok {
		t.Fatal("Col(1) reported out of range")
	}
	got := slices.Collect(col)
	want := []int{1, 7, 13}
	if !slices.Equal(got, want) {
		t.Errorf("Col(1) = %v, want %v", got, want)
	}
}

func TestRowColOutOfRange(t *testing.T) {
	m := Zeros[int](3, 6)

	if _, ok := m.Row(5); ok {
		t.Error("Row(5) = ok, want out of range")
	}
	if _, ok := m.Row(-1); ok {
		t.Error("Row(-1) = ok, want out of range")
	}
	if _, ok := m.Col(10); ok {
		t.Error("Col(10) = ok, want out of range")
	}
	if _, ok := m.Col(-1); ok {
		t.Error("Col(-1) = ok, want out of range")
	}
}

func TestRowIsRestartable(t *testing.T) {
	m := New(2, 3, []int{1, 2, 3, 4, 5, 6})

	row, _ := m.Row(0)
	first := slices.Collect(row)
	second := slices.Collect(row)
	if !slices.Equal(first, second) {
		t.Errorf("second traversal = %v, want %v", second, first)
	}
}

func TestRowObservesLiveEdits(t *testing.T) {
	m := New(2, 2, []int{1, 2, 3, 4})

	row, _ := m.Row(0)
	m.SetAt(0, 1, 20)

	got := slices.Collect(row)
	want := []int{1, 20}
	if !slices.Equal(got, want) {
		t.Errorf("Row(0) after edit = %v, want %v", got, want)
	}
}

func TestColObservesLiveEdits(t *testing.T) {
	m := New(2, 2, []int{1, 2, 3, 4})

	col, _ := m.Col(0)
	m.SetAt(1, 0, 30)

	got := slices.Collect(col)
	want := []int{1, 30}
	if !slices.Equal(got, want) {
		t.Errorf("Col(0) after edit = %v, want %v", got, want)
	}
}

func TestRowEarlyBreak(t *testing.T) {
	m := FromIter(2, 5, naturals())

	row, _ := m.Row(1)
	var got []int
	for v := range row {
		got = append(got, v)
		if len(got) == 2 {
			break
		}
	}
	want := []int{5, 6}
	if !slices.Equal(got, want) {
		t.Errorf("partial Row(1) = %v, want %v", got, want)
	}
}

func TestValuesRowMajorOrder(t *testing.T) {
	m := New(2, 3, []int{1, 2, 3, 4, 5, 6})

	got := slices.Collect(m.Values())
	want := []int{1, 2, 3, 4, 5, 6}
	if !slices.Equal(got, want) {
		t.Errorf("Values() = %v, want %v", got, want)
	}
}

func TestValuesSum(t *testing.T) {
	m := FromIter(3, 6, naturals())

	sum := 0
	for v := range m.Values() {
		sum += v
	}
	if sum != 153 {
		t.Errorf("sum of cells = %d, want 153", sum)
	}
}
