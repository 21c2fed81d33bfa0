package tensor

import (
	"math/cmplx"
	"testing"
)

// Test helpers

func assertEqualComplex(t *testing.T, expected, actual complex128, msg string) {
	t.Helper()
	if cmplx.Abs(expected-actual) > 1e-12 {
		t.Errorf("%s: expected %v, got %v", msg, expected, actual)
	}
}

func assertEqualShape(t *testing.T, expected, actual Shape, msg string) {
	t.Helper()
	if !expected.Equal(actual) {
		t.Errorf("%s: expected shape %v, got %v", msg, expected, actual)
	}
}

func assertPanics(t *testing.T, msg string, f func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: expected panic", msg)
		}
	}()
	f()
}

// Shape Tests

func TestShapeNumElements(t *testing.T) {
	tests := []struct {
		shape    Shape
		expected int
	}{
		{Shape{}, 1},         // Scalar
		{Shape{5}, 5},        // 1D
		{Shape{3, 4}, 12},    // 2D
		{Shape{2, 3, 4}, 24}, // 3D
		{Shape{2, 2, 2, 2}, 16},
	}

	for _, tt := range tests {
		if got := tt.shape.NumElements(); got != tt.expected {
			t.Errorf("Shape%v.NumElements() = %d, want %d", tt.shape, got, tt.expected)
		}
	}
}

func TestShapeValidation(t *testing.T) {
	validShapes := []Shape{
		{1},
		{3, 4},
		{2, 2, 2, 2},
	}
	for _, s := range validShapes {
		if err := s.Validate(); err != nil {
			t.Errorf("Shape%v.Validate() failed: %v", s, err)
		}
	}

	invalidShapes := []Shape{
		{0},
		{3, 0},
		{-1},
		{2, -4},
	}
	for _, s := range invalidShapes {
		if err := s.Validate(); err == nil {
			t.Errorf("Shape%v.Validate() should have failed", s)
		}
	}
}

func TestShapeComputeStrides(t *testing.T) {
	tests := []struct {
		shape    Shape
		expected []int
	}{
		{Shape{4}, []int{1}},
		{Shape{3, 4}, []int{4, 1}},
		{Shape{2, 3, 4}, []int{12, 4, 1}},
		{Shape{2, 2, 2, 2}, []int{8, 4, 2, 1}},
	}

	for _, tt := range tests {
		strides := tt.shape.ComputeStrides()
		if len(strides) != len(tt.expected) {
			t.Fatalf("Shape%v.ComputeStrides() = %v, want %v", tt.shape, strides, tt.expected)
		}
		for i := range strides {
			if strides[i] != tt.expected[i] {
				t.Errorf("Shape%v.ComputeStrides() = %v, want %v", tt.shape, strides, tt.expected)
				break
			}
		}
	}
}

func TestShapeEqualClone(t *testing.T) {
	s := Shape{2, 3, 4}
	c := s.Clone()
	if !s.Equal(c) {
		t.Errorf("clone %v not equal to original %v", c, s)
	}
	c[0] = 5
	if s.Equal(c) {
		t.Error("mutating a clone must not affect the original")
	}
	if s.Equal(Shape{2, 3}) {
		t.Error("shapes of different rank must not be equal")
	}
}

// Tensor Tests

func TestNewZeroFilled(t *testing.T) {
	tn := New(Shape{2, 3})
	if tn.NumElements() != 6 {
		t.Fatalf("NumElements() = %d, want 6", tn.NumElements())
	}
	for i, v := range tn.Data() {
		if v != 0 {
			t.Errorf("element %d = %v, want 0", i, v)
		}
	}
}

func TestNewPanicsOnInvalidShape(t *testing.T) {
	assertPanics(t, "New with zero dimension", func() {
		New(Shape{2, 0})
	})
}

func TestFromSlice(t *testing.T) {
	data := []complex128{1, 2i, 3, 4 + 1i}
	tn, err := FromSlice(data, Shape{2, 2})
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}
	assertEqualShape(t, Shape{2, 2}, tn.Shape(), "FromSlice shape")
	assertEqualComplex(t, 2i, tn.At(0, 1), "FromSlice At(0,1)")
	assertEqualComplex(t, 4+1i, tn.At(1, 1), "FromSlice At(1,1)")

	// The slice is copied, not aliased.
	data[0] = 99
	assertEqualComplex(t, 1, tn.At(0, 0), "FromSlice copies data")
}

func TestFromSliceLengthMismatch(t *testing.T) {
	_, err := FromSlice([]complex128{1, 2, 3}, Shape{2, 2})
	if err == nil {
		t.Error("FromSlice with 3 elements for shape [2 2] should fail")
	}
	_, err = FromSlice([]complex128{1}, Shape{0})
	if err == nil {
		t.Error("FromSlice with invalid shape should fail")
	}
}

func TestAtSet(t *testing.T) {
	tn := New(Shape{2, 3, 4})
	tn.Set(5-2i, 1, 2, 3)
	assertEqualComplex(t, 5-2i, tn.At(1, 2, 3), "At after Set")
	assertEqualComplex(t, 0, tn.At(0, 0, 0), "untouched element")
}

func TestAtSetPanics(t *testing.T) {
	tn := New(Shape{2, 3})
	assertPanics(t, "At with wrong rank", func() { tn.At(1) })
	assertPanics(t, "At out of bounds", func() { tn.At(2, 0) })
	assertPanics(t, "At negative index", func() { tn.At(0, -1) })
	assertPanics(t, "Set out of bounds", func() { tn.Set(1, 0, 3) })
}

func TestClone(t *testing.T) {
	tn := New(Shape{2, 2})
	tn.Set(1i, 0, 1)
	c := tn.Clone()
	if !tn.Equal(c, 0) {
		t.Fatal("clone differs from original")
	}
	c.Set(7, 0, 1)
	assertEqualComplex(t, 1i, tn.At(0, 1), "mutating a clone must not affect the original")
}

func TestEqual(t *testing.T) {
	a, _ := FromSlice([]complex128{1, 2, 3, 4}, Shape{2, 2})
	b, _ := FromSlice([]complex128{1, 2, 3, 4 + 1e-13i}, Shape{2, 2})
	if !a.Equal(b, 1e-12) {
		t.Error("tensors within tolerance should be equal")
	}
	if a.Equal(b, 1e-14) {
		t.Error("tensors beyond tolerance should not be equal")
	}

	c, _ := FromSlice([]complex128{1, 2, 3, 4}, Shape{4})
	if a.Equal(c, 1e-12) {
		t.Error("tensors of different shape should not be equal")
	}
}
