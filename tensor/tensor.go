package tensor

import (
	"fmt"
	"math/cmplx"

	"github.com/mixedstate/dmsim/internal/parallel"
)

// par configures the chunked parallel iteration used by the contraction and
// permutation kernels. Results never depend on it; it only splits work over
// independent output elements.
var par = parallel.DefaultConfig()

// Tensor is a dense complex tensor stored as a flat row-major buffer.
// The invariant len(data) == shape.NumElements() holds at all times.
type Tensor struct {
	shape Shape
	data  []complex128
}

// New allocates a zero-filled tensor of the given shape.
// Panics if the shape contains a non-positive dimension.
func New(shape Shape) *Tensor {
	if err := shape.Validate(); err != nil {
		panic(fmt.Sprintf("tensor: invalid shape %v: %v", shape, err))
	}
	return &Tensor{
		shape: shape.Clone(),
		data:  make([]complex128, shape.NumElements()),
	}
}

// FromSlice creates a tensor from a flat slice.
// The slice is copied into the tensor's memory.
func FromSlice(data []complex128, shape Shape) (*Tensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("shape %v requires %d elements, but got %d", shape, shape.NumElements(), len(data))
	}

	t := New(shape)
	copy(t.data, data)
	return t, nil
}

// Shape returns the tensor's shape.
func (t *Tensor) Shape() Shape {
	return t.shape
}

// Rank returns the number of axes.
func (t *Tensor) Rank() int {
	return len(t.shape)
}

// NumElements returns the total number of elements.
func (t *Tensor) NumElements() int {
	return len(t.data)
}

// Data returns the flat row-major buffer (zero-copy).
//
// WARNING: Modifications to the returned slice will modify the tensor.
func (t *Tensor) Data() []complex128 {
	return t.data
}

// At returns the element at the given multi-index.
// Panics if the index rank or any component is out of bounds.
func (t *Tensor) At(indices ...int) complex128 {
	return t.data[t.offset(indices)]
}

// Set sets the element at the given multi-index.
// Panics if the index rank or any component is out of bounds.
func (t *Tensor) Set(value complex128, indices ...int) {
	t.data[t.offset(indices)] = value
}

func (t *Tensor) offset(indices []int) int {
	if len(indices) != len(t.shape) {
		panic(fmt.Sprintf("expected %d indices, got %d", len(t.shape), len(indices)))
	}

	offset := 0
	strides := t.shape.ComputeStrides()
	for i, idx := range indices {
		if idx < 0 || idx >= t.shape[i] {
			panic(fmt.Sprintf("index %d out of bounds for axis %d (size %d)", idx, i, t.shape[i]))
		}
		offset += idx * strides[i]
	}
	return offset
}

// Clone creates a deep copy of the tensor.
func (t *Tensor) Clone() *Tensor {
	c := New(t.shape)
	copy(c.data, t.data)
	return c
}

// Equal reports whether t and other have the same shape and element-wise
// equal data within the given absolute tolerance (complex modulus).
func (t *Tensor) Equal(other *Tensor, tol float64) bool {
	if !t.shape.Equal(other.shape) {
		return false
	}
	for i := range t.data {
		if cmplx.Abs(t.data[i]-other.data[i]) > tol {
			return false
		}
	}
	return true
}

// String returns a human-readable summary of the tensor.
func (t *Tensor) String() string {
	return fmt.Sprintf("Tensor[complex128]%v", t.shape)
}
