// Package density implements exact simulation of mixed n-qubit quantum
// states: a register is held as a 2^n × 2^n complex density matrix and
// evolved under unitary gates by tensor contraction.
package density

import (
	"fmt"
	"math/bits"
	"math/cmplx"
	"strings"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/cmplxs"
	"gonum.org/v1/gonum/cmplxs/cscalar"

	"github.com/mixedstate/dmsim/internal/bitops"
	"github.com/mixedstate/dmsim/tensor"
)

// TraceTolerance bounds how far the diagonal sum may drift from one before
// Trace reports the state as invalid.
const TraceTolerance = 1e-10

// State selects the canonical initial contents of a new register.
type State int

const (
	// Empty leaves every entry zero. Not a physical state; useful as an
	// accumulator.
	Empty State = iota
	// Zero prepares |0...0><0...0|.
	Zero
	// Plus prepares |+...+><+...+|, the uniform superposition.
	Plus
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case Empty:
		return "Empty"
	case Zero:
		return "Zero"
	case Plus:
		return "Plus"
	default:
		return "Unknown"
	}
}

// DensityMatrix is the 1D row-major representation of a size×size density
// matrix, with size = 2^nqubits. A physically valid matrix has trace 1;
// that invariant is checked on demand by Trace, not on every mutation.
type DensityMatrix struct {
	data    []complex128
	size    int
	nqubits int
}

// New creates an nqubits register in the given initial state.
func New(nqubits int, initial State) *DensityMatrix {
	size := 1 << nqubits
	dm := &DensityMatrix{
		data:    make([]complex128, size*size),
		size:    size,
		nqubits: nqubits,
	}
	switch initial {
	case Zero:
		dm.data[0] = 1
	case Plus:
		for i := range dm.data {
			dm.data[i] = complex(1/float64(size), 0)
		}
	}
	return dm
}

// FromStatevec builds the density matrix of a pure state as the outer
// product of the amplitude vector with itself: entry(i,j) = amp[i]·conj(amp[j]).
// Amplitudes are in big-endian qubit-index order. Returns an error if the
// length is not a power of two.
func FromStatevec(amplitudes []complex128) (*DensityMatrix, error) {
	n := len(amplitudes)
	if n == 0 || n&(n-1) != 0 {
		return nil, errors.Errorf("statevector length %d is not a power of two", n)
	}

	dm := &DensityMatrix{
		data:    make([]complex128, n*n),
		size:    n,
		nqubits: bits.TrailingZeros(uint(n)),
	}
	for i, a := range amplitudes {
		for j, b := range amplitudes {
			dm.data[i*n+j] = a * cmplx.Conj(b)
		}
	}
	return dm, nil
}

// NQubits returns the register width.
func (dm *DensityMatrix) NQubits() int {
	return dm.nqubits
}

// Size returns the matrix dimension per side, 2^nqubits.
func (dm *DensityMatrix) Size() int {
	return dm.size
}

// Data returns the flat row-major matrix (zero-copy).
//
// WARNING: Modifications to the returned slice will modify the state.
func (dm *DensityMatrix) Data() []complex128 {
	return dm.data
}

// Get returns the element at row i and column j.
// Panics if either index is out of range.
func (dm *DensityMatrix) Get(i, j int) complex128 {
	dm.check(i, j)
	return dm.data[i*dm.size+j]
}

// Set sets the element at row i and column j.
// Panics if either index is out of range.
func (dm *DensityMatrix) Set(i, j int, value complex128) {
	dm.check(i, j)
	dm.data[i*dm.size+j] = value
}

func (dm *DensityMatrix) check(i, j int) {
	if i < 0 || i >= dm.size || j < 0 || j >= dm.size {
		panic(fmt.Sprintf("density: index (%d, %d) out of bounds for %dx%d matrix", i, j, dm.size, dm.size))
	}
}

// Trace returns the sum over the diagonal elements. It reports an error,
// without mutating the state, when the sum deviates from one by more than
// TraceTolerance in complex modulus.
func (dm *DensityMatrix) Trace() (complex128, error) {
	var tr complex128
	for i := 0; i < dm.size; i++ {
		tr += dm.data[i*dm.size+i]
	}
	if !cscalar.EqualWithinAbs(tr, 1, TraceTolerance) {
		return tr, errors.Errorf("diagonal sum %v deviates from one beyond tolerance %g", tr, TraceTolerance)
	}
	return tr, nil
}

// Normalize divides every entry by the trace. Calling it on a state whose
// trace check fails is a usage error and panics; the caller must not
// normalize an invalid state.
func (dm *DensityMatrix) Normalize() {
	tr, err := dm.Trace()
	if err != nil {
		panic(fmt.Sprintf("density: normalize on invalid state: %v", err))
	}
	cmplxs.Scale(1/tr, dm.data)
}

// Equals reports element-wise approximate equality within the given absolute
// tolerance. Matrices of different sizes are not equal.
func (dm *DensityMatrix) Equals(other *DensityMatrix, tol float64) bool {
	if other == nil || len(dm.data) != len(other.data) {
		return false
	}
	for i := range dm.data {
		if !cscalar.EqualWithinAbs(dm.data[i], other.data[i], tol) {
			return false
		}
	}
	return true
}

// String returns a bracketed row-by-row listing of the matrix.
func (dm *DensityMatrix) String() string {
	var b strings.Builder
	b.WriteString("[")
	for i := 0; i < dm.size; i++ {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString("[")
		for j := 0; j < dm.size; j++ {
			if j > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%v", dm.data[i*dm.size+j])
		}
		b.WriteString("]")
		if i < dm.size-1 {
			b.WriteString("\n")
		}
	}
	b.WriteString("]")
	return b.String()
}

// toTensor reshapes the flat matrix into a tensor of 2·nqubits axes of
// dimension 2: row (bra-side) qubit axes first, then column (ket-side)
// qubit axes, both in qubit-index order.
func (dm *DensityMatrix) toTensor() *tensor.Tensor {
	nbits := 2 * dm.nqubits
	shape := make(tensor.Shape, nbits)
	for i := range shape {
		shape[i] = 2
	}

	t := tensor.New(shape)
	for i, v := range dm.data {
		t.Set(v, bitops.IndexToBits(i, nbits)...)
	}
	return t
}

// fromTensor replaces the matrix contents with a canonically ordered
// 2·nqubits-axis tensor, inverting toTensor.
func (dm *DensityMatrix) fromTensor(t *tensor.Tensor) {
	nbits := 2 * dm.nqubits
	for i := range dm.data {
		dm.data[i] = t.At(bitops.IndexToBits(i, nbits)...)
	}
}
