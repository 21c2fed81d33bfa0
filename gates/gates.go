// Package gates defines the fixed unitary operator catalogue consumed by the
// density-matrix simulator: one-qubit gates I, X, Y, Z, H and two-qubit gates
// CX, CZ, SWAP, each a small complex matrix held as plain data.
//
// Two-qubit matrices use big-endian basis order: the first qubit a gate is
// applied to addresses the high bit of the 4x4 row and column indices.
//
// The package performs no unitarity validation; a registered matrix is
// trusted as given.
package gates

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/mixedstate/dmsim/tensor"
)

// Gate is a fixed complex matrix acting on a small number of qubits.
// The matrix is row-major with dimension 2^nqubits per side.
type Gate struct {
	name    string
	nqubits int
	matrix  []complex128
}

// New creates a gate from a row-major matrix.
// Returns an error if the matrix length does not match the qubit count.
func New(name string, nqubits int, matrix []complex128) (*Gate, error) {
	if nqubits < 1 {
		return nil, fmt.Errorf("gate %s: qubit count %d must be at least 1", name, nqubits)
	}
	dim := 1 << nqubits
	if len(matrix) != dim*dim {
		return nil, fmt.Errorf("gate %s: matrix has %d entries, want %d for %d qubits", name, len(matrix), dim*dim, nqubits)
	}
	m := make([]complex128, len(matrix))
	copy(m, matrix)
	return &Gate{name: name, nqubits: nqubits, matrix: m}, nil
}

// Name returns the gate's catalogue name.
func (g *Gate) Name() string {
	return g.name
}

// NQubits returns the number of qubits the gate acts on.
func (g *Gate) NQubits() int {
	return g.nqubits
}

// Dim returns the matrix dimension per side, 2^nqubits.
func (g *Gate) Dim() int {
	return 1 << g.nqubits
}

// Matrix returns the row-major matrix (zero-copy).
//
// WARNING: catalogue gates are shared; callers must not modify the slice.
func (g *Gate) Matrix() []complex128 {
	return g.matrix
}

// Dagger returns the conjugate transpose of the gate.
func (g *Gate) Dagger() *Gate {
	dim := g.Dim()
	m := make([]complex128, dim*dim)
	for i := 0; i < dim; i++ {
		for j := 0; j < dim; j++ {
			m[j*dim+i] = cmplx.Conj(g.matrix[i*dim+j])
		}
	}
	return &Gate{name: g.name + "†", nqubits: g.nqubits, matrix: m}
}

// Tensor returns the matrix reshaped as a rank-2·nqubits tensor with every
// axis of dimension 2: output (row) axes first, then input (column) axes.
func (g *Gate) Tensor() *tensor.Tensor {
	shape := make(tensor.Shape, 2*g.nqubits)
	for i := range shape {
		shape[i] = 2
	}
	t, err := tensor.FromSlice(g.matrix, shape)
	if err != nil {
		panic(fmt.Sprintf("gates: %s matrix does not reshape to %v: %v", g.name, shape, err))
	}
	return t
}

var catalogue = map[string]*Gate{}

func mustRegister(name string, nqubits int, matrix []complex128) *Gate {
	g, err := New(name, nqubits, matrix)
	if err != nil {
		panic(err)
	}
	catalogue[name] = g
	return g
}

// Register adds a gate to the catalogue, replacing any existing entry with
// the same name.
func Register(g *Gate) {
	catalogue[g.name] = g
}

// Lookup returns the catalogue gate with the given name.
func Lookup(name string) (*Gate, bool) {
	g, ok := catalogue[name]
	return g, ok
}

var (
	gateI = mustRegister("I", 1, []complex128{
		1, 0,
		0, 1,
	})
	gateX = mustRegister("X", 1, []complex128{
		0, 1,
		1, 0,
	})
	gateY = mustRegister("Y", 1, []complex128{
		0, -1i,
		1i, 0,
	})
	gateZ = mustRegister("Z", 1, []complex128{
		1, 0,
		0, -1,
	})
	gateH = mustRegister("H", 1, []complex128{
		complex(1/math.Sqrt2, 0), complex(1/math.Sqrt2, 0),
		complex(1/math.Sqrt2, 0), complex(-1/math.Sqrt2, 0),
	})
	gateCX = mustRegister("CX", 2, []complex128{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 0, 1,
		0, 0, 1, 0,
	})
	gateCZ = mustRegister("CZ", 2, []complex128{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, -1,
	})
	gateSWAP = mustRegister("SWAP", 2, []complex128{
		1, 0, 0, 0,
		0, 0, 1, 0,
		0, 1, 0, 0,
		0, 0, 0, 1,
	})
)

// I returns the one-qubit identity gate.
func I() *Gate { return gateI }

// X returns the Pauli-X (bit flip) gate.
func X() *Gate { return gateX }

// Y returns the Pauli-Y gate.
func Y() *Gate { return gateY }

// Z returns the Pauli-Z (phase flip) gate.
func Z() *Gate { return gateZ }

// H returns the Hadamard gate.
func H() *Gate { return gateH }

// CX returns the controlled-X gate; the first applied qubit is the control.
func CX() *Gate { return gateCX }

// CZ returns the controlled-Z gate.
func CZ() *Gate { return gateCZ }

// SWAP returns the two-qubit swap gate.
func SWAP() *Gate { return gateSWAP }
