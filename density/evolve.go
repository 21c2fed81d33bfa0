package density

import (
	"fmt"

	"github.com/mixedstate/dmsim/gates"
)

// EvolveSingle applies a one-qubit gate to the target qubit, replacing the
// state with U ρ U†. Panics if target is out of range or the gate does not
// act on exactly one qubit.
//
// The state tensor is contracted with the gate on the target's row axis,
// then with the gate's conjugate transpose on the target's column axis, and
// the two fresh axes are moved back to the target's canonical positions.
func (dm *DensityMatrix) EvolveSingle(g *gates.Gate, target int) {
	if g.NQubits() != 1 {
		panic(fmt.Sprintf("density: gate %s acts on %d qubits, want 1", g.Name(), g.NQubits()))
	}
	if target < 0 || target >= dm.nqubits {
		panic(fmt.Sprintf("density: target qubit %d out of range for %d-qubit register", target, dm.nqubits))
	}

	// U's output axis lands at position 0; the column axis of the target
	// keeps absolute position target+nqubits because exactly one earlier
	// axis was consumed and one prepended.
	rho := g.Tensor().Tensordot(dm.toTensor(), []int{1}, []int{target})
	rho = rho.Tensordot(g.Dagger().Tensor(), []int{target + dm.nqubits}, []int{0})
	rho = rho.Moveaxis(
		[]int{0, 2*dm.nqubits - 1},
		[]int{target, target + dm.nqubits},
	)
	dm.fromTensor(rho)
}

// Evolve applies a k-qubit gate to the qubits named by indices, replacing
// the state with U ρ U†. indices[i] pairs with the gate's i-th axis on both
// the input and output side. Panics if any index is out of range or
// duplicated, or if the gate arity does not match len(indices).
func (dm *DensityMatrix) Evolve(g *gates.Gate, indices []int) {
	k := g.NQubits()
	if len(indices) != k {
		panic(fmt.Sprintf("density: gate %s acts on %d qubits, got %d indices", g.Name(), k, len(indices)))
	}
	seen := make(map[int]bool, k)
	for _, q := range indices {
		if q < 0 || q >= dm.nqubits {
			panic(fmt.Sprintf("density: qubit index %d out of range for %d-qubit register", q, dm.nqubits))
		}
		if seen[q] {
			panic(fmt.Sprintf("density: duplicate qubit index %d", q))
		}
		seen[q] = true
	}

	// Contract the gate's input axes (k..2k) against the row axes of the
	// addressed qubits; the gate's output axes land at positions 0..k.
	opIn := make([]int, k)
	for i := range opIn {
		opIn[i] = k + i
	}
	rho := g.Tensor().Tensordot(dm.toTensor(), opIn, indices)

	// The column axes of the addressed qubits keep absolute positions
	// indices[i]+nqubits: the k consumed row axes all precede them and the
	// k prepended gate axes compensate. Contract them against the adjoint's
	// input side; the adjoint's output axes are appended at the back.
	colAxes := make([]int, k)
	dagIn := make([]int, k)
	for i, q := range indices {
		colAxes[i] = q + dm.nqubits
		dagIn[i] = i
	}
	rho = rho.Tensordot(g.Dagger().Tensor(), colAxes, dagIn)

	src, dst := restoreAxes(dm.nqubits, indices)
	dm.fromTensor(rho.Moveaxis(src, dst))
}

// restoreAxes computes the moveaxis descriptors that return an evolved state
// tensor to canonical row/column order: the k gate-output axes at the front
// go to the row positions of the addressed qubits, and the k adjoint-output
// axes at the back go to the matching column positions, nqubits higher.
func restoreAxes(nqubits int, indices []int) (src, dst []int) {
	k := len(indices)
	rank := 2 * nqubits
	src = make([]int, 0, 2*k)
	dst = make([]int, 0, 2*k)
	for i, q := range indices {
		src = append(src, i)
		dst = append(dst, q)
	}
	for i, q := range indices {
		src = append(src, rank-k+i)
		dst = append(dst, q+nqubits)
	}
	return src, dst
}
