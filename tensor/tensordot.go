package tensor

import (
	"fmt"

	"github.com/mixedstate/dmsim/internal/parallel"
)

// Tensordot contracts the axes of t named in axesA against the
// correspondingly ordered axes of other named in axesB: each output element
// is the sum over the paired contracted axes of the element-wise product.
// This generalizes matrix multiplication to arbitrary rank.
//
// The result's axes are the non-contracted axes of t in their original
// relative order, followed by the non-contracted axes of other in their
// original relative order.
//
// Panics if the axis lists differ in length, name an axis out of range or
// more than once, or pair axes of different dimension.
func (t *Tensor) Tensordot(other *Tensor, axesA, axesB []int) *Tensor {
	if len(axesA) != len(axesB) {
		panic(fmt.Sprintf("tensordot: %d axes against %d axes", len(axesA), len(axesB)))
	}
	checkAxes("tensordot", axesA, t.Rank())
	checkAxes("tensordot", axesB, other.Rank())
	for i := range axesA {
		da, db := t.shape[axesA[i]], other.shape[axesB[i]]
		if da != db {
			panic(fmt.Sprintf("tensordot: axis %d (size %d) contracted against axis %d (size %d)",
				axesA[i], da, axesB[i], db))
		}
	}

	freeA := freeAxes(t.Rank(), axesA)
	freeB := freeAxes(other.Rank(), axesB)

	shape := make(Shape, 0, len(freeA)+len(freeB))
	for _, ax := range freeA {
		shape = append(shape, t.shape[ax])
	}
	for _, ax := range freeB {
		shape = append(shape, other.shape[ax])
	}

	// Precomputed flat offsets for every point of the free and contracted
	// index spaces turn the triple loop below into plain table lookups.
	stridesA := t.shape.ComputeStrides()
	stridesB := other.shape.ComputeStrides()
	outerA := offsetTable(t.shape, stridesA, freeA)
	innerA := offsetTable(t.shape, stridesA, axesA)
	outerB := offsetTable(other.shape, stridesB, freeB)
	innerB := offsetTable(other.shape, stridesB, axesB)

	result := New(shape)
	nB := len(outerB)
	parallel.For(len(result.data), par, func(r int) {
		i, j := r/nB, r%nB
		var sum complex128
		for k := range innerA {
			sum += t.data[outerA[i]+innerA[k]] * other.data[outerB[j]+innerB[k]]
		}
		result.data[r] = sum
	})
	return result
}

// checkAxes panics if any axis is out of [0, rank) or listed twice.
func checkAxes(op string, axes []int, rank int) {
	seen := make(map[int]bool, len(axes))
	for _, ax := range axes {
		if ax < 0 || ax >= rank {
			panic(fmt.Sprintf("%s: axis %d out of range [0, %d)", op, ax, rank))
		}
		if seen[ax] {
			panic(fmt.Sprintf("%s: axis %d listed more than once", op, ax))
		}
		seen[ax] = true
	}
}

// freeAxes returns the axes of a rank-n tensor not named in used,
// in ascending order.
func freeAxes(rank int, used []int) []int {
	isUsed := make([]bool, rank)
	for _, ax := range used {
		isUsed[ax] = true
	}
	free := make([]int, 0, rank-len(used))
	for ax := 0; ax < rank; ax++ {
		if !isUsed[ax] {
			free = append(free, ax)
		}
	}
	return free
}

// offsetTable enumerates the flat offsets of every point in the mixed-radix
// index space spanned by the given axes, last axis fastest.
func offsetTable(shape Shape, strides []int, axes []int) []int {
	n := 1
	for _, ax := range axes {
		n *= shape[ax]
	}

	offsets := make([]int, n)
	idx := make([]int, len(axes))
	for f := 0; f < n; f++ {
		off := 0
		for d, ax := range axes {
			off += idx[d] * strides[ax]
		}
		offsets[f] = off

		for d := len(axes) - 1; d >= 0; d-- {
			idx[d]++
			if idx[d] < shape[axes[d]] {
				break
			}
			idx[d] = 0
		}
	}
	return offsets
}
