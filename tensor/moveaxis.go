package tensor

import (
	"fmt"
	"sort"

	"github.com/mixedstate/dmsim/internal/parallel"
)

// Moveaxis returns a tensor with the same data reinterpreted under a new
// axis order: the axis currently at src[i] is relocated to position dst[i].
// Axes not mentioned keep their relative order among themselves, sliding to
// fill the remaining positions.
//
// Panics if the position lists differ in length or name a position out of
// range or more than once.
func (t *Tensor) Moveaxis(src, dst []int) *Tensor {
	if len(src) != len(dst) {
		panic(fmt.Sprintf("moveaxis: %d source positions against %d destinations", len(src), len(dst)))
	}
	rank := t.Rank()
	checkAxes("moveaxis", src, rank)
	checkAxes("moveaxis", dst, rank)

	// order[i] is the current axis that lands at position i: start from the
	// unmoved axes in their relative order, then splice each moved axis into
	// its destination slot, lowest destination first.
	order := freeAxes(rank, src)
	moves := make([][2]int, len(src))
	for i := range src {
		moves[i] = [2]int{dst[i], src[i]}
	}
	sort.Slice(moves, func(i, j int) bool { return moves[i][0] < moves[j][0] })
	for _, m := range moves {
		order = append(order, 0)
		copy(order[m[0]+1:], order[m[0]:])
		order[m[0]] = m[1]
	}

	newShape := make(Shape, rank)
	for i, ax := range order {
		newShape[i] = t.shape[ax]
	}

	result := New(newShape)
	oldStrides := t.shape.ComputeStrides()
	parallel.For(len(result.data), par, func(i int) {
		// Decode i into a multi-index over newShape and accumulate the
		// source offset in one pass, last axis fastest.
		oldFlat := 0
		tmp := i
		for j := rank - 1; j >= 0; j-- {
			oldFlat += (tmp % newShape[j]) * oldStrides[order[j]]
			tmp /= newShape[j]
		}
		result.data[i] = t.data[oldFlat]
	})
	return result
}
