// Package bitops converts between flat matrix indices and their big-endian
// bit-vector decompositions. The density-matrix package relies on these
// conversions to reshape a flat size×size matrix into a multi-axis tensor
// with one axis per qubit.
package bitops

import "fmt"

// IndexToBits decomposes index into nbits big-endian bits (most significant
// bit first). Panics if index is negative or does not fit in nbits bits.
func IndexToBits(index, nbits int) []int {
	if index < 0 || index >= 1<<nbits {
		panic(fmt.Sprintf("bitops: index %d does not fit in %d bits", index, nbits))
	}
	bits := make([]int, nbits)
	for i := nbits - 1; i >= 0; i-- {
		bits[i] = index & 1
		index >>= 1
	}
	return bits
}

// BitsToIndex recomposes a big-endian bit vector into a flat index.
// It is the inverse of IndexToBits for matching bit widths.
func BitsToIndex(bits []int) int {
	index := 0
	for _, b := range bits {
		index = index<<1 | (b & 1)
	}
	return index
}
