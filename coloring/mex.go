package coloring

import "math/bits"

// colorSet is a growable bit-vector over colors: bit c-1 set means color c
// is forbidden. Forbidden sets are small contiguous ranges in practice, so
// a word-wise first-zero-bit scan realizes the minimum-excludant rule
// without arbitrary-precision arithmetic.
type colorSet []uint64

const wordBits = 64

// mark records color c (c >= 1) as forbidden, growing as needed.
func (s *colorSet) mark(c int) {
	idx := (c - 1) / wordBits
	for len(*s) <= idx {
		*s = append(*s, 0)
	}
	(*s)[idx] |= 1 << uint((c-1)%wordBits)
}

// smallestFree returns the minimum positive integer whose bit is clear:
// the smallest color not in the forbidden set. An empty set yields 1.
func (s colorSet) smallestFree() int {
	for i, word := range s {
		if word != ^uint64(0) {
			return i*wordBits + bits.TrailingZeros64(^word) + 1
		}
	}
	return len(s)*wordBits + 1
}
