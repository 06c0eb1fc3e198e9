package simd

import (
	"encoding/binary"
	"math/bits"
)

// Kernel function pointer - set once at init, zero runtime overhead.
// The generic implementation is the default; platform-specific init()
// functions override it with SIMD versions when available.
var kernelMismatch = mismatchGeneric

// MismatchBytes returns the length of the longest common prefix of a and b.
//
// The result is never larger than min(len(a), len(b)) and is identical to
// what MismatchNaive returns for the same input.
func MismatchBytes(a, b []byte) int {
	n := min(len(a), len(b))
	return kernelMismatch(a[:n], b[:n])
}

// MismatchNaive compares a and b element by element and returns the number
// of leading positions at which they agree.
func MismatchNaive(a, b []byte) int {
	n := min(len(a), len(b))
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	return i
}

// mismatchGeneric compares eight bytes at a time. The lowest differing bit of
// the little-endian XOR locates the first differing byte.
//
// SAFETY: Assumes len(a) == len(b).
func mismatchGeneric(a, b []byte) (n int) {
	for ; len(a) >= 8; a, b = a[8:], b[8:] {
		diff := binary.LittleEndian.Uint64(a) ^ binary.LittleEndian.Uint64(b)
		if diff != 0 {
			return n + bits.TrailingZeros64(diff)>>3
		}
		n += 8
	}
	return n + MismatchNaive(a, b)
}
