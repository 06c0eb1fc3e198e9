//go:build !noasm && amd64

package simd

// mismatchSSE2 compares 16-byte chunks of a and b. It returns the offset of
// the first differing byte, or n&^15 if every full chunk is equal.
//
//go:noescape
func mismatchSSE2(a, b *byte, n int) int

// mismatchAVX2 compares 32-byte chunks of a and b, followed by at most one
// 16-byte chunk. It returns the offset of the first differing byte, or n&^15
// if every full chunk is equal.
//
//go:noescape
func mismatchAVX2(a, b *byte, n int) int
