//go:build amd64 && !noasm

package simd

// init sets the mismatch kernel based on the active ISA.
// This runs after capability_amd64.go init() has detected CPU features
// and selected the active ISA.
func init() {
	switch activeISA {
	case AVX2:
		kernelMismatch = mismatchAVX2Wrapper
	case SSE2:
		kernelMismatch = mismatchSSE2Wrapper
	}
}

// mismatchSSE2Wrapper hands the chunk-aligned part to the SSE2 kernel and
// finishes the tail with the naive scan.
//
// SAFETY: Assumes len(a) == len(b).
func mismatchSSE2Wrapper(a, b []byte) int {
	n := len(a)
	if n < 16 {
		return MismatchNaive(a, b)
	}
	off := mismatchSSE2(&a[0], &b[0], n)
	if off < n&^15 {
		return off
	}
	return off + MismatchNaive(a[off:], b[off:])
}

// mismatchAVX2Wrapper hands the chunk-aligned part to the AVX2 kernel and
// finishes the tail with the naive scan.
//
// SAFETY: Assumes len(a) == len(b).
func mismatchAVX2Wrapper(a, b []byte) int {
	n := len(a)
	if n < 16 {
		return MismatchNaive(a, b)
	}
	off := mismatchAVX2(&a[0], &b[0], n)
	if off < n&^15 {
		return off
	}
	return off + MismatchNaive(a[off:], b[off:])
}
