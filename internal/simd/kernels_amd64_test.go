//go:build amd64 && !noasm

package simd

// mismatchKernels returns every mismatch kernel this CPU can execute,
// regardless of which one is active.
func mismatchKernels() map[ISA]func(a, b []byte) int {
	kernels := map[ISA]func(a, b []byte) int{
		Generic: mismatchGeneric,
	}
	if hasSSE2 {
		kernels[SSE2] = mismatchSSE2Wrapper
	}
	if hasAVX2 {
		kernels[AVX2] = mismatchAVX2Wrapper
	}
	return kernels
}
