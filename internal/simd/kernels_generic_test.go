//go:build !amd64 || noasm

package simd

func mismatchKernels() map[ISA]func(a, b []byte) int {
	return map[ISA]func(a, b []byte) int{
		Generic: mismatchGeneric,
	}
}
