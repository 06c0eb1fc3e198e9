//go:build amd64 && !noasm

package simd

import "golang.org/x/sys/cpu"

func init() {
	hasSSE2 = cpu.X86.HasSSE2
	hasAVX2 = cpu.X86.HasAVX2
	initCapabilities()
}
