package simd

import (
	"os"
	"strings"
)

// ISA represents a SIMD instruction set architecture.
type ISA uint8

const (
	// Generic represents pure Go implementation (no SIMD).
	Generic ISA = iota
	// SSE2 represents x86-64 SSE2 (128-bit SIMD, baseline on amd64).
	SSE2
	// AVX2 represents x86-64 AVX2 (256-bit SIMD).
	AVX2
)

// String returns the string representation of an ISA.
func (i ISA) String() string {
	switch i {
	case Generic:
		return "generic"
	case SSE2:
		return "sse2"
	case AVX2:
		return "avx2"
	default:
		return "unknown"
	}
}

// ParseISA parses a string into an ISA value.
func ParseISA(s string) (ISA, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "generic":
		return Generic, true
	case "sse2":
		return SSE2, true
	case "avx2":
		return AVX2, true
	default:
		return Generic, false
	}
}

// EnvOverride names the environment variable that pins the active ISA.
const EnvOverride = "EDITDISTANCEK_SIMD"

// Package-level state - initialized once at package init.
// No mutex needed: Go guarantees init() runs before any other code.
var (
	// activeISA is the selected SIMD implementation.
	activeISA ISA

	// hasOverride is true if EDITDISTANCEK_SIMD was set to a usable ISA.
	hasOverride bool

	// CPU feature flags (set by platform-specific init)
	hasSSE2 bool // x86-64 SSE2
	hasAVX2 bool // x86-64 AVX2
)

// initCapabilities is called from platform-specific init functions
// after CPU features are detected.
func initCapabilities() {
	if override := os.Getenv(EnvOverride); override != "" {
		if isa, ok := ParseISA(override); ok && isISAAvailable(isa) {
			hasOverride = true
			activeISA = isa
			return
		}
		// Unknown or unsupported override - fall through to auto-detection
	}

	activeISA = selectBestISA()
}

// isISAAvailable checks if an ISA is supported on this CPU.
func isISAAvailable(isa ISA) bool {
	switch isa {
	case Generic:
		return true
	case SSE2:
		return hasSSE2
	case AVX2:
		return hasAVX2
	default:
		return false
	}
}

// selectBestISA chooses the widest ISA the CPU supports.
func selectBestISA() ISA {
	if hasAVX2 {
		return AVX2
	}
	if hasSSE2 {
		return SSE2
	}
	return Generic
}

// ActiveISA returns the currently active ISA.
func ActiveISA() ISA {
	return activeISA
}

// IsOverridden returns true if EDITDISTANCEK_SIMD selected the active ISA.
func IsOverridden() bool {
	return hasOverride
}

// HasSSE2 returns true if x86-64 SSE2 kernels are available.
func HasSSE2() bool {
	return hasSSE2
}

// HasAVX2 returns true if x86-64 AVX2 kernels are available.
func HasAVX2() bool {
	return hasAVX2
}
