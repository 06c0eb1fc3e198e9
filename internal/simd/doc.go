// Package simd provides SIMD-accelerated common-prefix matching over byte
// sequences.
//
// # Supported Platforms
//
//   - x86-64: AVX2 (32-byte chunks), SSE2 (16-byte chunks)
//   - everything else: portable 8-byte word comparison
//
// Runtime CPU feature detection selects the optimal implementation.
// Build with -tags noasm to force the generic Go fallback.
//
// # Operations
//
//   - MismatchBytes: length of the longest common prefix of two byte slices
//
// Every kernel returns exactly what a naive element-by-element scan returns;
// the accelerated paths only change throughput.
package simd
