// Package editdistancek computes the Levenshtein edit distance between two
// sequences, optionally bounded by a maximum distance k.
//
// The bounded search sweeps diagonals of the edit graph and only visits the
// band that can still finish within k edits, so the running time is
// O(k × max(len(s), len(t))) rather than O(len(s) × len(t)). Runs of equal
// elements along a diagonal are skipped with a single prefix match.
//
// # Quick Start
//
//	d := editdistancek.Distance([]byte("kitten"), []byte("sitting")) // 3
//
//	if d, ok := editdistancek.DistanceBounded(a, b, 2); ok {
//	    fmt.Println("within two edits:", d)
//	}
//
//	d = editdistancek.DistanceString("straße", "strasse") // rune-wise: 2
//
// # Element Types
//
// Any comparable element type works. Slices of single-byte integers
// (byte, uint8, int8 and named types over them) are matched with the SIMD
// kernels from internal/simd:
//
//   - x86-64: AVX2 (32 bytes per step) or SSE2 (16 bytes per step)
//   - other platforms, or -tags noasm: 8-byte word comparison
//
// Custom equality is available through DistanceFunc and DistanceBoundedFunc
// together with EqualFunc.
//
// # Bounded Results
//
// DistanceBounded reports ok == false when the distance is known to be
// greater than k. That is a normal outcome, not an error.
package editdistancek
