// Package testutil provides testing utilities for editdistancek.
//
// This package is intended for use in tests, benchmarks and the cross-check
// harness only. It provides helpers for generating random sequences and a
// reference edit distance to verify results against.
//
// # Random Sequence Generation
//
//	rng := testutil.NewRNG(seed)
//	s := rng.String(testutil.Alphabet, 50)
//	t := testutil.Mutate(rng, []rune(s), testutil.Alphabet, 3)
//
// # Ground Truth
//
//	d := testutil.Levenshtein(a, b) // full O(len(a) × len(b)) table
package testutil
