package testutil

import (
	"math/rand"
	"sync"
)

// Alphabet mixes one-, two-, three- and four-byte UTF-8 code points so that
// rune-wise and byte-wise distances differ.
var Alphabet = []rune(
	"0123456789abcdefABCDEF" +
		"𓅳𓆜𓆾𓇆𓆦𓆗𓆣𓆁𓅰" +
		"ৄ৬ਊઊଳஜ௫ಙೱൔ" +
		"§¼ƝɸʬЖ¥©¶±" +
		"äöüß",
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// String returns n code points drawn uniformly from alphabet.
func (r *RNG) String(alphabet []rune, n int) string {
	return string(Pick(r, alphabet, n))
}

// Bytes returns n bytes drawn uniformly from alphabet.
func (r *RNG) Bytes(alphabet []byte, n int) []byte {
	return Pick(r, alphabet, n)
}

// Pick returns n elements drawn uniformly from alphabet.
// Locks only once per call.
func Pick[T any](r *RNG, alphabet []T, n int) []T {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]T, n)
	for i := range out {
		out[i] = alphabet[r.rand.Intn(len(alphabet))]
	}
	return out
}

// Mutate returns a copy of s with the given number of random single-element
// edits applied (insert, delete or substitute, drawn from alphabet).
// The edit distance between s and the result is at most edits.
func Mutate[T any](r *RNG, s []T, alphabet []T, edits int) []T {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := append([]T(nil), s...)
	for range edits {
		op := r.rand.Intn(3)
		if len(out) == 0 {
			op = 0
		}

		switch op {
		case 0: // insert
			pos := r.rand.Intn(len(out) + 1)
			v := alphabet[r.rand.Intn(len(alphabet))]
			out = append(out, v)
			copy(out[pos+1:], out[pos:])
			out[pos] = v
		case 1: // delete
			pos := r.rand.Intn(len(out))
			out = append(out[:pos], out[pos+1:]...)
		default: // substitute
			out[r.rand.Intn(len(out))] = alphabet[r.rand.Intn(len(alphabet))]
		}
	}

	return out
}

// Levenshtein computes the edit distance between a and b with the full
// Wagner-Fischer table, keeping two rows.
func Levenshtein[T comparable](a, b []T) int {
	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		cur[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			cur[j] = min(prev[j]+1, cur[j-1]+1, prev[j-1]+cost)
		}
		prev, cur = cur, prev
	}

	return prev[len(b)]
}
