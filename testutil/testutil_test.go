package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"kitten", "sitting", 3},
		{"flaw", "lawn", 2},
		{"abc", "abc", 0},
		{"abc", "xyz", 3},
		{"intention", "execution", 5},
	}

	for _, tt := range tests {
		t.Run(tt.a+"/"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.want, Levenshtein([]rune(tt.a), []rune(tt.b)))
			assert.Equal(t, tt.want, Levenshtein([]rune(tt.b), []rune(tt.a)))
		})
	}
}

func TestString(t *testing.T) {
	rng := NewRNG(4711)

	s := []rune(rng.String(Alphabet, 64))

	assert.Len(t, s, 64)
	for _, c := range s {
		assert.Contains(t, Alphabet, c)
	}
}

func TestBytes(t *testing.T) {
	rng := NewRNG(4711)

	b := rng.Bytes([]byte("ab"), 32)

	assert.Len(t, b, 32)
	for _, c := range b {
		assert.True(t, c == 'a' || c == 'b')
	}
}

func TestMutate(t *testing.T) {
	rng := NewRNG(4711)

	for i := range 200 {
		edits := i % 8
		s := Pick(rng, Alphabet, rng.Intn(20))
		m := Mutate(rng, s, Alphabet, edits)

		require.LessOrEqual(t, Levenshtein(s, m), edits)
		require.LessOrEqual(t, len(m), len(s)+edits)
		require.GreaterOrEqual(t, len(m), len(s)-edits)
	}
}

func TestMutateDoesNotAlias(t *testing.T) {
	rng := NewRNG(4711)

	s := []byte("abcdef")
	_ = Mutate(rng, s, []byte("xyz"), 10)

	assert.Equal(t, []byte("abcdef"), s)
}

func TestReset(t *testing.T) {
	rng := NewRNG(4711)
	s1 := rng.String(Alphabet, 16)

	rng.Reset()
	s2 := rng.String(Alphabet, 16)

	assert.Equal(t, s1, s2)
	assert.Equal(t, int64(4711), rng.Seed())
}
