package editdistancek

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Joshix-1/editdistancek/testutil"
)

func TestMismatch(t *testing.T) {
	forty := bytes.Repeat([]byte{7}, 40)

	assert.Equal(t, 2, Mismatch([]byte{1, 2, 3, 4}, []byte{1, 2, 9, 4}))
	assert.Equal(t, 2, Mismatch([]int8{1, 2, 3, 4}, []int8{1, 2, 9, 4}))
	assert.Equal(t, 2, Mismatch([]int{1, 2, 3, 4}, []int{1, 2, 9, 4}))
	assert.Equal(t, 0, Mismatch([]byte{}, []byte{}))
	assert.Equal(t, 0, Mismatch[rune](nil, nil))
	assert.Equal(t, 40, Mismatch(forty, bytes.Clone(forty)))
	assert.Equal(t, 3, Mismatch([]rune("abc"), []rune("abcdef")))
	assert.Equal(t, 3, Mismatch([]rune("abcdef"), []rune("abc")))
}

func TestMismatchStrategiesAgree(t *testing.T) {
	rng := testutil.NewRNG(99)
	alphabet := []byte{0x00, 0x7f, 0x80, 0xff}

	for i := range 1000 {
		a := rng.Bytes(alphabet, rng.Intn(200))
		b := testutil.Mutate(rng, a, alphabet, rng.Intn(3))

		want := mismatchNaive(a, b)
		require.Equal(t, want, Mismatch(a, b), "iteration %d", i)
		require.Equal(t, want, mismatchBytes(a, b), "iteration %d", i)

		sa := make([]int8, len(a))
		for j, c := range a {
			sa[j] = int8(c)
		}
		sb := make([]int8, len(b))
		for j, c := range b {
			sb[j] = int8(c)
		}
		require.Equal(t, want, Mismatch(sa, sb), "iteration %d", i)
		require.Equal(t, want, mismatchNaive(sa, sb), "iteration %d", i)
	}
}

func TestIsByteKind(t *testing.T) {
	type point struct{ x, y int8 }

	assert.True(t, isByteKind[byte]())
	assert.True(t, isByteKind[int8]())
	assert.True(t, isByteKind[myByte]())
	assert.False(t, isByteKind[rune]())
	assert.False(t, isByteKind[bool]())
	assert.False(t, isByteKind[string]())
	assert.False(t, isByteKind[point]())
	assert.False(t, isByteKind[any]())
}

func TestMatchersAgree(t *testing.T) {
	rng := testutil.NewRNG(5)
	alphabet := []byte("ab")

	for i := range 500 {
		a := rng.Bytes(alphabet, rng.Intn(80))
		b := testutil.Mutate(rng, a, alphabet, rng.Intn(3))

		want := mismatchNaive(a, b)
		require.Equal(t, want, naiveMatcher[byte]{}.mismatch(a, b), "iteration %d", i)
		require.Equal(t, want, byteMatcher[byte]{}.mismatch(a, b), "iteration %d", i)
		require.Equal(t, want, funcMatcher[byte]{fn: MismatchFor[byte]()}.mismatch(a, b), "iteration %d", i)

		// Every matcher drives the sweep to the same distance.
		d := testutil.Levenshtein(a, b)
		got, ok := distanceBounded(a, b, d, naiveMatcher[byte]{})
		require.True(t, ok)
		require.Equal(t, d, got)
		got, ok = distanceBounded(a, b, d, byteMatcher[byte]{})
		require.True(t, ok)
		require.Equal(t, d, got)
	}
}

func TestEqualFunc(t *testing.T) {
	same := EqualFunc(func(a, b int) bool { return a == b })
	parity := EqualFunc(func(a, b int) bool { return a%2 == b%2 })

	assert.Equal(t, 2, same([]int{1, 2, 3}, []int{1, 2, 4}))
	assert.Equal(t, 3, parity([]int{1, 2, 3}, []int{1, 2, 5}))
	assert.Equal(t, 0, parity(nil, []int{1}))
}

func TestAsBytes(t *testing.T) {
	assert.Nil(t, asBytes([]int8{}))
	assert.Equal(t, []byte{0xff, 0x01}, asBytes([]int8{-1, 1}))
	assert.Equal(t, []byte("ab"), asBytes([]myByte("ab")))
}
