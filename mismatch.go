package editdistancek

import (
	"reflect"
	"unsafe"

	"github.com/Joshix-1/editdistancek/internal/simd"
)

// MismatchFunc returns the length of the longest common prefix of s and t.
//
// Implementations must return a value n with n <= min(len(s), len(t)) such
// that s[:n] and t[:n] are equal and, if n is smaller than both lengths,
// s[n] and t[n] differ.
type MismatchFunc[T any] func(s, t []T) int

// Mismatch returns the length of the longest common prefix of s and t.
func Mismatch[T comparable](s, t []T) int {
	if isByteKind[T]() {
		return mismatchBytes(s, t)
	}
	return mismatchNaive(s, t)
}

// MismatchFor returns the prefix matcher used for element type T as a
// function value.
//
// Single-byte integer kinds get the SIMD byte matcher. Everything else is
// compared element by element.
func MismatchFor[T comparable]() MismatchFunc[T] {
	if isByteKind[T]() {
		return mismatchBytes[T]
	}
	return mismatchNaive[T]
}

// EqualFunc builds a MismatchFunc from an element equality predicate.
func EqualFunc[T any](eq func(a, b T) bool) MismatchFunc[T] {
	return func(s, t []T) int {
		n := min(len(s), len(t))
		i := 0
		for i < n && eq(s[i], t[i]) {
			i++
		}
		return i
	}
}

// isByteKind reports whether T is a one-byte integer kind. Reflecting on
// *T keeps the check free of allocations for every T.
func isByteKind[T any]() bool {
	switch reflect.TypeOf((*T)(nil)).Elem().Kind() {
	case reflect.Uint8, reflect.Int8:
		return true
	default:
		return false
	}
}

// prefixMatcher is the statically dispatched counterpart of MismatchFunc
// used by the sweep. Implementations are passed by value as a type
// parameter, so selecting one never allocates.
type prefixMatcher[T any] interface {
	mismatch(s, t []T) int
}

type naiveMatcher[T comparable] struct{}

func (naiveMatcher[T]) mismatch(s, t []T) int { return mismatchNaive(s, t) }

// byteMatcher must only be instantiated for one-byte integer kinds.
type byteMatcher[T comparable] struct{}

func (byteMatcher[T]) mismatch(s, t []T) int { return mismatchBytes(s, t) }

type funcMatcher[T any] struct {
	fn MismatchFunc[T]
}

func (m funcMatcher[T]) mismatch(s, t []T) int { return m.fn(s, t) }

func mismatchNaive[T comparable](s, t []T) int {
	n := min(len(s), len(t))
	i := 0
	for i < n && s[i] == t[i] {
		i++
	}
	return i
}

// mismatchBytes must only be instantiated for one-byte integer kinds, whose
// equality is bytewise.
func mismatchBytes[T comparable](s, t []T) int {
	return simd.MismatchBytes(asBytes(s), asBytes(t))
}

func asBytes[T any](s []T) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(s))), len(s))
}
