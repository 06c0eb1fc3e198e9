package editdistancek

// unreached marks a diagonal that no edit sequence has touched yet.
// unreached+1 == 0, so an untouched neighbour never wins the max in the
// recurrence and the band edges need no special case.
const unreached = -1

// Distance returns the edit distance between s and t.
func Distance[T comparable](s, t []T) int {
	// max(len(s), len(t)) substitutions and insertions always suffice.
	d, _ := DistanceBounded(s, t, max(len(s), len(t)))
	return d
}

// DistanceBounded returns the edit distance d between s and t and true if
// d <= k. Otherwise it returns 0 and false.
func DistanceBounded[T comparable](s, t []T, k int) (int, bool) {
	if !withinLengthBound(len(s), len(t), k) {
		return 0, false
	}
	if isByteKind[T]() {
		return distanceBounded(s, t, k, byteMatcher[T]{})
	}
	return distanceBounded(s, t, k, naiveMatcher[T]{})
}

// DistanceFunc is like Distance but compares elements with mismatch.
func DistanceFunc[T any](s, t []T, mismatch MismatchFunc[T]) int {
	d, _ := DistanceBoundedFunc(s, t, max(len(s), len(t)), mismatch)
	return d
}

// DistanceBoundedFunc is like DistanceBounded but compares elements with
// mismatch.
func DistanceBoundedFunc[T any](s, t []T, k int, mismatch MismatchFunc[T]) (int, bool) {
	if !withinLengthBound(len(s), len(t), k) {
		return 0, false
	}
	return distanceBounded(s, t, k, funcMatcher[T]{fn: mismatch})
}

// withinLengthBound reports whether k is non-negative and covers the length
// difference. Every unit of length difference costs at least one edit.
func withinLengthBound(sLen, tLen, k int) bool {
	return k >= 0 && max(sLen, tLen)-min(sLen, tLen) <= k
}

// distanceBounded runs the banded diagonal sweep. The caller has checked
// withinLengthBound.
func distanceBounded[T any, M prefixMatcher[T]](s, t []T, k int, m M) (int, bool) {
	if len(s) > len(t) {
		s, t = t, s
	}
	sLen, tLen := len(s), len(t)
	diff := tLen - sLen
	k = min(k, tLen)

	// Diagonal i holds positions (x, x+i-shift): x indexes s, x+i-shift
	// indexes t. The main diagonal is i == shift.
	shift := k + 1
	width := 2*k + 3

	frontier := make([]int, 2*width)
	for i := range frontier {
		frontier[i] = unreached
	}
	fa, fb := frontier[:width], frontier[width:]

	target := tLen - sLen + shift

	for h := 0; h <= k; h++ {
		// prev holds the frontier for h-1 edits, cur receives h.
		prev, cur := fb, fa
		if h&1 == 1 {
			prev, cur = fa, fb
		}

		p := shift - min(1+(k-diff)/2, h)
		q := shift + min(1+k/2+diff, h)

		for i := p; i <= q; i++ {
			// delete, substitute, insert
			r := max(prev[i-1], prev[i]+1, prev[i+1]+1)

			if j := r + i - shift; r < sLen && j < tLen {
				r += m.mismatch(s[r:], t[j:])
			}
			cur[i] = r

			if i == target && r >= sLen {
				return h, true
			}
		}
	}

	return 0, false
}
