package editdistancek

import "unicode/utf8"

// DistanceString returns the edit distance between s and t counted in
// Unicode code points.
func DistanceString(s, t string) int {
	if isASCII(s) && isASCII(t) {
		return Distance([]byte(s), []byte(t))
	}
	return Distance([]rune(s), []rune(t))
}

// DistanceStringBounded is the code-point version of DistanceBounded.
func DistanceStringBounded(s, t string, k int) (int, bool) {
	if isASCII(s) && isASCII(t) {
		return DistanceBounded([]byte(s), []byte(t), k)
	}
	return DistanceBounded([]rune(s), []rune(t), k)
}

// isASCII reports whether every rune of s is a single byte, in which case
// byte and code-point distances coincide.
func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
