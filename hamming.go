package hamming

// Distance returns the element-wise Hamming distance between two slices:
// the number of index positions at which the elements differ. The slices
// must have equal length; otherwise Distance returns a LengthMismatchError.
//
// The element type only needs to support the == operator. The result is
// bounded by len(a).
func Distance[T comparable](a, b []T) (int, error) {
	if len(a) != len(b) {
		return 0, lengthMismatch(len(a), len(b))
	}

	distance := 0
	for i := range a {
		if a[i] != b[i] {
			distance++
		}
	}
	return distance, nil
}

// Strings returns the Hamming distance between two strings compared as
// sequences of runes (Unicode code points), not bytes. Length equality is
// checked in runes too, so strings with equal rune counts but different
// byte counts are still comparable. Invalid UTF-8 sequences decode to
// U+FFFD following Go's conversion rules; no normalization is applied.
func Strings(a, b string) (int, error) {
	return Distance([]rune(a), []rune(b))
}
