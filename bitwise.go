package hamming

import "math/bits"

// Byte returns the bitwise Hamming distance between two bytes: the number
// of bit positions at which a and b differ. It is the population count of
// a XOR b, so the result is always between 0 and 8 inclusive.
func Byte(a, b byte) int {
	return bits.OnesCount8(a ^ b)
}

// Bytes returns the bitwise Hamming distance between two byte slices: the
// total number of differing bits, summed position-wise over the whole
// length. The slices must have equal length; otherwise Bytes returns a
// LengthMismatchError. Two empty (or nil) slices have distance 0.
//
// The result is bounded by 8*len(a).
func Bytes(a, b []byte) (int, error) {
	if len(a) != len(b) {
		return 0, lengthMismatch(len(a), len(b))
	}

	distance := 0
	for i := range a {
		distance += Byte(a[i], b[i])
	}
	return distance, nil
}
