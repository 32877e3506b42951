package hamming

import (
	"errors"
	"fmt"
)

// ErrLengthMismatch is returned when the two inputs being compared do not
// have equal length. Hamming distance is only defined between inputs of
// identical length, so there is no partial result to report.
var ErrLengthMismatch = errors.New("inputs do not have equal length")

// LengthMismatchError is the concrete error returned by the distance
// functions. It carries the two observed lengths for diagnostics and
// matches ErrLengthMismatch under errors.Is.
type LengthMismatchError struct {
	LenA int
	LenB int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("inputs do not have equal length: %d != %d", e.LenA, e.LenB)
}

// Is reports whether target is ErrLengthMismatch, so callers can test the
// error kind without caring about the recorded lengths.
func (e *LengthMismatchError) Is(target error) bool {
	return target == ErrLengthMismatch
}

func lengthMismatch(lenA, lenB int) error {
	return &LengthMismatchError{LenA: lenA, LenB: lenB}
}
