// Package fingerprint defines the named binary vectors that the store and
// index layers work with. A fingerprint is any fixed-width bit pattern
// compared by bitwise Hamming distance: a simhash, a perceptual hash, a
// node ID.
package fingerprint

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/soleret/hamming"
)

// ErrEmptyName is returned when a fingerprint is created without a name.
var ErrEmptyName = errors.New("fingerprint name is empty")

// ErrEmptyVector is returned when a fingerprint is created without vector bytes.
var ErrEmptyVector = errors.New("fingerprint vector is empty")

// Fingerprint is a named binary vector.
type Fingerprint struct {
	Name   string `json:"name"`
	Vector []byte `json:"vector"`
}

// New returns a validated fingerprint. The name must be non-empty and the
// vector must contain at least one byte. The vector is copied so later
// mutation of the argument cannot change the fingerprint.
func New(name string, vector []byte) (Fingerprint, error) {
	if name == "" {
		return Fingerprint{}, ErrEmptyName
	}
	if len(vector) == 0 {
		return Fingerprint{}, ErrEmptyVector
	}

	cpy := make([]byte, len(vector))
	copy(cpy, vector)
	return Fingerprint{Name: name, Vector: cpy}, nil
}

// DecodeVector parses a hex-encoded vector, the wire and CLI encoding for
// fingerprints.
func DecodeVector(s string) ([]byte, error) {
	if s == "" {
		return nil, ErrEmptyVector
	}
	vector, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("decode vector: %w", err)
	}
	return vector, nil
}

// Hex returns the vector hex-encoded.
func (f Fingerprint) Hex() string {
	return hex.EncodeToString(f.Vector)
}

// DistanceTo returns the bitwise Hamming distance to another fingerprint.
// Fingerprints of different widths are not comparable and yield the
// library's length mismatch error.
func (f Fingerprint) DistanceTo(other Fingerprint) (int, error) {
	return hamming.Bytes(f.Vector, other.Vector)
}
