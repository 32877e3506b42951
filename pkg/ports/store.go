package ports

import (
	"context"
	"errors"

	"github.com/soleret/hamming/pkg/fingerprint"
)

// ErrNotFound is returned when a fingerprint name cannot be found in the store.
var ErrNotFound = errors.New("fingerprint not found")

// Store defines the interface for persisting named fingerprints.
// Implementations must be safe for concurrent use.
type Store interface {
	// Save persists the fingerprint under its name, replacing any previous
	// fingerprint with the same name.
	Save(ctx context.Context, fp fingerprint.Fingerprint) error

	// Load retrieves the fingerprint stored under name.
	// Returns ErrNotFound if the name does not exist.
	Load(ctx context.Context, name string) (fingerprint.Fingerprint, error)

	// Delete removes the fingerprint stored under name. Deleting a name
	// that does not exist is not an error.
	Delete(ctx context.Context, name string) error

	// List returns every stored fingerprint. Order is unspecified.
	List(ctx context.Context) ([]fingerprint.Fingerprint, error)
}
