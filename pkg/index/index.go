// Package index provides linear-scan nearest-fingerprint search over
// a ports.Store.
package index

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/soleret/hamming"
	"github.com/soleret/hamming/pkg/fingerprint"
	"github.com/soleret/hamming/pkg/ports"
)

// Match is a single search hit.
type Match struct {
	Name     string `json:"name"`
	Distance int    `json:"distance"`
}

// Result is the outcome of a search over the store.
type Result struct {
	Matches []Match `json:"matches"`
	// Scanned counts the fingerprints examined.
	Scanned int `json:"scanned"`
	// Skipped counts stored fingerprints whose width differs from the
	// probe. They carry no distance and never match.
	Skipped int `json:"skipped"`
}

// Index searches fingerprints persisted in a ports.Store.
type Index struct {
	store ports.Store
}

// New creates an Index over the given store.
func New(store ports.Store) *Index {
	return &Index{store: store}
}

// Add validates and persists a fingerprint.
func (ix *Index) Add(ctx context.Context, name string, vector []byte) error {
	fp, err := fingerprint.New(name, vector)
	if err != nil {
		return err
	}
	if err := ix.store.Save(ctx, fp); err != nil {
		return fmt.Errorf("failed to save fingerprint: %w", err)
	}
	return nil
}

// Get loads a fingerprint by name.
func (ix *Index) Get(ctx context.Context, name string) (fingerprint.Fingerprint, error) {
	return ix.store.Load(ctx, name)
}

// Remove deletes a fingerprint by name.
func (ix *Index) Remove(ctx context.Context, name string) error {
	return ix.store.Delete(ctx, name)
}

// All returns every stored fingerprint.
func (ix *Index) All(ctx context.Context) ([]fingerprint.Fingerprint, error) {
	return ix.store.List(ctx)
}

// Search scans every stored fingerprint and returns those nearest to
// the probe by bitwise Hamming distance. Matches are ordered by
// distance, ties broken by name. A limit <= 0 returns all matches.
func (ix *Index) Search(ctx context.Context, probe []byte, limit int) (Result, error) {
	if len(probe) == 0 {
		return Result{}, fingerprint.ErrEmptyVector
	}

	stored, err := ix.store.List(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("failed to list fingerprints: %w", err)
	}

	res := Result{Matches: make([]Match, 0, len(stored))}
	for _, fp := range stored {
		res.Scanned++

		d, err := hamming.Bytes(probe, fp.Vector)
		if err != nil {
			if errors.Is(err, hamming.ErrLengthMismatch) {
				res.Skipped++
				continue
			}
			return Result{}, err
		}
		res.Matches = append(res.Matches, Match{Name: fp.Name, Distance: d})
	}

	sort.Slice(res.Matches, func(i, j int) bool {
		if res.Matches[i].Distance != res.Matches[j].Distance {
			return res.Matches[i].Distance < res.Matches[j].Distance
		}
		return res.Matches[i].Name < res.Matches[j].Name
	})

	if limit > 0 && len(res.Matches) > limit {
		res.Matches = res.Matches[:limit]
	}

	return res, nil
}
