package index_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soleret/hamming/pkg/adapters/memory"
	"github.com/soleret/hamming/pkg/fingerprint"
	"github.com/soleret/hamming/pkg/index"
	"github.com/soleret/hamming/pkg/ports"
)

func seed(t *testing.T, store ports.Store, name string, vector []byte) {
	t.Helper()
	fp, err := fingerprint.New(name, vector)
	require.NoError(t, err)
	require.NoError(t, store.Save(context.Background(), fp))
}

func TestSearch_OrdersByDistanceThenName(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	seed(t, store, "far", []byte{0xFF})   // distance 8 from 0x00
	seed(t, store, "mid", []byte{0x0F})   // distance 4
	seed(t, store, "beta", []byte{0x01})  // distance 1
	seed(t, store, "alpha", []byte{0x10}) // distance 1, ties with beta

	ix := index.New(store)
	res, err := ix.Search(ctx, []byte{0x00}, 0)
	require.NoError(t, err)

	assert.Equal(t, []index.Match{
		{Name: "alpha", Distance: 1},
		{Name: "beta", Distance: 1},
		{Name: "mid", Distance: 4},
		{Name: "far", Distance: 8},
	}, res.Matches)
	assert.Equal(t, 4, res.Scanned)
	assert.Equal(t, 0, res.Skipped)
}

func TestSearch_Limit(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	seed(t, store, "a", []byte{0x01})
	seed(t, store, "b", []byte{0x03})
	seed(t, store, "c", []byte{0x07})

	ix := index.New(store)

	res, err := ix.Search(ctx, []byte{0x00}, 2)
	require.NoError(t, err)
	require.Len(t, res.Matches, 2)
	assert.Equal(t, "a", res.Matches[0].Name)
	assert.Equal(t, "b", res.Matches[1].Name)
	assert.Equal(t, 3, res.Scanned, "limit must not shorten the scan")

	res, err = ix.Search(ctx, []byte{0x00}, 10)
	require.NoError(t, err)
	assert.Len(t, res.Matches, 3, "limit above the match count returns everything")

	res, err = ix.Search(ctx, []byte{0x00}, -1)
	require.NoError(t, err)
	assert.Len(t, res.Matches, 3, "non-positive limit returns everything")
}

func TestSearch_SkipsMismatchedWidths(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	seed(t, store, "narrow", []byte{0x01})
	seed(t, store, "wide", []byte{0x01, 0x02})

	ix := index.New(store)
	res, err := ix.Search(ctx, []byte{0x00}, 0)
	require.NoError(t, err)

	require.Len(t, res.Matches, 1)
	assert.Equal(t, "narrow", res.Matches[0].Name)
	assert.Equal(t, 2, res.Scanned)
	assert.Equal(t, 1, res.Skipped)
}

func TestSearch_EmptyStore(t *testing.T) {
	ix := index.New(memory.NewStore())

	res, err := ix.Search(context.Background(), []byte{0x00}, 0)
	require.NoError(t, err)
	assert.Empty(t, res.Matches)
	assert.Equal(t, 0, res.Scanned)
}

func TestSearch_EmptyProbe(t *testing.T) {
	ix := index.New(memory.NewStore())

	_, err := ix.Search(context.Background(), nil, 0)
	assert.ErrorIs(t, err, fingerprint.ErrEmptyVector)
}

var errStoreDown = errors.New("store down")

// failingStore trips every operation, for exercising error paths.
type failingStore struct{}

func (failingStore) Save(context.Context, fingerprint.Fingerprint) error { return errStoreDown }
func (failingStore) Load(context.Context, string) (fingerprint.Fingerprint, error) {
	return fingerprint.Fingerprint{}, errStoreDown
}
func (failingStore) Delete(context.Context, string) error { return errStoreDown }
func (failingStore) List(context.Context) ([]fingerprint.Fingerprint, error) {
	return nil, errStoreDown
}

func TestSearch_StoreErrorPropagates(t *testing.T) {
	ix := index.New(failingStore{})

	_, err := ix.Search(context.Background(), []byte{0x00}, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, errStoreDown)
	assert.ErrorContains(t, err, "failed to list fingerprints")
}

func TestAdd_Validates(t *testing.T) {
	ctx := context.Background()
	ix := index.New(memory.NewStore())

	assert.ErrorIs(t, ix.Add(ctx, "", []byte{0x01}), fingerprint.ErrEmptyName)
	assert.ErrorIs(t, ix.Add(ctx, "empty", nil), fingerprint.ErrEmptyVector)
	assert.NoError(t, ix.Add(ctx, "ok", []byte{0x01}))
}

func TestAddGetRemove_RoundTrip(t *testing.T) {
	ctx := context.Background()
	ix := index.New(memory.NewStore())

	require.NoError(t, ix.Add(ctx, "rt", []byte{0xAA}))

	fp, err := ix.Get(ctx, "rt")
	require.NoError(t, err)
	assert.Equal(t, "rt", fp.Name)
	assert.Equal(t, []byte{0xAA}, fp.Vector)

	require.NoError(t, ix.Remove(ctx, "rt"))

	_, err = ix.Get(ctx, "rt")
	assert.ErrorIs(t, err, ports.ErrNotFound)
}
