package ports

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soleret/hamming/pkg/fingerprint"
)

// RunStoreContract runs a suite of tests to verify that a Store
// implementation adheres to the defined interface contract.
func RunStoreContract(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("Save and Load", func(t *testing.T) {
		fp, err := fingerprint.New("contract-a", []byte{0xDE, 0xAD, 0xBE, 0xEF})
		require.NoError(t, err)

		require.NoError(t, store.Save(ctx, fp), "Save should not return error")

		loaded, err := store.Load(ctx, "contract-a")
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, fp.Name, loaded.Name)
		assert.Equal(t, fp.Vector, loaded.Vector)
	})

	t.Run("Save Replaces", func(t *testing.T) {
		first, err := fingerprint.New("contract-b", []byte{0x00})
		require.NoError(t, err)
		require.NoError(t, store.Save(ctx, first))

		second, err := fingerprint.New("contract-b", []byte{0xFF, 0xFF})
		require.NoError(t, err)
		require.NoError(t, store.Save(ctx, second))

		loaded, err := store.Load(ctx, "contract-b")
		require.NoError(t, err)
		assert.Equal(t, second.Vector, loaded.Vector)
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "contract-missing")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		fp, err := fingerprint.New("contract-c", []byte{0x42})
		require.NoError(t, err)
		require.NoError(t, store.Save(ctx, fp))

		require.NoError(t, store.Delete(ctx, "contract-c"), "Delete should not return error")

		_, err = store.Load(ctx, "contract-c")
		assert.ErrorIs(t, err, ErrNotFound, "Load after Delete should return ErrNotFound")

		assert.NoError(t, store.Delete(ctx, "contract-c"), "Delete of a missing name should not error")
	})

	t.Run("List", func(t *testing.T) {
		fp1, err := fingerprint.New("contract-list-1", []byte{0x01})
		require.NoError(t, err)
		fp2, err := fingerprint.New("contract-list-2", []byte{0x02})
		require.NoError(t, err)

		require.NoError(t, store.Save(ctx, fp1))
		require.NoError(t, store.Save(ctx, fp2))

		// Ensure cleanup
		defer func() {
			_ = store.Delete(ctx, fp1.Name)
			_ = store.Delete(ctx, fp2.Name)
		}()

		all, err := store.List(ctx)
		require.NoError(t, err)

		names := make([]string, 0, len(all))
		for _, fp := range all {
			names = append(names, fp.Name)
		}
		assert.Contains(t, names, fp1.Name)
		assert.Contains(t, names, fp2.Name)
	})
}
