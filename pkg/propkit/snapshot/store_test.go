package snapshot_test

import (
	"path/filepath"
	"testing"

	"github.com/propkit/propkit/pkg/propkit/snapshot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// storeFactory creates a store instance for testing.
type storeFactory func(t *testing.T) snapshot.Store

// storeContractTest runs contract tests against any Store implementation.
func storeContractTest(t *testing.T, name string, factory storeFactory) {
	props := map[string]string{
		"scanner.workers":    "4",
		"scanner.exclusions": `"**/vendor/**",**/testdata/**`,
	}

	t.Run(name+"/Save_and_Load", func(t *testing.T) {
		store := factory(t)
		defer store.Close()

		require.NoError(t, store.Save("project-a", props))

		loaded, err := store.Load("project-a")
		require.NoError(t, err)
		assert.Equal(t, props, loaded)
	})

	t.Run(name+"/Load_NotFound", func(t *testing.T) {
		store := factory(t)
		defer store.Close()

		_, err := store.Load("nonexistent")
		assert.ErrorIs(t, err, snapshot.ErrNotFound)
	})

	t.Run(name+"/Save_Overwrite", func(t *testing.T) {
		store := factory(t)
		defer store.Close()

		require.NoError(t, store.Save("project-a", map[string]string{"k": "first"}))
		require.NoError(t, store.Save("project-a", map[string]string{"k": "second"}))

		loaded, err := store.Load("project-a")
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"k": "second"}, loaded)
	})

	t.Run(name+"/Save_EmptyMap", func(t *testing.T) {
		store := factory(t)
		defer store.Close()

		require.NoError(t, store.Save("empty", nil))

		loaded, err := store.Load("empty")
		require.NoError(t, err)
		assert.Empty(t, loaded)
	})

	t.Run(name+"/List_Empty", func(t *testing.T) {
		store := factory(t)
		defer store.Close()

		infos, err := store.List()
		require.NoError(t, err)
		assert.Empty(t, infos)
	})

	t.Run(name+"/List_Ordered", func(t *testing.T) {
		store := factory(t)
		defer store.Close()

		require.NoError(t, store.Save("project-b", props))
		require.NoError(t, store.Save("project-a", map[string]string{"k": "v"}))

		infos, err := store.List()
		require.NoError(t, err)
		require.Len(t, infos, 2)

		assert.Equal(t, "project-a", infos[0].ID)
		assert.Equal(t, 1, infos[0].Keys)
		assert.False(t, infos[0].Timestamp.IsZero())
		assert.Equal(t, "project-b", infos[1].ID)
		assert.Equal(t, 2, infos[1].Keys)
	})

	t.Run(name+"/Delete", func(t *testing.T) {
		store := factory(t)
		defer store.Close()

		require.NoError(t, store.Save("project-a", props))
		require.NoError(t, store.Delete("project-a"))

		_, err := store.Load("project-a")
		assert.ErrorIs(t, err, snapshot.ErrNotFound)

		// Deleting a missing snapshot is not an error.
		assert.NoError(t, store.Delete("project-a"))
	})

	t.Run(name+"/Closed", func(t *testing.T) {
		store := factory(t)
		require.NoError(t, store.Close())

		assert.ErrorIs(t, store.Save("x", nil), snapshot.ErrStoreClosed)
		_, err := store.Load("x")
		assert.ErrorIs(t, err, snapshot.ErrStoreClosed)
		_, err = store.List()
		assert.ErrorIs(t, err, snapshot.ErrStoreClosed)
		assert.ErrorIs(t, store.Delete("x"), snapshot.ErrStoreClosed)
	})
}

func TestMemoryStoreContract(t *testing.T) {
	storeContractTest(t, "memory", func(t *testing.T) snapshot.Store {
		return snapshot.NewMemoryStore()
	})
}

func TestSQLiteStoreContract(t *testing.T) {
	storeContractTest(t, "sqlite", func(t *testing.T) snapshot.Store {
		store, err := snapshot.NewSQLiteStore(filepath.Join(t.TempDir(), "snapshots.db"))
		require.NoError(t, err)
		return store
	})
}
