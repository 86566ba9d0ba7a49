package datafetcher

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/elys-network/poolboard/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoolStore_Replace(t *testing.T) {
	store := NewPoolStore(nil)
	assert.Nil(t, store.Current())
	assert.False(t, store.Loaded())

	next := types.NewPoolSet(map[string]*types.Pool{"a": {ID: "a"}})
	store.Replace(next, "test")

	assert.Same(t, next, store.Current())
	assert.True(t, store.Loaded())

	source, loadedAt, count := store.Info()
	assert.Equal(t, "test", source)
	assert.False(t, loadedAt.IsZero())
	assert.Equal(t, 1, count)
}

func TestPoolStore_Reload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pools.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"0xaaa": {"reserveUSD": "10"}}`), 0o644))

	store := NewPoolStore(nil)
	require.NoError(t, store.Reload(path))
	assert.Equal(t, 1, store.Current().Len())
	loaded := store.Current()

	require.NoError(t, os.WriteFile(path, []byte(`not json`), 0o644))
	err := store.Reload(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidPoolSet)
	assert.Same(t, loaded, store.Current(), "a failed reload keeps the current set")
}

func TestPoolStore_ReplaceWithNilStoresEmptySet(t *testing.T) {
	store := NewPoolStore(nil)
	store.Replace(nil, "api")

	require.NotNil(t, store.Current())
	assert.True(t, store.Loaded())
	assert.Equal(t, 0, store.Current().Len())
}
