package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepositoryGetMissing(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	_, ok, err := repo.Get("theme")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRepositorySetAndGet(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	require.NoError(t, repo.Set("theme", `"light"`))
	value, ok, err := repo.Get("theme")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `"light"`, value)

	// overwrite
	require.NoError(t, repo.Set("theme", `"dark"`))
	value, _, err = repo.Get("theme")
	require.NoError(t, err)
	assert.Equal(t, `"dark"`, value)
}

func TestRepositoryRemove(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	require.NoError(t, repo.Set("translation", `"en.sahih"`))
	require.NoError(t, repo.Remove("translation"))

	_, ok, err := repo.Get("translation")
	require.NoError(t, err)
	assert.False(t, ok)

	// removing a missing key is not an error
	assert.NoError(t, repo.Remove("translation"))
}

func TestRepositoryKeysByPrefix(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	for _, k := range []string{"ps_daily_2024-01-02_en.asad", "ps_daily_2024-01-01_en.asad", "ps_bookmarks", "psXdaily"} {
		require.NoError(t, repo.Set(k, "{}"))
	}

	keys, err := repo.Keys("ps_daily_")
	require.NoError(t, err)
	assert.Equal(t, []string{"ps_daily_2024-01-01_en.asad", "ps_daily_2024-01-02_en.asad"}, keys)
}

func TestRepositoryWithTypedKeys(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	progress := NewProgressLog(repo, testLogger)
	require.NoError(t, progress.Set(2, 5, 286))

	entry, ok := progress.Get(2)
	assert.True(t, ok)
	assert.Equal(t, ProgressEntry{LastIndex: 5, Total: 286}, entry)
}
