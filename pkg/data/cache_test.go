package data

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateKey(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*60*60)
	// 02:00 local on the 2nd is still the 1st in UTC
	ts := time.Date(2024, 3, 2, 2, 0, 0, 0, loc)
	assert.Equal(t, "2024-03-01", DateKey(ts))
}

func TestDailyCacheGetPut(t *testing.T) {
	cache := NewDailyCache(NewMemoryStore(), 7, testLogger)

	_, ok := cache.Get("2024-03-01", "en.asad")
	assert.False(t, ok)

	v := Verse{Ref: VerseRef{Chapter: 36, Verse: 58}, ChapterName: "Yaseen"}
	require.NoError(t, cache.Put("2024-03-01", "en.asad", v))

	got, ok := cache.Get("2024-03-01", "en.asad")
	assert.True(t, ok)
	assert.Equal(t, v, got)

	_, ok = cache.Get("2024-03-01", "en.sahih")
	assert.False(t, ok, "translations are cached separately")
}

func TestDailyCacheEvictsOldDays(t *testing.T) {
	kv := NewMemoryStore()
	cache := NewDailyCache(kv, 3, testLogger)

	for day := 1; day <= 5; day++ {
		date := fmt.Sprintf("2024-03-%02d", day)
		require.NoError(t, cache.Put(date, "en.asad", Verse{}))
		require.NoError(t, cache.Put(date, "ur.meer", Verse{}))
	}

	keys, err := kv.Keys("ps_daily_")
	require.NoError(t, err)
	assert.Len(t, keys, 6)

	for day := 1; day <= 2; day++ {
		_, ok := cache.Get(fmt.Sprintf("2024-03-%02d", day), "en.asad")
		assert.False(t, ok, "day %d should be evicted", day)
	}
	for day := 3; day <= 5; day++ {
		_, ok := cache.Get(fmt.Sprintf("2024-03-%02d", day), "ur.meer")
		assert.True(t, ok, "day %d should be kept", day)
	}
}

func TestDailyCacheIgnoresForeignKeys(t *testing.T) {
	kv := NewMemoryStore()
	require.NoError(t, kv.Set("ps_daily_garbage", "{}"))
	cache := NewDailyCache(kv, 1, testLogger)

	require.NoError(t, cache.Put("2024-03-01", "en.asad", Verse{}))
	require.NoError(t, cache.Put("2024-03-02", "en.asad", Verse{}))

	_, ok, _ := kv.Get("ps_daily_garbage")
	assert.True(t, ok)
	_, ok = cache.Get("2024-03-01", "en.asad")
	assert.False(t, ok)
}
