package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var testLogger = zap.NewNop()

func TestMemoryStore(t *testing.T) {
	kv := NewMemoryStore()

	_, ok, err := kv.Get("missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, kv.Set("b", "2"))
	require.NoError(t, kv.Set("a", "1"))
	require.NoError(t, kv.Set("c_other", "3"))

	keys, err := kv.Keys("")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c_other"}, keys)

	keys, err = kv.Keys("c_")
	require.NoError(t, err)
	assert.Equal(t, []string{"c_other"}, keys)

	require.NoError(t, kv.Remove("a"))
	_, ok, _ = kv.Get("a")
	assert.False(t, ok)
}

func TestLoadDefaults(t *testing.T) {
	kv := NewMemoryStore()

	assert.Equal(t, ThemeDark, Load(kv, ThemeKey, testLogger))
	assert.Equal(t, DefaultTranslation, Load(kv, TranslationKey, testLogger))
	assert.Empty(t, Load(kv, BookmarksKey, testLogger))
	assert.NotNil(t, Load(kv, ProgressKey, testLogger))
}

func TestLoadCorruptValueFallsBackToDefault(t *testing.T) {
	kv := NewMemoryStore()
	require.NoError(t, kv.Set(BookmarksKey.Name, "{not json"))

	entries := Load(kv, BookmarksKey, testLogger)
	assert.NotNil(t, entries)
	assert.Empty(t, entries)

	_, ok := Lookup(kv, BookmarksKey, testLogger)
	assert.False(t, ok)
}

func TestSaveAndLookup(t *testing.T) {
	kv := NewMemoryStore()
	key := DailyKey("2024-03-01", "en.asad")

	_, ok := Lookup(kv, key, testLogger)
	assert.False(t, ok)

	v := Verse{Ref: VerseRef{Chapter: 1, Verse: 1}, ChapterName: "Al-Faatiha", Arabic: "بِسْمِ"}
	require.NoError(t, Save(kv, key, v))

	got, ok := Lookup(kv, key, testLogger)
	assert.True(t, ok)
	assert.Equal(t, v, got)

	raw, _, _ := kv.Get("ps_daily_2024-03-01_en.asad")
	assert.Contains(t, raw, `"arabic":"بِسْمِ"`)
}
