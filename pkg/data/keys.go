package data

import "fmt"

const (
	BookmarkLimit = 200
	FavoriteLimit = 500

	dailyPrefix = "ps_daily_"
)

var (
	ThemeKey = Key[Theme]{
		Name:    "theme",
		Default: func() Theme { return DefaultTheme },
	}
	TranslationKey = Key[string]{
		Name:    "translation",
		Default: func() string { return DefaultTranslation },
	}
	BookmarksKey = Key[[]BookmarkEntry]{
		Name:    "ps_bookmarks",
		Default: func() []BookmarkEntry { return []BookmarkEntry{} },
	}
	FavoritesKey = Key[[]BookmarkEntry]{
		Name:    "ps_favorites",
		Default: func() []BookmarkEntry { return []BookmarkEntry{} },
	}
	ProgressKey = Key[map[int]ProgressEntry]{
		Name:    "ps_progress",
		Default: func() map[int]ProgressEntry { return map[int]ProgressEntry{} },
	}
)

// DailyKey is the cache slot for one calendar day (YYYY-MM-DD) and translation.
func DailyKey(date, translation string) Key[Verse] {
	return Key[Verse]{Name: fmt.Sprintf("%s%s_%s", dailyPrefix, date, translation)}
}
