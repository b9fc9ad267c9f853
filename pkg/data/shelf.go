package data

import (
	"sync"

	"go.uber.org/zap"
)

// Shelf is a capped, most-recent-first list of saved verses. Bookmarks and
// favorites are both shelves over different keys.
type Shelf struct {
	kv     KV
	key    Key[[]BookmarkEntry]
	limit  int
	logger *zap.Logger
	mu     sync.Mutex
}

func NewShelf(kv KV, key Key[[]BookmarkEntry], limit int, logger *zap.Logger) *Shelf {
	return &Shelf{kv: kv, key: key, limit: limit, logger: logger}
}

func NewBookmarks(kv KV, logger *zap.Logger) *Shelf {
	return NewShelf(kv, BookmarksKey, BookmarkLimit, logger)
}

func NewFavorites(kv KV, logger *zap.Logger) *Shelf {
	return NewShelf(kv, FavoritesKey, FavoriteLimit, logger)
}

func (s *Shelf) List() []BookmarkEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Load(s.kv, s.key, s.logger)
}

func (s *Shelf) Contains(key string) bool {
	for _, e := range s.List() {
		if e.Key == key {
			return true
		}
	}
	return false
}

// Add puts entry at the front, dropping any older entry with the same key and
// anything beyond the limit.
func (s *Shelf) Add(entry BookmarkEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	entries := Load(s.kv, s.key, s.logger)
	return Save(s.kv, s.key, s.prepend(entry, entries))
}

func (s *Shelf) Remove(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	entries := Load(s.kv, s.key, s.logger)
	return Save(s.kv, s.key, without(entries, key))
}

// Toggle removes the entry if present and adds it otherwise. It reports
// whether the entry is on the shelf afterwards.
func (s *Shelf) Toggle(entry BookmarkEntry) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entries := Load(s.kv, s.key, s.logger)
	for _, e := range entries {
		if e.Key == entry.Key {
			return false, Save(s.kv, s.key, without(entries, entry.Key))
		}
	}
	return true, Save(s.kv, s.key, s.prepend(entry, entries))
}

func (s *Shelf) prepend(entry BookmarkEntry, entries []BookmarkEntry) []BookmarkEntry {
	out := make([]BookmarkEntry, 0, len(entries)+1)
	out = append(out, entry)
	out = append(out, without(entries, entry.Key)...)
	if len(out) > s.limit {
		out = out[:s.limit]
	}
	return out
}

func without(entries []BookmarkEntry, key string) []BookmarkEntry {
	out := make([]BookmarkEntry, 0, len(entries))
	for _, e := range entries {
		if e.Key != key {
			out = append(out, e)
		}
	}
	return out
}
