package services

import (
	"context"
	"sync"
	"time"

	"github.com/kerbaras/pulsesoul/pkg/data"
	"github.com/kerbaras/pulsesoul/pkg/integrations"
	"github.com/kerbaras/pulsesoul/pkg/sources"
	"go.uber.org/zap"
)

type DailySnapshot struct {
	State       LoadState
	Translation string
	Verse       *data.Verse
	Error       string
	Bookmarked  bool
}

// DailyVerse serves one random verse per calendar day and translation.
type DailyVerse struct {
	gateway   sources.Gateway
	cache     *data.DailyCache
	bookmarks *data.Shelf
	player    integrations.Player
	logger    *zap.Logger
	now       func() time.Time

	mu          sync.Mutex
	state       LoadState
	translation string
	verse       *data.Verse
	errMsg      string
	gen         uint64
	cancel      context.CancelFunc
}

func NewDailyVerse(gateway sources.Gateway, cache *data.DailyCache, bookmarks *data.Shelf, player integrations.Player, logger *zap.Logger) *DailyVerse {
	return &DailyVerse{
		gateway:   gateway,
		cache:     cache,
		bookmarks: bookmarks,
		player:    player,
		logger:    logger,
		now:       time.Now,
	}
}

// SetClock replaces the time source used to pick the cache day.
func (d *DailyVerse) SetClock(now func() time.Time) {
	d.now = now
}

// Load shows today's verse for translation, from the cache when present.
// Starting a new Load cancels one still in flight; the older call then
// returns ErrSuperseded and leaves the state alone.
func (d *DailyVerse) Load(ctx context.Context, translation string) error {
	date := data.DateKey(d.now())

	d.mu.Lock()
	d.supersede()
	d.translation = translation
	d.errMsg = ""
	if v, ok := d.cache.Get(date, translation); ok {
		d.state = Loaded
		d.verse = &v
		d.mu.Unlock()
		return nil
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	d.gen++
	gen := d.gen
	d.cancel = cancel
	d.state = Loading
	d.mu.Unlock()

	v, err := d.gateway.GetRandomVerse(ctx, translation)

	d.mu.Lock()
	defer d.mu.Unlock()
	if gen != d.gen {
		return ErrSuperseded
	}
	d.cancel = nil
	if err != nil {
		d.logger.Warn("load daily verse", zap.String("translation", translation), zap.Error(err))
		d.state = Failed
		d.errMsg = DailyVerseError
		return err
	}
	if err := d.cache.Put(date, translation, *v); err != nil {
		d.logger.Warn("cache daily verse", zap.String("date", date), zap.Error(err))
	}
	d.state = Loaded
	d.verse = v
	return nil
}

// supersede cancels the in-flight load, if any. Callers hold d.mu.
func (d *DailyVerse) supersede() {
	d.gen++
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
}

func (d *DailyVerse) Snapshot() DailySnapshot {
	d.mu.Lock()
	defer d.mu.Unlock()
	snap := DailySnapshot{
		State:       d.state,
		Translation: d.translation,
		Error:       d.errMsg,
	}
	if d.verse != nil {
		v := *d.verse
		snap.Verse = &v
		snap.Bookmarked = d.bookmarks.Contains(v.Key())
	}
	return snap
}

// ToggleBookmark adds or removes the shown verse from the bookmarks and
// reports whether it is bookmarked afterwards.
func (d *DailyVerse) ToggleBookmark() (bool, error) {
	d.mu.Lock()
	v := d.verse
	d.mu.Unlock()
	if v == nil {
		return false, nil
	}
	return d.bookmarks.Toggle(data.NewBookmarkEntry(*v))
}

// PlayAudio starts the recitation. Failures are logged and otherwise ignored.
func (d *DailyVerse) PlayAudio(ctx context.Context) {
	d.mu.Lock()
	v := d.verse
	d.mu.Unlock()
	if v == nil || v.AudioURL == "" {
		return
	}
	if err := d.player.Play(ctx, v.AudioURL); err != nil {
		d.logger.Debug("play daily verse", zap.String("verse", v.Key()), zap.Error(err))
	}
}
