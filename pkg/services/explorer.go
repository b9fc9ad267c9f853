package services

import (
	"context"
	"strconv"
	"strings"
	"sync"

	"github.com/kerbaras/pulsesoul/pkg/data"
	"github.com/kerbaras/pulsesoul/pkg/integrations"
	"github.com/kerbaras/pulsesoul/pkg/sources"
	"go.uber.org/zap"
)

// SwipeThreshold is the horizontal drag distance, in pixels, that turns a
// drag into a verse change.
const SwipeThreshold = 80

type ReaderState int

const (
	NoSelection ReaderState = iota
	ReaderLoading
	Ready
	ReaderFailed
)

func (s ReaderState) String() string {
	switch s {
	case NoSelection:
		return "no-selection"
	case ReaderLoading:
		return "loading"
	case Ready:
		return "ready"
	case ReaderFailed:
		return "failed"
	}
	return "unknown"
}

type ExplorerSnapshot struct {
	ListState LoadState
	ListError string
	Query     string
	Filtered  []data.ChapterSummary

	State    ReaderState
	Chapter  *data.ChapterSummary
	Detail   *data.ChapterDetail
	Index    int
	Reveal   bool
	Error    string
	Favorite bool
}

// Current returns the verse at the reading position.
func (s ExplorerSnapshot) Current() (data.Verse, bool) {
	if s.Detail == nil || s.Index < 0 || s.Index >= len(s.Detail.Verses) {
		return data.Verse{}, false
	}
	return s.Detail.Verses[s.Index], true
}

// Explorer browses the chapter list and reads one chapter verse by verse,
// remembering the position per chapter.
type Explorer struct {
	gateway   sources.Gateway
	progress  *data.ProgressLog
	favorites *data.Shelf
	player    integrations.Player
	logger    *zap.Logger

	mu        sync.Mutex
	chapters  []data.ChapterSummary
	listState LoadState
	listErr   string
	query     string

	selected    *data.ChapterSummary
	translation string
	detail      *data.ChapterDetail
	index       int
	reveal      bool
	state       ReaderState
	errMsg      string
	gen         uint64
	cancel      context.CancelFunc
}

func NewExplorer(gateway sources.Gateway, progress *data.ProgressLog, favorites *data.Shelf, player integrations.Player, logger *zap.Logger) *Explorer {
	return &Explorer{
		gateway:   gateway,
		progress:  progress,
		favorites: favorites,
		player:    player,
		logger:    logger,
	}
}

// LoadChapters fetches the chapter list. On failure the list is emptied.
func (e *Explorer) LoadChapters(ctx context.Context) error {
	e.mu.Lock()
	e.listState = Loading
	e.listErr = ""
	e.mu.Unlock()

	chapters, err := e.gateway.ListChapters(ctx)

	e.mu.Lock()
	defer e.mu.Unlock()
	if err != nil {
		e.logger.Warn("load chapters", zap.Error(err))
		e.chapters = nil
		e.listState = Failed
		e.listErr = ChaptersError
		return err
	}
	e.chapters = chapters
	e.listState = Loaded
	return nil
}

func (e *Explorer) Chapters() []data.ChapterSummary {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]data.ChapterSummary(nil), e.chapters...)
}

func (e *Explorer) SetQuery(q string) {
	e.mu.Lock()
	e.query = q
	e.mu.Unlock()
}

// FilterChapters keeps chapters whose English name contains the query, case
// insensitively, or whose number contains it as digits. A blank query keeps
// everything.
func FilterChapters(chapters []data.ChapterSummary, query string) []data.ChapterSummary {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return chapters
	}
	var out []data.ChapterSummary
	for _, c := range chapters {
		if strings.Contains(strings.ToLower(c.EnglishName), q) || strings.Contains(strconv.Itoa(c.Number), q) {
			out = append(out, c)
		}
	}
	return out
}

// Progress returns the saved reading position for every chapter.
func (e *Explorer) Progress() map[int]data.ProgressEntry {
	return e.progress.All()
}

// Select opens a chapter and restores its saved position when the position
// is still within the chapter. A newer Select or Close cancels this one.
func (e *Explorer) Select(ctx context.Context, number int, translation string) error {
	e.mu.Lock()
	e.supersede()
	summary := data.ChapterSummary{Number: number}
	for _, c := range e.chapters {
		if c.Number == number {
			summary = c
			break
		}
	}
	e.selected = &summary
	e.translation = translation
	e.detail = nil
	e.index = 0
	e.reveal = false
	e.errMsg = ""
	e.state = ReaderLoading
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	gen := e.gen
	e.cancel = cancel
	e.mu.Unlock()

	detail, err := e.gateway.GetChapter(ctx, number, translation)

	e.mu.Lock()
	defer e.mu.Unlock()
	if gen != e.gen {
		return ErrSuperseded
	}
	e.cancel = nil
	if err != nil {
		e.logger.Warn("load chapter", zap.Int("chapter", number), zap.String("translation", translation), zap.Error(err))
		e.state = ReaderFailed
		e.errMsg = ChapterError
		return err
	}

	e.detail = detail
	e.state = Ready
	index := 0
	if saved, ok := e.progress.Get(number); ok && saved.LastIndex >= 0 && saved.LastIndex < len(detail.Verses) {
		index = saved.LastIndex
	}
	e.setIndex(index)
	return nil
}

// Reload fetches the open chapter again in another translation, keeping the
// saved position.
func (e *Explorer) Reload(ctx context.Context, translation string) error {
	e.mu.Lock()
	selected := e.selected
	e.mu.Unlock()
	if selected == nil {
		return nil
	}
	return e.Select(ctx, selected.Number, translation)
}

// Close returns to the chapter list.
func (e *Explorer) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.supersede()
	e.selected = nil
	e.detail = nil
	e.index = 0
	e.reveal = false
	e.errMsg = ""
	e.state = NoSelection
}

func (e *Explorer) supersede() {
	e.gen++
	if e.cancel != nil {
		e.cancel()
		e.cancel = nil
	}
}

// setIndex moves the reading position and records it. Callers hold e.mu.
func (e *Explorer) setIndex(i int) {
	if e.detail == nil {
		return
	}
	if i != e.index {
		e.reveal = false
	}
	e.index = i
	if err := e.progress.Set(e.detail.Number, i, len(e.detail.Verses)); err != nil {
		e.logger.Warn("save progress", zap.Int("chapter", e.detail.Number), zap.Error(err))
	}
}

// Next advances one verse, stopping at the last.
func (e *Explorer) Next() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.detail == nil || e.index >= len(e.detail.Verses)-1 {
		return
	}
	e.setIndex(e.index + 1)
}

// Prev goes back one verse, stopping at the first.
func (e *Explorer) Prev() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.detail == nil || e.index <= 0 {
		return
	}
	e.setIndex(e.index - 1)
}

// Drag finishes a horizontal drag of offset pixels. A leftward drag past the
// threshold advances and a rightward one goes back.
func (e *Explorer) Drag(offset int) {
	switch {
	case offset < -SwipeThreshold:
		e.Next()
	case offset > SwipeThreshold:
		e.Prev()
	}
}

// ToggleReveal shows or hides the translation of the current verse.
func (e *Explorer) ToggleReveal() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.reveal = !e.reveal
	return e.reveal
}

func (e *Explorer) current() (data.Verse, bool) {
	if e.detail == nil || e.index < 0 || e.index >= len(e.detail.Verses) {
		return data.Verse{}, false
	}
	return e.detail.Verses[e.index], true
}

// ToggleFavorite adds or removes the current verse from the favorites and
// reports whether it is a favorite afterwards.
func (e *Explorer) ToggleFavorite() (bool, error) {
	e.mu.Lock()
	v, ok := e.current()
	e.mu.Unlock()
	if !ok {
		return false, nil
	}
	return e.favorites.Toggle(data.NewBookmarkEntry(v))
}

// PlayAudio plays the current verse. Failures are logged and otherwise ignored.
func (e *Explorer) PlayAudio(ctx context.Context) {
	e.mu.Lock()
	v, ok := e.current()
	e.mu.Unlock()
	if !ok || v.AudioURL == "" {
		return
	}
	if err := e.player.Play(ctx, v.AudioURL); err != nil {
		e.logger.Debug("play verse", zap.String("verse", v.Key()), zap.Error(err))
	}
}

func (e *Explorer) Snapshot() ExplorerSnapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	snap := ExplorerSnapshot{
		ListState: e.listState,
		ListError: e.listErr,
		Query:     e.query,
		Filtered:  FilterChapters(append([]data.ChapterSummary(nil), e.chapters...), e.query),
		State:     e.state,
		Detail:    e.detail,
		Index:     e.index,
		Reveal:    e.reveal,
		Error:     e.errMsg,
	}
	if e.selected != nil {
		c := *e.selected
		snap.Chapter = &c
	}
	if v, ok := e.current(); ok {
		snap.Favorite = e.favorites.Contains(v.Key())
	}
	return snap
}
