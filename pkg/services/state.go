package services

import "errors"

// Static, user-facing failure messages. Error details go to the log only.
const (
	DailyVerseError = "Failed to load daily verse"
	ChaptersError   = "Failed to load Surahs"
	ChapterError    = "Failed to load Surah content"
)

// ErrSuperseded is returned by a load whose result was discarded because a
// newer load for the same component started.
var ErrSuperseded = errors.New("superseded by a newer request")

type LoadState int

const (
	Idle LoadState = iota
	Loading
	Loaded
	Failed
)

func (s LoadState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Loaded:
		return "loaded"
	case Failed:
		return "failed"
	}
	return "unknown"
}
