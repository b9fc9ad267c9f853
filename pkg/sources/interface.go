package sources

import (
	"context"

	"github.com/kerbaras/pulsesoul/pkg/data"
)

// Gateway is the remote content source the reader pulls scripture from.
type Gateway interface {
	ListChapters(ctx context.Context) ([]data.ChapterSummary, error)
	GetChapter(ctx context.Context, number int, translation string) (*data.ChapterDetail, error)
	GetRandomVerse(ctx context.Context, translation string) (*data.Verse, error)
}
