package services

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/kerbaras/pulsesoul/pkg/data"
	"go.uber.org/zap"
)

var testLogger = zap.NewNop()

// Mock implementations for testing

type mockGateway struct {
	listChaptersFunc   func(ctx context.Context) ([]data.ChapterSummary, error)
	getChapterFunc     func(ctx context.Context, number int, translation string) (*data.ChapterDetail, error)
	getRandomVerseFunc func(ctx context.Context, translation string) (*data.Verse, error)

	listCalls    atomic.Int32
	chapterCalls atomic.Int32
	randomCalls  atomic.Int32
}

func (m *mockGateway) ListChapters(ctx context.Context) ([]data.ChapterSummary, error) {
	m.listCalls.Add(1)
	if m.listChaptersFunc != nil {
		return m.listChaptersFunc(ctx)
	}
	return nil, nil
}

func (m *mockGateway) GetChapter(ctx context.Context, number int, translation string) (*data.ChapterDetail, error) {
	m.chapterCalls.Add(1)
	if m.getChapterFunc != nil {
		return m.getChapterFunc(ctx, number, translation)
	}
	return nil, nil
}

func (m *mockGateway) GetRandomVerse(ctx context.Context, translation string) (*data.Verse, error) {
	m.randomCalls.Add(1)
	if m.getRandomVerseFunc != nil {
		return m.getRandomVerseFunc(ctx, translation)
	}
	return nil, nil
}

type mockPlayer struct {
	mu      sync.Mutex
	sources []string
	err     error
}

func (m *mockPlayer) Play(ctx context.Context, source string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sources = append(m.sources, source)
	return m.err
}

func (m *mockPlayer) played() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.sources...)
}

func testChapters() []data.ChapterSummary {
	return []data.ChapterSummary{
		{Number: 1, EnglishName: "Al-Faatiha", VerseCount: 7, RevelationType: data.Meccan},
		{Number: 2, EnglishName: "Al-Baqarah", VerseCount: 286, RevelationType: data.Medinan},
		{Number: 3, EnglishName: "Aal-i-Imraan", VerseCount: 200, RevelationType: data.Medinan},
		{Number: 12, EnglishName: "Yusuf", VerseCount: 111, RevelationType: data.Meccan},
		{Number: 112, EnglishName: "Al-Ikhlaas", VerseCount: 4, RevelationType: data.Meccan},
	}
}

func testDetail(number, count int, translation string) *data.ChapterDetail {
	d := &data.ChapterDetail{
		Number:      number,
		EnglishName: fmt.Sprintf("Surah-%d", number),
		Verses:      make([]data.Verse, count),
	}
	for i := range d.Verses {
		d.Verses[i] = data.Verse{
			Ref:         data.VerseRef{Chapter: number, Verse: i + 1},
			ChapterName: d.EnglishName,
			Arabic:      fmt.Sprintf("ar %d:%d", number, i+1),
			Translation: fmt.Sprintf("%s %d:%d", translation, number, i+1),
			AudioURL:    fmt.Sprintf("https://cdn.example/audio/%d-%d.mp3", number, i+1),
		}
	}
	return d
}

func testVerse(translation string) *data.Verse {
	return &data.Verse{
		Ref:         data.VerseRef{Chapter: 2, Verse: 255},
		ChapterName: "Al-Baqarah",
		Arabic:      "ar 2:255",
		Translation: translation + " 2:255",
		AudioURL:    "https://cdn.example/audio/262.mp3",
	}
}
