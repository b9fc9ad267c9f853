package sources

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/kerbaras/pulsesoul/pkg/data"
	"github.com/kerbaras/pulsesoul/pkg/utils"
)

const (
	DefaultBaseURL = "https://api.alquran.cloud/v1"

	OriginalEdition = "quran-uthmani"
	AudioEdition    = "audio/ar.alafasy"

	// TotalVerses is the number of verses across all chapters.
	TotalVerses = 6236
)

// ErrEditionMismatch is returned when the stacked editions of one request do
// not line up verse for verse.
var ErrEditionMismatch = errors.New("editions do not align")

type envelope[T any] struct {
	Code   int    `json:"code"`
	Status string `json:"status"`
	Data   T      `json:"data"`
}

type Surah struct {
	Number                 int    `json:"number"`
	Name                   string `json:"name"`
	EnglishName            string `json:"englishName"`
	EnglishNameTranslation string `json:"englishNameTranslation"`
	RevelationType         string `json:"revelationType"`
	NumberOfAyahs          int    `json:"numberOfAyahs"`
}

func (s *Surah) ToChapterSummary() data.ChapterSummary {
	return data.ChapterSummary{
		Number:         s.Number,
		ArabicName:     s.Name,
		EnglishName:    s.EnglishName,
		EnglishMeaning: s.EnglishNameTranslation,
		RevelationType: data.RevelationType(s.RevelationType),
		VerseCount:     s.NumberOfAyahs,
	}
}

type Edition struct {
	Identifier string `json:"identifier"`
}

type Ayah struct {
	Number        int     `json:"number"`
	Text          string  `json:"text"`
	Audio         string  `json:"audio"`
	NumberInSurah int     `json:"numberInSurah"`
	Surah         *Surah  `json:"surah,omitempty"`
	Edition       Edition `json:"edition"`
}

type SurahEdition struct {
	Surah
	Edition Edition `json:"edition"`
	Ayahs   []Ayah  `json:"ayahs"`
}

// AlQuran talks to the alquran.cloud REST API.
type AlQuran struct {
	api *utils.API
}

func NewAlQuran(api *utils.API) *AlQuran {
	return &AlQuran{api: api}
}

func editions(translation string) string {
	return strings.Join([]string{OriginalEdition, translation, AudioEdition}, ",")
}

func get[T any](ctx context.Context, a *AlQuran, path string) (T, error) {
	var env envelope[T]
	if err := a.api.Get(ctx, path, nil, &env); err != nil {
		return env.Data, err
	}
	if env.Code != 200 {
		return env.Data, &utils.NetworkError{Op: "GET", URL: a.api.BaseURL() + path, Status: env.Code}
	}
	return env.Data, nil
}

func (a *AlQuran) ListChapters(ctx context.Context) ([]data.ChapterSummary, error) {
	surahs, err := get[[]Surah](ctx, a, "/surah")
	if err != nil {
		return nil, err
	}
	out := make([]data.ChapterSummary, len(surahs))
	for i := range surahs {
		out[i] = surahs[i].ToChapterSummary()
	}
	return out, nil
}

func (a *AlQuran) GetChapter(ctx context.Context, number int, translation string) (*data.ChapterDetail, error) {
	if number < data.MinChapter || number > data.MaxChapter {
		return nil, fmt.Errorf("chapter %d out of range", number)
	}
	path := fmt.Sprintf("/surah/%d/editions/%s", number, editions(translation))
	stacked, err := get[[]SurahEdition](ctx, a, path)
	if err != nil {
		return nil, err
	}
	return zipChapter(stacked)
}

func zipChapter(stacked []SurahEdition) (*data.ChapterDetail, error) {
	if len(stacked) != 3 {
		return nil, fmt.Errorf("%w: got %d editions, want 3", ErrEditionMismatch, len(stacked))
	}
	ar, tr, au := stacked[0], stacked[1], stacked[2]

	if ar.NumberOfAyahs != 0 && len(ar.Ayahs) != ar.NumberOfAyahs {
		return nil, fmt.Errorf("%w: %s has %d verses, declared %d",
			ErrEditionMismatch, ar.EnglishName, len(ar.Ayahs), ar.NumberOfAyahs)
	}
	for _, other := range []SurahEdition{tr, au} {
		if len(other.Ayahs) != len(ar.Ayahs) {
			return nil, fmt.Errorf("%w: %s has %d verses, %s has %d",
				ErrEditionMismatch, ar.Edition.Identifier, len(ar.Ayahs), other.Edition.Identifier, len(other.Ayahs))
		}
	}

	detail := &data.ChapterDetail{
		Number:      ar.Number,
		EnglishName: ar.EnglishName,
		ArabicName:  ar.Name,
		Verses:      make([]data.Verse, len(ar.Ayahs)),
	}
	for i, a := range ar.Ayahs {
		if tr.Ayahs[i].NumberInSurah != a.NumberInSurah || au.Ayahs[i].NumberInSurah != a.NumberInSurah {
			return nil, fmt.Errorf("%w: verse order differs at index %d", ErrEditionMismatch, i)
		}
		detail.Verses[i] = data.Verse{
			Ref:         data.VerseRef{Chapter: ar.Number, Verse: a.NumberInSurah},
			ChapterName: ar.EnglishName,
			Arabic:      a.Text,
			Translation: tr.Ayahs[i].Text,
			AudioURL:    au.Ayahs[i].Audio,
		}
	}
	return detail, nil
}

func (a *AlQuran) GetRandomVerse(ctx context.Context, translation string) (*data.Verse, error) {
	random, err := get[Ayah](ctx, a, "/ayah/random")
	if err != nil {
		return nil, err
	}
	return a.GetVerse(ctx, random.Number, translation)
}

// GetVerse fetches one verse by its global number (1..TotalVerses).
func (a *AlQuran) GetVerse(ctx context.Context, globalNumber int, translation string) (*data.Verse, error) {
	if globalNumber < 1 || globalNumber > TotalVerses {
		return nil, fmt.Errorf("verse %d out of range", globalNumber)
	}
	path := fmt.Sprintf("/ayah/%d/editions/%s", globalNumber, editions(translation))
	stacked, err := get[[]Ayah](ctx, a, path)
	if err != nil {
		return nil, err
	}
	return zipVerse(stacked)
}

func zipVerse(stacked []Ayah) (*data.Verse, error) {
	if len(stacked) != 3 {
		return nil, fmt.Errorf("%w: got %d editions, want 3", ErrEditionMismatch, len(stacked))
	}
	ar, tr, au := stacked[0], stacked[1], stacked[2]
	if tr.Number != ar.Number || au.Number != ar.Number {
		return nil, fmt.Errorf("%w: verse numbers %d/%d/%d", ErrEditionMismatch, ar.Number, tr.Number, au.Number)
	}

	v := &data.Verse{
		Ref:         data.VerseRef{Verse: ar.NumberInSurah},
		ChapterName: "Surah",
		Arabic:      ar.Text,
		Translation: tr.Text,
		AudioURL:    au.Audio,
	}
	if ar.Surah != nil {
		v.Ref.Chapter = ar.Surah.Number
		v.ChapterName = ar.Surah.EnglishName
	}
	return v, nil
}
