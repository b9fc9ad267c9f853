package data

import (
	"fmt"
	"strconv"
	"strings"
)

type RevelationType string

const (
	Meccan  RevelationType = "Meccan"
	Medinan RevelationType = "Medinan"
)

const (
	MinChapter = 1
	MaxChapter = 114
)

type ChapterSummary struct {
	Number         int            `json:"number"`
	ArabicName     string         `json:"arabicName"`
	EnglishName    string         `json:"englishName"`
	EnglishMeaning string         `json:"englishMeaning"`
	RevelationType RevelationType `json:"revelationType"`
	VerseCount     int            `json:"verseCount"`
}

// VerseRef is the structural identity of a verse: chapter number plus verse
// number within the chapter.
type VerseRef struct {
	Chapter int `json:"chapter"`
	Verse   int `json:"verse"`
}

func (r VerseRef) String() string {
	return fmt.Sprintf("%d:%d", r.Chapter, r.Verse)
}

// ParseVerseRef parses the "<chapter>:<verse>" form produced by String.
func ParseVerseRef(s string) (VerseRef, error) {
	chapter, verse, ok := strings.Cut(s, ":")
	if !ok {
		return VerseRef{}, fmt.Errorf("invalid verse reference %q", s)
	}
	c, err := strconv.Atoi(chapter)
	if err != nil {
		return VerseRef{}, fmt.Errorf("invalid chapter in %q: %w", s, err)
	}
	v, err := strconv.Atoi(verse)
	if err != nil {
		return VerseRef{}, fmt.Errorf("invalid verse in %q: %w", s, err)
	}
	if c < MinChapter || c > MaxChapter || v < 1 {
		return VerseRef{}, fmt.Errorf("verse reference %q out of range", s)
	}
	return VerseRef{Chapter: c, Verse: v}, nil
}

type Verse struct {
	Ref         VerseRef `json:"ref"`
	ChapterName string   `json:"chapterName"`
	Arabic      string   `json:"arabic"`
	Translation string   `json:"translation"`
	AudioURL    string   `json:"audio"`
}

// Key is the bookmark identity of the verse.
func (v Verse) Key() string {
	return v.Ref.String()
}

// Label is the human readable "<chapterName>:<verse>" tag shown next to a verse.
func (v Verse) Label() string {
	return fmt.Sprintf("%s:%d", v.ChapterName, v.Ref.Verse)
}

type ChapterDetail struct {
	Number      int     `json:"number"`
	EnglishName string  `json:"englishName"`
	ArabicName  string  `json:"arabicName"`
	Verses      []Verse `json:"verses"`
}

// BookmarkEntry is the stored form of a bookmarked or favorited verse.
type BookmarkEntry struct {
	Key          string `json:"key"`
	Arabic       string `json:"arabic"`
	Translation  string `json:"translation"`
	ChapterLabel string `json:"surah"`
	VerseNumber  int    `json:"numberInSurah"`
}

func NewBookmarkEntry(v Verse) BookmarkEntry {
	return BookmarkEntry{
		Key:          v.Key(),
		Arabic:       v.Arabic,
		Translation:  v.Translation,
		ChapterLabel: v.ChapterName,
		VerseNumber:  v.Ref.Verse,
	}
}

type ProgressEntry struct {
	LastIndex int `json:"index"`
	Total     int `json:"total"`
}

// Percent is how far through the chapter the reader is, counting the
// current verse as read.
func (p ProgressEntry) Percent() int {
	if p.Total <= 0 {
		return 0
	}
	return (200*(p.LastIndex+1) + p.Total) / (2 * p.Total)
}

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"

	DefaultTheme = ThemeDark
)

func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

func ParseTheme(s string) (Theme, error) {
	switch Theme(strings.ToLower(strings.TrimSpace(s))) {
	case ThemeLight:
		return ThemeLight, nil
	case ThemeDark:
		return ThemeDark, nil
	}
	return "", fmt.Errorf("unknown theme %q (want light or dark)", s)
}

type Preferences struct {
	Theme       Theme  `json:"theme"`
	Translation string `json:"translation"`
}

type Translation struct {
	Code string
	Name string
}

const DefaultTranslation = "en.asad"

// Translations are the translation editions offered to the reader.
var Translations = []Translation{
	{Code: "en.asad", Name: "English (Asad)"},
	{Code: "en.sahih", Name: "English (Sahih Intl)"},
	{Code: "ur.jalandhry", Name: "Urdu (Jalandhry)"},
	{Code: "ur.meer", Name: "Urdu (Meer)"},
	{Code: "hi.hindi", Name: "Hindi"},
}

func LookupTranslation(code string) (Translation, bool) {
	for _, t := range Translations {
		if t.Code == code {
			return t, true
		}
	}
	return Translation{}, false
}

// NextTranslation cycles through Translations, starting over after the last.
func NextTranslation(code string) string {
	for i, t := range Translations {
		if t.Code == code {
			return Translations[(i+1)%len(Translations)].Code
		}
	}
	return Translations[0].Code
}
