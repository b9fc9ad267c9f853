package sources

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/kerbaras/pulsesoul/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var verseCounts = []int{
	7, 286, 200, 176, 120, 165, 206, 75, 129, 109, 123, 111, 43, 52, 99, 128, 111, 110, 98, 135,
	112, 78, 118, 64, 77, 227, 93, 88, 69, 60, 34, 30, 73, 54, 45, 83, 182, 88, 75, 85,
	54, 53, 89, 59, 37, 35, 38, 29, 18, 45, 60, 49, 62, 55, 78, 96, 29, 22, 24, 13,
	14, 11, 11, 18, 12, 12, 30, 52, 52, 44, 28, 28, 20, 56, 40, 31, 50, 40, 46, 42,
	29, 19, 36, 25, 22, 17, 19, 26, 30, 20, 15, 21, 11, 8, 8, 19, 5, 8, 8, 11,
	11, 8, 3, 9, 5, 4, 7, 3, 6, 3, 5, 4, 5, 6,
}

// fakeQuran serves a synthetic corpus shaped like api.alquran.cloud.
type fakeQuran struct {
	calls atomic.Int32
	// dropTranslation removes the last translated verse of every chapter.
	dropTranslation bool
	status          int
	randomVerse     int
}

func surahName(n int) string {
	if n == 2 {
		return "Al-Baqara"
	}
	return fmt.Sprintf("Surah-%d", n)
}

func surahJSON(n int) map[string]any {
	rev := "Meccan"
	if n%3 == 0 {
		rev = "Medinan"
	}
	return map[string]any{
		"number":                 n,
		"name":                   fmt.Sprintf("سورة %d", n),
		"englishName":            surahName(n),
		"englishNameTranslation": fmt.Sprintf("Meaning %d", n),
		"revelationType":         rev,
		"numberOfAyahs":          verseCounts[n-1],
	}
}

func locate(global int) (chapter, verse int) {
	for i, c := range verseCounts {
		if global <= c {
			return i + 1, global
		}
		global -= c
	}
	return 0, 0
}

func globalOf(chapter, verse int) int {
	g := verse
	for i := 0; i < chapter-1; i++ {
		g += verseCounts[i]
	}
	return g
}

func ayahJSON(edition string, chapter, verse int) map[string]any {
	a := map[string]any{
		"number":        globalOf(chapter, verse),
		"numberInSurah": verse,
		"text":          fmt.Sprintf("%s %d:%d", edition, chapter, verse),
		"edition":       map[string]any{"identifier": edition},
	}
	if strings.HasPrefix(edition, "audio/") {
		a["audio"] = fmt.Sprintf("https://cdn.example/audio/%d.mp3", globalOf(chapter, verse))
	}
	return a
}

func (f *fakeQuran) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.calls.Add(1)
	if f.status != 0 {
		w.WriteHeader(f.status)
		return
	}

	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	var payload any
	switch {
	case len(parts) == 1 && parts[0] == "surah":
		var list []map[string]any
		for n := 1; n <= len(verseCounts); n++ {
			list = append(list, surahJSON(n))
		}
		payload = list

	case len(parts) >= 4 && parts[0] == "surah" && parts[2] == "editions":
		n, _ := strconv.Atoi(parts[1])
		if n < 1 || n > len(verseCounts) {
			http.NotFound(w, r)
			return
		}
		var stacked []map[string]any
		for i, ed := range strings.Split(strings.Join(parts[3:], "/"), ",") {
			s := surahJSON(n)
			s["edition"] = map[string]any{"identifier": ed}
			count := verseCounts[n-1]
			if i == 1 && f.dropTranslation {
				count--
			}
			var ayahs []map[string]any
			for v := 1; v <= count; v++ {
				ayahs = append(ayahs, ayahJSON(ed, n, v))
			}
			s["ayahs"] = ayahs
			stacked = append(stacked, s)
		}
		payload = stacked

	case len(parts) == 2 && parts[0] == "ayah" && parts[1] == "random":
		c, v := locate(f.randomVerse)
		a := ayahJSON(OriginalEdition, c, v)
		a["surah"] = surahJSON(c)
		payload = a

	case len(parts) >= 4 && parts[0] == "ayah" && parts[2] == "editions":
		g, _ := strconv.Atoi(parts[1])
		c, v := locate(g)
		var stacked []map[string]any
		for _, ed := range strings.Split(strings.Join(parts[3:], "/"), ",") {
			a := ayahJSON(ed, c, v)
			a["surah"] = surahJSON(c)
			stacked = append(stacked, a)
		}
		payload = stacked

	default:
		http.NotFound(w, r)
		return
	}

	json.NewEncoder(w).Encode(map[string]any{"code": 200, "status": "OK", "data": payload})
}

func newTestSource(t *testing.T, f *fakeQuran) *AlQuran {
	t.Helper()
	srv := httptest.NewServer(f)
	t.Cleanup(srv.Close)
	return NewAlQuran(utils.NewAPI(srv.URL))
}

func TestAlQuran_ListChapters(t *testing.T) {
	src := newTestSource(t, &fakeQuran{})

	chapters, err := src.ListChapters(context.Background())
	require.NoError(t, err)
	require.Len(t, chapters, 114)

	baqara := chapters[1]
	assert.Equal(t, 2, baqara.Number)
	assert.Equal(t, "Al-Baqara", baqara.EnglishName)
	assert.Equal(t, "سورة 2", baqara.ArabicName)
	assert.Equal(t, "Meaning 2", baqara.EnglishMeaning)
	assert.Equal(t, 286, baqara.VerseCount)
}

func TestAlQuran_ListChaptersServerError(t *testing.T) {
	src := newTestSource(t, &fakeQuran{status: http.StatusInternalServerError})

	chapters, err := src.ListChapters(context.Background())
	assert.Nil(t, chapters)

	var netErr *utils.NetworkError
	require.True(t, errors.As(err, &netErr))
	assert.Equal(t, http.StatusInternalServerError, netErr.Status)
}

func TestAlQuran_GetChapter(t *testing.T) {
	src := newTestSource(t, &fakeQuran{})

	detail, err := src.GetChapter(context.Background(), 1, "en.sahih")
	require.NoError(t, err)

	assert.Equal(t, 1, detail.Number)
	assert.Equal(t, "Surah-1", detail.EnglishName)
	require.Len(t, detail.Verses, 7)

	v := detail.Verses[2]
	assert.Equal(t, "1:3", v.Key())
	assert.Equal(t, "quran-uthmani 1:3", v.Arabic)
	assert.Equal(t, "en.sahih 1:3", v.Translation)
	assert.Equal(t, "https://cdn.example/audio/3.mp3", v.AudioURL)
	assert.Equal(t, "Surah-1:3", v.Label())
}

func TestAlQuran_GetChapterMatchesDeclaredCounts(t *testing.T) {
	src := newTestSource(t, &fakeQuran{})

	for n := 1; n <= 114; n++ {
		detail, err := src.GetChapter(context.Background(), n, "en.asad")
		require.NoError(t, err, "chapter %d", n)
		assert.Len(t, detail.Verses, verseCounts[n-1], "chapter %d", n)
	}
}

func TestAlQuran_GetChapterOutOfRange(t *testing.T) {
	f := &fakeQuran{}
	src := newTestSource(t, f)

	for _, n := range []int{0, 115, -1} {
		_, err := src.GetChapter(context.Background(), n, "en.asad")
		assert.Error(t, err)
	}
	assert.Zero(t, f.calls.Load(), "no request for invalid chapter numbers")
}

func TestAlQuran_GetChapterEditionMismatch(t *testing.T) {
	src := newTestSource(t, &fakeQuran{dropTranslation: true})

	_, err := src.GetChapter(context.Background(), 112, "en.asad")
	assert.ErrorIs(t, err, ErrEditionMismatch)
}

func TestAlQuran_GetRandomVerse(t *testing.T) {
	f := &fakeQuran{randomVerse: 262}
	src := newTestSource(t, f)

	v, err := src.GetRandomVerse(context.Background(), "ur.meer")
	require.NoError(t, err)

	assert.Equal(t, "2:255", v.Key())
	assert.Equal(t, "Al-Baqara", v.ChapterName)
	assert.Equal(t, "quran-uthmani 2:255", v.Arabic)
	assert.Equal(t, "ur.meer 2:255", v.Translation)
	assert.Equal(t, "https://cdn.example/audio/262.mp3", v.AudioURL)
	assert.Equal(t, int32(2), f.calls.Load(), "random lookup then edition fetch")
}

func TestAlQuran_GetRandomVerseFailure(t *testing.T) {
	src := newTestSource(t, &fakeQuran{status: http.StatusBadGateway})

	_, err := src.GetRandomVerse(context.Background(), "en.asad")
	var netErr *utils.NetworkError
	assert.True(t, errors.As(err, &netErr))
}

func TestZipChapterRejectsWrongEditionCount(t *testing.T) {
	_, err := zipChapter([]SurahEdition{{}, {}})
	assert.ErrorIs(t, err, ErrEditionMismatch)
}

func TestZipChapterRejectsReorderedVerses(t *testing.T) {
	ar := SurahEdition{Surah: Surah{Number: 1, NumberOfAyahs: 2}, Ayahs: []Ayah{{NumberInSurah: 1}, {NumberInSurah: 2}}}
	tr := SurahEdition{Ayahs: []Ayah{{NumberInSurah: 2}, {NumberInSurah: 1}}}
	au := SurahEdition{Ayahs: []Ayah{{NumberInSurah: 1}, {NumberInSurah: 2}}}

	_, err := zipChapter([]SurahEdition{ar, tr, au})
	assert.ErrorIs(t, err, ErrEditionMismatch)
}

func TestZipVerseRejectsDifferentVerses(t *testing.T) {
	_, err := zipVerse([]Ayah{{Number: 1}, {Number: 2}, {Number: 1}})
	assert.ErrorIs(t, err, ErrEditionMismatch)
}

func TestZipVerseWithoutSurah(t *testing.T) {
	v, err := zipVerse([]Ayah{{Number: 5, NumberInSurah: 5, Text: "ar"}, {Number: 5, Text: "tr"}, {Number: 5}})
	require.NoError(t, err)
	assert.Equal(t, "Surah", v.ChapterName)
	assert.Equal(t, "", v.AudioURL)
}
