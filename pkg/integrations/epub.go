package integrations

import (
	"fmt"
	"html"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-shiori/go-epub"
	"github.com/kerbaras/pulsesoul/pkg/data"
)

type EPubBuilder struct {
	outputDir string
}

func NewEPubBuilder(outputDir string) *EPubBuilder {
	if outputDir == "" {
		outputDir, _ = os.MkdirTemp("", "pulsesoul-epub-*")
	}
	return &EPubBuilder{outputDir: outputDir}
}

// CreateChapterEPub compiles chapters into one book, one section per chapter,
// ordered by chapter number.
func (b *EPubBuilder) CreateChapterEPub(title string, translation data.Translation, chapters []*data.ChapterDetail) (string, error) {
	if len(chapters) == 0 {
		return "", fmt.Errorf("no chapters to compile")
	}

	sorted := make([]*data.ChapterDetail, len(chapters))
	copy(sorted, chapters)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Number < sorted[j].Number
	})

	e, cleanup, err := b.newBook(title, translation.Name)
	if err != nil {
		return "", err
	}
	defer cleanup()

	for _, ch := range sorted {
		if err := addChapterToEPub(e, ch); err != nil {
			return "", fmt.Errorf("failed to add chapter %d: %w", ch.Number, err)
		}
	}

	return b.write(e, title)
}

// CreateShelfEPub compiles saved verses (bookmarks or favorites) in shelf order.
func (b *EPubBuilder) CreateShelfEPub(title string, entries []data.BookmarkEntry) (string, error) {
	if len(entries) == 0 {
		return "", fmt.Errorf("no saved verses to compile")
	}

	e, cleanup, err := b.newBook(title, fmt.Sprintf("%d verses", len(entries)))
	if err != nil {
		return "", err
	}
	defer cleanup()

	var body strings.Builder
	fmt.Fprintf(&body, "<h1>%s</h1>\n", html.EscapeString(title))
	for _, entry := range entries {
		label := fmt.Sprintf("%s, verse %d (%s)", entry.ChapterLabel, entry.VerseNumber, entry.Key)
		writeVerse(&body, label, entry.Arabic, entry.Translation)
	}

	if _, err := e.AddSection(body.String(), title, "", ""); err != nil {
		return "", fmt.Errorf("failed to add section: %w", err)
	}

	return b.write(e, title)
}

// newBook starts a book with a rendered cover. The returned cleanup removes
// the cover file and must run only after the book is written, since go-epub
// reads added files at Write time.
func (b *EPubBuilder) newBook(title, subtitle string) (*epub.Epub, func(), error) {
	noop := func() {}
	if err := os.MkdirAll(b.outputDir, 0755); err != nil {
		return nil, noop, fmt.Errorf("failed to create output directory: %w", err)
	}

	e, err := epub.NewEpub(title)
	if err != nil {
		return nil, noop, fmt.Errorf("failed to create EPub: %w", err)
	}
	e.SetAuthor("PulseSoul")
	e.SetDescription(subtitle)
	e.SetLang("ar")

	coverPath, err := writeCover(title, subtitle)
	if err != nil {
		return nil, noop, err
	}
	cleanup := func() { os.Remove(coverPath) }

	internalPath, err := e.AddImage(coverPath, "cover.png")
	if err != nil {
		cleanup()
		return nil, noop, fmt.Errorf("failed to add cover: %w", err)
	}
	page := fmt.Sprintf(`<div class="cover"><img src="%s" alt="%s" style="width:100%%;height:auto;"/></div>`,
		internalPath, html.EscapeString(title))
	if _, err := e.AddSection(page, "Cover", "cover.xhtml", ""); err != nil {
		cleanup()
		return nil, noop, fmt.Errorf("failed to add cover section: %w", err)
	}
	return e, cleanup, nil
}

func writeCover(title, subtitle string) (string, error) {
	cover, err := RenderCover(title, subtitle)
	if err != nil {
		return "", fmt.Errorf("failed to render cover: %w", err)
	}

	f, err := os.CreateTemp("", "pulsesoul-cover-*.png")
	if err != nil {
		return "", err
	}
	if _, err := f.Write(cover); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", err
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", err
	}
	return f.Name(), nil
}

func (b *EPubBuilder) write(e *epub.Epub, title string) (string, error) {
	outputPath := filepath.Join(b.outputDir, sanitizeFilename(title)+".epub")
	if err := e.Write(outputPath); err != nil {
		return "", fmt.Errorf("failed to write EPub: %w", err)
	}
	return outputPath, nil
}

func addChapterToEPub(e *epub.Epub, ch *data.ChapterDetail) error {
	if len(ch.Verses) == 0 {
		return fmt.Errorf("chapter has no verses")
	}

	sectionTitle := fmt.Sprintf("%d. %s", ch.Number, ch.EnglishName)

	var body strings.Builder
	fmt.Fprintf(&body, "<h1>%s</h1>\n", html.EscapeString(sectionTitle))
	if ch.ArabicName != "" {
		fmt.Fprintf(&body, "<h2 dir=\"rtl\">%s</h2>\n", html.EscapeString(ch.ArabicName))
	}
	for _, v := range ch.Verses {
		writeVerse(&body, v.Ref.String(), v.Arabic, v.Translation)
	}

	_, err := e.AddSection(body.String(), sectionTitle, "", "")
	if err != nil {
		return fmt.Errorf("failed to add section: %w", err)
	}
	return nil
}

func writeVerse(b *strings.Builder, label, arabic, translation string) {
	b.WriteString(`<div class="verse">`)
	fmt.Fprintf(b, `<p dir="rtl" lang="ar">%s</p>`, html.EscapeString(arabic))
	if translation != "" {
		fmt.Fprintf(b, `<p>%s</p>`, html.EscapeString(translation))
	}
	fmt.Fprintf(b, `<p><small>%s</small></p>`, html.EscapeString(label))
	b.WriteString("</div>\n")
}

func sanitizeFilename(name string) string {
	invalid := []string{"/", "\\", ":", "*", "?", "\"", "<", ">", "|"}
	result := name
	for _, char := range invalid {
		result = strings.ReplaceAll(result, char, "_")
	}
	result = strings.TrimSpace(result)
	result = strings.Trim(result, ".")
	if result == "" {
		result = "pulsesoul"
	}
	return result
}
