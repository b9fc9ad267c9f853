package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/pulsesoul/pkg/app/styles"
	"github.com/kerbaras/pulsesoul/pkg/data"
)

// cardHeight is the number of lines one rendered chapter card takes.
const cardHeight = 5

type ChapterListItem struct {
	Chapter  data.ChapterSummary
	Progress *data.ProgressEntry
}

type ChapterList struct {
	Items         []ChapterListItem
	SelectedIndex int
	Width         int
	Height        int
	EmptyMessage  string
}

func NewChapterList() *ChapterList {
	return &ChapterList{
		Items:         []ChapterListItem{},
		SelectedIndex: 0,
		Width:         80,
		Height:        20,
		EmptyMessage:  "No chapters",
	}
}

// NewChapterListItems pairs chapters with their saved reading position.
func NewChapterListItems(chapters []data.ChapterSummary, progress map[int]data.ProgressEntry) []ChapterListItem {
	items := make([]ChapterListItem, len(chapters))
	for i, c := range chapters {
		items[i] = ChapterListItem{Chapter: c}
		if p, ok := progress[c.Number]; ok {
			items[i].Progress = &p
		}
	}
	return items
}

func (m *ChapterList) SetItems(items []ChapterListItem) {
	m.Items = items
	if m.SelectedIndex >= len(items) && len(items) > 0 {
		m.SelectedIndex = len(items) - 1
	}
	if len(items) == 0 {
		m.SelectedIndex = 0
	}
}

func (m *ChapterList) Next() {
	if len(m.Items) == 0 {
		return
	}
	m.SelectedIndex++
	if m.SelectedIndex >= len(m.Items) {
		m.SelectedIndex = 0
	}
}

func (m *ChapterList) Prev() {
	if len(m.Items) == 0 {
		return
	}
	m.SelectedIndex--
	if m.SelectedIndex < 0 {
		m.SelectedIndex = len(m.Items) - 1
	}
}

func (m *ChapterList) Selected() *ChapterListItem {
	if len(m.Items) == 0 || m.SelectedIndex >= len(m.Items) {
		return nil
	}
	return &m.Items[m.SelectedIndex]
}

// window returns the range of items that fit in Height, keeping the
// selection in view.
func (m *ChapterList) window() (int, int) {
	visible := m.Height / cardHeight
	if visible < 1 {
		visible = 1
	}
	if len(m.Items) <= visible {
		return 0, len(m.Items)
	}
	start := m.SelectedIndex - visible/2
	if start < 0 {
		start = 0
	}
	end := start + visible
	if end > len(m.Items) {
		end = len(m.Items)
		start = end - visible
	}
	return start, end
}

func (m *ChapterList) View() string {
	if len(m.Items) == 0 {
		emptyMsg := styles.MutedStyle.Render(m.EmptyMessage)
		return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, emptyMsg)
	}

	var b strings.Builder
	start, end := m.window()
	for i := start; i < end; i++ {
		b.WriteString(m.renderCard(m.Items[i], i == m.SelectedIndex))
		b.WriteString("\n")
	}
	if start > 0 || end < len(m.Items) {
		b.WriteString(styles.MutedStyle.Render(
			fmt.Sprintf("Showing %d-%d of %d chapters", start+1, end, len(m.Items)),
		))
	}
	return b.String()
}

func (m *ChapterList) renderCard(item ChapterListItem, active bool) string {
	cardStyle := styles.CardStyle
	if active {
		cardStyle = styles.ActiveCardStyle
	}
	c := item.Chapter
	inner := m.Width - 8
	if inner < 10 {
		inner = 10
	}

	title := lipgloss.JoinHorizontal(lipgloss.Top,
		styles.SubtitleStyle.Render(fmt.Sprintf("%d. ", c.Number)),
		styles.TextStyle.Bold(true).Render(c.EnglishName),
		"  ",
		styles.MutedStyle.Render(c.ArabicName),
	)
	info := styles.MutedStyle.Render(fmt.Sprintf("%s • %s • %d verses", c.EnglishMeaning, c.RevelationType, c.VerseCount))

	progress := styles.MutedStyle.Render("Not started")
	if item.Progress != nil {
		bar := SimpleProgress(item.Progress.LastIndex, c.VerseCount, inner-8)
		progress = fmt.Sprintf("%s %3d%%", bar, item.Progress.Percent())
	}

	cardContent := lipgloss.JoinVertical(lipgloss.Left, title, info, progress)
	return cardStyle.Width(m.Width - 4).Render(cardContent)
}
