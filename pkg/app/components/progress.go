package components

import (
	"fmt"
	"sort"
	"strings"

	"github.com/kerbaras/pulsesoul/pkg/app/styles"
	"github.com/kerbaras/pulsesoul/pkg/services"
)

// ProgressTracker shows running audio downloads, one line group per chapter.
type ProgressTracker struct {
	downloads map[int]*services.DownloadProgress
	width     int
}

func NewProgressTracker(width int) *ProgressTracker {
	return &ProgressTracker{
		downloads: make(map[int]*services.DownloadProgress),
		width:     width,
	}
}

func (p *ProgressTracker) SetWidth(width int) {
	p.width = width
}

func (p *ProgressTracker) Update(progress services.DownloadProgress) {
	if progress.Status == "complete" {
		delete(p.downloads, progress.Chapter)
		return
	}
	prog := progress // Copy
	p.downloads[progress.Chapter] = &prog
}

func (p *ProgressTracker) Clear() {
	p.downloads = make(map[int]*services.DownloadProgress)
}

func (p *ProgressTracker) HasActive() bool {
	return len(p.downloads) > 0
}

func (p *ProgressTracker) View() string {
	if len(p.downloads) == 0 {
		return ""
	}

	chapters := make([]int, 0, len(p.downloads))
	for n := range p.downloads {
		chapters = append(chapters, n)
	}
	sort.Ints(chapters)

	var b strings.Builder
	b.WriteString(styles.SubtitleStyle.Render("Audio downloads"))
	b.WriteString("\n")

	for _, n := range chapters {
		progress := p.downloads[n]

		statusText := fmt.Sprintf("Chapter %d: %s", n, progress.Status)
		if progress.Total > 0 {
			percentage := float64(progress.Current) / float64(progress.Total) * 100
			statusText = fmt.Sprintf("Chapter %d: %s (%d/%d verses - %.0f%%)",
				n, progress.Status, progress.Current, progress.Total, percentage)
			b.WriteString(renderProgressBar(progress.Current, progress.Total, p.width-4))
			b.WriteString("\n")
		}

		b.WriteString(styles.StatusStyle(progress.Status).Render(statusText))
		b.WriteString("\n")

		if progress.Error != nil {
			b.WriteString(styles.StatusError.Render(fmt.Sprintf("Error: %s", progress.Error)))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func renderProgressBar(current, total, width int) string {
	if total <= 0 || width <= 0 {
		return ""
	}

	filled := int(float64(current) / float64(total) * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	return styles.ProgressBarStyle.Render(strings.Repeat("█", filled)) +
		styles.ProgressEmptyStyle.Render(strings.Repeat("░", width-filled))
}

// SimpleProgress renders a simple progress bar
func SimpleProgress(current, total, width int) string {
	return renderProgressBar(current, total, width)
}
