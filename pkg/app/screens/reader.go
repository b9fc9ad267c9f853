package screens

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/pulsesoul/pkg/app/components"
	"github.com/kerbaras/pulsesoul/pkg/app/styles"
	"github.com/kerbaras/pulsesoul/pkg/data"
	"github.com/kerbaras/pulsesoul/pkg/services"
)

// CellWidth approximates the pixel width of one terminal cell, so mouse
// drags can be compared with services.SwipeThreshold.
const CellWidth = 8

// ReaderScreen shows one verse of the open chapter at a time.
type ReaderScreen struct {
	ctx         context.Context
	explorer    *services.Explorer
	downloader  *services.AudioDownloader
	tracker     *components.ProgressTracker
	translation string
	width       int
	height      int
	notice      string

	dragging   bool
	dragStartX int
}

func NewReaderScreen(ctx context.Context, explorer *services.Explorer, downloader *services.AudioDownloader, tracker *components.ProgressTracker) *ReaderScreen {
	return &ReaderScreen{
		ctx:        ctx,
		explorer:   explorer,
		downloader: downloader,
		tracker:    tracker,
	}
}

func (s *ReaderScreen) Init() tea.Cmd {
	return nil
}

// Open loads a chapter and restores the saved position.
func (s *ReaderScreen) Open(number int, translation string) tea.Cmd {
	s.translation = translation
	s.notice = ""
	return func() tea.Msg {
		return chapterLoadedMsg{number: number, err: s.explorer.Select(s.ctx, number, translation)}
	}
}

// Reload fetches the open chapter again in another translation.
func (s *ReaderScreen) Reload(translation string) tea.Cmd {
	s.translation = translation
	snap := s.explorer.Snapshot()
	if snap.Chapter == nil {
		return nil
	}
	number := snap.Chapter.Number
	return func() tea.Msg {
		return chapterLoadedMsg{number: number, err: s.explorer.Reload(s.ctx, translation)}
	}
}

func (s *ReaderScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		s.tracker.SetWidth(msg.Width - 4)

	case tea.KeyMsg:
		switch msg.String() {
		case "right", "l", "n":
			s.explorer.Next()
		case "left", "h":
			s.explorer.Prev()
		case " ", "enter":
			s.explorer.ToggleReveal()
		case "f":
			added, err := s.explorer.ToggleFavorite()
			switch {
			case err != nil:
				s.notice = fmt.Sprintf("Could not save favorite: %s", err)
			case added:
				s.notice = "Added to favorites"
			default:
				s.notice = "Removed from favorites"
			}
		case "p":
			return s, func() tea.Msg {
				s.explorer.PlayAudio(s.ctx)
				return nil
			}
		case "d":
			return s, s.downloadAudio()
		case "r":
			if snap := s.explorer.Snapshot(); snap.State == services.ReaderFailed && snap.Chapter != nil {
				return s, s.Open(snap.Chapter.Number, s.translation)
			}
		case "esc", "backspace", "q":
			s.explorer.Close()
			return s, func() tea.Msg {
				return SwitchScreenMsg{Screen: "chapters"}
			}
		}

	case tea.MouseMsg:
		s.handleMouse(msg)

	case audioDownloadedMsg:
		if msg.err != nil {
			s.notice = fmt.Sprintf("Audio download failed: %s", msg.err)
		} else {
			s.notice = fmt.Sprintf("Chapter %d audio saved (%d new files)", msg.chapter, msg.written)
		}
	}

	return s, nil
}

// handleMouse turns a left-button drag into a swipe.
func (s *ReaderScreen) handleMouse(msg tea.MouseMsg) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			s.dragging = true
			s.dragStartX = msg.X
		}
	case tea.MouseActionRelease:
		if s.dragging {
			s.dragging = false
			s.explorer.Drag((msg.X - s.dragStartX) * CellWidth)
		}
	}
}

func (s *ReaderScreen) downloadAudio() tea.Cmd {
	snap := s.explorer.Snapshot()
	if s.downloader == nil || snap.Chapter == nil {
		return nil
	}
	number := snap.Chapter.Number
	translation := s.translation
	s.notice = fmt.Sprintf("Downloading chapter %d audio...", number)
	return func() tea.Msg {
		written, err := s.downloader.DownloadChapter(s.ctx, number, translation)
		return audioDownloadedMsg{chapter: number, written: written, err: err}
	}
}

func (s *ReaderScreen) View() string {
	snap := s.explorer.Snapshot()
	width := s.width - 4
	if width < 20 {
		width = 76
	}

	title := "Reader"
	if snap.Chapter != nil {
		title = fmt.Sprintf("%d. %s", snap.Chapter.Number, snap.Chapter.EnglishName)
	}
	header := styles.TitleStyle.Render(title)

	var body string
	switch snap.State {
	case services.ReaderLoading:
		body = styles.StatusLoading.Render("Loading...")
	case services.ReaderFailed:
		body = styles.StatusError.Render(snap.Error) + "\n" + styles.MutedStyle.Render("r: retry")
	case services.Ready:
		body = s.renderVerse(snap, width)
	}

	var notice string
	if s.notice != "" {
		notice = "\n" + styles.SubtitleStyle.Render(s.notice)
	}

	downloads := s.tracker.View()
	if downloads != "" {
		downloads = "\n" + downloads
	}

	help := styles.HelpStyle.Render(
		"←/h →/l or drag: previous/next • space: reveal translation • f: favorite • p: play • d: download audio • esc: back",
	)

	return fmt.Sprintf("%s\n%s%s%s\n%s", header, body, notice, downloads, help)
}

func (s *ReaderScreen) renderVerse(snap services.ExplorerSnapshot, width int) string {
	v, ok := snap.Current()
	if !ok {
		return styles.MutedStyle.Render("This chapter has no verses")
	}
	total := len(snap.Detail.Verses)
	position := snap.Index + 1
	percent := data.ProgressEntry{LastIndex: snap.Index, Total: total}.Percent()

	progress := fmt.Sprintf("%s  %s",
		styles.MutedStyle.Render(fmt.Sprintf("Verse %d of %d • %d%%", position, total, percent)),
		components.SimpleProgress(position, total, 20),
	)

	translation := styles.MutedStyle.Render("space: reveal translation")
	if snap.Reveal {
		translation = styles.TextStyle.Width(width - 6).Render(v.Translation)
	}

	mark := "☆ f: favorite"
	if snap.Favorite {
		mark = "★ favorite"
	}

	card := styles.CardStyle.Width(width).Render(lipgloss.JoinVertical(lipgloss.Left,
		styles.ArabicStyle.Width(width-6).Render(v.Arabic),
		"",
		translation,
		"",
		styles.MutedStyle.Render(fmt.Sprintf("%s  •  %s", v.Key(), mark)),
	))

	return lipgloss.JoinVertical(lipgloss.Left, progress, card)
}
