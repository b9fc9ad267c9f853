package screens

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/pulsesoul/pkg/app/styles"
	"github.com/kerbaras/pulsesoul/pkg/services"
)

type DailyScreen struct {
	ctx    context.Context
	daily  *services.DailyVerse
	width  int
	height int
	notice string
}

func NewDailyScreen(ctx context.Context, daily *services.DailyVerse) *DailyScreen {
	return &DailyScreen{ctx: ctx, daily: daily}
}

func (s *DailyScreen) Init() tea.Cmd {
	return nil
}

// Load fetches (or reads from cache) today's verse in translation.
func (s *DailyScreen) Load(translation string) tea.Cmd {
	return func() tea.Msg {
		return dailyLoadedMsg{err: s.daily.Load(s.ctx, translation)}
	}
}

func (s *DailyScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "b":
			added, err := s.daily.ToggleBookmark()
			switch {
			case err != nil:
				s.notice = fmt.Sprintf("Could not save bookmark: %s", err)
			case added:
				s.notice = "Bookmarked"
			default:
				s.notice = "Bookmark removed"
			}
		case "p":
			return s, func() tea.Msg {
				s.daily.PlayAudio(s.ctx)
				return nil
			}
		}

	case dailyLoadedMsg:
		if msg.err == nil || errors.Is(msg.err, services.ErrSuperseded) {
			s.notice = ""
		}
	}

	return s, nil
}

func (s *DailyScreen) View() string {
	snap := s.daily.Snapshot()
	width := s.width - 4
	if width < 20 {
		width = 76
	}

	header := styles.TitleStyle.Render("Verse of the Day")

	var body string
	switch {
	case snap.State == services.Failed:
		body = styles.StatusError.Render(snap.Error)
	case snap.Verse == nil:
		body = styles.StatusLoading.Render("Loading...")
	default:
		v := snap.Verse
		mark := "☆ b: bookmark"
		if snap.Bookmarked {
			mark = "★ bookmarked"
		}
		parts := []string{
			styles.ArabicStyle.Width(width - 6).Render(v.Arabic),
			"",
			styles.TextStyle.Width(width - 6).Render(v.Translation),
			"",
			styles.MutedStyle.Render(fmt.Sprintf("%s  •  %s", v.Label(), mark)),
		}
		if snap.State == services.Loading {
			parts = append(parts, styles.StatusLoading.Render("Loading..."))
		}
		body = styles.CardStyle.Width(width).Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
	}

	var notice string
	if s.notice != "" {
		notice = "\n" + styles.SubtitleStyle.Render(s.notice)
	}

	help := styles.HelpStyle.Render(
		"b: bookmark • p: play recitation • tab: chapters • ctrl+t: theme • ctrl+n: translation • q: quit",
	)

	return fmt.Sprintf("%s\n%s%s\n%s", header, body, notice, help)
}
