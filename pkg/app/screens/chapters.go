package screens

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/kerbaras/pulsesoul/pkg/app/components"
	"github.com/kerbaras/pulsesoul/pkg/app/styles"
	"github.com/kerbaras/pulsesoul/pkg/services"
)

// ChaptersScreen lists the chapters with a live search filter.
type ChaptersScreen struct {
	ctx      context.Context
	explorer *services.Explorer
	input    textinput.Model
	list     *components.ChapterList
	width    int
	height   int
}

func NewChaptersScreen(ctx context.Context, explorer *services.Explorer) *ChaptersScreen {
	ti := textinput.New()
	ti.Placeholder = "Search by name or number..."
	ti.Focus()
	ti.CharLimit = 50
	ti.Width = 40

	list := components.NewChapterList()
	list.EmptyMessage = "Loading..."

	return &ChaptersScreen{
		ctx:      ctx,
		explorer: explorer,
		input:    ti,
		list:     list,
	}
}

func (s *ChaptersScreen) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, s.loadChapters)
}

func (s *ChaptersScreen) loadChapters() tea.Msg {
	return chaptersLoadedMsg{err: s.explorer.LoadChapters(s.ctx)}
}

// Refresh rebuilds the list from the explorer's chapters, query and saved
// progress.
func (s *ChaptersScreen) Refresh() {
	snap := s.explorer.Snapshot()
	s.list.SetItems(components.NewChapterListItems(snap.Filtered, s.explorer.Progress()))
	switch {
	case snap.ListState == services.Failed:
		s.list.EmptyMessage = snap.ListError
	case snap.ListState == services.Loading || snap.ListState == services.Idle:
		s.list.EmptyMessage = "Loading..."
	default:
		s.list.EmptyMessage = "No chapters match your search"
	}
}

func (s *ChaptersScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		s.list.Width = msg.Width - 4
		s.list.Height = msg.Height - 8
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "ctrl+k":
			s.list.Prev()
			return s, nil
		case "down", "ctrl+j":
			s.list.Next()
			return s, nil
		case "ctrl+r":
			return s, s.loadChapters
		case "enter":
			selected := s.list.Selected()
			if selected == nil {
				return s, nil
			}
			number := selected.Chapter.Number
			return s, func() tea.Msg {
				return SwitchScreenMsg{Screen: "reader", Data: number}
			}
		}

		before := s.input.Value()
		s.input, cmd = s.input.Update(msg)
		if s.input.Value() != before {
			s.explorer.SetQuery(s.input.Value())
			s.list.SelectedIndex = 0
			s.Refresh()
		}
		return s, cmd

	case chaptersLoadedMsg:
		s.Refresh()
		return s, nil
	}

	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *ChaptersScreen) View() string {
	header := styles.TitleStyle.Render("Chapters")

	input := styles.FocusedInputStyle.Render(s.input.View())

	count := styles.MutedStyle.Render(fmt.Sprintf("%d chapters", len(s.list.Items)))

	help := styles.HelpStyle.Render(
		"type to search • ↑/↓: navigate • enter: read • ctrl+r: reload • tab: daily verse • ctrl+c: quit",
	)

	return fmt.Sprintf("%s\n%s %s\n\n%s\n%s", header, input, count, s.list.View(), help)
}
