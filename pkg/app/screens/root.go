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
	"go.uber.org/zap"
)

type screenType int

const (
	dailyView screenType = iota
	chaptersView
	readerView
)

// headerHeight is the number of lines the header and tabs take.
const headerHeight = 3

// Deps are the services the screens run on.
type Deps struct {
	Settings   *data.Settings
	Daily      *services.DailyVerse
	Explorer   *services.Explorer
	Downloader *services.AudioDownloader
	Logger     *zap.Logger
}

type RootScreen struct {
	deps Deps

	currentView screenType
	daily       *DailyScreen
	chapters    *ChaptersScreen
	reader      *ReaderScreen
	tracker     *components.ProgressTracker

	theme       data.Theme
	translation string
	notice      string

	width  int
	height int
}

func NewRootScreen(ctx context.Context, deps Deps) *RootScreen {
	prefs := deps.Settings.Preferences()
	styles.Apply(prefs.Theme)

	tracker := components.NewProgressTracker(80)
	return &RootScreen{
		deps:        deps,
		currentView: dailyView,
		daily:       NewDailyScreen(ctx, deps.Daily),
		chapters:    NewChaptersScreen(ctx, deps.Explorer),
		reader:      NewReaderScreen(ctx, deps.Explorer, deps.Downloader, tracker),
		tracker:     tracker,
		theme:       prefs.Theme,
		translation: prefs.Translation,
	}
}

func (r *RootScreen) Init() tea.Cmd {
	cmds := []tea.Cmd{
		r.daily.Load(r.translation),
		r.chapters.Init(),
	}
	if r.deps.Downloader != nil {
		cmds = append(cmds, listenForProgress(r.deps.Downloader.GetProgressChannel()))
	}
	return tea.Batch(cmds...)
}

func (r *RootScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		r.width = msg.Width
		r.height = msg.Height
		inner := tea.WindowSizeMsg{Width: msg.Width, Height: msg.Height - headerHeight}
		r.daily.Update(inner)
		r.chapters.Update(inner)
		r.reader.Update(inner)
		return r, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return r, tea.Quit
		case "q":
			if r.currentView == dailyView {
				return r, tea.Quit
			}
		case "ctrl+t":
			r.toggleTheme()
			return r, nil
		case "ctrl+n":
			return r, r.cycleTranslation()
		case "tab":
			switch r.currentView {
			case dailyView:
				r.currentView = chaptersView
				r.chapters.Refresh()
				return r, nil
			case chaptersView:
				r.currentView = dailyView
				return r, nil
			}
		}

	case SwitchScreenMsg:
		switch msg.Screen {
		case "daily":
			r.currentView = dailyView
		case "chapters":
			r.currentView = chaptersView
			r.chapters.Refresh()
		case "reader":
			if number, ok := msg.Data.(int); ok {
				r.currentView = readerView
				cmd = r.reader.Open(number, r.translation)
			}
		}
		return r, cmd

	case services.DownloadProgress:
		r.tracker.Update(msg)
		return r, listenForProgress(r.deps.Downloader.GetProgressChannel())

	case progressClosedMsg:
		return r, nil

	case dailyLoadedMsg:
		newModel, newCmd := r.daily.Update(msg)
		r.daily = newModel.(*DailyScreen)
		return r, newCmd

	case chaptersLoadedMsg:
		newModel, newCmd := r.chapters.Update(msg)
		r.chapters = newModel.(*ChaptersScreen)
		return r, newCmd

	case chapterLoadedMsg, audioDownloadedMsg:
		newModel, newCmd := r.reader.Update(msg)
		r.reader = newModel.(*ReaderScreen)
		return r, newCmd
	}

	// Forward message to active screen
	switch r.currentView {
	case dailyView:
		newModel, newCmd := r.daily.Update(msg)
		r.daily = newModel.(*DailyScreen)
		return r, newCmd
	case chaptersView:
		newModel, newCmd := r.chapters.Update(msg)
		r.chapters = newModel.(*ChaptersScreen)
		return r, newCmd
	case readerView:
		newModel, newCmd := r.reader.Update(msg)
		r.reader = newModel.(*ReaderScreen)
		return r, newCmd
	}

	return r, cmd
}

func (r *RootScreen) toggleTheme() {
	theme, err := r.deps.Settings.ToggleTheme()
	if err != nil {
		r.deps.Logger.Warn("save theme", zap.Error(err))
		r.notice = "Could not save theme"
	}
	r.theme = theme
	styles.Apply(theme)
}

// cycleTranslation switches to the next translation and reloads whatever
// shows translated text.
func (r *RootScreen) cycleTranslation() tea.Cmd {
	next := data.NextTranslation(r.translation)
	if err := r.deps.Settings.SetTranslation(next); err != nil {
		r.deps.Logger.Warn("save translation", zap.Error(err))
		r.notice = "Could not save translation"
	}
	r.translation = next
	return tea.Batch(r.daily.Load(next), r.reader.Reload(next))
}

func (r *RootScreen) View() string {
	header := r.renderHeader()

	var content string
	switch r.currentView {
	case dailyView:
		content = r.daily.View()
	case chaptersView:
		content = r.chapters.View()
	case readerView:
		content = r.reader.View()
	}

	return fmt.Sprintf("%s\n\n%s", header, content)
}

func (r *RootScreen) renderHeader() string {
	brand := styles.TitleStyle.UnsetMarginBottom().Render("PulseSoul")

	name := r.translation
	if t, ok := data.LookupTranslation(r.translation); ok {
		name = t.Name
	}
	controls := styles.MutedStyle.Render(fmt.Sprintf("%s • %s theme", name, r.theme))
	if r.notice != "" {
		controls += "  " + styles.StatusError.Render(r.notice)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, brand, "  ", r.renderTabs(), "  ", controls)
}

func (r *RootScreen) renderTabs() string {
	dailyTab := "Daily Verse"
	chaptersTab := "Chapters"

	if r.currentView == dailyView {
		dailyTab = styles.ActiveTabStyle.Render(dailyTab)
		chaptersTab = styles.InactiveTabStyle.Render(chaptersTab)
	} else {
		dailyTab = styles.InactiveTabStyle.Render(dailyTab)
		chaptersTab = styles.ActiveTabStyle.Render(chaptersTab)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, dailyTab, chaptersTab)
}
