package screens

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/kerbaras/pulsesoul/pkg/services"
)

// SwitchScreenMsg asks the root screen to change the active view.
type SwitchScreenMsg struct {
	Screen string
	Data   interface{}
}

// Messages
type dailyLoadedMsg struct {
	err error
}

type chaptersLoadedMsg struct {
	err error
}

type chapterLoadedMsg struct {
	number int
	err    error
}

type audioDownloadedMsg struct {
	chapter int
	written int
	err     error
}

type progressClosedMsg struct{}

// listenForProgress waits for the next download event.
func listenForProgress(ch <-chan services.DownloadProgress) tea.Cmd {
	return func() tea.Msg {
		p, ok := <-ch
		if !ok {
			return progressClosedMsg{}
		}
		return p
	}
}
