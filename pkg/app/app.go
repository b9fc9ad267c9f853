package app

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kerbaras/pulsesoul/pkg/app/screens"
)

type App struct {
	deps screens.Deps
}

func NewApp(deps screens.Deps) *App {
	return &App{deps: deps}
}

// Run starts the terminal reader and blocks until the user quits. Loads
// still in flight are cancelled on exit.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	model := screens.NewRootScreen(ctx, a.deps)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
