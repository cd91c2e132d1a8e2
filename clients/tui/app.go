package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dohr-michael/taskman/internal/theme"
)

// App is the root model: it scopes the theme context and mounts the Manager.
type App struct {
	theme    *theme.Context
	manager  *Manager
	quitting bool
}

// NewApp composes the root model.
func NewApp(themeCtx *theme.Context, manager *Manager) *App {
	return &App{theme: themeCtx, manager: manager}
}

// Theme returns the context shared with the Manager.
func (a *App) Theme() *theme.Context { return a.theme }

// Init initializes the application.
func (a *App) Init() tea.Cmd {
	return a.manager.Init()
}

// Update handles messages and updates state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.manager.SetWidth(msg.Width)
		return a, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "ctrl+q":
			a.quitting = true
			return a, tea.Quit
		}
	}

	var cmd tea.Cmd
	a.manager, cmd = a.manager.Update(msg)
	return a, cmd
}

// View renders the application.
func (a *App) View() string {
	if a.quitting {
		return "Goodbye!\n"
	}
	return a.manager.View()
}

// Run starts the program on the alt screen and blocks until the user quits or
// ctx is cancelled.
func Run(ctx context.Context, app *App, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, opts...)
	p := tea.NewProgram(app, opts...)
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
