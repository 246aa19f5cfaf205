package tui

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/arja-subbalaxmi/Progress-Tracker/internal/engine"
)

func RunBoard(ctx context.Context, svc *engine.Service, out io.Writer) error {
	m := newBoardModel(ctx, svc)
	p := tea.NewProgram(m, tea.WithOutput(out), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

// RunTimer runs a Pomodoro timer starting in the given mode.
func RunTimer(ctx context.Context, mode engine.TimerMode, out io.Writer) error {
	m := newTimerModel(mode)
	p := tea.NewProgram(m, tea.WithOutput(out), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
