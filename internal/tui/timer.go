package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/arja-subbalaxmi/Progress-Tracker/internal/engine"
	"github.com/arja-subbalaxmi/Progress-Tracker/internal/ui"
)

type tickMsg time.Time

type timerModel struct {
	timer    engine.Timer
	keys     timerKeys
	help     help.Model
	bar      progress.Model
	sessions int
	lastLog  string
}

func newTimerModel(mode engine.TimerMode) timerModel {
	return timerModel{
		timer:   engine.NewTimer(mode),
		keys:    newTimerKeys(),
		help:    help.New(),
		bar:     progress.New(progress.WithDefaultGradient(), progress.WithWidth(40)),
		lastLog: "Press space to start.",
	}
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m timerModel) Init() tea.Cmd {
	return tick()
}

func (m timerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	case tickMsg:
		next, done := m.timer.Tick(time.Second)
		if done {
			if m.timer.Mode == engine.ModeWork {
				m.sessions++
				m.lastLog = "Work session complete! Time for a break. \a"
			} else {
				m.lastLog = "Break over. Back to work! \a"
			}
		}
		m.timer = next
		return m, tick()
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Toggle):
			m.timer = m.timer.Toggle()
			if m.timer.Running {
				m.lastLog = "Running."
			} else {
				m.lastLog = "Paused."
			}
		case key.Matches(msg, m.keys.Reset):
			m.timer = m.timer.Reset()
			m.lastLog = "Reset."
		case key.Matches(msg, m.keys.Mode):
			m.timer = m.timer.WithMode(m.timer.Mode.Next())
			m.lastLog = fmt.Sprintf("Switched to %s.", m.timer.Mode)
		}
	}
	return m, nil
}

func (m timerModel) View() string {
	label := "Focus time"
	if m.timer.Mode == engine.ModeBreak {
		label = "Break time"
	}
	return fmt.Sprintf("%s\n\n%s\n%s\n%s\n\n%s\n%s\n",
		ui.Heading(ui.IconClock, "Pomodoro"),
		ui.H2.Render(label),
		ui.Title.Render(m.timer.Display()),
		m.bar.ViewAs(m.timer.Progress()),
		ui.Muted.Render(fmt.Sprintf("%s  sessions completed: %d", m.lastLog, m.sessions)),
		m.help.View(m.keys),
	)
}
