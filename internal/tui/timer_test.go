package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/arja-subbalaxmi/Progress-Tracker/internal/engine"
)

func press(m tea.Model, k string) tea.Model {
	var msg tea.KeyMsg
	switch k {
	case " ":
		msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
	next, _ := m.Update(msg)
	return next
}

func TestTimerModelTicksOnlyWhenStarted(t *testing.T) {
	var m tea.Model = newTimerModel(engine.ModeWork)

	m, _ = m.Update(tickMsg(time.Now()))
	assert.Equal(t, "25:00", m.(timerModel).timer.Display())

	m = press(m, " ")
	m, _ = m.Update(tickMsg(time.Now()))
	assert.Equal(t, "24:59", m.(timerModel).timer.Display())

	m = press(m, "r")
	assert.Equal(t, engine.NewTimer(engine.ModeWork), m.(timerModel).timer)
}

func TestTimerModelCountsCompletedSessions(t *testing.T) {
	tm := newTimerModel(engine.ModeWork)
	tm.timer = engine.Timer{Mode: engine.ModeWork, Remaining: time.Second, Running: true}

	m, _ := tm.Update(tickMsg(time.Now()))
	got := m.(timerModel)
	assert.Equal(t, 1, got.sessions)
	assert.Equal(t, engine.ModeBreak, got.timer.Mode)
	assert.False(t, got.timer.Running)

	m = press(m, "m")
	assert.Equal(t, engine.ModeWork, m.(timerModel).timer.Mode)
}
