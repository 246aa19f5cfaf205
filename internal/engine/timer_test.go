package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimerCountsDownOnlyWhileRunning(t *testing.T) {
	tm := NewTimer(ModeWork)
	assert.Equal(t, "25:00", tm.Display())

	same, done := tm.Tick(time.Minute)
	assert.False(t, done)
	assert.Equal(t, tm, same)

	running := tm.Start()
	assert.False(t, tm.Running, "receiver must not change")
	next, done := running.Tick(24 * time.Minute)
	assert.False(t, done)
	assert.Equal(t, "01:00", next.Display())
	assert.InDelta(t, 0.96, next.Progress(), 1e-9)

	paused := next.Pause()
	after, _ := paused.Tick(30 * time.Second)
	assert.Equal(t, paused, after)
}

func TestTimerCompletionSwitchesMode(t *testing.T) {
	tm := NewTimer(ModeWork).Start()
	tm, done := tm.Tick(WorkDuration)
	assert.True(t, done)
	assert.Equal(t, ModeBreak, tm.Mode)
	assert.Equal(t, BreakDuration, tm.Remaining)
	assert.False(t, tm.Running)

	tm, done = tm.Toggle().Tick(BreakDuration + time.Second)
	assert.True(t, done)
	assert.Equal(t, ModeWork, tm.Mode)
}

func TestTimerResetAndModeChangeStop(t *testing.T) {
	tm, _ := NewTimer(ModeWork).Start().Tick(10 * time.Minute)

	reset := tm.Reset()
	assert.Equal(t, NewTimer(ModeWork), reset)

	switched := tm.WithMode(ModeBreak)
	assert.Equal(t, "05:00", switched.Display())
	assert.False(t, switched.Running)
}

func TestParseTimerMode(t *testing.T) {
	m, err := ParseTimerMode("5")
	assert.NoError(t, err)
	assert.Equal(t, ModeBreak, m)

	_, err = ParseTimerMode("15")
	assert.Error(t, err)
}
