package engine

import (
	"fmt"
	"time"
)

type TimerMode string

const (
	ModeWork  TimerMode = "work"
	ModeBreak TimerMode = "break"
)

const (
	WorkDuration  = 25 * time.Minute
	BreakDuration = 5 * time.Minute
)

func (m TimerMode) Duration() time.Duration {
	if m == ModeBreak {
		return BreakDuration
	}
	return WorkDuration
}

func (m TimerMode) Next() TimerMode {
	if m == ModeWork {
		return ModeBreak
	}
	return ModeWork
}

func ParseTimerMode(s string) (TimerMode, error) {
	switch s {
	case "work", "25", "":
		return ModeWork, nil
	case "break", "5":
		return ModeBreak, nil
	default:
		return "", fmt.Errorf("invalid timer mode: %q", s)
	}
}

// Timer is a Pomodoro countdown. It is a value: every operation returns the
// new state and leaves the receiver untouched.
type Timer struct {
	Mode      TimerMode
	Remaining time.Duration
	Running   bool
}

func NewTimer(mode TimerMode) Timer {
	return Timer{Mode: mode, Remaining: mode.Duration()}
}

func (t Timer) Start() Timer {
	t.Running = true
	return t
}

func (t Timer) Pause() Timer {
	t.Running = false
	return t
}

// Toggle is the start/pause button.
func (t Timer) Toggle() Timer {
	t.Running = !t.Running
	return t
}

// Reset stops the timer and refills the current mode.
func (t Timer) Reset() Timer {
	return NewTimer(t.Mode)
}

// WithMode stops the timer and switches to mode.
func (t Timer) WithMode(mode TimerMode) Timer {
	return NewTimer(mode)
}

// Tick advances a running timer by d. When the countdown reaches zero the
// timer stops, flips to the other mode and reports completed.
func (t Timer) Tick(d time.Duration) (Timer, bool) {
	if !t.Running || d <= 0 {
		return t, false
	}
	t.Remaining -= d
	if t.Remaining > 0 {
		return t, false
	}
	return NewTimer(t.Mode.Next()), true
}

// Progress is the completed fraction of the current session, 0..1.
func (t Timer) Progress() float64 {
	total := t.Mode.Duration()
	return 1 - ratio(float64(t.Remaining), float64(total))
}

// Display formats the remaining time as MM:SS.
func (t Timer) Display() string {
	secs := int(t.Remaining.Round(time.Second) / time.Second)
	if secs < 0 {
		secs = 0
	}
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}
