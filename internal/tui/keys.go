package tui

import "github.com/charmbracelet/bubbles/key"

type boardKeys struct {
	Next    key.Binding
	Prev    key.Binding
	PrevMon key.Binding
	NextMon key.Binding
	Refresh key.Binding
	Quit    key.Binding
}

func (k boardKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.PrevMon, k.NextMon, k.Refresh, k.Quit}
}

func (k boardKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func newBoardKeys() boardKeys {
	return boardKeys{
		Next:    key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab/→", "next view")),
		Prev:    key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("shift+tab/←", "prev view")),
		PrevMon: key.NewBinding(key.WithKeys("["), key.WithHelp("[", "prev month")),
		NextMon: key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "next month")),
		Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

type timerKeys struct {
	Toggle key.Binding
	Reset  key.Binding
	Mode   key.Binding
	Quit   key.Binding
}

func (k timerKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Reset, k.Mode, k.Quit}
}

func (k timerKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func newTimerKeys() timerKeys {
	return timerKeys{
		Toggle: key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "start/pause")),
		Reset:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		Mode:   key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "work/break")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q", "quit")),
	}
}
