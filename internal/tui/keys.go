package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/balkashynov/pomo/internal/session"
)

// keyMap holds the global timer bindings
type keyMap struct {
	Toggle    key.Binding
	Reset     key.Binding
	Focus     key.Binding
	Short     key.Binding
	Long      key.Binding
	AutoStart key.Binding
	Settings  key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Toggle: key.NewBinding(
			key.WithKeys(" ", "space"),
			key.WithHelp("space", "start/pause"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		Focus: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "focus"),
		),
		Short: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "short break"),
		),
		Long: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "long break"),
		),
		AutoStart: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "auto-start"),
		),
		Settings: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "settings"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// modeBindings maps each mode to the key that selects it
func (k keyMap) modeBindings() map[session.Mode]key.Binding {
	return map[session.Mode]key.Binding{
		session.Focus:      k.Focus,
		session.ShortBreak: k.Short,
		session.LongBreak:  k.Long,
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Reset, k.Settings, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Toggle, k.Reset, k.AutoStart},
		{k.Focus, k.Short, k.Long},
		{k.Settings, k.Help, k.Quit},
	}
}
