package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/destroyer/internal/core"
)

// KeyMap defines the key bindings for a running game.
type KeyMap struct {
	Shoot     key.Binding
	TurnLeft  key.Binding
	TurnRight key.Binding
	Restart   key.Binding
	NextLevel key.Binding
	Pause     key.Binding
	Help      key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Shoot, k.TurnLeft, k.TurnRight, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Shoot, k.TurnLeft, k.TurnRight},
		{k.Restart, k.NextLevel, k.Pause},
		{k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Shoot: key.NewBinding(
			key.WithKeys(" ", "p"),
			key.WithHelp("space/p", "shoot"),
		),
		TurnLeft: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("left/a", "turn left"),
		),
		TurnRight: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("right/d", "turn right"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart level"),
		),
		NextLevel: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "next level"),
		),
		Pause: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "pause"),
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

// Action translates a key message to a game action.
// Help is handled by the model and maps to ActionNone.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Shoot):
		return core.ActionShoot
	case key.Matches(msg, k.TurnLeft):
		return core.ActionTurnLeft
	case key.Matches(msg, k.TurnRight):
		return core.ActionTurnRight
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	case key.Matches(msg, k.NextLevel):
		return core.ActionNextLevel
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	}
	return core.ActionNone
}
