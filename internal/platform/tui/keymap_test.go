package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/destroyer/internal/core"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestKeyMapAction(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Action
	}{
		{"space shoots", tea.KeyMsg{Type: tea.KeySpace}, core.ActionShoot},
		{"p shoots", runeKey("p"), core.ActionShoot},
		{"left turns left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionTurnLeft},
		{"a turns left", runeKey("a"), core.ActionTurnLeft},
		{"right turns right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionTurnRight},
		{"d turns right", runeKey("d"), core.ActionTurnRight},
		{"r restarts", runeKey("r"), core.ActionRestart},
		{"n next level", runeKey("n"), core.ActionNextLevel},
		{"esc pauses", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause},
		{"q quits", runeKey("q"), core.ActionQuit},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"help is not an action", runeKey("?"), core.ActionNone},
		{"unbound key", runeKey("z"), core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keys.Action(tt.msg); got != tt.expected {
				t.Errorf("Action(%q) = %v, expected %v", tt.msg.String(), got, tt.expected)
			}
		})
	}
}

func TestKeyMapHelp(t *testing.T) {
	keys := DefaultKeyMap()

	if len(keys.ShortHelp()) == 0 {
		t.Error("ShortHelp() is empty")
	}

	total := 0
	for _, col := range keys.FullHelp() {
		total += len(col)
	}
	if total != 8 {
		t.Errorf("FullHelp() lists %d bindings, expected 8", total)
	}
}
