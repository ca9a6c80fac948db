package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestKeyMapAction(t *testing.T) {
	keys := NewKeyMap(config.DefaultControls())

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Action
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionTopLeft},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionTopRight},
		{"a", runeKey("a"), core.ActionBottomLeft},
		{"A", runeKey("A"), core.ActionBottomLeft},
		{"d", runeKey("d"), core.ActionBottomRight},
		{"r", runeKey("r"), core.ActionReset},
		{"p", runeKey("p"), core.ActionPause},
		{"?", runeKey("?"), core.ActionHelp},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack},
		{"q", runeKey("q"), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound", runeKey("z"), core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := keys.Action(tc.msg); got != tc.expected {
				t.Errorf("Action(%q) = %v, expected %v", tc.msg.String(), got, tc.expected)
			}
		})
	}
}

func TestKeyMapCustomControls(t *testing.T) {
	c := config.DefaultControls()
	c.BottomLeft = []string{"j"}
	c.BottomRight = []string{"l"}
	keys := NewKeyMap(c)

	if got := keys.Action(runeKey("j")); got != core.ActionBottomLeft {
		t.Errorf("Action(j) = %v, expected BottomLeft", got)
	}
	if got := keys.Action(runeKey("a")); got != core.ActionNone {
		t.Errorf("Action(a) = %v, expected None after rebinding", got)
	}
}

func TestHelpKeys(t *testing.T) {
	tests := []struct {
		keys     []string
		expected string
	}{
		{[]string{"a", "A"}, "a"},
		{[]string{"p", "P", " "}, "p/space"},
		{[]string{"left"}, "←"},
		{[]string{"q", "ctrl+c"}, "q/ctrl+c"},
	}

	for _, tc := range tests {
		if got := helpKeys(tc.keys); got != tc.expected {
			t.Errorf("helpKeys(%v) = %q, expected %q", tc.keys, got, tc.expected)
		}
	}
}
