package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
)

// KeyMap holds the in-match key bindings, built from the controls config.
type KeyMap struct {
	TopLeft     key.Binding
	TopRight    key.Binding
	BottomLeft  key.Binding
	BottomRight key.Binding
	Reset       key.Binding
	Pause       key.Binding
	Help        key.Binding
	Back        key.Binding
	Quit        key.Binding
}

// NewKeyMap creates bindings from the controls section of the config.
func NewKeyMap(c config.ControlsConfig) KeyMap {
	return KeyMap{
		TopLeft:     binding(c.TopLeft, "top left"),
		TopRight:    binding(c.TopRight, "top right"),
		BottomLeft:  binding(c.BottomLeft, "bottom left"),
		BottomRight: binding(c.BottomRight, "bottom right"),
		Reset:       binding(c.Reset, "new match"),
		Pause:       binding(c.Pause, "pause"),
		Help:        binding(c.Help, "more keys"),
		Back:        binding(c.Back, "menu"),
		Quit:        binding(c.Quit, "quit"),
	}
}

func binding(keys []string, desc string) key.Binding {
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(helpKeys(keys), desc),
	)
}

// helpKeys renders key names for the help bar ("a/d", "space").
func helpKeys(keys []string) string {
	names := make([]string, 0, len(keys))
	seen := make(map[string]bool)
	for _, k := range keys {
		switch k {
		case " ":
			k = "space"
		case "left":
			k = "←"
		case "right":
			k = "→"
		}
		k = strings.ToLower(k)
		if seen[k] {
			continue
		}
		seen[k] = true
		names = append(names, k)
	}
	return strings.Join(names, "/")
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pause, k.Reset, k.Help, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.TopLeft, k.TopRight},
		{k.BottomLeft, k.BottomRight},
		{k.Pause, k.Reset, k.Help},
		{k.Back, k.Quit},
	}
}

// Action resolves a key press to a platform action.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Back):
		return core.ActionBack
	case key.Matches(msg, k.TopLeft):
		return core.ActionTopLeft
	case key.Matches(msg, k.TopRight):
		return core.ActionTopRight
	case key.Matches(msg, k.BottomLeft):
		return core.ActionBottomLeft
	case key.Matches(msg, k.BottomRight):
		return core.ActionBottomRight
	case key.Matches(msg, k.Reset):
		return core.ActionReset
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	case key.Matches(msg, k.Help):
		return core.ActionHelp
	}
	return core.ActionNone
}

// MenuKeyMap defines the key bindings for menus and the replay browser.
type MenuKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Next    key.Binding
	Prev    key.Binding
	Select  key.Binding
	Delete  key.Binding
	Replays key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// DefaultMenuKeyMap returns default menu key bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("↓/j", "down"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next ruleset"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev ruleset"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select"),
		),
		Delete: key.NewBinding(
			key.WithKeys("x", "delete"),
			key.WithHelp("x", "delete"),
		),
		Replays: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "replays"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
