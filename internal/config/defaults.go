package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-pong/internal/games/pong"
)

//go:embed defaults/pong.yaml
var defaultPongYAML []byte

// DefaultPongConfig returns the default Pong configuration: the 400x600
// arena with the recommended policies, arrows for the top paddle and A/D for the bottom.
func DefaultPongConfig() PongConfig {
	return FromSettings(pong.DefaultSettings())
}

// DefaultHoldMS covers the usual gap between a key press and the terminal's
// first auto-repeat.
const DefaultHoldMS = 200

// DefaultControls returns the default bindings: arrows drive the top paddle,
// A/D the bottom one.
func DefaultControls() ControlsConfig {
	return ControlsConfig{
		HoldMS:      DefaultHoldMS,
		TopLeft:     []string{"left"},
		TopRight:    []string{"right"},
		BottomLeft:  []string{"a", "A"},
		BottomRight: []string{"d", "D"},
		Reset:       []string{"r", "R"},
		Pause:       []string{"p", "P", " "},
		Help:        []string{"?"},
		Back:        []string{"esc"},
		Quit:        []string{"q", "ctrl+c"},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultPongYAML
}
