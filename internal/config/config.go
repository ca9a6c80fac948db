// Package config provides YAML-based configuration for the Pong engine:
// arena geometry, ball and paddle tuning, policy selection, difficulty
// presets and key bindings.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-pong/internal/games/pong"
)

// ErrInvalidConfig is wrapped by every error returned from PongConfig.Validate.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// PongConfig contains all configuration for a Pong match.
type PongConfig struct {
	Board    BoardConfig    `yaml:"board"`
	Paddle   PaddleConfig   `yaml:"paddle"`
	Ball     BallConfig     `yaml:"ball"`
	Gameplay GameplayConfig `yaml:"gameplay"`
	Physics  PhysicsConfig  `yaml:"physics"`
	Controls ControlsConfig `yaml:"controls"`
}

// BoardConfig defines the arena size in arena pixels.
type BoardConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PaddleConfig defines paddle geometry and speed.
type PaddleConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"` // pixels per tick
	Inset  float64 `yaml:"inset"` // gap between goal line and paddle back
}

// BallConfig defines ball size and serve speed.
type BallConfig struct {
	Size  float64 `yaml:"size"`
	Speed float64 `yaml:"speed"` // per-axis serve speed, pixels per tick
}

// GameplayConfig defines match rules.
type GameplayConfig struct {
	ScoreLimit int `yaml:"score_limit"` // 0 = play until reset
}

// PhysicsConfig defines rebound tuning and the collision policies.
type PhysicsConfig struct {
	SnapMargin  float64 `yaml:"snap_margin"`
	AngleGain   float64 `yaml:"angle_gain"`
	SpeedUp     float64 `yaml:"speed_up"`
	MaxVXFactor float64 `yaml:"max_vx_factor"`
	MaxVYFactor float64 `yaml:"max_vy_factor"`

	Collision pong.CollisionPolicy `yaml:"collision"`
	Rebound   pong.ReboundPolicy   `yaml:"rebound"`
	Wall      pong.WallPolicy      `yaml:"wall"`
	Miss      pong.MissPolicy      `yaml:"miss"`
}

// ControlsConfig maps actions to key names as reported by the terminal
// ("left", "a", " ", "ctrl+c").
type ControlsConfig struct {
	// HoldMS is how long a paddle key counts as held after its last press
	// or auto-repeat. Terminals report no key releases.
	HoldMS int `yaml:"hold_ms"`

	TopLeft     []string `yaml:"top_left"`
	TopRight    []string `yaml:"top_right"`
	BottomLeft  []string `yaml:"bottom_left"`
	BottomRight []string `yaml:"bottom_right"`
	Reset       []string `yaml:"reset"`
	Pause       []string `yaml:"pause"`
	Help        []string `yaml:"help"`
	Back        []string `yaml:"back"`
	Quit        []string `yaml:"quit"`
}

// bindings returns every action with its keys in a fixed order.
func (c ControlsConfig) bindings() []struct {
	name string
	keys []string
} {
	return []struct {
		name string
		keys []string
	}{
		{"top_left", c.TopLeft},
		{"top_right", c.TopRight},
		{"bottom_left", c.BottomLeft},
		{"bottom_right", c.BottomRight},
		{"reset", c.Reset},
		{"pause", c.Pause},
		{"help", c.Help},
		{"back", c.Back},
		{"quit", c.Quit},
	}
}

// Settings converts the configuration into engine settings.
func (c PongConfig) Settings() pong.Settings {
	return pong.Settings{
		BoardWidth:   c.Board.Width,
		BoardHeight:  c.Board.Height,
		PaddleWidth:  c.Paddle.Width,
		PaddleHeight: c.Paddle.Height,
		BallSize:     c.Ball.Size,
		PaddleSpeed:  c.Paddle.Speed,
		BallSpeed:    c.Ball.Speed,
		ScoreLimit:   c.Gameplay.ScoreLimit,
		PaddleInset:  c.Paddle.Inset,
		SnapMargin:   c.Physics.SnapMargin,
		AngleGain:    c.Physics.AngleGain,
		SpeedUp:      c.Physics.SpeedUp,
		MaxVXFactor:  c.Physics.MaxVXFactor,
		MaxVYFactor:  c.Physics.MaxVYFactor,
		Collision:    c.Physics.Collision,
		Rebound:      c.Physics.Rebound,
		Wall:         c.Physics.Wall,
		Miss:         c.Physics.Miss,
	}
}

// FromSettings builds a configuration from engine settings with the default
// key bindings.
func FromSettings(s pong.Settings) PongConfig {
	return PongConfig{
		Board: BoardConfig{Width: s.BoardWidth, Height: s.BoardHeight},
		Paddle: PaddleConfig{
			Width:  s.PaddleWidth,
			Height: s.PaddleHeight,
			Speed:  s.PaddleSpeed,
			Inset:  s.PaddleInset,
		},
		Ball:     BallConfig{Size: s.BallSize, Speed: s.BallSpeed},
		Gameplay: GameplayConfig{ScoreLimit: s.ScoreLimit},
		Physics: PhysicsConfig{
			SnapMargin:  s.SnapMargin,
			AngleGain:   s.AngleGain,
			SpeedUp:     s.SpeedUp,
			MaxVXFactor: s.MaxVXFactor,
			MaxVYFactor: s.MaxVYFactor,
			Collision:   s.Collision,
			Rebound:     s.Rebound,
			Wall:        s.Wall,
			Miss:        s.Miss,
		},
		Controls: DefaultControls(),
	}
}

// Validate checks the engine settings and the key bindings. Every action
// needs at least one key and no key may drive two actions.
func (c PongConfig) Validate() error {
	var errs []error
	if err := c.Settings().Validate(); err != nil {
		errs = append(errs, fmt.Errorf("%w: %w", ErrInvalidConfig, err))
	}

	if c.Controls.HoldMS <= 0 {
		errs = append(errs, fmt.Errorf("%w: controls.hold_ms must be positive, got %d", ErrInvalidConfig, c.Controls.HoldMS))
	}

	owner := make(map[string]string)
	for _, b := range c.Controls.bindings() {
		if len(b.keys) == 0 {
			errs = append(errs, fmt.Errorf("%w: no keys bound to %s", ErrInvalidConfig, b.name))
		}
		for _, k := range b.keys {
			if prev, ok := owner[k]; ok && prev != b.name {
				errs = append(errs, fmt.Errorf("%w: key %q bound to both %s and %s", ErrInvalidConfig, k, prev, b.name))
				continue
			}
			owner[k] = b.name
		}
	}
	return errors.Join(errs...)
}
