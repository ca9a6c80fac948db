package config

import (
	"fmt"
	"strings"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the known presets in display order.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}
}

// ParsePreset resolves a preset name, case-insensitively. An empty name is normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return DifficultyNormal, nil
	}
	for _, p := range Presets() {
		if string(p) == name {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", name)
}

// presetScale is how a preset scales the configured speeds.
type presetScale struct {
	ball    float64
	paddle  float64
	speedUp float64 // replaces physics.speed_up; 0 keeps it
}

var presetScales = map[DifficultyPreset]presetScale{
	DifficultyEasy:   {ball: 0.75, paddle: 1.25, speedUp: 1.02},
	DifficultyNormal: {ball: 1, paddle: 1},
	DifficultyHard:   {ball: 1.25, paddle: 1, speedUp: 1.08},
	DifficultyFixed:  {ball: 1, paddle: 1, speedUp: 1},
}

// ApplyPreset modifies the config based on a difficulty preset.
// The fixed preset keeps the configured speeds but stops rallies from
// speeding up. Unknown presets leave the config untouched.
func ApplyPreset(cfg *PongConfig, preset DifficultyPreset) {
	scale, ok := presetScales[preset]
	if !ok {
		return
	}

	cfg.Ball.Speed *= scale.ball
	cfg.Paddle.Speed *= scale.paddle
	if scale.speedUp > 0 {
		cfg.Physics.SpeedUp = scale.speedUp
	}
}
