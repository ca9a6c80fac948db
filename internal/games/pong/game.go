package pong

import (
	"math/rand"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// Engine owns the World between ticks. It is not safe for concurrent use;
// the platform drives it from a single loop.
type Engine struct {
	settings Settings
	seed     int64
	rng      *rand.Rand
	world    World
	paused   bool
}

// NewEngine validates the settings and creates an engine with a fresh match.
// The seed fixes the sequence of serve directions.
func NewEngine(s Settings, seed int64) (*Engine, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	e := &Engine{
		settings: s,
		seed:     seed,
		rng:      rand.New(rand.NewSource(seed)), //nolint:gosec // gameplay randomness
	}
	e.world = NewWorld(s, e.launch)
	return e, nil
}

// launch picks a random sign on both axes.
func (e *Engine) launch() (float64, float64) {
	dirX, dirY := 1.0, 1.0
	if e.rng.Intn(2) == 0 {
		dirX = -1
	}
	if e.rng.Intn(2) == 0 {
		dirY = -1
	}
	return dirX, dirY
}

// Tick advances the match by one frame and reports what happened.
// Paused engines and decided matches do not advance.
func (e *Engine) Tick(in Input) Events {
	if e.paused {
		return 0
	}

	var ev Events
	e.world, ev = Step(e.world, in, e.settings, e.launch)
	return ev
}

// Reset discards the current match and starts a fresh one with zero scores.
// Always legal.
func (e *Engine) Reset() {
	e.world = NewWorld(e.settings, e.launch)
	e.paused = false
}

// TogglePause pauses or resumes the simulation. Ignored once the match is over.
func (e *Engine) TogglePause() {
	if e.world.Status.Over() {
		return
	}
	e.paused = !e.paused
}

// Paused reports whether the simulation is paused.
func (e *Engine) Paused() bool {
	return e.paused
}

// Over reports whether the match has been decided.
func (e *Engine) Over() bool {
	return e.world.Status.Over()
}

// Running reports whether the next Tick would advance the world.
func (e *Engine) Running() bool {
	return !e.paused && !e.world.Status.Over()
}

// World returns a copy of the current world.
func (e *Engine) World() World {
	return e.world
}

// Settings returns the settings the engine was built with.
func (e *Engine) Settings() Settings {
	return e.settings
}

// Seed returns the seed the engine was built with.
func (e *Engine) Seed() int64 {
	return e.seed
}

// Snapshot returns a read-only view of the current frame for presentation.
func (e *Engine) Snapshot() Snapshot {
	return NewSnapshot(e.world, e.settings, e.paused)
}

// Render draws the current frame into the screen buffer.
func (e *Engine) Render(dst *core.Screen) {
	Render(dst, e.Snapshot())
}
