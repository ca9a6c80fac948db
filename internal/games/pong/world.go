// Package pong implements a two-paddle Pong simulation: a top paddle and a
// bottom paddle defend their goal lines while the ball bounces off the side walls.
//
// The core is Step, a pure function from (World, Input) to the next World.
// Engine owns a World between frames, supplies the seeded serve direction,
// and is what the platform drives once per tick.
package pong

import "github.com/vovakirdan/tui-pong/internal/core"

// Side identifies a paddle and the player behind it.
type Side int

const (
	SideNone Side = iota
	SideTop
	SideBottom
)

// String returns a human-readable name for the side.
func (s Side) String() string {
	switch s {
	case SideTop:
		return "Top"
	case SideBottom:
		return "Bottom"
	default:
		return "None"
	}
}

// MatchState is the coarse match lifecycle.
type MatchState int

const (
	InProgress MatchState = iota
	Won
)

// MatchStatus is InProgress, or Won together with the winning side.
type MatchStatus struct {
	State  MatchState
	Winner Side
}

// Over reports whether the match has been decided.
func (m MatchStatus) Over() bool {
	return m.State == Won
}

// Ball is the ball's top-left position and per-tick velocity.
// PrevX/PrevY hold the position before the latest integration.
type Ball struct {
	X, Y         float64
	VX, VY       float64
	PrevX, PrevY float64
}

// Paddles holds the horizontal offset of each paddle's left edge.
type Paddles struct {
	Top    float64
	Bottom float64
}

// Scores holds points per side.
type Scores struct {
	Top    int
	Bottom int
}

// Of returns the score of the given side.
func (s Scores) Of(side Side) int {
	switch side {
	case SideTop:
		return s.Top
	case SideBottom:
		return s.Bottom
	default:
		return 0
	}
}

// World is the complete simulation state. It is a plain value: copying a
// World copies all of it, which is what Step relies on.
type World struct {
	Ball    Ball
	Paddles Paddles
	Scores  Scores
	Status  MatchStatus
	Tick    uint64 // Advancing ticks since the match started
	Round   int    // Rounds started, 1 for a fresh match
	Rally   int    // Paddle hits in the current round
}

// Input is the per-tick snapshot of held paddle intents.
type Input struct {
	TopLeft     bool
	TopRight    bool
	BottomLeft  bool
	BottomRight bool
}

// Launcher returns the serve direction for a new round; each component
// must be -1 or +1.
type Launcher func() (dirX, dirY float64)

// NewWorld creates a fresh match: centered ball and paddles, zero scores.
func NewWorld(s Settings, launch Launcher) World {
	w := World{Status: MatchStatus{State: InProgress}}
	return newRound(w, s, launch)
}

// newRound re-centers ball and paddles and serves, keeping scores and status.
func newRound(w World, s Settings, launch Launcher) World {
	dirX, dirY := launch()

	x := s.BoardWidth/2 - s.BallSize/2
	y := s.BoardHeight/2 - s.BallSize/2
	w.Ball = Ball{
		X:     x,
		Y:     y,
		VX:    s.BallSpeed * core.Sign(dirX),
		VY:    s.BallSpeed * core.Sign(dirY),
		PrevX: x,
		PrevY: y,
	}

	center := s.BoardWidth/2 - s.PaddleWidth/2
	w.Paddles = Paddles{Top: center, Bottom: center}
	w.Round++
	w.Rally = 0
	return w
}

// box returns the ball's bounding box at its current position.
func (b Ball) box(s Settings) core.Box {
	return core.NewBox(b.X, b.Y, s.BallSize, s.BallSize)
}

// PaddleBox returns the bounding box of a paddle at horizontal offset x.
func PaddleBox(s Settings, side Side, x float64) core.Box {
	y := s.PaddleInset
	if side == SideBottom {
		y = s.BoardHeight - s.PaddleInset - s.PaddleHeight
	}
	return core.NewBox(x, y, s.PaddleWidth, s.PaddleHeight)
}

// topFace is the y of the top paddle's face; the ball's top edge hits it.
func topFace(s Settings) float64 {
	return s.PaddleInset + s.PaddleHeight
}

// bottomFace is the y of the bottom paddle's face; the ball's bottom edge hits it.
func bottomFace(s Settings) float64 {
	return s.BoardHeight - s.PaddleInset - s.PaddleHeight
}
