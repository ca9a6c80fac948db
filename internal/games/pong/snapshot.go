package pong

import "github.com/vovakirdan/tui-pong/internal/core"

// Snapshot is everything the presentation layer needs to draw one frame.
// It is a value copy; mutating it has no effect on the engine.
type Snapshot struct {
	Tick  uint64
	Round int
	Rally int

	BoardWidth  float64
	BoardHeight float64
	ScoreLimit  int

	Ball         core.Box // Always inside the arena
	BallVX       float64
	BallVY       float64
	TopPaddle    core.Box
	BottomPaddle core.Box

	Scores Scores
	Status MatchStatus
	Paused bool
}

// NewSnapshot builds a snapshot of w. The ball is clamped into the arena so
// the presentation never sees an out-of-range position.
func NewSnapshot(w World, s Settings, paused bool) Snapshot {
	ball := w.Ball.box(s)
	ball.X = core.ClampF(ball.X, 0, s.BoardWidth-s.BallSize)
	ball.Y = core.ClampF(ball.Y, 0, s.BoardHeight-s.BallSize)

	return Snapshot{
		Tick:         w.Tick,
		Round:        w.Round,
		Rally:        w.Rally,
		BoardWidth:   s.BoardWidth,
		BoardHeight:  s.BoardHeight,
		ScoreLimit:   s.ScoreLimit,
		Ball:         ball,
		BallVX:       w.Ball.VX,
		BallVY:       w.Ball.VY,
		TopPaddle:    PaddleBox(s, SideTop, w.Paddles.Top),
		BottomPaddle: PaddleBox(s, SideBottom, w.Paddles.Bottom),
		Scores:       w.Scores,
		Status:       w.Status,
		Paused:       paused,
	}
}
