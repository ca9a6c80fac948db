// Package replay records the per-tick input stream of a match so it can be
// re-simulated. A match is fully determined by its settings, its seed and
// the frames the engine consumed.
package replay

import "github.com/vovakirdan/tui-pong/internal/games/pong"

// Frame is the input consumed by one engine tick.
type Frame uint8

const (
	FrameTopLeft Frame = 1 << iota
	FrameTopRight
	FrameBottomLeft
	FrameBottomRight
	FrameReset // match was reset before this tick

	frameMask = FrameTopLeft | FrameTopRight | FrameBottomLeft | FrameBottomRight | FrameReset
)

// FrameOf packs held intents and a reset flag into a frame.
func FrameOf(in pong.Input, reset bool) Frame {
	var f Frame
	if in.TopLeft {
		f |= FrameTopLeft
	}
	if in.TopRight {
		f |= FrameTopRight
	}
	if in.BottomLeft {
		f |= FrameBottomLeft
	}
	if in.BottomRight {
		f |= FrameBottomRight
	}
	if reset {
		f |= FrameReset
	}
	return f
}

// Input unpacks the paddle intents.
func (f Frame) Input() pong.Input {
	return pong.Input{
		TopLeft:     f&FrameTopLeft != 0,
		TopRight:    f&FrameTopRight != 0,
		BottomLeft:  f&FrameBottomLeft != 0,
		BottomRight: f&FrameBottomRight != 0,
	}
}

// Reset reports whether the match was reset before this tick.
func (f Frame) Reset() bool {
	return f&FrameReset != 0
}

// Apply feeds the frame to an engine: reset first, then one tick.
func (f Frame) Apply(e *pong.Engine) pong.Events {
	if f.Reset() {
		e.Reset()
	}
	return e.Tick(f.Input())
}
