package tui

import (
	"time"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/games/pong"
)

// InputState turns discrete key presses into held paddle intents.
//
// Terminals only deliver presses and auto-repeats, never releases, so an
// intent stays held for the hold window after its latest press. Pressing the
// opposite direction of the same paddle releases the other one at once.
type InputState struct {
	hold  time.Duration
	until [4]time.Time // indexed by paddleSlot
}

const (
	slotTopLeft = iota
	slotTopRight
	slotBottomLeft
	slotBottomRight
)

// NewInputState creates an input state with the given hold window.
func NewInputState(hold time.Duration) *InputState {
	return &InputState{hold: hold}
}

// paddleSlot maps a paddle action to its slot and the opposite slot.
func paddleSlot(a core.Action) (slot, opposite int, ok bool) {
	switch a {
	case core.ActionTopLeft:
		return slotTopLeft, slotTopRight, true
	case core.ActionTopRight:
		return slotTopRight, slotTopLeft, true
	case core.ActionBottomLeft:
		return slotBottomLeft, slotBottomRight, true
	case core.ActionBottomRight:
		return slotBottomRight, slotBottomLeft, true
	}
	return 0, 0, false
}

// Press records a paddle key press at now. Non-paddle actions are ignored.
func (s *InputState) Press(a core.Action, now time.Time) {
	slot, opposite, ok := paddleSlot(a)
	if !ok {
		return
	}
	s.until[slot] = now.Add(s.hold)
	s.until[opposite] = time.Time{}
}

// Clear releases every intent.
func (s *InputState) Clear() {
	s.until = [4]time.Time{}
}

// Snapshot returns the intents held at now.
func (s *InputState) Snapshot(now time.Time) pong.Input {
	held := func(slot int) bool { return now.Before(s.until[slot]) }
	return pong.Input{
		TopLeft:     held(slotTopLeft),
		TopRight:    held(slotTopRight),
		BottomLeft:  held(slotBottomLeft),
		BottomRight: held(slotBottomRight),
	}
}
