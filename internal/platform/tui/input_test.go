package tui

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/games/pong"
)

func TestInputStateHoldWindow(t *testing.T) {
	s := NewInputState(200 * time.Millisecond)
	t0 := time.Unix(1000, 0)

	s.Press(core.ActionBottomLeft, t0)

	if got := s.Snapshot(t0.Add(100 * time.Millisecond)); got != (pong.Input{BottomLeft: true}) {
		t.Errorf("Snapshot inside hold window = %+v, expected BottomLeft", got)
	}
	if got := s.Snapshot(t0.Add(200 * time.Millisecond)); got != (pong.Input{}) {
		t.Errorf("Snapshot after hold window = %+v, expected none", got)
	}

	// Auto-repeat extends the hold.
	s.Press(core.ActionBottomLeft, t0.Add(150*time.Millisecond))
	if got := s.Snapshot(t0.Add(300 * time.Millisecond)); !got.BottomLeft {
		t.Error("repeat press should extend the hold")
	}
}

func TestInputStateOppositeReleases(t *testing.T) {
	s := NewInputState(time.Second)
	t0 := time.Unix(1000, 0)

	s.Press(core.ActionTopLeft, t0)
	s.Press(core.ActionBottomRight, t0)
	s.Press(core.ActionTopRight, t0.Add(10*time.Millisecond))

	got := s.Snapshot(t0.Add(20 * time.Millisecond))
	expected := pong.Input{TopRight: true, BottomRight: true}
	if got != expected {
		t.Errorf("Snapshot = %+v, expected %+v", got, expected)
	}
}

func TestInputStateIgnoresNonPaddle(t *testing.T) {
	s := NewInputState(time.Second)
	t0 := time.Unix(1000, 0)

	for _, a := range []core.Action{core.ActionReset, core.ActionPause, core.ActionQuit, core.ActionNone} {
		s.Press(a, t0)
	}
	if got := s.Snapshot(t0); got != (pong.Input{}) {
		t.Errorf("Snapshot = %+v, expected none", got)
	}
}

func TestInputStateClear(t *testing.T) {
	s := NewInputState(time.Second)
	t0 := time.Unix(1000, 0)

	s.Press(core.ActionTopLeft, t0)
	s.Press(core.ActionBottomLeft, t0)
	s.Clear()

	if got := s.Snapshot(t0); got != (pong.Input{}) {
		t.Errorf("Snapshot after Clear = %+v, expected none", got)
	}
}
