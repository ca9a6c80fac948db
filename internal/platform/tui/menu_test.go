package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/games/pong"
	"github.com/vovakirdan/tui-pong/internal/replay"
	_ "github.com/vovakirdan/tui-pong/internal/rulesets"
	"github.com/vovakirdan/tui-pong/internal/storage"
)

func menuStep(t *testing.T, m MenuModel, msg tea.Msg) MenuModel {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(MenuModel)
	if !ok {
		t.Fatalf("Update() returned %T, expected MenuModel", next)
	}
	return nm
}

func TestMenuInitialCursorAndSelect(t *testing.T) {
	m := NewMenuModel(core.DefaultConfig(), "swept")
	m = menuStep(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.Selected() == nil || m.Selected().RulesetID != "swept" {
		t.Fatalf("Selected() = %+v, expected swept", m.Selected())
	}
}

func TestMenuNavigationBounds(t *testing.T) {
	m := NewMenuModel(core.DefaultConfig(), "")
	for range 20 {
		m = menuStep(t, m, tea.KeyMsg{Type: tea.KeyUp})
	}
	if m.cursor != 0 {
		t.Errorf("cursor = %d, expected 0", m.cursor)
	}
	for range 20 {
		m = menuStep(t, m, runeKey("j"))
	}
	if m.cursor != len(m.items)-1 {
		t.Errorf("cursor = %d, expected %d", m.cursor, len(m.items)-1)
	}
}

func TestMenuReplaysKey(t *testing.T) {
	m := menuStep(t, NewMenuModel(core.DefaultConfig(), ""), tea.KeyMsg{Type: tea.KeyTab})
	if !m.WantsReplays() {
		t.Error("tab should open the replay browser")
	}

	m = menuStep(t, NewMenuModel(core.DefaultConfig(), "").WithoutReplays(), tea.KeyMsg{Type: tea.KeyTab})
	if m.WantsReplays() {
		t.Error("tab should do nothing when replays are disabled")
	}
}

func newBrowserStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "replays.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	for _, id := range []string{"classic", "swept", "classic"} {
		rec := replay.NewRecorder()
		for range 120 {
			rec.Record(replay.FrameOf(pong.Input{}, false))
		}
		r := replay.Replay{Ruleset: id, Seed: 7, Settings: pong.DefaultSettings(), Runs: rec.Runs()}
		if _, err := store.SaveReplay(r); err != nil {
			t.Fatalf("SaveReplay() failed: %v", err)
		}
	}
	return store
}

func browserStep(t *testing.T, m ReplayBrowserModel, msg tea.Msg) ReplayBrowserModel {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(ReplayBrowserModel)
	if !ok {
		t.Fatalf("Update() returned %T, expected ReplayBrowserModel", next)
	}
	return nm
}

func TestReplayBrowserFilterAndDelete(t *testing.T) {
	store := newBrowserStore(t)
	m := NewReplayBrowserModel(store, 100, 30, 60)

	if len(m.replays) != 3 {
		t.Fatalf("All lists %d replays, expected 3", len(m.replays))
	}

	// Walk the sidebar to the classic entry.
	for m.rulesets[m.cursor].ID != "classic" {
		m = browserStep(t, m, tea.KeyMsg{Type: tea.KeyTab})
	}
	if len(m.replays) != 2 {
		t.Fatalf("classic lists %d replays, expected 2", len(m.replays))
	}

	m = browserStep(t, m, runeKey("x"))
	if len(m.replays) != 1 {
		t.Errorf("after delete classic lists %d replays, expected 1", len(m.replays))
	}
}

func TestReplayBrowserSelect(t *testing.T) {
	store := newBrowserStore(t)
	m := NewReplayBrowserModel(store, 60, 20, 60)

	m = browserStep(t, m, tea.KeyMsg{Type: tea.KeyDown})
	want := m.replays[1].ID
	m = browserStep(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.WatchID() != want {
		t.Errorf("WatchID() = %d, expected %d", m.WatchID(), want)
	}
}

func TestFormatTicks(t *testing.T) {
	tests := []struct {
		ticks    uint64
		rate     int
		expected string
	}{
		{0, 60, "0:00"},
		{120, 60, "0:02"},
		{60 * 75, 60, "1:15"},
		{90, 30, "0:03"},
	}
	for _, tc := range tests {
		if got := formatTicks(tc.ticks, tc.rate); got != tc.expected {
			t.Errorf("formatTicks(%d, %d) = %q, expected %q", tc.ticks, tc.rate, got, tc.expected)
		}
	}
}
