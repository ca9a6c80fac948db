package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/logging"
	"github.com/vovakirdan/tui-pong/internal/storage"
)

func newTestServer(t *testing.T) (*SSHServer, *storage.Store) {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "replays.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	srv := &SSHServer{
		config: SSHServerConfig{
			Game:     config.DefaultPongConfig(),
			Ruleset:  "classic",
			TickRate: 60,
			Record:   true,
		},
		store:  store,
		logger: logging.Discard(),
	}
	return srv, store
}

func sessionStep(t *testing.T, m SessionModel, msg tea.Msg) SessionModel {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update() returned %T, expected SessionModel", next)
	}
	return nm
}

// startSessionMatch selects the preselected ruleset and plays n ticks.
func startSessionMatch(t *testing.T, srv *SSHServer, n int) SessionModel {
	t.Helper()
	cfg := core.RuntimeConfig{ScreenW: 60, ScreenH: 30, TickRate: 60}
	m := NewSessionModel(srv, cfg, "alice")

	m = sessionStep(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.match == nil {
		t.Fatal("enter should start a match")
	}
	for range n {
		m = sessionStep(t, m, TickMsg{Gen: m.match.gen})
	}
	return m
}

func countReplays(t *testing.T, store *storage.Store) []storage.ReplayEntry {
	t.Helper()
	entries, err := store.ListReplays("", 10)
	if err != nil {
		t.Fatalf("ListReplays() failed: %v", err)
	}
	return entries
}

func TestSessionSavesMatchOnDisconnect(t *testing.T) {
	srv, store := newTestServer(t)
	m := startSessionMatch(t, srv, 40)

	// The connection closes without back or quit.
	srv.endSession("alice", m.live)

	entries := countReplays(t, store)
	if len(entries) != 1 {
		t.Fatalf("replays = %d, expected 1", len(entries))
	}
	if entries[0].Ticks != 40 || entries[0].Ruleset != "classic" {
		t.Errorf("replay = %+v, expected 40 classic ticks", entries[0])
	}
}

func TestSessionBackSavesOnce(t *testing.T) {
	srv, store := newTestServer(t)
	m := startSessionMatch(t, srv, 25)

	m = sessionStep(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.match != nil {
		t.Fatal("back should return to the menu")
	}
	srv.endSession("alice", m.live)

	if n := len(countReplays(t, store)); n != 1 {
		t.Errorf("replays = %d, expected 1", n)
	}
}

func TestSessionWithoutMatchSavesNothing(t *testing.T) {
	srv, store := newTestServer(t)
	m := NewSessionModel(srv, core.DefaultConfig(), "bob")

	srv.endSession("bob", m.live)

	if n := len(countReplays(t, store)); n != 0 {
		t.Errorf("replays = %d, expected 0", n)
	}
}
