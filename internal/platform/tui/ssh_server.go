package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/logging"
	"github.com/vovakirdan/tui-pong/internal/registry"
	"github.com/vovakirdan/tui-pong/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.pong/host_key.
	HostKeyPath string

	// DBPath is the path to the replay database. Empty disables replays.
	DBPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// Game is the loaded configuration every session starts from.
	Game config.PongConfig

	// Ruleset is preselected in each session's menu.
	Ruleset string

	TickRate int

	// Record saves every match played over SSH as a replay.
	Record bool

	Logger *log.Logger
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      "~/.pong/replays.db",
		IdleTimeout: 30 * time.Minute,
		Game:        config.DefaultPongConfig(),
		TickRate:    60,
	}
}

// SSHServer wraps a Wish SSH server hosting hot-seat matches.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	logger *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	logger := cfg.Logger
	if logger == nil {
		var err error
		if logger, err = logging.New(os.Stderr, "pong-ssh", ""); err != nil {
			return nil, err
		}
	}

	var store *storage.Store
	if cfg.DBPath != "" {
		var err error
		if store, err = storage.Open(cfg.DBPath); err != nil {
			logger.Warn("could not open replay database", "error", err)
			store = nil // Continue without storage
		}
	}

	srv := &SSHServer{
		config: cfg,
		store:  store,
		logger: logger,
	}

	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		hostKeyPath = config.UserPath("host_key")
		if hostKeyPath == "" {
			return nil, errors.New("cannot get home directory for host key")
		}
	}

	if mkdirErr := os.MkdirAll(filepath.Dir(hostKeyPath), 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
	}

	opts := []ssh.Option{
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	}

	server, err := wish.NewServer(opts...)
	if err != nil {
		if store != nil {
			store.Close()
		}
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	cfg := core.RuntimeConfig{
		ScreenW:  pty.Window.Width,
		ScreenH:  pty.Window.Height,
		TickRate: s.config.TickRate,
	}

	model := NewSessionModel(s, cfg, sshSession.User())
	model.palette = NewPalette(bubbletea.MakeRenderer(sshSession))
	sshSession.Context().SetValue(liveMatchKey{}, model.live)

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)

		// A client that drops mid-match never sends back or quit.
		if live, ok := sshSession.Context().Value(liveMatchKey{}).(*liveMatch); ok {
			s.endSession(sshSession.User(), live)
		}
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			s.logger.Error("server error", "error", err)
		}
	}()

	<-done
	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if s.store != nil {
		s.store.Close()
	}

	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

// saveMatch stores a finished session match as a replay.
func (s *SSHServer) saveMatch(user string, m Model) {
	if !s.config.Record || s.store == nil || m.Recorded() == 0 {
		return
	}
	id, err := s.store.SaveReplay(m.Replay())
	if err != nil {
		s.logger.Error("could not save replay", "user", user, "error", err)
		return
	}
	snap := m.Snapshot()
	s.logger.Info("replay saved", "user", user, "id", id, "ruleset", m.Replay().Ruleset,
		"top", snap.Scores.Top, "bottom", snap.Scores.Bottom)
}

// liveMatchKey stores a session's liveMatch in its SSH context.
type liveMatchKey struct{}

// liveMatch is the match a session is currently playing. The session model is
// copied on every update, so the slot is shared through a pointer and read
// once more when the connection closes.
type liveMatch struct {
	mu    sync.Mutex
	match *Model
}

func (l *liveMatch) set(m *Model) {
	l.mu.Lock()
	l.match = m
	l.mu.Unlock()
}

// take returns the current match and empties the slot.
func (l *liveMatch) take() *Model {
	l.mu.Lock()
	defer l.mu.Unlock()
	m := l.match
	l.match = nil
	return m
}

// endSession saves the match a closed session left unfinished.
func (s *SSHServer) endSession(user string, live *liveMatch) {
	if m := live.take(); m != nil {
		s.logger.Info("session closed mid-match", "user", user, "ticks", m.Recorded())
		s.saveMatch(user, *m)
	}
}

// SessionModel manages the full session flow: menu -> match -> menu.
// This is the top-level model used for SSH sessions.
type SessionModel struct {
	server   *SSHServer
	config   core.RuntimeConfig
	username string
	ruleset  string
	menu     MenuModel
	match    *Model
	live     *liveMatch
	palette  *Palette
	errMsg   string
	quitting bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(server *SSHServer, cfg core.RuntimeConfig, username string) SessionModel {
	return SessionModel{
		server:   server,
		config:   cfg,
		username: username,
		ruleset:  server.config.Ruleset,
		live:     &liveMatch{},
		palette:  DefaultPalette(),
		menu:     NewMenuModel(cfg, server.config.Ruleset).WithoutReplays(),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	if m.match != nil {
		return m.updateMatch(msg)
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	selected := m.menu.Selected()
	if selected == nil {
		return m, cmd
	}

	match, err := m.newMatch(selected.RulesetID)
	if err != nil {
		m.server.logger.Error("could not start match", "user", m.username, "ruleset", selected.RulesetID, "error", err)
		m.errMsg = err.Error()
		m.menu = NewMenuModel(m.config, selected.RulesetID).WithoutReplays()
		return m, nil
	}

	m.ruleset = selected.RulesetID
	m.errMsg = ""
	m.match = &match
	m.live.set(m.match)
	return m, m.match.Init()
}

// newMatch builds an embedded match model for the given ruleset.
func (m SessionModel) newMatch(rulesetID string) (Model, error) {
	r, err := registry.Create(rulesetID)
	if err != nil {
		return Model{}, err
	}

	cfg := m.config
	cfg.Seed = time.Now().UnixNano()

	return NewModel(MatchOptions{
		Ruleset:  r.ID(),
		Settings: r.Apply(m.server.config.Game.Settings()),
		Runtime:  cfg,
		Controls: m.server.config.Game.Controls,
		Logger:   m.server.logger.With("user", m.username),
		Palette:  m.palette,
		Embedded: true,
	})
}

// updateMatch handles updates when a match is running.
func (m SessionModel) updateMatch(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.match.Update(msg)
	if match, ok := newModel.(Model); ok {
		m.match = &match
	}

	if m.match.BackToMenu() {
		m.live.take()
		m.server.saveMatch(m.username, *m.match)
		m.match = nil
		m.menu = NewMenuModel(m.config, m.ruleset).WithoutReplays()
		return m, m.menu.Init()
	}

	if m.match.IsQuitting() {
		m.live.take()
		m.server.saveMatch(m.username, *m.match)
		m.quitting = true
		return m, tea.Quit
	}

	m.live.set(m.match)
	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	if m.match != nil {
		return m.match.View()
	}

	view := m.menu.View()
	if m.errMsg != "" {
		view += "\n" + centerText(m.palette.alert.Render(m.errMsg), m.config.ScreenW)
	}
	return view
}
