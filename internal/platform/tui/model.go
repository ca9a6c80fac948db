package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/games/pong"
	"github.com/vovakirdan/tui-pong/internal/logging"
	"github.com/vovakirdan/tui-pong/internal/replay"
)

// MatchOptions configures a match model.
type MatchOptions struct {
	Ruleset  string
	Settings pong.Settings
	Runtime  core.RuntimeConfig
	Controls config.ControlsConfig
	Logger   *log.Logger
	Palette  *Palette // DefaultPalette when nil

	// Playback, when set, drives the match from a recorded journal instead
	// of the keyboard.
	Playback []replay.Run

	// Embedded models report Back to their parent instead of quitting.
	Embedded bool
}

// Model is the Bubble Tea model for one hot-seat match or replay playback.
type Model struct {
	engine   *pong.Engine
	ruleset  string
	screen   *core.Screen
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	input    *InputState
	recorder *replay.Recorder
	playback *replay.Cursor
	total    uint64 // playback length in ticks
	logger   *log.Logger
	palette  *Palette
	embedded bool
	now      func() time.Time

	gen          int
	ticking      bool
	pendingReset bool
	finished     bool // playback reached the end of the journal
	quitting     bool
	backToMenu   bool
}

// NewModel creates a match model. A zero seed is replaced by the current time.
func NewModel(opts MatchOptions) (Model, error) {
	cfg := opts.Runtime
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	engine, err := pong.NewEngine(opts.Settings, cfg.Seed)
	if err != nil {
		return Model{}, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	palette := opts.Palette
	if palette == nil {
		palette = DefaultPalette()
	}

	hold := time.Duration(opts.Controls.HoldMS) * time.Millisecond
	if hold <= 0 {
		hold = config.DefaultHoldMS * time.Millisecond
	}

	m := Model{
		engine:   engine,
		ruleset:  opts.Ruleset,
		screen:   core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 1)),
		config:   cfg,
		keys:     NewKeyMap(opts.Controls),
		help:     help.New(),
		input:    NewInputState(hold),
		recorder: replay.NewRecorder(),
		logger:   logger,
		palette:  palette,
		embedded: opts.Embedded,
		now:      time.Now,
		gen:      nextGen(),
		ticking:  true,
	}
	if opts.Playback != nil {
		m.playback = replay.NewCursor(opts.Playback)
		m.total = replay.CountTicks(opts.Playback)
	}
	m.help.Width = cfg.ScreenW

	logger.Info("match started",
		"ruleset", opts.Ruleset,
		"seed", cfg.Seed,
		"limit", opts.Settings.ScoreLimit,
		"playback", m.playback != nil,
	)
	return m, nil
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate, m.gen)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, max(msg.Height-1, 1))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		if msg.Gen != m.gen {
			return m, nil
		}
		if m.playback != nil {
			return m.handlePlaybackTick()
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)

	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionBack:
		m.backToMenu = true
		if m.embedded {
			return m, nil
		}
		return m, tea.Quit

	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case core.ActionPause:
		m.engine.TogglePause()
		m.logger.Debug("pause toggled", "paused", m.engine.Paused(), "tick", m.engine.World().Tick)
		return m.ensureTicking()
	}

	// Playback ignores match controls.
	if m.playback != nil {
		return m, nil
	}

	switch {
	case action == core.ActionReset:
		m.pendingReset = true
		return m.ensureTicking()
	case action.IsPaddle():
		m.input.Press(action, m.now())
	}
	return m, nil
}

// ensureTicking restarts the tick loop if it has stopped.
func (m Model) ensureTicking() (tea.Model, tea.Cmd) {
	if m.ticking {
		return m, nil
	}
	m.gen = nextGen()
	m.ticking = true
	return m, tickCmd(m.config.TickRate, m.gen)
}

// handleTick runs one live simulation tick and records what the engine consumed.
// The loop stops while the engine is paused or the match is decided, so the
// journal holds exactly the ticks that advanced the world.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	reset := m.pendingReset
	if !reset && !m.engine.Running() {
		m.ticking = false
		return m, nil
	}
	m.pendingReset = false

	if reset {
		m.input.Clear()
		m.logger.Info("match reset", "ruleset", m.ruleset)
	}

	f := replay.FrameOf(m.input.Snapshot(m.now()), reset)
	ev := f.Apply(m.engine)
	m.recorder.Record(f)
	m.logEvents(ev)

	return m, tickCmd(m.config.TickRate, m.gen)
}

// handlePlaybackTick feeds the next recorded frame to the engine.
func (m Model) handlePlaybackTick() (tea.Model, tea.Cmd) {
	if m.engine.Paused() {
		m.ticking = false
		return m, nil
	}

	f, ok := m.playback.Next()
	if !ok {
		m.finished = true
		m.ticking = false
		return m, nil
	}
	m.logEvents(f.Apply(m.engine))

	return m, tickCmd(m.config.TickRate, m.gen)
}

// logEvents reports scoring at info level and rally detail at debug level.
func (m Model) logEvents(ev pong.Events) {
	if ev == 0 {
		return
	}
	w := m.engine.World()

	if ev.Has(pong.EventTopHit) || ev.Has(pong.EventBottomHit) {
		m.logger.Debug("paddle hit", "rally", w.Rally, "vx", w.Ball.VX, "vy", w.Ball.VY, "tick", w.Tick)
	}
	if ev.Scored() {
		scorer := pong.SideTop
		if ev.Has(pong.EventPointBottom) {
			scorer = pong.SideBottom
		}
		m.logger.Info("point", "scorer", scorer, "top", w.Scores.Top, "bottom", w.Scores.Bottom, "tick", w.Tick)
	}
	if ev.Has(pong.EventMatchWon) {
		m.logger.Info("match won", "winner", w.Status.Winner, "top", w.Scores.Top, "bottom", w.Scores.Bottom)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.engine.Render(m.screen)
	return m.palette.Screen(m.screen) + "\n" + m.palette.status.Render(m.statusLine())
}

// statusLine is the help bar, or playback progress during replays.
func (m Model) statusLine() string {
	if m.playback == nil {
		return m.help.View(m.keys)
	}

	state := "playing"
	switch {
	case m.finished:
		state = "finished"
	case m.engine.Paused():
		state = "paused"
	}
	return fmt.Sprintf("replay %s  %d/%d  |  %s pause  %s back  %s quit",
		state, m.playback.Pos(), m.total,
		m.keys.Pause.Help().Key, m.keys.Back.Help().Key, m.keys.Quit.Help().Key)
}

// Replay returns the recorded match so far.
func (m Model) Replay() replay.Replay {
	return replay.Replay{
		Ruleset:  m.ruleset,
		Seed:     m.engine.Seed(),
		Settings: m.engine.Settings(),
		Runs:     m.recorder.Runs(),
	}
}

// Recorded returns the number of recorded live ticks.
func (m Model) Recorded() uint64 {
	return m.recorder.Ticks()
}

// Snapshot returns the current frame.
func (m Model) Snapshot() pong.Snapshot {
	return m.engine.Snapshot()
}

// IsPlayback reports whether the model is replaying a journal.
func (m Model) IsPlayback() bool {
	return m.playback != nil
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Config returns the current runtime config (may have been updated by resize).
func (m Model) Config() core.RuntimeConfig {
	return m.config
}

// Run starts a Bubble Tea program for one match and returns the final model.
func Run(opts MatchOptions) (Model, error) {
	model, err := NewModel(opts)
	if err != nil {
		return Model{}, err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return model, err
	}
	if m, ok := final.(Model); ok {
		return m, nil
	}
	return model, nil
}
