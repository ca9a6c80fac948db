package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-pong/internal/registry"
	"github.com/vovakirdan/tui-pong/internal/storage"
)

// Replay browser layout constants
const (
	minWidthForSidebar = 80  // Minimum width to show ruleset sidebar
	sidebarWidth       = 20  // Width of ruleset sidebar
	maxReplays         = 100 // Max replays to load
)

// allRulesets is the sidebar entry that lists every ruleset.
var allRulesets = registry.RulesetInfo{ID: "", Title: "All"}

// browserKeys adapts MenuKeyMap to the replay browser's help bar.
type browserKeys struct{ MenuKeyMap }

// ShortHelp returns key bindings for the short help view.
func (k browserKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Next, k.Select, k.Delete, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k browserKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Next, k.Prev},
		{k.Select, k.Delete, k.Back, k.Quit},
	}
}

// ReplayBrowserModel is the Bubble Tea model for the stored replay list.
type ReplayBrowserModel struct {
	rulesets    []registry.RulesetInfo // Sidebar filter entries, "All" first
	cursor      int                    // Selected filter index
	store       *storage.Store
	tickRate    int
	replays     []storage.ReplayEntry
	loadErr     error
	table       table.Model
	help        help.Model
	keys        browserKeys
	width       int
	height      int
	quitting    bool
	goingBack   bool
	watchID     int64 // Set when user selects a replay
	showSidebar bool
}

// NewReplayBrowserModel creates a new replay browser.
func NewReplayBrowserModel(store *storage.Store, width, height, tickRate int) ReplayBrowserModel {
	if tickRate <= 0 {
		tickRate = 60
	}

	h := help.New()
	h.ShowAll = false

	m := ReplayBrowserModel{
		rulesets:    append([]registry.RulesetInfo{allRulesets}, registry.List()...),
		store:       store,
		tickRate:    tickRate,
		keys:        browserKeys{DefaultMenuKeyMap()},
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}

	m.table = m.createTable()
	m.loadReplays()

	return m
}

// createTable creates a new table with appropriate columns.
func (m *ReplayBrowserModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "ID", Width: 6},
		{Title: "Ruleset", Width: 12},
		{Title: "Length", Width: 8},
		{Title: "Seed", Width: 12},
		{Title: "Date", Width: 14},
	}

	// Give spare width to the seed column
	tableWidth := m.width - 4 // Margins
	if m.showSidebar {
		tableWidth -= sidebarWidth + 3 // Sidebar + border + gap
	}
	if spare := tableWidth - 62; spare > 0 {
		columns[3].Width += min(spare, 8)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)), // Leave room for header, help, and margins
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadReplays loads replays for the selected ruleset filter.
func (m *ReplayBrowserModel) loadReplays() {
	m.replays, m.loadErr = nil, nil
	if m.store != nil {
		m.replays, m.loadErr = m.store.ListReplays(m.rulesets[m.cursor].ID, maxReplays)
	}
	m.updateTableRows()
}

// updateTableRows updates the table with the current replays.
func (m *ReplayBrowserModel) updateTableRows() {
	rows := make([]table.Row, len(m.replays))
	for i, r := range m.replays {
		rows[i] = table.Row{
			strconv.FormatInt(r.ID, 10),
			r.Ruleset,
			formatTicks(r.Ticks, m.tickRate),
			strconv.FormatInt(r.Seed, 10),
			r.CreatedAt.Local().Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// formatTicks renders a tick count as play time.
func formatTicks(ticks uint64, tickRate int) string {
	d := time.Duration(ticks) * time.Second / time.Duration(tickRate)
	return fmt.Sprintf("%d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}

// Init initializes the browser model.
func (m ReplayBrowserModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the replay browser.
func (m ReplayBrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Next):
			m.cursor = (m.cursor + 1) % len(m.rulesets)
			m.loadReplays()
			return m, nil

		case key.Matches(msg, m.keys.Prev):
			m.cursor--
			if m.cursor < 0 {
				m.cursor = len(m.rulesets) - 1
			}
			m.loadReplays()
			return m, nil

		case key.Matches(msg, m.keys.Select):
			if r, ok := m.selectedReplay(); ok {
				m.watchID = r.ID
				return m, tea.Quit
			}
			return m, nil

		case key.Matches(msg, m.keys.Delete):
			if r, ok := m.selectedReplay(); ok && m.store != nil {
				if err := m.store.DeleteReplay(r.ID); err != nil {
					m.loadErr = err
					return m, nil
				}
				m.loadReplays()
			}
			return m, nil

		case key.Matches(msg, m.keys.Up):
			m.table.MoveUp(1)
			return m, nil

		case key.Matches(msg, m.keys.Down):
			m.table.MoveDown(1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// selectedReplay returns the replay under the table cursor.
func (m ReplayBrowserModel) selectedReplay() (storage.ReplayEntry, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.replays) {
		return storage.ReplayEntry{}, false
	}
	return m.replays[i], true
}

// View renders the replay browser.
func (m ReplayBrowserModel) View() string {
	if m.quitting || m.goingBack || m.watchID != 0 {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	title := fmt.Sprintf("REPLAYS - %s", m.rulesets[m.cursor].Title)
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	if m.showSidebar {
		b.WriteString(m.renderWideLayout())
	} else {
		b.WriteString(m.renderNarrowLayout())
	}

	b.WriteString("\n")
	b.WriteString(statusStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderWideLayout renders the browser with a sidebar for ruleset selection.
func (m ReplayBrowserModel) renderWideLayout() string {
	sidebarStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1)

	var sidebar strings.Builder
	sidebar.WriteString("Rulesets\n")
	sidebar.WriteString(strings.Repeat("-", sidebarWidth-4))
	sidebar.WriteString("\n")

	for i, r := range m.rulesets {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.cursor {
			cursor = "> "
			style = style.Bold(true).Foreground(lipgloss.Color("229"))
		}

		name := r.Title
		if maxLen := sidebarWidth - 6; len(name) > maxLen {
			name = name[:maxLen-1] + "."
		}
		sidebar.WriteString(style.Render(cursor + name))
		sidebar.WriteString("\n")
	}

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	return lipgloss.JoinHorizontal(lipgloss.Top,
		sidebarStyle.Render(sidebar.String()), "  ", tableStyle.Render(m.renderTableContent()))
}

// renderNarrowLayout renders the browser with the current filter above the table.
func (m ReplayBrowserModel) renderNarrowLayout() string {
	var b strings.Builder

	b.WriteString(centerText(fmt.Sprintf("< %s >", m.rulesets[m.cursor].Title), m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	b.WriteString(centerText(tableStyle.Render(m.renderTableContent()), m.width))

	return b.String()
}

// renderTableContent renders the table or an empty/error message.
func (m ReplayBrowserModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	switch {
	case m.store == nil:
		return emptyStyle.Render("Replay storage is unavailable.")
	case m.loadErr != nil:
		return emptyStyle.Render("Could not load replays:\n" + m.loadErr.Error())
	case len(m.replays) == 0:
		return emptyStyle.Render("No replays recorded yet.\nPlay with --record to keep one!")
	}

	return m.table.View()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ReplayBrowserModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ReplayBrowserModel) IsQuitting() bool {
	return m.quitting
}

// WatchID returns the replay chosen for playback, or 0.
func (m ReplayBrowserModel) WatchID() int64 {
	return m.watchID
}

// BrowserResult holds the result of running the replay browser.
type BrowserResult struct {
	WatchID int64
	Back    bool
}

// RunReplayBrowser runs the replay browser screen.
func RunReplayBrowser(store *storage.Store, width, height, tickRate int) (BrowserResult, error) {
	model := NewReplayBrowserModel(store, width, height, tickRate)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return BrowserResult{}, err
	}

	m, ok := finalModel.(ReplayBrowserModel)
	if !ok {
		return BrowserResult{}, nil
	}

	return BrowserResult{WatchID: m.WatchID(), Back: m.IsGoingBack()}, nil
}
