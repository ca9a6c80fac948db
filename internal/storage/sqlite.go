// Package storage provides SQLite-based persistence for match replays.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-pong/internal/replay"
)

// ErrNotFound is returned when a replay ID does not exist.
var ErrNotFound = errors.New("storage: replay not found")

// Store manages the SQLite database connection for replay persistence.
type Store struct {
	db *sql.DB
}

// ReplayEntry is the listing view of a stored replay.
type ReplayEntry struct {
	ID        int64
	Ruleset   string
	Seed      int64
	Ticks     uint64
	CreatedAt time.Time
}

// StoredReplay is a replay together with its row metadata.
type StoredReplay struct {
	ReplayEntry
	Replay replay.Replay
}

// RulesetStats contains aggregated replay statistics for a ruleset.
type RulesetStats struct {
	Ruleset    string
	Replays    int
	TotalTicks int64
	LastPlayed time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS replays (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			ruleset TEXT NOT NULL,
			seed INTEGER NOT NULL,
			settings TEXT NOT NULL,
			frames BLOB NOT NULL,
			ticks INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_replays_ruleset ON replays(ruleset);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveReplay stores a replay and returns its ID.
func (s *Store) SaveReplay(r replay.Replay) (int64, error) {
	settings, err := replay.MarshalSettings(r.Settings)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot encode settings: %w", err)
	}
	frames, err := replay.Encode(r.Runs)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot encode frames: %w", err)
	}

	result, err := s.db.Exec(
		"INSERT INTO replays (ruleset, seed, settings, frames, ticks) VALUES (?, ?, ?, ?, ?)",
		r.Ruleset, r.Seed, string(settings), frames, int64(r.Ticks()),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save replay: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// ListReplays returns the most recent replays, newest first.
// A ruleset filter of "" lists all rulesets.
func (s *Store) ListReplays(ruleset string, limit int) ([]ReplayEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, ruleset, seed, ticks, created_at
		 FROM replays
		 WHERE ? = '' OR ruleset = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		ruleset, ruleset, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query replays: %w", err)
	}
	defer rows.Close()

	var entries []ReplayEntry
	for rows.Next() {
		var e ReplayEntry
		var ticks int64
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Ruleset, &e.Seed, &ticks, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.Ticks = uint64(ticks)
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// LoadReplay retrieves a replay by ID. Returns ErrNotFound if it does not exist.
func (s *Store) LoadReplay(id int64) (*StoredReplay, error) {
	var (
		out       StoredReplay
		settings  string
		frames    []byte
		ticks     int64
		createdAt any
	)

	err := s.db.QueryRow(
		`SELECT id, ruleset, seed, settings, frames, ticks, created_at
		 FROM replays
		 WHERE id = ?`,
		id,
	).Scan(&out.ID, &out.Ruleset, &out.Seed, &settings, &frames, &ticks, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query replay: %w", err)
	}
	out.Ticks = uint64(ticks)
	out.CreatedAt = parseTime(createdAt)

	st, err := replay.UnmarshalSettings([]byte(settings))
	if err != nil {
		return nil, fmt.Errorf("storage: replay %d: %w", id, err)
	}
	runs, err := replay.Decode(frames)
	if err != nil {
		return nil, fmt.Errorf("storage: replay %d: %w", id, err)
	}

	out.Replay = replay.Replay{
		Ruleset:  out.Ruleset,
		Seed:     out.Seed,
		Settings: st,
		Runs:     runs,
	}
	return &out, nil
}

// DeleteReplay removes a replay. Returns ErrNotFound if it does not exist.
func (s *Store) DeleteReplay(id int64) error {
	result, err := s.db.Exec("DELETE FROM replays WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("storage: cannot delete replay: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("storage: cannot count deleted rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	return nil
}

// RulesetStats retrieves replay statistics for every ruleset with stored replays.
func (s *Store) RulesetStats() (map[string]*RulesetStats, error) {
	rows, err := s.db.Query(
		`SELECT ruleset, COUNT(*), SUM(ticks), MAX(created_at)
		 FROM replays
		 GROUP BY ruleset`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get ruleset stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*RulesetStats)
	for rows.Next() {
		var st RulesetStats
		var lastPlayed any
		if err := rows.Scan(&st.Ruleset, &st.Replays, &st.TotalTicks, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.LastPlayed = parseTime(lastPlayed)
		stats[st.Ruleset] = &st
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// parseTime handles the driver returning either time.Time or a string.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
