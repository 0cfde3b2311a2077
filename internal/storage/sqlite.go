// Package storage provides SQLite-based persistence for finished games.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/platformer/internal/core"
	"github.com/vovakirdan/platformer/internal/games/platformer"
)

// Store manages the SQLite database connection for run history.
type Store struct {
	db *sql.DB
}

// RunEntry represents a single finished game.
type RunEntry struct {
	ID        int64
	RunID     string
	Tiles     int
	Start     int
	Seed      int64
	Outcome   core.Outcome
	Position  int
	Floor     []int // Tiles left when the game ended
	Jumps     int
	Fallbacks int
	Drops     int
	Duration  time.Duration
	CreatedAt time.Time
}

// Stats contains aggregated statistics over all recorded runs.
type Stats struct {
	Runs        int
	Victories   int
	Defeats     int
	AvgJumps    float64
	AvgDrops    float64
	AvgDuration time.Duration
	LastPlayed  time.Time
}

// WinRate returns the share of runs that ended in victory.
func (s Stats) WinRate() float64 {
	if s.Runs == 0 {
		return 0
	}
	return float64(s.Victories) / float64(s.Runs)
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

	// Test connection
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
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL UNIQUE,
			tiles INTEGER NOT NULL,
			start INTEGER NOT NULL,
			seed INTEGER NOT NULL DEFAULT 0,
			outcome TEXT NOT NULL,
			position INTEGER NOT NULL,
			floor TEXT NOT NULL DEFAULT '',
			jumps INTEGER NOT NULL DEFAULT 0,
			fallbacks INTEGER NOT NULL DEFAULT 0,
			drops INTEGER NOT NULL DEFAULT 0,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_outcome ON runs(outcome);
		CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at DESC);
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

// SaveRun records a finished game.
// Returns the ID of the inserted record.
func (s *Store) SaveRun(e RunEntry) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO runs
		 (run_id, tiles, start, seed, outcome, position, floor, jumps, fallbacks, drops, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.RunID,
		e.Tiles,
		e.Start,
		e.Seed,
		e.Outcome.String(),
		e.Position,
		encodeFloor(e.Floor),
		e.Jumps,
		e.Fallbacks,
		e.Drops,
		e.Duration.Milliseconds(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// SaveResult implements platformer.ResultSaver.
// This adapter allows the session to save results without direct storage dependency.
func (s *Store) SaveResult(r platformer.Result) error {
	_, err := s.SaveRun(RunEntry{
		RunID:     r.ID,
		Tiles:     r.Tiles,
		Start:     r.Start,
		Seed:      r.Seed,
		Outcome:   r.Outcome,
		Position:  r.Position,
		Floor:     r.Floor,
		Jumps:     r.Jumps,
		Fallbacks: r.Fallbacks,
		Drops:     r.Drops,
		Duration:  r.Duration,
	})
	return err
}

// Ensure Store implements ResultSaver
var _ platformer.ResultSaver = (*Store)(nil)

const runColumns = `id, run_id, tiles, start, seed, outcome, position, floor,
	jumps, fallbacks, drops, duration_ms, created_at`

// RecentRuns retrieves the most recent runs, newest first.
func (s *Store) RecentRuns(limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+runColumns+`
		 FROM runs
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var entries []RunEntry
	for rows.Next() {
		e, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// RunByID retrieves a run by its run ID. Returns nil if not found.
func (s *Store) RunByID(runID string) (*RunEntry, error) {
	row := s.db.QueryRow(
		`SELECT `+runColumns+` FROM runs WHERE run_id = ?`,
		runID,
	)

	e, err := scanRun(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// Stats retrieves aggregated statistics over all runs.
func (s *Store) Stats() (*Stats, error) {
	stats := &Stats{}

	var avgDurationMS float64
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN outcome = 'victory' THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(CASE WHEN outcome = 'defeat' THEN 1 ELSE 0 END), 0),
		        COALESCE(AVG(jumps), 0),
		        COALESCE(AVG(drops), 0),
		        COALESCE(AVG(duration_ms), 0)
		 FROM runs`,
	).Scan(&stats.Runs, &stats.Victories, &stats.Defeats, &stats.AvgJumps, &stats.AvgDrops, &avgDurationMS)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	stats.AvgDuration = time.Duration(avgDurationMS * float64(time.Millisecond))

	// Get last played
	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM runs ORDER BY created_at DESC LIMIT 1`,
	).Scan(&lastPlayed)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}

	return stats, nil
}

// ClearRuns deletes every recorded run.
func (s *Store) ClearRuns() error {
	_, err := s.db.Exec("DELETE FROM runs")
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanRun(sc scanner) (RunEntry, error) {
	var (
		e          RunEntry
		outcome    string
		floor      string
		durationMS int64
		createdAt  any
	)
	err := sc.Scan(
		&e.ID,
		&e.RunID,
		&e.Tiles,
		&e.Start,
		&e.Seed,
		&outcome,
		&e.Position,
		&floor,
		&e.Jumps,
		&e.Fallbacks,
		&e.Drops,
		&durationMS,
		&createdAt,
	)
	if err == sql.ErrNoRows {
		return e, err
	}
	if err != nil {
		return e, fmt.Errorf("storage: cannot scan row: %w", err)
	}

	e.Outcome = core.ParseOutcome(outcome)
	e.Floor = decodeFloor(floor)
	e.Duration = time.Duration(durationMS) * time.Millisecond
	e.CreatedAt = parseTime(createdAt)
	return e, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
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

// encodeFloor stores tile ids as a space separated list.
func encodeFloor(floor []int) string {
	parts := make([]string, len(floor))
	for i, id := range floor {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, " ")
}

func decodeFloor(s string) []int {
	fields := strings.Fields(s)
	floor := make([]int, 0, len(fields))
	for _, f := range fields {
		if id, err := strconv.Atoi(f); err == nil {
			floor = append(floor, id)
		}
	}
	return floor
}
