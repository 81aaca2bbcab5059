// Package storage provides SQLite-based persistence for best times and the
// continue-game slot. Uses the pure-Go modernc.org/sqlite driver to avoid
// CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-minesweeper/internal/minefield"
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// BestTime is the single fastest win recorded for a difficulty.
type BestTime struct {
	Difficulty string
	Seconds    int
	Width      int
	Height     int
	Mines      int
	CreatedAt  time.Time
}

// Duration renders the time the way the HUD does (m:ss).
func (b BestTime) Duration() string {
	return fmt.Sprintf("%d:%02d", b.Seconds/60, b.Seconds%60)
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

	// Open database
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

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
// One best-time row per difficulty and one saved-game slot per difficulty.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS best_times (
			difficulty TEXT PRIMARY KEY,
			seconds INTEGER NOT NULL,
			width INTEGER NOT NULL,
			height INTEGER NOT NULL,
			mines INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS saved_games (
			difficulty TEXT PRIMARY KEY,
			state TEXT NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
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

// RecordTime records a win. The stored best time is replaced only when the
// new time is faster; returns true when the record improved.
func (s *Store) RecordTime(difficulty string, seconds, width, height, mines int) (bool, error) {
	current, ok, err := s.BestTime(difficulty)
	if err != nil {
		return false, err
	}
	if ok && current.Seconds <= seconds {
		return false, nil
	}

	_, err = s.db.Exec(
		`INSERT INTO best_times (difficulty, seconds, width, height, mines, created_at)
		 VALUES (?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(difficulty) DO UPDATE SET
		   seconds = excluded.seconds,
		   width = excluded.width,
		   height = excluded.height,
		   mines = excluded.mines,
		   created_at = excluded.created_at`,
		difficulty, seconds, width, height, mines,
	)
	if err != nil {
		return false, fmt.Errorf("storage: cannot record time: %w", err)
	}
	return true, nil
}

// BestTime returns the best time for a difficulty. The second return value
// is false when no win has been recorded yet.
func (s *Store) BestTime(difficulty string) (BestTime, bool, error) {
	var entry BestTime
	var createdAt any

	err := s.db.QueryRow(
		`SELECT difficulty, seconds, width, height, mines, created_at
		 FROM best_times
		 WHERE difficulty = ?`,
		difficulty,
	).Scan(&entry.Difficulty, &entry.Seconds, &entry.Width, &entry.Height, &entry.Mines, &createdAt)

	if err == sql.ErrNoRows {
		return BestTime{}, false, nil
	}
	if err != nil {
		return BestTime{}, false, fmt.Errorf("storage: cannot query best time: %w", err)
	}

	entry.CreatedAt = parseTimestamp(createdAt)
	return entry, true, nil
}

// BestTimes returns all recorded best times sorted by difficulty.
func (s *Store) BestTimes() ([]BestTime, error) {
	rows, err := s.db.Query(
		`SELECT difficulty, seconds, width, height, mines, created_at
		 FROM best_times
		 ORDER BY difficulty`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query best times: %w", err)
	}
	defer rows.Close()

	var entries []BestTime
	for rows.Next() {
		var entry BestTime
		var createdAt any
		if err := rows.Scan(&entry.Difficulty, &entry.Seconds, &entry.Width, &entry.Height, &entry.Mines, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		entry.CreatedAt = parseTimestamp(createdAt)
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// ClearBestTime deletes the record for a difficulty.
func (s *Store) ClearBestTime(difficulty string) error {
	_, err := s.db.Exec("DELETE FROM best_times WHERE difficulty = ?", difficulty)
	if err != nil {
		return fmt.Errorf("storage: cannot clear best time: %w", err)
	}
	return nil
}

// SaveGame writes an in-progress board to the difficulty's continue slot,
// replacing any previous save.
func (s *Store) SaveGame(difficulty string, state minefield.SaveState) error {
	data, err := yaml.Marshal(state)
	if err != nil {
		return fmt.Errorf("storage: cannot encode save: %w", err)
	}

	_, err = s.db.Exec(
		`INSERT INTO saved_games (difficulty, state, updated_at)
		 VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(difficulty) DO UPDATE SET
		   state = excluded.state,
		   updated_at = excluded.updated_at`,
		difficulty, string(data),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save game: %w", err)
	}
	return nil
}

// LoadGame reads the continue slot for a difficulty. The second return
// value is false when there is no saved game.
func (s *Store) LoadGame(difficulty string) (minefield.SaveState, bool, error) {
	var data string
	err := s.db.QueryRow(
		"SELECT state FROM saved_games WHERE difficulty = ?",
		difficulty,
	).Scan(&data)

	if err == sql.ErrNoRows {
		return minefield.SaveState{}, false, nil
	}
	if err != nil {
		return minefield.SaveState{}, false, fmt.Errorf("storage: cannot query saved game: %w", err)
	}

	var state minefield.SaveState
	if err := yaml.Unmarshal([]byte(data), &state); err != nil {
		return minefield.SaveState{}, false, fmt.Errorf("storage: cannot decode save: %w", err)
	}
	return state, true, nil
}

// HasSavedGame reports whether a continue slot exists for a difficulty.
func (s *Store) HasSavedGame(difficulty string) (bool, error) {
	var n int
	err := s.db.QueryRow(
		"SELECT COUNT(*) FROM saved_games WHERE difficulty = ?",
		difficulty,
	).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("storage: cannot query saved games: %w", err)
	}
	return n > 0, nil
}

// SavedGame is a continue slot with its decoded board.
type SavedGame struct {
	Difficulty string
	State      minefield.SaveState
	UpdatedAt  time.Time
}

// SavedGames returns all continue slots, most recently saved first.
func (s *Store) SavedGames() ([]SavedGame, error) {
	rows, err := s.db.Query(
		"SELECT difficulty, state, updated_at FROM saved_games ORDER BY updated_at DESC",
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query saved games: %w", err)
	}
	defer rows.Close()

	var saved []SavedGame
	for rows.Next() {
		var (
			entry SavedGame
			data  string
			ts    any
		)
		if err := rows.Scan(&entry.Difficulty, &data, &ts); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		if err := yaml.Unmarshal([]byte(data), &entry.State); err != nil {
			return nil, fmt.Errorf("storage: cannot decode save: %w", err)
		}
		entry.UpdatedAt = parseTimestamp(ts)
		saved = append(saved, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return saved, nil
}

// DeleteGame removes the continue slot for a difficulty.
func (s *Store) DeleteGame(difficulty string) error {
	_, err := s.db.Exec("DELETE FROM saved_games WHERE difficulty = ?", difficulty)
	if err != nil {
		return fmt.Errorf("storage: cannot delete saved game: %w", err)
	}
	return nil
}

// parseTimestamp handles the driver returning either time.Time or a string.
func parseTimestamp(v any) time.Time {
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
