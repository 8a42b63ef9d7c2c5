// Package storage provides SQLite-based persistence for level completions.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for completion persistence.
type Store struct {
	db *sql.DB
}

// Completion represents a single recorded level completion.
type Completion struct {
	ID        int64
	LevelID   string
	Moves     int
	Duration  int // Duration in seconds
	CreatedAt time.Time
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
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS completions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			level_id TEXT NOT NULL,
			moves INTEGER NOT NULL,
			duration_secs INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_completions_level_id ON completions(level_id);
		CREATE INDEX IF NOT EXISTS idx_completions_best ON completions(level_id, moves ASC);
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

// SaveCompletion records a finished level.
// Returns the ID of the inserted record.
func (s *Store) SaveCompletion(levelID string, moves, durationSecs int) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO completions (level_id, moves, duration_secs) VALUES (?, ?, ?)",
		levelID, moves, durationSecs,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save completion: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// BestMoves returns the lowest move count recorded for the given level.
// Returns 0, false if the level has never been completed.
func (s *Store) BestMoves(levelID string) (int, bool, error) {
	var moves sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MIN(moves) FROM completions WHERE level_id = ?",
		levelID,
	).Scan(&moves)

	if err != nil {
		return 0, false, fmt.Errorf("storage: cannot query best moves: %w", err)
	}

	if !moves.Valid {
		return 0, false, nil
	}

	return int(moves.Int64), true, nil
}

// History retrieves the most recent completions for the given level.
// Results are ordered newest first.
func (s *Store) History(levelID string, limit int) ([]Completion, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, level_id, moves, duration_secs, created_at
		 FROM completions
		 WHERE level_id = ?
		 ORDER BY created_at DESC
		 LIMIT ?`,
		levelID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query completions: %w", err)
	}
	defer rows.Close()

	return scanCompletions(rows)
}

// AllCompletions retrieves every completion for the given level,
// best move count first.
func (s *Store) AllCompletions(levelID string) ([]Completion, error) {
	rows, err := s.db.Query(
		`SELECT id, level_id, moves, duration_secs, created_at
		 FROM completions
		 WHERE level_id = ?
		 ORDER BY moves ASC, created_at ASC`,
		levelID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query completions: %w", err)
	}
	defer rows.Close()

	return scanCompletions(rows)
}

// CompletedLevels returns the IDs of all levels with at least one completion.
func (s *Store) CompletedLevels() ([]string, error) {
	rows, err := s.db.Query(
		"SELECT DISTINCT level_id FROM completions ORDER BY level_id",
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query completed levels: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return ids, nil
}

// ClearCompletions deletes all completions for the given level.
func (s *Store) ClearCompletions(levelID string) error {
	_, err := s.db.Exec("DELETE FROM completions WHERE level_id = ?", levelID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear completions: %w", err)
	}
	return nil
}

func scanCompletions(rows *sql.Rows) ([]Completion, error) {
	var entries []Completion
	for rows.Next() {
		var c Completion
		var createdAt any
		if err := rows.Scan(&c.ID, &c.LevelID, &c.Moves, &c.Duration, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		// Parse the datetime - handle both time.Time and string
		switch v := createdAt.(type) {
		case time.Time:
			c.CreatedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				c.CreatedAt = parsed
			}
		}
		entries = append(entries, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}
