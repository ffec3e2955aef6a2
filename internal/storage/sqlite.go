// Package storage provides SQLite-based persistence for finished rounds.
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

// Store manages the SQLite database connection for result persistence.
// It is safe for concurrent use.
type Store struct {
	db *sql.DB
}

// Result is one finished round.
type Result struct {
	ID         int64
	Player     string // "local" or the SSH user
	Difficulty string
	Outcome    string // "clear" or "gameover"
	Reason     string // "cleared", "ball_lost" or "time_up"
	Score      uint32
	CreatedAt  time.Time
}

// Stats summarizes results for one difficulty.
type Stats struct {
	Played  int
	Cleared int
	Best    uint32
	Average float64
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
		CREATE TABLE IF NOT EXISTS results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			player TEXT NOT NULL,
			difficulty TEXT NOT NULL,
			outcome TEXT NOT NULL,
			reason TEXT NOT NULL,
			score INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_results_difficulty ON results(difficulty);
		CREATE INDEX IF NOT EXISTS idx_results_top ON results(difficulty, score DESC);
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

// SaveResult records a finished round.
// Returns the ID of the inserted record.
func (s *Store) SaveResult(r Result) (int64, error) {
	res, err := s.db.Exec(
		"INSERT INTO results (player, difficulty, outcome, reason, score) VALUES (?, ?, ?, ?, ?)",
		r.Player, r.Difficulty, r.Outcome, r.Reason, r.Score,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save result: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopResults retrieves the best N results for a difficulty.
// Ties are broken by the earlier round. An empty difficulty matches all.
func (s *Store) TopResults(difficulty string, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 10
	}

	return s.query(
		`SELECT id, player, difficulty, outcome, reason, score, created_at
		 FROM results
		 WHERE (? = '' OR difficulty = ?)
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		difficulty, difficulty, limit,
	)
}

// RecentResults retrieves the latest N results across difficulties.
func (s *Store) RecentResults(limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 10
	}

	return s.query(
		`SELECT id, player, difficulty, outcome, reason, score, created_at
		 FROM results
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
}

func (s *Store) query(q string, args ...any) ([]Result, error) {
	rows, err := s.db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	var results []Result
	for rows.Next() {
		var r Result
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Player, &r.Difficulty, &r.Outcome, &r.Reason, &r.Score, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}

// parseTime handles both time.Time and string datetime columns.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
		if parsed, err := time.Parse(time.RFC3339, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// HighScore returns the highest score for a difficulty.
// Returns 0 if no results exist.
func (s *Store) HighScore(difficulty string) (uint32, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM results WHERE difficulty = ?",
		difficulty,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return uint32(score.Int64), nil //#nosec G115 -- scores are stored from uint32
}

// Stats summarizes the results for a difficulty.
func (s *Store) Stats(difficulty string) (Stats, error) {
	var st Stats
	var best sql.NullInt64
	var avg sql.NullFloat64
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN outcome = 'clear' THEN 1 ELSE 0 END), 0),
		        MAX(score),
		        AVG(score)
		 FROM results
		 WHERE difficulty = ?`,
		difficulty,
	).Scan(&st.Played, &st.Cleared, &best, &avg)
	if err != nil {
		return Stats{}, fmt.Errorf("storage: cannot query stats: %w", err)
	}

	if best.Valid {
		st.Best = uint32(best.Int64) //#nosec G115 -- scores are stored from uint32
	}
	if avg.Valid {
		st.Average = avg.Float64
	}
	return st, nil
}

// ClearResults deletes all results for a difficulty.
func (s *Store) ClearResults(difficulty string) error {
	_, err := s.db.Exec("DELETE FROM results WHERE difficulty = ?", difficulty)
	if err != nil {
		return fmt.Errorf("storage: cannot clear results: %w", err)
	}
	return nil
}
