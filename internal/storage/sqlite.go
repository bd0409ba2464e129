// Package storage provides SQLite-based persistence for the game history.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
//
// The history archive is separate from the plain text leaderboard: every
// finished run is kept here with its statistics.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

const timeLayout = "2006-01-02 15:04:05"

// Store manages the SQLite database connection for the history archive.
type Store struct {
	db *sql.DB
}

// GameRecord is one finished run.
type GameRecord struct {
	ID        int64
	Player    string // SSH user, or "local"
	Skill     string
	Score     int
	Medal     string
	Bounces   int
	Pickups   int
	Duration  time.Duration
	CreatedAt time.Time
}

// GameStats contains aggregated statistics over recorded runs.
type GameStats struct {
	Skill        string // Empty for totals over all skills
	GamesCount   int
	HighScore    int
	AvgScore     float64
	TotalBounces int64
	TotalPlay    time.Duration
	LastPlayed   time.Time
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
		CREATE TABLE IF NOT EXISTS games (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			player TEXT NOT NULL DEFAULT 'local',
			skill TEXT NOT NULL,
			score INTEGER NOT NULL,
			medal TEXT NOT NULL DEFAULT '',
			bounces INTEGER NOT NULL DEFAULT 0,
			pickups INTEGER NOT NULL DEFAULT 0,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_games_score ON games(score DESC);
		CREATE INDEX IF NOT EXISTS idx_games_created ON games(created_at DESC);
		CREATE INDEX IF NOT EXISTS idx_games_skill ON games(skill);
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

// SaveGame records a finished run. A zero CreatedAt is set to now.
// Returns the ID of the inserted record.
func (s *Store) SaveGame(rec GameRecord) (int64, error) {
	if rec.Player == "" {
		rec.Player = "local"
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}

	result, err := s.db.Exec(
		`INSERT INTO games (player, skill, score, medal, bounces, pickups, duration_ms, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.Player, rec.Skill, rec.Score, rec.Medal, rec.Bounces, rec.Pickups,
		rec.Duration.Milliseconds(), rec.CreatedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save game: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopGames retrieves the N best runs, ordered by score descending.
func (s *Store) TopGames(limit int) ([]GameRecord, error) {
	return s.queryGames(`ORDER BY score DESC, id ASC LIMIT ?`, normalizeLimit(limit))
}

// RecentGames retrieves the N latest runs, newest first.
func (s *Store) RecentGames(limit int) ([]GameRecord, error) {
	return s.queryGames(`ORDER BY created_at DESC, id DESC LIMIT ?`, normalizeLimit(limit))
}

// PlayerGames retrieves the N latest runs of one player, newest first.
func (s *Store) PlayerGames(player string, limit int) ([]GameRecord, error) {
	return s.queryGames(`WHERE player = ? ORDER BY created_at DESC, id DESC LIMIT ?`, player, normalizeLimit(limit))
}

func (s *Store) queryGames(tail string, args ...any) ([]GameRecord, error) {
	rows, err := s.db.Query(
		`SELECT id, player, skill, score, medal, bounces, pickups, duration_ms, created_at
		 FROM games `+tail,
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query games: %w", err)
	}
	defer rows.Close()

	var records []GameRecord
	for rows.Next() {
		var r GameRecord
		var durationMS int64
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Player, &r.Skill, &r.Score, &r.Medal,
			&r.Bounces, &r.Pickups, &durationMS, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Duration = time.Duration(durationMS) * time.Millisecond
		r.CreatedAt = parseTime(createdAt)
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// HighScore returns the best recorded score, or 0 if no runs exist.
func (s *Store) HighScore() (int, error) {
	var score sql.NullInt64
	if err := s.db.QueryRow("SELECT MAX(score) FROM games").Scan(&score); err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// Stats retrieves aggregated statistics over all runs.
func (s *Store) Stats() (*GameStats, error) {
	stats := &GameStats{}
	var totalMS int64
	var lastPlayed sql.NullString

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0),
		        COALESCE(SUM(bounces), 0), COALESCE(SUM(duration_ms), 0), MAX(created_at)
		 FROM games`,
	).Scan(&stats.GamesCount, &stats.HighScore, &stats.AvgScore,
		&stats.TotalBounces, &totalMS, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}

	stats.TotalPlay = time.Duration(totalMS) * time.Millisecond
	if lastPlayed.Valid {
		stats.LastPlayed = parseTime(lastPlayed.String)
	}
	return stats, nil
}

// SkillStats retrieves statistics grouped by skill preset.
func (s *Store) SkillStats() (map[string]*GameStats, error) {
	rows, err := s.db.Query(
		`SELECT skill, COUNT(*), MAX(score), AVG(score), SUM(bounces), SUM(duration_ms), MAX(created_at)
		 FROM games
		 GROUP BY skill`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get skill stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*GameStats)
	for rows.Next() {
		var st GameStats
		var totalMS int64
		var lastPlayed any
		if err := rows.Scan(&st.Skill, &st.GamesCount, &st.HighScore, &st.AvgScore,
			&st.TotalBounces, &totalMS, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.TotalPlay = time.Duration(totalMS) * time.Millisecond
		st.LastPlayed = parseTime(lastPlayed)
		stats[st.Skill] = &st
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// GameByID retrieves a single run. Returns nil if not found.
func (s *Store) GameByID(id int64) (*GameRecord, error) {
	records, err := s.queryGames(`WHERE id = ?`, id)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}
	return &records[0], nil
}

// Clear deletes all recorded runs.
func (s *Store) Clear() error {
	if _, err := s.db.Exec("DELETE FROM games"); err != nil {
		return fmt.Errorf("storage: cannot clear games: %w", err)
	}
	return nil
}

func normalizeLimit(limit int) int {
	if limit <= 0 {
		return 10
	}
	return limit
}

// parseTime handles both time.Time and string values from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(timeLayout, t); err == nil {
			return parsed
		}
	case []byte:
		if parsed, err := time.Parse(timeLayout, string(t)); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
