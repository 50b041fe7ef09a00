// Package storage provides the persistence collaborators the game session
// consumes: a SQLite-backed high-score table and a YAML settings file.
// Both are best-effort from the session's point of view; callers decide
// whether an error at this boundary is worth surfacing.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

const timeFormat = time.RFC3339Nano

// highScoreLimit is how many entries the high-score list keeps relevant.
// A score qualifies as "new high score" if it would enter the top N.
const highScoreLimit = 10

const scoresSchema = `
CREATE TABLE IF NOT EXISTS high_scores (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	score       INTEGER NOT NULL,
	level       INTEGER NOT NULL,
	lines       INTEGER NOT NULL,
	recorded_at TEXT    NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_high_scores_score ON high_scores(score DESC);
`

// ScoreRecord is one finished game in the high-score list.
type ScoreRecord struct {
	Score      int
	Level      int
	Lines      int
	RecordedAt time.Time
}

// ScoreStore is a SQLite-backed high-score list implementing
// game.ScoreStore.
type ScoreStore struct {
	db *sql.DB
}

// OpenScores opens (and if needed creates) the high-score database at
// the provided path.
func OpenScores(path string) (*ScoreStore, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("score db path is required")
	}

	dsn := filepath.Clean(path) + "?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open score db: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping score db: %w", err)
	}
	if _, err := db.Exec(scoresSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init score schema: %w", err)
	}

	return &ScoreStore{db: db}, nil
}

// Close closes the underlying database.
func (s *ScoreStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// IsNewHighScore reports whether score would enter the top of the list.
// With fewer than highScoreLimit entries any positive score qualifies.
func (s *ScoreStore) IsNewHighScore(score int) (bool, error) {
	if score <= 0 {
		return false, nil
	}

	var cutoff int
	err := s.db.QueryRow(
		`SELECT score FROM high_scores ORDER BY score DESC LIMIT 1 OFFSET ?`,
		highScoreLimit-1,
	).Scan(&cutoff)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return true, nil
	case err != nil:
		return false, fmt.Errorf("query high score cutoff: %w", err)
	}
	return score > cutoff, nil
}

// RecordScore persists a finished game.
func (s *ScoreStore) RecordScore(score, level, lines int, when time.Time) error {
	_, err := s.db.Exec(
		`INSERT INTO high_scores (score, level, lines, recorded_at) VALUES (?, ?, ?, ?)`,
		score, level, lines, when.UTC().Format(timeFormat),
	)
	if err != nil {
		return fmt.Errorf("record score: %w", err)
	}
	return nil
}

// TopScores returns the best entries, highest first.
func (s *ScoreStore) TopScores(limit int) ([]ScoreRecord, error) {
	if limit <= 0 {
		limit = highScoreLimit
	}

	rows, err := s.db.Query(
		`SELECT score, level, lines, recorded_at FROM high_scores ORDER BY score DESC, id ASC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query top scores: %w", err)
	}
	defer rows.Close()

	var records []ScoreRecord
	for rows.Next() {
		var rec ScoreRecord
		var recordedAt string
		if err := rows.Scan(&rec.Score, &rec.Level, &rec.Lines, &recordedAt); err != nil {
			return nil, fmt.Errorf("scan score row: %w", err)
		}
		if ts, err := time.Parse(timeFormat, recordedAt); err == nil {
			rec.RecordedAt = ts
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate score rows: %w", err)
	}
	return records, nil
}
