package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// Round outcomes recorded in the results log.
const (
	OutcomeWon  = "won"
	OutcomeLost = "lost"
)

// Result is one finished round.
type Result struct {
	ID        string // RES-{nanoid(10)}, assigned by SaveResult when empty
	GameID    string
	Outcome   string
	Height    int
	Width     int
	Moves     int
	Score     int
	Duration  time.Duration
	CreatedAt time.Time
}

// NewResultID generates a new result ID in format RES-{nanoid(10)}.
func NewResultID() (string, error) {
	id, err := gonanoid.New(10)
	if err != nil {
		return "", fmt.Errorf("storage: cannot generate result ID: %w", err)
	}
	return "RES-" + id, nil
}

// SaveResult records a finished round and returns its ID.
func (s *Store) SaveResult(r Result) (string, error) {
	if r.GameID == "" {
		return "", errors.New("storage: result without game ID")
	}
	if r.ID == "" {
		id, err := NewResultID()
		if err != nil {
			return "", err
		}
		r.ID = id
	}

	_, err := s.db.Exec(
		`INSERT INTO results
		 (result_id, game_id, outcome, height, width, moves, score, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID,
		r.GameID,
		r.Outcome,
		r.Height,
		r.Width,
		r.Moves,
		r.Score,
		r.Duration.Milliseconds(),
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save result: %w", err)
	}
	return r.ID, nil
}

const resultColumns = `result_id, game_id, outcome, height, width, moves, score, duration_ms, created_at`

// ResultByID retrieves a result by its ID. Returns nil if not found.
func (s *Store) ResultByID(id string) (*Result, error) {
	row := s.db.QueryRow(`SELECT `+resultColumns+` FROM results WHERE result_id = ?`, id)

	r, err := scanResult(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query result: %w", err)
	}
	return &r, nil
}

// RecentResults retrieves the most recent results for a game, newest first.
func (s *Store) RecentResults(gameID string, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+resultColumns+`
		 FROM results
		 WHERE game_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	var results []Result
	for rows.Next() {
		r, err := scanResult(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanResult(sc scanner) (Result, error) {
	var r Result
	var durationMS int64
	var createdAt any

	err := sc.Scan(
		&r.ID,
		&r.GameID,
		&r.Outcome,
		&r.Height,
		&r.Width,
		&r.Moves,
		&r.Score,
		&durationMS,
		&createdAt,
	)
	if err != nil {
		return Result{}, err
	}

	r.Duration = time.Duration(durationMS) * time.Millisecond
	r.CreatedAt = parseTime(createdAt)
	return r, nil
}
