package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pate2crabe/mazegame/internal/core"
)

const outcomeEscaped = string(core.OutcomeEscaped)

// RunRecord is one stored maze run.
type RunRecord struct {
	ID         int64
	RunID      string // UUID
	GameID     string
	Seed       int64
	Width      int
	Height     int
	BonusFound int
	BonusTotal int
	PenaltyHit bool
	Outcome    core.Outcome
	Duration   int // Duration in seconds
	Score      int
	CreatedAt  time.Time
}

// SaveRun records a run summary under a fresh run ID and returns that ID.
func (s *Store) SaveRun(gameID string, sum core.RunSummary) (string, error) {
	runID := uuid.NewString()
	_, err := s.db.Exec(
		`INSERT INTO runs
		 (run_id, game_id, seed, width, height, bonus_found, bonus_total, penalty_hit, outcome, duration_secs, score)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		runID,
		gameID,
		sum.Seed,
		sum.Width,
		sum.Height,
		sum.BonusFound,
		sum.BonusTotal,
		sum.PenaltyHit,
		string(sum.Outcome),
		int(sum.Duration/time.Second),
		sum.Score,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save run: %w", err)
	}

	s.logger.Debug("run saved", "run", runID, "game", gameID, "outcome", sum.Outcome, "score", sum.Score)
	return runID, nil
}

const runColumns = `id, run_id, game_id, seed, width, height, bonus_found, bonus_total,
		        penalty_hit, outcome, duration_secs, score, created_at`

// RunByID retrieves a run by its run ID. Returns nil if it does not exist.
func (s *Store) RunByID(runID string) (*RunRecord, error) {
	if _, err := uuid.Parse(runID); err != nil {
		return nil, fmt.Errorf("storage: invalid run id %q: %w", runID, err)
	}

	row := s.db.QueryRow(`SELECT `+runColumns+` FROM runs WHERE run_id = ?`, runID)
	r, err := scanRun(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query run: %w", err)
	}
	return r, nil
}

// RecentRuns retrieves the most recent runs for a game, newest first.
func (s *Store) RecentRuns(gameID string, limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+runColumns+`
		 FROM runs
		 WHERE game_id = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var results []RunRecord
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		results = append(results, *r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (*RunRecord, error) {
	var r RunRecord
	var outcome string
	var createdAt any
	if err := row.Scan(
		&r.ID,
		&r.RunID,
		&r.GameID,
		&r.Seed,
		&r.Width,
		&r.Height,
		&r.BonusFound,
		&r.BonusTotal,
		&r.PenaltyHit,
		&outcome,
		&r.Duration,
		&r.Score,
		&createdAt,
	); err != nil {
		return nil, err
	}
	r.Outcome = core.Outcome(outcome)
	r.CreatedAt = parseTime(createdAt)
	return &r, nil
}
