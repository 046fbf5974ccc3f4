package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// Step statuses
const (
	StepStatusInProgress = "in_progress"
	StepStatusCompleted  = "completed"
	StepStatusFailed     = "failed"
)

// Step categories
const (
	StepCategoryIngestion = "ingestion"
	StepCategoryRewriting = "rewriting"
	StepCategoryOutput    = "output"
)

// RunStep is the timing record of one executed stage.
type RunStep struct {
	Step         string     `db:"step" json:"step"`
	Category     string     `db:"category" json:"category"`
	Status       string     `db:"status" json:"status"`
	StartedAt    time.Time  `db:"started_at" json:"started_at"`
	CompletedAt  *time.Time `db:"completed_at" json:"completed_at,omitempty"`
	DurationMs   *int       `db:"duration_ms" json:"duration_ms,omitempty"`
	ErrorMessage string     `db:"error_message" json:"error_message,omitempty"`
}

// StartStep records a stage as in progress. Restarting a stage resets its
// timing.
func (db *DB) StartStep(ctx context.Context, runID uuid.UUID, step, category string) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO run_steps (run_id, step, category, status, started_at)
		 VALUES ($1, $2, $3, $4, NOW())
		 ON CONFLICT (run_id, step) DO UPDATE
		 SET status = EXCLUDED.status, started_at = NOW(), completed_at = NULL,
		     duration_ms = NULL, error_message = ''`,
		runID, step, category, StepStatusInProgress,
	)
	if err != nil {
		return fmt.Errorf("failed to start step %s: %w", step, err)
	}
	return nil
}

// FinishStep stamps the final status of a started stage and its duration.
func (db *DB) FinishStep(ctx context.Context, runID uuid.UUID, step, status, errorMessage string) error {
	tag, err := db.pool.Exec(ctx,
		`UPDATE run_steps
		 SET status = $3, error_message = $4, completed_at = NOW(),
		     duration_ms = (EXTRACT(EPOCH FROM NOW() - started_at) * 1000)::INTEGER
		 WHERE run_id = $1 AND step = $2`,
		runID, step, status, errorMessage,
	)
	if err != nil {
		return fmt.Errorf("failed to finish step %s: %w", step, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("step %s: %w", step, ErrNotFound)
	}
	return nil
}

// ListRunSteps returns the run's stages in execution order.
func (db *DB) ListRunSteps(ctx context.Context, runID uuid.UUID) ([]RunStep, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT step, category, status, started_at, completed_at, duration_ms, error_message
		 FROM run_steps WHERE run_id = $1 ORDER BY started_at`,
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list run steps: %w", err)
	}
	steps, err := pgx.CollectRows(rows, pgx.RowToStructByName[RunStep])
	if err != nil {
		return nil, fmt.Errorf("failed to scan run steps: %w", err)
	}
	return steps, nil
}
