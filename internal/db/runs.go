package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// Run statuses
const (
	RunStatusRunning   = "running"
	RunStatusCompleted = "completed"
	RunStatusFailed    = "failed"
)

// Run is one pipeline_runs row.
type Run struct {
	ID          uuid.UUID  `db:"id" json:"id"`
	TargetRole  string     `db:"target_role" json:"target_role"`
	SourceKind  string     `db:"source_kind" json:"source_kind"`
	Format      string     `db:"format" json:"format"`
	TemplateID  string     `db:"template_id" json:"template_id"`
	Status      string     `db:"status" json:"status"`
	OutputPath  string     `db:"output_path" json:"output_path"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	CompletedAt *time.Time `db:"completed_at" json:"completed_at,omitempty"`
}

// RunInput holds the fields recorded when a run starts
type RunInput struct {
	TargetRole string
	SourceKind string
	Format     string
	TemplateID string
}

const runSelect = `SELECT id, target_role, source_kind, format, template_id, status, output_path, created_at, completed_at
	FROM pipeline_runs`

// CreateRun inserts a run in the running state and returns its id.
func (db *DB) CreateRun(ctx context.Context, input RunInput) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO pipeline_runs (target_role, source_kind, format, template_id, status)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		input.TargetRole, input.SourceKind, input.Format, input.TemplateID, RunStatusRunning,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create run: %w", err)
	}
	return id, nil
}

// SetRunTemplate records the template chosen for the run.
func (db *DB) SetRunTemplate(ctx context.Context, runID uuid.UUID, templateID string) error {
	return db.updateRun(ctx, runID, `UPDATE pipeline_runs SET template_id = $2 WHERE id = $1`, templateID)
}

// FinishRun stamps the final status and the path handed back to the caller.
func (db *DB) FinishRun(ctx context.Context, runID uuid.UUID, status, outputPath string) error {
	return db.updateRun(ctx, runID,
		`UPDATE pipeline_runs SET status = $2, output_path = $3, completed_at = NOW() WHERE id = $1`,
		status, outputPath)
}

func (db *DB) updateRun(ctx context.Context, runID uuid.UUID, sql string, args ...any) error {
	tag, err := db.pool.Exec(ctx, sql, append([]any{runID}, args...)...)
	if err != nil {
		return fmt.Errorf("failed to update run %s: %w", runID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("run %s: %w", runID, ErrNotFound)
	}
	return nil
}

// GetRun returns ErrNotFound for an unknown id.
func (db *DB) GetRun(ctx context.Context, runID uuid.UUID) (*Run, error) {
	rows, err := db.pool.Query(ctx, runSelect+` WHERE id = $1`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	run, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[Run])
	if err != nil {
		return nil, notFound(err, "run "+runID.String())
	}
	return run, nil
}

// ListRuns returns the most recent runs first.
func (db *DB) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := db.pool.Query(ctx, runSelect+` ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	runs, err := pgx.CollectRows(rows, pgx.RowToStructByName[Run])
	if err != nil {
		return nil, fmt.Errorf("failed to scan runs: %w", err)
	}
	return runs, nil
}

// DeleteRun removes a run; its artifacts and steps go with it.
func (db *DB) DeleteRun(ctx context.Context, runID uuid.UUID) error {
	tag, err := db.pool.Exec(ctx, `DELETE FROM pipeline_runs WHERE id = $1`, runID)
	if err != nil {
		return fmt.Errorf("failed to delete run: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("run %s: %w", runID, ErrNotFound)
	}
	return nil
}
