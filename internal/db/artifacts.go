package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// Artifact steps written by the pipeline.
const (
	StepSourceText       = "source_text"
	StepSourceMetadata   = "source_metadata"
	StepPlan             = "plan"
	StepIndustryContext  = "industry_context"
	StepGapAnalysis      = "gap_analysis"
	StepPolishedMarkdown = "polished_markdown"
	StepDocument         = "resume_document"
	StepResumeTex        = "resume_tex"
)

// Artifact categories
const (
	CategoryIngestion = "ingestion"
	CategoryPlanning  = "planning"
	CategoryRewriting = "rewriting"
	CategoryParsing   = "parsing"
	CategoryRendering = "rendering"
)

// Artifact is one stored stage output. Exactly one of JSON and Text is set.
type Artifact struct {
	Step      string    `db:"step"`
	Category  string    `db:"category"`
	JSON      *string   `db:"content"`
	Text      *string   `db:"text_content"`
	CreatedAt time.Time `db:"created_at"`
}

// Body returns the artifact's payload as stored.
func (a *Artifact) Body() []byte {
	switch {
	case a.Text != nil:
		return []byte(*a.Text)
	case a.JSON != nil:
		return []byte(*a.JSON)
	}
	return nil
}

// ArtifactSummary lists an artifact without its payload.
type ArtifactSummary struct {
	Step      string    `db:"step" json:"step"`
	Category  string    `db:"category" json:"category"`
	HasJSON   bool      `db:"has_json" json:"has_json"`
	HasText   bool      `db:"has_text" json:"has_text"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// SaveArtifact stores content as JSON, replacing any earlier artifact of the
// same step.
func (db *DB) SaveArtifact(ctx context.Context, runID uuid.UUID, step, category string, content any) error {
	data, err := json.Marshal(content)
	if err != nil {
		return fmt.Errorf("failed to marshal artifact %s: %w", step, err)
	}
	return db.putArtifact(ctx, runID, step, category, data, nil)
}

// SaveTextArtifact stores plain text such as markdown or LaTeX source.
func (db *DB) SaveTextArtifact(ctx context.Context, runID uuid.UUID, step, category, text string) error {
	return db.putArtifact(ctx, runID, step, category, nil, &text)
}

func (db *DB) putArtifact(ctx context.Context, runID uuid.UUID, step, category string, content []byte, text *string) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO artifacts (run_id, step, category, content, text_content)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (run_id, step) DO UPDATE
		 SET category = EXCLUDED.category, content = EXCLUDED.content,
		     text_content = EXCLUDED.text_content, created_at = NOW()`,
		runID, step, category, content, text,
	)
	if err != nil {
		return fmt.Errorf("failed to save artifact %s: %w", step, err)
	}
	return nil
}

// GetArtifact returns ErrNotFound when the run has no artifact for step.
func (db *DB) GetArtifact(ctx context.Context, runID uuid.UUID, step string) (*Artifact, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT step, COALESCE(category, '') AS category, content::TEXT AS content, text_content, created_at
		 FROM artifacts WHERE run_id = $1 AND step = $2`,
		runID, step,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get artifact %s: %w", step, err)
	}
	a, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[Artifact])
	if err != nil {
		return nil, notFound(err, "artifact "+step)
	}
	return a, nil
}

// ListArtifacts returns the run's artifacts in the order they were written.
func (db *DB) ListArtifacts(ctx context.Context, runID uuid.UUID) ([]ArtifactSummary, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT step, COALESCE(category, '') AS category,
		        content IS NOT NULL AS has_json, text_content IS NOT NULL AS has_text, created_at
		 FROM artifacts WHERE run_id = $1 ORDER BY created_at, step`,
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list artifacts: %w", err)
	}
	list, err := pgx.CollectRows(rows, pgx.RowToStructByName[ArtifactSummary])
	if err != nil {
		return nil, fmt.Errorf("failed to scan artifacts: %w", err)
	}
	return list, nil
}
