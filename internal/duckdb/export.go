package duckdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// ComponentInput is one scored criterion of a response.
type ComponentInput struct {
	Label  string
	Points int
}

// ResponseInput is one respondent's stored answers and score.
type ResponseInput struct {
	Source   string
	FullName string
	// Record is the response as loaded, in JSON-compatible Go types.
	Record     interface{}
	Components []ComponentInput
	Total      int
}

// RunInput describes one merge run.
type RunInput struct {
	RunID      string
	StartedAt  time.Time
	InputDir   string
	OutputPath string
	Responses  []ResponseInput
}

// InsertRun stores a run with its responses and score components in one
// transaction.
func InsertRun(ctx context.Context, db *sql.DB, run RunInput) error {
	if ctx == nil {
		return errors.New("duckdb: context is nil")
	}
	if db == nil {
		return errors.New("duckdb: db is nil")
	}
	if run.RunID == "" {
		return errors.New("duckdb: run id is required")
	}
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin run: %w", err)
	}
	if err := insertRun(ctx, tx, run); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit run: %w", err)
	}
	return nil
}

func insertRun(ctx context.Context, tx *sql.Tx, run RunInput) error {
	startedAt := run.StartedAt
	if startedAt.IsZero() {
		startedAt = time.Now()
	}
	if _, err := tx.ExecContext(
		ctx,
		`INSERT INTO runs (run_id, started_at, input_dir, output_path, record_count)
		 VALUES (?, ?, ?, ?, ?)`,
		run.RunID,
		startedAt.UTC(),
		run.InputDir,
		run.OutputPath,
		len(run.Responses),
	); err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	for _, response := range run.Responses {
		canonical, err := CanonicalJSON(response.Record)
		if err != nil {
			return fmt.Errorf("canonical record %s: %w", response.Source, err)
		}
		if _, err := tx.ExecContext(
			ctx,
			`INSERT INTO responses (run_id, source, full_name, fingerprint, record, total)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			run.RunID,
			response.Source,
			nullableString(response.FullName),
			fingerprintBytes(canonical),
			string(canonical),
			response.Total,
		); err != nil {
			return fmt.Errorf("insert response %s: %w", response.Source, err)
		}
		for position, component := range response.Components {
			if _, err := tx.ExecContext(
				ctx,
				`INSERT INTO score_components (run_id, source, position, label, points)
				 VALUES (?, ?, ?, ?, ?)`,
				run.RunID,
				response.Source,
				position,
				component.Label,
				component.Points,
			); err != nil {
				return fmt.Errorf("insert score component %s/%d: %w", response.Source, position, err)
			}
		}
	}
	return nil
}

// Export opens (or creates) the database at path, applies the schema, and
// stores run.
func Export(ctx context.Context, path string, run RunInput) error {
	db, err := sql.Open(DriverName, path)
	if err != nil {
		return fmt.Errorf("open duckdb: %w", err)
	}
	defer db.Close()
	if err := EnsureSchema(ctx, db); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return InsertRun(ctx, db, run)
}

func nullableString(value string) interface{} {
	if value == "" {
		return nil
	}
	return value
}
