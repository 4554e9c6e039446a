package duckdb_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"surveymerge/internal/duckdb"
	"surveymerge/internal/duckdb/testing"
	"surveymerge/internal/testutil"
)

const (
	testTimeout = 2 * time.Second
)

// openTestDB opens an in-memory DuckDB instance with the schema applied.
func openTestDB(t *testing.T) (*sql.DB, context.Context) {
	t.Helper()
	ctx := testutil.Context(t, testTimeout)
	db := duckdbtesting.Open(t, ":memory:")
	duckdbtesting.ApplySchema(t, db)
	return db, ctx
}

// queryInt returns a single integer value from the database.
func queryInt(t *testing.T, ctx context.Context, db *sql.DB, query string, args ...interface{}) int {
	t.Helper()
	var out int
	if err := db.QueryRowContext(ctx, query, args...).Scan(&out); err != nil {
		t.Fatalf("query int failed: %v", err)
	}
	return out
}

// sampleRun builds a run with two scored responses.
func sampleRun(runID string) duckdb.RunInput {
	return duckdb.RunInput{
		RunID:      runID,
		StartedAt:  time.Date(2026, 1, 14, 9, 0, 0, 0, time.UTC),
		InputDir:   "responses",
		OutputPath: "combined.xlsx",
		Responses: []duckdb.ResponseInput{
			{
				Source:   "a.json",
				FullName: "Иванов Иван",
				Record:   map[string]interface{}{"full_name": "Иванов Иван", "score": json.Number("50")},
				Components: []duckdb.ComponentInput{
					{Label: "base", Points: 30},
					{Label: "extra", Points: 20},
				},
				Total: 50,
			},
			{
				Source:     "b.json",
				Record:     map[string]interface{}{},
				Components: []duckdb.ComponentInput{{Label: "base", Points: 0}},
			},
		},
	}
}
