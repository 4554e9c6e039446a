package report

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"surveymerge/internal/scoring"
	"surveymerge/internal/survey"
)

func sampleRows() []Row {
	record := survey.NewRecord(survey.Object(
		survey.Field{Key: survey.KeyQualification, Value: survey.Array(
			survey.Object(survey.Field{Key: "event", Value: survey.Str("Курс")}),
		)},
	))
	return []Row{
		{Source: "a.json", Name: "Иванов <script>", Breakdown: scoring.Score(record)},
		{Source: "b.json", Name: "Петров", Breakdown: scoring.Score(survey.NewRecord(survey.Object()))},
	}
}

// TestRenderSummaryHTML verifies respondents, labels, and totals are listed.
func TestRenderSummaryHTML(t *testing.T) {
	html, err := RenderSummaryHTML(context.Background(), "", sampleRows())
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, token := range []string{"a.json", "b.json", "Петров", DefaultTitle, "<table", scoring.Labels()[6], ">20<"} {
		if !strings.Contains(html, token) {
			t.Fatalf("expected report to include %q", token)
		}
	}
	if strings.Contains(html, "<script>") {
		t.Fatalf("expected names to be escaped")
	}
	if !strings.Contains(html, "Анкет: 2") {
		t.Fatalf("expected respondent count")
	}
}

// TestWriteSummary verifies the page is written to disk.
func TestWriteSummary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "summary.html")
	if err := WriteSummary(context.Background(), path, "Итоги", sampleRows()); err != nil {
		t.Fatalf("write summary: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read summary: %v", err)
	}
	if !strings.Contains(string(data), "<title>Итоги</title>") {
		t.Fatalf("expected custom title")
	}
}
