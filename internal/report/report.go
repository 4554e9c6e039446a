// Package report renders an HTML summary of every respondent's score.
package report

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"surveymerge/internal/scoring"
)

// Page text.
const (
	DefaultTitle     = "Сводка баллов"
	sourceHeader     = "Источник"
	nameHeader       = "ФИО"
	totalHeader      = "Итого"
	respondentsLabel = "Анкет"
)

// Row is one respondent in the summary.
type Row struct {
	Source    string
	Name      string
	Breakdown scoring.Breakdown
}

// RenderSummaryHTML renders the summary page into a string.
func RenderSummaryHTML(ctx context.Context, title string, rows []Row) (string, error) {
	if strings.TrimSpace(title) == "" {
		title = DefaultTitle
	}
	var builder strings.Builder
	if err := SummaryPage(title, rows).Render(ctx, &builder); err != nil {
		return "", err
	}
	return builder.String(), nil
}

// WriteSummary renders the summary page to path, creating parent directories.
func WriteSummary(ctx context.Context, path, title string, rows []Row) error {
	html, err := RenderSummaryHTML(ctx, title, rows)
	if err != nil {
		return fmt.Errorf("render summary: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create report dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(html), 0o644); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}
	return nil
}
