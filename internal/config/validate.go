package config

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Issue captures a validation problem with a config field.
type Issue struct {
	Field   string
	Message string
}

// ValidationError aggregates config validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error renders validation errors as a multi-line string.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return "config validation failed"
	}
	lines := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		lines = append(lines, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return strings.Join(lines, "\n")
}

// issueCollector accumulates validation issues.
type issueCollector struct {
	issues []Issue
}

// add records a new validation issue.
func (c *issueCollector) add(field, message string) {
	c.issues = append(c.issues, Issue{Field: field, Message: message})
}

// result returns a ValidationError when issues are present.
func (c *issueCollector) result() error {
	if len(c.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: c.issues}
}

const (
	maxSheetNameLength = 31
	sheetNameForbidden = `[]:*?/\`
)

var hexColor = regexp.MustCompile(`^[0-9A-Fa-f]{6}$`)

// Validate checks a normalized config for correctness.
func Validate(cfg *Config) error {
	collector := &issueCollector{}

	if cfg.Version == 0 {
		collector.add("version", "is required")
	} else if cfg.Version != 1 {
		collector.add("version", fmt.Sprintf("unsupported version %d", cfg.Version))
	}

	if !strings.EqualFold(filepath.Ext(cfg.Output), ".xlsx") {
		collector.add("output", "must end with .xlsx")
	}

	validateSheetName(cfg.SheetName, collector.add)

	if !hexColor.MatchString(cfg.HighlightColor) {
		collector.add("highlight_color", fmt.Sprintf("must be 6 hex digits, got %q", cfg.HighlightColor))
	}
	if cfg.ColumnPadding != nil && *cfg.ColumnPadding < 0 {
		collector.add("column_padding", "must be >= 0")
	}
	if cfg.HTMLReport != "" && strings.TrimSpace(cfg.HTMLReport) == "" {
		collector.add("html_report", "must not be blank")
	}
	if cfg.DuckDBPath != "" && strings.TrimSpace(cfg.DuckDBPath) == "" {
		collector.add("duckdb_path", "must not be blank")
	}

	return collector.result()
}

func validateSheetName(name string, add func(field, message string)) {
	length := utf8.RuneCountInString(name)
	if length == 0 || length > maxSheetNameLength {
		add("sheet_name", fmt.Sprintf("must be 1..%d characters", maxSheetNameLength))
	}
	if strings.ContainsAny(name, sheetNameForbidden) {
		add("sheet_name", fmt.Sprintf("must not contain any of %s", sheetNameForbidden))
	}
}
