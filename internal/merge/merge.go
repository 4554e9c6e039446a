// Package merge runs the full pipeline from a directory of survey responses
// to a spreadsheet and its optional companion outputs.
package merge

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"surveymerge/internal/duckdb"
	"surveymerge/internal/normalize"
	"surveymerge/internal/report"
	"surveymerge/internal/scorepdf"
	"surveymerge/internal/scoring"
	"surveymerge/internal/sheet"
	"surveymerge/internal/survey"
)

// Options configures one merge run.
type Options struct {
	InputDir   string
	OutputPath string

	GeneratePDF bool
	// PDFDir defaults to the spreadsheet's directory.
	PDFDir   string
	FontPath string

	SheetName      string
	HighlightColor string
	ColumnPadding  int

	HTMLReport string
	DuckDBPath string

	Logger *slog.Logger
	Now    func() time.Time
}

// Respondent is one scored response.
type Respondent struct {
	Source    string            `json:"source"`
	Name      string            `json:"name"`
	Breakdown scoring.Breakdown `json:"breakdown"`
	PDFPath   string            `json:"pdf_path,omitempty"`
}

// Summary describes what a run produced.
type Summary struct {
	RunID       string
	Records     int
	Columns     int
	OutputPath  string
	PDFs        []string
	HTMLReport  string
	DuckDBPath  string
	Respondents []Respondent
}

// Run merges every response in opts.InputDir into one workbook.
func Run(ctx context.Context, opts Options) (Summary, error) {
	if strings.TrimSpace(opts.InputDir) == "" {
		return Summary{}, errors.New("input dir is required")
	}
	if strings.TrimSpace(opts.OutputPath) == "" {
		return Summary{}, errors.New("output path is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	startedAt := now()
	runID := uuid.NewString()
	logger = logger.With("run_id", runID)

	sources, err := survey.LoadDir(opts.InputDir)
	if err != nil {
		return Summary{}, err
	}
	for _, source := range sources {
		logger.Debug("loaded response", "file", source.Name, "keys", source.Record.Len())
	}

	plan := sheet.NewPlan(survey.Questions(), survey.Records(sources))
	logger.Info("planned columns", "questions", len(plan.Questions), "columns", len(plan.Columns))

	respondents := scoreSources(sources)
	rows := make([]sheet.Row, len(sources))
	for i, source := range sources {
		rows[i] = sheet.Row{
			Source: source.Name,
			Record: normalize.Record(source.Record, respondents[i].Breakdown.Total),
		}
	}
	if err := ctx.Err(); err != nil {
		return Summary{}, err
	}

	grid := sheet.Render(plan, rows)
	if err := os.MkdirAll(filepath.Dir(opts.OutputPath), 0o755); err != nil {
		return Summary{}, fmt.Errorf("create output dir: %w", err)
	}
	if err := sheet.WriteWorkbook(opts.OutputPath, grid, sheet.WorkbookOptions{
		SheetName:      opts.SheetName,
		HighlightColor: opts.HighlightColor,
		ColumnPadding:  opts.ColumnPadding,
	}); err != nil {
		return Summary{}, fmt.Errorf("write workbook: %w", err)
	}
	logger.Info("wrote workbook", "path", opts.OutputPath, "records", len(rows))

	summary := Summary{
		RunID:      runID,
		Records:    len(sources),
		Columns:    len(plan.Columns),
		OutputPath: opts.OutputPath,
	}

	if opts.GeneratePDF {
		pdfs, err := writePDFs(ctx, opts, respondents, logger)
		if err != nil {
			return Summary{}, err
		}
		summary.PDFs = pdfs
	}

	if opts.HTMLReport != "" {
		if err := report.WriteSummary(ctx, opts.HTMLReport, "", reportRows(respondents)); err != nil {
			return Summary{}, fmt.Errorf("write html report: %w", err)
		}
		summary.HTMLReport = opts.HTMLReport
		logger.Info("wrote html report", "path", opts.HTMLReport)
	}

	if opts.DuckDBPath != "" {
		if err := os.MkdirAll(filepath.Dir(opts.DuckDBPath), 0o755); err != nil {
			return Summary{}, fmt.Errorf("create duckdb dir: %w", err)
		}
		run := runInput(runID, startedAt, opts, sources, respondents)
		if err := duckdb.Export(ctx, opts.DuckDBPath, run); err != nil {
			return Summary{}, fmt.Errorf("export duckdb: %w", err)
		}
		summary.DuckDBPath = opts.DuckDBPath
		logger.Info("exported run", "path", opts.DuckDBPath)
	}

	summary.Respondents = respondents
	return summary, nil
}

// Score loads every response in dir and scores it without writing files.
func Score(dir string) ([]Respondent, error) {
	sources, err := survey.LoadDir(dir)
	if err != nil {
		return nil, err
	}
	return scoreSources(sources), nil
}

// RespondentName returns the display name of a response, falling back to the
// source file's stem only when full_name is absent, null, or empty. A name of
// blanks is kept; the PDF file name then falls back to scorepdf.FallbackName.
func RespondentName(source survey.SourceRecord) string {
	if name := nameText(source.Record.Get(survey.KeyFullName)); name != "" {
		return name
	}
	return strings.TrimSuffix(source.Name, filepath.Ext(source.Name))
}

func nameText(value survey.JSONValue) string {
	switch {
	case value.Kind == survey.JSONBool:
		if value.Bool {
			return "True"
		}
		return "False"
	case value.IsScalarList():
		return normalize.ScalarList(value.Array)
	default:
		return value.Text()
	}
}

func scoreSources(sources []survey.SourceRecord) []Respondent {
	respondents := make([]Respondent, len(sources))
	for i, source := range sources {
		respondents[i] = Respondent{
			Source:    source.Name,
			Name:      RespondentName(source),
			Breakdown: scoring.Score(source.Record),
		}
	}
	return respondents
}

func writePDFs(ctx context.Context, opts Options, respondents []Respondent, logger *slog.Logger) ([]string, error) {
	dir := opts.PDFDir
	if dir == "" {
		dir = filepath.Dir(opts.OutputPath)
	}
	pdfOpts := scorepdf.Options{FontPath: opts.FontPath, Logger: logger}
	written := map[string]string{}
	paths := make([]string, 0, len(respondents))
	for i := range respondents {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		respondent := &respondents[i]
		path := filepath.Join(dir, scorepdf.FileName(respondent.Name))
		if previous, ok := written[path]; ok {
			logger.Warn("score pdf overwritten", "path", path, "previous", previous, "source", respondent.Source)
		}
		err := scorepdf.WriteFile(path, scorepdf.Report{
			FullName:   respondent.Name,
			Components: respondent.Breakdown.Components,
			Total:      respondent.Breakdown.Total,
		}, pdfOpts)
		if err != nil {
			return nil, fmt.Errorf("write score pdf %s: %w", path, err)
		}
		logger.Info("wrote score pdf", "path", path, "total", respondent.Breakdown.Total)
		if _, ok := written[path]; !ok {
			paths = append(paths, path)
		}
		written[path] = respondent.Source
		respondent.PDFPath = path
	}
	return paths, nil
}

func reportRows(respondents []Respondent) []report.Row {
	rows := make([]report.Row, len(respondents))
	for i, respondent := range respondents {
		rows[i] = report.Row{Source: respondent.Source, Name: respondent.Name, Breakdown: respondent.Breakdown}
	}
	return rows
}

func runInput(runID string, startedAt time.Time, opts Options, sources []survey.SourceRecord, respondents []Respondent) duckdb.RunInput {
	responses := make([]duckdb.ResponseInput, len(sources))
	for i, source := range sources {
		components := make([]duckdb.ComponentInput, len(respondents[i].Breakdown.Components))
		for j, component := range respondents[i].Breakdown.Components {
			components[j] = duckdb.ComponentInput{Label: component.Label, Points: component.Points}
		}
		responses[i] = duckdb.ResponseInput{
			Source:     source.Name,
			FullName:   strings.TrimSpace(normalize.DisplayText(source.Record.Get(survey.KeyFullName))),
			Record:     source.Record.Value().ToInterface(),
			Components: components,
			Total:      respondents[i].Breakdown.Total,
		}
	}
	return duckdb.RunInput{
		RunID:      runID,
		StartedAt:  startedAt,
		InputDir:   opts.InputDir,
		OutputPath: opts.OutputPath,
		Responses:  responses,
	}
}
