package sheet

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"surveymerge/internal/survey"
)

// Workbook defaults.
const (
	DefaultSheetName      = "Responses"
	DefaultHighlightColor = "FFF8DC"
)

// WorkbookOptions controls how a grid is written.
type WorkbookOptions struct {
	SheetName      string
	HighlightColor string
	ColumnPadding  int
}

// DefaultWorkbookOptions returns the standard sheet name, fill, and padding.
func DefaultWorkbookOptions() WorkbookOptions {
	return WorkbookOptions{
		SheetName:      DefaultSheetName,
		HighlightColor: DefaultHighlightColor,
		ColumnPadding:  DefaultColumnPadding,
	}
}

func (opts WorkbookOptions) withDefaults() WorkbookOptions {
	defaults := DefaultWorkbookOptions()
	if strings.TrimSpace(opts.SheetName) == "" {
		opts.SheetName = defaults.SheetName
	}
	if strings.TrimSpace(opts.HighlightColor) == "" {
		opts.HighlightColor = defaults.HighlightColor
	}
	if opts.ColumnPadding < 0 {
		opts.ColumnPadding = defaults.ColumnPadding
	}
	return opts
}

// WriteWorkbook writes a grid as a single-sheet xlsx file at path.
func WriteWorkbook(path string, grid Grid, opts WorkbookOptions) error {
	opts = opts.withDefaults()
	file := excelize.NewFile()
	defer file.Close()

	if err := file.SetSheetName(file.GetSheetName(0), opts.SheetName); err != nil {
		return fmt.Errorf("name sheet: %w", err)
	}
	if err := writeGrid(file, opts.SheetName, grid, opts); err != nil {
		return err
	}
	if err := file.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

func writeGrid(file *excelize.File, sheet string, grid Grid, opts WorkbookOptions) error {
	headerStyle, err := file.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Vertical: "top"},
	})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}
	highlightStyle, err := file.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{opts.HighlightColor}},
	})
	if err != nil {
		return fmt.Errorf("create highlight style: %w", err)
	}

	for r, row := range grid.Cells {
		for c, cell := range row {
			name, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return err
			}
			if value, ok := cellValue(cell.Value); ok {
				if err := setCell(file, sheet, name, value); err != nil {
					return fmt.Errorf("set cell %s: %w", name, err)
				}
			}
			style := 0
			switch {
			case cell.Header && cell.Value.Kind != survey.JSONNull:
				style = headerStyle
			case cell.Highlight:
				style = highlightStyle
			}
			if style != 0 {
				if err := file.SetCellStyle(sheet, name, name, style); err != nil {
					return fmt.Errorf("style cell %s: %w", name, err)
				}
			}
		}
	}

	for _, span := range grid.Merges {
		topLeft, err := excelize.CoordinatesToCellName(span.Col+1, span.Row+1)
		if err != nil {
			return err
		}
		bottomRight, err := excelize.CoordinatesToCellName(span.EndCol+1, span.EndRow+1)
		if err != nil {
			return err
		}
		if err := file.MergeCell(sheet, topLeft, bottomRight); err != nil {
			return fmt.Errorf("merge %s:%s: %w", topLeft, bottomRight, err)
		}
	}

	for c, width := range ColumnWidths(grid, opts.ColumnPadding) {
		if width == 0 {
			continue
		}
		name, err := excelize.ColumnNumberToName(c + 1)
		if err != nil {
			return err
		}
		if err := file.SetColWidth(sheet, name, name, width); err != nil {
			return fmt.Errorf("size column %s: %w", name, err)
		}
	}
	return nil
}

// numericLiteral is an integer too wide for int64, written to the sheet as
// its source digits.
type numericLiteral string

func setCell(file *excelize.File, sheet, name string, value interface{}) error {
	if literal, ok := value.(numericLiteral); ok {
		return file.SetCellDefault(sheet, name, string(literal))
	}
	return file.SetCellValue(sheet, name, value)
}

// cellValue converts a scalar into the value excelize stores. Null cells are
// left empty. Integer literals keep every digit.
func cellValue(value survey.JSONValue) (interface{}, bool) {
	switch value.Kind {
	case survey.JSONString:
		if value.String == "" {
			return nil, false
		}
		return value.String, true
	case survey.JSONNumber:
		if isIntegerLiteral(value.NumberText) {
			if n, err := strconv.ParseInt(value.NumberText, 10, 64); err == nil {
				return n, true
			}
			return numericLiteral(value.NumberText), true
		}
		return value.Number, true
	case survey.JSONBool:
		return value.Bool, true
	case survey.JSONNull:
		return nil, false
	default:
		return value.JSONText(), true
	}
}

func isIntegerLiteral(text string) bool {
	if text == "" {
		return false
	}
	return !strings.ContainsAny(text, ".eE")
}
