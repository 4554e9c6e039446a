// Package scorepdf writes a per-respondent PDF with the score breakdown.
package scorepdf

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-pdf/fpdf"

	"surveymerge/internal/scoring"
)

// DefaultFontPath is the Unicode font used when present.
const DefaultFontPath = "/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf"

// File naming.
const (
	FilePrefix   = "Баллы_"
	FallbackName = "Без_ФИО"
)

const (
	unicodeFamily  = "DejaVu"
	fallbackFamily = "Helvetica"
	pointsWidth    = 30.0
	rowHeight      = 8.0
)

var illegalFileChars = regexp.MustCompile(`[\\/:*?"<>|]`)

// Report is the content of one score PDF.
type Report struct {
	FullName   string
	Components []scoring.Component
	Total      int
}

// Options controls PDF fonts and logging.
type Options struct {
	FontPath string
	Logger   *slog.Logger
}

// SanitizeFileName replaces characters that are illegal in file names and
// falls back to a placeholder when nothing is left.
func SanitizeFileName(name string) string {
	safe := strings.TrimSpace(illegalFileChars.ReplaceAllString(name, "_"))
	if safe == "" {
		return FallbackName
	}
	return safe
}

// FileName returns the PDF file name for a respondent.
func FileName(fullName string) string {
	return FilePrefix + SanitizeFileName(fullName) + ".pdf"
}

// WriteFile renders a report into path, creating parent directories.
func WriteFile(path string, report Report, opts Options) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create pdf dir: %w", err)
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create pdf: %w", err)
	}
	if err := Write(file, report, opts); err != nil {
		_ = file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("close pdf: %w", err)
	}
	return nil
}

// Write renders a report as PDF into w.
func Write(w io.Writer, report Report, opts Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	fontPath := opts.FontPath
	if fontPath == "" {
		fontPath = DefaultFontPath
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	family, translate := fallbackFamily, pdf.UnicodeTranslatorFromDescriptor("")
	if _, err := os.Stat(fontPath); err == nil {
		pdf.AddUTF8Font(unicodeFamily, "", fontPath)
		pdf.AddUTF8Font(unicodeFamily, "B", fontPath)
		family, translate = unicodeFamily, func(text string) string { return text }
	} else {
		logger.Warn("unicode font not found; using core font", "font_path", fontPath)
	}
	pdf.AddPage()

	pdf.SetFont(family, "B", 14)
	pdf.CellFormat(0, 10, translate("Отчёт по баллам"), "", 1, "", false, 0, "")

	pdf.SetFont(family, "", 12)
	pdf.CellFormat(0, 10, translate("ФИО: "+report.FullName), "", 1, "", false, 0, "")
	pdf.Ln(2)

	pageWidth, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	criterionWidth := pageWidth - left - right - pointsWidth

	pdf.SetFont(family, "B", 11)
	pdf.CellFormat(criterionWidth, rowHeight, translate("Критерий"), "1", 0, "", false, 0, "")
	pdf.CellFormat(pointsWidth, rowHeight, translate("Баллы"), "1", 1, "R", false, 0, "")

	pdf.SetFont(family, "", 11)
	for _, component := range report.Components {
		writeRow(pdf, translate(component.Label), component.Points, criterionWidth)
	}

	pdf.SetFont(family, "B", 12)
	pdf.CellFormat(criterionWidth, 10, translate("Итого"), "1", 0, "", false, 0, "")
	pdf.CellFormat(pointsWidth, 10, strconv.Itoa(report.Total), "1", 1, "R", false, 0, "")

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	return nil
}

// writeRow draws a wrapped criterion cell and a points cell of equal height.
func writeRow(pdf *fpdf.Fpdf, text string, points int, criterionWidth float64) {
	x, y := pdf.GetX(), pdf.GetY()
	pdf.MultiCell(criterionWidth, rowHeight, text, "1", "", false)
	end := pdf.GetY()
	pdf.SetXY(x+criterionWidth, y)
	pdf.CellFormat(pointsWidth, end-y, strconv.Itoa(points), "1", 0, "R", false, 0, "")
	pdf.SetXY(x, end)
}
