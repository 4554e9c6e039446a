//go:build cucumber
// +build cucumber

package cucumber

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cucumber/godog"
	"github.com/xuri/excelize/v2"
)

func (s *featureState) theExitCodeIs(code int) error {
	if s.exitCode != code {
		return fmt.Errorf("expected exit code %d, got %d (stderr %q)", code, s.exitCode, s.stderr.String())
	}
	return nil
}

func (s *featureState) theExitCodeIsNonZero() error {
	if s.exitCode == 0 {
		return fmt.Errorf("expected non-zero exit code")
	}
	return nil
}

func (s *featureState) theOutputContains(text string) error {
	if !strings.Contains(s.stdout.String(), s.expand(text)) {
		return fmt.Errorf("expected stdout to contain %q, got %q", text, s.stdout.String())
	}
	return nil
}

func (s *featureState) theErrorOutputContains(text string) error {
	if !strings.Contains(s.stderr.String(), s.expand(text)) {
		return fmt.Errorf("expected stderr to contain %q, got %q", text, s.stderr.String())
	}
	return nil
}

// theOutputListsCommands checks each table row names a command in stdout.
func (s *featureState) theOutputListsCommands(table *godog.Table) error {
	output := s.stdout.String()
	for _, row := range table.Rows {
		if len(row.Cells) == 0 {
			continue
		}
		name := strings.TrimSpace(row.Cells[0].Value)
		if !strings.Contains(output, name) {
			return fmt.Errorf("expected command %q in output", name)
		}
	}
	return nil
}

// theFileExists checks a path relative to the output dir.
func (s *featureState) theFileExists(name string) error {
	if _, err := os.Stat(filepath.Join(s.outDir, name)); err != nil {
		return fmt.Errorf("expected %s to exist: %w", name, err)
	}
	return nil
}

func (s *featureState) theWorkbookHasSheet(name, sheet string) error {
	file, err := excelize.OpenFile(filepath.Join(s.outDir, name))
	if err != nil {
		return fmt.Errorf("open workbook: %w", err)
	}
	defer file.Close()
	sheets := file.GetSheetList()
	if len(sheets) != 1 || sheets[0] != sheet {
		return fmt.Errorf("expected single sheet %q, got %v", sheet, sheets)
	}
	return nil
}

func (s *featureState) cellIs(cell, name, want string) error {
	file, err := excelize.OpenFile(filepath.Join(s.outDir, name))
	if err != nil {
		return fmt.Errorf("open workbook: %w", err)
	}
	defer file.Close()
	got, err := file.GetCellValue(file.GetSheetName(0), cell)
	if err != nil {
		return fmt.Errorf("read %s: %w", cell, err)
	}
	if got != want {
		return fmt.Errorf("expected %s to be %q, got %q", cell, want, got)
	}
	return nil
}
