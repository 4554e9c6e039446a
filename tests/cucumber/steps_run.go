//go:build cucumber
// +build cucumber

package cucumber

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cucumber/godog"

	"surveymerge/internal/cli"
)

// aResponseFileContaining writes one response file into the responses dir.
func (s *featureState) aResponseFileContaining(name string, content *godog.DocString) error {
	path := filepath.Join(s.responsesDir, name)
	if err := os.WriteFile(path, []byte(content.Content), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}

// anEmptyResponseDirectory leaves the responses dir without files.
func (s *featureState) anEmptyResponseDirectory() error {
	entries, err := os.ReadDir(s.responsesDir)
	if err != nil {
		return err
	}
	if len(entries) != 0 {
		return fmt.Errorf("expected empty responses dir, found %d entries", len(entries))
	}
	return nil
}

// iRunCommand executes a CLI command for the scenario.
func (s *featureState) iRunCommand(command string) error {
	args := strings.Fields(s.expand(command))
	if len(args) == 0 {
		return fmt.Errorf("command is empty")
	}
	if args[0] == "surveymerge" {
		args = args[1:]
	}
	s.stdout.Reset()
	s.stderr.Reset()
	s.exitCode = cli.Run(args, &s.stdout, &s.stderr)
	return nil
}
