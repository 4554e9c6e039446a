//go:build cucumber
// +build cucumber

package cucumber

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/cucumber/godog"
)

// featureState holds scenario state for cucumber CLI tests.
type featureState struct {
	responsesDir string
	outDir       string
	stdout       bytes.Buffer
	stderr       bytes.Buffer
	exitCode     int
}

// InitializeScenario wires cucumber steps to the feature state.
func InitializeScenario(ctx *godog.ScenarioContext) {
	state := &featureState{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		return ctx, state.reset()
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		state.cleanup()
		return ctx, nil
	})

	ctx.Step(`^a response file "([^"]+)" containing:$`, state.aResponseFileContaining)
	ctx.Step(`^an empty response directory$`, state.anEmptyResponseDirectory)
	ctx.Step(`^I run "([^"]+)"$`, state.iRunCommand)
	ctx.Step(`^the exit code is (\d+)$`, state.theExitCodeIs)
	ctx.Step(`^the exit code is non-zero$`, state.theExitCodeIsNonZero)
	ctx.Step(`^the output contains "([^"]+)"$`, state.theOutputContains)
	ctx.Step(`^the error output contains "([^"]+)"$`, state.theErrorOutputContains)
	ctx.Step(`^the output lists these commands:$`, state.theOutputListsCommands)
	ctx.Step(`^the file "([^"]+)" exists$`, state.theFileExists)
	ctx.Step(`^the workbook "([^"]+)" has a sheet named "([^"]+)"$`, state.theWorkbookHasSheet)
	ctx.Step(`^cell "([^"]+)" of "([^"]+)" is "([^"]*)"$`, state.cellIs)
}

// reset creates fresh directories and clears buffers before each scenario.
func (s *featureState) reset() error {
	s.stdout.Reset()
	s.stderr.Reset()
	s.exitCode = 0
	responsesDir, err := os.MkdirTemp("", "surveymerge-responses-")
	if err != nil {
		return fmt.Errorf("create responses dir: %w", err)
	}
	outDir, err := os.MkdirTemp("", "surveymerge-out-")
	if err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	s.responsesDir = responsesDir
	s.outDir = outDir
	return nil
}

// cleanup removes temporary files.
func (s *featureState) cleanup() {
	for _, dir := range []string{s.responsesDir, s.outDir} {
		if dir != "" {
			_ = os.RemoveAll(dir)
		}
	}
}

// expand replaces directory placeholders in step arguments.
func (s *featureState) expand(value string) string {
	return strings.NewReplacer("{responses}", s.responsesDir, "{out}", s.outDir).Replace(value)
}
