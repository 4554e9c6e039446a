package cli

import (
	"flag"
	"io"
	"os"
	"testing"

	"surveymerge/internal/ui/form"
)

const fullRecord = `{
  "full_name": "Иванов Иван",
  "held_minimum_three_curator_sessions_in_reporting_period": "Да",
  "curator_hours_details": [
    {"topic": "a", "specialists": ["Психолог"]},
    {"topic": "b"},
    {"topic": "c"}
  ],
  "manages_group_chat": "Да",
  "inform_group_about_events": "Да",
  "participated_in_two_events_with_group": "Да",
  "joint_participation_events": [{"event": "x"}, {"event": "y"}],
  "participated_in_two_curator_events": "Да",
  "curator_personal_events": [{"event": "p"}, {"event": "q"}]
}`

// stubTerminal overrides TTY detection for a test.
func stubTerminal(t *testing.T, tty bool) {
	t.Helper()
	original := isTerminal
	t.Cleanup(func() { isTerminal = original })
	isTerminal = func(io.Writer) bool { return tty }
}

// stubFormProgram replaces the Bubble Tea program for a test.
func stubFormProgram(t *testing.T, fn func(form.Model, io.Writer) (form.Model, error)) {
	t.Helper()
	original := runFormProgram
	t.Cleanup(func() { runFormProgram = original })
	runFormProgram = fn
}

func newTestFlagSet() *flag.FlagSet {
	flags := flag.NewFlagSet("test", flag.ContinueOnError)
	flags.SetOutput(io.Discard)
	return flags
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
