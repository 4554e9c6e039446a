package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestInitThenValidate verifies the scaffold is valid and not overwritten.
func TestInitThenValidate(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".surveymerge", "config.yml")
	var stdout, stderr bytes.Buffer
	if code := Run([]string{"init", "--config", path}, &stdout, &stderr); code != ExitOK {
		t.Fatalf("expected exit %d, got %d (stderr %q)", ExitOK, code, stderr.String())
	}
	if !strings.Contains(stdout.String(), "Wrote "+path) {
		t.Fatalf("expected written path, got %q", stdout.String())
	}

	stdout.Reset()
	if code := Run([]string{"validate", "--config", path}, &stdout, &stderr); code != ExitOK {
		t.Fatalf("expected exit %d, got %d (stderr %q)", ExitOK, code, stderr.String())
	}
	if strings.TrimSpace(stdout.String()) != "Config OK ("+path+")" {
		t.Fatalf("unexpected validate output %q", stdout.String())
	}

	stderr.Reset()
	if code := Run([]string{"init", "--config", path}, &stdout, &stderr); code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	if !strings.Contains(stderr.String(), "already exists") {
		t.Fatalf("expected already exists error, got %q", stderr.String())
	}
}

// TestValidateReportsIssues verifies invalid configs list their fields.
func TestValidateReportsIssues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	writeFile(t, path, "version: 3\nsheet_name: \"a:b\"\n")
	var stdout, stderr bytes.Buffer
	if code := Run([]string{"validate", "--config", path}, &stdout, &stderr); code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	for _, field := range []string{"version", "sheet_name"} {
		if !strings.Contains(stderr.String(), field) {
			t.Fatalf("expected %s issue, got %q", field, stderr.String())
		}
	}
}

// TestValidateRejectsArgs verifies more than one directory is a usage error.
func TestValidateRejectsArgs(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := Run([]string{"validate", "a", "b"}, &stdout, &stderr); code != ExitUsage {
		t.Fatalf("expected exit %d, got %d", ExitUsage, code)
	}
	if !strings.Contains(stderr.String(), "unexpected arguments: b") {
		t.Fatalf("expected unexpected arguments, got %q", stderr.String())
	}
}

// TestValidateListsEachIssue verifies every config issue gets its own line.
func TestValidateListsEachIssue(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	writeFile(t, path, "version: 3\nhighlight_color: \"zz\"\n")
	var stdout, stderr bytes.Buffer
	if code := Run([]string{"validate", "--config", path}, &stdout, &stderr); code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	lines := strings.Split(strings.TrimSpace(stderr.String()), "\n")
	if len(lines) != 3 || lines[0] != "Validation failed: 2 issue(s)" {
		t.Fatalf("unexpected issue listing %q", stderr.String())
	}
	if !strings.HasPrefix(lines[1], "  - version:") || !strings.HasPrefix(lines[2], "  - highlight_color:") {
		t.Fatalf("unexpected issue lines %q", lines[1:])
	}
}

// TestValidateChecksResponses verifies a directory argument loads every file.
func TestValidateChecksResponses(t *testing.T) {
	root := t.TempDir()
	cfgPath := filepath.Join(root, "config.yml")
	writeFile(t, cfgPath, "version: 1\n")
	dir := filepath.Join(root, "responses")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	writeFile(t, filepath.Join(dir, "a.json"), fullRecord)
	writeFile(t, filepath.Join(dir, "b.json"), `{"full_name": "Б"}`)

	var stdout, stderr bytes.Buffer
	if code := Run([]string{"validate", dir, "--config", cfgPath}, &stdout, &stderr); code != ExitOK {
		t.Fatalf("expected exit %d, got %d (stderr %q)", ExitOK, code, stderr.String())
	}
	if !strings.Contains(stdout.String(), "Responses OK: 2 JSON files in "+dir) {
		t.Fatalf("expected response summary, got %q", stdout.String())
	}

	writeFile(t, filepath.Join(dir, "c.json"), `[1, 2]`)
	stdout.Reset()
	stderr.Reset()
	if code := Run([]string{"validate", "--config", cfgPath, dir}, &stdout, &stderr); code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	if !strings.Contains(stderr.String(), "c.json") {
		t.Fatalf("expected offending file in error, got %q", stderr.String())
	}
}

// TestFormRequiresTerminal verifies the form refuses non-interactive output.
func TestFormRequiresTerminal(t *testing.T) {
	stubTerminal(t, false)
	var stdout, stderr bytes.Buffer
	if code := Run([]string{"form"}, &stdout, &stderr); code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	if !strings.Contains(stderr.String(), "interactive terminal") {
		t.Fatalf("expected terminal error, got %q", stderr.String())
	}
}
