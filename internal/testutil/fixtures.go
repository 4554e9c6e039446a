package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteFiles writes name→content pairs into dir and returns dir.
func WriteFiles(t testing.TB, dir string, files map[string]string) string {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", name, err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	return dir
}

// ResponseDir creates a temporary directory holding the given response files.
func ResponseDir(t testing.TB, files map[string]string) string {
	t.Helper()
	return WriteFiles(t, t.TempDir(), files)
}
