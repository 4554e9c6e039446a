package scorepdf

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"surveymerge/internal/scoring"
	"surveymerge/internal/survey"
)

// TestSanitizeFileName verifies illegal characters are replaced.
func TestSanitizeFileName(t *testing.T) {
	assert.Equal(t, "Иванов_И_И_", SanitizeFileName(`Иванов/И:И?`))
	assert.Equal(t, "a_b_c_d_e_f_g", SanitizeFileName(`a\b*c"d<e>f|g`))
	assert.Equal(t, "Петров", SanitizeFileName("  Петров  "))
	assert.Equal(t, FallbackName, SanitizeFileName("   "))
	assert.Equal(t, FallbackName, SanitizeFileName(""))
}

// TestFileName verifies the prefix and extension.
func TestFileName(t *testing.T) {
	assert.Equal(t, "Баллы_Сидоров.pdf", FileName("Сидоров"))
	assert.Equal(t, "Баллы_Без_ФИО.pdf", FileName(""))
}

func sampleReport() Report {
	record := survey.NewRecord(survey.Object(
		survey.Field{Key: survey.KeyAchievements, Value: survey.Array(
			survey.Object(survey.Field{Key: "result", Value: survey.Str("1 место")}),
		)},
	))
	breakdown := scoring.Score(record)
	return Report{FullName: "Сидоров С.С.", Components: breakdown.Components, Total: breakdown.Total}
}

// TestWriteProducesPDF verifies a PDF document is rendered with the fallback font.
func TestWriteProducesPDF(t *testing.T) {
	var buf bytes.Buffer
	opts := Options{FontPath: filepath.Join(t.TempDir(), "missing.ttf")}
	require.NoError(t, Write(&buf, sampleReport(), opts))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")), "expected PDF header")
}

// TestWriteFileCreatesParents verifies parent directories are created.
func TestWriteFileCreatesParents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", FileName("Сидоров"))
	opts := Options{FontPath: filepath.Join(t.TempDir(), "missing.ttf")}
	require.NoError(t, WriteFile(path, sampleReport(), opts))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

// TestWriteUsesUnicodeFont verifies the installed font is used when available.
func TestWriteUsesUnicodeFont(t *testing.T) {
	if _, err := os.Stat(DefaultFontPath); err != nil {
		t.Skip("unicode font not installed")
	}
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sampleReport(), Options{}))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}
