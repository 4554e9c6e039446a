package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"text/template"
)

//go:embed scaffold.yml.tmpl
var scaffoldSource string

var scaffoldTemplate = template.Must(template.New("config.yml").
	Funcs(template.FuncMap{"quote": strconv.Quote}).
	Parse(scaffoldSource))

// scaffoldValues fills the scaffold; every default is spelled out.
type scaffoldValues struct {
	Output         string
	SheetName      string
	HighlightColor string
	ColumnPadding  int
	FontPath       string
}

// renderScaffoldConfig builds the commented scaffold YAML for output.
func renderScaffoldConfig(output string) (string, error) {
	var builder strings.Builder
	err := scaffoldTemplate.Execute(&builder, scaffoldValues{
		Output:         output,
		SheetName:      DefaultSheetName,
		HighlightColor: DefaultHighlightColor,
		ColumnPadding:  DefaultColumnPadding,
		FontPath:       DefaultFontPath,
	})
	if err != nil {
		return "", err
	}
	return builder.String(), nil
}

// Scaffold writes a default config to configPath. An existing file is never
// overwritten.
func Scaffold(configPath string) error {
	if configPath == "" {
		return fmt.Errorf("config path is required")
	}
	if info, err := os.Stat(configPath); err == nil {
		if info.IsDir() {
			return fmt.Errorf("config path %q is a directory", configPath)
		}
		return fmt.Errorf("config file already exists at %q", configPath)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	content, err := renderScaffoldConfig(DefaultOutput)
	if err != nil {
		return fmt.Errorf("render config: %w", err)
	}
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}
