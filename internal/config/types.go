package config

// Config is the optional project configuration for surveymerge.
type Config struct {
	Version        int       `yaml:"version"`
	Output         string    `yaml:"output"`
	SheetName      string    `yaml:"sheet_name"`
	HighlightColor string    `yaml:"highlight_color"`
	ColumnPadding  *int      `yaml:"column_padding"`
	PDF            PDFConfig `yaml:"pdf"`
	HTMLReport     string    `yaml:"html_report"`
	DuckDBPath     string    `yaml:"duckdb_path"`
}

// PDFConfig controls per-respondent scoring reports.
type PDFConfig struct {
	Enabled  bool   `yaml:"enabled"`
	FontPath string `yaml:"font_path"`
	// OutputDir defaults to the spreadsheet's directory when empty.
	OutputDir string `yaml:"output_dir"`
}

// Padding returns the configured column padding.
func (cfg Config) Padding() int {
	if cfg.ColumnPadding == nil {
		return DefaultColumnPadding
	}
	return *cfg.ColumnPadding
}
