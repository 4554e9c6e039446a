package config

import "strings"

// Defaults applied by Normalize.
const (
	DefaultOutput         = "combined.xlsx"
	DefaultSheetName      = "Responses"
	DefaultHighlightColor = "FFF8DC"
	DefaultColumnPadding  = 2
	DefaultFontPath       = "/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf"
)

// Default returns a normalized config with every default applied.
func Default() Config {
	cfg := Config{Version: 1}
	Normalize(&cfg)
	return cfg
}

// Normalize fills defaults and canonicalizes values in place.
func Normalize(cfg *Config) {
	if strings.TrimSpace(cfg.Output) == "" {
		cfg.Output = DefaultOutput
	}
	if cfg.SheetName == "" {
		cfg.SheetName = DefaultSheetName
	}
	cfg.HighlightColor = strings.ToUpper(strings.TrimPrefix(strings.TrimSpace(cfg.HighlightColor), "#"))
	if cfg.HighlightColor == "" {
		cfg.HighlightColor = DefaultHighlightColor
	}
	if cfg.ColumnPadding == nil {
		padding := DefaultColumnPadding
		cfg.ColumnPadding = &padding
	}
	if strings.TrimSpace(cfg.PDF.FontPath) == "" {
		cfg.PDF.FontPath = DefaultFontPath
	}
}
