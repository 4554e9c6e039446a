package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"surveymerge/internal/config"
)

// resolveConfigPath normalizes a config path or finds it from CWD.
func resolveConfigPath(configPath string) (string, error) {
	if strings.TrimSpace(configPath) == "" {
		return config.FindConfigPath("")
	}
	abs, err := filepath.Abs(configPath)
	if err != nil {
		return "", fmt.Errorf("resolve config path: %w", err)
	}
	return abs, nil
}

// loadOptionalConfig loads an explicit config, the nearest discovered one,
// or defaults when none exists.
func loadOptionalConfig(configPath string) (config.Config, error) {
	explicit := ""
	if strings.TrimSpace(configPath) != "" {
		abs, err := resolveConfigPath(configPath)
		if err != nil {
			return config.Config{}, err
		}
		explicit = abs
	}
	cfg, _, err := config.Resolve(explicit, "")
	return cfg, err
}
