// Package config loads CLI defaults from a TOML file.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config holds the CLI configuration.
type Config struct {
	Log    LogConfig    `toml:"log"`
	Scan   ScanConfig   `toml:"scan"`
	Tables TablesConfig `toml:"tables"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `toml:"level"`
}

// ScanConfig holds defaults for the scan command.
type ScanConfig struct {
	Mode   string `toml:"mode"`
	RowAbs bool   `toml:"row_abs"`
	ColAbs bool   `toml:"col_abs"`
	Pretty bool   `toml:"pretty"`
}

// TablesConfig holds table detection thresholds.
type TablesConfig struct {
	DensityMin       float64 `toml:"density_min"`
	CoverageMin      float64 `toml:"coverage_min"`
	MinNonemptyCells int     `toml:"min_nonempty_cells"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Log: LogConfig{Level: "info"},
		Scan: ScanConfig{
			Mode: "standard",
		},
		Tables: TablesConfig{
			DensityMin:       0.04,
			CoverageMin:      0.2,
			MinNonemptyCells: 3,
		},
	}
}

// Load reads path over the defaults. An empty path or a missing file yields
// the defaults. Unrecognized keys are returned so the caller can warn.
func Load(path string) (*Config, []string, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil, nil
	}

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return cfg, nil, nil
	} else if err != nil {
		return nil, nil, fmt.Errorf("error checking config file '%s': %w", path, err)
	}

	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse config file '%s': %w", path, err)
	}

	var unknown []string
	for _, key := range md.Undecoded() {
		unknown = append(unknown, key.String())
	}
	return cfg, unknown, nil
}

// ParseLevel maps a level name to a slog level; unknown names map to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error", "err":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
