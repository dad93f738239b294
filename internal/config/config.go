// Package config holds runtime configuration: defaults, CLI flag binding, and
// validation. Per-release domain settings (variant tables, overrides) live in
// release profiles, not here.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// --- Enum types for validated string fields ---

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// ReportFormat is the encoding of the batch/verify report file.
type ReportFormat string

const (
	ReportJSON ReportFormat = "json" // Default; also used for unknown extensions.
	ReportYAML ReportFormat = "yaml"
)

// Config holds all runtime settings. It is populated by [DefaultConfig] and
// then mutated by the flags bound in [BindFlags] before being passed (by
// pointer) to packages that need it.
type Config struct {
	// Paths (set from positional args and --report).
	ProfileDir string // Directory scanned recursively for release profiles.
	ReportPath string // Optional report file; "" writes no report.

	// Batch behavior.
	Jobs         int  // Default: 4. Release profiles processed concurrently.
	Disambiguate bool // Append -2, -3, ... to colliding slugs instead of failing.
	Fix          bool // verify: carry regenerated slugs in the report.
	StrictTables bool // Treat shadowed variant-table entries as errors.
	RequireInput bool // Set by commands that need ProfileDir.

	// Display and logging.
	Verbose   bool
	ColorMode ColorMode // Default: "auto".
	LogFile   string    // Optional JSON log file path.
}

// DefaultConfig returns a Config with all defaults applied. Used as the base
// before flags apply CLI overrides.
func DefaultConfig() Config {
	return Config{
		Jobs:         4,
		Disambiguate: false,
		Fix:          false,
		StrictTables: false,
		Verbose:      false,
		ColorMode:    ColorAuto,
	}
}

// NormalizeDirArg strips trailing slashes from a directory path.
// The filesystem root "/" is returned unchanged so we don't produce an empty string.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}

// Validate checks enum fields and numeric bounds. When RequireInput is set
// it also requires a non-empty profile directory.
func (c *Config) Validate() error {
	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.New("invalid color mode (use 'auto', 'always' or 'never')")
	}

	if c.Jobs < 1 {
		return fmt.Errorf("invalid jobs %d (must be at least 1)", c.Jobs)
	}

	if c.ReportPath != "" {
		switch strings.ToLower(filepath.Ext(c.ReportPath)) {
		case ".json", ".yaml", ".yml":
			// valid
		default:
			return fmt.Errorf("invalid report path %q (use a .json, .yaml or .yml file)", c.ReportPath)
		}
	}

	if !c.RequireInput {
		return nil
	}
	if c.ProfileDir == "" {
		return errors.New("need exactly one profile_dir")
	}
	return nil
}

// ReportFormat derives the report encoding from the report path extension.
func (c *Config) ReportFormat() ReportFormat {
	switch strings.ToLower(filepath.Ext(c.ReportPath)) {
	case ".yaml", ".yml":
		return ReportYAML
	}
	return ReportJSON
}

// ValidatePaths rejects a YAML report written inside the profile directory,
// since the next run would discover it as a release profile. Both arguments
// must be absolute, symlink-resolved paths.
func (c *Config) ValidatePaths(profileAbs, reportAbs string) error {
	if c.ReportFormat() != ReportYAML {
		return nil
	}
	sep := string(filepath.Separator)
	if strings.HasPrefix(reportAbs, profileAbs+sep) {
		return errors.New("YAML report must not be inside the profile directory")
	}
	return nil
}
