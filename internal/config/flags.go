package config

// This file binds CLI flags onto a Config. Display flags are persistent on
// the root command; batch flags are registered by the commands that run the
// pipeline. Negated flags (--no-color) are applied after parsing so Config
// defaults hold unless set.

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

// Version is shown by --version; override at build time with
// -ldflags "-X github.com/backmassage/cardslug/internal/config.Version=...".
var Version = "1.0.0-dev"

// DisplayFlags holds flags that are folded into Config after parsing.
type DisplayFlags struct {
	forceColor bool
	noColor    bool
}

// BindDisplayFlags registers --color, --no-color, --color-mode, -v/--verbose
// and -l/--log on fs.
func BindDisplayFlags(fs *pflag.FlagSet, cfg *Config) *DisplayFlags {
	n := &DisplayFlags{}
	fs.BoolVar(&n.forceColor, "color", false, "Force colored logs")
	fs.BoolVar(&n.noColor, "no-color", false, "Disable colored logs")
	fs.Var(&colorModeValue{&cfg.ColorMode}, "color-mode", "Color mode: auto | always | never")
	fs.BoolVarP(&cfg.Verbose, "verbose", "v", false, "Verbose output")
	fs.StringVarP(&cfg.LogFile, "log", "l", "", "Append JSON logs to file")
	return n
}

// Apply copies negated flag values into cfg. --no-color wins over --color.
func (n *DisplayFlags) Apply(cfg *Config) {
	if n.noColor {
		cfg.ColorMode = ColorNever
	} else if n.forceColor {
		cfg.ColorMode = ColorAlways
	}
}

// BindBatchFlags registers the flags shared by batch and verify.
func BindBatchFlags(fs *pflag.FlagSet, cfg *Config) {
	fs.IntVarP(&cfg.Jobs, "jobs", "j", cfg.Jobs, "Release profiles processed concurrently")
	fs.StringVarP(&cfg.ReportPath, "report", "o", "", "Write a report (.json, .yaml or .yml)")
	fs.BoolVar(&cfg.Disambiguate, "disambiguate", false, "Suffix colliding slugs with -2, -3, ... instead of failing")
	fs.BoolVar(&cfg.StrictTables, "strict-tables", false, "Fail on shadowed variant-table entries")
}

// BindVerifyFlags registers verify-only flags.
func BindVerifyFlags(fs *pflag.FlagSet, cfg *Config) {
	fs.BoolVar(&cfg.Fix, "fix", false, "Include regenerated slugs for drifted rows in the report")
}

// SetProfileDir records the positional profile directory.
func SetProfileDir(cfg *Config, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("need exactly one profile_dir (got %d args)", len(args))
	}
	cfg.ProfileDir = NormalizeDirArg(args[0])
	cfg.RequireInput = true
	return nil
}

// pflag.Value adapter so ColorMode can be used with fs.Var.

type colorModeValue struct{ p *ColorMode }

func (c *colorModeValue) String() string { return string(*c.p) }
func (c *colorModeValue) Type() string   { return "mode" }
func (c *colorModeValue) Set(s string) error {
	switch strings.ToLower(s) {
	case "auto":
		*c.p = ColorAuto
	case "always":
		*c.p = ColorAlways
	case "never":
		*c.p = ColorNever
	default:
		return fmt.Errorf("invalid color mode %q (use 'auto', 'always' or 'never')", s)
	}
	return nil
}
