package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"gopkg.in/yaml.v3"

	"github.com/backmassage/cardslug/internal/config"
	"github.com/backmassage/cardslug/internal/slug"
)

// Mode selects what a run produces.
type Mode string

const (
	ModeBatch  Mode = "batch"  // Derive and list every set and card slug.
	ModeVerify Mode = "verify" // Compare derived card slugs with stored ones.
)

// ProblemKind classifies a reported problem.
type ProblemKind string

const (
	ProblemSkipped    ProblemKind = "skipped"
	ProblemDegenerate ProblemKind = "degenerate"
	ProblemCollision  ProblemKind = "collision"
	ProblemRenamed    ProblemKind = "disambiguated"
	ProblemInput      ProblemKind = "input"
)

// Report is the document written to --report.
type Report struct {
	RunID     string          `json:"run_id" yaml:"run_id"`
	Mode      Mode            `json:"mode" yaml:"mode"`
	Generated time.Time       `json:"generated" yaml:"generated"`
	Stats     RunStats        `json:"stats" yaml:"stats"`
	Releases  []ReleaseReport `json:"releases" yaml:"releases"`
}

// ReleaseReport is everything derived for one release slug.
type ReleaseReport struct {
	Slug         string        `json:"slug" yaml:"slug"`
	Manufacturer string        `json:"manufacturer" yaml:"manufacturer"`
	Name         string        `json:"name" yaml:"name"`
	Year         string        `json:"year,omitempty" yaml:"year,omitempty"`
	Profiles     []string      `json:"profiles" yaml:"profiles"`
	Sets         []SetReport   `json:"sets" yaml:"sets"`
	Cards        []CardReport  `json:"cards,omitempty" yaml:"cards,omitempty"`
	Drift        []DriftReport `json:"drift,omitempty" yaml:"drift,omitempty"`
	Problems     []Problem     `json:"problems,omitempty" yaml:"problems,omitempty"`
}

type SetReport struct {
	Slug     string       `json:"slug" yaml:"slug"`
	Name     string       `json:"name" yaml:"name"`
	Kind     slug.SetKind `json:"kind" yaml:"kind"`
	Parent   string       `json:"parent,omitempty" yaml:"parent,omitempty"`
	Variant  string       `json:"variant,omitempty" yaml:"variant,omitempty"`
	PrintRun int          `json:"print_run,omitempty" yaml:"print_run,omitempty"`
	Label    string       `json:"label,omitempty" yaml:"label,omitempty"`
	Rarity   slug.Rarity  `json:"rarity" yaml:"rarity"`
	Cards    int          `json:"cards" yaml:"cards"`
}

type CardReport struct {
	Slug     string      `json:"slug" yaml:"slug"`
	Set      string      `json:"set" yaml:"set"`
	Number   string      `json:"number" yaml:"number"`
	Player   string      `json:"player" yaml:"player"`
	Team     string      `json:"team,omitempty" yaml:"team,omitempty"`
	PrintRun int         `json:"print_run,omitempty" yaml:"print_run,omitempty"`
	Rarity   slug.Rarity `json:"rarity" yaml:"rarity"`
}

// DriftReport is a stored slug that no longer matches its derivation.
// Slug is filled only when the run was asked to fix.
type DriftReport struct {
	Source string `json:"source" yaml:"source"`
	Line   int    `json:"line" yaml:"line"`
	Stored string `json:"stored" yaml:"stored"`
	Slug   string `json:"slug,omitempty" yaml:"slug,omitempty"`
	Reason string `json:"reason" yaml:"reason"`
}

type Problem struct {
	Kind   ProblemKind `json:"kind" yaml:"kind"`
	Slug   string      `json:"slug,omitempty" yaml:"slug,omitempty"`
	Source string      `json:"source,omitempty" yaml:"source,omitempty"`
	Line   int         `json:"line,omitempty" yaml:"line,omitempty"`
	Detail string      `json:"detail" yaml:"detail"`
}

// lockRetry is how often WriteReport retries a held report lock.
const lockRetry = 50 * time.Millisecond

// ErrReportLocked is returned when another process holds the report lock
// until ctx is done.
var ErrReportLocked = errors.New("report file is locked by another run")

// WriteReport encodes r and replaces path with it while holding an
// exclusive lock on path + ".lock". It returns the number of bytes written.
func WriteReport(ctx context.Context, path string, format config.ReportFormat, r *Report) (int64, error) {
	data, err := EncodeReport(format, r)
	if err != nil {
		return 0, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return 0, fmt.Errorf("create report dir: %w", err)
	}

	lock := flock.New(path + ".lock")
	locked, err := lock.TryLockContext(ctx, lockRetry)
	if err != nil {
		return 0, fmt.Errorf("lock report: %w", err)
	}
	if !locked {
		return 0, ErrReportLocked
	}
	defer lock.Unlock()

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return 0, fmt.Errorf("write report: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return 0, fmt.Errorf("write report: %w", err)
	}
	return int64(len(data)), nil
}

// EncodeReport renders r as indented JSON or YAML.
func EncodeReport(format config.ReportFormat, r *Report) ([]byte, error) {
	var buf bytes.Buffer
	switch format {
	case config.ReportYAML:
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return nil, fmt.Errorf("encode report: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("encode report: %w", err)
		}
	default:
		enc := json.NewEncoder(&buf)
		enc.SetIndent("", "  ")
		if err := enc.Encode(r); err != nil {
			return nil, fmt.Errorf("encode report: %w", err)
		}
	}
	return buf.Bytes(), nil
}
