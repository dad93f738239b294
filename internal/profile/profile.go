// Package profile loads release profiles: one YAML file per product release
// naming its manufacturer, title, season, ordered parallel table,
// classification overrides and checklist sources.
//
// Example:
//
//	manufacturer: Panini
//	release: Donruss Soccer
//	year: 2024-25
//	variants:
//	  - Press Proof Black 1/1
//	  - Press Proof
//	  - {suffix: Gold, print_run: 10}
//	overrides:
//	  Kaboom!: Other
//	checklists: [donruss.csv]
package profile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/backmassage/cardslug/internal/slug"
)

var (
	ErrNoRelease      = errors.New("profile has no release name")
	ErrNoManufacturer = errors.New("profile has no manufacturer")
	ErrNoRows         = errors.New("profile has no checklists and no inline cards")
	ErrEmpty          = errors.New("profile file is empty")
)

// Profile is a decoded release profile.
type Profile struct {
	Manufacturer string            `yaml:"manufacturer"`
	Release      string            `yaml:"release"`
	Year         string            `yaml:"year"`
	Variants     []VariantEntry    `yaml:"variants"`
	Overrides    map[string]string `yaml:"overrides"`
	Checklists   []string          `yaml:"checklists"`
	Cards        []Row             `yaml:"cards"`

	// Path is the file the profile was loaded from; "" for in-memory profiles.
	Path string `yaml:"-"`
}

// Load reads, decodes and validates the profile at path. Unknown keys are
// rejected. A missing year is taken from a leading year tag in the release
// name ("2024-25 Donruss Soccer").
func Load(path string) (*Profile, error) {
	p, err := Read(path)
	if err != nil {
		return nil, err
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// Read reads and decodes the profile at path without validating it, for
// callers that report problems themselves (check) or only need the variant
// table and overrides.
func Read(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profile: %w", err)
	}
	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	p.Path = path
	return p, nil
}

// Parse decodes a profile without validating it.
func Parse(data []byte) (*Profile, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var p Profile
	if err := dec.Decode(&p); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmpty
		}
		return nil, fmt.Errorf("decode profile: %w", err)
	}
	p.normalize()
	return &p, nil
}

func (p *Profile) normalize() {
	p.Manufacturer = strings.TrimSpace(p.Manufacturer)
	p.Release = strings.TrimSpace(p.Release)
	p.Year = strings.TrimSpace(p.Year)
	if p.Year == "" {
		p.Year, p.Release = slug.SplitReleaseYear(p.Release)
	} else {
		p.Release = slug.CleanReleaseName(p.Release)
	}
}

// Validate reports every problem found, combined into one error.
// Shadowed variants are not errors here; see VariantTable.Shadowed.
func (p *Profile) Validate() error {
	var err error
	if p.Release == "" {
		err = multierr.Append(err, ErrNoRelease)
	}
	if p.Manufacturer == "" {
		err = multierr.Append(err, ErrNoManufacturer)
	}
	if p.Release != "" {
		if cerr := slug.Check(p.ReleaseSlug()); cerr != nil {
			err = multierr.Append(err, fmt.Errorf("release slug: %w", cerr))
		}
	}

	seen := make(map[string]int, len(p.Variants))
	for i, v := range p.Variants {
		key := strings.ToLower(strings.Join(strings.Fields(v.Suffix), " "))
		switch {
		case key == "":
			err = multierr.Append(err, fmt.Errorf("variant #%d: empty suffix", i))
			continue
		case v.PrintRun < 0:
			err = multierr.Append(err, fmt.Errorf("variant %q: negative print run %d", v.Suffix, v.PrintRun))
		}
		if j, dup := seen[key]; dup {
			err = multierr.Append(err, fmt.Errorf("variant %q (#%d) duplicates #%d", v.Suffix, i, j))
			continue
		}
		seen[key] = i
	}

	for name, kind := range p.Overrides {
		if _, kerr := slug.ParseSetKind(kind); kerr != nil {
			err = multierr.Append(err, fmt.Errorf("override %q: %w", name, kerr))
		}
	}

	if len(p.Checklists) == 0 && len(p.Cards) == 0 {
		err = multierr.Append(err, ErrNoRows)
	}
	return err
}

// Info returns the release identity.
func (p *Profile) Info() slug.Release {
	return slug.Release{Manufacturer: p.Manufacturer, Name: p.Release, Year: p.Year}
}

// ReleaseSlug is the slug of the profile's release.
func (p *Profile) ReleaseSlug() string {
	return p.Info().Slug()
}

// Table returns the variant table in declaration order.
func (p *Profile) Table() slug.VariantTable {
	t := make(slug.VariantTable, 0, len(p.Variants))
	for _, v := range p.Variants {
		t = append(t, slug.Variant{Suffix: v.Suffix, PrintRun: v.PrintRun})
	}
	return t
}

// Classifier returns the default classifier with this profile's overrides.
// Overrides naming an unknown kind are ignored (Validate reports them).
func (p *Profile) Classifier() slug.Classifier {
	overrides := make(map[string]slug.SetKind, len(p.Overrides))
	for name, kind := range p.Overrides {
		if k, err := slug.ParseSetKind(kind); err == nil {
			overrides[name] = k
		}
	}
	return slug.NewClassifier(nil, overrides)
}

// ChecklistPaths resolves checklist entries relative to the profile file.
func (p *Profile) ChecklistPaths() []string {
	dir := "."
	if p.Path != "" {
		dir = filepath.Dir(p.Path)
	}
	out := make([]string, 0, len(p.Checklists))
	for _, c := range p.Checklists {
		if filepath.IsAbs(c) {
			out = append(out, c)
			continue
		}
		out = append(out, filepath.Join(dir, c))
	}
	return out
}
