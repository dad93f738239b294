package profile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"github.com/backmassage/cardslug/internal/slug"
)

const donrussYAML = `manufacturer: Panini
release: 2024-25 Donruss Soccer
variants:
  - Press Proof Black 1/1
  - Press Proof
  - {suffix: Gold, print_run: 10}
  - Teal /199
overrides:
  Kaboom!: other
checklists: [donruss.csv]
cards:
  - {set: Base Set Gold, number: "1", player: Jude Bellingham, print_run: /10}
`

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "donruss.yaml", donrussYAML)

	p, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Panini", p.Manufacturer)
	assert.Equal(t, "Donruss Soccer", p.Release)
	assert.Equal(t, "2024-25", p.Year, "year comes from the release name")
	assert.Equal(t, "2024-25-panini-donruss-soccer", p.ReleaseSlug())

	assert.Equal(t, slug.VariantTable{
		{Suffix: "Press Proof Black", PrintRun: 1},
		{Suffix: "Press Proof"},
		{Suffix: "Gold", PrintRun: 10},
		{Suffix: "Teal", PrintRun: 199},
	}, p.Table())

	assert.Equal(t, []string{filepath.Join(dir, "donruss.csv")}, p.ChecklistPaths())
	require.Len(t, p.Cards, 1)
	assert.Equal(t, PrintRun(10), p.Cards[0].PrintRun)

	c := p.Classifier()
	assert.Equal(t, slug.Other, c.Classify("Kaboom!"))
	assert.Equal(t, slug.Base, c.Classify("Base Set"))
}

func TestLoadExplicitYearCleansRelease(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "obsidian.yml", `manufacturer: Panini
release: 2024-25 Obsidian Soccer
year: 2024-25
cards:
  - {set: Obsidian Base, number: "1", player: Jude Bellingham, print_run: 145}
`)
	p, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Obsidian Soccer", p.Release)
	assert.Equal(t, "2024-25-panini-obsidian-soccer", p.ReleaseSlug())
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "bad.yaml", "manufacturer: Panini\nrelease: Prizm\nvariantz: []\n")
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "variantz")
}

func TestLoadEmpty(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "empty.yaml", "")
	_, err := Load(path)
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestValidateCollectsEveryProblem(t *testing.T) {
	p := &Profile{
		Variants: []VariantEntry{
			{Suffix: "Gold", PrintRun: 10},
			{Suffix: " "},
			{Suffix: "gold"},
			{Suffix: "Teal", PrintRun: -1},
		},
		Overrides: map[string]string{"Kaboom!": "parallel"},
	}
	err := p.Validate()
	require.Error(t, err)

	errs := multierr.Errors(err)
	assert.Len(t, errs, 7)
	assert.ErrorIs(t, err, ErrNoRelease)
	assert.ErrorIs(t, err, ErrNoManufacturer)
	assert.ErrorIs(t, err, ErrNoRows)
	assert.ErrorIs(t, err, slug.ErrUnknownKind)
	assert.Contains(t, err.Error(), "empty suffix")
	assert.Contains(t, err.Error(), `"gold" (#2) duplicates #0`)
	assert.Contains(t, err.Error(), "negative print run")
}

func TestValidateDegenerateRelease(t *testing.T) {
	p := &Profile{Manufacturer: "!!", Release: "??", Cards: []Row{{Set: "Base", Number: "1"}}}
	assert.ErrorIs(t, p.Validate(), slug.ErrDegenerate)
}

func TestChecklistPathsAbsolute(t *testing.T) {
	p := &Profile{Path: "/data/releases/prizm.yaml", Checklists: []string{"/srv/prizm.csv", "sub/prizm.csv"}}
	assert.Equal(t, []string{"/srv/prizm.csv", "/data/releases/sub/prizm.csv"}, p.ChecklistPaths())
}

func TestReadSkipsValidation(t *testing.T) {
	path := writeFile(t, t.TempDir(), "partial.yaml", "variants: [Gold /10, Black 1/1]\n")

	_, err := Load(path)
	require.ErrorIs(t, err, ErrNoRelease)

	p, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, path, p.Path)
	assert.Equal(t, []VariantEntry{{Suffix: "Gold", PrintRun: 10}, {Suffix: "Black", PrintRun: 1}}, p.Variants)
}
