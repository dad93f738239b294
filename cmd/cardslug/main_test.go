package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const donrussProfile = `manufacturer: Panini
release: 2024-25 Donruss Soccer
variants:
  - Electric Etch Marble Flood /8
  - Press Proof Black 1/1
  - Press Proof
overrides:
  Kaboom!: Other
checklists: [donruss.csv]
`

const donrussCSV = `Card Set,Card Number,Athlete,Print Run,Slug
Base Set,1,Jude Bellingham,,2024-25-donruss-soccer-base-set-1-jude-bellingham
Base Set Press Proof,2,Pedri,/49,2024-25-donruss-soccer-2-pedri-press-proof-49
Kaboom!,3,Lamine Yamal,,2024-25-donruss-soccer-kaboom-3-lamine-yamal
`

// cli runs the command line and returns the exit code, stdout and stderr.
func cli(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code := newApp(&out, &errOut).execute(context.Background(), append([]string{"--no-color"}, args...))
	return code, out.String(), errOut.String()
}

func writeProfileDir(t *testing.T, profile string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "donruss.yaml"), []byte(profile), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "donruss.csv"), []byte(donrussCSV), 0o644))
	return dir
}

func TestEngineCommands(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"release with leading year", []string{"release", "Panini", "2024-25 Donruss Soccer"}, "2024-25-panini-donruss-soccer"},
		{"release with year flag", []string{"release", "Panini", "Obsidian Soccer", "--year", "2024-25"}, "2024-25-panini-obsidian-soccer"},
		{"root set", []string{"set", "2024-25 Donruss Soccer", "Base Set"}, "2024-25-donruss-soccer-base"},
		{"classified root set", []string{"set", "2024-25 Obsidian Soccer", "Dual Jersey Ink"}, "2024-25-obsidian-soccer-auto-dual-jersey-ink"},
		{
			"base parallel",
			[]string{"set", "2024-25 Obsidian Soccer", "Obsidian Base", "--parallel", "Electric Etch Green", "--print-run", "5"},
			"2024-25-obsidian-soccer-electric-etch-green-5",
		},
		{
			"kind override keeps prefix",
			[]string{"set", "2024-25 Obsidian Soccer", "Signature Series", "--kind", "auto", "--parallel", "Gold /10"},
			"2024-25-obsidian-soccer-auto-gold-10",
		},
		{
			"parallel card",
			[]string{"card", "2024-25 Obsidian Soccer", "Obsidian Base", "1", "Jude Bellingham", "--variant", "Electric Etch Marble Flood", "--print-run", "8"},
			"2024-25-obsidian-soccer-1-jude-bellingham-electric-etch-marble-flood-8",
		},
		{
			"one of one card",
			[]string{"card", "2024-25 Obsidian Soccer", "Obsidian Base", "1", "Jude Bellingham", "--variant", "Gold Power 1/1", "--print-run", "1"},
			"2024-25-obsidian-soccer-1-jude-bellingham-gold-power-1-of-1",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, out, errOut := cli(t, tt.args...)
			require.Equal(t, 0, code, errOut)
			assert.Equal(t, tt.want+"\n", out)
		})
	}
}

func TestSetWithProfile(t *testing.T) {
	dir := writeProfileDir(t, donrussProfile)

	code, out, errOut := cli(t, "set", "2024-25 Donruss Soccer", "Base Set Press Proof Black", "--profile", filepath.Join(dir, "donruss.yaml"))
	require.Equal(t, 0, code, errOut)
	assert.Equal(t, "2024-25-donruss-soccer-press-proof-black-1-of-1\n", out)

	code, out, errOut = cli(t, "set", "2024-25 Donruss Soccer", "Base Set", "--parallel", "press proof black", "--profile", filepath.Join(dir, "donruss.yaml"))
	require.Equal(t, 0, code, errOut)
	assert.Equal(t, "2024-25-donruss-soccer-press-proof-black-1-of-1\n", out, "print run comes from the table")
}

func TestDegenerateSlugFails(t *testing.T) {
	code, out, errOut := cli(t, "release", "!!", "??")
	assert.Equal(t, 1, code)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "degenerate")
}

func TestBadInvocations(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown command", []string{"shuffle"}},
		{"missing args", []string{"card", "Release", "Set"}},
		{"bad color mode", []string{"--color-mode", "sometimes", "release", "Panini", "Prizm"}},
		{"bad kind", []string{"set", "2024 Prizm", "Silver", "--kind", "parallel"}},
		{"parallel without table", []string{"parallel", "Base Set Gold"}},
		{"bad report extension", []string{"batch", t.TempDir(), "--report", "out.txt"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, errOut := cli(t, tt.args...)
			assert.Equal(t, 1, code)
			assert.True(t, strings.HasPrefix(errOut, "cardslug: "), errOut)
		})
	}
}

func TestClassifyCommand(t *testing.T) {
	dir := writeProfileDir(t, donrussProfile)

	code, out, _ := cli(t, "classify", "Dual Jersey Ink", "Kaboom!", "Base Set")
	require.Equal(t, 0, code)
	assert.Equal(t, "Autograph\tautograph\tDual Jersey Ink\nInsert\t-\tKaboom!\nBase\tbase\tBase Set\n", out)

	code, out, _ = cli(t, "classify", "--profile", filepath.Join(dir, "donruss.yaml"), "Kaboom!")
	require.Equal(t, 0, code)
	assert.Equal(t, "Other\t-\tKaboom!\n", out)
}

func TestParallelCommand(t *testing.T) {
	code, out, errOut := cli(t, "parallel", "Base Set Press Proof Black", "Base Set",
		"--variant", "Press Proof Black 1/1", "--variant", "Press Proof")
	require.Equal(t, 0, code, errOut)
	assert.Equal(t, "Base Set\tPress Proof Black\t1 of 1 (one_of_one)\nBase Set\t-\t-\n", out)
}

func TestBatchCommand(t *testing.T) {
	dir := writeProfileDir(t, donrussProfile)
	report := filepath.Join(t.TempDir(), "reports", "run.yaml")

	code, _, errOut := cli(t, "batch", dir, "--report", report, "-j", "1")
	require.Equal(t, 0, code, errOut)
	data, err := os.ReadFile(report)
	require.NoError(t, err)
	assert.Contains(t, string(data), "slug: 2024-25-donruss-soccer-press-proof-49")
}

func TestBatchRejectsYAMLReportInsideProfiles(t *testing.T) {
	dir := writeProfileDir(t, donrussProfile)

	code, _, errOut := cli(t, "batch", dir, "--report", filepath.Join(dir, "out", "run.yaml"))
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "must not be inside the profile directory")
}

func TestVerifyCommand(t *testing.T) {
	dir := writeProfileDir(t, donrussProfile)
	code, _, errOut := cli(t, "verify", dir)
	assert.Equal(t, 0, code, errOut)

	drifted := strings.Replace(donrussCSV, "pedri-press-proof-49", "pedri-press-proof-49-49", 1)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "donruss.csv"), []byte(drifted), 0o644))
	code, _, _ = cli(t, "verify", dir)
	assert.Equal(t, 1, code)
}

func TestCheckCommand(t *testing.T) {
	dir := writeProfileDir(t, donrussProfile)
	code, _, errOut := cli(t, "check", dir)
	assert.Equal(t, 0, code, errOut)

	shadowed := strings.Replace(donrussProfile,
		"  - Press Proof Black 1/1\n",
		"  - Black\n  - Press Proof Black 1/1\n", 1)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "donruss.yaml"), []byte(shadowed), 0o644))
	code, _, _ = cli(t, "check", filepath.Join(dir, "donruss.yaml"))
	assert.Equal(t, 1, code)

	code, _, _ = cli(t, "check", filepath.Join(dir, "missing.yaml"))
	assert.Equal(t, 1, code)
}
