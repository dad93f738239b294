package profile

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// VariantEntry is one variant-table entry. In YAML it is either a mapping
// ({suffix: Gold, print_run: 10}) or a scalar in checklist notation
// ("Gold /10", "Black 1/1", "Holo").
type VariantEntry struct {
	Suffix   string `yaml:"suffix"`
	PrintRun int    `yaml:"print_run,omitempty"`
}

var reVariantText = regexp.MustCompile(`(?i)^(.*?)\s*(?:/\s*(\d+)|\b1\s*(?:/|of)\s*1)\s*$`)

// ParseVariantText splits checklist notation into suffix and print run.
func ParseVariantText(s string) VariantEntry {
	s = strings.Join(strings.Fields(s), " ")
	m := reVariantText.FindStringSubmatch(s)
	if m == nil || strings.TrimSpace(m[1]) == "" {
		return VariantEntry{Suffix: s}
	}
	if m[2] == "" {
		return VariantEntry{Suffix: m[1], PrintRun: 1}
	}
	n, _ := strconv.Atoi(m[2])
	return VariantEntry{Suffix: m[1], PrintRun: n}
}

func (v *VariantEntry) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		*v = ParseVariantText(node.Value)
		return nil
	}
	type plain VariantEntry
	var p plain
	if err := node.Decode(&p); err != nil {
		return err
	}
	*v = VariantEntry(p)
	return nil
}

// PrintRun is a serial-number denominator. It decodes from an integer or
// from checklist notation ("/25", "1 of 1", "3/25").
type PrintRun int

func (r *PrintRun) UnmarshalYAML(node *yaml.Node) error {
	n, err := ParsePrintRun(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*r = PrintRun(n)
	return nil
}

var reFraction = regexp.MustCompile(`^(?:(\d+)\s*)?(?:/|of)\s*(\d+)$`)

// ParsePrintRun reads a print run cell. "" and "-" mean unnumbered (0);
// "25", "/25", "3/25" and "3 of 25" all mean 25; "1 of 1" means 1.
func ParsePrintRun(s string) (int, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" || s == "-" {
		return 0, nil
	}
	if m := reFraction.FindStringSubmatch(s); m != nil {
		s = m[2]
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid print run %q", s)
	}
	return n, nil
}

// Row is one checklist entry, from a CSV file or an inline cards: list.
type Row struct {
	Set      string   `yaml:"set" json:"set"`
	Number   string   `yaml:"number" json:"number"`
	Player   string   `yaml:"player" json:"player"`
	Team     string   `yaml:"team,omitempty" json:"team,omitempty"`
	PrintRun PrintRun `yaml:"print_run,omitempty" json:"print_run,omitempty"`
	Slug     string   `yaml:"slug,omitempty" json:"slug,omitempty"`

	// Source and Line locate the row for diagnostics.
	Source string `yaml:"-" json:"-"`
	Line   int    `yaml:"-" json:"-"`
}
