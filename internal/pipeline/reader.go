package pipeline

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/backmassage/cardslug/internal/profile"
)

// ErrMissingColumn is returned when a checklist lacks a set or number column.
var ErrMissingColumn = errors.New("checklist is missing a required column")

type column int

const (
	colSet column = iota
	colNumber
	colPlayer
	colTeam
	colPrintRun
	colSlug
)

// headerAliases maps lowercased header cells to columns. Manufacturer
// checklists disagree on naming; these are the spellings seen in the wild.
var headerAliases = map[string]column{
	"card set":    colSet,
	"set":         colSet,
	"card_set":    colSet,
	"card number": colNumber,
	"number":      colNumber,
	"card_num":    colNumber,
	"card #":      colNumber,
	"athlete":     colPlayer,
	"player":      colPlayer,
	"name":        colPlayer,
	"team":        colTeam,
	"print run":   colPrintRun,
	"sequence":    colPrintRun,
	"printrun":    colPrintRun,
	"print_run":   colPrintRun,
	"numbered":    colPrintRun,
	"slug":        colSlug,
}

// ReadChecklist parses a checklist CSV. The first record is the header; the
// first matching header wins for each column and unknown headers are
// ignored. Blank records are skipped.
func ReadChecklist(path string) ([]profile.Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open checklist: %w", err)
	}
	defer f.Close()
	return readChecklist(f, path)
}

func readChecklist(r io.Reader, source string) ([]profile.Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%s: %w (empty file)", source, ErrMissingColumn)
		}
		return nil, fmt.Errorf("%s: read header: %w", source, err)
	}

	idx := map[column]int{}
	for i, h := range header {
		h = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		if c, ok := headerAliases[h]; ok {
			if _, taken := idx[c]; !taken {
				idx[c] = i
			}
		}
	}
	for _, need := range []column{colSet, colNumber} {
		if _, ok := idx[need]; !ok {
			return nil, fmt.Errorf("%s: %w (have %q)", source, ErrMissingColumn, header)
		}
	}

	var rows []profile.Row
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", source, err)
		}
		if blank(rec) {
			continue
		}
		line, _ := cr.FieldPos(0)

		cell := func(c column) string {
			i, ok := idx[c]
			if !ok || i >= len(rec) {
				return ""
			}
			return strings.TrimSpace(rec[i])
		}
		run, err := profile.ParsePrintRun(cell(colPrintRun))
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", source, line, err)
		}
		rows = append(rows, profile.Row{
			Set:      cell(colSet),
			Number:   cell(colNumber),
			Player:   cell(colPlayer),
			Team:     cell(colTeam),
			PrintRun: profile.PrintRun(run),
			Slug:     cell(colSlug),
			Source:   source,
			Line:     line,
		})
	}
	return rows, nil
}

func blank(rec []string) bool {
	for _, c := range rec {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// Rows returns a profile's inline cards followed by the rows of each
// checklist, in declaration order.
func Rows(p *profile.Profile) ([]profile.Row, error) {
	rows := make([]profile.Row, 0, len(p.Cards))
	for i, r := range p.Cards {
		r.Source = p.Path
		r.Line = i + 1
		rows = append(rows, r)
	}
	for _, path := range p.ChecklistPaths() {
		cl, err := ReadChecklist(path)
		if err != nil {
			return nil, err
		}
		rows = append(rows, cl...)
	}
	return rows, nil
}
