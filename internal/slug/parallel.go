package slug

import (
	"fmt"
	"slices"
	"strings"
)

// Variant is one entry of a release's parallel table. PrintRun <= 0 means
// the parallel is not serially numbered.
type Variant struct {
	Suffix   string
	PrintRun int
}

// VariantTable is the ordered list of parallel suffixes known for a release.
// Order matters: ExtractParallel takes the first entry that matches, so a
// longer suffix must precede any shorter suffix it ends with
// ("Press Proof Black" before "Press Proof"). LongestFirst produces such an
// ordering; Shadowed reports violations.
type VariantTable []Variant

// Parallel is the result of decomposing a raw set name.
type Parallel struct {
	BaseSetName string
	VariantName string // "" when the name is not a parallel
	PrintRun    int    // 0 when unknown or unnumbered
}

// IsParallel reports whether a variant suffix was found.
func (p Parallel) IsParallel() bool { return p.VariantName != "" }

// Descriptor returns the parallel's variant and print run.
func (p Parallel) Descriptor() ParallelDescriptor {
	return ParallelDescriptor{VariantName: p.VariantName, PrintRun: p.PrintRun}
}

// ExtractParallel splits rawSetName into a base set name and a parallel
// variant using table. A suffix matches case-insensitively when it ends the
// name and is preceded by a space; the returned VariantName keeps the
// table's spelling. Names that match nothing come back unchanged with no
// variant.
func ExtractParallel(rawSetName string, table VariantTable) Parallel {
	name := collapseSpaces(rawSetName)
	for _, v := range table {
		suffix := collapseSpaces(v.Suffix)
		if suffix == "" || !hasSuffixFold(name, " "+suffix) {
			continue
		}
		base := strings.TrimSpace(name[:len(name)-len(suffix)-1])
		return Parallel{BaseSetName: base, VariantName: suffix, PrintRun: max(v.PrintRun, 0)}
	}
	return Parallel{BaseSetName: rawSetName}
}

func hasSuffixFold(s, suffix string) bool {
	return len(s) >= len(suffix) && strings.EqualFold(s[len(s)-len(suffix):], suffix)
}

// Shadow is a table entry that can never be returned by ExtractParallel
// because an earlier entry matches every name it would.
type Shadow struct {
	Index    int
	Suffix   string
	ByIndex  int
	BySuffix string
}

func (s Shadow) String() string {
	return fmt.Sprintf("variant %q (#%d) is shadowed by %q (#%d)", s.Suffix, s.Index, s.BySuffix, s.ByIndex)
}

// Shadowed lists entries made unreachable by an earlier, shorter (or equal)
// suffix.
func (t VariantTable) Shadowed() []Shadow {
	var out []Shadow
	for j := range t {
		sj := collapseSpaces(t[j].Suffix)
		if sj == "" {
			continue
		}
		for i := 0; i < j; i++ {
			si := collapseSpaces(t[i].Suffix)
			if si == "" {
				continue
			}
			if strings.EqualFold(si, sj) || hasSuffixFold(sj, " "+si) {
				out = append(out, Shadow{Index: j, Suffix: t[j].Suffix, ByIndex: i, BySuffix: t[i].Suffix})
				break
			}
		}
	}
	return out
}

// LongestFirst returns a copy of t ordered by descending suffix length,
// keeping the original order among equal lengths.
func (t VariantTable) LongestFirst() VariantTable {
	out := slices.Clone(t)
	slices.SortStableFunc(out, func(a, b Variant) int {
		return len(collapseSpaces(b.Suffix)) - len(collapseSpaces(a.Suffix))
	})
	return out
}

// Lookup returns the entry whose suffix equals name, ignoring case.
func (t VariantTable) Lookup(name string) (Variant, bool) {
	name = collapseSpaces(name)
	for _, v := range t {
		if strings.EqualFold(collapseSpaces(v.Suffix), name) {
			return v, true
		}
	}
	return Variant{}, false
}

// ParallelDescriptor is the variant and print run that turn a root set into
// one of its parallels.
type ParallelDescriptor struct {
	VariantName string
	PrintRun    int
}

// Text renders the descriptor the way checklists print it:
// "Electric Etch Green /5", "Gold Power 1 of 1", or the bare variant when
// unnumbered. A variant that already spells its print run is left alone.
func (d ParallelDescriptor) Text() string {
	name := collapseSpaces(d.VariantName)
	if name == "" || d.PrintRun <= 0 {
		return name
	}
	if endsWithPrintRun(Normalize(CanonicalizeOneOfOne(name)), d.PrintRun) {
		return name
	}
	if d.PrintRun == 1 {
		return name + " 1 of 1"
	}
	return fmt.Sprintf("%s /%d", name, d.PrintRun)
}
