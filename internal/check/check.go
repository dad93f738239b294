// Package check lints release profiles (cardslug check): variant-table
// ordering, duplicate and empty suffixes, print runs, override kinds and
// slugs that would come out degenerate.
package check

import (
	"fmt"
	"os"
	"strings"

	"github.com/backmassage/cardslug/internal/profile"
	"github.com/backmassage/cardslug/internal/slug"
)

// Logger is the minimal logging interface needed by RunCheck.
// Defined here (rather than importing the logging package) so that check
// remains dependency-light and testable with a mock logger.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
	Debug(bool, string, ...interface{})
}

// sampleKinds are the kinds whose parallel slugs differ; Other shares the
// Base form.
var sampleKinds = []slug.SetKind{slug.Base, slug.Autograph, slug.Memorabilia, slug.Insert}

// RunCheck lints p and logs every finding. With verbose it also logs the
// parallel slug each table entry produces under each kind. It returns false
// when any error-level finding exists.
func RunCheck(p *profile.Profile, verbose bool, log Logger) bool {
	name := p.Path
	if name == "" {
		name = p.Release
	}
	log.Info("=== Profile Check: %s ===", name)

	ok := checkIdentity(p, log)
	ok = checkVariants(p, log) && ok
	ok = checkOverrides(p, log) && ok
	ok = checkSamples(p, verbose, log) && ok
	ok = checkSources(p, log) && ok

	if ok {
		log.Success("%s: no problems", name)
	}
	return ok
}

// checkIdentity logs the release slug and reports missing identity fields.
func checkIdentity(p *profile.Profile, log Logger) bool {
	ok := true
	if p.Manufacturer == "" {
		log.Error("manufacturer is empty")
		ok = false
	}
	if p.Release == "" {
		log.Error("release is empty")
		ok = false
	}
	if p.Year == "" {
		log.Warn("year is empty; slugs will not carry a season")
	}
	rs := p.ReleaseSlug()
	if err := slug.Check(rs); err != nil {
		log.Error("release slug: %v", err)
		return false
	}
	log.Info("Release: %s", rs)
	return ok
}

// checkVariants reports empty, duplicate, shadowed and badly numbered
// table entries.
func checkVariants(p *profile.Profile, log Logger) bool {
	table := p.Table()
	log.Info("Variants: %d", len(table))

	ok := true
	seen := map[string]int{}
	for i, v := range table {
		key := strings.ToLower(strings.Join(strings.Fields(v.Suffix), " "))
		if key == "" {
			log.Error("variant #%d: empty suffix", i)
			ok = false
			continue
		}
		if v.PrintRun < 0 {
			log.Error("variant %q: negative print run %d", v.Suffix, v.PrintRun)
			ok = false
		}
		if j, dup := seen[key]; dup {
			log.Error("variant %q (#%d) duplicates #%d", v.Suffix, i, j)
			ok = false
			continue
		}
		seen[key] = i
	}

	shadows := table.Shadowed()
	for _, s := range shadows {
		if strings.EqualFold(s.Suffix, s.BySuffix) {
			continue // reported as a duplicate above
		}
		log.Error("%s; move it above #%d", s, s.ByIndex)
		ok = false
	}
	if len(shadows) > 0 {
		var order []string
		for _, v := range table.LongestFirst() {
			order = append(order, v.Suffix)
		}
		log.Info("Suggested order: %s", strings.Join(order, ", "))
	}
	return ok
}

// checkOverrides reports overrides naming an unknown kind and logs the
// kind each override replaces.
func checkOverrides(p *profile.Profile, log Logger) bool {
	ok := true
	for name, raw := range p.Overrides {
		kind, err := slug.ParseSetKind(raw)
		if err != nil {
			log.Error("override %q: %v", name, err)
			ok = false
			continue
		}
		if def := slug.ClassifySetKind(name); def == kind {
			log.Warn("override %q: rules already classify it as %s", name, kind)
		}
	}
	return ok
}

// checkSamples derives the parallel slug of every table entry and reports
// entries that normalize to nothing.
func checkSamples(p *profile.Profile, verbose bool, log Logger) bool {
	ok := true
	for _, v := range p.Table() {
		text := slug.ParallelDescriptor{VariantName: v.Suffix, PrintRun: v.PrintRun}.Text()
		if slug.Normalize(slug.CanonicalizeNotation(text, slug.Variants)) == "" {
			log.Error("variant %q is only filler words; its parallels would take the root slug", v.Suffix)
			ok = false
			continue
		}
		if !verbose {
			continue
		}
		var samples []string
		for _, k := range sampleKinds {
			samples = append(samples, fmt.Sprintf("%s=%s", k, slug.SetSlug(p.Year, p.Release, k.String(), k, text)))
		}
		log.Debug(verbose, "%s [%s]: %s", v.Suffix, slug.RarityFor(v.PrintRun), strings.Join(samples, " "))
	}
	return ok
}

// checkSources reports a profile without rows and checklist files that
// cannot be opened.
func checkSources(p *profile.Profile, log Logger) bool {
	if len(p.Checklists) == 0 && len(p.Cards) == 0 {
		log.Error("%v", profile.ErrNoRows)
		return false
	}
	ok := true
	for _, path := range p.ChecklistPaths() {
		if _, err := os.Stat(path); err != nil {
			log.Error("checklist: %v", err)
			ok = false
		}
	}
	log.Info("Sources: %d checklists, %d inline cards", len(p.Checklists), len(p.Cards))
	return ok
}
