package slug

import (
	"strconv"
	"strings"
)

// ReleaseSlug is the identifier of a product release:
// year, manufacturer, then release name.
//
//	ReleaseSlug("Panini", "Donruss Soccer", "2024-25") // "2024-25-panini-donruss-soccer"
func ReleaseSlug(manufacturer, name, year string) string {
	return Normalize(year, manufacturer, name)
}

// SetSlug is the identifier of a set within a release.
//
// A root set (parallelText == "") is year, release, kind prefix and the
// canonicalized set name. The Base prefix is dropped when the cleaned name
// already contains the word "base". A parallel is year, release and the
// canonicalized parallel text; Autograph, Memorabilia and Insert parallels
// keep their kind prefix so they cannot collide with Base parallels of the
// same variant.
func SetSlug(year, releaseName, setName string, kind SetKind, parallelText string) string {
	clean := CanonicalizeNotation(setName, SetNames)
	root := Normalize(year, releaseName, rootPrefix(kind, clean), clean)
	if strings.TrimSpace(parallelText) == "" {
		return root
	}

	variant := CanonicalizeNotation(parallelText, Variants)
	if Normalize(variant) == "" {
		// Text that is nothing but filler ("Base Set Checklist") names the root.
		return root
	}
	switch kind {
	case Base, Other:
		return Normalize(year, releaseName, variant)
	default:
		return Normalize(year, releaseName, kind.Prefix(), variant)
	}
}

func rootPrefix(kind SetKind, cleanName string) string {
	if kind == Base && hasToken(Normalize(cleanName), "base") {
		return ""
	}
	return kind.Prefix()
}

// CardSlug is the identifier of a card.
//
// The variant gets the one-of-one rewrite only. When the variant marks a
// parallel card the set name is left out, because the variant already
// identifies the set; a variant equal to the set name, or one containing
// "base", is not a parallel. The print run is appended unless the variant
// already ends with it. manufacturer is accepted for symmetry with
// ReleaseSlug and does not contribute.
func CardSlug(manufacturer, releaseName, year, setName, cardNumber, playerName, variant string, printRun int) string {
	v := collapseSpaces(variant)
	if v != "" {
		v = CanonicalizeOneOfOne(v)
	}

	set := setName
	if isParallelCard(v, setName) {
		set = ""
	}

	run := ""
	if printRun > 0 && !endsWithPrintRun(Normalize(v), printRun) {
		run = strconv.Itoa(printRun)
	}
	return Normalize(year, releaseName, set, cardNumber, playerName, v, run)
}

// isParallelCard keeps the literal substring test on "base": a variant such
// as "Baseline Gold" is treated as non-parallel.
func isParallelCard(variant, setName string) bool {
	if variant == "" {
		return false
	}
	if strings.EqualFold(variant, collapseSpaces(setName)) {
		return false
	}
	return !strings.Contains(strings.ToLower(variant), "base")
}
