package slug

import "regexp"

// NotationContext selects the filler-word list applied by
// [CanonicalizeNotation]. Set names and variant (parallel) text are cleaned
// differently: "Base Set Checklist" only ever prefixes variant text.
type NotationContext int

const (
	SetNames NotationContext = iota // Bare set names ("Base Set", "Optic Base").
	Variants                        // Parallel/variant text ("Base Set Checklist Gold /10").
)

// OneOfOne is the canonical spelling of a print run of exactly one.
const OneOfOne = "1-of-1"

// maxNotationPasses bounds the fixed-point loop in CanonicalizeNotation.
const maxNotationPasses = 8

var (
	reOneOfOne         = regexp.MustCompile(`(?i)\b1\s*(?:/|of)\s*1\b`)
	reTrailingFraction = regexp.MustCompile(`\s*/\s*([0-9]+)\s*$`)
)

// filler is one rewrite of step 3. Order within a list matters: compound
// phrases come before the single words they contain.
type filler struct {
	re   *regexp.Regexp
	repl string
}

var setNameFillers = []filler{
	{regexp.MustCompile(`(?i)\boptic\s+base\s+set\b`), "Optic"},
	{regexp.MustCompile(`(?i)\boptic\s+base\b`), "Optic"},
	{regexp.MustCompile(`(?i)\bbase\s+optic\b`), "Optic"},
	{regexp.MustCompile(`(?i)\bbase\s+set\b`), "Base"},
	{regexp.MustCompile(`(?i)\bsets?\b`), ""},
	{regexp.MustCompile(`(?i)\bchecklist\b`), ""},
}

var variantFillers = []filler{
	{regexp.MustCompile(`(?i)\bbase\s+set\s+checklist\b`), ""},
	{regexp.MustCompile(`(?i)\bbase\s+set\b`), ""},
	{regexp.MustCompile(`(?i)\bchecklist\b`), ""},
	{regexp.MustCompile(`(?i)\bsets?\b`), ""},
}

// CanonicalizeNotation rewrites catalog numeric notation into one textual
// form before normalization:
//
//  1. "1/1" and "1 of 1" -> "1-of-1"
//  2. a trailing "/44" -> "-44"
//  3. filler words for ctx are dropped or collapsed
//
// The steps repeat until the text stops changing, so the result is a fixed
// point: CanonicalizeNotation(CanonicalizeNotation(x)) == CanonicalizeNotation(x).
func CanonicalizeNotation(text string, ctx NotationContext) string {
	s := collapseSpaces(text)
	for i := 0; i < maxNotationPasses; i++ {
		next := notationPass(s, ctx)
		if next == s {
			break
		}
		s = next
	}
	return s
}

// CanonicalizeOneOfOne applies only the one-of-one rewrite (step 1).
func CanonicalizeOneOfOne(text string) string {
	return collapseSpaces(reOneOfOne.ReplaceAllString(text, OneOfOne))
}

func notationPass(s string, ctx NotationContext) string {
	s = reOneOfOne.ReplaceAllString(s, OneOfOne)
	s = reTrailingFraction.ReplaceAllString(s, "-$1")

	fillers := setNameFillers
	if ctx == Variants {
		fillers = variantFillers
	}
	for _, f := range fillers {
		s = f.re.ReplaceAllString(s, f.repl)
	}
	return collapseSpaces(s)
}
