package slug

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	reNonAlnum = regexp.MustCompile(`[^a-z0-9]+`)
	reSpaces   = regexp.MustCompile(`\s+`)
)

// Normalize joins the non-empty tokens with spaces, folds accents to ASCII,
// lowercases, replaces every run of characters outside [a-z0-9] with a single
// hyphen and trims hyphens from both ends. It returns "" only when no token
// carries an alphanumeric character.
func Normalize(tokens ...string) string {
	kept := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if t = strings.TrimSpace(t); t != "" {
			kept = append(kept, t)
		}
	}
	if len(kept) == 0 {
		return ""
	}
	s := fold(strings.ToLower(strings.Join(kept, " ")))
	s = reNonAlnum.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// fold decomposes s (NFD) and drops combining marks, so "Vinícius Júnior"
// becomes "Vinicius Junior". Characters with no decomposition pass through.
func fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// collapseSpaces trims s and squeezes internal whitespace runs to one space.
func collapseSpaces(s string) string {
	return strings.TrimSpace(reSpaces.ReplaceAllString(s, " "))
}

// hasToken reports whether the normalized slug s contains word as a whole
// hyphen-delimited token.
func hasToken(s, word string) bool {
	for _, tok := range strings.Split(s, "-") {
		if tok == word {
			return true
		}
	}
	return false
}

// endsWithPrintRun reports whether the normalized slug s already ends with
// the print run n, either as a bare trailing number or as "1-of-1".
func endsWithPrintRun(s string, n int) bool {
	if n <= 0 || s == "" {
		return false
	}
	if n == 1 && strings.HasSuffix(s, "1-of-1") {
		return true
	}
	last := s[strings.LastIndexByte(s, '-')+1:]
	return last == strconv.Itoa(n)
}
