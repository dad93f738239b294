package slug

import (
	"regexp"
	"strings"
)

// reLeadingYear matches a year tag at the start of a release title:
// "2024 ", "2024-25 ", "2024-2025 ".
var reLeadingYear = regexp.MustCompile(`^(\d{4}(?:-\d{2,4})?)\s+`)

// CleanReleaseName strips a leading year tag from a release title, so
// "2024-25 Donruss Soccer" becomes "Donruss Soccer". Titles without one are
// returned trimmed.
func CleanReleaseName(name string) string {
	return strings.TrimSpace(reLeadingYear.ReplaceAllString(strings.TrimSpace(name), ""))
}

// SplitReleaseYear separates a leading year tag from a release title.
// year is "" when the title has none.
func SplitReleaseYear(name string) (year, rest string) {
	name = strings.TrimSpace(name)
	m := reLeadingYear.FindStringSubmatch(name)
	if m == nil {
		return "", name
	}
	return m[1], strings.TrimSpace(name[len(m[0]):])
}
