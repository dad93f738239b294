package slug

import (
	"slices"
	"strings"
)

// OrderKey is what SortSets needs to know about a set.
type OrderKey struct {
	Slug     string
	Variant  string
	PrintRun int
	Parallel bool
}

// SortSets orders sets for listing: root sets by slug, then unnumbered
// parallels by variant name, then numbered parallels from the largest print
// run down to the 1-of-1s.
func SortSets[T any](sets []T, key func(T) OrderKey) {
	slices.SortStableFunc(sets, func(x, y T) int {
		return compareOrder(key(x), key(y))
	})
}

func compareOrder(a, b OrderKey) int {
	if a.Parallel != b.Parallel {
		if !a.Parallel {
			return -1
		}
		return 1
	}
	if !a.Parallel {
		return strings.Compare(a.Slug, b.Slug)
	}

	an, bn := a.PrintRun > 0, b.PrintRun > 0
	switch {
	case an != bn:
		if !an {
			return -1
		}
		return 1
	case an && a.PrintRun != b.PrintRun:
		return b.PrintRun - a.PrintRun
	}
	if c := strings.Compare(strings.ToLower(a.Variant), strings.ToLower(b.Variant)); c != 0 {
		return c
	}
	return strings.Compare(a.Slug, b.Slug)
}
