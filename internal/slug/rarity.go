package slug

import "strconv"

// Rarity buckets a print run for display.
type Rarity string

const (
	RarityBase      Rarity = "base"
	RarityRare      Rarity = "rare"
	RaritySuperRare Rarity = "super_rare"
	RarityUltraRare Rarity = "ultra_rare"
	RarityOneOfOne  Rarity = "one_of_one"
)

// RarityFor maps a print run to its bucket. Unnumbered (<= 0) is base.
func RarityFor(printRun int) Rarity {
	switch {
	case printRun <= 0:
		return RarityBase
	case printRun == 1:
		return RarityOneOfOne
	case printRun <= 10:
		return RarityUltraRare
	case printRun <= 50:
		return RaritySuperRare
	case printRun <= 199:
		return RarityRare
	}
	return RarityBase
}

// NumberedLabel renders a print run as printed on the card back:
// "1 of 1", "/25", or "" when unnumbered.
func NumberedLabel(printRun int) string {
	switch {
	case printRun <= 0:
		return ""
	case printRun == 1:
		return "1 of 1"
	}
	return "/" + strconv.Itoa(printRun)
}

// CommonPrintRun returns the print run shared by every numbered entry of
// runs, or 0 when they disagree or none is numbered.
func CommonPrintRun(runs []int) int {
	common := 0
	for _, r := range runs {
		if r <= 0 {
			continue
		}
		if common == 0 {
			common = r
		} else if r != common {
			return 0
		}
	}
	return common
}
