package display

import (
	"fmt"
	"strconv"

	"github.com/backmassage/cardslug/internal/slug"
)

// FormatBytes returns a human-readable size (B, KiB, MiB, GiB).
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit && exp < 2; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %s", float64(bytes)/float64(div), []string{"KiB", "MiB", "GiB"}[exp])
}

// FormatCount renders n with thousands separators (e.g. "12,480").
func FormatCount(n int) string {
	s := strconv.Itoa(n)
	neg := n < 0
	if neg {
		s = s[1:]
	}
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "," + s[i:]
	}
	if neg {
		return "-" + s
	}
	return s
}

// FormatPercent returns part/total as a one-decimal percentage; "0.0%" when
// total is zero.
func FormatPercent(part, total int) string {
	if total <= 0 {
		return "0.0%"
	}
	return fmt.Sprintf("%.1f%%", float64(part)*100/float64(total))
}

// FormatPrintRun is the card-back label for a print run with its rarity,
// e.g. "/5 (ultra_rare)" or "unnumbered".
func FormatPrintRun(printRun int) string {
	label := slug.NumberedLabel(printRun)
	if label == "" {
		return "unnumbered"
	}
	return label + " (" + string(slug.RarityFor(printRun)) + ")"
}
