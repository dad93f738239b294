package slug

import (
	"errors"
	"fmt"
)

var (
	// ErrDegenerate marks a slug with no alphanumeric content, which would
	// violate the persisted non-empty constraint.
	ErrDegenerate = errors.New("degenerate slug")
	// ErrUnknownKind is returned by ParseSetKind.
	ErrUnknownKind = errors.New("unknown set kind")
)

// Check returns ErrDegenerate (wrapped with the offending value) when s has
// no character in [a-z0-9].
func Check(s string) error {
	for i := 0; i < len(s); i++ {
		if c := s[i]; c >= 'a' && c <= 'z' || c >= '0' && c <= '9' {
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrDegenerate, s)
}
