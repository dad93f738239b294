package slug

import (
	"fmt"
	"strings"
)

// SetKind is the closed classification of a set. Values are stored by name,
// so the string forms are part of the persisted data model.
type SetKind string

const (
	Base        SetKind = "Base"
	Autograph   SetKind = "Autograph"
	Memorabilia SetKind = "Memorabilia"
	Insert      SetKind = "Insert"
	Other       SetKind = "Other"
)

// Kinds lists every SetKind in declaration order.
var Kinds = []SetKind{Base, Autograph, Memorabilia, Insert, Other}

// Valid reports whether k is one of the declared kinds.
func (k SetKind) Valid() bool {
	switch k {
	case Base, Autograph, Memorabilia, Insert, Other:
		return true
	}
	return false
}

// Prefix is the slug token that marks a set of this kind. Other has none.
func (k SetKind) Prefix() string {
	switch k {
	case Base:
		return "base"
	case Autograph:
		return "auto"
	case Memorabilia:
		return "mem"
	case Insert:
		return "insert"
	}
	return ""
}

func (k SetKind) String() string { return string(k) }

// ParseSetKind accepts a kind name or its slug prefix, case-insensitively
// ("autograph", "auto", "MEM", ...).
func ParseSetKind(s string) (SetKind, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	for _, k := range Kinds {
		if v == strings.ToLower(string(k)) || (v != "" && v == k.Prefix()) {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}
