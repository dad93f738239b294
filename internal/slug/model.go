package slug

// Release is a manufacturer's product for a season.
type Release struct {
	Manufacturer string
	Name         string
	Year         string
}

// Title is the release name without a leading year tag when Year is set,
// since the slug re-adds the year.
func (r Release) Title() string {
	if r.Year == "" {
		return collapseSpaces(r.Name)
	}
	return CleanReleaseName(r.Name)
}

// Slug is ReleaseSlug over r.
func (r Release) Slug() string {
	return ReleaseSlug(r.Manufacturer, r.Title(), r.Year)
}

// Set is a named subset of a release. A parallel has a Parent (its root set)
// and a Parallel descriptor; a root set has neither.
type Set struct {
	Name     string
	Kind     SetKind
	Release  Release
	Parent   *Set
	Parallel *ParallelDescriptor
}

// IsParallel reports whether s hangs off a root set.
func (s Set) IsParallel() bool { return s.Parent != nil }

// Root returns the root set of s (s itself for a root).
func (s Set) Root() Set {
	if s.Parent == nil {
		return s
	}
	return *s.Parent
}

// kind returns s.Kind, falling back to the parent's kind for parallels
// created without one.
func (s Set) kind() SetKind {
	if s.Kind == "" && s.Parent != nil {
		return s.Parent.Kind
	}
	return s.Kind
}

// ParallelText is the text the slug of a parallel set is built from.
func (s Set) ParallelText() string {
	if s.Parent == nil {
		return ""
	}
	if s.Parallel != nil {
		return s.Parallel.Text()
	}
	return s.Name
}

// Slug is SetSlug over s.
func (s Set) Slug() string {
	root := s.Root()
	return SetSlug(s.Release.Year, s.Release.Title(), root.Name, s.kind(), s.ParallelText())
}

// Card is a single checklist entry. Variant and PrintRun default to the
// set's parallel descriptor when left empty.
type Card struct {
	Set        Set
	CardNumber string
	PlayerName string
	Variant    string
	PrintRun   int
}

// Slug is CardSlug over c.
func (c Card) Slug() string {
	variant, run := c.Variant, c.PrintRun
	if p := c.Set.Parallel; p != nil {
		if variant == "" {
			variant = p.VariantName
		}
		if run <= 0 {
			run = p.PrintRun
		}
	}
	rel := c.Set.Release
	return CardSlug(rel.Manufacturer, rel.Title(), rel.Year, c.Set.Root().Name, c.CardNumber, c.PlayerName, variant, run)
}
