package pipeline

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	"github.com/backmassage/cardslug/internal/config"
	"github.com/backmassage/cardslug/internal/logging"
	"github.com/backmassage/cardslug/internal/profile"
	"github.com/backmassage/cardslug/internal/slug"
)

// releaseGroup is every profile that resolves to one release slug. They
// share a collision scope.
type releaseGroup struct {
	slug     string
	info     slug.Release
	profiles []*profile.Profile
}

type releaseResult struct {
	report ReleaseReport
	stats  RunStats
}

// setEntry is a root set or parallel discovered while reading rows.
type setEntry struct {
	key    string
	set    slug.Set
	slug   string
	runs   []int // card print runs, for parallels the table leaves unnumbered
	cards  int
	source string
	line   int
}

type pendingCard struct {
	row    profile.Row
	setKey string
}

// releaseRun holds the state of one processRelease call. It is not shared
// between goroutines.
type releaseRun struct {
	cfg      *config.Config
	log      *logging.Logger
	mode     Mode
	info     slug.Release
	resolver *CollisionResolver
	sets     map[string]*setEntry
	order    []*setEntry
	res      releaseResult
}

// processRelease derives every set and card slug for one release group.
// It returns ctx.Err() when cancelled between rows; every other problem is
// counted in the result.
func processRelease(ctx context.Context, cfg *config.Config, log *logging.Logger, mode Mode, g releaseGroup) (releaseResult, error) {
	r := &releaseRun{
		cfg:      cfg,
		log:      log,
		mode:     mode,
		info:     g.info,
		resolver: NewCollisionResolver(),
		sets:     make(map[string]*setEntry),
	}
	r.res.report = ReleaseReport{
		Slug:         g.slug,
		Manufacturer: g.info.Manufacturer,
		Name:         g.info.Title(),
		Year:         g.info.Year,
	}

	var pending []pendingCard
	for _, p := range g.profiles {
		r.res.report.Profiles = append(r.res.report.Profiles, p.Path)

		rows, err := Rows(p)
		if err != nil {
			log.Error("%v", err)
			r.res.stats.Failed++
			r.problem(ProblemInput, "", p.Path, 0, err.Error())
			continue
		}
		table := p.Table()
		classifier := p.Classifier()

		for _, row := range rows {
			if err := ctx.Err(); err != nil {
				return r.res, err
			}
			r.res.stats.Rows++
			if strings.TrimSpace(row.Set) == "" || strings.TrimSpace(row.Number) == "" {
				r.res.stats.Skipped++
				r.problem(ProblemSkipped, "", row.Source, row.Line, "missing set name or card number")
				continue
			}
			pending = append(pending, pendingCard{row: row, setKey: r.addSet(row, table, classifier)})
		}
	}

	r.finalizeSets()

	for _, pc := range pending {
		if err := ctx.Err(); err != nil {
			return r.res, err
		}
		r.addCard(pc)
	}

	r.res.report.Sets = r.setReports()
	log.Info("%d rows, %d sets (%d parallels), %d cards", r.res.stats.Rows,
		r.res.stats.Sets, r.res.stats.Parallels, r.res.stats.Cards)
	return r.res, nil
}

// addSet registers the root set of row, and its parallel when the variant
// table matches, returning the key of the set the card belongs to.
func (r *releaseRun) addSet(row profile.Row, table slug.VariantTable, classifier slug.Classifier) string {
	par := slug.ExtractParallel(row.Set, table)

	// Unmatched names come back raw; spacing must not split a root set.
	baseName := strings.Join(strings.Fields(par.BaseSetName), " ")
	rootKey := strings.ToLower(baseName)
	root, ok := r.sets[rootKey]
	if !ok {
		kind := classifier.Classify(baseName)
		root = &setEntry{
			key:    rootKey,
			set:    slug.Set{Name: baseName, Kind: kind, Release: r.info},
			source: row.Source,
			line:   row.Line,
		}
		r.sets[rootKey] = root
		r.order = append(r.order, root)
		r.log.Debug(r.cfg.Verbose, "set %q classified %s (rule %q)", baseName, kind, classifier.MatchedRule(baseName))
	}
	if !par.IsParallel() {
		return rootKey
	}

	key := rootKey + "|" + strings.ToLower(par.VariantName)
	e, ok := r.sets[key]
	if !ok {
		d := par.Descriptor()
		e = &setEntry{
			key: key,
			set: slug.Set{
				Name:     row.Set,
				Kind:     root.set.Kind,
				Release:  r.info,
				Parent:   &root.set,
				Parallel: &d,
			},
			source: row.Source,
			line:   row.Line,
		}
		r.sets[key] = e
		r.order = append(r.order, e)
	}
	e.runs = append(e.runs, int(row.PrintRun))
	return key
}

// finalizeSets fills parallel print runs the table left open from the
// cards, then derives and claims every set slug.
func (r *releaseRun) finalizeSets() {
	for _, e := range r.order {
		if p := e.set.Parallel; p != nil {
			if p.PrintRun <= 0 {
				p.PrintRun = slug.CommonPrintRun(e.runs)
			}
			r.res.stats.Parallels++
		} else {
			r.res.stats.Sets++
		}
		e.slug = r.claim("set:"+e.key, e.set.Slug(), e.source, e.line)
	}
}

func (r *releaseRun) addCard(pc pendingCard) {
	e := r.sets[pc.setKey]
	row := pc.row

	card := slug.Card{
		Set:        e.set,
		CardNumber: row.Number,
		PlayerName: row.Player,
		PrintRun:   int(row.PrintRun),
	}
	derived := card.Slug()
	owner := "card:" + row.Source + ":" + strconv.Itoa(row.Line)
	final := r.claim(owner, derived, row.Source, row.Line)
	if final == "" {
		return
	}
	e.cards++
	r.res.stats.Cards++
	r.log.Debug(r.cfg.Verbose, "%s #%s %s -> %s", row.Set, row.Number, row.Player, final)

	if r.mode == ModeVerify {
		r.verify(row, final)
		return
	}

	run := card.PrintRun
	if run <= 0 && e.set.Parallel != nil {
		run = e.set.Parallel.PrintRun
	}
	r.res.report.Cards = append(r.res.report.Cards, CardReport{
		Slug:     final,
		Set:      e.slug,
		Number:   row.Number,
		Player:   row.Player,
		Team:     row.Team,
		PrintRun: run,
		Rarity:   slug.RarityFor(run),
	})
}

func (r *releaseRun) verify(row profile.Row, fresh string) {
	stored := strings.TrimSpace(row.Slug)
	if stored == "" {
		return
	}
	r.res.stats.Verified++
	if stored == fresh {
		return
	}
	r.res.stats.Drift++
	d := DriftReport{Source: row.Source, Line: row.Line, Stored: stored, Reason: driftReason(stored, fresh)}
	if r.cfg.Fix {
		d.Slug = fresh
	}
	r.res.report.Drift = append(r.res.report.Drift, d)
	r.log.Warn("drift %s:%d: %s -> %s (%s)", row.Source, row.Line, stored, fresh, d.Reason)
}

var reDoubledRun = regexp.MustCompile(`-(\d+)-(\d+)$`)

// driftReason names the most likely cause of a stored slug going stale.
func driftReason(stored, fresh string) string {
	if m := reDoubledRun.FindStringSubmatch(stored); m != nil && m[1] == m[2] {
		if strings.TrimSuffix(stored, "-"+m[2]) == fresh {
			return "duplicated print run"
		}
	}
	return "changed"
}

// claim checks s and records it for owner. It returns the slug to emit:
// s itself, a -N variant when disambiguating, or "" when s is degenerate.
func (r *releaseRun) claim(owner, s, source string, line int) string {
	if err := slug.Check(s); err != nil {
		r.res.stats.Degenerate++
		r.problem(ProblemDegenerate, s, source, line, err.Error())
		r.log.Error("%s:%d: %v", source, line, err)
		return ""
	}
	if r.cfg.Disambiguate {
		final := r.resolver.Resolve(owner, s)
		if final != s {
			r.res.stats.Disambiguated++
			r.problem(ProblemRenamed, final, source, line, "collided with "+s)
			r.log.Warn("%s:%d: %s collides, using %s", source, line, s, final)
		}
		return final
	}
	if holder, ok := r.resolver.Claim(owner, s); !ok {
		r.res.stats.Collisions++
		r.problem(ProblemCollision, s, source, line, "already claimed by "+holder)
		r.log.Error("%s:%d: slug %s already claimed by %s", source, line, s, holder)
	}
	return s
}

func (r *releaseRun) problem(kind ProblemKind, s, source string, line int, detail string) {
	r.res.report.Problems = append(r.res.report.Problems, Problem{
		Kind: kind, Slug: s, Source: source, Line: line, Detail: detail,
	})
}

// setReports lists the sets that produced a slug, in listing order.
func (r *releaseRun) setReports() []SetReport {
	out := make([]SetReport, 0, len(r.order))
	for _, e := range r.order {
		if e.slug == "" {
			continue
		}
		sr := SetReport{
			Slug:   e.slug,
			Name:   e.set.Name,
			Kind:   e.set.Kind,
			Rarity: slug.RarityBase,
			Cards:  e.cards,
		}
		if p := e.set.Parallel; p != nil {
			sr.Parent = r.sets[strings.SplitN(e.key, "|", 2)[0]].slug
			sr.Variant = p.VariantName
			sr.PrintRun = p.PrintRun
			sr.Label = slug.NumberedLabel(p.PrintRun)
			sr.Rarity = slug.RarityFor(p.PrintRun)
		}
		out = append(out, sr)
	}
	slug.SortSets(out, func(s SetReport) slug.OrderKey {
		return slug.OrderKey{Slug: s.Slug, Variant: s.Variant, PrintRun: s.PrintRun, Parallel: s.Parent != "" || s.Variant != ""}
	})
	return out
}
