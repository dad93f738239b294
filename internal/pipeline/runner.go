package pipeline

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/backmassage/cardslug/internal/config"
	"github.com/backmassage/cardslug/internal/display"
	"github.com/backmassage/cardslug/internal/logging"
	"github.com/backmassage/cardslug/internal/profile"
)

// ErrNoProfiles is returned by Run when the profile directory holds no
// release profiles.
var ErrNoProfiles = errors.New("no release profiles found")

// Run is the top-level batch entry point. It discovers and loads release
// profiles, processes each release (up to cfg.Jobs at once), writes the
// report when configured, and returns aggregate stats. A non-nil error means
// the run could not start or was cancelled; per-row problems are only
// counted in the stats.
func Run(ctx context.Context, cfg *config.Config, log *logging.Logger, mode Mode) (RunStats, error) {
	start := time.Now()
	var stats RunStats

	files, err := Discover(cfg.ProfileDir)
	if err != nil {
		return stats, fmt.Errorf("discover profiles: %w", err)
	}
	if len(files) == 0 {
		return stats, fmt.Errorf("%s: %w", cfg.ProfileDir, ErrNoProfiles)
	}
	stats.Profiles = len(files)

	groups := loadGroups(files, cfg.StrictTables, log, &stats)
	stats.Releases = len(groups)
	logBatchHeader(cfg, log, mode, &stats)

	results := make([]releaseResult, len(groups))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Jobs)
	for i, grp := range groups {
		i, grp := i, grp
		g.Go(func() error {
			res, err := processRelease(gctx, cfg, log.Named(grp.slug), mode, grp)
			results[i] = res
			return err
		})
	}
	runErr := g.Wait()
	if runErr != nil {
		log.Warn("Interrupted")
	}

	report := &Report{
		RunID:     uuid.NewString(),
		Mode:      mode,
		Generated: time.Now().UTC(),
		Releases:  make([]ReleaseReport, 0, len(results)),
	}
	for _, res := range results {
		stats.Add(res.stats)
		report.Releases = append(report.Releases, res.report)
	}
	report.Stats = stats

	if cfg.ReportPath != "" {
		n, err := WriteReport(context.WithoutCancel(ctx), cfg.ReportPath, cfg.ReportFormat(), report)
		if err != nil {
			log.Error("Report not written: %v", err)
			stats.Failed++
		} else {
			log.Success("Report %s written to %s (%s)", report.RunID, cfg.ReportPath, display.FormatBytes(n))
		}
	}

	logSummary(log, mode, &stats, time.Since(start))
	return stats, runErr
}

// loadGroups loads every profile and groups them by release slug, keeping
// discovery order. Profiles that fail to load are logged and counted.
func loadGroups(files []string, strict bool, log *logging.Logger, stats *RunStats) []releaseGroup {
	var groups []releaseGroup
	index := make(map[string]int)
	for _, path := range files {
		p, err := profile.Load(path)
		if err != nil {
			log.Error("%v", err)
			stats.Failed++
			continue
		}
		if shadows := p.Table().Shadowed(); len(shadows) > 0 {
			for _, sh := range shadows {
				if strict {
					log.Error("%s: %s", path, sh)
				} else {
					log.Warn("%s: %s", path, sh)
				}
			}
			if strict {
				stats.Failed++
				continue
			}
		}
		key := p.ReleaseSlug()
		if i, ok := index[key]; ok {
			groups[i].profiles = append(groups[i].profiles, p)
			continue
		}
		index[key] = len(groups)
		groups = append(groups, releaseGroup{slug: key, info: p.Info(), profiles: []*profile.Profile{p}})
	}
	return groups
}

func logBatchHeader(cfg *config.Config, log *logging.Logger, mode Mode, stats *RunStats) {
	log.Info("Found %d profiles (%d releases) in %s", stats.Profiles, stats.Releases, cfg.ProfileDir)
	log.Info("Mode: %s, jobs: %d", mode, cfg.Jobs)
	if cfg.Disambiguate {
		log.Info("Collisions: disambiguate with -N suffixes")
	} else {
		log.Info("Collisions: report and fail")
	}
	if mode == ModeVerify && cfg.Fix {
		log.Info("Fix: regenerated slugs included in report")
	}
	log.Info("")
}

func logSummary(log *logging.Logger, mode Mode, stats *RunStats, elapsed time.Duration) {
	log.Info("==============================")
	log.Info("Done in %s: %s sets, %s parallels, %s cards",
		elapsed.Round(time.Millisecond),
		display.FormatCount(stats.Sets),
		display.FormatCount(stats.Parallels),
		display.FormatCount(stats.Cards))
	log.Info("  Rows read: %s (%s skipped)", display.FormatCount(stats.Rows), display.FormatCount(stats.Skipped))
	if stats.Disambiguated > 0 {
		log.Warn("  Disambiguated: %d", stats.Disambiguated)
	}
	if mode == ModeVerify {
		log.Info("  Verified: %s, drift: %d (%s)", display.FormatCount(stats.Verified), stats.Drift,
			display.FormatPercent(stats.Drift, stats.Verified))
	}
	log.Infow("summary",
		"profiles", stats.Profiles,
		"releases", stats.Releases,
		"degenerate", stats.Degenerate,
		"collisions", stats.Collisions,
		"drift", stats.Drift,
		"failed", stats.Failed)

	if stats.OK() {
		log.Success("All slugs valid and unique")
		return
	}
	log.Error("Degenerate: %d, collisions: %d, drift: %d, failed inputs: %d",
		stats.Degenerate, stats.Collisions, stats.Drift, stats.Failed)
}
