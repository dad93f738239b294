package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/backmassage/cardslug/internal/check"
	"github.com/backmassage/cardslug/internal/config"
	"github.com/backmassage/cardslug/internal/display"
	"github.com/backmassage/cardslug/internal/pipeline"
	"github.com/backmassage/cardslug/internal/profile"
)

func (a *app) batchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch PROFILE_DIR",
		Short: "Derive every set and card slug for a directory of release profiles",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runPipeline(cmd, args, pipeline.ModeBatch)
		},
	}
	config.BindBatchFlags(cmd.Flags(), &a.cfg)
	return cmd
}

func (a *app) verifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify PROFILE_DIR",
		Short: "Regenerate card slugs and report drift from the stored slug column",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runPipeline(cmd, args, pipeline.ModeVerify)
		},
	}
	config.BindBatchFlags(cmd.Flags(), &a.cfg)
	config.BindVerifyFlags(cmd.Flags(), &a.cfg)
	return cmd
}

// runPipeline validates paths and runs batch or verify over args[0].
func (a *app) runPipeline(cmd *cobra.Command, args []string, mode pipeline.Mode) error {
	if err := config.SetProfileDir(&a.cfg, args); err != nil {
		return err
	}
	if err := a.cfg.Validate(); err != nil {
		return err
	}

	// Resolve and validate paths: the profile directory must exist, the
	// report directory is created if needed, and a YAML report must not land
	// where the next run would discover it.
	profileAbs, err := absPath(a.cfg.ProfileDir)
	if err != nil {
		return fmt.Errorf("profile directory not found: %s", a.cfg.ProfileDir)
	}
	if a.cfg.ReportPath != "" {
		dir := filepath.Dir(a.cfg.ReportPath)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("cannot create report directory: %s", dir)
		}
		dirAbs, err := absPath(dir)
		if err != nil {
			return fmt.Errorf("cannot resolve report path: %s", a.cfg.ReportPath)
		}
		if err := a.cfg.ValidatePaths(profileAbs, filepath.Join(dirAbs, filepath.Base(a.cfg.ReportPath))); err != nil {
			a.log.Error("Choose a report path outside: %s", a.cfg.ProfileDir)
			return err
		}
	}

	display.PrintBanner(a.out)
	stats, err := pipeline.Run(cmd.Context(), &a.cfg, a.log, mode)
	if err != nil {
		return err
	}
	if !stats.OK() {
		a.code = 1
	}
	return nil
}

func (a *app) checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check PROFILE...",
		Short: "Lint release profiles (files or directories)",
		Long: `Lint release profiles: variant-table ordering, duplicate and empty
suffixes, print runs, override kinds and checklist sources. With -v each
variant's parallel slug is shown under every set kind.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			display.PrintBanner(a.out)
			for _, arg := range args {
				files, err := profileFiles(arg)
				if err != nil {
					a.log.Error("%v", err)
					a.code = 1
					continue
				}
				for _, path := range files {
					p, err := profile.Read(path)
					if err != nil {
						a.log.Error("%v", err)
						a.code = 1
						continue
					}
					if !check.RunCheck(p, a.cfg.Verbose, a.log) {
						a.code = 1
					}
				}
			}
			return nil
		},
	}
}

// profileFiles expands a directory argument into its release profiles.
func profileFiles(arg string) ([]string, error) {
	info, err := os.Stat(arg)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{arg}, nil
	}
	files, err := pipeline.Discover(arg)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%s: %w", arg, pipeline.ErrNoProfiles)
	}
	return files, nil
}
