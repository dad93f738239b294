package main

// Engine subcommands: one slug engine operation each, printing results to
// stdout one per line.

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/backmassage/cardslug/internal/display"
	"github.com/backmassage/cardslug/internal/profile"
	"github.com/backmassage/cardslug/internal/slug"
)

// releaseInfo builds a release, taking the year from a leading year tag in
// name when year is empty.
func releaseInfo(manufacturer, name, year string) slug.Release {
	if year == "" {
		year, name = slug.SplitReleaseYear(name)
	}
	return slug.Release{Manufacturer: manufacturer, Name: name, Year: year}
}

// emit prints s, or fails when s has no alphanumeric content.
func (a *app) emit(s string) error {
	if err := slug.Check(s); err != nil {
		return err
	}
	fmt.Fprintln(a.out, s)
	return nil
}

// loadProfile reads an optional profile for its variant table and
// overrides. An empty path yields an empty profile.
func loadProfile(path string) (*profile.Profile, error) {
	if path == "" {
		return &profile.Profile{}, nil
	}
	return profile.Read(path)
}

func (a *app) releaseCmd() *cobra.Command {
	var year string
	cmd := &cobra.Command{
		Use:   "release MANUFACTURER NAME",
		Short: "Print a release slug",
		Example: `  cardslug release Panini "2024-25 Donruss Soccer"
  cardslug release Panini "Donruss Soccer" --year 2024-25`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.emit(releaseInfo(args[0], args[1], year).Slug())
		},
	}
	cmd.Flags().StringVarP(&year, "year", "y", "", "Season or year (default: leading year of NAME)")
	return cmd
}

func (a *app) setCmd() *cobra.Command {
	var (
		year, kindName, parallel, profilePath string
		printRun                              int
	)
	cmd := &cobra.Command{
		Use:   "set RELEASE SET_NAME",
		Short: "Print a set slug",
		Long: `Print the slug of a root set, or of a parallel when --parallel is given or
--profile's variant table matches a suffix of SET_NAME. A --parallel naming
a table entry takes its print run from the table. The kind is classified
from the base set name unless --kind is given.`,
		Example: `  cardslug set "2024-25 Obsidian Soccer" "Electric Etch Green" --parallel "Electric Etch Green" --print-run 5
  cardslug set "2024-25 Donruss Soccer" "Base Set Press Proof" --profile donruss.yaml`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadProfile(profilePath)
			if err != nil {
				return err
			}
			name := args[1]
			var desc *slug.ParallelDescriptor
			switch {
			case parallel != "":
				desc = &slug.ParallelDescriptor{VariantName: parallel, PrintRun: printRun}
				if v, ok := p.Table().Lookup(parallel); ok {
					desc.VariantName = v.Suffix
					if printRun <= 0 {
						desc.PrintRun = v.PrintRun
					}
				}
			case len(p.Variants) > 0:
				if x := slug.ExtractParallel(name, p.Table()); x.IsParallel() {
					name = x.BaseSetName
					d := x.Descriptor()
					if printRun > 0 {
						d.PrintRun = printRun
					}
					desc = &d
				}
			}

			classifier := p.Classifier()
			kind := classifier.Classify(name)
			if kindName != "" {
				if kind, err = slug.ParseSetKind(kindName); err != nil {
					return err
				}
			} else {
				a.log.Debug(a.cfg.Verbose, "%q classified as %s (rule %q)", name, kind, classifier.MatchedRule(name))
			}

			set := slug.Set{Name: name, Kind: kind, Release: releaseInfo("", args[0], year)}
			if desc != nil {
				root := set
				set.Parent, set.Parallel = &root, desc
			}
			return a.emit(set.Slug())
		},
	}
	f := cmd.Flags()
	f.StringVarP(&year, "year", "y", "", "Season or year (default: leading year of RELEASE)")
	f.StringVarP(&kindName, "kind", "k", "", "Set kind: base | auto | mem | insert | other (default: classified)")
	f.StringVar(&parallel, "parallel", "", "Parallel variant text, e.g. \"Gold /10\"")
	f.IntVar(&printRun, "print-run", 0, "Parallel print run")
	f.StringVar(&profilePath, "profile", "", "Release profile supplying variants and overrides")
	return cmd
}

func (a *app) cardCmd() *cobra.Command {
	var (
		manufacturer, year, variant string
		printRun                    int
	)
	cmd := &cobra.Command{
		Use:     "card RELEASE SET_NAME NUMBER PLAYER",
		Short:   "Print a card slug",
		Example: `  cardslug card "2024-25 Obsidian Soccer" "Obsidian Base" 1 "Jude Bellingham" --variant "Electric Etch Marble Flood" --print-run 8`,
		Args:    cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			card := slug.Card{
				Set:        slug.Set{Name: args[1], Release: releaseInfo(manufacturer, args[0], year)},
				CardNumber: args[2],
				PlayerName: args[3],
				Variant:    variant,
				PrintRun:   printRun,
			}
			a.log.Debug(a.cfg.Verbose, "print run %s", display.FormatPrintRun(printRun))
			return a.emit(card.Slug())
		},
	}
	f := cmd.Flags()
	f.StringVarP(&manufacturer, "manufacturer", "m", "", "Manufacturer (not part of card slugs)")
	f.StringVarP(&year, "year", "y", "", "Season or year (default: leading year of RELEASE)")
	f.StringVar(&variant, "variant", "", "Parallel variant printed on the card")
	f.IntVar(&printRun, "print-run", 0, "Serial-number denominator")
	return cmd
}

func (a *app) classifyCmd() *cobra.Command {
	var profilePath string
	cmd := &cobra.Command{
		Use:   "classify SET_NAME...",
		Short: "Print the kind of each set name",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadProfile(profilePath)
			if err != nil {
				return err
			}
			c := p.Classifier()
			for _, name := range args {
				kind := c.Classify(name)
				rule := c.MatchedRule(name)
				if rule == "" {
					rule = "-"
				}
				fmt.Fprintf(a.out, "%s\t%s\t%s\n", kind, rule, name)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&profilePath, "profile", "", "Release profile supplying overrides")
	return cmd
}

func (a *app) parallelCmd() *cobra.Command {
	var (
		profilePath string
		variants    []string
	)
	cmd := &cobra.Command{
		Use:   "parallel SET_NAME...",
		Short: "Split set names into base set, variant and print run",
		Long: `Match each SET_NAME against a variant table, taken from --profile and any
--variant entries (in that order, first match wins).`,
		Example: `  cardslug parallel "Base Set Press Proof Black" --variant "Press Proof Black 1/1" --variant "Press Proof"`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadProfile(profilePath)
			if err != nil {
				return err
			}
			for _, v := range variants {
				p.Variants = append(p.Variants, profile.ParseVariantText(v))
			}
			table := p.Table()
			if len(table) == 0 {
				return fmt.Errorf("no variants: use --profile or --variant")
			}
			for _, s := range table.Shadowed() {
				a.log.Warn("%s", s)
			}
			for _, name := range args {
				x := slug.ExtractParallel(name, table)
				if !x.IsParallel() {
					fmt.Fprintf(a.out, "%s\t-\t-\n", x.BaseSetName)
					continue
				}
				fmt.Fprintf(a.out, "%s\t%s\t%s\n", x.BaseSetName, x.VariantName, display.FormatPrintRun(x.PrintRun))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&profilePath, "profile", "", "Release profile supplying the variant table")
	cmd.Flags().StringArrayVar(&variants, "variant", nil, "Variant table entry, e.g. \"Gold /10\" (repeatable)")
	return cmd
}
