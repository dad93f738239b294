package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/backmassage/cardslug/internal/config"
	"github.com/backmassage/cardslug/internal/logging"
)

// app carries the state shared by every subcommand. Subcommands report
// findings by setting code; a returned error always exits 1.
type app struct {
	cfg     config.Config
	display *config.DisplayFlags
	log     *logging.Logger
	out     io.Writer
	errOut  io.Writer
	code    int
}

func newApp(out, errOut io.Writer) *app {
	return &app{cfg: config.DefaultConfig(), out: out, errOut: errOut}
}

// execute runs the command line in args and returns the process exit code.
func (a *app) execute(ctx context.Context, args []string) int {
	root := a.rootCmd()
	root.SetArgs(args)
	root.SetOut(a.out)
	root.SetErr(a.errOut)

	err := root.ExecuteContext(ctx)
	if a.log != nil {
		defer a.log.Close()
	}
	if err != nil {
		// The logger may not exist yet (bad flags), so errors go straight to errOut.
		fmt.Fprintf(a.errOut, "cardslug: %v\n", err)
		return 1
	}
	return a.code
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "cardslug",
		Short: "Canonical slugs for trading-card catalogs",
		Long: `cardslug turns free-form release, set, parallel and card names into stable,
URL-safe identifiers, classifies sets by kind, and checks whole release
checklists for degenerate, colliding or drifted slugs.`,
		Version:           config.Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	a.display = config.BindDisplayFlags(root.PersistentFlags(), &a.cfg)

	root.AddCommand(
		a.releaseCmd(),
		a.setCmd(),
		a.cardCmd(),
		a.classifyCmd(),
		a.parallelCmd(),
		a.batchCmd(),
		a.verifyCmd(),
		a.checkCmd(),
	)
	return root
}

// setup folds negated flags into the config, validates it and opens the
// logger. It runs before every subcommand.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	a.display.Apply(&a.cfg)
	if err := a.cfg.Validate(); err != nil {
		return err
	}
	log, err := logging.NewLogger(&a.cfg)
	if err != nil {
		return err
	}
	a.log = log
	return nil
}
