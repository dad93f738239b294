// Command cardslug derives canonical slugs for trading-card catalogs.
//
// The engine subcommands (release, set, card, classify, parallel) print one
// result per input for use from scripts. batch, verify and check work over a
// directory of release profiles and exit 1 when they find problems.
package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Cancel on SIGINT/SIGTERM so batch and verify stop between rows.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return newApp(os.Stdout, os.Stderr).execute(ctx, os.Args[1:])
}

// absPath returns the absolute, symlink-resolved path for safe comparison
// of profile and report locations.
func absPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(abs)
}
