package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/autorebase/autorebase/internal/config"
	"github.com/autorebase/autorebase/internal/driver"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// RunOptions holds the root command's flags.
type RunOptions struct {
	Onto            string
	Slow            bool
	IncludeNonLocal bool
	MatchBranches   string
}

// registerRunFlags adds the rebase flags to the root command.
func registerRunFlags(cmd *cobra.Command, opts *RunOptions) {
	cmd.Flags().StringVar(&opts.Onto, "onto", "", "integration branch name (default: repository default branch)")
	cmd.Flags().BoolVar(&opts.Slow, "slow", false, "use linear conflict localization instead of the reverse-rebase probe")
	cmd.Flags().BoolVar(&opts.IncludeNonLocal, "include-non-local", false, "also rebase branches that have an upstream")
	cmd.Flags().StringVar(&opts.MatchBranches, "match-branches", "", "only rebase branches matching this glob")
}

// runRoot wires the loaded configuration and CLI flags into a driver
// run against the current working directory.
func runRoot(cmd *cobra.Command, opts RunOptions, verbose bool) error {
	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("cli: getting working directory: %w", err)
	}

	cfg, err := config.Load(filepath.Join(wd, "autorebase.yaml"))
	if err != nil {
		return fmt.Errorf("cli: loading config: %w", err)
	}

	if cmd.Flags().Changed("onto") {
		cfg.TargetBranch = opts.Onto
	}
	if cmd.Flags().Changed("match-branches") {
		cfg.MatchBranches = opts.MatchBranches
	}
	if verbose {
		cfg.LogLevel = "verbose"
	}

	driverOpts := driver.Options{
		RepoPath:        wd,
		Onto:            cfg.TargetBranch,
		Slow:            opts.Slow || cfg.SlowConflictDetection,
		IncludeNonLocal: opts.IncludeNonLocal || cfg.IncludeNonLocal,
		MatchBranches:   cfg.MatchBranches,
	}

	styles := driver.PlainStyles()
	if term.IsTerminal(int(os.Stdout.Fd())) {
		styles = driver.DefaultStyles()
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	handler := NewSignalHandler(cancel)
	handler.Start()
	defer handler.Stop()

	return driver.Run(ctx, driverOpts, cfg, cmd.OutOrStdout(), styles)
}
