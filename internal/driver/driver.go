// Package driver orchestrates the repository layout resolver, branch
// inventory, conflict ledger, scratch worktree manager, integration
// updater and rebase engine into a single run.
package driver

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/autorebase/autorebase/internal/config"
	"github.com/autorebase/autorebase/internal/git"
	"github.com/autorebase/autorebase/internal/glob"
	"github.com/autorebase/autorebase/internal/ledger"
	"github.com/autorebase/autorebase/internal/rebase"
)

// Options configures a single run, one-to-one with the CLI flags.
type Options struct {
	RepoPath        string
	Onto            string
	Slow            bool
	IncludeNonLocal bool
	MatchBranches   string
}

// Run executes one full pass: pre-flight checks, integration-branch
// pull, then a rebase attempt for every eligible branch.
func Run(ctx context.Context, opts Options, cfg *config.Config, out io.Writer, styles Styles) error {
	printer := NewPrinter(out, styles)
	SetLogLevel(cfg.LogLevel)

	version, err := git.QueryVersion(ctx)
	if err != nil {
		return fmt.Errorf("driver: querying git version: %w", err)
	}
	minVersion := git.Version{Major: cfg.MinGitVersion[0], Minor: cfg.MinGitVersion[1]}
	if version.Less(minVersion) {
		return fmt.Errorf("%w: have %d.%d, need at least %d.%d",
			git.ErrGitTooOld, version.Major, version.Minor, minVersion.Major, minVersion.Minor)
	}

	freezeCommitterDate()

	layout, err := git.ResolveLayout(ctx, opts.RepoPath)
	if err != nil {
		return fmt.Errorf("driver: resolving repository layout: %w", err)
	}

	if err := git.EnsureScratchWorktree(ctx, layout.WorktreeRoot, layout.ScratchWorktreePath()); err != nil {
		return fmt.Errorf("driver: preparing scratch worktree: %w", err)
	}

	integration := opts.Onto
	if integration == "" {
		integration = cfg.TargetBranch
	}
	integration, err = git.DefaultBranchName(ctx, layout.WorktreeRoot, integration)
	if err != nil {
		return fmt.Errorf("driver: resolving integration branch: %w", err)
	}
	if !git.BranchExists(ctx, layout.WorktreeRoot, integration) {
		return fmt.Errorf("driver: %w: %q", git.ErrBranchNotFound, integration)
	}

	records, err := git.ListBranches(ctx, layout.WorktreeRoot)
	if err != nil {
		return fmt.Errorf("driver: listing branches: %w", err)
	}

	ledgerPath := layout.ConflictLedgerPath()
	led, err := ledger.Load(ledgerPath)
	if err != nil {
		return fmt.Errorf("driver: loading conflict ledger: %w", err)
	}

	var integrationRec *git.BranchRecord
	eligible := make([]git.BranchRecord, 0, len(records))
	for i := range records {
		rec := records[i]
		if rec.Name == integration {
			integrationRec = &rec
			printer.Target(rec.Name)
			continue
		}

		if !opts.IncludeNonLocal && rec.Upstream != "" {
			printer.SkippedNoUpstream(rec.Name)
			continue
		}
		if opts.MatchBranches != "" && !glob.Match(opts.MatchBranches, rec.Name) {
			printer.Filtered(rec.Name)
			continue
		}
		if rec.Kind() == git.KindDirtyBound {
			printer.SkippedDirty(rec.Name)
			continue
		}

		eligible = append(eligible, rec)
	}

	if integrationRec != nil {
		outcome, err := rebase.UpdateIntegration(ctx, layout.ScratchWorktreePath(), *integrationRec)
		if err != nil {
			return fmt.Errorf("driver: updating integration branch: %w", err)
		}
		switch outcome {
		case rebase.UpdateSkippedNoUpstream:
			reason := "no upstream configured"
			warnf("not pulling %s: %s", integration, reason)
			printer.IntegrationNotPulled(integration, reason)
		case rebase.UpdateSkippedDirty:
			reason := "checked out elsewhere with uncommitted changes"
			warnf("not pulling %s: %s", integration, reason)
			printer.IntegrationNotPulled(integration, reason)
		case rebase.UpdatePulled:
			debugf("pulled %s", integration)
		}
	}

	for _, rec := range eligible {
		result, err := rebase.Branch(ctx, layout.WorktreeRoot, layout.ScratchWorktreePath(), rec, integration, led, ledgerPath, rebase.Options{Slow: opts.Slow})
		if err != nil {
			return fmt.Errorf("driver: rebasing %s: %w", rec.Name, err)
		}

		switch result.Outcome {
		case rebase.OutcomeSkippedLedger:
			printer.SkippedLedger(rec.Name)
		case rebase.OutcomeUpToDate:
			printer.UpToDate(rec.Name)
		case rebase.OutcomeRebased:
			printer.Rebased(rec.Name)
		case rebase.OutcomeBlocked:
			printer.Blocked(rec.Name)
		}
	}

	return nil
}

// freezeCommitterDate installs a deterministic committer timestamp for
// the duration of the process if one is not already present, so two
// branch labels pointing at the same commit collapse to one identical
// commit hash when rebased.
func freezeCommitterDate() {
	if os.Getenv("GIT_COMMITTER_DATE") != "" {
		return
	}
	now := time.Now().Format(time.RFC3339)
	os.Setenv("GIT_COMMITTER_DATE", now)
	os.Setenv("GIT_AUTHOR_DATE", now)
}
