// Package rebase implements the per-branch rebase procedure: choosing
// a worktree, finding the maximal clean prefix of the integration
// branch a topic branch can land on, and keeping the conflict ledger
// in sync with the outcome.
package rebase

import (
	"context"
	"fmt"

	"github.com/autorebase/autorebase/internal/git"
	"github.com/autorebase/autorebase/internal/ledger"
)

// Outcome describes what happened to a single branch, for driver-level
// reporting.
type Outcome int

const (
	// OutcomeUpToDate means the branch already sat atop the integration
	// branch; nothing was done.
	OutcomeUpToDate Outcome = iota
	// OutcomeSkippedLedger means a prior conflict at this exact tip is
	// still recorded and the branch was not retried.
	OutcomeSkippedLedger
	// OutcomeRebased means the branch now sits fully atop the
	// integration tip.
	OutcomeRebased
	// OutcomeBlocked means the branch advanced as far as it cleanly
	// could (possibly not at all) and is now recorded in the ledger.
	OutcomeBlocked
)

// Result is what Branch reports back to the driver for one branch.
type Result struct {
	Branch  string
	Outcome Outcome
}

// Options configures a single branch's rebase attempt.
type Options struct {
	// Slow selects the linear conflict-localization algorithm (retrying
	// each integration commit in turn) instead of the reverse-rebase
	// probe.
	Slow bool
}

// Branch runs the full per-branch procedure for rec against the
// integration branch integration, using
// scratchWorktree as the scratch worktree to check rec out in when it is
// not already clean-bound elsewhere.
func Branch(ctx context.Context, repoPath, scratchWorktree string, rec git.BranchRecord, integration string, led *ledger.Ledger, ledgerPath string, opts Options) (Result, error) {
	result := Result{Branch: rec.Name}

	// Step A — skip check.
	tip, err := git.RevParse(ctx, repoPath, rec.Name)
	if err != nil {
		return result, fmt.Errorf("rebase: resolving tip of %s: %w", rec.Name, err)
	}
	if led.IsStillStuck(rec.Name, tip) {
		result.Outcome = OutcomeSkippedLedger
		return result, nil
	}
	led.Clear(rec.Name)
	if err := ledger.Save(ledgerPath, led); err != nil {
		return result, err
	}

	// Step B — compute target list.
	mergeBase, err := git.MergeBase(ctx, repoPath, rec.Name, integration)
	if err != nil {
		return result, fmt.Errorf("rebase: merge-base of %s and %s: %w", rec.Name, integration, err)
	}
	targets, err := git.CommitsBetween(ctx, repoPath, mergeBase, integration)
	if err != nil {
		return result, fmt.Errorf("rebase: computing target list for %s: %w", rec.Name, err)
	}
	if len(targets) == 0 {
		result.Outcome = OutcomeUpToDate
		return result, nil
	}

	// Step C — choose rebase worktree.
	worktreePath := scratchWorktree
	if rec.Kind() == git.KindCleanBound {
		worktreePath = rec.Checkout.Path
	} else {
		if err := git.SwitchBranch(ctx, scratchWorktree, rec.Name); err != nil {
			return result, fmt.Errorf("rebase: checking out %s in scratch worktree: %w", rec.Name, err)
		}
	}

	var conflicted bool
	if opts.Slow {
		conflicted, err = attemptSlow(ctx, repoPath, worktreePath, targets)
	} else {
		conflicted, err = attemptFast(ctx, repoPath, worktreePath, rec.Name, integration, targets)
	}
	if err != nil {
		return result, err
	}

	// Step F — normalize worktree state. Only the scratch worktree needs
	// detaching so the branch can be checked out elsewhere; a clean-bound
	// branch rebased in its own worktree stays checked out there.
	newTip, err := git.RevParse(ctx, repoPath, rec.Name)
	if err != nil {
		return result, fmt.Errorf("rebase: resolving new tip of %s: %w", rec.Name, err)
	}
	if worktreePath == scratchWorktree {
		if err := git.SwitchDetach(ctx, worktreePath, newTip); err != nil {
			return result, fmt.Errorf("rebase: detaching %s: %w", worktreePath, err)
		}
	}

	// Step G — ledger update.
	if conflicted {
		led.MarkStuck(rec.Name, newTip)
		result.Outcome = OutcomeBlocked
	} else {
		result.Outcome = OutcomeRebased
	}
	if err := ledger.Save(ledgerPath, led); err != nil {
		return result, err
	}

	return result, nil
}

// attemptSlow is step D: try each target newest-first, aborting and
// continuing to the next on conflict.
func attemptSlow(ctx context.Context, repoPath, worktreePath string, targets []string) (conflicted bool, err error) {
	for _, target := range targets {
		result, err := git.AttemptRebase(ctx, repoPath, worktreePath, target, git.RebaseOpts{})
		if err != nil {
			return conflicted, err
		}
		if result == git.RebaseSuccess {
			return conflicted, nil
		}
		conflicted = true
	}
	return conflicted, nil
}

// attemptFast is step E: try the integration tip once, and on
// conflict use the reverse-rebase probe instead of a linear scan.
func attemptFast(ctx context.Context, repoPath, worktreePath, branch, integration string, targets []string) (conflicted bool, err error) {
	result, err := git.AttemptRebase(ctx, repoPath, worktreePath, targets[0], git.RebaseOpts{})
	if err != nil {
		return false, err
	}
	if result == git.RebaseSuccess {
		return false, nil
	}

	n, err := reverseProbe(ctx, repoPath, worktreePath, branch, integration)
	if err != nil {
		return true, err
	}
	if n == 0 || n >= len(targets) {
		return true, nil
	}

	furthestClean := targets[len(targets)-n]
	if _, err := git.AttemptRebase(ctx, repoPath, worktreePath, furthestClean, git.RebaseOpts{}); err != nil {
		return true, err
	}
	return true, nil
}
