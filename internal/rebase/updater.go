package rebase

import (
	"context"
	"fmt"

	"github.com/autorebase/autorebase/internal/git"
)

// UpdateOutcome describes what the integration-branch updater did.
type UpdateOutcome int

const (
	UpdatePulled UpdateOutcome = iota
	UpdateSkippedNoUpstream
	UpdateSkippedDirty
)

// UpdateIntegration fast-forward pulls the integration branch,
// choosing the worktree to run the pull in based on how (and whether)
// the branch is currently checked out.
func UpdateIntegration(ctx context.Context, scratchWorktree string, rec git.BranchRecord) (UpdateOutcome, error) {
	if rec.Upstream == "" {
		return UpdateSkippedNoUpstream, nil
	}

	switch rec.Kind() {
	case git.KindDirtyBound:
		return UpdateSkippedDirty, nil

	case git.KindCleanBound:
		if err := git.FastForwardPull(ctx, rec.Checkout.Path); err != nil {
			return 0, fmt.Errorf("rebase: pulling %s: %w", rec.Name, err)
		}
		return UpdatePulled, nil

	default: // KindFree: not checked out anywhere.
		if err := git.SwitchBranch(ctx, scratchWorktree, rec.Name); err != nil {
			return 0, fmt.Errorf("rebase: checking out %s in scratch worktree: %w", rec.Name, err)
		}
		if err := git.FastForwardPull(ctx, scratchWorktree); err != nil {
			return 0, fmt.Errorf("rebase: pulling %s: %w", rec.Name, err)
		}
		tip, err := git.HeadCommit(ctx, scratchWorktree)
		if err != nil {
			return 0, err
		}
		if err := git.SwitchDetach(ctx, scratchWorktree, tip); err != nil {
			return 0, err
		}
		return UpdatePulled, nil
	}
}
