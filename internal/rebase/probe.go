package rebase

import (
	"context"
	"fmt"

	"github.com/autorebase/autorebase/internal/git"
)

// reverseProbe implements the reverse-rebase probe: given that
// rebasing branch onto integration conflicts, it counts how many of
// the newest integration commits still cleanly apply on top of
// branch, without linearly retrying the rebase once per candidate.
func reverseProbe(ctx context.Context, repoPath, worktreePath, branch, integration string) (int, error) {
	savedHead, err := currentHeadRef(ctx, worktreePath)
	if err != nil {
		return 0, err
	}

	if err := git.SwitchCreateBranch(ctx, worktreePath, git.TempBranchSentinel, integration); err != nil {
		return 0, fmt.Errorf("rebase: creating probe branch: %w", err)
	}

	succeeded := git.StartRebase(ctx, worktreePath, branch, git.RebaseOpts{NoSign: true})

	var n int
	if succeeded {
		// The symmetric rebase completing cleanly is anomalous given the
		// asymmetric conflict that triggered this probe; swallow it and
		// report no clean prefix.
		n = 0
	} else {
		inProgress, err := git.IsRebaseInProgress(ctx, repoPath, worktreePath)
		if err != nil {
			return 0, err
		}
		if !inProgress {
			return 0, fmt.Errorf("rebase: probe expected an in-progress rebase and found none")
		}

		head, err := git.HeadCommit(ctx, worktreePath)
		if err != nil {
			return 0, err
		}
		n, err = git.CountCommitsBetween(ctx, worktreePath, branch, head)
		if err != nil {
			return 0, err
		}

		if err := git.AbortRebase(ctx, worktreePath); err != nil {
			return 0, err
		}
	}

	if err := git.SwitchDetach(ctx, worktreePath, integration); err != nil {
		return 0, err
	}
	if err := git.DeleteBranch(ctx, worktreePath, git.TempBranchSentinel); err != nil {
		return 0, err
	}

	if err := restoreHead(ctx, worktreePath, savedHead); err != nil {
		return 0, err
	}

	return n, nil
}

// headRef is either a branch name or a bare commit hash, whichever
// HEAD was pointing at before the probe started.
type headRef struct {
	branch string
	commit string
}

func currentHeadRef(ctx context.Context, worktreePath string) (headRef, error) {
	if git.IsDetached(ctx, worktreePath) {
		commit, err := git.HeadCommit(ctx, worktreePath)
		if err != nil {
			return headRef{}, err
		}
		return headRef{commit: commit}, nil
	}
	name, err := git.CurrentBranch(ctx, worktreePath)
	if err != nil {
		return headRef{}, err
	}
	return headRef{branch: name}, nil
}

func restoreHead(ctx context.Context, worktreePath string, ref headRef) error {
	if ref.branch != "" {
		return git.SwitchBranch(ctx, worktreePath, ref.branch)
	}
	return git.SwitchDetach(ctx, worktreePath, ref.commit)
}
