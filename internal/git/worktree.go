package git

import (
	"context"
	"fmt"
	"os"
)

// EnsureScratchWorktree creates the private detached scratch worktree
// if it does not already exist. It is idempotent: an existing
// directory is treated as success, never as an error.
func EnsureScratchWorktree(ctx context.Context, repoPath, worktreePath string) error {
	if info, err := os.Stat(worktreePath); err == nil && info.IsDir() {
		return nil
	}
	_, err := run(ctx, repoPath, "worktree", "add", "--detach", worktreePath)
	if err != nil {
		return fmt.Errorf("creating scratch worktree: %w", err)
	}
	return nil
}

// SwitchDetach checks out a ref in dir with a detached HEAD, the form
// used to park the scratch worktree between operations and to
// normalize state after a rebase attempt.
func SwitchDetach(ctx context.Context, dir, ref string) error {
	_, err := run(ctx, dir, "switch", "--detach", ref)
	return err
}

// SwitchBranch attaches HEAD to an existing named branch, the form
// used to check a branch out in the scratch worktree before rebasing
// it.
func SwitchBranch(ctx context.Context, dir, branch string) error {
	_, err := run(ctx, dir, "switch", branch)
	return err
}

// SwitchCreateBranch creates branch at startPoint (resetting it if it
// already exists) and checks it out, the form the reverse-rebase probe
// uses for its disposable temporary branch.
func SwitchCreateBranch(ctx context.Context, dir, branch, startPoint string) error {
	_, err := run(ctx, dir, "switch", "-C", branch, startPoint)
	return err
}

// DeleteBranch force-deletes a local branch.
func DeleteBranch(ctx context.Context, dir, branch string) error {
	_, err := run(ctx, dir, "branch", "-D", branch)
	return err
}

// BranchExists reports whether a local branch exists.
func BranchExists(ctx context.Context, dir, branch string) bool {
	_, err := run(ctx, dir, "rev-parse", "--verify", "refs/heads/"+branch)
	return probeOK(err)
}
