package git

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// RebaseResult reports the outcome of a rebase attempt: Success means
// the branch now sits atop the chosen target; Conflict means the
// in-flight rebase was aborted and the branch is unchanged.
type RebaseResult int

const (
	RebaseSuccess RebaseResult = iota
	RebaseConflict
)

// RebaseOpts configures a rebase attempt.
type RebaseOpts struct {
	// NoSign disables commit signing, used by the reverse-rebase probe
	// since its rebase is thrown away and never kept.
	NoSign bool
}

// AttemptRebase rebases the branch checked out in worktreePath onto
// onto. On conflict it aborts the in-flight rebase and reports
// RebaseConflict instead of propagating an error — only a genuine
// infrastructure failure (not a conflict) is returned as err.
func AttemptRebase(ctx context.Context, repoPath, worktreePath, onto string, opts RebaseOpts) (RebaseResult, error) {
	if startRebase(ctx, worktreePath, onto, opts) {
		return RebaseSuccess, nil
	}

	inProgress, err := IsRebaseInProgress(ctx, repoPath, worktreePath)
	if err != nil {
		return RebaseConflict, err
	}
	if inProgress {
		if files, ferr := ConflictedFiles(ctx, worktreePath); ferr == nil && len(files) > 0 {
			log.Printf("warning: rebase onto %s conflicted in %s", onto, strings.Join(files, ", "))
		}
		if _, err := run(ctx, worktreePath, "rebase", "--abort"); err != nil {
			return RebaseConflict, err
		}
	}

	return RebaseConflict, nil
}

// startRebase runs `git rebase onto` and reports whether it completed
// cleanly, without recovering from a conflict. It is the raw primitive
// behind AttemptRebase and StartRebase.
func startRebase(ctx context.Context, worktreePath, onto string, opts RebaseOpts) (succeeded bool) {
	args := []string{"rebase"}
	if opts.NoSign {
		args = append(args, "--no-gpg-sign")
	}
	args = append(args, onto)

	_, err := run(ctx, worktreePath, args...)
	return err == nil
}

// StartRebase is startRebase's exported form, used directly by the
// reverse-rebase probe: unlike AttemptRebase, it never recovers from a
// conflict, because the probe needs the rebase left in-progress so it
// can count applied commits before aborting itself.
func StartRebase(ctx context.Context, worktreePath, onto string, opts RebaseOpts) (succeeded bool) {
	return startRebase(ctx, worktreePath, onto, opts)
}

// AbortRebase aborts an in-progress rebase unconditionally.
func AbortRebase(ctx context.Context, worktreePath string) error {
	_, err := run(ctx, worktreePath, "rebase", "--abort")
	return err
}

// IsRebaseInProgress detects a rebase-in-progress state by presence of
// the well-known sentinel directories `rebase-apply`/`rebase-merge`
// inside the worktree-specific metadata directory.
func IsRebaseInProgress(ctx context.Context, repoPath, worktreePath string) (bool, error) {
	layout, err := ResolveLayout(ctx, repoPath)
	if err != nil {
		return false, err
	}
	metaDir, err := WorktreeMetadataDirFor(worktreePath, layout.SharedMetadataDir)
	if err != nil {
		return false, err
	}

	for _, sentinel := range []string{"rebase-apply", "rebase-merge"} {
		if _, err := os.Stat(filepath.Join(metaDir, sentinel)); err == nil {
			return true, nil
		}
	}
	return false, nil
}

// ConflictedFiles lists files with unresolved merge conflicts.
func ConflictedFiles(ctx context.Context, worktreePath string) ([]string, error) {
	out, err := run(ctx, worktreePath, "diff", "--name-only", "--diff-filter=U")
	if err != nil {
		return nil, err
	}
	out = strings.TrimSpace(out)
	if out == "" {
		return nil, nil
	}
	return strings.Split(out, "\n"), nil
}
