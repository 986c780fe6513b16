package git

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"
)

// TempBranchSentinel is the process-wide singleton name the reverse-
// rebase probe uses for its temporary branch, and the inventory filter
// that must never surface it as a user branch.
const TempBranchSentinel = "autorebase_tmp_safe_to_delete"

// WorktreeBinding describes a branch's checkout, if any.
type WorktreeBinding struct {
	Path  string
	Clean bool
}

// WorktreeKind classifies a branch's checkout state.
type WorktreeKind int

const (
	KindFree WorktreeKind = iota
	KindCleanBound
	KindDirtyBound
)

// BranchRecord is a single local branch and its checkout state.
type BranchRecord struct {
	Name     string
	Upstream string // empty if none
	Checkout *WorktreeBinding
}

// Kind classifies the branch's checkout state. Only KindFree and
// KindCleanBound are rebasable.
func (b BranchRecord) Kind() WorktreeKind {
	if b.Checkout == nil {
		return KindFree
	}
	if b.Checkout.Clean {
		return KindCleanBound
	}
	return KindDirtyBound
}

// ListBranches enumerates local branches with their upstream binding
// and, if checked out, worktree path and clean/dirty state. The
// sentinel temp branch is always filtered out.
func ListBranches(ctx context.Context, repoPath string) ([]BranchRecord, error) {
	out, err := run(ctx, repoPath, "for-each-ref",
		"--format=%(refname:short)%00%(upstream:short)%00%(worktreepath)",
		"refs/heads")
	if err != nil {
		return nil, err
	}

	var records []BranchRecord
	for _, line := range strings.Split(out, "\n") {
		if line == "" {
			continue
		}
		parts := strings.Split(line, "\x00")
		if len(parts) != 3 {
			return nil, fmt.Errorf("%w: got %d fields, expected 3", ErrMalformedRef, len(parts))
		}

		name := parts[0]
		if name == TempBranchSentinel {
			continue
		}

		rec := BranchRecord{Name: name, Upstream: parts[1]}
		if wtPath := parts[2]; wtPath != "" {
			clean, err := checkClean(ctx, wtPath)
			if err != nil {
				return nil, err
			}
			rec.Checkout = &WorktreeBinding{Path: wtPath, Clean: clean}
		}
		records = append(records, rec)
	}
	return records, nil
}

// checkClean runs two is-clean probes: one against the working tree
// (unstaged changes vs. the index), one against the index (staged
// changes vs. HEAD). Untracked files are allowed and do not count as
// dirty, matching `git diff --quiet`'s semantics. A probe's own
// failure for any other reason is indistinguishable here from "dirty",
// a known and intentionally preserved imprecision.
func checkClean(ctx context.Context, worktreePath string) (bool, error) {
	var worktreeErr, indexErr error
	var g errgroup.Group
	g.Go(func() error {
		_, worktreeErr = run(ctx, worktreePath, "diff", "--quiet")
		return nil
	})
	g.Go(func() error {
		_, indexErr = run(ctx, worktreePath, "diff", "--cached", "--quiet")
		return nil
	})
	_ = g.Wait()
	return probeOK(worktreeErr) && probeOK(indexErr), nil
}
