package git

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Layout describes the paths derived from any location inside a
// repository.
type Layout struct {
	// WorktreeRoot is the root of the enclosing worktree (may differ
	// from the main checkout when resolved from a linked worktree).
	WorktreeRoot string

	// SharedMetadataDir is the shared VCS metadata directory, common
	// to every worktree of the repository.
	SharedMetadataDir string
}

// ScratchWorktreePath is the private linked worktree autorebase
// creates and reuses for rebases of branches not checked out
// elsewhere.
func (l Layout) ScratchWorktreePath() string {
	return filepath.Join(l.SharedMetadataDir, "autorebase", "autorebase_worktree")
}

// ConflictLedgerPath is the persisted conflict ledger document.
func (l Layout) ConflictLedgerPath() string {
	return filepath.Join(l.SharedMetadataDir, "autorebase", "conflicts.toml")
}

// ResolveLayout discovers the worktree root and shared metadata
// directory for any path inside a repository, using git's own
// path-resolution primitives so linked worktrees resolve correctly.
func ResolveLayout(ctx context.Context, path string) (Layout, error) {
	if path == "" {
		return Layout{}, ErrEmptyPath
	}

	toplevel, err := run(ctx, path, "rev-parse", "--show-toplevel")
	if err != nil {
		return Layout{}, fmt.Errorf("%w: %v", ErrNotGitRepo, err)
	}
	commonDir, err := run(ctx, path, "rev-parse", "--path-format=absolute", "--git-common-dir")
	if err != nil {
		return Layout{}, fmt.Errorf("%w: %v", ErrNotGitRepo, err)
	}

	return Layout{
		WorktreeRoot:      filepath.Clean(strings.TrimSpace(toplevel)),
		SharedMetadataDir: filepath.Clean(strings.TrimSpace(commonDir)),
	}, nil
}

// WorktreeName returns the linked-worktree name for a worktree path,
// derived from the last path component of the `gitdir:` line inside
// its `.git` file. The main worktree has no name and is not resolved
// through this path.
func WorktreeName(gitFileContents string) (string, error) {
	line := strings.TrimSpace(gitFileContents)
	const prefix = "gitdir:"
	if !strings.HasPrefix(line, prefix) {
		return "", fmt.Errorf("git: malformed worktree .git file: missing %q prefix", prefix)
	}
	gitDir := strings.TrimSpace(strings.TrimPrefix(line, prefix))
	gitDir = filepath.Clean(gitDir)
	name := filepath.Base(gitDir)
	if name == "." || name == string(filepath.Separator) || name == "" {
		return "", fmt.Errorf("git: malformed worktree path %q", gitDir)
	}
	return name, nil
}

// WorktreeMetadataDir returns the directory holding per-worktree
// sentinels (rebase-merge, rebase-apply, HEAD, ...) for the named
// worktree. For the main worktree, worktreeName is empty and
// sentinels live directly under sharedMetadataDir.
func WorktreeMetadataDir(sharedMetadataDir, worktreeName string) string {
	if worktreeName == "" {
		return sharedMetadataDir
	}
	return filepath.Join(sharedMetadataDir, "worktrees", worktreeName)
}

// WorktreeMetadataDirFor resolves the sentinel directory for the
// worktree rooted at worktreePath by reading its `.git` file. When
// `.git` is a directory rather than a `gitdir:` file, worktreePath is
// the main worktree and sentinels live directly under
// sharedMetadataDir.
func WorktreeMetadataDirFor(worktreePath, sharedMetadataDir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(worktreePath, ".git"))
	if err != nil {
		// `.git` is a directory (the main worktree); ReadFile on a
		// directory fails, which is how we distinguish the two cases
		// without a separate stat.
		return sharedMetadataDir, nil
	}
	name, err := WorktreeName(string(data))
	if err != nil {
		return "", err
	}
	return WorktreeMetadataDir(sharedMetadataDir, name), nil
}
