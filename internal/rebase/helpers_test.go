package rebase

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/autorebase/autorebase/internal/git"
	"github.com/autorebase/autorebase/internal/testutil"
)

func newTestRunner(t *testing.T) *testutil.StubRunner {
	t.Helper()
	stub := testutil.NewStubRunner()
	prev := git.DefaultRunner()
	git.SetDefaultRunner(stub)
	t.Cleanup(func() { git.SetDefaultRunner(prev) })
	return stub
}

func testCtx() context.Context {
	return context.Background()
}

// setupInProgressWorktree builds a real directory layout for a linked
// worktree named "scratch" whose shared metadata reports a rebase
// already in progress (a rebase-merge sentinel present), so
// git.IsRebaseInProgress resolves true against real files instead of
// the stubbed runner. It returns the repo path and the worktree path.
func setupInProgressWorktree(t *testing.T) (repoPath, worktreePath string) {
	t.Helper()
	repoPath = t.TempDir()
	worktreePath = filepath.Join(repoPath, "scratch")
	commonDir := filepath.Join(repoPath, ".git")
	metaDir := filepath.Join(commonDir, "worktrees", "scratch")

	if err := os.MkdirAll(worktreePath, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Join(metaDir, "rebase-merge"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(worktreePath, ".git"), []byte("gitdir: "+metaDir+"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	return repoPath, worktreePath
}
