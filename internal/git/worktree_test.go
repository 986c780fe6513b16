package git

import (
	"errors"
	"testing"
)

func TestEnsureScratchWorktree_CreatesWhenAbsent(t *testing.T) {
	stub := newTestRunner(t)
	dir := t.TempDir()
	wtPath := dir + "/scratch"
	stub.Stub("worktree add --detach "+wtPath, "", nil)

	if err := EnsureScratchWorktree(testCtx(), "/repo", wtPath); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stub.CallsFor("worktree", "add", "--detach", wtPath) != 1 {
		t.Error("expected exactly one worktree add call")
	}
}

func TestEnsureScratchWorktree_IdempotentWhenPresent(t *testing.T) {
	stub := newTestRunner(t)
	dir := t.TempDir()
	mkdir(t, dir)

	if err := EnsureScratchWorktree(testCtx(), "/repo", dir); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stub.CallsFor("worktree", "add", "--detach", dir) != 0 {
		t.Error("expected no worktree add call when directory already exists")
	}
}

func TestSwitchDetach(t *testing.T) {
	stub := newTestRunner(t)
	stub.Stub("switch --detach main", "", nil)

	if err := SwitchDetach(testCtx(), "/repo", "main"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSwitchCreateBranch(t *testing.T) {
	stub := newTestRunner(t)
	stub.Stub("switch -C "+TempBranchSentinel+" main", "", nil)

	if err := SwitchCreateBranch(testCtx(), "/repo", TempBranchSentinel, "main"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestBranchExists(t *testing.T) {
	stub := newTestRunner(t)
	stub.Stub("rev-parse --verify refs/heads/topic/a", "abc123\n", nil)
	stub.Stub("rev-parse --verify refs/heads/topic/b", "", errors.New("not found"))

	if !BranchExists(testCtx(), "/repo", "topic/a") {
		t.Error("expected topic/a to exist")
	}
	if BranchExists(testCtx(), "/repo", "topic/b") {
		t.Error("expected topic/b to not exist")
	}
}
