package git

import (
	"errors"
	"testing"
)

func TestAttemptRebase_Success(t *testing.T) {
	stub := newTestRunner(t)
	stub.Stub("rebase main", "", nil)

	result, err := AttemptRebase(testCtx(), "/repo", "/repo/wt", "main", RebaseOpts{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != RebaseSuccess {
		t.Errorf("got %v, want RebaseSuccess", result)
	}
}

func TestAttemptRebase_NoSign(t *testing.T) {
	stub := newTestRunner(t)
	stub.Stub("rebase --no-gpg-sign main", "", nil)

	result, err := AttemptRebase(testCtx(), "/repo", "/repo/wt", "main", RebaseOpts{NoSign: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != RebaseSuccess {
		t.Errorf("got %v, want RebaseSuccess", result)
	}
}

func TestAttemptRebase_ConflictAborts(t *testing.T) {
	dir := t.TempDir()
	wt := dir + "/wt"
	mkdir(t, wt)
	mkdir(t, dir+"/.git/worktrees/wt/rebase-merge")
	writeFile(t, wt+"/.git", "gitdir: "+dir+"/.git/worktrees/wt\n")

	stub := newTestRunner(t)
	stub.Stub("rebase main", "", errors.New("CONFLICT"))
	stub.Stub("rev-parse --show-toplevel", dir+"\n", nil)
	stub.Stub("rev-parse --path-format=absolute --git-common-dir", dir+"/.git\n", nil)
	stub.Stub("diff --name-only --diff-filter=U", "a.txt\n", nil)
	stub.Stub("rebase --abort", "", nil)

	result, err := AttemptRebase(testCtx(), dir, wt, "main", RebaseOpts{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != RebaseConflict {
		t.Errorf("got %v, want RebaseConflict", result)
	}
	if stub.CallsFor("diff", "--name-only", "--diff-filter=U") != 1 {
		t.Error("expected conflicted files to be listed before aborting")
	}
	if stub.CallsFor("rebase", "--abort") != 1 {
		t.Error("expected rebase to be aborted")
	}
}

func TestConflictedFiles(t *testing.T) {
	stub := newTestRunner(t)
	stub.Stub("diff --name-only --diff-filter=U", "a.txt\nb.txt\n", nil)

	files, err := ConflictedFiles(testCtx(), "/repo/wt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(files) != 2 || files[0] != "a.txt" || files[1] != "b.txt" {
		t.Errorf("got %v", files)
	}
}

func TestConflictedFiles_None(t *testing.T) {
	stub := newTestRunner(t)
	stub.Stub("diff --name-only --diff-filter=U", "", nil)

	files, err := ConflictedFiles(testCtx(), "/repo/wt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if files != nil {
		t.Errorf("got %v, want nil", files)
	}
}
