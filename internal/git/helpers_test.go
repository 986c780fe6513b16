package git

import (
	"context"
	"os"
	"testing"

	"github.com/autorebase/autorebase/internal/testutil"
)

// newTestRunner installs a fresh StubRunner as the package's default
// runner for the duration of t, restoring the original afterwards.
func newTestRunner(t *testing.T) *testutil.StubRunner {
	t.Helper()
	stub := testutil.NewStubRunner()
	prev := DefaultRunner()
	SetDefaultRunner(stub)
	t.Cleanup(func() { SetDefaultRunner(prev) })
	return stub
}

func testCtx() context.Context {
	return context.Background()
}

func mkdir(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(path, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", path, err)
	}
}

func writeFile(t *testing.T, path, contents string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
