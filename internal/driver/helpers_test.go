package driver

import (
	"bytes"
	"context"
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

func newSink() *bytes.Buffer {
	return &bytes.Buffer{}
}
