package git

import (
	"context"
	"fmt"
	"strings"
)

// RevParse resolves a ref to its commit hash.
func RevParse(ctx context.Context, dir, ref string) (string, error) {
	out, err := run(ctx, dir, "rev-parse", "--verify", ref)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrBranchNotFound, ref, err)
	}
	return strings.TrimSpace(out), nil
}

// MergeBase returns the merge base of two refs.
func MergeBase(ctx context.Context, dir, a, b string) (string, error) {
	out, err := run(ctx, dir, "merge-base", a, b)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// CommitsBetween lists commits reachable from `to` but not `from`,
// newest-first.
func CommitsBetween(ctx context.Context, dir, from, to string) ([]string, error) {
	out, err := run(ctx, dir, "log", "--format=%H", fmt.Sprintf("%s..%s", from, to))
	if err != nil {
		return nil, err
	}
	out = strings.TrimSpace(out)
	if out == "" {
		return nil, nil
	}
	return strings.Split(out, "\n"), nil
}

// CountCommitsBetween is CommitsBetween's count-only form, used by the
// reverse-rebase probe to avoid materializing the hash list.
func CountCommitsBetween(ctx context.Context, dir, from, to string) (int, error) {
	out, err := run(ctx, dir, "rev-list", "--count", fmt.Sprintf("%s..%s", from, to))
	if err != nil {
		return 0, err
	}
	var n int
	if _, scanErr := fmt.Sscanf(strings.TrimSpace(out), "%d", &n); scanErr != nil {
		return 0, fmt.Errorf("%w: rev-list --count: %q", ErrMalformedRef, out)
	}
	return n, nil
}

// DefaultBranchName resolves the integration branch: explicit argument
// > git's init.defaultBranch setting > literal "master".
// Pass "" for explicit to skip straight to the config lookup.
func DefaultBranchName(ctx context.Context, dir, explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	out, err := run(ctx, dir, "config", "--default", "master", "--get", "init.defaultBranch")
	if err != nil {
		return "master", nil
	}
	name := strings.TrimSpace(out)
	if name == "" {
		return "master", nil
	}
	return name, nil
}

// IsDetached reports whether HEAD is detached (as opposed to on a
// named branch), via the symbolic-ref primitive. A failure (nonzero
// exit) means detached.
func IsDetached(ctx context.Context, dir string) bool {
	_, err := run(ctx, dir, "symbolic-ref", "-q", "HEAD")
	return !probeOK(err)
}

// HeadCommit resolves HEAD to its commit hash. Returns ErrUnbornHead
// if HEAD does not yet point at a commit.
func HeadCommit(ctx context.Context, dir string) (string, error) {
	out, err := run(ctx, dir, "rev-parse", "--verify", "HEAD")
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnbornHead, err)
	}
	return strings.TrimSpace(out), nil
}

// CurrentBranch returns the short name of the branch HEAD is attached
// to. Only meaningful when IsDetached reports false.
func CurrentBranch(ctx context.Context, dir string) (string, error) {
	out, err := run(ctx, dir, "symbolic-ref", "--short", "HEAD")
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnbornHead, err)
	}
	return strings.TrimSpace(out), nil
}
