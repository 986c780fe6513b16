// Package ledger persists the set of branches autorebase has given up
// on due to conflicts, keyed by the commit they pointed to when they
// got stuck. A branch only leaves the ledger once its tip commit
// changes, which is why the ledger is keyed by hash rather than by
// branch name alone.
package ledger

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"
)

// Ledger maps branch name to the commit hash it pointed to when
// autorebase last gave up on it.
type Ledger struct {
	Branches map[string]string `toml:"branches"`
}

// Load reads the ledger from path. A missing file is a valid initial
// state, not an error.
func Load(path string) (*Ledger, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Ledger{Branches: map[string]string{}}, nil
		}
		return nil, fmt.Errorf("ledger: reading %s: %w", path, err)
	}

	var l Ledger
	if err := toml.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("ledger: parsing %s: %w", path, err)
	}
	if l.Branches == nil {
		l.Branches = map[string]string{}
	}
	return &l, nil
}

// Save writes the ledger to path atomically: it marshals to a
// uniquely-named temp file alongside path, then renames it into
// place, so a reader never observes a partially-written document.
func Save(path string, l *Ledger) error {
	data, err := toml.Marshal(l)
	if err != nil {
		return fmt.Errorf("ledger: marshaling: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("ledger: creating %s: %w", dir, err)
	}

	tmp := path + "." + uuid.NewString() + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("ledger: writing %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("ledger: renaming %s to %s: %w", tmp, path, err)
	}
	return nil
}

// StuckAt reports the commit the branch was stuck at, if any.
func (l *Ledger) StuckAt(branch string) (string, bool) {
	hash, ok := l.Branches[branch]
	return hash, ok
}

// MarkStuck records that branch is stuck at commit, due to conflicts
// encountered rebasing it.
func (l *Ledger) MarkStuck(branch, commit string) {
	if l.Branches == nil {
		l.Branches = map[string]string{}
	}
	l.Branches[branch] = commit
}

// Clear removes branch from the ledger, called once it rebases
// cleanly or its tip moves past the recorded commit.
func (l *Ledger) Clear(branch string) {
	delete(l.Branches, branch)
}

// IsStillStuck reports whether branch is recorded as stuck at exactly
// currentCommit. If the branch's tip has since moved, it is no longer
// considered stuck and autorebase will retry it.
func (l *Ledger) IsStillStuck(branch, currentCommit string) bool {
	hash, ok := l.Branches[branch]
	return ok && hash == currentCommit
}
