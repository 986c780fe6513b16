package ledger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileIsEmptyLedger(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "conflicts.toml")

	l, err := Load(path)
	require.NoError(t, err)
	assert.Empty(t, l.Branches)
}

func TestLoad_MalformedFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "conflicts.toml")
	require.NoError(t, os.WriteFile(path, []byte("not valid toml {{{"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}

func TestSaveThenLoad_RoundTrips(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "conflicts.toml")

	l := &Ledger{Branches: map[string]string{"topic/a": "abc123"}}
	require.NoError(t, Save(path, l))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "abc123", loaded.Branches["topic/a"])
}

func TestSave_CreatesParentDir(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "autorebase", "conflicts.toml")

	require.NoError(t, Save(path, &Ledger{Branches: map[string]string{}}))
	_, err := os.Stat(path)
	require.NoError(t, err)
}

func TestSave_LeavesNoTempFileBehind(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "conflicts.toml")

	require.NoError(t, Save(path, &Ledger{Branches: map[string]string{"x": "y"}}))

	entries, err := os.ReadDir(tmpDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "conflicts.toml", entries[0].Name())
}

func TestMarkStuckAndClear(t *testing.T) {
	l := &Ledger{}
	l.MarkStuck("topic/a", "deadbeef")

	hash, ok := l.StuckAt("topic/a")
	require.True(t, ok)
	assert.Equal(t, "deadbeef", hash)

	l.Clear("topic/a")
	_, ok = l.StuckAt("topic/a")
	assert.False(t, ok)
}

func TestIsStillStuck(t *testing.T) {
	l := &Ledger{Branches: map[string]string{"topic/a": "deadbeef"}}

	assert.True(t, l.IsStillStuck("topic/a", "deadbeef"))
	assert.False(t, l.IsStillStuck("topic/a", "newcommit"))
	assert.False(t, l.IsStillStuck("topic/b", "deadbeef"))
}
