package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solde-app/solde/internal/logging"
)

func TestFileStore_MissingKey(t *testing.T) {
	s := NewFileStore(t.TempDir(), logging.Nop())

	var out []string
	found, err := s.Load("accounts", &out)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, out)
}

func TestFileStore_RoundTrip(t *testing.T) {
	s := NewFileStore(t.TempDir(), logging.Nop())

	require.NoError(t, s.Save("accounts", []string{"a", "b"}))

	var out []string
	found, err := s.Load("accounts", &out)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []string{"a", "b"}, out)
}

func TestFileStore_CorruptSnapshotFallsBack(t *testing.T) {
	dir := t.TempDir()
	s := NewFileStore(dir, logging.Nop())
	require.NoError(t, os.WriteFile(filepath.Join(dir, "accounts.json"), []byte("{not json"), 0o644))

	var out []string
	found, err := s.Load("accounts", &out)
	require.NoError(t, err, "corrupt snapshots never propagate")
	assert.False(t, found)
}

func TestFileStore_SaveReplacesSnapshot(t *testing.T) {
	s := NewFileStore(t.TempDir(), logging.Nop())

	require.NoError(t, s.Save("k", []int{1, 2, 3}))
	require.NoError(t, s.Save("k", []int{9}))

	var out []int
	found, err := s.Load("k", &out)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, []int{9}, out)
}
