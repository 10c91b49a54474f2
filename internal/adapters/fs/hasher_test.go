package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/agragregra/jw/internal/adapters/fs"
	"github.com/stretchr/testify/require"
)

func TestHasher_Deterministic(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a")
	b := filepath.Join(dir, "b")
	require.NoError(t, os.WriteFile(a, []byte("same content"), 0o644))
	require.NoError(t, os.WriteFile(b, []byte("same content"), 0o644))

	hasher := fs.NewHasher()

	hashA, err := hasher.ComputeFileHash(a)
	require.NoError(t, err)
	require.Len(t, hashA, 16)

	hashB, err := hasher.ComputeFileHash(b)
	require.NoError(t, err)
	require.Equal(t, hashA, hashB)
}

func TestHasher_ContentSensitive(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a")
	b := filepath.Join(dir, "b")
	require.NoError(t, os.WriteFile(a, []byte("one"), 0o644))
	require.NoError(t, os.WriteFile(b, []byte("two"), 0o644))

	hasher := fs.NewHasher()

	hashA, err := hasher.ComputeFileHash(a)
	require.NoError(t, err)
	hashB, err := hasher.ComputeFileHash(b)
	require.NoError(t, err)
	require.NotEqual(t, hashA, hashB)
}

func TestHasher_MissingFile(t *testing.T) {
	hasher := fs.NewHasher()

	_, err := hasher.ComputeFileHash(filepath.Join(t.TempDir(), "absent"))
	require.Error(t, err)
}
