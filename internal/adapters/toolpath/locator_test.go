package toolpath_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/agragregra/jw/internal/adapters/toolpath"
	"github.com/stretchr/testify/require"
)

func TestLocator_Look_Found(t *testing.T) {
	dir := t.TempDir()
	tool := filepath.Join(dir, "faketool")
	require.NoError(t, os.WriteFile(tool, []byte("#!/bin/sh\n"), 0o755))
	t.Setenv("PATH", dir)

	locator := toolpath.NewLocator()

	path, err := locator.Look("faketool")
	require.NoError(t, err)
	require.Equal(t, tool, path)
}

func TestLocator_Look_Missing(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	locator := toolpath.NewLocator()

	_, err := locator.Look("faketool")
	require.Error(t, err)
	require.Contains(t, err.Error(), "tool not found")
}

func TestLocator_Look_NotExecutable(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "plainfile"), []byte("data"), 0o644))
	t.Setenv("PATH", dir)

	locator := toolpath.NewLocator()

	_, err := locator.Look("plainfile")
	require.Error(t, err)
}
