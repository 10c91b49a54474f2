package domain_test

import (
	"testing"

	"github.com/agragregra/jw/internal/core/domain"
	"github.com/stretchr/testify/require"
)

func TestRegistry_ResolveExactMatchOnly(t *testing.T) {
	reg := domain.NewRegistry()
	require.NoError(t, reg.Add(&domain.Task{Name: "build"}))

	task, err := reg.Resolve("build")
	require.NoError(t, err)
	require.Equal(t, "build", task.Name)

	_, err = reg.Resolve("Build")
	require.ErrorIs(t, err, domain.ErrUnknownCommand)

	_, err = reg.Resolve("bui")
	require.ErrorIs(t, err, domain.ErrUnknownCommand)
}

func TestRegistry_DuplicateName(t *testing.T) {
	reg := domain.NewRegistry()
	require.NoError(t, reg.Add(&domain.Task{Name: "clean"}))

	err := reg.Add(&domain.Task{Name: "clean"})
	require.ErrorIs(t, err, domain.ErrTaskAlreadyExists)
}

func TestRegistry_NamesPreserveInsertionOrder(t *testing.T) {
	reg := domain.NewRegistry()
	for _, name := range []string{"dev", "build", "deploy"} {
		require.NoError(t, reg.Add(&domain.Task{Name: name}))
	}
	require.Equal(t, []string{"dev", "build", "deploy"}, reg.Names())
}

func TestDefaultConfig_DeployTarget(t *testing.T) {
	cfg := domain.DefaultConfig()
	require.Equal(t, "deploy@example.com:/var/www/site/", cfg.DeployTarget())
}

func TestDefaultConfig_OutputDirExcludedFromBackup(t *testing.T) {
	cfg := domain.DefaultConfig()
	require.Contains(t, cfg.BackupExcludes, cfg.OutputDir+"/*")
}
