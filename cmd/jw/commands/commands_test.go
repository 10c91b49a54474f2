package commands_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/agragregra/jw/cmd/jw/commands"
	"github.com/agragregra/jw/internal/adapters/telemetry"
	"github.com/agragregra/jw/internal/app"
	"github.com/agragregra/jw/internal/core/domain"
	"github.com/agragregra/jw/internal/core/ports/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testDeps struct {
	loader   *mocks.MockConfigLoader
	executor *mocks.MockExecutor
	locator  *mocks.MockToolLocator
	logger   *mocks.MockLogger
	hasher   *mocks.MockHasher
}

func newCLI(t *testing.T) (*commands.CLI, *testDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)

	deps := &testDeps{
		loader:   mocks.NewMockConfigLoader(ctrl),
		executor: mocks.NewMockExecutor(ctrl),
		locator:  mocks.NewMockToolLocator(ctrl),
		logger:   mocks.NewMockLogger(ctrl),
		hasher:   mocks.NewMockHasher(ctrl),
	}
	deps.loader.EXPECT().Load(".").Return(domain.DefaultConfig(), nil).AnyTimes()
	deps.logger.EXPECT().Info(gomock.Any()).AnyTimes()
	deps.logger.EXPECT().Warn(gomock.Any()).AnyTimes()

	a := app.New(deps.loader, deps.executor, deps.locator, deps.logger, telemetry.NewNoop(), deps.hasher)
	return commands.New(a), deps
}

func TestExecute_Clean(t *testing.T) {
	cli, deps := newCLI(t)

	deps.locator.EXPECT().Look("jekyll").Return("/usr/bin/jekyll", nil).Times(1)
	deps.executor.EXPECT().Execute(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	cli.SetArgs([]string{"clean"})
	require.NoError(t, cli.Execute(context.Background()))
}

func TestExecute_UnknownCommand(t *testing.T) {
	cli, _ := newCLI(t)

	cli.SetArgs([]string{"frobnicate"})
	err := cli.Execute(context.Background())
	require.ErrorIs(t, err, domain.ErrUnknownCommand)
}

func TestExecute_NoCommand(t *testing.T) {
	cli, _ := newCLI(t)

	cli.SetArgs([]string{})
	err := cli.Execute(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "no command specified")
}

func TestExecute_MissingToolExitsWithoutRunning(t *testing.T) {
	cli, deps := newCLI(t)

	deps.locator.EXPECT().Look("docker").Return("", domain.ErrMissingTool).Times(1)
	// No executor expectation: any call fails the test.

	cli.SetArgs([]string{"up"})
	err := cli.Execute(context.Background())
	require.ErrorIs(t, err, domain.ErrMissingTool)
	require.Contains(t, err.Error(), "docker is not installed")
}

func TestExecute_ProgressFlagRendersInvocations(t *testing.T) {
	cli, deps := newCLI(t)

	deps.locator.EXPECT().Look("jekyll").Return("/usr/bin/jekyll", nil).Times(1)
	deps.executor.EXPECT().Execute(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	var buf bytes.Buffer
	cli.SetErr(&buf)
	cli.SetArgs([]string{"clean", "--progress"})
	require.NoError(t, cli.Execute(context.Background()))

	// The invocation and its outcome show up on the error stream.
	require.Contains(t, buf.String(), "jekyll clean")
	require.Contains(t, buf.String(), "DONE")
}

func TestExecute_WithoutProgressFlagStaysQuiet(t *testing.T) {
	cli, deps := newCLI(t)

	deps.locator.EXPECT().Look("jekyll").Return("/usr/bin/jekyll", nil).Times(1)
	deps.executor.EXPECT().Execute(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	var buf bytes.Buffer
	cli.SetErr(&buf)
	cli.SetArgs([]string{"clean"})
	require.NoError(t, cli.Execute(context.Background()))

	require.NotContains(t, buf.String(), "jekyll clean")
}

func TestExecute_Version(t *testing.T) {
	cli, _ := newCLI(t)

	cli.SetArgs([]string{"version"})
	require.NoError(t, cli.Execute(context.Background()))
}

func TestExecute_Help(t *testing.T) {
	cli, _ := newCLI(t)

	cli.SetArgs([]string{"--help"})
	require.NoError(t, cli.Execute(context.Background()))
}
