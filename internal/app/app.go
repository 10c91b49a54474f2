// Package app implements the application layer for jw.
package app

import (
	"context"
	"strings"

	"github.com/agragregra/jw/internal/core/domain"
	"github.com/agragregra/jw/internal/core/ports"
	"go.trai.ch/zerr"
)

// App represents the main application logic: it resolves a command name to a
// task, verifies the task's external tools and runs the task's action.
type App struct {
	configLoader ports.ConfigLoader
	executor     ports.Executor
	locator      ports.ToolLocator
	logger       ports.Logger
	telemetry    ports.Telemetry
	hasher       ports.Hasher
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	executor ports.Executor,
	locator ports.ToolLocator,
	log ports.Logger,
	tel ports.Telemetry,
	hasher ports.Hasher,
) *App {
	return &App{
		configLoader: loader,
		executor:     executor,
		locator:      locator,
		logger:       log,
		telemetry:    tel,
		hasher:       hasher,
	}
}

// SetTelemetry replaces the progress recorder. Used by the CLI when progress
// display is requested.
func (a *App) SetTelemetry(tel ports.Telemetry) {
	a.telemetry = tel
}

// Run executes the named task: load configuration, resolve the task, verify
// its tools, then run the action through the interrupt-safe runner.
func (a *App) Run(ctx context.Context, name string) error {
	cfg, err := a.configLoader.Load(".")
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	reg, err := a.registry(cfg)
	if err != nil {
		return err
	}

	task, err := reg.Resolve(name)
	if err != nil {
		return err
	}

	if err := a.checkTools(task.Tools); err != nil {
		return err
	}

	return a.runTask(ctx, task, a.cleanAction(cfg))
}

// Close releases the progress recorder.
func (a *App) Close() error {
	return a.telemetry.Close()
}

// checkTools probes every required tool and reports all missing ones in a
// single message, preserving input order.
func (a *App) checkTools(tools []string) error {
	var missing []string
	for _, tool := range tools {
		if _, err := a.locator.Look(tool); err != nil {
			missing = append(missing, tool)
		}
	}
	if len(missing) > 0 {
		joined := strings.Join(missing, " ")
		return zerr.With(zerr.Wrap(domain.ErrMissingTool, joined+" is not installed"), "missing", joined)
	}
	return nil
}

// invoke runs one external tool invocation, recording it as a telemetry
// vertex.
func (a *App) invoke(ctx context.Context, inv *domain.Invocation) error {
	ctx, vtx := a.telemetry.Record(ctx, invocationName(inv))
	err := a.executor.Execute(ctx, inv)
	vtx.Complete(err)
	return err
}

func invocationName(inv *domain.Invocation) string {
	if len(inv.Args) == 0 {
		return inv.Tool
	}
	return inv.Tool + " " + strings.Join(inv.Args, " ")
}
