// Package shell provides the subprocess executor adapter.
package shell

import (
	"bytes"
	"context"
	"io"
	"os/exec"

	"github.com/agragregra/jw/internal/core/domain"
	"github.com/agragregra/jw/internal/core/ports"
	"go.trai.ch/zerr"
)

// Executor implements ports.Executor using os/exec.
type Executor struct {
	logger ports.Logger
}

// NewExecutor creates a new shell Executor.
func NewExecutor(logger ports.Logger) *Executor {
	return &Executor{logger: logger}
}

type process struct {
	cmd    *exec.Cmd
	tool   string
	stdout *logWriter
	stderr *logWriter
}

// Wait blocks until the command exits. A non-zero exit is wrapped with the
// tool name and exit code.
func (p *process) Wait() error {
	err := p.cmd.Wait()
	_ = p.stdout.Close()
	_ = p.stderr.Close()
	if err != nil {
		return wrapExitError(err, p.tool)
	}
	return nil
}

// Start launches the invocation without waiting for it. Output is streamed
// line by line into the logger and, when a telemetry vertex is attached to
// the context, into its stdout/stderr writers.
func (e *Executor) Start(ctx context.Context, inv *domain.Invocation) (ports.Process, error) {
	cmd := exec.CommandContext(ctx, inv.Tool, inv.Args...) //nolint:gosec // tool names come from the static task table

	if inv.Dir != "" {
		cmd.Dir = inv.Dir
	}

	stdoutLog := &logWriter{logger: e.logger, level: "info"}
	stderrLog := &logWriter{logger: e.logger, level: "error"}

	var stdout io.Writer = stdoutLog
	var stderr io.Writer = stderrLog
	if v, ok := ports.VertexFromContext(ctx); ok {
		stdout = io.MultiWriter(stdoutLog, v.Stdout())
		stderr = io.MultiWriter(stderrLog, v.Stderr())
	}
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	if err := cmd.Start(); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to start "+inv.Tool), "tool", inv.Tool)
	}

	return &process{cmd: cmd, tool: inv.Tool, stdout: stdoutLog, stderr: stderrLog}, nil
}

// Execute runs the invocation and waits for it to complete.
func (e *Executor) Execute(ctx context.Context, inv *domain.Invocation) error {
	proc, err := e.Start(ctx, inv)
	if err != nil {
		return err
	}
	return proc.Wait()
}

func wrapExitError(err error, tool string) error {
	var exitCode int
	if exitErr, ok := err.(*exec.ExitError); ok {
		exitCode = exitErr.ExitCode()
	} else {
		exitCode = -1 // unknown or signal
	}
	wrapped := zerr.Wrap(domain.ErrToolFailed, tool+" exited with an error")
	wrapped = zerr.With(wrapped, "tool", tool)
	return zerr.With(wrapped, "exit_code", exitCode)
}

// logWriter buffers partial writes and forwards complete lines to the logger.
type logWriter struct {
	logger ports.Logger
	level  string
	buf    []byte
}

func (w *logWriter) Write(p []byte) (n int, err error) {
	w.buf = append(w.buf, p...)
	for {
		idx := bytes.IndexByte(w.buf, '\n')
		if idx < 0 {
			break
		}
		w.emit(string(w.buf[:idx]))
		w.buf = w.buf[idx+1:]
	}
	return len(p), nil
}

// Close flushes any trailing partial line.
func (w *logWriter) Close() error {
	if len(w.buf) > 0 {
		w.emit(string(w.buf))
		w.buf = nil
	}
	return nil
}

func (w *logWriter) emit(line string) {
	if line == "" {
		return
	}
	if w.level == "info" {
		w.logger.Info(line)
	} else {
		w.logger.Error(zerr.New(line))
	}
}
