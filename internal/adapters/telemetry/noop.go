// Package telemetry provides progress recording adapters.
package telemetry

import (
	"context"
	"io"

	"github.com/agragregra/jw/internal/core/ports"
)

// Noop is a Telemetry implementation that records nothing. It is the default
// when progress display is disabled.
type Noop struct{}

// NewNoop creates a new no-op recorder.
func NewNoop() ports.Telemetry {
	return &Noop{}
}

// Record returns the context unchanged and a vertex that discards everything.
func (n *Noop) Record(ctx context.Context, _ string) (context.Context, ports.Vertex) {
	return ctx, noopVertex{}
}

// Close is a no-op.
func (n *Noop) Close() error { return nil }

type noopVertex struct{}

func (noopVertex) Stdout() io.Writer { return io.Discard }
func (noopVertex) Stderr() io.Writer { return io.Discard }
func (noopVertex) Complete(error)    {}
