package ports

import (
	"context"
	"io"
)

//go:generate mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks

// Telemetry records the progress of external tool invocations.
type Telemetry interface {
	// Record starts a new vertex for the named invocation and returns a
	// context carrying it.
	Record(ctx context.Context, name string) (context.Context, Vertex)

	// Close flushes and closes the recording session.
	Close() error
}

// Vertex represents one recorded invocation.
type Vertex interface {
	// Stdout returns a writer capturing the tool's standard output.
	Stdout() io.Writer

	// Stderr returns a writer capturing the tool's error output.
	Stderr() io.Writer

	// Complete marks the vertex as finished, successfully or not.
	Complete(err error)
}

type vertexKey struct{}

// ContextWithVertex attaches a vertex to the context.
func ContextWithVertex(ctx context.Context, v Vertex) context.Context {
	return context.WithValue(ctx, vertexKey{}, v)
}

// VertexFromContext returns the vertex attached to the context, if any.
func VertexFromContext(ctx context.Context) (Vertex, bool) {
	v, ok := ctx.Value(vertexKey{}).(Vertex)
	return v, ok
}
