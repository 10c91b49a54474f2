package telemetry

import (
	"context"

	"github.com/agragregra/jw/internal/core/ports"
	"github.com/grindlemire/graft"
)

const NodeID graft.ID = "adapter.telemetry"

func init() {
	// The noop recorder is the default; the CLI swaps in the progrock
	// recorder when progress display is requested.
	graft.Register(graft.Node[ports.Telemetry]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Telemetry, error) {
			return NewNoop(), nil
		},
	})
}
