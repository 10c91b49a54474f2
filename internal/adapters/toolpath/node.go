package toolpath

import (
	"context"

	"github.com/agragregra/jw/internal/core/ports"
	"github.com/grindlemire/graft"
)

const NodeID graft.ID = "adapter.toollocator"

func init() {
	graft.Register(graft.Node[ports.ToolLocator]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ToolLocator, error) {
			return NewLocator(), nil
		},
	})
}
