package fs

import (
	"context"

	"github.com/agragregra/jw/internal/core/ports"
	"github.com/grindlemire/graft"
)

const NodeID graft.ID = "adapter.hasher"

func init() {
	graft.Register(graft.Node[ports.Hasher]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Hasher, error) {
			return NewHasher(), nil
		},
	})
}
