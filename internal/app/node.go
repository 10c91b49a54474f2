package app

import (
	"context"

	"github.com/agragregra/jw/internal/adapters/config"
	"github.com/agragregra/jw/internal/adapters/fs"
	"github.com/agragregra/jw/internal/adapters/logger"
	"github.com/agragregra/jw/internal/adapters/shell"
	"github.com/agragregra/jw/internal/adapters/telemetry"
	"github.com/agragregra/jw/internal/adapters/toolpath"
	"github.com/agragregra/jw/internal/core/ports"
	"github.com/grindlemire/graft"
)

// Components contains the initialized application components the CLI needs.
type Components struct {
	App    *App
	Logger ports.Logger
}

const NodeID graft.ID = "app.components"

func init() {
	graft.Register(graft.Node[*Components]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			shell.NodeID,
			toolpath.NodeID,
			logger.NodeID,
			telemetry.NodeID,
			fs.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}
			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}
			locator, err := graft.Dep[ports.ToolLocator](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			tel, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}
			hasher, err := graft.Dep[ports.Hasher](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{
				App:    New(loader, executor, locator, log, tel, hasher),
				Logger: log,
			}, nil
		},
	})
}
