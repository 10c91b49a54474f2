// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/agragregra/jw/internal/adapters/config"
	_ "github.com/agragregra/jw/internal/adapters/fs"
	_ "github.com/agragregra/jw/internal/adapters/logger"
	_ "github.com/agragregra/jw/internal/adapters/shell"
	_ "github.com/agragregra/jw/internal/adapters/telemetry"
	_ "github.com/agragregra/jw/internal/adapters/toolpath"
	// Register the app node.
	_ "github.com/agragregra/jw/internal/app"
)
