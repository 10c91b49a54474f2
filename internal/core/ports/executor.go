// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"github.com/agragregra/jw/internal/core/domain"
)

// Process represents a started external tool invocation.
type Process interface {
	// Wait blocks until the process exits and returns its failure, if any.
	Wait() error
}

// Executor defines the interface for running external tools.
//
//go:generate mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Execute starts the invocation, waits for it to exit and returns an
	// error carrying the exit code when the tool fails.
	Execute(ctx context.Context, inv *domain.Invocation) error

	// Start launches the invocation without waiting and hands the process
	// handle to the caller. The pair runner owns the handles of its two
	// long-lived watch-mode processes this way.
	Start(ctx context.Context, inv *domain.Invocation) (Process, error)
}
