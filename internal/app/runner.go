package app

import (
	"context"

	"github.com/agragregra/jw/internal/core/domain"
	"golang.org/x/sync/errgroup"
)

// runTask executes the task's action. For interruptible tasks a cancellation
// of ctx (a termination signal) that tore down the action triggers the cleanup
// action; cleanup always completes before runTask does. A signal arriving
// after the action has already completed normally has no effect.
func (a *App) runTask(ctx context.Context, task *domain.Task, cleanup domain.Action) error {
	err := task.Action(ctx)

	if task.Interruptible && err != nil && ctx.Err() != nil {
		a.logger.Warn(task.Name + " interrupted, cleaning up")
		// The signal context is cancelled; cleanup needs a live one.
		if cerr := cleanup(context.WithoutCancel(ctx)); cerr != nil {
			a.logger.Error(cerr)
		}
		return domain.ErrInterrupted
	}

	return err
}

// runPair starts both invocations and owns their process handles until both
// have terminated. A failure of one does not abort the other; the first error
// is reported after both have exited.
func (a *App) runPair(ctx context.Context, first, second *domain.Invocation) error {
	var g errgroup.Group
	for _, inv := range []*domain.Invocation{first, second} {
		vctx, vtx := a.telemetry.Record(ctx, invocationName(inv))
		proc, err := a.executor.Start(vctx, inv)
		if err != nil {
			vtx.Complete(err)
			g.Go(func() error { return err })
			continue
		}
		g.Go(func() error {
			werr := proc.Wait()
			vtx.Complete(werr)
			return werr
		})
	}
	return g.Wait()
}
