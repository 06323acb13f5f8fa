package daemon

import (
	"context"
	"log/slog"
	"time"

	"foors/internal/sim"

	"golang.org/x/sync/errgroup"
)

// Run starts the tick loop and the gRPC server, then blocks until ctx is
// cancelled. The tick loop advances model by tickInterval of simulated
// time on every tickInterval of wall-clock time; auto-generation, if
// enabled on model, rides along inside each Tick call.
func Run(ctx context.Context, model *sim.Model, socketPath string, tickInterval time.Duration) error {
	srv := NewServer(model)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("starting tick loop", "interval", tickInterval)
		ticker := time.NewTicker(tickInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-ticker.C:
				model.Tick(tickInterval.Seconds())
			}
		}
	})
	g.Go(func() error {
		slog.Info("starting daemon", "socket", socketPath)
		return srv.ListenAndServe(ctx, socketPath)
	})
	return g.Wait()
}
