package workers

import (
	"context"

	"air/atlas/internal/config"
	"air/atlas/internal/metrics"
)

type WorkersContainer struct {
	Refresh *RefreshPool
	Sweeper *PathSweeper
}

// InitWorkers starts the refresh pool and the expiry sweeper. Both stop when
// ctx is cancelled.
func InitWorkers(
	ctx context.Context,
	cfg config.RefreshConfig,
	resolver PathResolver,
	paths ExpiredPathDeleter,
	m *metrics.MetricsRegistry,
) *WorkersContainer {
	pool := NewRefreshPool(resolver, cfg, m)
	sweeper := NewPathSweeper(paths, cfg.SweepInterval)

	go pool.Start(ctx)
	go sweeper.Start(ctx)

	return &WorkersContainer{
		Refresh: pool,
		Sweeper: sweeper,
	}
}
