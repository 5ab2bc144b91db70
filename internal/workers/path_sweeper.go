package workers

import (
	"context"
	"time"

	"air/atlas/internal/logging"
)

type ExpiredPathDeleter interface {
	DeleteExpired(ctx context.Context, now int64) (int64, error)
}

// PathSweeper periodically deletes stored paths past their expiry.
type PathSweeper struct {
	repo     ExpiredPathDeleter
	interval time.Duration
	now      func() time.Time
}

func NewPathSweeper(repo ExpiredPathDeleter, interval time.Duration) *PathSweeper {
	return &PathSweeper{repo: repo, interval: interval, now: time.Now}
}

// Start sweeps once immediately and then every interval until ctx is done.
func (s *PathSweeper) Start(ctx context.Context) {
	logging.Info("Starting path sweeper", "interval", s.interval.String())

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.sweep(ctx)

	for {
		select {
		case <-ctx.Done():
			logging.Info("Path sweeper shutting down")
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *PathSweeper) sweep(ctx context.Context) {
	n, err := s.repo.DeleteExpired(ctx, s.now().Unix())
	if err != nil {
		logging.Error("Path sweep failed", "error", err)
		return
	}
	if n > 0 {
		logging.Info("Deleted expired paths", "count", n)
	}
}
