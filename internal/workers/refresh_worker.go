package workers

import (
	"context"
	"fmt"
	"sync"
	"time"

	"air/atlas/internal/config"
	"air/atlas/internal/logging"
	"air/atlas/internal/metrics"
	"air/atlas/internal/services"

	"golang.org/x/sync/errgroup"
)

// PathResolver is the part of the flight path service the pool drives.
type PathResolver interface {
	Resolve(ctx context.Context, flightID string, opts services.ResolveOptions) (*services.PathResolution, error)
}

type RefreshRequest struct {
	FlightID    string
	RequestedAt time.Time
}

// RefreshPool rebuilds flight paths in the background. Requests are buffered
// in a bounded queue and drained by a fixed number of workers.
type RefreshPool struct {
	resolver PathResolver
	queue    chan RefreshRequest
	workers  int
	metrics  *metrics.MetricsRegistry

	mu     sync.RWMutex
	closed bool
}

func NewRefreshPool(resolver PathResolver, cfg config.RefreshConfig, m *metrics.MetricsRegistry) *RefreshPool {
	return &RefreshPool{
		resolver: resolver,
		queue:    make(chan RefreshRequest, cfg.QueueSize),
		workers:  cfg.Workers,
		metrics:  m,
	}
}

// Enqueue schedules a forced refresh of flightID. It never blocks and
// returns false when the queue is full or closed.
func (p *RefreshPool) Enqueue(flightID string) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return false
	}

	select {
	case p.queue <- RefreshRequest{FlightID: flightID, RequestedAt: time.Now()}:
		p.setDepth()
		return true
	default:
		logging.Warn("Refresh queue full, dropping request", "flight_id", flightID)
		return false
	}
}

// Start runs the workers until ctx is cancelled or Close drains the queue.
func (p *RefreshPool) Start(ctx context.Context) error {
	logging.Info("Starting refresh workers", "workers", p.workers, "queue_size", cap(p.queue))

	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < p.workers; i++ {
		workerName := fmt.Sprintf("refresh-worker-%d", i)
		g.Go(func() error {
			p.process(ctx, workerName)
			return nil
		})
	}

	err := g.Wait()
	logging.Info("All refresh workers stopped")
	return err
}

// Close stops accepting work. Queued requests are still processed.
func (p *RefreshPool) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.closed {
		p.closed = true
		close(p.queue)
	}
}

func (p *RefreshPool) process(ctx context.Context, workerName string) {
	log := logging.With("worker", workerName)
	processed, failed := 0, 0

	for {
		select {
		case <-ctx.Done():
			log.Infow("Shutting down", "processed", processed, "errors", failed)
			return
		case req, ok := <-p.queue:
			if !ok {
				log.Infow("Queue closed", "processed", processed, "errors", failed)
				return
			}
			p.setDepth()

			res, err := p.resolver.Resolve(ctx, req.FlightID, services.ResolveOptions{ForceRefresh: true})
			if err != nil {
				failed++
				log.Errorw("Refresh failed", "flight_id", req.FlightID, "error", err)
				continue
			}
			processed++
			log.Infow("Refreshed flight path",
				"flight_id", req.FlightID,
				"status", res.Status,
				"source", res.Source,
				"waited_ms", time.Since(req.RequestedAt).Milliseconds(),
			)
		}
	}
}

func (p *RefreshPool) setDepth() {
	if p.metrics == nil {
		return
	}
	p.metrics.RefreshQueueDepth.Set(float64(len(p.queue)))
}
