package common

import (
	"context"
	"time"
)

// CacheInterface defines the contract for cache implementations. Values are
// stored as JSON so every backend round-trips the same shapes.
type CacheInterface interface {
	// Set stores value under key for duration
	Set(ctx context.Context, key string, value any, duration time.Duration) error

	// Get decodes the value stored under key into dest.
	// Returns false when the key is absent or expired.
	Get(ctx context.Context, key string, dest any) (bool, error)

	// Delete removes a value from cache by key
	Delete(ctx context.Context, key string) error

	// Close closes any underlying connections (for Redis, etc.)
	Close() error
}
