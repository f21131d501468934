package cache

import (
	"context"
	"errors"
	"time"
)

// ErrMiss is returned by Get when the key is absent or expired.
var ErrMiss = errors.New("cache miss")

// Cache is the port for short-lived lookup caching; the assistant uses it to
// remember intent classifications for repeated messages. Implementations must
// be safe for concurrent use.
type Cache interface {
	// Get returns the value stored under key, or ErrMiss.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key for the given TTL. A zero TTL means no
	// expiration.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Ping reports whether the backing store is reachable.
	Ping(ctx context.Context) error

	// Close releases the connection to the backing store.
	Close() error
}
