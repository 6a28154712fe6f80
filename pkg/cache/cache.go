// Package cache stores measurements and rendered artifacts so that boards
// seen before do not need to be sampled or drawn again.
//
// Backends:
//   - [NullCache]: caching disabled
//   - [FileCache]: one JSON file per entry, for the CLI
//   - [RedisCache]: shared cache for server deployments
//
// Keys come from a [Keyer], which hashes the board content together with
// every option that affects the stored value. Values are opaque bytes.
//
// Cache failures are never fatal: callers log them and recompute.
package cache

import (
	"context"
	"time"
)

// Default time-to-live per kind of entry. A measurement depends only on the
// board content and the grid, so it can live long.
const (
	TTLMeasurement = 7 * 24 * time.Hour
	TTLArtifact    = 24 * time.Hour
)

// Cache is a byte store with expiring entries.
type Cache interface {
	// Get returns the stored value and true, or nil and false on a miss.
	// Expired entries are misses.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases the backend's resources.
	Close() error
}

// Clearer is implemented by caches that can drop every entry they own.
type Clearer interface {
	Clear(ctx context.Context) error
}

// Clear empties c if the backend supports it, and is a no-op otherwise.
func Clear(ctx context.Context, c Cache) error {
	if cl, ok := c.(Clearer); ok {
		return cl.Clear(ctx)
	}
	return nil
}
