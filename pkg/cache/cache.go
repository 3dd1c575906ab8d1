// Package cache stores rendered diagrams so repeated requests skip layout
// and rendering.
//
// Three backends share the [Cache] interface:
//
//   - [NullCache]: never stores anything (caching disabled)
//   - [FileCache]: one file per entry, used by the CLI
//   - [RedisCache]: shared cache for the HTTP server
//
// Keys come from a [Keyer]; [ScopedKeyer] prefixes them so several
// deployments can share one Redis database.
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented key/value store with per-entry expiry.
type Cache interface {
	// Get returns the value stored under key. A missing or expired entry
	// is reported as a miss, not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}

// TTLArtifact is how long rendered artifacts are kept by default.
const TTLArtifact = 24 * time.Hour
