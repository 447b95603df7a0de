// Package cache provides pluggable byte caches for fetched graph data and
// rendered artifacts.
//
// Three backends cover the deployment shapes:
//   - [FileCache]: directory-backed, for CLI usage
//   - [RedisCache]: shared cache for server deployments
//   - [NullCache]: no-op, for tests and --no-cache runs
//
// Keys are arbitrary strings; backends hash them, so long keys (full URLs,
// serialized option sets) are fine.
package cache

import (
	"context"
	"time"
)

// Cache is a byte store with per-entry expiration.
type Cache interface {
	// Get retrieves a value. The boolean reports whether a fresh entry
	// was found; an expired or absent entry is a miss, not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A ttl of 0 means the entry never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// FetchKey builds the cache key for a fetched resource.
func FetchKey(url string) string {
	return hashKey("fetch", url)
}

// ArtifactKey builds the cache key for a rendered artifact: the payload
// content hash plus the output format.
func ArtifactKey(payloadHash, format string) string {
	return hashKey("artifact", payloadHash, format)
}
