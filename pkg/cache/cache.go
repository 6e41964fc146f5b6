// Package cache provides content-addressed caching for the diagram
// pipeline. Parse, layout, and render results are keyed by hashes of
// their inputs, so repeating a run with the same source text and
// options is served from the cache instead of being recomputed.
//
// Three backends are included: [FileCache] for CLI runs, [RedisCache]
// for shared server deployments, and [NullCache] for disabling caching
// entirely. Keys are derived by a [Keyer]; wrap one in [NewScopedKeyer]
// when separate namespaces share a backend.
package cache

import (
	"context"
	"time"
)

// Cache is the storage interface shared by all backends.
// Implementations must be safe for concurrent use.
type Cache interface {
	// Get retrieves the entry stored under key. The second return value
	// reports whether the key was present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero or less means the entry
	// never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes the entry stored under key. Deleting a missing key
	// is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the backend.
	Close() error
}
