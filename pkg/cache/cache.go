// Package cache stores small opaque values keyed by string.
//
// The pre-compile pipeline uses it as a content ledger: after a source file
// has been rewritten for a given import request, the hash of the result is
// recorded so that an unchanged file is not parsed again on the next run.
//
// Two backends are provided:
//
//   - [FileCache] keeps entries as JSON files under a directory
//   - [NullCache] stores nothing and is used when caching is disabled
package cache

import (
	"context"
	"time"
)

// Cache is a key/value store with optional expiry.
type Cache interface {
	// Get returns the value for key. A miss is reported by ok == false and
	// is not an error.
	Get(ctx context.Context, key string) (data []byte, ok bool, err error)

	// Set stores data under key. A zero ttl never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	Close() error
}
