// Package cache keeps rendered artifacts in memory so repeated renders of
// the same frame skip the sinks. Nothing is written to disk.
//
// Keys come from [Key], which hashes everything that affects the output:
// the geometry fingerprint, pointer position, colours, labels, the format
// and its render options. Entries can expire; a zero TTL keeps them until
// they are deleted or the cache is cleared.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"
)

// Cache is a byte store keyed by string.
type Cache interface {
	// Get returns the stored value and true, or false on a miss.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data under key. A ttl of zero never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Key builds a cache key "prefix:" followed by the SHA-256 of the JSON
// encoding of parts. parts must be JSON-encodable.
func Key(prefix string, parts ...any) string {
	data, _ := json.Marshal(parts)
	return prefix + ":" + Hash(data)
}

// Hash returns the SHA-256 of data as 64 hex characters.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
