package cache

import (
	"context"
	"errors"
	"time"
)

// ErrKeyNotFound is returned by Get when the key does not exist.
var ErrKeyNotFound = errors.New("key not found")

// Cache defines the key-value operations the application stores state with.
// This is a port that can be implemented by different providers (Redis, in-memory, etc.).
type Cache interface {
	// Get retrieves a value by key.
	// Returns an error wrapping ErrKeyNotFound when the key is missing.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value with the specified key and TTL.
	// TTL of 0 means no expiration.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Incr atomically increments the integer stored at key and returns the new value.
	// A missing key starts from zero.
	Incr(ctx context.Context, key string) (int64, error)

	// Ping checks if the backing service is reachable.
	Ping(ctx context.Context) error

	// Close closes the connection.
	Close() error
}
