package persistence

import (
	"context"
	"time"
)

// Cache is a key/value store for serialized listings
type Cache interface {
	// Get decodes the value at key into dest and reports whether it was found
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error

	// DeleteByPrefix removes every key starting with prefix
	DeleteByPrefix(ctx context.Context, prefix string) error
}
