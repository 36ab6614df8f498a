package service

import (
	"context"
	"time"
)

// Cache is a JSON value cache used for product listings.
type Cache interface {
	// Get decodes the cached value into dest and reports whether the key existed.
	Get(ctx context.Context, key string, dest any) (bool, error)

	Set(ctx context.Context, key string, value any, ttl time.Duration) error

	Delete(ctx context.Context, keys ...string) error

	// DeletePattern removes every key matching a glob pattern such as "products:*".
	DeletePattern(ctx context.Context, pattern string) error
}
