package cache

import (
	"context"
	"errors"
	"time"
)

// ErrMiss is returned by Cache.Get when the key is absent or expired.
var ErrMiss = errors.New("cache miss")

// Cache is a keyed byte store with per-entry expiry.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	Ping(ctx context.Context) error
}
