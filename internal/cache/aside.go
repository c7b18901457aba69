package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Recorder receives cache hit and miss events per key family.
type Recorder interface {
	CacheHit(family string)
	CacheMiss(family string)
}

type nopRecorder struct{}

func (nopRecorder) CacheHit(string)  {}
func (nopRecorder) CacheMiss(string) {}

// Aside implements cache-aside reads over a Cache backend.
type Aside struct {
	cache    Cache
	group    singleflight.Group
	logger   *zap.Logger
	recorder Recorder
	ttl      time.Duration
}

// NewAside builds a helper; a nil recorder disables hit/miss reporting.
func NewAside(c Cache, ttl time.Duration, logger *zap.Logger, recorder Recorder) *Aside {
	if logger == nil {
		logger = zap.NewNop()
	}
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return &Aside{cache: c, logger: logger, recorder: recorder, ttl: ttl}
}

// TTL returns the default entry lifetime.
func (a *Aside) TTL() time.Duration {
	return a.ttl
}

// Ping checks the backend.
func (a *Aside) Ping(ctx context.Context) error {
	return a.cache.Ping(ctx)
}

// GetOrLoad returns the value cached under key or loads, stores and returns it.
// Loader errors are returned and never cached. Backend failures are logged
// and the loader result is served instead.
func GetOrLoad[T any](ctx context.Context, a *Aside, key string, ttl time.Duration, load func(context.Context) (T, error)) (T, error) {
	fam := family(key)

	if value, ok := a.lookup(ctx, key); ok {
		var out T
		err := json.Unmarshal(value, &out)
		if err == nil {
			a.recorder.CacheHit(fam)
			return out, nil
		}
		a.logger.Warn("discard undecodable cache entry", zap.String("key", key), zap.Error(err))
	}
	a.recorder.CacheMiss(fam)

	// callers collapsed onto one load must not inherit the first caller's cancellation
	loadCtx := context.WithoutCancel(ctx)
	v, err, _ := a.group.Do(key, func() (any, error) {
		loaded, err := load(loadCtx)
		if err != nil {
			return nil, err
		}
		a.store(loadCtx, key, loaded, ttl)
		return loaded, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return v.(T), nil
}

// Invalidate drops the given keys; failures are logged.
func (a *Aside) Invalidate(ctx context.Context, keys ...string) {
	if err := a.cache.Delete(ctx, keys...); err != nil {
		a.logger.Warn("cache invalidation failed", zap.Strings("keys", keys), zap.Error(err))
	}
}

func (a *Aside) lookup(ctx context.Context, key string) ([]byte, bool) {
	value, err := a.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrMiss) {
			a.logger.Warn("cache read failed", zap.String("key", key), zap.Error(err))
		}
		return nil, false
	}
	return value, true
}

func (a *Aside) store(ctx context.Context, key string, value any, ttl time.Duration) {
	if ttl <= 0 {
		ttl = a.ttl
	}
	data, err := json.Marshal(value)
	if err != nil {
		a.logger.Warn("cache encode failed", zap.String("key", key), zap.Error(err))
		return
	}
	if err := a.cache.Set(ctx, key, data, ttl); err != nil {
		a.logger.Warn("cache write failed", zap.String("key", key), zap.Error(err))
	}
}
