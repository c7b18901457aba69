package cache

import (
	"context"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/polkiloo/bilemo/internal/config"
)

// Module wires the Redis client and the cache-aside helper.
var Module = fx.Options(
	fx.Provide(
		newRedisClient,
		fx.Annotate(NewRedisCache, fx.As(new(Cache))),
		newAside,
	),
	fx.Invoke(registerLifecycle),
)

func newRedisClient(cfg *config.Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
}

type asideParams struct {
	fx.In

	Cache    Cache
	Config   *config.Config
	Logger   *zap.Logger
	Recorder Recorder `optional:"true"`
}

func newAside(p asideParams) *Aside {
	return NewAside(p.Cache, p.Config.CacheTTL, p.Logger.Named("cache"), p.Recorder)
}

func registerLifecycle(lc fx.Lifecycle, client *redis.Client) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})
}
