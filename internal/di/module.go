package di

import (
	"go.uber.org/fx"

	"github.com/polkiloo/bilemo/internal/app"
	"github.com/polkiloo/bilemo/internal/authz"
	"github.com/polkiloo/bilemo/internal/cache"
	"github.com/polkiloo/bilemo/internal/config"
	"github.com/polkiloo/bilemo/internal/logger"
	"github.com/polkiloo/bilemo/internal/metrics"
	"github.com/polkiloo/bilemo/internal/pkg/auth"
	"github.com/polkiloo/bilemo/internal/server/http/handlers"
	"github.com/polkiloo/bilemo/internal/server/http/router"
	"github.com/polkiloo/bilemo/internal/storage/postgres"
	"github.com/polkiloo/bilemo/internal/usecase"
)

// Module composes the API server graph. opts are appended last so callers can
// replace any provided value.
func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		authz.Module,
		postgres.Module,
		cache.Module,
		metrics.Module,
		usecase.Module,
		fx.Provide(
			func(f *app.CatalogFacade) handlers.CatalogFacade { return f },
			func(p *app.HealthProbe) handlers.HealthChecker { return p },
			func(s *postgres.Storage) app.DatabasePinger { return s },
			func(a *cache.Aside) app.CachePinger { return a },
		),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
