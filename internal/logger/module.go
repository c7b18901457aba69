package logger

import (
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"github.com/polkiloo/bilemo/internal/config"
)

// Module wires the zap logger and routes fx events through it.
var Module = fx.Options(
	fx.Provide(newFromConfig),
	fx.WithLogger(func(l *zap.Logger) fxevent.Logger {
		return &fxevent.ZapLogger{Logger: l.Named("fx")}
	}),
	fx.Invoke(registerSync),
)

func newFromConfig(cfg *config.Config) (*zap.Logger, error) {
	return New(cfg.LogLevel)
}

func registerSync(lc fx.Lifecycle, l *zap.Logger) {
	lc.Append(fx.StopHook(func() {
		_ = l.Sync()
	}))
}
