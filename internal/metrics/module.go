package metrics

import (
	"go.uber.org/fx"

	"github.com/polkiloo/bilemo/internal/cache"
)

// Module provides the collectors and feeds cache events into them.
var Module = fx.Provide(
	New,
	func(m *Metrics) cache.Recorder { return m },
)
