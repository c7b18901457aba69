package seed

import "go.uber.org/fx"

// Module provides the Seeder. A Transactor must be supplied by the caller.
var Module = fx.Provide(New)
