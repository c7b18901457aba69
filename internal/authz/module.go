package authz

import (
	"github.com/casbin/casbin/v2"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Module provides the casbin backed Authorizer.
var Module = fx.Provide(
	NewEnforcer,
	func(e *casbin.SyncedEnforcer, log *zap.Logger) Authorizer {
		return NewService(e, log.Named("authz"))
	},
)
