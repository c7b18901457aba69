package router

import (
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/polkiloo/bilemo/internal/authz"
	"github.com/polkiloo/bilemo/internal/metrics"
	"github.com/polkiloo/bilemo/internal/server/http/handlers"
	"github.com/polkiloo/bilemo/internal/server/http/middleware"
)

// Params lists the router dependencies.
type Params struct {
	fx.In

	Facade     handlers.CatalogFacade
	Health     handlers.HealthChecker
	Authorizer authz.Authorizer
	Metrics    *metrics.Metrics
	Logger     *zap.Logger
}

// Setup configures gin router with handlers and middleware.
func Setup(p Params) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestID())
	engine.Use(middleware.RequestLogger(p.Logger.Named("http")))
	engine.Use(middleware.Metrics(p.Metrics))
	engine.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithDecompressFn(middleware.InflateRequestBody)))

	authHandler := handlers.NewAuthHandler(p.Facade)
	customerHandler := handlers.NewCustomerHandler(p.Facade)
	productHandler := handlers.NewProductHandler(p.Facade)
	userHandler := handlers.NewUserHandler(p.Facade)
	healthHandler := handlers.NewHealthHandler(p.Health)

	engine.GET("/healthz", healthHandler.Check)
	engine.GET("/metrics", gin.WrapH(p.Metrics.Handler()))

	can := func(object, action string) gin.HandlerFunc {
		return middleware.Authorize(p.Authorizer, object, action)
	}

	api := engine.Group("/api")
	api.POST("/login_check", authHandler.Login)
	api.Use(middleware.Authenticate(p.Facade))

	customer := api.Group("/customer")
	customer.GET("", can(authz.ObjectCustomer, authz.ActionCustomerView), customerHandler.List)
	customer.POST("/add", can(authz.ObjectCustomer, authz.ActionCustomerCreate), customerHandler.Add)
	customer.GET("/:id", can(authz.ObjectCustomer, authz.ActionCustomerView), customerHandler.Detail)
	customer.GET("/:id/list", can(authz.ObjectCustomer, authz.ActionCustomerView), customerHandler.Users)

	product := api.Group("/product")
	product.GET("", can(authz.ObjectProduct, authz.ActionProductView), productHandler.List)
	product.GET("/:id", can(authz.ObjectProduct, authz.ActionProductView), productHandler.Detail)

	user := api.Group("/user")
	user.POST("/add", can(authz.ObjectUser, authz.ActionUserCreate), userHandler.Add)
	user.DELETE("/delete/:id", can(authz.ObjectUser, authz.ActionUserDelete), userHandler.Delete)
	user.GET("/:id", can(authz.ObjectUser, authz.ActionUserView), userHandler.Detail)

	return engine
}
