package http

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/guttosm/postage-comparator/internal/metrics"
	"github.com/guttosm/postage-comparator/internal/middleware"
	"github.com/guttosm/postage-comparator/internal/service"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RouterConfig holds router configuration options and the services behind the API.
// A nil service leaves its routes unregistered.
type RouterConfig struct {
	CORSOrigins    []string
	RequestTimeout time.Duration
	SwaggerUser    string
	SwaggerPass    string

	SettingsService  service.SettingsService
	ItemService      service.ItemService
	PackagingService service.PackagingService
	QuoteService     service.QuoteService
}

// DefaultRouterConfig returns the default router configuration.
func DefaultRouterConfig() RouterConfig {
	return RouterConfig{
		RequestTimeout: 15 * time.Second,
	}
}

// NewRouter creates and configures the Gin router for the postage API.
func NewRouter(healthHandler *HealthHandler, cfg RouterConfig) *gin.Engine {
	RegisterValidators()

	router := gin.New()

	// Configure global middleware
	configureGlobalMiddleware(router, &cfg)

	// Register infrastructure routes (health, metrics, swagger)
	registerInfrastructureRoutes(router, healthHandler, &cfg)

	api := router.Group("/api")
	if cfg.RequestTimeout > 0 {
		api.Use(middleware.TimeoutWithDuration(cfg.RequestTimeout))
	}
	for _, group := range apiRouteGroups(&cfg) {
		group.RegisterPublicRoutes(api)
	}

	return router
}

// configureGlobalMiddleware sets up middleware applied to all routes.
func configureGlobalMiddleware(router *gin.Engine, cfg *RouterConfig) {
	allowedOrigins := cfg.CORSOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"http://localhost:5173", "http://127.0.0.1:5173", "http://localhost:3000"}
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Content-Length", "Accept", "Accept-Encoding", "Accept-Language", "X-Request-ID"},
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	// Core middleware stack
	router.Use(
		middleware.RequestID(),
		middleware.Recovery(),
		metrics.PrometheusMiddleware(),
		middleware.Compression(),
		middleware.RequestLogger(),
		middleware.ErrorHandler(),
	)
}

// registerInfrastructureRoutes registers health, metrics, and documentation routes.
func registerInfrastructureRoutes(router *gin.Engine, healthHandler *HealthHandler, cfg *RouterConfig) {
	if healthHandler != nil {
		healthHandler.Register(router)
	}
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger with optional basic auth
	if cfg.SwaggerUser != "" && cfg.SwaggerPass != "" {
		authorized := router.Group("/swagger", gin.BasicAuth(gin.Accounts{
			cfg.SwaggerUser: cfg.SwaggerPass,
		}))
		authorized.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	} else {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
}

// apiRouteGroups builds the route groups for every configured service.
func apiRouteGroups(cfg *RouterConfig) []PublicRouteGroup {
	var groups []PublicRouteGroup
	if cfg.SettingsService != nil {
		groups = append(groups, NewSettingsRoutes(NewSettingsHandler(cfg.SettingsService)))
	}
	if cfg.ItemService != nil && cfg.PackagingService != nil {
		groups = append(groups, NewCatalogRoutes(
			NewItemsHandler(cfg.ItemService),
			NewPackagingHandler(cfg.PackagingService),
		))
	}
	if cfg.QuoteService != nil {
		groups = append(groups, NewQuoteRoutes(NewQuoteHandler(cfg.QuoteService)))
	}
	return groups
}
