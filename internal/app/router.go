package app

import (
	"github.com/guttosm/postage-comparator/config"
	"github.com/guttosm/postage-comparator/internal/http"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// InitializeRouter builds the health handler and router configuration for the wired services.
func InitializeRouter(services *ServiceComponents, storage *StorageComponents, cfg config.ServerConfig) *RouterComponents {
	healthHandler := http.NewHealthHandler()

	if storage != nil {
		if storage.Stores.Health != nil {
			healthHandler.RegisterChecker("storage", http.StorageChecker{Storage: storage.Stores.Health})
		}
		// Register circuit breakers for health monitoring
		for _, cb := range storage.CircuitBreakers {
			healthHandler.RegisterCircuitBreaker(cb.Name(), cb)
		}
	}

	routerCfg := http.DefaultRouterConfig()
	routerCfg.CORSOrigins = cfg.CORSOrigins
	routerCfg.SwaggerUser = cfg.SwaggerUser
	routerCfg.SwaggerPass = cfg.SwaggerPass
	if cfg.RequestTimeout > 0 {
		routerCfg.RequestTimeout = cfg.RequestTimeout
	}
	if services != nil {
		routerCfg.SettingsService = services.Settings
		routerCfg.ItemService = services.Items
		routerCfg.PackagingService = services.Packaging
		routerCfg.QuoteService = services.Quotes
	}

	return &RouterComponents{
		HealthHandler: healthHandler,
		Config:        routerCfg,
	}
}
