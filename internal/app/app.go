// Package app wires configuration, storage, services and the HTTP router into a runnable API.
package app

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/postage-comparator/config"
	"github.com/guttosm/postage-comparator/internal/http"
)

// Application is the wired postage API.
type Application struct {
	Router  *gin.Engine
	storage *StorageComponents
}

// InitializeApp creates and wires all application dependencies.
// The caller owns the returned Application and must Close it.
func InitializeApp(cfg config.Config) (*Application, error) {
	// Initialize logger first (needed by other components)
	InitializeLogger()

	storage, err := InitializeStorage(cfg)
	if err != nil {
		return nil, fmt.Errorf("initialize storage: %w", err)
	}

	services, err := InitializeServices(cfg.Quote, storage.Stores)
	if err != nil {
		_ = storage.Close(context.Background())
		return nil, fmt.Errorf("initialize services: %w", err)
	}

	routerComponents := InitializeRouter(services, storage, cfg.Server)

	return &Application{
		Router:  http.NewRouter(routerComponents.HealthHandler, routerComponents.Config),
		storage: storage,
	}, nil
}

// Close releases the storage backend.
func (a *Application) Close(ctx context.Context) error {
	if a == nil || a.storage == nil {
		return nil
	}
	return a.storage.Close(ctx)
}
