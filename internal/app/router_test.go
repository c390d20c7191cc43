//go:build !integration

package app

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/postage-comparator/config"
	"github.com/guttosm/postage-comparator/internal/circuitbreaker"
	"github.com/guttosm/postage-comparator/internal/mocks"
	"github.com/stretchr/testify/assert"
)

func TestInitializeRouter(t *testing.T) {
	services := &ServiceComponents{
		Settings:  &mocks.MockSettingsService{},
		Items:     &mocks.MockItemService{},
		Packaging: &mocks.MockPackagingService{},
		Quotes:    &mocks.MockQuoteService{},
	}
	breaker := circuitbreaker.New(circuitbreaker.Config{Name: "mongodb_items", FailureThreshold: 1, SuccessThreshold: 1, Timeout: time.Second})

	tests := []struct {
		name     string
		services *ServiceComponents
		storage  *StorageComponents
		cfg      config.ServerConfig
		validate func(*testing.T, *RouterComponents)
	}{
		{
			name:     "copies server settings and services",
			services: services,
			cfg: config.ServerConfig{
				CORSOrigins:    []string{"http://localhost:5173"},
				RequestTimeout: 3 * time.Second,
				SwaggerUser:    "docs",
				SwaggerPass:    "secret",
			},
			validate: func(t *testing.T, c *RouterComponents) {
				assert.NotNil(t, c.HealthHandler)
				assert.Equal(t, []string{"http://localhost:5173"}, c.Config.CORSOrigins)
				assert.Equal(t, 3*time.Second, c.Config.RequestTimeout)
				assert.Equal(t, "docs", c.Config.SwaggerUser)
				assert.Equal(t, "secret", c.Config.SwaggerPass)
				assert.Same(t, services.Settings, c.Config.SettingsService)
				assert.Same(t, services.Quotes, c.Config.QuoteService)
			},
		},
		{
			name:     "keeps default request timeout when unset",
			services: services,
			validate: func(t *testing.T, c *RouterComponents) {
				assert.Equal(t, 15*time.Second, c.Config.RequestTimeout)
			},
		},
		{
			name: "nil services leave the API unrouted",
			validate: func(t *testing.T, c *RouterComponents) {
				assert.Nil(t, c.Config.SettingsService)
				assert.Nil(t, c.Config.ItemService)
				assert.Nil(t, c.Config.PackagingService)
				assert.Nil(t, c.Config.QuoteService)
			},
		},
		{
			name:     "registers storage breakers",
			services: services,
			storage:  &StorageComponents{CircuitBreakers: []*circuitbreaker.CircuitBreaker{breaker}},
			validate: func(t *testing.T, c *RouterComponents) {
				router := gin.New()
				c.HealthHandler.Register(router)

				w := httptest.NewRecorder()
				router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))

				assert.Equal(t, http.StatusOK, w.Code)
				assert.JSONEq(t, `{"status":"ok","checks":{"mongodb_items_circuit":"closed"}}`, w.Body.String())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, InitializeRouter(tt.services, tt.storage, tt.cfg))
		})
	}
}
