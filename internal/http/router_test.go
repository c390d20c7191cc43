package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/postage-comparator/internal/mocks"
	"github.com/stretchr/testify/assert"
)

func TestRouter_Endpoints(t *testing.T) {
	router, _ := newTestAPI(t)

	tests := []struct {
		method string
		path   string
		status int
	}{
		{http.MethodGet, "/healthz", http.StatusOK},
		{http.MethodGet, "/readyz", http.StatusOK},
		{http.MethodGet, "/metrics", http.StatusOK},
		{http.MethodGet, "/swagger/index.html", http.StatusOK},
		// empty body fails binding before the service is reached
		{http.MethodPost, "/api/quotes", http.StatusBadRequest},
		{http.MethodGet, "/api/carriers", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.status, w.Code)
			assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
		})
	}
}

func TestRouter_SwaggerBasicAuth(t *testing.T) {
	cfg := DefaultRouterConfig()
	cfg.SwaggerUser = "docs"
	cfg.SwaggerPass = "secret"
	router := NewRouter(NewHealthHandler(), cfg)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/swagger/index.html", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req := httptest.NewRequest(http.MethodGet, "/swagger/index.html", nil)
	req.SetBasicAuth("docs", "secret")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_CORS(t *testing.T) {
	cfg := DefaultRouterConfig()
	cfg.CORSOrigins = []string{"http://quoter.local"}
	router := NewRouter(NewHealthHandler(), cfg)

	req := httptest.NewRequest(http.MethodOptions, "/api/items", nil)
	req.Header.Set("Origin", "http://quoter.local")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://quoter.local", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestApiRouteGroups(t *testing.T) {
	tests := []struct {
		name     string
		cfg      RouterConfig
		expected int
	}{
		{
			name:     "no services registers nothing",
			cfg:      RouterConfig{},
			expected: 0,
		},
		{
			name: "catalog needs both item and packaging services",
			cfg: RouterConfig{
				ItemService: &mocks.MockItemService{},
			},
			expected: 0,
		},
		{
			name: "every service registers its group",
			cfg: RouterConfig{
				SettingsService:  &mocks.MockSettingsService{},
				ItemService:      &mocks.MockItemService{},
				PackagingService: &mocks.MockPackagingService{},
				QuoteService:     &mocks.MockQuoteService{},
			},
			expected: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, apiRouteGroups(&tt.cfg), tt.expected)
		})
	}
}

func TestRouteGroups_RegisterPublicRoutes(t *testing.T) {
	router := gin.New()
	api := router.Group("/api")
	NewSettingsRoutes(NewSettingsHandler(&mocks.MockSettingsService{})).RegisterPublicRoutes(api)
	NewCatalogRoutes(
		NewItemsHandler(&mocks.MockItemService{}),
		NewPackagingHandler(&mocks.MockPackagingService{}),
	).RegisterPublicRoutes(api)
	NewQuoteRoutes(NewQuoteHandler(&mocks.MockQuoteService{})).RegisterPublicRoutes(api)

	registered := make(map[string]bool)
	for _, route := range router.Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	for _, route := range []string{
		"GET /api/settings/origin",
		"PUT /api/settings/origin",
		"PUT /api/settings/theme",
		"GET /api/items",
		"POST /api/items",
		"PUT /api/items/:id",
		"DELETE /api/items/:id",
		"GET /api/packaging",
		"POST /api/packaging",
		"PUT /api/packaging/:id",
		"DELETE /api/packaging/:id",
		"POST /api/quotes",
	} {
		assert.True(t, registered[route], "route %s not registered", route)
	}
}
