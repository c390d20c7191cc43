package http

import (
	"github.com/gin-gonic/gin"
)

// PublicRouteGroup defines a group of API routes mounted under /api.
type PublicRouteGroup interface {
	// RegisterPublicRoutes registers the group's routes to the given router group.
	RegisterPublicRoutes(rg *gin.RouterGroup)
}

// SettingsRoutes handles origin settings route registration.
type SettingsRoutes struct {
	handler *SettingsHandler
}

// NewSettingsRoutes creates a new SettingsRoutes instance.
func NewSettingsRoutes(handler *SettingsHandler) *SettingsRoutes {
	return &SettingsRoutes{handler: handler}
}

// RegisterPublicRoutes registers the settings routes.
func (r *SettingsRoutes) RegisterPublicRoutes(rg *gin.RouterGroup) {
	settings := rg.Group("/settings")
	settings.GET("/origin", r.handler.GetOrigin)
	settings.PUT("/origin", r.handler.SaveOrigin)
	settings.PUT("/theme", r.handler.SaveTheme)
}

// CatalogRoutes handles item and packaging route registration.
type CatalogRoutes struct {
	items     *ItemsHandler
	packaging *PackagingHandler
}

// NewCatalogRoutes creates a new CatalogRoutes instance.
func NewCatalogRoutes(items *ItemsHandler, packaging *PackagingHandler) *CatalogRoutes {
	return &CatalogRoutes{items: items, packaging: packaging}
}

// RegisterPublicRoutes registers the item and packaging CRUD routes.
func (r *CatalogRoutes) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/items", r.items.List)
	rg.POST("/items", r.items.Create)
	rg.PUT("/items/:id", r.items.Update)
	rg.DELETE("/items/:id", r.items.Delete)

	rg.GET("/packaging", r.packaging.List)
	rg.POST("/packaging", r.packaging.Create)
	rg.PUT("/packaging/:id", r.packaging.Update)
	rg.DELETE("/packaging/:id", r.packaging.Delete)
}

// QuoteRoutes handles quote route registration.
type QuoteRoutes struct {
	handler *QuoteHandler
}

// NewQuoteRoutes creates a new QuoteRoutes instance.
func NewQuoteRoutes(handler *QuoteHandler) *QuoteRoutes {
	return &QuoteRoutes{handler: handler}
}

// RegisterPublicRoutes registers POST /quotes.
func (r *QuoteRoutes) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.POST("/quotes", r.handler.Create)
}
