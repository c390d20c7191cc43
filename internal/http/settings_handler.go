package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/postage-comparator/internal/domain/dto"
	"github.com/guttosm/postage-comparator/internal/domain/model"
	"github.com/guttosm/postage-comparator/internal/i18n"
	"github.com/guttosm/postage-comparator/internal/service"
)

// SettingsHandler serves the origin settings routes.
type SettingsHandler struct {
	settings service.SettingsService
}

// NewSettingsHandler creates a new SettingsHandler instance.
func NewSettingsHandler(settings service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settings: settings}
}

// GetOrigin handles GET /api/settings/origin requests.
//
// @Summary      Get origin settings
// @Description  Returns the saved origin address and theme preference. 404 when nothing has been saved yet.
// @Tags         Settings
// @Produce      json
// @Success      200 {object} model.OriginSettings "Saved origin settings"
// @Failure      404 {object} dto.ErrorResponse "Origin settings not found"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Failure      503 {object} dto.ErrorResponse "Storage unavailable"
// @Router       /api/settings/origin [get]
func (h *SettingsHandler) GetOrigin(c *gin.Context) {
	builder := NewResponseBuilder(c)

	settings, err := h.settings.Get(c.Request.Context())
	if err != nil {
		builder.ServiceError(err)
		return
	}
	if settings == nil {
		builder.Error(http.StatusNotFound, i18n.ErrKeyOriginNotFound, nil)
		return
	}

	builder.SuccessOK(settings)
}

// SaveOrigin handles PUT /api/settings/origin requests.
//
// @Summary      Save origin settings
// @Description  Replaces the origin address. A null themePreference keeps the stored theme; updatedAt is set by the server.
// @Tags         Settings
// @Accept       json
// @Produce      json
// @Param        request body model.OriginSettings true "Origin settings"
// @Success      200 {object} model.OriginSettings "Saved origin settings"
// @Failure      400 {object} dto.ErrorResponse "Validation failed or malformed body"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Failure      503 {object} dto.ErrorResponse "Storage unavailable"
// @Router       /api/settings/origin [put]
func (h *SettingsHandler) SaveOrigin(c *gin.Context) {
	req, ok := BindJSON[model.OriginSettings](c)
	if !ok {
		return
	}

	builder := NewResponseBuilder(c)
	saved, err := h.settings.Save(c.Request.Context(), *req)
	if err != nil {
		builder.ServiceError(err)
		return
	}

	builder.SuccessOK(saved)
}

// SaveTheme handles PUT /api/settings/theme requests.
//
// @Summary      Update theme preference
// @Description  Changes only the theme of the saved origin settings.
// @Tags         Settings
// @Accept       json
// @Produce      json
// @Param        request body dto.ThemePreferenceRequest true "Theme preference"
// @Success      200 {object} model.OriginSettings "Updated origin settings"
// @Failure      400 {object} dto.ErrorResponse "Unsupported theme"
// @Failure      404 {object} dto.ErrorResponse "Origin settings not found"
// @Failure      503 {object} dto.ErrorResponse "Storage unavailable"
// @Router       /api/settings/theme [put]
func (h *SettingsHandler) SaveTheme(c *gin.Context) {
	req, ok := BindJSON[dto.ThemePreferenceRequest](c)
	if !ok {
		return
	}

	builder := NewResponseBuilder(c)
	saved, err := h.settings.SetTheme(c.Request.Context(), *req.ThemePreference)
	if err != nil {
		builder.ServiceError(err)
		return
	}

	builder.SuccessOK(saved)
}
