package http

import (
	"github.com/gin-gonic/gin"
	"github.com/guttosm/postage-comparator/internal/domain/model"
	"github.com/guttosm/postage-comparator/internal/service"
)

// PackagingHandler serves the packaging catalog routes.
type PackagingHandler struct {
	packaging service.PackagingService
}

// NewPackagingHandler creates a new PackagingHandler instance.
func NewPackagingHandler(packaging service.PackagingService) *PackagingHandler {
	return &PackagingHandler{packaging: packaging}
}

// List handles GET /api/packaging requests.
//
// @Summary      List packaging
// @Description  Returns every packaging profile in insertion order.
// @Tags         Packaging
// @Produce      json
// @Success      200 {array}  model.Packaging "Packaging profiles"
// @Failure      503 {object} dto.ErrorResponse "Storage unavailable"
// @Router       /api/packaging [get]
func (h *PackagingHandler) List(c *gin.Context) {
	builder := NewResponseBuilder(c)

	packaging, err := h.packaging.List(c.Request.Context())
	if err != nil {
		builder.ServiceError(err)
		return
	}
	if packaging == nil {
		packaging = []model.Packaging{}
	}

	builder.SuccessOK(packaging)
}

// Create handles POST /api/packaging requests.
//
// @Summary      Create packaging
// @Description  Adds a packaging profile. internalVolumeCubicCm defaults to length × width × height.
// @Tags         Packaging
// @Accept       json
// @Produce      json
// @Param        request body model.PackagingInput true "Packaging without id"
// @Success      201 {object} model.Packaging "Created packaging"
// @Failure      400 {object} dto.ErrorResponse "Validation failed or duplicate name"
// @Failure      503 {object} dto.ErrorResponse "Storage unavailable"
// @Router       /api/packaging [post]
func (h *PackagingHandler) Create(c *gin.Context) {
	req, ok := BindJSON[model.PackagingInput](c)
	if !ok {
		return
	}

	builder := NewResponseBuilder(c)
	packaging, err := h.packaging.Create(c.Request.Context(), *req)
	if err != nil {
		builder.ServiceError(err)
		return
	}

	builder.SuccessCreated(packaging)
}

// Update handles PUT /api/packaging/{id} requests.
//
// @Summary      Update packaging
// @Description  Merges positive dimensions and cost. The volume is recomputed when a dimension changes and no volume is given.
// @Tags         Packaging
// @Accept       json
// @Produce      json
// @Param        id path string true "Packaging id"
// @Param        request body model.PackagingInput true "Packaging fields"
// @Success      200 {object} model.Packaging "Updated packaging"
// @Failure      400 {object} dto.ErrorResponse "Validation failed or duplicate name"
// @Failure      404 {object} dto.ErrorResponse "Packaging not found"
// @Router       /api/packaging/{id} [put]
func (h *PackagingHandler) Update(c *gin.Context) {
	req, ok := BindJSON[model.PackagingInput](c)
	if !ok {
		return
	}

	builder := NewResponseBuilder(c)
	packaging, err := h.packaging.Update(c.Request.Context(), c.Param("id"), *req)
	if err != nil {
		builder.ServiceError(err)
		return
	}

	builder.SuccessOK(packaging)
}

// Delete handles DELETE /api/packaging/{id} requests.
//
// @Summary      Delete packaging
// @Tags         Packaging
// @Param        id path string true "Packaging id"
// @Success      204 "Deleted"
// @Failure      404 {object} dto.ErrorResponse "Packaging not found"
// @Router       /api/packaging/{id} [delete]
func (h *PackagingHandler) Delete(c *gin.Context) {
	if err := h.packaging.Delete(c.Request.Context(), c.Param("id")); err != nil {
		NewResponseBuilder(c).ServiceError(err)
		return
	}
	NewResponseBuilder(c).NoContent()
}
