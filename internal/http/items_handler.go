package http

import (
	"github.com/gin-gonic/gin"
	"github.com/guttosm/postage-comparator/internal/domain/model"
	"github.com/guttosm/postage-comparator/internal/service"
)

// ItemsHandler serves the item catalog routes.
type ItemsHandler struct {
	items service.ItemService
}

// NewItemsHandler creates a new ItemsHandler instance.
func NewItemsHandler(items service.ItemService) *ItemsHandler {
	return &ItemsHandler{items: items}
}

// List handles GET /api/items requests.
//
// @Summary      List items
// @Description  Returns every item in insertion order.
// @Tags         Items
// @Produce      json
// @Success      200 {array}  model.Item "Items"
// @Failure      503 {object} dto.ErrorResponse "Storage unavailable"
// @Router       /api/items [get]
func (h *ItemsHandler) List(c *gin.Context) {
	builder := NewResponseBuilder(c)

	items, err := h.items.List(c.Request.Context())
	if err != nil {
		builder.ServiceError(err)
		return
	}
	if items == nil {
		items = []model.Item{}
	}

	builder.SuccessOK(items)
}

// Create handles POST /api/items requests.
//
// @Summary      Create item
// @Description  Adds an item. Names are unique ignoring case.
// @Tags         Items
// @Accept       json
// @Produce      json
// @Param        request body model.ItemInput true "Item without id"
// @Success      201 {object} model.Item "Created item"
// @Failure      400 {object} dto.ErrorResponse "Validation failed or duplicate name"
// @Failure      503 {object} dto.ErrorResponse "Storage unavailable"
// @Router       /api/items [post]
func (h *ItemsHandler) Create(c *gin.Context) {
	req, ok := BindJSON[model.ItemInput](c)
	if !ok {
		return
	}

	builder := NewResponseBuilder(c)
	item, err := h.items.Create(c.Request.Context(), *req)
	if err != nil {
		builder.ServiceError(err)
		return
	}

	builder.SuccessCreated(item)
}

// Update handles PUT /api/items/{id} requests.
//
// @Summary      Update item
// @Description  Merges the non-blank name, non-null description and positive weight into the item.
// @Tags         Items
// @Accept       json
// @Produce      json
// @Param        id path string true "Item id"
// @Param        request body model.ItemInput true "Item fields"
// @Success      200 {object} model.Item "Updated item"
// @Failure      400 {object} dto.ErrorResponse "Validation failed or duplicate name"
// @Failure      404 {object} dto.ErrorResponse "Item not found"
// @Router       /api/items/{id} [put]
func (h *ItemsHandler) Update(c *gin.Context) {
	req, ok := BindJSON[model.ItemInput](c)
	if !ok {
		return
	}

	builder := NewResponseBuilder(c)
	item, err := h.items.Update(c.Request.Context(), c.Param("id"), *req)
	if err != nil {
		builder.ServiceError(err)
		return
	}

	builder.SuccessOK(item)
}

// Delete handles DELETE /api/items/{id} requests.
//
// @Summary      Delete item
// @Tags         Items
// @Param        id path string true "Item id"
// @Success      204 "Deleted"
// @Failure      404 {object} dto.ErrorResponse "Item not found"
// @Router       /api/items/{id} [delete]
func (h *ItemsHandler) Delete(c *gin.Context) {
	builder := NewResponseBuilder(c)

	if err := h.items.Delete(c.Request.Context(), c.Param("id")); err != nil {
		builder.ServiceError(err)
		return
	}

	builder.NoContent()
}
