package http

import (
	"github.com/gin-gonic/gin"
	"github.com/guttosm/postage-comparator/internal/domain/model"
	"github.com/guttosm/postage-comparator/internal/service"
)

// QuoteHandler serves shipment quoting.
type QuoteHandler struct {
	quotes service.QuoteService
}

// NewQuoteHandler creates a new QuoteHandler instance.
func NewQuoteHandler(quotes service.QuoteService) *QuoteHandler {
	return &QuoteHandler{quotes: quotes}
}

// Create handles POST /api/quotes requests.
//
// @Summary      Quote a shipment
// @Description  Aggregates the weight of the selected items and asks every enabled carrier for a price from the saved origin to the destination. Carriers that cannot price the shipment are skipped.
// @Tags         Quotes
// @Accept       json
// @Produce      json
// @Param        request body model.ShipmentRequest true "Destination, items and packaging"
// @Success      200 {object} model.QuoteResult "Quotes"
// @Failure      400 {object} dto.ErrorResponse "Validation failed or malformed body"
// @Failure      404 {object} dto.ErrorResponse "Unknown item or packaging"
// @Failure      422 {object} dto.ErrorResponse "Origin settings missing or no carrier quote available"
// @Failure      503 {object} dto.ErrorResponse "Storage unavailable"
// @Failure      504 {object} dto.ErrorResponse "Request timeout"
// @Router       /api/quotes [post]
func (h *QuoteHandler) Create(c *gin.Context) {
	req, ok := BindJSON[model.ShipmentRequest](c)
	if !ok {
		return
	}

	builder := NewResponseBuilder(c)
	result, err := h.quotes.Quote(c.Request.Context(), *req)
	if err != nil {
		builder.ServiceError(err)
		return
	}

	builder.SuccessOK(result)
}
