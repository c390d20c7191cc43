package http

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/postage-comparator/internal/circuitbreaker"
	"github.com/guttosm/postage-comparator/internal/domain/dto"
	"github.com/guttosm/postage-comparator/internal/i18n"
	"github.com/guttosm/postage-comparator/internal/middleware"
	"github.com/guttosm/postage-comparator/internal/service"
)

// Error envelope pool for reducing allocations.
var errorResponsePool = sync.Pool{
	New: func() interface{} {
		return &dto.ErrorResponse{}
	},
}

// getErrorResponse retrieves an ErrorResponse from the pool.
func getErrorResponse() *dto.ErrorResponse {
	if resp, ok := errorResponsePool.Get().(*dto.ErrorResponse); ok {
		return resp
	}
	return &dto.ErrorResponse{}
}

// putErrorResponse returns an ErrorResponse to the pool.
func putErrorResponse(resp *dto.ErrorResponse) {
	resp.Error = dto.ErrorBody{}
	errorResponsePool.Put(resp)
}

// BindJSON binds and validates the request body into T.
// On failure it has already written the 400 envelope and returns false.
func BindJSON[T any](c *gin.Context) (*T, bool) {
	var req T
	if err := c.ShouldBindJSON(&req); err != nil {
		b := NewResponseBuilder(c)
		bindErr := classifyBindError(err)
		if bindErr.malformed || bindErr.message == "" {
			b.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, bindErr)
		} else {
			b.ErrorWithMessage(http.StatusBadRequest, bindErr.message, bindErr)
		}
		return nil, false
	}
	return &req, true
}

// ResponseBuilder writes success bodies and error envelopes.
// Success bodies are the resource itself; errors use the pooled envelope.
type ResponseBuilder struct {
	c *gin.Context
}

// NewResponseBuilder creates a new response builder for the given context.
func NewResponseBuilder(c *gin.Context) *ResponseBuilder {
	return &ResponseBuilder{c: c}
}

// Success sends data as the JSON body with the given status.
func (b *ResponseBuilder) Success(statusCode int, data interface{}) {
	b.c.JSON(statusCode, data)
}

// SuccessOK sends a 200 OK response with the given data.
func (b *ResponseBuilder) SuccessOK(data interface{}) {
	b.Success(http.StatusOK, data)
}

// SuccessCreated sends a 201 Created response with the given data.
func (b *ResponseBuilder) SuccessCreated(data interface{}) {
	b.Success(http.StatusCreated, data)
}

// NoContent sends a 204 with no body.
func (b *ResponseBuilder) NoContent() {
	b.c.Status(http.StatusNoContent)
	b.c.Writer.WriteHeaderNow()
}

// Error sends an error envelope with the translated message for messageKey.
func (b *ResponseBuilder) Error(statusCode int, messageKey string, err error) {
	message := i18n.GetTranslator().Translate(messageKey, i18n.GetLocale(b.c))
	b.ErrorWithMessage(statusCode, message, err)
}

// ErrorWithMessage sends an error envelope with a message shown as is.
func (b *ResponseBuilder) ErrorWithMessage(statusCode int, message string, err error) {
	resp := getErrorResponse()
	resp.Error = dto.ErrorBody{
		Code:      dto.ErrCodeFromStatus(statusCode),
		Message:   message,
		Timestamp: time.Now().UTC(),
		RequestID: middleware.GetRequestID(b.c),
	}

	// Add error to context for error handler middleware to log
	if err != nil {
		_ = b.c.Error(err)
	}

	b.c.AbortWithStatusJSON(statusCode, resp)

	// Gin serializes synchronously, so the envelope can go back to the pool.
	putErrorResponse(resp)
}

// ServiceError maps an error returned by the service layer to its HTTP response.
func (b *ResponseBuilder) ServiceError(err error) {
	var validationErr *service.ValidationError
	var notFoundErr *service.NotFoundError

	switch {
	case errors.As(err, &validationErr):
		b.ErrorWithMessage(http.StatusBadRequest, validationErr.Message, err)
	case errors.As(err, &notFoundErr):
		b.ErrorWithMessage(http.StatusNotFound, notFoundErr.Message, err)
	case errors.Is(err, service.ErrNotFound):
		b.Error(http.StatusNotFound, i18n.ErrKeyNotFound, err)
	case errors.Is(err, service.ErrOriginNotConfigured):
		b.Error(http.StatusUnprocessableEntity, i18n.ErrKeyOriginRequired, err)
	case errors.Is(err, service.ErrNoCarrierQuote):
		b.Error(http.StatusUnprocessableEntity, i18n.ErrKeyNoCarrierQuote, err)
	case errors.Is(err, circuitbreaker.ErrCircuitOpen),
		errors.Is(err, service.ErrRepositoryNotConfigured):
		b.Error(http.StatusServiceUnavailable, i18n.ErrKeyServiceUnavailable, err)
	case errors.Is(err, context.DeadlineExceeded):
		b.Error(http.StatusGatewayTimeout, i18n.ErrKeyTimeout, err)
	default:
		b.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
	}
}
