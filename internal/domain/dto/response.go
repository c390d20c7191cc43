package dto

import (
	"net/http"
	"time"
)

const (
	// ErrCodeBadRequest indicates a malformed or invalid request.
	ErrCodeBadRequest = "BAD_REQUEST"
	// ErrCodeNotFound indicates a resource was not found.
	ErrCodeNotFound = "NOT_FOUND"
	// ErrCodeUnprocessable indicates a well-formed request that cannot be served in the current state.
	ErrCodeUnprocessable = "UNPROCESSABLE"
	// ErrCodeTimeout indicates a request timeout.
	ErrCodeTimeout = "TIMEOUT"
	// ErrCodeUnavailable indicates storage is temporarily unavailable.
	ErrCodeUnavailable = "SERVICE_UNAVAILABLE"
	// ErrCodeInternal indicates an internal server error.
	ErrCodeInternal = "INTERNAL_ERROR"
)

// ErrorBody carries the details of a failed request.
type ErrorBody struct {
	Code      string    `json:"code" example:"BAD_REQUEST"`
	Message   string    `json:"message" example:"Postcode must be 4 digits"`
	Timestamp time.Time `json:"timestamp" example:"2025-01-28T10:00:00Z"`
	RequestID string    `json:"requestId,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
} // @name ErrorBody

// ErrorResponse is the envelope written for every non-2xx API response.
// Clients read the message from error.message.
//
// @Description Standardized error envelope
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
} // @name ErrorResponse

// NewError creates a new ErrorResponse with the given code and message.
func NewError(code, message string) ErrorResponse {
	return ErrorResponse{
		Error: ErrorBody{
			Code:      code,
			Message:   message,
			Timestamp: time.Now().UTC(),
		},
	}
}

// WithRequestID adds a request ID to the error response.
func (e ErrorResponse) WithRequestID(requestID string) ErrorResponse {
	e.Error.RequestID = requestID
	return e
}

// ErrCodeFromStatus returns the error code for an HTTP status.
func ErrCodeFromStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return ErrCodeBadRequest
	case http.StatusNotFound:
		return ErrCodeNotFound
	case http.StatusUnprocessableEntity:
		return ErrCodeUnprocessable
	case http.StatusGatewayTimeout, http.StatusRequestTimeout:
		return ErrCodeTimeout
	case http.StatusServiceUnavailable:
		return ErrCodeUnavailable
	default:
		return ErrCodeInternal
	}
}
