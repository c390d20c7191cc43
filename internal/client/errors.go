package client

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"
)

const (
	// fallbackMessage is used when a failed response carries neither an error message nor a status text.
	fallbackMessage = "Request failed"
	// networkFailureMessage is used when the request never produced a response.
	networkFailureMessage = "Network request failed"
)

// APIError is the single error shape every failed request is normalised into.
type APIError struct {
	// Status is the HTTP status code, or 0 when the transport failed.
	Status int
	// Message is the human readable failure text.
	Message string
	// Details holds the decoded response body when it was valid JSON.
	Details interface{}
	// Err is the transport or decoding cause, if any.
	Err error
}

// Error returns the human readable message.
func (e *APIError) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause.
func (e *APIError) Unwrap() error {
	return e.Err
}

// IsNotFound reports whether err is an APIError with status 404.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}

// Message extracts the user-facing message from err.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return err.Error()
}

type errorEnvelope struct {
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// newResponseError builds an APIError from a non-2xx response.
// Body decoding failures are swallowed and the status text is used instead.
func newResponseError(resp *http.Response) *APIError {
	apiErr := &APIError{
		Status:  resp.StatusCode,
		Message: statusText(resp),
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil || len(raw) == 0 {
		return apiErr
	}

	var details interface{}
	if json.Unmarshal(raw, &details) != nil {
		return apiErr
	}
	apiErr.Details = details

	var envelope errorEnvelope
	if json.Unmarshal(raw, &envelope) == nil && envelope.Error != nil && envelope.Error.Message != "" {
		apiErr.Message = envelope.Error.Message
	}
	return apiErr
}

// statusText returns the reason phrase of resp, falling back to "Request failed".
func statusText(resp *http.Response) string {
	text := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if text == "" {
		return fallbackMessage
	}
	return text
}
