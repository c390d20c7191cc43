package dto

import (
	"encoding/json"
	"net/http"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewError(t *testing.T) {
	resp := NewError(ErrCodeBadRequest, "Postcode must be 4 digits")

	assert.Equal(t, ErrCodeBadRequest, resp.Error.Code)
	assert.Equal(t, "Postcode must be 4 digits", resp.Error.Message)
	assert.NotZero(t, resp.Error.Timestamp)
	assert.Empty(t, resp.Error.RequestID)
}

func TestErrorResponse_WithRequestID(t *testing.T) {
	resp := NewError(ErrCodeInternal, "boom").WithRequestID("req-1")

	assert.Equal(t, "req-1", resp.Error.RequestID)
	assert.Equal(t, ErrCodeInternal, resp.Error.Code)
}

func TestErrorResponse_JSONShape(t *testing.T) {
	body, err := json.Marshal(NewError(ErrCodeNotFound, "Item not found"))
	require.NoError(t, err)

	var decoded struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(body, &decoded))
	assert.Equal(t, "NOT_FOUND", decoded.Error.Code)
	assert.Equal(t, "Item not found", decoded.Error.Message)
}

func TestErrCodeFromStatus(t *testing.T) {
	tests := []struct {
		status       int
		expectedCode string
	}{
		{http.StatusBadRequest, ErrCodeBadRequest},
		{http.StatusNotFound, ErrCodeNotFound},
		{http.StatusUnprocessableEntity, ErrCodeUnprocessable},
		{http.StatusGatewayTimeout, ErrCodeTimeout},
		{http.StatusServiceUnavailable, ErrCodeUnavailable},
		{http.StatusInternalServerError, ErrCodeInternal},
		{http.StatusBadGateway, ErrCodeInternal},
	}

	for _, tt := range tests {
		t.Run(strconv.Itoa(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.expectedCode, ErrCodeFromStatus(tt.status))
		})
	}
}
