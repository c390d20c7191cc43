package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/postage-comparator/internal/domain/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorHandler_UnwrittenErrorBecomes500(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestID(), ErrorHandler())
	router.POST("/api/quotes", func(c *gin.Context) {
		_ = c.Error(errors.New("carrier registry empty"))
	})

	req := httptest.NewRequest(http.MethodPost, "/api/quotes", nil)
	req.Header.Set("Accept-Language", "nl-NL")
	req.Header.Set(RequestIDHeader, "quote-err-1")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, dto.ErrCodeInternal, resp.Error.Code)
	assert.Equal(t, "Er is een onverwachte fout opgetreden", resp.Error.Message)
	assert.Equal(t, "quote-err-1", resp.Error.RequestID)
}

func TestErrorHandler_LeavesWrittenResponses(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestID(), ErrorHandler())
	router.PUT("/api/settings/origin", func(c *gin.Context) {
		_ = c.Error(errors.New("postcode rejected"))
		c.JSON(http.StatusBadRequest, dto.NewError(dto.ErrCodeBadRequest, "Postcode must be 4 digits"))
	})
	router.GET("/api/packaging", func(c *gin.Context) {
		c.JSON(http.StatusOK, []string{})
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/api/settings/origin", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Postcode must be 4 digits")
	assert.NotContains(t, w.Body.String(), dto.ErrCodeInternal)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/packaging", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}
