//go:build !integration

package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/postage-comparator/internal/logger"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_getLogLevel(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		expected   zerolog.Level
	}{
		{name: "2xx returns info", statusCode: 200, expected: zerolog.InfoLevel},
		{name: "3xx returns info", statusCode: 301, expected: zerolog.InfoLevel},
		{name: "4xx returns warn", statusCode: 400, expected: zerolog.WarnLevel},
		{name: "422 returns warn", statusCode: 422, expected: zerolog.WarnLevel},
		{name: "5xx returns error", statusCode: 500, expected: zerolog.ErrorLevel},
		{name: "503 returns error", statusCode: 503, expected: zerolog.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, getLogLevel(tt.statusCode))
		})
	}
}

func TestRequestLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)
	defer logger.Init("info", false)

	tests := []struct {
		name          string
		statusCode    int
		expectedLevel string
	}{
		{name: "successful request logs info", statusCode: http.StatusOK, expectedLevel: "info"},
		{name: "client error logs warn", statusCode: http.StatusBadRequest, expectedLevel: "warn"},
		{name: "server error logs error", statusCode: http.StatusInternalServerError, expectedLevel: "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger.InitWithWriter("debug", false, &buf)

			router := gin.New()
			router.Use(RequestID(), RequestLogger())
			router.GET("/api/items/:id", func(c *gin.Context) {
				c.Status(tt.statusCode)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/items/abc", nil)
			req.Header.Set(RequestIDHeader, "req-123")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.statusCode, w.Code)

			var entry map[string]interface{}
			require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
			assert.Equal(t, tt.expectedLevel, entry["level"])
			assert.Equal(t, "HTTP request", entry["message"])
			assert.Equal(t, "req-123", entry["request_id"])
			assert.Equal(t, "/api/items/:id", entry["route"])
			assert.Equal(t, "/api/items/abc", entry["path"])
			assert.Equal(t, float64(tt.statusCode), entry["status_code"])
		})
	}
}
