package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/postage-comparator/internal/domain/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTimeoutConfig(t *testing.T) {
	cfg := DefaultTimeoutConfig()

	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, "Request timeout", cfg.ErrorMessage)
}

func TestTimeout_SetsRequestDeadline(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(TimeoutWithDuration(2 * time.Second))

	var remaining time.Duration
	router.POST("/api/quotes", func(c *gin.Context) {
		deadline, ok := c.Request.Context().Deadline()
		require.True(t, ok)
		remaining = time.Until(deadline)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/quotes", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Greater(t, remaining, time.Second)
	assert.LessOrEqual(t, remaining, 2*time.Second)
}

func TestTimeout_DeadlineExceeded(t *testing.T) {
	tests := []struct {
		name        string
		language    string
		handler     gin.HandlerFunc
		wantStatus  int
		wantMessage string
	}{
		{
			name: "handler that gives up on the deadline gets a 504 envelope",
			handler: func(c *gin.Context) {
				<-c.Request.Context().Done()
			},
			wantStatus:  http.StatusGatewayTimeout,
			wantMessage: "Request timeout",
		},
		{
			name:     "timeout message follows Accept-Language",
			language: "pt-BR",
			handler: func(c *gin.Context) {
				<-c.Request.Context().Done()
			},
			wantStatus:  http.StatusGatewayTimeout,
			wantMessage: "Tempo limite da requisição excedido",
		},
		{
			name: "response written before the deadline is kept",
			handler: func(c *gin.Context) {
				c.JSON(http.StatusOK, gin.H{"carrierQuotes": []string{}})
				<-c.Request.Context().Done()
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "fast handler is untouched",
			handler: func(c *gin.Context) {
				c.Status(http.StatusNoContent)
			},
			wantStatus: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gin.SetMode(gin.TestMode)
			router := gin.New()
			router.Use(RequestID(), TimeoutWithDuration(20*time.Millisecond))
			router.POST("/api/quotes", tt.handler)

			req := httptest.NewRequest(http.MethodPost, "/api/quotes", nil)
			if tt.language != "" {
				req.Header.Set("Accept-Language", tt.language)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantMessage != "" {
				var resp dto.ErrorResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, dto.ErrCodeTimeout, resp.Error.Code)
				assert.Equal(t, tt.wantMessage, resp.Error.Message)
				assert.NotEmpty(t, resp.Error.RequestID)
			}
		})
	}
}
