package middleware

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/postage-comparator/internal/domain/dto"
	"github.com/guttosm/postage-comparator/internal/i18n"
)

// TimeoutConfig bounds request processing.
type TimeoutConfig struct {
	Timeout time.Duration
	// ErrorMessage is the 504 text for locales without a translation.
	ErrorMessage string
}

// DefaultTimeoutConfig allows 30s per request.
func DefaultTimeoutConfig() TimeoutConfig {
	return TimeoutConfig{Timeout: 30 * time.Second, ErrorMessage: "Request timeout"}
}

// Timeout attaches a deadline to the request context. Handlers run on the
// request goroutine, so store calls and carrier lookups see the deadline and
// give up; when that happens before anything was written the client gets a 504.
func Timeout(cfg TimeoutConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), cfg.Timeout)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)
		c.Next()

		if c.Writer.Written() || !errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return
		}
		abortWithEnvelope(c, http.StatusGatewayTimeout, dto.ErrCodeTimeout, i18n.ErrKeyTimeout, cfg.ErrorMessage)
	}
}

// TimeoutWithDuration is Timeout with the default message.
func TimeoutWithDuration(timeout time.Duration) gin.HandlerFunc {
	cfg := DefaultTimeoutConfig()
	cfg.Timeout = timeout
	return Timeout(cfg)
}
