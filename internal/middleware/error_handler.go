package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/postage-comparator/internal/domain/dto"
	"github.com/guttosm/postage-comparator/internal/i18n"
	"github.com/guttosm/postage-comparator/internal/logger"
	"github.com/rs/zerolog"
)

// ErrorHandler logs the last error a handler attached with c.Error.
// Handlers write their own envelope; a 500 is written only when they did not.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		last := c.Errors.Last()
		if last == nil {
			return
		}

		written := c.Writer.Written()
		level := zerolog.ErrorLevel
		if written && c.Writer.Status() < http.StatusInternalServerError {
			level = zerolog.WarnLevel
		}
		log := logger.Logger()
		log.WithLevel(level).
			Err(last.Err).
			Str("request_id", GetRequestID(c)).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status_code", c.Writer.Status()).
			Msg("Request failed")

		if !written {
			abortWithEnvelope(c, http.StatusInternalServerError, dto.ErrCodeInternal, i18n.ErrKeyInternalError, "")
		}
	}
}
