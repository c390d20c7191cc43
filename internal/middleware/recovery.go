package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/postage-comparator/internal/domain/dto"
	"github.com/guttosm/postage-comparator/internal/i18n"
	"github.com/guttosm/postage-comparator/internal/logger"
)

// Recovery turns a handler panic into a 500 envelope and logs the stack.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			recovered := recover()
			if recovered == nil {
				return
			}
			log := logger.Logger()
			log.Error().
				Str("request_id", GetRequestID(c)).
				Str("method", c.Request.Method).
				Str("path", c.Request.URL.Path).
				Interface("panic", recovered).
				Bytes("stack", debug.Stack()).
				Msg("Recovered from handler panic")

			abortWithEnvelope(c, http.StatusInternalServerError, dto.ErrCodeInternal, i18n.ErrKeyInternalError, "")
		}()
		c.Next()
	}
}
