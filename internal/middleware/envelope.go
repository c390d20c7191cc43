package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/guttosm/postage-comparator/internal/domain/dto"
	"github.com/guttosm/postage-comparator/internal/i18n"
)

// abortWithEnvelope stops the chain with a localized error envelope carrying
// the request id. fallback is used when the catalog has no text for key.
func abortWithEnvelope(c *gin.Context, status int, code, key, fallback string) {
	message := i18n.GetTranslator().Translate(key, i18n.GetLocale(c))
	if message == key && fallback != "" {
		message = fallback
	}
	c.AbortWithStatusJSON(status, dto.NewError(code, message).WithRequestID(GetRequestID(c)))
}
