//go:build !integration

package i18n

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestGetTranslator_Shared(t *testing.T) {
	assert.Same(t, GetTranslator(), GetTranslator())
}

func TestTranslator_Translate(t *testing.T) {
	translator := NewTranslator()

	tests := []struct {
		name   string
		key    string
		locale string
		want   string
	}{
		{name: "origin missing", key: ErrKeyOriginNotFound, locale: "en", want: "Origin settings not found"},
		{name: "origin required before quoting", key: ErrKeyOriginRequired, locale: "en", want: "Origin settings are required before quoting"},
		{name: "malformed body", key: ErrKeyInvalidRequestBody, locale: "en", want: "Malformed JSON request body"},
		{name: "storage unavailable in dutch", key: ErrKeyServiceUnavailable, locale: "nl", want: "Opslag is tijdelijk niet beschikbaar, probeer het later opnieuw"},
		{name: "no carrier quote in portuguese", key: ErrKeyNoCarrierQuote, locale: "pt", want: "Nenhuma cotação de transportadora disponível"},
		{name: "empty locale uses english", key: ErrKeyTimeout, locale: "", want: "Request timeout"},
		{name: "unsupported locale uses english", key: ErrKeyNotFound, locale: "fr", want: "Not found"},
		{name: "unknown key is returned as is", key: "error.parcel_lost", locale: "pt", want: "error.parcel_lost"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, translator.Translate(tt.key, tt.locale))
		})
	}
}

func TestGetLocale(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name   string
		header string
		want   string
	}{
		{name: "no header", header: "", want: DefaultLocale},
		{name: "region stripped", header: "en-AU", want: "en"},
		{name: "upper case", header: "NL", want: "nl"},
		{name: "first entry wins", header: "pt-BR,en;q=0.9", want: "pt"},
		{name: "unsupported first entry is skipped", header: "fr-FR,nl;q=0.8", want: "nl"},
		{name: "nothing supported", header: "fr,de;q=0.5", want: DefaultLocale},
		{name: "wildcard", header: "*", want: DefaultLocale},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/settings", nil)
			if tt.header != "" {
				req.Header.Set(AcceptLanguageHeader, tt.header)
			}
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = req

			assert.Equal(t, tt.want, GetLocale(c))
		})
	}
}

func TestCatalog_EveryLocaleHasEveryKey(t *testing.T) {
	keys := []string{
		ErrKeyInvalidRequest,
		ErrKeyInvalidRequestBody,
		ErrKeyInternalError,
		ErrKeyNotFound,
		ErrKeyOriginNotFound,
		ErrKeyOriginRequired,
		ErrKeyNoCarrierQuote,
		ErrKeyServiceUnavailable,
		ErrKeyTimeout,
	}

	for locale, messages := range catalog {
		assert.Len(t, messages, len(keys), "locale %s", locale)
		for _, key := range keys {
			assert.NotEmpty(t, messages[key], "locale %s is missing %s", locale, key)
		}
	}
}
