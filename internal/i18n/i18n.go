package i18n

import (
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
)

const (
	// DefaultLocale is used when the caller asks for nothing we support.
	DefaultLocale = "en"
	// AcceptLanguageHeader carries the caller's language preference.
	AcceptLanguageHeader = "Accept-Language"
)

var (
	defaultTranslator *Translator
	translatorOnce    sync.Once
)

// catalog maps locale to message key to text. Every locale carries every key.
var catalog = map[string]map[string]string{
	"en": {
		ErrKeyInvalidRequest:     "Invalid request",
		ErrKeyInvalidRequestBody: "Malformed JSON request body",
		ErrKeyInternalError:      "An unexpected error occurred",
		ErrKeyNotFound:           "Not found",
		ErrKeyOriginNotFound:     "Origin settings not found",
		ErrKeyOriginRequired:     "Origin settings are required before quoting",
		ErrKeyNoCarrierQuote:     "No carrier quote available",
		ErrKeyServiceUnavailable: "Storage is temporarily unavailable, please try again later",
		ErrKeyTimeout:            "Request timeout",
	},
	"pt": {
		ErrKeyInvalidRequest:     "Requisição inválida",
		ErrKeyInvalidRequestBody: "Corpo da requisição não é um JSON válido",
		ErrKeyInternalError:      "Ocorreu um erro inesperado",
		ErrKeyNotFound:           "Não encontrado",
		ErrKeyOriginNotFound:     "Configurações de origem não encontradas",
		ErrKeyOriginRequired:     "Configure a origem antes de cotar",
		ErrKeyNoCarrierQuote:     "Nenhuma cotação de transportadora disponível",
		ErrKeyServiceUnavailable: "Armazenamento temporariamente indisponível, tente novamente mais tarde",
		ErrKeyTimeout:            "Tempo limite da requisição excedido",
	},
	"nl": {
		ErrKeyInvalidRequest:     "Ongeldig verzoek",
		ErrKeyInvalidRequestBody: "Ongeldige JSON in aanvraag body",
		ErrKeyInternalError:      "Er is een onverwachte fout opgetreden",
		ErrKeyNotFound:           "Niet gevonden",
		ErrKeyOriginNotFound:     "Herkomstinstellingen niet gevonden",
		ErrKeyOriginRequired:     "Herkomstinstellingen zijn vereist voor een offerte",
		ErrKeyNoCarrierQuote:     "Geen vervoerdersofferte beschikbaar",
		ErrKeyServiceUnavailable: "Opslag is tijdelijk niet beschikbaar, probeer het later opnieuw",
		ErrKeyTimeout:            "Time-out van verzoek",
	},
}

// Translator resolves message keys for a locale.
type Translator struct {
	messages map[string]map[string]string
}

// NewTranslator creates a translator over the built-in catalog.
func NewTranslator() *Translator {
	return &Translator{messages: catalog}
}

// GetTranslator returns the shared translator.
func GetTranslator() *Translator {
	translatorOnce.Do(func() {
		defaultTranslator = NewTranslator()
	})
	return defaultTranslator
}

// Translate returns the message for key in locale. Unknown locales use DefaultLocale
// and unknown keys are returned unchanged.
func (t *Translator) Translate(key, locale string) string {
	if msg, ok := t.messages[locale][key]; ok {
		return msg
	}
	if msg, ok := t.messages[DefaultLocale][key]; ok {
		return msg
	}
	return key
}

// Supported reports whether locale has a catalog.
func (t *Translator) Supported(locale string) bool {
	_, ok := t.messages[locale]
	return ok
}

// GetLocale picks the first supported base language from Accept-Language, in header order.
// Quality values are ignored.
func GetLocale(c *gin.Context) string {
	t := GetTranslator()
	for _, part := range strings.Split(c.GetHeader(AcceptLanguageHeader), ",") {
		lang := strings.TrimSpace(strings.SplitN(part, ";", 2)[0])
		lang, _, _ = strings.Cut(lang, "-")
		lang = strings.ToLower(lang)
		if lang != "" && t.Supported(lang) {
			return lang
		}
	}
	return DefaultLocale
}
