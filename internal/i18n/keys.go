// Package i18n translates the fixed API error messages into the caller's locale.
package i18n

// Message keys shared by handlers and middleware. Every locale in the catalog
// must carry all of them.
const (
	ErrKeyInvalidRequest     = "error.invalid_request"
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	ErrKeyInternalError      = "error.internal_error"
	ErrKeyNotFound           = "error.not_found"
	// ErrKeyOriginNotFound is for reads of settings that were never saved.
	ErrKeyOriginNotFound = "error.origin_not_found"
	// ErrKeyOriginRequired is for quotes requested before settings exist.
	ErrKeyOriginRequired     = "error.origin_required"
	ErrKeyNoCarrierQuote     = "error.no_carrier_quote"
	ErrKeyServiceUnavailable = "error.service_unavailable"
	ErrKeyTimeout            = "error.timeout"
)
