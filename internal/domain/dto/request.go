// Package dto defines request and response bodies that exist only on the HTTP surface.
//
// Records shared with clients (settings, items, packaging, quotes) live in the model
// package; this package holds the envelope and the small request shapes around them.
package dto

// ThemePreferenceRequest is the body of PUT /settings/theme.
//
// @Description Theme preference update
type ThemePreferenceRequest struct {
	ThemePreference *string `json:"themePreference" binding:"required,theme" example:"sepia"`
} // @name ThemePreferenceRequest
