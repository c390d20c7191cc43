// Package model defines the domain records exchanged between the postage API and its clients.
//
// Field names are camelCase on the wire. Binding tags are enforced by gin when the
// records are bound from request bodies; the `postcode` and `theme` tags are custom
// validators registered by the http package.
package model

import (
	"strings"
	"time"
)

// Theme preferences accepted by the API.
const (
	ThemeDark  = "dark"
	ThemeLight = "light"
	ThemeSepia = "sepia"
)

// Themes lists the supported theme preferences in display order.
var Themes = []string{ThemeDark, ThemeLight, ThemeSepia}

// OriginSettings is the shipper's fixed address used for every quote.
//
// @Description Origin address and UI preferences
type OriginSettings struct {
	Postcode        string     `json:"postcode" binding:"required,postcode" example:"2000"`
	Suburb          string     `json:"suburb" binding:"required" example:"Sydney"`
	State           string     `json:"state" binding:"required" example:"NSW"`
	Country         string     `json:"country" binding:"required" example:"AU"`
	ThemePreference *string    `json:"themePreference" binding:"omitempty,theme" example:"dark"`
	UpdatedAt       *time.Time `json:"updatedAt"`
} // @name OriginSettings

// Theme returns the theme preference or an empty string when unset.
func (s *OriginSettings) Theme() string {
	if s == nil || s.ThemePreference == nil {
		return ""
	}
	return *s.ThemePreference
}

// IsValidTheme reports whether theme is one of the supported preferences, ignoring case.
func IsValidTheme(theme string) bool {
	theme = strings.ToLower(strings.TrimSpace(theme))
	for _, t := range Themes {
		if t == theme {
			return true
		}
	}
	return false
}

// IsValidPostcode reports whether postcode is exactly four ASCII digits.
func IsValidPostcode(postcode string) bool {
	if len(postcode) != 4 {
		return false
	}
	for _, r := range postcode {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
