package ui

import (
	"fmt"
	"strconv"

	"github.com/guttosm/postage-comparator/internal/domain/model"
)

// FormatEta renders a delivery window in business days.
func FormatEta(minDays, maxDays *int) string {
	switch {
	case minDays == nil && maxDays == nil:
		return "ETA unavailable"
	case minDays == nil:
		return fmt.Sprintf("%d business days", *maxDays)
	case maxDays == nil || *minDays == *maxDays:
		return fmt.Sprintf("%d business days", *minDays)
	default:
		return fmt.Sprintf("%d-%d business days", *minDays, *maxDays)
	}
}

// PricingSourceLabel returns the display label of a pricing source. Unknown sources are shown as is.
func PricingSourceLabel(source string) string {
	if source == model.PricingSourceAusPostAPI {
		return "AusPost API"
	}
	return source
}

// FormatAUD renders an amount as dollars with two decimals.
func FormatAUD(amount float64) string {
	return "$" + strconv.FormatFloat(amount, 'f', 2, 64)
}

// formatNumber renders v with the fewest digits that round-trip, so 0.5 stays "0.5".
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
