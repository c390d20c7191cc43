package ui

import (
	"strconv"
	"strings"

	"github.com/guttosm/postage-comparator/internal/domain/model"
)

// The messages below match the ones the API returns for the same rule.

func validateSettings(f SettingsForm) (model.OriginSettings, string) {
	settings := model.OriginSettings{
		Postcode:        strings.TrimSpace(f.Postcode),
		Suburb:          strings.TrimSpace(f.Suburb),
		State:           strings.TrimSpace(f.State),
		Country:         strings.TrimSpace(f.Country),
		ThemePreference: f.ThemePreference,
	}
	switch {
	case settings.Postcode == "":
		return settings, "Postcode is required"
	case !model.IsValidPostcode(settings.Postcode):
		return settings, "Postcode must be 4 digits"
	case settings.Suburb == "":
		return settings, "Suburb is required"
	case settings.State == "":
		return settings, "State is required"
	case settings.Country == "":
		return settings, "Country is required"
	}
	return settings, ""
}

func validateItem(f ItemForm, editing bool) (model.ItemInput, string) {
	input := model.ItemInput{
		Name:        strings.TrimSpace(f.Name),
		Description: descriptionInput(f.Description, editing),
	}
	if input.Name == "" {
		return input, "Item name is required"
	}
	weight, ok := positiveInt(f.UnitWeightGrams)
	if !ok {
		return input, "Item unit weight must be greater than 0"
	}
	input.UnitWeightGrams = weight
	return input, ""
}

func validatePackaging(f PackagingForm, editing bool) (model.PackagingInput, string) {
	input := model.PackagingInput{
		Name:        strings.TrimSpace(f.Name),
		Description: descriptionInput(f.Description, editing),
	}
	if input.Name == "" {
		return input, "Packaging name is required"
	}

	length, okL := positiveInt(f.LengthCm)
	width, okW := positiveInt(f.WidthCm)
	height, okH := positiveInt(f.HeightCm)
	if !okL || !okW || !okH {
		return input, "Packaging dimensions (length, height, width) must be greater than 0"
	}
	input.LengthCm, input.WidthCm, input.HeightCm = length, width, height

	cost, err := strconv.ParseFloat(strings.TrimSpace(f.PackagingCostAud), 64)
	if err != nil || cost <= 0 {
		return input, "Packaging cost must be greater than 0"
	}
	input.PackagingCostAud = cost

	// Blank volume lets the API derive it from the dimensions.
	if volume, ok := positiveInt(f.InternalVolumeCubicCm); ok {
		input.InternalVolumeCubicCm = volume
	}
	return input, ""
}

func validateShipment(req model.ShipmentRequest) string {
	switch {
	case req.DestinationPostcode == "":
		return "Destination postcode is required"
	case !model.IsValidPostcode(req.DestinationPostcode):
		return "Destination postcode must be 4 digits"
	case len(req.Items) == 0:
		return "At least one item is required"
	case req.PackagingID == "":
		return "Packaging is required"
	}
	for _, line := range req.Items {
		if line.Quantity < 1 {
			return "Item quantity must be greater than 0"
		}
	}
	return ""
}

func positiveInt(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	return n, err == nil && n > 0
}

// descriptionInput omits a blank description on create. On update the API
// keeps the stored value for nil, so a blank field is sent as "" to clear it.
func descriptionInput(s string, editing bool) *string {
	s = strings.TrimSpace(s)
	if s == "" && !editing {
		return nil
	}
	return &s
}
