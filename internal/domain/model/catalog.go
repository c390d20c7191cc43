package model

import "strings"

// Item is a catalog entry with a per-unit weight.
//
// @Description Shippable item
type Item struct {
	ID              string  `json:"id" example:"3f1c6d1e-7a43-4c55-9a0e-8f1f2e7d5b10"`
	Name            string  `json:"name" example:"Coffee beans 250g"`
	Description     *string `json:"description,omitempty"`
	UnitWeightGrams int     `json:"unitWeightGrams" example:"250"`
} // @name Item

// ItemInput is the body of item create and update requests.
type ItemInput struct {
	Name            string  `json:"name" binding:"max=200"`
	Description     *string `json:"description"`
	UnitWeightGrams int     `json:"unitWeightGrams" binding:"gte=0"`
} // @name ItemInput

// Input returns the item without its id.
func (i Item) Input() ItemInput {
	return ItemInput{
		Name:            i.Name,
		Description:     i.Description,
		UnitWeightGrams: i.UnitWeightGrams,
	}
}

// Packaging is a box or satchel profile.
//
// @Description Packaging profile
type Packaging struct {
	ID                    string  `json:"id" example:"b6d7f0a2-1c2d-4e5f-8a9b-0c1d2e3f4a5b"`
	Name                  string  `json:"name" example:"Small box"`
	Description           *string `json:"description,omitempty"`
	LengthCm              int     `json:"lengthCm" example:"22"`
	WidthCm               int     `json:"widthCm" example:"16"`
	HeightCm              int     `json:"heightCm" example:"7"`
	InternalVolumeCubicCm int     `json:"internalVolumeCubicCm" example:"2464"`
	PackagingCostAud      float64 `json:"packagingCostAud" example:"1.5"`
} // @name Packaging

// PackagingInput is the body of packaging create and update requests.
// A zero InternalVolumeCubicCm is derived from the dimensions.
type PackagingInput struct {
	Name                  string  `json:"name" binding:"max=200"`
	Description           *string `json:"description"`
	LengthCm              int     `json:"lengthCm" binding:"gte=0"`
	WidthCm               int     `json:"widthCm" binding:"gte=0"`
	HeightCm              int     `json:"heightCm" binding:"gte=0"`
	InternalVolumeCubicCm int     `json:"internalVolumeCubicCm" binding:"gte=0"`
	PackagingCostAud      float64 `json:"packagingCostAud" binding:"gte=0"`
} // @name PackagingInput

// Input returns the packaging without its id.
func (p Packaging) Input() PackagingInput {
	return PackagingInput{
		Name:                  p.Name,
		Description:           p.Description,
		LengthCm:              p.LengthCm,
		WidthCm:               p.WidthCm,
		HeightCm:              p.HeightCm,
		InternalVolumeCubicCm: p.InternalVolumeCubicCm,
		PackagingCostAud:      p.PackagingCostAud,
	}
}

// OuterVolume returns length × width × height in cubic centimetres.
func (p PackagingInput) OuterVolume() int {
	return p.LengthCm * p.WidthCm * p.HeightCm
}

// NameKey normalises a catalog name for uniqueness checks.
func NameKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
