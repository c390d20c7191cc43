package model

import "time"

// Pricing sources reported on carrier quotes.
const (
	PricingSourceAusPostAPI = "AUSPOST_API"
	PricingSourceRules      = "RULES"
)

// ShipmentItemSelection is one quote line.
type ShipmentItemSelection struct {
	ItemID   string `json:"itemId" binding:"required" example:"item-1"`
	Quantity int    `json:"quantity" binding:"gte=1" example:"2"`
} // @name ShipmentItemSelection

// ShipmentRequest is the body of POST /quotes.
//
// @Description Destination, selected items and packaging for a quote
type ShipmentRequest struct {
	DestinationPostcode string                  `json:"destinationPostcode" binding:"required,postcode" example:"3000"`
	DestinationSuburb   string                  `json:"destinationSuburb" example:"Melbourne"`
	DestinationState    string                  `json:"destinationState" example:"VIC"`
	Country             string                  `json:"country" binding:"omitempty,alpha,len=2" example:"AU"`
	Items               []ShipmentItemSelection `json:"items" binding:"required,min=1,dive"`
	PackagingID         string                  `json:"packagingId" binding:"required" example:"pack-1"`
	IsExpress           bool                    `json:"isExpress"`
} // @name ShipmentRequest

// CarrierQuote is one priced shipping option.
type CarrierQuote struct {
	Carrier            string   `json:"carrier" example:"AUSPOST"`
	ServiceName        string   `json:"serviceName" example:"Derived from rules"`
	DeliveryEtaDaysMin *int     `json:"deliveryEtaDaysMin"`
	DeliveryEtaDaysMax *int     `json:"deliveryEtaDaysMax"`
	PackagingCostAud   float64  `json:"packagingCostAud"`
	DeliveryCostAud    float64  `json:"deliveryCostAud"`
	SurchargesAud      *float64 `json:"surchargesAud,omitempty"`
	TotalCostAud       float64  `json:"totalCostAud"`
	PricingSource      string   `json:"pricingSource" example:"RULES"`
	RuleFallbackUsed   bool     `json:"ruleFallbackUsed"`
	RawCarrierRef      *string  `json:"rawCarrierRef,omitempty"`
} // @name CarrierQuote

// Destination echoes the quoted destination address.
type Destination struct {
	Postcode string `json:"postcode"`
	Suburb   string `json:"suburb"`
	State    string `json:"state"`
	Country  string `json:"country"`
} // @name Destination

// QuoteResult aggregates the shipment figures and every carrier quote.
//
// @Description Aggregated quote for a shipment
type QuoteResult struct {
	TotalWeightGrams   int            `json:"totalWeightGrams" example:"500"`
	WeightInKg         float64        `json:"weightInKg" example:"0.5"`
	VolumeWeightInKg   float64        `json:"volumeWeightInKg" example:"1.2"`
	TotalVolumeCubicCm int            `json:"totalVolumeCubicCm" example:"4800"`
	Origin             OriginSettings `json:"origin"`
	Destination        Destination    `json:"destination"`
	Packaging          Packaging      `json:"packaging"`
	CarrierQuotes      []CarrierQuote `json:"carrierQuotes"`
	Currency           string         `json:"currency" example:"AUD"`
	GeneratedAt        time.Time      `json:"generatedAt"`
} // @name QuoteResult

// IntPtr returns a pointer to v.
func IntPtr(v int) *int { return &v }

// StringPtr returns a pointer to v.
func StringPtr(v string) *string { return &v }

// Float64Ptr returns a pointer to v.
func Float64Ptr(v float64) *float64 { return &v }
