// Package carrier defines the port through which quotes are priced and the adapters behind it.
//
// A Provider prices one shipment. Providers are registered in a Registry in the
// order their quotes should be presented; the quote service asks every enabled
// provider and keeps whatever they return.
package carrier

import (
	"context"

	"github.com/guttosm/postage-comparator/internal/domain/model"
)

// Request is the carrier-neutral view of a shipment.
type Request struct {
	OriginPostcode      string
	OriginState         string
	DestinationPostcode string
	DestinationState    string
	DestinationCountry  string
	WeightKg            float64
	VolumeWeightKg      float64
	LengthCm            int
	WidthCm             int
	HeightCm            int
	PackagingCostAud    float64
	Express             bool
}

// Provider is a carrier adapter.
type Provider interface {
	// Name is the key matched against CARRIER_PROVIDERS.
	Name() string
	// Quote returns nil, nil when the provider cannot price the shipment.
	Quote(ctx context.Context, req Request) (*model.CarrierQuote, error)
}
