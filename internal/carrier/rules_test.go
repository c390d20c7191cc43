package carrier

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/postage-comparator/config"
	"github.com/guttosm/postage-comparator/internal/domain/model"
)

func TestRulesProvider_Quote(t *testing.T) {
	provider := NewRulesProvider(config.DefaultRateTable())

	tests := []struct {
		name         string
		req          Request
		wantNil      bool
		wantDelivery float64
		wantEta      [2]int
	}{
		{
			name:         "standard interstate metro by weight",
			req:          Request{OriginPostcode: "2000", OriginState: "NSW", DestinationPostcode: "3000", DestinationState: "VIC", WeightKg: 0.5, VolumeWeightKg: 0.1, PackagingCostAud: 1.5},
			wantDelivery: 11.15,
			wantEta:      [2]int{3, 6},
		},
		{
			name:         "volumetric weight wins",
			req:          Request{OriginPostcode: "2000", OriginState: "NSW", DestinationPostcode: "3000", DestinationState: "VIC", WeightKg: 0.2, VolumeWeightKg: 2.0, PackagingCostAud: 1.5},
			wantDelivery: 19.30,
			wantEta:      [2]int{3, 6},
		},
		{
			name:         "express same state",
			req:          Request{OriginPostcode: "2000", OriginState: "NSW", DestinationPostcode: "2010", DestinationState: "nsw", WeightKg: 0.25, VolumeWeightKg: 0.1, Express: true},
			wantDelivery: 12.70,
			wantEta:      [2]int{1, 2},
		},
		{
			name:         "regional destination extends the window",
			req:          Request{OriginPostcode: "2000", OriginState: "NSW", DestinationPostcode: "2580", DestinationState: "NSW", WeightKg: 1.5},
			wantDelivery: 19.30,
			wantEta:      [2]int{2, 6},
		},
		{
			name:         "both ends regional",
			req:          Request{OriginPostcode: "2580", OriginState: "NSW", DestinationPostcode: "4870", DestinationState: "QLD", WeightKg: 4, Express: true},
			wantDelivery: 31.80,
			wantEta:      [2]int{1, 5},
		},
		{
			name:         "only volumetric weight in range",
			req:          Request{OriginPostcode: "2000", DestinationPostcode: "3000", WeightKg: 0, VolumeWeightKg: 0.4},
			wantDelivery: 11.15,
			wantEta:      [2]int{3, 6},
		},
		{
			name:    "no bracket matches",
			req:     Request{OriginPostcode: "2000", DestinationPostcode: "3000", WeightKg: 12, VolumeWeightKg: 9},
			wantNil: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quote, err := provider.Quote(context.Background(), tt.req)
			require.NoError(t, err)
			if tt.wantNil {
				assert.Nil(t, quote)
				return
			}
			require.NotNil(t, quote)
			assert.Equal(t, "AUSPOST", quote.Carrier)
			assert.Equal(t, "Derived from rules", quote.ServiceName)
			assert.Equal(t, model.PricingSourceRules, quote.PricingSource)
			assert.True(t, quote.RuleFallbackUsed)
			assert.InDelta(t, tt.wantDelivery, quote.DeliveryCostAud, 1e-9)
			assert.InDelta(t, tt.req.PackagingCostAud+tt.wantDelivery, quote.TotalCostAud, 1e-9)
			require.NotNil(t, quote.SurchargesAud)
			assert.Zero(t, *quote.SurchargesAud)
			assert.Equal(t, tt.wantEta[0], *quote.DeliveryEtaDaysMin)
			assert.Equal(t, tt.wantEta[1], *quote.DeliveryEtaDaysMax)
		})
	}
}

func TestIsMetro(t *testing.T) {
	tests := []struct {
		postcode string
		want     bool
	}{
		{"2000", true},
		{"3210", true},
		{"3211", false},
		{"2580", false},
		{"0800", false},
		{"9999", true},
		{"abcd", true},
	}
	for _, tt := range tests {
		t.Run(tt.postcode, func(t *testing.T) {
			assert.Equal(t, tt.want, IsMetro(tt.postcode))
		})
	}
}
