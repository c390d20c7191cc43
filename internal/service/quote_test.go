package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/postage-comparator/config"
	"github.com/guttosm/postage-comparator/internal/carrier"
	"github.com/guttosm/postage-comparator/internal/domain/model"
	"github.com/guttosm/postage-comparator/internal/mocks"
	"github.com/guttosm/postage-comparator/internal/service"
)

type quoteFixture struct {
	settings  *mocks.MockSettingsStore
	items     *mocks.MockItemStore
	packaging *mocks.MockPackagingStore
}

func newQuoteFixture() quoteFixture {
	f := quoteFixture{
		settings:  new(mocks.MockSettingsStore),
		items:     new(mocks.MockItemStore),
		packaging: new(mocks.MockPackagingStore),
	}
	origin := sydney()
	f.settings.On("Get", mock.Anything).Return(&origin, nil)
	f.packaging.On("Get", mock.Anything, "pack-1").Return(&model.Packaging{
		ID: "pack-1", Name: "Small box", LengthCm: 20, WidthCm: 10, HeightCm: 10,
		InternalVolumeCubicCm: 2000, PackagingCostAud: 1.5,
	}, nil)
	f.packaging.On("Get", mock.Anything, mock.Anything).Return(nil, nil)
	f.items.On("Get", mock.Anything, "item-1").Return(&model.Item{ID: "item-1", Name: "Mug", UnitWeightGrams: 250}, nil)
	f.items.On("Get", mock.Anything, "item-2").Return(&model.Item{ID: "item-2", Name: "Book", UnitWeightGrams: 400}, nil)
	f.items.On("Get", mock.Anything, mock.Anything).Return(nil, nil)
	return f
}

func (f quoteFixture) service(providers ...carrier.Provider) service.QuoteService {
	return service.NewQuoteService(f.settings, f.items, f.packaging, providers, service.DefaultQuoteOptions())
}

func melbourneRequest() model.ShipmentRequest {
	return model.ShipmentRequest{
		DestinationPostcode: "3000",
		DestinationSuburb:   "Melbourne",
		DestinationState:    "VIC",
		Items:               []model.ShipmentItemSelection{{ItemID: "item-1", Quantity: 2}},
		PackagingID:         "pack-1",
	}
}

func TestQuoteService_Quote(t *testing.T) {
	f := newQuoteFixture()
	svc := f.service(carrier.NewRulesProvider(config.DefaultRateTable()))

	result, err := svc.Quote(context.Background(), melbourneRequest())
	require.NoError(t, err)

	assert.Equal(t, 500, result.TotalWeightGrams)
	assert.InDelta(t, 0.5, result.WeightInKg, 1e-9)
	assert.InDelta(t, 0.5, result.VolumeWeightInKg, 1e-9)
	assert.Equal(t, 2000, result.TotalVolumeCubicCm)
	assert.Equal(t, "AU", result.Destination.Country)
	assert.Equal(t, "AUD", result.Currency)
	assert.Equal(t, "Sydney", result.Origin.Suburb)
	assert.Equal(t, "pack-1", result.Packaging.ID)
	assert.False(t, result.GeneratedAt.IsZero())

	require.Len(t, result.CarrierQuotes, 1)
	q := result.CarrierQuotes[0]
	assert.Equal(t, "AUSPOST", q.Carrier)
	assert.InDelta(t, 11.15, q.DeliveryCostAud, 1e-9)
	assert.InDelta(t, 12.65, q.TotalCostAud, 1e-9)
}

func TestQuoteService_Quote_Aggregation(t *testing.T) {
	f := newQuoteFixture()
	provider := new(mocks.MockProvider)
	provider.On("Name").Return("stub")
	provider.On("Quote", mock.Anything, mock.MatchedBy(func(r carrier.Request) bool {
		return r.WeightKg == 1.15 && r.OriginState == "NSW" && r.DestinationState == "VIC" && r.Express
	})).Return(&model.CarrierQuote{Carrier: "STUB"}, nil)

	req := melbourneRequest()
	req.Items = []model.ShipmentItemSelection{{ItemID: "item-1", Quantity: 2}, {ItemID: "item-2", Quantity: 1}, {ItemID: "item-1", Quantity: 1}}
	req.Country = "nz"
	req.IsExpress = true

	result, err := f.service(provider).Quote(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 1150, result.TotalWeightGrams)
	assert.Equal(t, "NZ", result.Destination.Country)
	f.items.AssertNumberOfCalls(t, "Get", 2)
}

func TestQuoteService_Quote_Errors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*model.ShipmentRequest)
		prepare func(*quoteFixture)
		check   func(*testing.T, error)
	}{
		{
			name:   "missing postcode",
			mutate: func(r *model.ShipmentRequest) { r.DestinationPostcode = "" },
			check:  validationMessage("Destination postcode is required"),
		},
		{
			name:   "bad postcode",
			mutate: func(r *model.ShipmentRequest) { r.DestinationPostcode = "30000" },
			check:  validationMessage("Destination postcode must be 4 digits"),
		},
		{
			name:   "no items",
			mutate: func(r *model.ShipmentRequest) { r.Items = nil },
			check:  validationMessage("At least one item is required"),
		},
		{
			name:   "no packaging",
			mutate: func(r *model.ShipmentRequest) { r.PackagingID = " " },
			check:  validationMessage("Packaging is required"),
		},
		{
			name:   "zero quantity",
			mutate: func(r *model.ShipmentRequest) { r.Items[0].Quantity = 0 },
			check:  validationMessage("Item quantity must be greater than 0"),
		},
		{
			name:   "blank item id",
			mutate: func(r *model.ShipmentRequest) { r.Items[0].ItemID = "" },
			check:  validationMessage("Item id is required"),
		},
		{
			name: "origin missing",
			prepare: func(f *quoteFixture) {
				f.settings = new(mocks.MockSettingsStore)
				f.settings.On("Get", mock.Anything).Return(nil, nil)
			},
			check: func(t *testing.T, err error) { assert.ErrorIs(t, err, service.ErrOriginNotConfigured) },
		},
		{
			name:   "unknown packaging",
			mutate: func(r *model.ShipmentRequest) { r.PackagingID = "pack-9" },
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, service.ErrNotFound)
				assert.EqualError(t, err, "Packaging with id pack-9 not found")
			},
		},
		{
			name:   "unknown item",
			mutate: func(r *model.ShipmentRequest) { r.Items[0].ItemID = "item-9" },
			check: func(t *testing.T, err error) {
				assert.EqualError(t, err, "Item with id item-9 not found")
			},
		},
		{
			name:    "nothing matches the rate table",
			mutate:  func(r *model.ShipmentRequest) { r.Items[0].Quantity = 100 },
			prepare: func(f *quoteFixture) {
				f.packaging = new(mocks.MockPackagingStore)
				f.packaging.On("Get", mock.Anything, "pack-1").Return(&model.Packaging{
					ID: "pack-1", Name: "Crate", LengthCm: 100, WidthCm: 100, HeightCm: 10,
					InternalVolumeCubicCm: 100000, PackagingCostAud: 9,
				}, nil)
			},
			check: func(t *testing.T, err error) { assert.ErrorIs(t, err, service.ErrNoCarrierQuote) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newQuoteFixture()
			if tt.prepare != nil {
				tt.prepare(&f)
			}
			req := melbourneRequest()
			if tt.mutate != nil {
				tt.mutate(&req)
			}
			_, err := f.service(carrier.NewRulesProvider(config.DefaultRateTable())).Quote(context.Background(), req)
			require.Error(t, err)
			tt.check(t, err)
		})
	}
}

func TestQuoteService_Quote_ProviderFailuresAreSkipped(t *testing.T) {
	f := newQuoteFixture()

	broken := new(mocks.MockProvider)
	broken.On("Name").Return("broken")
	broken.On("Quote", mock.Anything, mock.Anything).Return(nil, errors.New("timeout"))

	empty := new(mocks.MockProvider)
	empty.On("Name").Return("empty")
	empty.On("Quote", mock.Anything, mock.Anything).Return(nil, nil)

	ok := new(mocks.MockProvider)
	ok.On("Name").Return("ok")
	ok.On("Quote", mock.Anything, mock.Anything).Return(&model.CarrierQuote{Carrier: "OK"}, nil)

	result, err := f.service(broken, empty, ok).Quote(context.Background(), melbourneRequest())
	require.NoError(t, err)
	require.Len(t, result.CarrierQuotes, 1)
	assert.Equal(t, "OK", result.CarrierQuotes[0].Carrier)

	_, err = f.service(broken, empty).Quote(context.Background(), melbourneRequest())
	assert.ErrorIs(t, err, service.ErrNoCarrierQuote)
}

func validationMessage(msg string) func(*testing.T, error) {
	return func(t *testing.T, err error) {
		var vErr *service.ValidationError
		require.True(t, errors.As(err, &vErr), "got %v", err)
		assert.Equal(t, msg, vErr.Message)
	}
}
