// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/guttosm/postage-comparator/internal/domain/model"
)

// MockQuoteAPI mocks the postage API as seen by the terminal client.
type MockQuoteAPI struct {
	mock.Mock
}

func (m *MockQuoteAPI) GetOriginSettings(ctx context.Context) (*model.OriginSettings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.OriginSettings), args.Error(1)
}

func (m *MockQuoteAPI) UpdateOriginSettings(ctx context.Context, settings model.OriginSettings) (*model.OriginSettings, error) {
	args := m.Called(ctx, settings)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.OriginSettings), args.Error(1)
}

func (m *MockQuoteAPI) UpdateThemePreference(ctx context.Context, theme string) (*model.OriginSettings, error) {
	args := m.Called(ctx, theme)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.OriginSettings), args.Error(1)
}

func (m *MockQuoteAPI) ListItems(ctx context.Context) ([]model.Item, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Item), args.Error(1)
}

func (m *MockQuoteAPI) CreateItem(ctx context.Context, input model.ItemInput) (*model.Item, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Item), args.Error(1)
}

func (m *MockQuoteAPI) UpdateItem(ctx context.Context, id string, input model.ItemInput) (*model.Item, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Item), args.Error(1)
}

func (m *MockQuoteAPI) DeleteItem(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockQuoteAPI) ListPackaging(ctx context.Context) ([]model.Packaging, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Packaging), args.Error(1)
}

func (m *MockQuoteAPI) CreatePackaging(ctx context.Context, input model.PackagingInput) (*model.Packaging, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Packaging), args.Error(1)
}

func (m *MockQuoteAPI) UpdatePackaging(ctx context.Context, id string, input model.PackagingInput) (*model.Packaging, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Packaging), args.Error(1)
}

func (m *MockQuoteAPI) DeletePackaging(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockQuoteAPI) CreateQuote(ctx context.Context, req model.ShipmentRequest) (*model.QuoteResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.QuoteResult), args.Error(1)
}
