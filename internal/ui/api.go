package ui

import (
	"context"

	"github.com/guttosm/postage-comparator/internal/domain/model"
)

// API is the postage API as used by the frontend. *client.Client satisfies it.
type API interface {
	GetOriginSettings(ctx context.Context) (*model.OriginSettings, error)
	UpdateOriginSettings(ctx context.Context, settings model.OriginSettings) (*model.OriginSettings, error)
	UpdateThemePreference(ctx context.Context, theme string) (*model.OriginSettings, error)

	ListItems(ctx context.Context) ([]model.Item, error)
	CreateItem(ctx context.Context, input model.ItemInput) (*model.Item, error)
	UpdateItem(ctx context.Context, id string, input model.ItemInput) (*model.Item, error)
	DeleteItem(ctx context.Context, id string) error

	ListPackaging(ctx context.Context) ([]model.Packaging, error)
	CreatePackaging(ctx context.Context, input model.PackagingInput) (*model.Packaging, error)
	UpdatePackaging(ctx context.Context, id string, input model.PackagingInput) (*model.Packaging, error)
	DeletePackaging(ctx context.Context, id string) error

	CreateQuote(ctx context.Context, req model.ShipmentRequest) (*model.QuoteResult, error)
}
