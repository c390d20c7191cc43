package client

import (
	"context"
	"net/http"

	"github.com/guttosm/postage-comparator/internal/domain/model"
)

// GetOriginSettings returns the stored origin settings, or nil when none are configured (404).
func (c *Client) GetOriginSettings(ctx context.Context) (*model.OriginSettings, error) {
	settings, err := fetch[model.OriginSettings](ctx, c, http.MethodGet, "/settings/origin", nil)
	if IsNotFound(err) {
		return nil, nil
	}
	return settings, err
}

// UpdateOriginSettings replaces the origin settings.
func (c *Client) UpdateOriginSettings(ctx context.Context, settings model.OriginSettings) (*model.OriginSettings, error) {
	return fetch[model.OriginSettings](ctx, c, http.MethodPut, "/settings/origin", settings)
}

// UpdateThemePreference changes only the theme preference.
func (c *Client) UpdateThemePreference(ctx context.Context, theme string) (*model.OriginSettings, error) {
	body := map[string]*string{"themePreference": &theme}
	return fetch[model.OriginSettings](ctx, c, http.MethodPut, "/settings/theme", body)
}

// ListItems returns every item in server order.
func (c *Client) ListItems(ctx context.Context) ([]model.Item, error) {
	items, err := fetch[[]model.Item](ctx, c, http.MethodGet, "/items", nil)
	if err != nil || items == nil {
		return nil, err
	}
	return *items, nil
}

// CreateItem creates an item.
func (c *Client) CreateItem(ctx context.Context, in model.ItemInput) (*model.Item, error) {
	return fetch[model.Item](ctx, c, http.MethodPost, "/items", in)
}

// UpdateItem updates the item with the given id.
func (c *Client) UpdateItem(ctx context.Context, id string, in model.ItemInput) (*model.Item, error) {
	return fetch[model.Item](ctx, c, http.MethodPut, itemPath(id), in)
}

// DeleteItem deletes the item with the given id.
func (c *Client) DeleteItem(ctx context.Context, id string) error {
	_, err := c.request(ctx, http.MethodDelete, itemPath(id), nil, nil)
	return err
}

// ListPackaging returns every packaging profile in server order.
func (c *Client) ListPackaging(ctx context.Context) ([]model.Packaging, error) {
	packaging, err := fetch[[]model.Packaging](ctx, c, http.MethodGet, "/packaging", nil)
	if err != nil || packaging == nil {
		return nil, err
	}
	return *packaging, nil
}

// CreatePackaging creates a packaging profile.
func (c *Client) CreatePackaging(ctx context.Context, in model.PackagingInput) (*model.Packaging, error) {
	return fetch[model.Packaging](ctx, c, http.MethodPost, "/packaging", in)
}

// UpdatePackaging updates the packaging profile with the given id.
func (c *Client) UpdatePackaging(ctx context.Context, id string, in model.PackagingInput) (*model.Packaging, error) {
	return fetch[model.Packaging](ctx, c, http.MethodPut, packagingPath(id), in)
}

// DeletePackaging deletes the packaging profile with the given id.
func (c *Client) DeletePackaging(ctx context.Context, id string) error {
	_, err := c.request(ctx, http.MethodDelete, packagingPath(id), nil, nil)
	return err
}

// CreateQuote requests a quote for the shipment.
func (c *Client) CreateQuote(ctx context.Context, req model.ShipmentRequest) (*model.QuoteResult, error) {
	return fetch[model.QuoteResult](ctx, c, http.MethodPost, "/quotes", req)
}
