// Package repository persists origin settings, items and packaging in JSON files or MongoDB.
package repository

import (
	"context"
	"errors"

	"github.com/guttosm/postage-comparator/internal/domain/model"
)

var (
	// ErrNotFound is returned by Update and Delete when no record has the given id.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateName is returned when a catalog name collides with an existing record.
	ErrDuplicateName = errors.New("duplicate name")
)

// IsCallerError reports whether err describes a bad request rather than a storage fault.
// Such errors never trip a circuit breaker.
func IsCallerError(err error) bool {
	return errors.Is(err, ErrNotFound) || errors.Is(err, ErrDuplicateName)
}

// SettingsStore persists the single origin settings record.
type SettingsStore interface {
	// Get returns nil, nil when no settings have been saved yet.
	Get(ctx context.Context) (*model.OriginSettings, error)
	Save(ctx context.Context, settings model.OriginSettings) error
}

// ItemStore persists catalog items in insertion order.
type ItemStore interface {
	List(ctx context.Context) ([]model.Item, error)
	// Get returns nil, nil when the id is unknown.
	Get(ctx context.Context, id string) (*model.Item, error)
	Create(ctx context.Context, item model.Item) error
	Update(ctx context.Context, item model.Item) error
	Delete(ctx context.Context, id string) error
}

// PackagingStore persists packaging profiles in insertion order.
type PackagingStore interface {
	List(ctx context.Context) ([]model.Packaging, error)
	// Get returns nil, nil when the id is unknown.
	Get(ctx context.Context, id string) (*model.Packaging, error)
	Create(ctx context.Context, packaging model.Packaging) error
	Update(ctx context.Context, packaging model.Packaging) error
	Delete(ctx context.Context, id string) error
}

// HealthChecker reports whether a storage backend can serve requests.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// Stores bundles the stores of one storage driver.
type Stores struct {
	Settings  SettingsStore
	Items     ItemStore
	Packaging PackagingStore
	Health    HealthChecker
	// Close releases the backend; nil when there is nothing to release.
	Close func(ctx context.Context) error
}
