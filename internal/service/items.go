package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/guttosm/postage-comparator/internal/domain/model"
	"github.com/guttosm/postage-comparator/internal/metrics"
	"github.com/guttosm/postage-comparator/internal/repository"
)

// ItemService manages catalog items.
type ItemService interface {
	List(ctx context.Context) ([]model.Item, error)
	Get(ctx context.Context, id string) (*model.Item, error)
	Create(ctx context.Context, input model.ItemInput) (*model.Item, error)
	Update(ctx context.Context, id string, input model.ItemInput) (*model.Item, error)
	Delete(ctx context.Context, id string) error
}

// ItemServiceImpl implements ItemService.
type ItemServiceImpl struct {
	store repository.ItemStore
	newID func() string
}

// NewItemService creates a new item service.
func NewItemService(store repository.ItemStore) ItemService {
	return &ItemServiceImpl{store: store, newID: uuid.NewString}
}

func (s *ItemServiceImpl) List(ctx context.Context) ([]model.Item, error) {
	if s.store == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.store.List(ctx)
}

// Get returns a NotFoundError for unknown ids.
func (s *ItemServiceImpl) Get(ctx context.Context, id string) (*model.Item, error) {
	if s.store == nil {
		return nil, ErrRepositoryNotConfigured
	}
	item, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, notFound("Item", id)
	}
	return item, nil
}

func (s *ItemServiceImpl) Create(ctx context.Context, input model.ItemInput) (*model.Item, error) {
	if s.store == nil {
		return nil, ErrRepositoryNotConfigured
	}

	item := model.Item{
		ID:              s.newID(),
		Name:            strings.TrimSpace(input.Name),
		Description:     input.Description,
		UnitWeightGrams: input.UnitWeightGrams,
	}
	if item.Name == "" {
		return nil, invalid("Item name is required")
	}
	if item.UnitWeightGrams <= 0 {
		return nil, invalid("Item unit weight must be greater than 0")
	}
	if err := s.ensureUniqueName(ctx, item); err != nil {
		return nil, err
	}

	if err := s.store.Create(ctx, item); err != nil {
		return nil, s.storeError(err, item)
	}
	metrics.RecordCatalogMutation("item", "create")
	return &item, nil
}

// Update merges input into the stored item: blank names, nil descriptions and
// non-positive weights leave the stored value untouched.
func (s *ItemServiceImpl) Update(ctx context.Context, id string, input model.ItemInput) (*model.Item, error) {
	item, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if name := strings.TrimSpace(input.Name); name != "" {
		item.Name = name
	}
	if input.Description != nil {
		item.Description = input.Description
	}
	if input.UnitWeightGrams > 0 {
		item.UnitWeightGrams = input.UnitWeightGrams
	}
	if err := s.ensureUniqueName(ctx, *item); err != nil {
		return nil, err
	}

	if err := s.store.Update(ctx, *item); err != nil {
		return nil, s.storeError(err, *item)
	}
	metrics.RecordCatalogMutation("item", "update")
	return item, nil
}

func (s *ItemServiceImpl) Delete(ctx context.Context, id string) error {
	if s.store == nil {
		return ErrRepositoryNotConfigured
	}
	if err := s.store.Delete(ctx, id); err != nil {
		return s.storeError(err, model.Item{ID: id})
	}
	metrics.RecordCatalogMutation("item", "delete")
	return nil
}

func (s *ItemServiceImpl) ensureUniqueName(ctx context.Context, item model.Item) error {
	items, err := s.store.List(ctx)
	if err != nil {
		return err
	}
	key := model.NameKey(item.Name)
	for _, existing := range items {
		if existing.ID != item.ID && model.NameKey(existing.Name) == key {
			return duplicateItem(item.Name)
		}
	}
	return nil
}

func (s *ItemServiceImpl) storeError(err error, item model.Item) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return notFound("Item", item.ID)
	case errors.Is(err, repository.ErrDuplicateName):
		return duplicateItem(item.Name)
	default:
		return err
	}
}

func duplicateItem(name string) error {
	return invalid("Item with name '%s' already exists", name)
}
