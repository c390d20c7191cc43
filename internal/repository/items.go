package repository

import (
	"context"
	"time"

	"github.com/guttosm/postage-comparator/internal/domain/model"
)

type itemDocument struct {
	ID              string    `bson:"_id,omitempty"`
	Name            string    `bson:"name"`
	NameKey         string    `bson:"name_key"`
	Description     *string   `bson:"description"`
	UnitWeightGrams int       `bson:"unit_weight_grams"`
	CreatedAt       time.Time `bson:"created_at,omitempty"`
	UpdatedAt       time.Time `bson:"updated_at"`
}

// ItemRepository stores items in the items collection.
type ItemRepository struct {
	catalog mongoCatalog[model.Item, itemDocument]
}

// NewItemRepository creates a new item repository.
func NewItemRepository(db *MongoDB) *ItemRepository {
	return &ItemRepository{
		catalog: mongoCatalog[model.Item, itemDocument]{
			collection: db.Items,
			toDoc: func(i model.Item, created bool) itemDocument {
				now := time.Now().UTC()
				doc := itemDocument{
					Name:            i.Name,
					NameKey:         model.NameKey(i.Name),
					Description:     i.Description,
					UnitWeightGrams: i.UnitWeightGrams,
					UpdatedAt:       now,
				}
				if created {
					doc.ID = i.ID
					doc.CreatedAt = now
				}
				return doc
			},
			fromDoc: func(d itemDocument) model.Item {
				return model.Item{
					ID:              d.ID,
					Name:            d.Name,
					Description:     d.Description,
					UnitWeightGrams: d.UnitWeightGrams,
				}
			},
		},
	}
}

// List returns all items oldest first.
func (r *ItemRepository) List(ctx context.Context) ([]model.Item, error) {
	return r.catalog.list(ctx)
}

// Get returns the item with id, or nil when there is none.
func (r *ItemRepository) Get(ctx context.Context, id string) (*model.Item, error) {
	return r.catalog.get(ctx, id)
}

// Create inserts a new item.
func (r *ItemRepository) Create(ctx context.Context, item model.Item) error {
	return r.catalog.create(ctx, item)
}

// Update replaces the stored fields of item.
func (r *ItemRepository) Update(ctx context.Context, item model.Item) error {
	return r.catalog.update(ctx, item.ID, item)
}

// Delete removes the item with id.
func (r *ItemRepository) Delete(ctx context.Context, id string) error {
	return r.catalog.remove(ctx, id)
}
