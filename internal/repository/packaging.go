package repository

import (
	"context"
	"time"

	"github.com/guttosm/postage-comparator/internal/domain/model"
)

type packagingDocument struct {
	ID                    string    `bson:"_id,omitempty"`
	Name                  string    `bson:"name"`
	NameKey               string    `bson:"name_key"`
	Description           *string   `bson:"description"`
	LengthCm              int       `bson:"length_cm"`
	WidthCm               int       `bson:"width_cm"`
	HeightCm              int       `bson:"height_cm"`
	InternalVolumeCubicCm int       `bson:"internal_volume_cubic_cm"`
	PackagingCostAud      float64   `bson:"packaging_cost_aud"`
	CreatedAt             time.Time `bson:"created_at,omitempty"`
	UpdatedAt             time.Time `bson:"updated_at"`
}

// PackagingRepository stores packaging profiles in the packaging collection.
type PackagingRepository struct {
	catalog mongoCatalog[model.Packaging, packagingDocument]
}

// NewPackagingRepository creates a new packaging repository.
func NewPackagingRepository(db *MongoDB) *PackagingRepository {
	return &PackagingRepository{
		catalog: mongoCatalog[model.Packaging, packagingDocument]{
			collection: db.Packaging,
			toDoc: func(p model.Packaging, created bool) packagingDocument {
				now := time.Now().UTC()
				doc := packagingDocument{
					Name:                  p.Name,
					NameKey:               model.NameKey(p.Name),
					Description:           p.Description,
					LengthCm:              p.LengthCm,
					WidthCm:               p.WidthCm,
					HeightCm:              p.HeightCm,
					InternalVolumeCubicCm: p.InternalVolumeCubicCm,
					PackagingCostAud:      p.PackagingCostAud,
					UpdatedAt:             now,
				}
				if created {
					doc.ID = p.ID
					doc.CreatedAt = now
				}
				return doc
			},
			fromDoc: func(d packagingDocument) model.Packaging {
				return model.Packaging{
					ID:                    d.ID,
					Name:                  d.Name,
					Description:           d.Description,
					LengthCm:              d.LengthCm,
					WidthCm:               d.WidthCm,
					HeightCm:              d.HeightCm,
					InternalVolumeCubicCm: d.InternalVolumeCubicCm,
					PackagingCostAud:      d.PackagingCostAud,
				}
			},
		},
	}
}

// List returns all packaging oldest first.
func (r *PackagingRepository) List(ctx context.Context) ([]model.Packaging, error) {
	return r.catalog.list(ctx)
}

// Get returns the packaging with id, or nil when there is none.
func (r *PackagingRepository) Get(ctx context.Context, id string) (*model.Packaging, error) {
	return r.catalog.get(ctx, id)
}

// Create inserts a new packaging profile.
func (r *PackagingRepository) Create(ctx context.Context, packaging model.Packaging) error {
	return r.catalog.create(ctx, packaging)
}

// Update replaces the stored fields of packaging.
func (r *PackagingRepository) Update(ctx context.Context, packaging model.Packaging) error {
	return r.catalog.update(ctx, packaging.ID, packaging)
}

// Delete removes the packaging with id.
func (r *PackagingRepository) Delete(ctx context.Context, id string) error {
	return r.catalog.remove(ctx, id)
}
