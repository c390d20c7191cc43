package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/guttosm/postage-comparator/internal/domain/model"
)

// settingsDocumentID is the _id of the single settings document.
const settingsDocumentID = "origin"

type settingsDocument struct {
	ID              string     `bson:"_id"`
	Postcode        string     `bson:"postcode"`
	Suburb          string     `bson:"suburb"`
	State           string     `bson:"state"`
	Country         string     `bson:"country"`
	ThemePreference *string    `bson:"theme_preference"`
	UpdatedAt       *time.Time `bson:"updated_at"`
}

// SettingsRepository stores the origin settings in the settings collection.
type SettingsRepository struct {
	collection *mongo.Collection
}

// NewSettingsRepository creates a new settings repository.
func NewSettingsRepository(db *MongoDB) *SettingsRepository {
	return &SettingsRepository{
		collection: db.Settings,
	}
}

// Get returns the saved settings or nil when none exist.
func (r *SettingsRepository) Get(ctx context.Context) (*model.OriginSettings, error) {
	var doc settingsDocument
	err := r.collection.FindOne(ctx, bson.M{"_id": settingsDocumentID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &model.OriginSettings{
		Postcode:        doc.Postcode,
		Suburb:          doc.Suburb,
		State:           doc.State,
		Country:         doc.Country,
		ThemePreference: doc.ThemePreference,
		UpdatedAt:       doc.UpdatedAt,
	}, nil
}

// Save upserts the settings document.
func (r *SettingsRepository) Save(ctx context.Context, settings model.OriginSettings) error {
	doc := settingsDocument{
		ID:              settingsDocumentID,
		Postcode:        settings.Postcode,
		Suburb:          settings.Suburb,
		State:           settings.State,
		Country:         settings.Country,
		ThemePreference: settings.ThemePreference,
		UpdatedAt:       settings.UpdatedAt,
	}
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": settingsDocumentID}, doc, options.Replace().SetUpsert(true))
	return err
}
