package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	settingsCollection  = "settings"
	itemsCollection     = "items"
	packagingCollection = "packaging"

	mongoPingTimeout = 2 * time.Second
)

// MongoConfig tunes the driver connection pool.
type MongoConfig struct {
	MaxPoolSize            uint64
	MinPoolSize            uint64
	MaxConnIdleTime        time.Duration
	ConnectTimeout         time.Duration
	ServerSelectionTimeout time.Duration
	// Compressors are offered to the server in preference order. Empty disables compression.
	Compressors []string
}

// DefaultMongoConfig sizes the pool for a single API instance.
func DefaultMongoConfig() MongoConfig {
	return MongoConfig{
		MaxPoolSize:            20,
		MinPoolSize:            2,
		MaxConnIdleTime:        5 * time.Minute,
		ConnectTimeout:         10 * time.Second,
		ServerSelectionTimeout: 5 * time.Second,
		Compressors:            []string{"zstd", "snappy"},
	}
}

func (c MongoConfig) clientOptions(uri string) *options.ClientOptions {
	opts := options.Client().
		ApplyURI(uri).
		SetMaxPoolSize(c.MaxPoolSize).
		SetMinPoolSize(min(c.MinPoolSize, c.MaxPoolSize)).
		SetMaxConnIdleTime(c.MaxConnIdleTime).
		SetConnectTimeout(c.ConnectTimeout).
		SetServerSelectionTimeout(c.ServerSelectionTimeout).
		SetRetryReads(true).
		SetRetryWrites(true)
	if len(c.Compressors) > 0 {
		opts.SetCompressors(c.Compressors)
	}
	return opts
}

// MongoDB holds the client and the three catalog collections.
type MongoDB struct {
	Client    *mongo.Client
	Database  *mongo.Database
	Settings  *mongo.Collection
	Items     *mongo.Collection
	Packaging *mongo.Collection
}

// NewMongoDB connects with DefaultMongoConfig.
func NewMongoDB(uri, databaseName string) (*MongoDB, error) {
	return NewMongoDBWithConfig(uri, databaseName, DefaultMongoConfig())
}

// NewMongoDBWithConfig connects, pings and ensures indexes before returning.
// The client is disconnected again if any step fails.
func NewMongoDBWithConfig(uri, databaseName string, cfg MongoConfig) (*MongoDB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, cfg.clientOptions(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	db := client.Database(databaseName)
	m := &MongoDB{
		Client:    client,
		Database:  db,
		Settings:  db.Collection(settingsCollection),
		Items:     db.Collection(itemsCollection),
		Packaging: db.Collection(packagingCollection),
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}
	if err := m.ensureIndexes(ctx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo indexes: %w", err)
	}
	return m, nil
}

// catalogIndexes backs case-insensitive name uniqueness and creation-order listing.
var catalogIndexes = []mongo.IndexModel{
	{Keys: bson.D{{Key: "name_key", Value: 1}}, Options: options.Index().SetUnique(true)},
	{Keys: bson.D{{Key: "created_at", Value: 1}}},
}

func (m *MongoDB) ensureIndexes(ctx context.Context) error {
	for _, coll := range []*mongo.Collection{m.Items, m.Packaging} {
		if _, err := coll.Indexes().CreateMany(ctx, catalogIndexes); err != nil {
			return fmt.Errorf("%s: %w", coll.Name(), err)
		}
	}
	return nil
}

// Stores exposes the collections through the repository interfaces. The
// caller decides whether to add circuit breakers.
func (m *MongoDB) Stores() Stores {
	return Stores{
		Settings:  NewSettingsRepository(m),
		Items:     NewItemRepository(m),
		Packaging: NewPackagingRepository(m),
		Health:    m,
		Close:     m.Close,
	}
}

// Close disconnects the client.
func (m *MongoDB) Close(ctx context.Context) error {
	return m.Client.Disconnect(ctx)
}

// HealthCheck pings the primary, bounded by two seconds.
func (m *MongoDB) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, mongoPingTimeout)
	defer cancel()
	return m.Client.Ping(ctx, nil)
}
