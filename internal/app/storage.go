package app

import (
	"context"
	"fmt"

	"github.com/guttosm/postage-comparator/config"
	"github.com/guttosm/postage-comparator/internal/circuitbreaker"
	"github.com/guttosm/postage-comparator/internal/metrics"
	"github.com/guttosm/postage-comparator/internal/repository"
	"github.com/rs/zerolog/log"
)

// StorageComponents holds the stores of the configured driver.
type StorageComponents struct {
	Driver          string
	Stores          repository.Stores
	CircuitBreakers []*circuitbreaker.CircuitBreaker
}

// Close releases the backend behind the stores.
func (s *StorageComponents) Close(ctx context.Context) error {
	if s == nil || s.Stores.Close == nil {
		return nil
	}
	return s.Stores.Close(ctx)
}

// InitializeStorage opens the storage selected by cfg.Storage.Driver.
// Unlike the file driver, a MongoDB backend is wrapped in per-store circuit breakers.
func InitializeStorage(cfg config.Config) (*StorageComponents, error) {
	switch cfg.Storage.Driver {
	case config.StorageDriverMongo:
		return initializeMongoStorage(cfg.Database)
	default:
		return initializeFileStorage(cfg.Storage)
	}
}

func initializeFileStorage(cfg config.StorageConfig) (*StorageComponents, error) {
	fs, err := repository.NewFileStorage(cfg.DataDir)
	if err != nil {
		return nil, err
	}
	log.Info().Str("data_dir", cfg.DataDir).Msg("Using JSON file storage")

	return &StorageComponents{
		Driver: config.StorageDriverFile,
		Stores: fs.Stores(),
	}, nil
}

func initializeMongoStorage(cfg config.DatabaseConfig) (*StorageComponents, error) {
	db, err := repository.NewMongoDBWithConfig(cfg.URI, cfg.DatabaseName, mongoConfig(cfg))
	if err != nil {
		return nil, fmt.Errorf("connect to MongoDB: %w", err)
	}
	log.Info().Str("database", cfg.DatabaseName).Msg("Connected to MongoDB")

	stores, breakers := repository.WithCircuitBreakers(db.Stores(), "mongodb", breakerConfig(cfg))
	for _, cb := range breakers {
		metrics.SetStorageCircuitState(cb.Name(), int(cb.State()))
	}

	return &StorageComponents{
		Driver:          config.StorageDriverMongo,
		Stores:          stores,
		CircuitBreakers: breakers,
	}, nil
}

func mongoConfig(cfg config.DatabaseConfig) repository.MongoConfig {
	mc := repository.DefaultMongoConfig()
	if cfg.MaxPoolSize > 0 {
		mc.MaxPoolSize = cfg.MaxPoolSize
	}
	if cfg.ConnectTimeout > 0 {
		mc.ConnectTimeout = cfg.ConnectTimeout
	}
	return mc
}

// breakerConfig builds the shared breaker settings; every transition is logged and exported.
func breakerConfig(cfg config.DatabaseConfig) circuitbreaker.Config {
	return circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		OnStateChange: func(name string, from, to circuitbreaker.State) {
			metrics.SetStorageCircuitState(name, int(to))
			event := log.Info()
			if to == circuitbreaker.StateOpen {
				event = log.Warn()
			}
			event.
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("Storage circuit breaker changed state")
		},
	}
}
