package app

import (
	"fmt"
	"strings"

	"github.com/guttosm/postage-comparator/config"
	"github.com/guttosm/postage-comparator/internal/carrier"
	"github.com/guttosm/postage-comparator/internal/repository"
	"github.com/guttosm/postage-comparator/internal/service"
	"github.com/rs/zerolog/log"
)

// ServiceComponents holds the business services behind the API.
type ServiceComponents struct {
	Settings  service.SettingsService
	Items     service.ItemService
	Packaging service.PackagingService
	Quotes    service.QuoteService
	Providers []carrier.Provider
}

// InitializeServices builds the carrier registry and every service on top of stores.
// It fails when the rate table cannot be loaded or no configured provider exists.
func InitializeServices(cfg config.QuoteConfig, stores repository.Stores) (*ServiceComponents, error) {
	table, err := config.LoadRateTable(cfg.RateTableFile)
	if err != nil {
		return nil, err
	}

	registry := carrier.NewRegistry(carrier.NewRulesProvider(table))
	providers := registry.Enabled(cfg.Providers)
	if len(providers) == 0 {
		return nil, fmt.Errorf("no carrier provider enabled (configured: %s)", strings.Join(cfg.Providers, ","))
	}

	names := make([]string, len(providers))
	for i, p := range providers {
		names[i] = p.Name()
	}
	log.Info().Strs("providers", names).Str("rate_table", rateTableSource(cfg.RateTableFile)).Msg("Carrier providers enabled")

	return &ServiceComponents{
		Settings:  service.NewSettingsService(stores.Settings),
		Items:     service.NewItemService(stores.Items),
		Packaging: service.NewPackagingService(stores.Packaging),
		Quotes: service.NewQuoteService(stores.Settings, stores.Items, stores.Packaging, providers, service.QuoteOptions{
			Currency:         cfg.Currency,
			DefaultCountry:   cfg.DefaultCountry,
			VolumetricFactor: cfg.VolumetricFactor,
		}),
		Providers: providers,
	}, nil
}

func rateTableSource(path string) string {
	if path == "" {
		return "built-in"
	}
	return path
}
