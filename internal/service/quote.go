package service

import (
	"context"
	"strings"
	"time"

	"github.com/guttosm/postage-comparator/internal/carrier"
	"github.com/guttosm/postage-comparator/internal/domain/model"
	"github.com/guttosm/postage-comparator/internal/logger"
	"github.com/guttosm/postage-comparator/internal/metrics"
	"github.com/guttosm/postage-comparator/internal/repository"
)

// QuoteOptions holds the quote aggregation settings.
type QuoteOptions struct {
	Currency       string
	DefaultCountry string
	// VolumetricFactor is kilograms charged per 1000 cm³.
	VolumetricFactor float64
}

// DefaultQuoteOptions returns the domestic defaults.
func DefaultQuoteOptions() QuoteOptions {
	return QuoteOptions{Currency: "AUD", DefaultCountry: "AU", VolumetricFactor: 0.25}
}

// QuoteService prices shipments.
type QuoteService interface {
	Quote(ctx context.Context, req model.ShipmentRequest) (*model.QuoteResult, error)
}

// QuoteServiceImpl implements QuoteService.
type QuoteServiceImpl struct {
	settings  repository.SettingsStore
	items     repository.ItemStore
	packaging repository.PackagingStore
	providers []carrier.Provider
	opts      QuoteOptions
	now       func() time.Time
}

// NewQuoteService creates a quote service asking providers in order.
func NewQuoteService(
	settings repository.SettingsStore,
	items repository.ItemStore,
	packaging repository.PackagingStore,
	providers []carrier.Provider,
	opts QuoteOptions,
) QuoteService {
	defaults := DefaultQuoteOptions()
	if opts.Currency == "" {
		opts.Currency = defaults.Currency
	}
	if opts.DefaultCountry == "" {
		opts.DefaultCountry = defaults.DefaultCountry
	}
	if opts.VolumetricFactor <= 0 {
		opts.VolumetricFactor = defaults.VolumetricFactor
	}
	return &QuoteServiceImpl{
		settings:  settings,
		items:     items,
		packaging: packaging,
		providers: providers,
		opts:      opts,
		now:       time.Now,
	}
}

// Quote validates req, aggregates its weight and volume, and collects every carrier quote.
func (s *QuoteServiceImpl) Quote(ctx context.Context, req model.ShipmentRequest) (result *model.QuoteResult, err error) {
	start := time.Now()
	defer func() {
		status := "success"
		if err != nil {
			status = "error"
		}
		metrics.RecordQuote(time.Since(start), status)
	}()

	if s.settings == nil || s.items == nil || s.packaging == nil {
		return nil, ErrRepositoryNotConfigured
	}
	if err := validateShipment(&req); err != nil {
		return nil, err
	}

	origin, err := s.settings.Get(ctx)
	if err != nil {
		return nil, err
	}
	if origin == nil {
		return nil, ErrOriginNotConfigured
	}

	packaging, err := s.packaging.Get(ctx, req.PackagingID)
	if err != nil {
		return nil, err
	}
	if packaging == nil {
		return nil, notFound("Packaging", req.PackagingID)
	}

	totalGrams, err := s.totalWeight(ctx, req.Items)
	if err != nil {
		return nil, err
	}

	destination := model.Destination{
		Postcode: req.DestinationPostcode,
		Suburb:   strings.TrimSpace(req.DestinationSuburb),
		State:    strings.TrimSpace(req.DestinationState),
		Country:  strings.ToUpper(strings.TrimSpace(req.Country)),
	}
	if destination.Country == "" {
		destination.Country = s.opts.DefaultCountry
	}

	weightKg := float64(totalGrams) / 1000
	volumeWeightKg := float64(packaging.InternalVolumeCubicCm) * s.opts.VolumetricFactor / 1000

	quotes := s.collectQuotes(ctx, carrier.Request{
		OriginPostcode:      origin.Postcode,
		OriginState:         origin.State,
		DestinationPostcode: destination.Postcode,
		DestinationState:    destination.State,
		DestinationCountry:  destination.Country,
		WeightKg:            weightKg,
		VolumeWeightKg:      volumeWeightKg,
		LengthCm:            packaging.LengthCm,
		WidthCm:             packaging.WidthCm,
		HeightCm:            packaging.HeightCm,
		PackagingCostAud:    packaging.PackagingCostAud,
		Express:             req.IsExpress,
	})
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(quotes) == 0 {
		return nil, ErrNoCarrierQuote
	}

	return &model.QuoteResult{
		TotalWeightGrams:   totalGrams,
		WeightInKg:         weightKg,
		VolumeWeightInKg:   volumeWeightKg,
		TotalVolumeCubicCm: packaging.InternalVolumeCubicCm,
		Origin:             *origin,
		Destination:        destination,
		Packaging:          *packaging,
		CarrierQuotes:      quotes,
		Currency:           s.opts.Currency,
		GeneratedAt:        s.now().UTC(),
	}, nil
}

func validateShipment(req *model.ShipmentRequest) error {
	req.DestinationPostcode = strings.TrimSpace(req.DestinationPostcode)
	req.PackagingID = strings.TrimSpace(req.PackagingID)

	switch {
	case req.DestinationPostcode == "":
		return invalid("Destination postcode is required")
	case !model.IsValidPostcode(req.DestinationPostcode):
		return invalid("Destination postcode must be 4 digits")
	case len(req.Items) == 0:
		return invalid("At least one item is required")
	case req.PackagingID == "":
		return invalid("Packaging is required")
	}
	for _, line := range req.Items {
		if strings.TrimSpace(line.ItemID) == "" {
			return invalid("Item id is required")
		}
		if line.Quantity <= 0 {
			return invalid("Item quantity must be greater than 0")
		}
	}
	return nil
}

// totalWeight sums unit weight × quantity, reading each distinct item once.
func (s *QuoteServiceImpl) totalWeight(ctx context.Context, lines []model.ShipmentItemSelection) (int, error) {
	weights := make(map[string]int, len(lines))
	total := 0
	for _, line := range lines {
		id := strings.TrimSpace(line.ItemID)
		grams, ok := weights[id]
		if !ok {
			item, err := s.items.Get(ctx, id)
			if err != nil {
				return 0, err
			}
			if item == nil {
				return 0, notFound("Item", id)
			}
			grams = item.UnitWeightGrams
			weights[id] = grams
		}
		total += grams * line.Quantity
	}
	return total, nil
}

// collectQuotes asks every provider in order. Failing providers are logged and skipped.
func (s *QuoteServiceImpl) collectQuotes(ctx context.Context, req carrier.Request) []model.CarrierQuote {
	log := logger.Component("quote")
	quotes := make([]model.CarrierQuote, 0, len(s.providers))
	for _, p := range s.providers {
		if ctx.Err() != nil {
			break
		}
		quote, err := p.Quote(ctx, req)
		switch {
		case err != nil:
			metrics.RecordCarrierQuote(p.Name(), "error")
			log.Warn().Err(err).Str("provider", p.Name()).Msg("Carrier quote failed")
		case quote == nil:
			metrics.RecordCarrierQuote(p.Name(), "skipped")
			log.Debug().Str("provider", p.Name()).Msg("Carrier returned no quote")
		default:
			metrics.RecordCarrierQuote(p.Name(), "ok")
			quotes = append(quotes, *quote)
		}
	}
	return quotes
}
