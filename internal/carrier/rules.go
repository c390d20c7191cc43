package carrier

import (
	"context"
	"strings"

	"github.com/guttosm/postage-comparator/config"
	"github.com/guttosm/postage-comparator/internal/domain/model"
	"github.com/guttosm/postage-comparator/internal/logger"
)

// RulesProviderName is the registry key of the rate-table adapter.
const RulesProviderName = "rules"

// RulesProvider prices shipments from a static rate table.
type RulesProvider struct {
	table config.RateTable
}

// NewRulesProvider creates a rules provider backed by table.
func NewRulesProvider(table config.RateTable) *RulesProvider {
	return &RulesProvider{table: table}
}

// Name implements Provider.
func (p *RulesProvider) Name() string {
	return RulesProviderName
}

// Quote charges the higher of the bracket prices matched by actual and volumetric weight.
func (p *RulesProvider) Quote(_ context.Context, req Request) (*model.CarrierQuote, error) {
	byWeight := p.match(req.WeightKg)
	byVolume := p.match(req.VolumeWeightKg)
	if byWeight == nil && byVolume == nil {
		log := logger.Logger()
		log.Debug().
			Float64("weight_kg", req.WeightKg).
			Float64("volume_weight_kg", req.VolumeWeightKg).
			Msg("No rate bracket matches shipment")
		return nil, nil
	}

	delivery := 0.0
	for _, b := range []*config.WeightBracket{byWeight, byVolume} {
		if b != nil && b.Price(req.Express) > delivery {
			delivery = b.Price(req.Express)
		}
	}

	etaMin, etaMax := p.eta(req)
	return &model.CarrierQuote{
		Carrier:            p.table.Carrier,
		ServiceName:        p.table.ServiceName,
		DeliveryEtaDaysMin: model.IntPtr(etaMin),
		DeliveryEtaDaysMax: model.IntPtr(etaMax),
		PackagingCostAud:   req.PackagingCostAud,
		DeliveryCostAud:    delivery,
		SurchargesAud:      model.Float64Ptr(0),
		TotalCostAud:       req.PackagingCostAud + delivery,
		PricingSource:      model.PricingSourceRules,
		RuleFallbackUsed:   true,
	}, nil
}

func (p *RulesProvider) match(weightKg float64) *config.WeightBracket {
	for i := range p.table.Brackets {
		if p.table.Brackets[i].Contains(weightKg) {
			return &p.table.Brackets[i]
		}
	}
	return nil
}

func (p *RulesProvider) eta(req Request) (int, int) {
	service := p.table.Standard
	if req.Express {
		service = p.table.Express
	}

	window := service.Interstate
	if req.OriginState != "" && strings.EqualFold(req.OriginState, req.DestinationState) {
		window = service.SameState
	}

	originMetro, destinationMetro := IsMetro(req.OriginPostcode), IsMetro(req.DestinationPostcode)
	switch {
	case !originMetro && !destinationMetro:
		window.MaxDays += service.RegionalBothEnds
	case !originMetro || !destinationMetro:
		window.MaxDays += service.RegionalOneEnd
	}
	return window.MinDays, window.MaxDays
}
