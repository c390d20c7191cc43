package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// WeightBracket prices parcels whose chargeable weight falls in (MinKg, MaxKg].
type WeightBracket struct {
	MinKg       float64 `yaml:"min_kg"`
	MaxKg       float64 `yaml:"max_kg"`
	StandardAud float64 `yaml:"standard_aud"`
	ExpressAud  float64 `yaml:"express_aud"`
}

// Contains reports whether weightKg falls inside the bracket.
func (b WeightBracket) Contains(weightKg float64) bool {
	return weightKg > b.MinKg && weightKg <= b.MaxKg
}

// Price returns the bracket price for the service level.
func (b WeightBracket) Price(express bool) float64 {
	if express {
		return b.ExpressAud
	}
	return b.StandardAud
}

// EtaRange is a delivery window in business days.
type EtaRange struct {
	MinDays int `yaml:"min_days"`
	MaxDays int `yaml:"max_days"`
}

// ServiceEta holds the delivery windows of one service level.
// Regional extra days are added to MaxDays when one or both postcodes are outside a metro area.
type ServiceEta struct {
	Interstate       EtaRange `yaml:"interstate"`
	SameState        EtaRange `yaml:"same_state"`
	RegionalOneEnd   int      `yaml:"regional_one_end"`
	RegionalBothEnds int      `yaml:"regional_both_ends"`
}

// RateTable is the static pricing used by the rules carrier adapter.
type RateTable struct {
	Carrier     string          `yaml:"carrier"`
	ServiceName string          `yaml:"service_name"`
	Brackets    []WeightBracket `yaml:"brackets"`
	Standard    ServiceEta      `yaml:"standard"`
	Express     ServiceEta      `yaml:"express"`
}

// DefaultRateTable returns the built-in domestic parcel table.
func DefaultRateTable() RateTable {
	return RateTable{
		Carrier:     "AUSPOST",
		ServiceName: "Derived from rules",
		Brackets: []WeightBracket{
			{MinKg: 0, MaxKg: 0.25, StandardAud: 9.70, ExpressAud: 12.70},
			{MinKg: 0.25, MaxKg: 0.5, StandardAud: 11.15, ExpressAud: 14.65},
			{MinKg: 0.5, MaxKg: 1.0, StandardAud: 15.25, ExpressAud: 19.25},
			{MinKg: 1.0, MaxKg: 3.0, StandardAud: 19.30, ExpressAud: 23.80},
			{MinKg: 3.0, MaxKg: 5.0, StandardAud: 23.30, ExpressAud: 31.80},
		},
		Standard: ServiceEta{
			Interstate:       EtaRange{MinDays: 3, MaxDays: 6},
			SameState:        EtaRange{MinDays: 2, MaxDays: 4},
			RegionalOneEnd:   2,
			RegionalBothEnds: 3,
		},
		Express: ServiceEta{
			Interstate:       EtaRange{MinDays: 1, MaxDays: 3},
			SameState:        EtaRange{MinDays: 1, MaxDays: 2},
			RegionalOneEnd:   1,
			RegionalBothEnds: 2,
		},
	}
}

// LoadRateTable reads a YAML rate table from path. An empty path returns DefaultRateTable.
// Fields missing from the file keep their default values.
func LoadRateTable(path string) (RateTable, error) {
	table := DefaultRateTable()
	if path == "" {
		return table, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return RateTable{}, fmt.Errorf("read rate table: %w", err)
	}

	var loaded RateTable
	if err := yaml.Unmarshal(raw, &loaded); err != nil {
		return RateTable{}, fmt.Errorf("parse rate table: %w", err)
	}

	if loaded.Carrier != "" {
		table.Carrier = loaded.Carrier
	}
	if loaded.ServiceName != "" {
		table.ServiceName = loaded.ServiceName
	}
	if len(loaded.Brackets) > 0 {
		table.Brackets = loaded.Brackets
	}
	if loaded.Standard.Interstate.MaxDays > 0 {
		table.Standard = loaded.Standard
	}
	if loaded.Express.Interstate.MaxDays > 0 {
		table.Express = loaded.Express
	}

	if err := table.Validate(); err != nil {
		return RateTable{}, err
	}
	return table, nil
}

// Validate checks that every bracket is well formed.
func (t RateTable) Validate() error {
	if len(t.Brackets) == 0 {
		return errors.New("rate table has no brackets")
	}
	for i, b := range t.Brackets {
		if b.MaxKg <= b.MinKg {
			return fmt.Errorf("bracket %d: max_kg must exceed min_kg", i)
		}
		if b.StandardAud <= 0 || b.ExpressAud <= 0 {
			return fmt.Errorf("bracket %d: prices must be positive", i)
		}
	}
	return nil
}
