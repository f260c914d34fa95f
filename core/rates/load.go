// Package rates - HCL rate override loading
package rates

import (
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/shopspring/decimal"

	"scanquote/core/types"
	"scanquote/internal/errors"
)

// ratesFile is the HCL schema for a rate override file. Every attribute is
// optional; absent values keep their compiled-in defaults.
type ratesFile struct {
	Version                *string  `hcl:"version,optional"`
	FallbackCostRatio      *float64 `hcl:"fallback_cost_ratio,optional"`
	MinBillableSqft        *float64 `hcl:"min_billable_sqft,optional"`
	CeilingRate            *float64 `hcl:"ceiling_rate,optional"`
	WalkthroughRate        *float64 `hcl:"walkthrough_rate,optional"`
	MarginFloorPercent     *float64 `hcl:"margin_floor_percent,optional"`
	MarginGuardrailPercent *float64 `hcl:"margin_guardrail_percent,optional"`
	MarginSliderMin        *float64 `hcl:"margin_slider_min,optional"`
	MarginSliderMax        *float64 `hcl:"margin_slider_max,optional"`
	TierASqft              *float64 `hcl:"tier_a_sqft,optional"`

	BaseRates      []rateBlock  `hcl:"base_rate,block"`
	LODMultipliers []rateBlock  `hcl:"lod_multiplier,block"`
	RiskPremiums   []rateBlock  `hcl:"risk_premium,block"`
	TermPremiums   []rateBlock  `hcl:"term_premium,block"`
	Travel         *travelBlock `hcl:"travel,block"`
}

// rateBlock is a labeled scalar override, e.g. base_rate "mep" { rate = 0.22 }
type rateBlock struct {
	Key  string  `hcl:"key,label"`
	Rate float64 `hcl:"rate"`
}

type travelBlock struct {
	StandardRatePerMile   *float64 `hcl:"standard_rate_per_mile,optional"`
	ScanDayThresholdMiles *float64 `hcl:"scan_day_threshold_miles,optional"`
	ScanDayFee            *float64 `hcl:"scan_day_fee,optional"`
	ShortHaulRatePerMile  *float64 `hcl:"short_haul_rate_per_mile,optional"`
	FreeMileageMiles      *float64 `hcl:"free_mileage_miles,optional"`
}

// Load reads an HCL rate override file and layers it over the defaults.
// A missing file is not an error: the compiled-in table is returned.
func Load(path string) (*Configuration, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	src, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, errors.Wrap(errors.TypeRates, "reading rates file", err)
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, path)
	if diags.HasErrors() {
		return nil, errors.Wrap(errors.TypeRates, "parsing rates file", diags)
	}

	var overrides ratesFile
	if diags := gohcl.DecodeBody(file.Body, nil, &overrides); diags.HasErrors() {
		return nil, errors.Wrap(errors.TypeRates, "decoding rates file", diags)
	}

	apply(cfg, &overrides)
	return cfg, nil
}

func apply(cfg *Configuration, o *ratesFile) {
	if o.Version != nil {
		cfg.Version = *o.Version
	}
	setDecimal(&cfg.FallbackCostRatio, o.FallbackCostRatio)
	setFloat(&cfg.MinBillableSqft, o.MinBillableSqft)
	setDecimal(&cfg.CeilingRate, o.CeilingRate)
	setDecimal(&cfg.WalkthroughRate, o.WalkthroughRate)
	setDecimal(&cfg.MarginFloorPercent, o.MarginFloorPercent)
	setDecimal(&cfg.MarginGuardrailPercent, o.MarginGuardrailPercent)
	setFloat(&cfg.MarginSliderMin, o.MarginSliderMin)
	setFloat(&cfg.MarginSliderMax, o.MarginSliderMax)
	setFloat(&cfg.TierASqft, o.TierASqft)

	// Unrecognized labels are dropped so the unknown variants keep their
	// zero-rate fallback.
	for _, b := range o.BaseRates {
		if d := types.ParseDiscipline(b.Key); d != types.DisciplineUnknown {
			cfg.BaseRates[d] = decimal.NewFromFloat(b.Rate)
		}
	}
	for _, b := range o.LODMultipliers {
		if l := types.ParseLOD(b.Key); l != types.LODUnknown {
			cfg.LODMultipliers[l] = decimal.NewFromFloat(b.Rate)
		}
	}
	for _, b := range o.RiskPremiums {
		cfg.RiskPremiums[types.RiskFlag(b.Key)] = decimal.NewFromFloat(b.Rate)
	}
	for _, b := range o.TermPremiums {
		cfg.TermPremiums[types.PaymentTerm(b.Key)] = decimal.NewFromFloat(b.Rate)
	}

	if t := o.Travel; t != nil {
		setDecimal(&cfg.Travel.StandardRatePerMile, t.StandardRatePerMile)
		setFloat(&cfg.Travel.ScanDayThresholdMiles, t.ScanDayThresholdMiles)
		setDecimal(&cfg.Travel.ScanDayFee, t.ScanDayFee)
		setDecimal(&cfg.Travel.ShortHaulRatePerMile, t.ShortHaulRatePerMile)
		setFloat(&cfg.Travel.FreeMileageMiles, t.FreeMileageMiles)
	}
}

func setDecimal(dst *decimal.Decimal, src *float64) {
	if src != nil {
		*dst = decimal.NewFromFloat(*src)
	}
}

func setFloat(dst *float64, src *float64) {
	if src != nil {
		*dst = *src
	}
}
