// Package travel - Dispatch travel cost calculation.
// Travel is a pass-through cost center: the client price always equals
// the cost, and the margin solver never retargets it.
package travel

import (
	"fmt"

	"github.com/shopspring/decimal"

	"scanquote/core/rates"
	"scanquote/core/types"
)

// Calculate computes the travel cost for a quote. The dispatch origin
// selects one of two mutually exclusive algorithms: the Brooklyn
// short-haul origin uses tiered flat fees plus beyond-allowance mileage,
// every other origin uses straight mileage with a scan-day fee once the
// one-way distance crosses the configured threshold.
func Calculate(cfg *rates.Configuration, origin types.DispatchOrigin, miles float64, totalSqft float64, override *types.TravelOverride) types.TravelResult {
	if miles < 0 {
		miles = 0
	}

	if override != nil && override.FlatTotal != nil {
		total := override.FlatTotal.Round(2)
		return types.TravelResult{
			BaseCost: total,
			Total:    total,
			Label:    "Custom travel (manual override)",
			Tier:     "custom",
		}
	}

	if origin == types.OriginBrooklyn {
		return shortHaul(cfg, miles, totalSqft, override)
	}
	return standard(cfg, miles, override)
}

// standard prices miles x rate, plus a flat scan-day fee at or beyond the
// threshold. The threshold models the point where travel consumes a full
// field day that must be billed separately.
func standard(cfg *rates.Configuration, miles float64, override *types.TravelOverride) types.TravelResult {
	rate := cfg.Travel.StandardRatePerMile
	fee := cfg.Travel.ScanDayFee
	custom := false

	if override != nil {
		if override.RatePerMile != nil {
			rate = *override.RatePerMile
			custom = true
		}
		if override.ScanDayFee != nil {
			fee = *override.ScanDayFee
			custom = true
		}
	}

	base := decimal.NewFromFloat(miles).Mul(rate).Round(2)
	scanDay := decimal.Zero
	if miles >= cfg.Travel.ScanDayThresholdMiles {
		scanDay = fee.Round(2)
	}

	label := fmt.Sprintf("Standard travel (%.0f mi @ $%s/mi)", miles, rate.StringFixed(2))
	tier := ""
	if custom {
		label = "Custom travel (manual rates)"
		tier = "custom"
	}

	return types.TravelResult{
		BaseCost:   base,
		ScanDayFee: scanDay,
		Total:      base.Add(scanDay),
		Label:      label,
		Tier:       tier,
	}
}

// shortHaul prices a flat base fee selected by project footprint, plus
// beyond-allowance mileage. Larger projects carry smaller base fees since
// the engagement itself justifies dispatch. No scan-day fee ever applies.
func shortHaul(cfg *rates.Configuration, miles float64, totalSqft float64, override *types.TravelOverride) types.TravelResult {
	rate := cfg.Travel.ShortHaulRatePerMile
	custom := false
	if override != nil && override.RatePerMile != nil {
		rate = *override.RatePerMile
		custom = true
	}

	sizeTier := cfg.Travel.SizeTierFor(totalSqft)

	extraMiles := miles - cfg.Travel.FreeMileageMiles
	if extraMiles < 0 {
		extraMiles = 0
	}
	extra := decimal.NewFromFloat(extraMiles).Mul(rate).Round(2)
	base := sizeTier.BaseFee.Round(2)

	label := fmt.Sprintf("Short-haul travel (%s tier, %.0f mi beyond allowance)", sizeTier.Name, extraMiles)
	tier := sizeTier.Name
	if custom {
		label = "Custom travel (manual rates)"
		tier = "custom"
	}

	return types.TravelResult{
		BaseCost:         base,
		ExtraMileageCost: extra,
		Total:            base.Add(extra),
		Label:            label,
		Tier:             tier,
	}
}
