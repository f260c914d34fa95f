// Package pricing - Ceiling-only and walkthrough overlay pricing
package pricing

import (
	"github.com/shopspring/decimal"

	"scanquote/core/rates"
	"scanquote/core/types"
)

// PriceCeiling prices a ceiling-only capture. Same floor-then-rate-then-
// scope shape as the standard calculator, but with a dedicated flat rate
// and no LOD multiplier (LOD is not meaningful for this capture mode).
//
// Scope is applied through the complementary discount table rather than
// the portion table; both tables are live rules carried from the rate
// sheet and must stay independent.
func PriceCeiling(cfg *rates.Configuration, size float64, scope types.Scope) AreaPrice {
	effective := EffectiveSize(size, cfg.MinBillableSqft)
	scopeFactor := decimal.NewFromInt(1).Sub(cfg.ScopeDiscount(scope))

	client := decimal.NewFromFloat(effective).Mul(cfg.CeilingRate).Mul(scopeFactor)
	cost := client.Mul(cfg.FallbackCostRatio)

	return AreaPrice{
		ClientPrice:   client.Round(2),
		CostBasis:     cost.Round(2),
		EffectiveSize: effective,
	}
}

// PriceWalkthrough prices the photogrammetry walkthrough overlay add-on
// for an area. Flat per-sqft rate over the floored size; no LOD or scope.
func PriceWalkthrough(cfg *rates.Configuration, size float64) AreaPrice {
	effective := EffectiveSize(size, cfg.MinBillableSqft)

	client := decimal.NewFromFloat(effective).Mul(cfg.WalkthroughRate)
	cost := client.Mul(cfg.FallbackCostRatio)

	return AreaPrice{
		ClientPrice:   client.Round(2),
		CostBasis:     cost.Round(2),
		EffectiveSize: effective,
	}
}
