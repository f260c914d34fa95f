// Package pricing - Landscape (per-acre) pricing
package pricing

import (
	"github.com/shopspring/decimal"

	"scanquote/core/rates"
	"scanquote/core/types"
)

// PriceLandscape prices a landscape area by acreage. The rate comes from
// the [building type][LOD][acreage tier] matrix; the minimum-area floor
// does not apply, acreage is simply clamped at zero.
func PriceLandscape(cfg *rates.Configuration, buildingType types.BuildingType, acres float64, lod types.LOD) AreaPrice {
	if acres < 0 {
		acres = 0
	}

	rate := cfg.LandscapeRate(buildingType, lod, acres)
	client := decimal.NewFromFloat(acres).Mul(rate)
	cost := client.Mul(cfg.FallbackCostRatio)

	return AreaPrice{
		ClientPrice:   client.Round(2),
		CostBasis:     cost.Round(2),
		EffectiveSize: acres,
	}
}
