// Package pricing - Per-area pricing calculators.
// Calculators never reject input: sizes are floored, unknown codes resolve
// to zero rates, and a draft quote always prices end to end.
package pricing

import (
	"github.com/shopspring/decimal"

	"scanquote/core/rates"
	"scanquote/core/types"
)

// AreaPrice is the priced output for one discipline of one area
type AreaPrice struct {
	// ClientPrice is the client-facing price
	ClientPrice decimal.Decimal

	// CostBasis is the internal delivery cost
	CostBasis decimal.Decimal

	// EffectiveSize is the billed size after the minimum-area floor
	EffectiveSize float64
}

// EffectiveSize floors a nominal size to the minimum billable area.
// Small areas still incur fixed setup overhead; the floor applies before
// any rate multiplication.
func EffectiveSize(size, floor float64) float64 {
	if size < floor {
		return floor
	}
	return size
}

// PriceArea prices one discipline's work for one area.
//
// When configured per-unit rates are supplied they are assumed to already
// encode LOD-appropriate pricing and bypass the multiplier table. Otherwise
// the fallback path is base rate x LOD multiplier, with cost derived from
// the client price via the fallback cost ratio.
func PriceArea(cfg *rates.Configuration, size float64, disc types.Discipline, lod types.LOD, scope types.Scope, configured *types.ConfiguredRates) AreaPrice {
	effective := EffectiveSize(size, cfg.MinBillableSqft)
	portion := cfg.ScopePortion(scope)
	sized := decimal.NewFromFloat(effective)

	var client, cost decimal.Decimal
	if configured != nil {
		client = sized.Mul(configured.ClientRate).Mul(portion)
		cost = sized.Mul(configured.CostRate).Mul(portion)
	} else {
		client = sized.Mul(cfg.BaseRate(disc)).Mul(cfg.LODMultiplier(lod)).Mul(portion)
		cost = client.Mul(cfg.FallbackCostRatio)
	}

	return AreaPrice{
		ClientPrice:   client.Round(2),
		CostBasis:     cost.Round(2),
		EffectiveSize: effective,
	}
}

// PriceMixedArea prices a mixed-scope area as an interior pass plus an
// exterior pass, each at its own LOD override when provided. The two
// passes share one floored size and sum into a single priced result.
func PriceMixedArea(cfg *rates.Configuration, size float64, disc types.Discipline, areaLOD types.LOD, mixed *types.MixedScopeLOD, configured *types.ConfiguredRates) AreaPrice {
	interiorLOD, exteriorLOD := areaLOD, areaLOD
	if mixed != nil {
		if mixed.Interior != "" {
			interiorLOD = mixed.Interior
		}
		if mixed.Exterior != "" {
			exteriorLOD = mixed.Exterior
		}
	}

	interior := PriceArea(cfg, size, disc, interiorLOD, types.ScopeInterior, configured)
	exterior := PriceArea(cfg, size, disc, exteriorLOD, types.ScopeExterior, configured)

	return AreaPrice{
		ClientPrice:   interior.ClientPrice.Add(exterior.ClientPrice),
		CostBasis:     interior.CostBasis.Add(exterior.CostBasis),
		EffectiveSize: interior.EffectiveSize,
	}
}
