// Package rates - Versioned rate configuration for the quote engine.
// A Configuration is an immutable snapshot: callers pass one value through
// an entire assemble/retarget invocation and never mutate it mid-quote.
package rates

import (
	"github.com/shopspring/decimal"

	"scanquote/core/types"
)

// SizeTier maps a project-size bucket to a flat travel base fee
type SizeTier struct {
	// Name identifies the tier for display/audit
	Name string `json:"name"`

	// UpToSqft is the exclusive upper bound (0 = unbounded)
	UpToSqft float64 `json:"up_to_sqft"`

	// BaseFee is the flat dispatch fee for this bucket
	BaseFee decimal.Decimal `json:"base_fee"`
}

// TravelRates holds both travel algorithms' constants
type TravelRates struct {
	// StandardRatePerMile is the long-haul $/mile rate
	StandardRatePerMile decimal.Decimal `json:"standard_rate_per_mile"`

	// ScanDayThresholdMiles is where the scan-day fee kicks in (inclusive)
	ScanDayThresholdMiles float64 `json:"scan_day_threshold_miles"`

	// ScanDayFee is the flat extra-day fee beyond the threshold
	ScanDayFee decimal.Decimal `json:"scan_day_fee"`

	// ShortHaulRatePerMile is the $/mile rate beyond the free allowance
	ShortHaulRatePerMile decimal.Decimal `json:"short_haul_rate_per_mile"`

	// FreeMileageMiles is the short-haul free mileage allowance
	FreeMileageMiles float64 `json:"free_mileage_miles"`

	// SizeTiers are project-size buckets in ascending order, last unbounded
	SizeTiers []SizeTier `json:"size_tiers"`
}

// ElevationBracket is one segment of the progressive elevation table
type ElevationBracket struct {
	// UpToCount is the inclusive count ceiling (0 = unbounded)
	UpToCount int `json:"up_to_count"`

	// Rate is the marginal price per elevation within the segment
	Rate decimal.Decimal `json:"rate"`
}

// LandscapeRates prices landscape areas per acre, tiered by acreage
type LandscapeRates struct {
	// AcreageBreakpoints partition acreage into tiers, half-open on the
	// low end; the tier above the last breakpoint is unbounded.
	AcreageBreakpoints []float64 `json:"acreage_breakpoints"`

	// Matrix is $/acre keyed [building type][LOD][tier index].
	// Each rate slice has len(AcreageBreakpoints)+1 entries.
	Matrix map[types.BuildingType]map[types.LOD][]decimal.Decimal `json:"matrix"`
}

// Configuration is the full rate table for one quote calculation
type Configuration struct {
	// Version identifies the rate table revision
	Version string `json:"version"`

	// BaseRates is $/sqft by discipline
	BaseRates map[types.Discipline]decimal.Decimal `json:"base_rates"`

	// LODMultipliers scale base rates by level of development
	LODMultipliers map[types.LOD]decimal.Decimal `json:"lod_multipliers"`

	// ScopePortions is the captured fraction by scope
	ScopePortions map[types.Scope]decimal.Decimal `json:"scope_portions"`

	// ScopeDiscounts is the complementary not-captured fraction by scope.
	// Kept as a separate live table; some calculators price via 1-discount.
	ScopeDiscounts map[types.Scope]decimal.Decimal `json:"scope_discounts"`

	// RiskPremiums are additive loadings by risk flag
	RiskPremiums map[types.RiskFlag]decimal.Decimal `json:"risk_premiums"`

	// TermPremiums are grand-total premium rates by payment term
	TermPremiums map[types.PaymentTerm]decimal.Decimal `json:"term_premiums"`

	// FallbackCostRatio converts client price to cost when no configured
	// per-unit cost rate exists
	FallbackCostRatio decimal.Decimal `json:"fallback_cost_ratio"`

	// MinBillableSqft floors every area before rate multiplication
	MinBillableSqft float64 `json:"min_billable_sqft"`

	// CeilingRate is the flat $/sqft for ceiling-only capture (no LOD)
	CeilingRate decimal.Decimal `json:"ceiling_rate"`

	// WalkthroughRate is the flat $/sqft for the walkthrough overlay
	WalkthroughRate decimal.Decimal `json:"walkthrough_rate"`

	// Travel holds the travel rate set
	Travel TravelRates `json:"travel"`

	// Landscape holds the per-acre rate matrix
	Landscape LandscapeRates `json:"landscape"`

	// ElevationBrackets is the progressive elevation table, ascending
	ElevationBrackets []ElevationBracket `json:"elevation_brackets"`

	// MarginFloorPercent is the blocked/warning boundary
	MarginFloorPercent decimal.Decimal `json:"margin_floor_percent"`

	// MarginGuardrailPercent is the warning/passed boundary
	MarginGuardrailPercent decimal.Decimal `json:"margin_guardrail_percent"`

	// MarginSliderMin and MarginSliderMax bound the retarget slider
	MarginSliderMin float64 `json:"margin_slider_min"`
	MarginSliderMax float64 `json:"margin_slider_max"`

	// SqftPerAcre converts landscape acreage to footprint square feet
	SqftPerAcre float64 `json:"sqft_per_acre"`

	// TierASqft is the total-footprint threshold for Tier A review
	TierASqft float64 `json:"tier_a_sqft"`
}

// BaseRate returns the $/sqft for a discipline, zero when unknown
func (c *Configuration) BaseRate(d types.Discipline) decimal.Decimal {
	return c.BaseRates[d]
}

// LODMultiplier returns the multiplier for an LOD, zero when unknown
func (c *Configuration) LODMultiplier(l types.LOD) decimal.Decimal {
	return c.LODMultipliers[l]
}

// ScopePortion returns the captured fraction for a scope, zero when unknown
func (c *Configuration) ScopePortion(s types.Scope) decimal.Decimal {
	return c.ScopePortions[s]
}

// ScopeDiscount returns the complementary fraction for a scope
func (c *Configuration) ScopeDiscount(s types.Scope) decimal.Decimal {
	return c.ScopeDiscounts[s]
}

// RiskPremium returns the additive loading for a flag, zero when unknown
func (c *Configuration) RiskPremium(f types.RiskFlag) decimal.Decimal {
	return c.RiskPremiums[f]
}

// TermPremium returns the premium rate for a payment term, zero when unknown
func (c *Configuration) TermPremium(t types.PaymentTerm) decimal.Decimal {
	return c.TermPremiums[t]
}

// LandscapeRate returns the $/acre rate for a building type, LOD, and
// acreage. Unknown keys resolve to zero per the silent-degradation rule.
func (c *Configuration) LandscapeRate(b types.BuildingType, l types.LOD, acres float64) decimal.Decimal {
	byLOD, ok := c.Landscape.Matrix[b]
	if !ok {
		return decimal.Zero
	}
	row, ok := byLOD[l]
	if !ok {
		return decimal.Zero
	}
	idx := c.Landscape.TierIndex(acres)
	if idx >= len(row) {
		return decimal.Zero
	}
	return row[idx]
}

// TierIndex returns the acreage tier for a parcel size.
// Breakpoints are half-open on the low end; the top tier is unbounded.
func (r LandscapeRates) TierIndex(acres float64) int {
	for i, bp := range r.AcreageBreakpoints {
		if acres < bp {
			return i
		}
	}
	return len(r.AcreageBreakpoints)
}

// SizeTierFor returns the travel size tier for a project footprint
func (t TravelRates) SizeTierFor(totalSqft float64) SizeTier {
	for _, tier := range t.SizeTiers {
		if tier.UpToSqft == 0 || totalSqft < tier.UpToSqft {
			return tier
		}
	}
	if len(t.SizeTiers) > 0 {
		return t.SizeTiers[len(t.SizeTiers)-1]
	}
	return SizeTier{}
}
