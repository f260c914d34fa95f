// Package types - Derived quote result types
package types

import "github.com/shopspring/decimal"

// LineItem is a single priced line of the quote. Immutable once computed;
// the engine rebuilds every line on each recalculation.
type LineItem struct {
	// AreaID links back to the source area
	AreaID string `json:"area_id"`

	// AreaName is the source area's display name
	AreaName string `json:"area_name"`

	// Label is the discipline or category label for display
	Label string `json:"label"`

	// Category partitions the line for subtotaling
	Category LineCategory `json:"category"`

	// BuildingType is the source area classification
	BuildingType BuildingType `json:"building_type,omitempty"`

	// Discipline is the priced discipline, when applicable
	Discipline Discipline `json:"discipline,omitempty"`

	// LOD is the level of development the line was priced at
	LOD LOD `json:"lod,omitempty"`

	// Scope is the capture scope the line was priced at
	Scope Scope `json:"scope,omitempty"`

	// EffectiveSize is the billed size after the minimum-area floor
	EffectiveSize float64 `json:"effective_size,omitempty"`

	// ClientPrice is the final client-facing price
	ClientPrice decimal.Decimal `json:"client_price"`

	// CostBasis is the internal delivery cost, tracked independently.
	// CostBasis above ClientPrice is reportable, not a structural error.
	CostBasis decimal.Decimal `json:"cost_basis"`

	// RiskMultiplier annotates the applied risk loading (1 = none)
	RiskMultiplier decimal.Decimal `json:"risk_multiplier"`
}

// Margin returns the line's gross margin (price minus cost)
func (l LineItem) Margin() decimal.Decimal {
	return l.ClientPrice.Sub(l.CostBasis)
}

// TravelResult is the computed travel cost for the whole quote.
// Travel is a pass-through cost center: client price equals cost.
type TravelResult struct {
	// BaseCost is the mileage or flat base component
	BaseCost decimal.Decimal `json:"base_cost"`

	// ExtraMileageCost is the beyond-allowance component (tiered algorithm)
	ExtraMileageCost decimal.Decimal `json:"extra_mileage_cost"`

	// ScanDayFee is the flat extra-day fee (standard algorithm only)
	ScanDayFee decimal.Decimal `json:"scan_day_fee"`

	// Total is the full travel cost
	Total decimal.Decimal `json:"total"`

	// Label is a human-readable description of how travel was priced
	Label string `json:"label"`

	// Tier identifies the selected size tier ("" for standard/custom)
	Tier string `json:"tier,omitempty"`
}

// IntegrityFlag is a guardrail finding surfaced with the quote
type IntegrityFlag struct {
	// Severity tags the finding
	Severity Severity `json:"severity"`

	// Message is the display-ready flag text
	Message string `json:"message"`
}

// QuoteResult is the full output of the assembler: display-ready and
// storage-ready without further transformation.
type QuoteResult struct {
	// QuoteID links back to the input
	QuoteID string `json:"quote_id"`

	// Lines are all priced line items, travel included
	Lines []LineItem `json:"lines"`

	// Travel is the computed travel breakdown
	Travel TravelResult `json:"travel"`

	// Subtotals is client price partitioned by line category
	Subtotals map[LineCategory]decimal.Decimal `json:"subtotals"`

	// TotalSqft is the project footprint in square feet (acreage converted)
	TotalSqft float64 `json:"total_sqft"`

	// TotalCostBasis is the aggregate delivery cost, travel included
	TotalCostBasis decimal.Decimal `json:"total_cost_basis"`

	// TotalClientPrice is the aggregate client price before payment terms
	TotalClientPrice decimal.Decimal `json:"total_client_price"`

	// GrossMargin is TotalClientPrice minus TotalCostBasis
	GrossMargin decimal.Decimal `json:"gross_margin"`

	// GrossMarginPercent is the margin as a percentage (0 when price is 0)
	GrossMarginPercent decimal.Decimal `json:"gross_margin_percent"`

	// Status is the margin guardrail verdict
	Status IntegrityStatus `json:"status"`

	// Flags are guardrail findings with severity
	Flags []IntegrityFlag `json:"flags,omitempty"`

	// PaymentTerm is the applied payment schedule
	PaymentTerm PaymentTerm `json:"payment_term"`

	// PaymentTermPremium is the premium amount for the payment schedule
	PaymentTermPremium decimal.Decimal `json:"payment_term_premium"`

	// GrandTotal is TotalClientPrice plus PaymentTermPremium
	GrandTotal decimal.Decimal `json:"grand_total"`

	// TierA marks a large project requiring manual review
	TierA bool `json:"tier_a"`
}
