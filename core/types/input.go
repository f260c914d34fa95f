// Package types - Quote input types
package types

import "github.com/shopspring/decimal"

// ConfiguredRates carries negotiated or catalog per-unit rates for a
// discipline. When present they are assumed to already encode
// LOD-appropriate pricing, so the LOD multiplier is bypassed.
type ConfiguredRates struct {
	// ClientRate is the negotiated client price per square foot
	ClientRate decimal.Decimal `json:"client_rate"`

	// CostRate is the internal delivery cost per square foot
	CostRate decimal.Decimal `json:"cost_rate"`
}

// MixedScopeLOD carries per-portion LOD overrides for a mixed-scope area.
// A zero value for either portion falls back to the area LOD.
type MixedScopeLOD struct {
	// Interior is the LOD for the interior portion
	Interior LOD `json:"interior,omitempty"`

	// Exterior is the LOD for the exterior portion
	Exterior LOD `json:"exterior,omitempty"`
}

// Area describes one building area to be documented.
// Size is square feet for standard and ceiling-only types and acres for
// landscape types.
type Area struct {
	// ID uniquely identifies the area within the quote
	ID string `json:"id"`

	// Name is a human-readable area name
	Name string `json:"name"`

	// BuildingType selects the pricing calculator
	BuildingType BuildingType `json:"building_type"`

	// Size is the nominal size (sqft, or acres for landscape types)
	Size float64 `json:"size"`

	// Disciplines are the requested documentation disciplines.
	// Ignored for specialty (landscape, ceiling-only) types.
	Disciplines []Discipline `json:"disciplines,omitempty"`

	// LOD is the area-wide level of development
	LOD LOD `json:"lod"`

	// DisciplineLOD overrides the area LOD per discipline
	DisciplineLOD map[Discipline]LOD `json:"discipline_lod,omitempty"`

	// Scope is the capture scope classification
	Scope Scope `json:"scope"`

	// MixedLOD carries per-portion LODs when Scope is mixed
	MixedLOD *MixedScopeLOD `json:"mixed_lod,omitempty"`

	// Rates are optional negotiated per-unit rates, keyed by discipline
	Rates map[Discipline]ConfiguredRates `json:"rates,omitempty"`

	// RiskFlags are area-level risk conditions
	RiskFlags []RiskFlag `json:"risk_flags,omitempty"`

	// Elevations is the count of additional building elevations
	Elevations int `json:"elevations,omitempty"`

	// Walkthrough requests a photogrammetry walkthrough overlay
	Walkthrough bool `json:"walkthrough,omitempty"`
}

// TravelOverride replaces the computed travel total when supplied
type TravelOverride struct {
	// FlatTotal replaces the whole travel total
	FlatTotal *decimal.Decimal `json:"flat_total,omitempty"`

	// RatePerMile replaces the effective mileage rate
	RatePerMile *decimal.Decimal `json:"rate_per_mile,omitempty"`

	// ScanDayFee replaces the configured scan-day fee amount
	ScanDayFee *decimal.Decimal `json:"scan_day_fee,omitempty"`
}

// QuoteInput is the structured project description the engine prices.
// It is constructed once upstream and treated as an immutable snapshot.
type QuoteInput struct {
	// ID uniquely identifies the quote draft
	ID string `json:"id"`

	// Areas are the building areas, in display order
	Areas []Area `json:"areas"`

	// Origin is the dispatch origin for the field crew
	Origin DispatchOrigin `json:"origin"`

	// Miles is the one-way travel distance
	Miles float64 `json:"miles"`

	// TargetMarginPercent is the desired gross margin (0 = leave as priced)
	TargetMarginPercent float64 `json:"target_margin_percent,omitempty"`

	// PaymentTerm is the client payment schedule
	PaymentTerm PaymentTerm `json:"payment_term"`

	// RiskFlags apply to every area in addition to area-level flags
	RiskFlags []RiskFlag `json:"risk_flags,omitempty"`

	// Travel carries optional manual travel overrides
	Travel *TravelOverride `json:"travel,omitempty"`
}
