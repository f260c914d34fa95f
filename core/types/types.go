// Package types - Core quote engine types
package types

// Discipline identifies a documentation discipline
type Discipline string

const (
	// DisciplineArchitecture is the primary documentation discipline
	DisciplineArchitecture Discipline = "architecture"

	// DisciplineMEP covers mechanical/electrical/plumbing documentation
	DisciplineMEP Discipline = "mep"

	// DisciplineStructural covers structural documentation
	DisciplineStructural Discipline = "structural"

	// DisciplineSite covers site/civil documentation
	DisciplineSite Discipline = "site"

	// DisciplineUnknown is an unclassified upstream code.
	// It resolves to a zero rate rather than blocking the quote draft.
	DisciplineUnknown Discipline = "unknown"
)

// String returns the string representation
func (d Discipline) String() string {
	return string(d)
}

// ParseDiscipline maps an upstream code to a known discipline.
// Unrecognized codes become DisciplineUnknown, never an error.
func ParseDiscipline(s string) Discipline {
	switch Discipline(s) {
	case DisciplineArchitecture, DisciplineMEP, DisciplineStructural, DisciplineSite:
		return Discipline(s)
	}
	return DisciplineUnknown
}

// LOD is a level-of-development tier (e.g., 200/300/350)
type LOD string

const (
	LOD100 LOD = "100"
	LOD200 LOD = "200"
	LOD300 LOD = "300"
	LOD350 LOD = "350"
	LOD400 LOD = "400"

	// LODUnknown resolves to a zero multiplier
	LODUnknown LOD = "unknown"
)

// ParseLOD maps an upstream LOD code to a known tier
func ParseLOD(s string) LOD {
	switch LOD(s) {
	case LOD100, LOD200, LOD300, LOD350, LOD400:
		return LOD(s)
	}
	return LODUnknown
}

// Scope classifies how much of an area's surface is captured
type Scope string

const (
	// ScopeFull captures the entire area
	ScopeFull Scope = "full"

	// ScopeInterior captures interior surfaces only
	ScopeInterior Scope = "interior"

	// ScopeExterior captures exterior surfaces only
	ScopeExterior Scope = "exterior"

	// ScopeMixed captures interior and exterior at independent LODs
	ScopeMixed Scope = "mixed"

	// ScopeUnknown resolves to a zero portion
	ScopeUnknown Scope = "unknown"
)

// ParseScope maps an upstream scope code to a known scope
func ParseScope(s string) Scope {
	switch Scope(s) {
	case ScopeFull, ScopeInterior, ScopeExterior, ScopeMixed:
		return Scope(s)
	}
	return ScopeUnknown
}

// RiskFlag identifies a field-capture risk condition
type RiskFlag string

const (
	// RiskOccupied indicates capture in an occupied space
	RiskOccupied RiskFlag = "occupied"

	// RiskHazardousMaterials indicates hazmat handling on site
	RiskHazardousMaterials RiskFlag = "hazardous_materials"

	// RiskNoPower indicates no site power for equipment
	RiskNoPower RiskFlag = "no_power"

	// RiskUnknown contributes a zero premium
	RiskUnknown RiskFlag = "unknown"
)

// BuildingType classifies an area and selects its pricing calculator
type BuildingType string

const (
	BuildingCommercial  BuildingType = "commercial"
	BuildingResidential BuildingType = "residential"
	BuildingIndustrial  BuildingType = "industrial"
	BuildingInstitution BuildingType = "institutional"

	// BuildingNaturalLandscape is priced per acre, not per sqft
	BuildingNaturalLandscape BuildingType = "natural_landscape"

	// BuildingDesignedLandscape is a hardscaped/designed outdoor site
	BuildingDesignedLandscape BuildingType = "designed_landscape"

	// BuildingCeilingGrid is a ceiling-only capture (above-ceiling scan)
	BuildingCeilingGrid BuildingType = "ceiling_grid"

	// BuildingUnknown is priced through the standard calculator at zero rate
	BuildingUnknown BuildingType = "unknown"
)

// IsLandscape reports whether the type is priced per acre
func (b BuildingType) IsLandscape() bool {
	return b == BuildingNaturalLandscape || b == BuildingDesignedLandscape
}

// IsCeilingOnly reports whether the type uses the ceiling-only calculator
func (b BuildingType) IsCeilingOnly() bool {
	return b == BuildingCeilingGrid
}

// PaymentTerm identifies the client payment schedule
type PaymentTerm string

const (
	TermDueOnReceipt PaymentTerm = "due_on_receipt"
	TermNet30        PaymentTerm = "net30"
	TermNet60        PaymentTerm = "net60"
	TermNet90        PaymentTerm = "net90"

	// TermUnknown carries a zero premium
	TermUnknown PaymentTerm = "unknown"
)

// DispatchOrigin identifies where the field crew dispatches from
type DispatchOrigin string

const (
	// OriginBrooklyn is the high-density short-haul origin.
	// It selects the tiered travel algorithm.
	OriginBrooklyn DispatchOrigin = "brooklyn"

	// OriginHQ is the standard long-haul origin
	OriginHQ DispatchOrigin = "hq"
)

// LineCategory partitions line items for subtotaling
type LineCategory string

const (
	// CategoryModeling covers scan-to-model work
	CategoryModeling LineCategory = "modeling"

	// CategoryTravel covers dispatch travel (pass-through cost)
	CategoryTravel LineCategory = "travel"

	// CategoryServiceAddon covers overlay and add-on services
	CategoryServiceAddon LineCategory = "service_addon"

	// CategoryElevation covers additional-elevation surcharges
	CategoryElevation LineCategory = "elevation"
)

// IntegrityStatus is the margin guardrail verdict for a quote
type IntegrityStatus string

const (
	// IntegrityBlocked means margin is below the floor; saving must be refused
	IntegrityBlocked IntegrityStatus = "blocked"

	// IntegrityWarning means margin is between floor and guardrail
	IntegrityWarning IntegrityStatus = "warning"

	// IntegrityPassed means margin meets the guardrail
	IntegrityPassed IntegrityStatus = "passed"
)

// Severity tags an integrity flag
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)
