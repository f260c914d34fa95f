// Package rates - Compiled-in default rate table
package rates

import (
	"github.com/shopspring/decimal"

	"scanquote/core/types"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// Default returns the compiled-in rate table. Persisted overrides are
// layered on top by Load; callers without a rates file use this as-is.
func Default() *Configuration {
	return &Configuration{
		Version: "2026.1",

		BaseRates: map[types.Discipline]decimal.Decimal{
			types.DisciplineArchitecture: d("0.25"),
			types.DisciplineMEP:          d("0.20"),
			types.DisciplineStructural:   d("0.18"),
			types.DisciplineSite:         d("0.12"),
		},

		LODMultipliers: map[types.LOD]decimal.Decimal{
			types.LOD100: d("0.85"),
			types.LOD200: d("1.00"),
			types.LOD300: d("1.30"),
			types.LOD350: d("1.50"),
			types.LOD400: d("1.75"),
		},

		ScopePortions: map[types.Scope]decimal.Decimal{
			types.ScopeFull:     d("1.00"),
			types.ScopeInterior: d("0.65"),
			types.ScopeExterior: d("0.35"),
		},

		// Complement of ScopePortions. Maintained independently so the
		// rate-table owner can diverge the two call paths deliberately.
		ScopeDiscounts: map[types.Scope]decimal.Decimal{
			types.ScopeFull:     d("0.00"),
			types.ScopeInterior: d("0.35"),
			types.ScopeExterior: d("0.65"),
		},

		RiskPremiums: map[types.RiskFlag]decimal.Decimal{
			types.RiskOccupied:           d("0.10"),
			types.RiskHazardousMaterials: d("0.15"),
			types.RiskNoPower:            d("0.05"),
		},

		TermPremiums: map[types.PaymentTerm]decimal.Decimal{
			types.TermDueOnReceipt: d("0.000"),
			types.TermNet30:        d("0.015"),
			types.TermNet60:        d("0.030"),
			types.TermNet90:        d("0.050"),
		},

		FallbackCostRatio: d("0.65"),
		MinBillableSqft:   3000,

		CeilingRate:     d("0.18"),
		WalkthroughRate: d("0.06"),

		Travel: TravelRates{
			StandardRatePerMile:   d("3.00"),
			ScanDayThresholdMiles: 75,
			ScanDayFee:            d("300"),
			ShortHaulRatePerMile:  d("4.00"),
			FreeMileageMiles:      20,
			SizeTiers: []SizeTier{
				{Name: "small", UpToSqft: 20000, BaseFee: d("150")},
				{Name: "medium", UpToSqft: 50000, BaseFee: d("75")},
				{Name: "large", UpToSqft: 0, BaseFee: d("0")},
			},
		},

		Landscape: LandscapeRates{
			AcreageBreakpoints: []float64{5, 20, 50, 100},
			Matrix: map[types.BuildingType]map[types.LOD][]decimal.Decimal{
				types.BuildingNaturalLandscape: {
					types.LOD200: {d("625"), d("550"), d("475"), d("400"), d("350")},
					types.LOD300: {d("750"), d("660"), d("570"), d("480"), d("420")},
				},
				types.BuildingDesignedLandscape: {
					types.LOD200: {d("700"), d("615"), d("530"), d("450"), d("390")},
					types.LOD300: {d("840"), d("740"), d("640"), d("540"), d("470")},
				},
			},
		},

		ElevationBrackets: []ElevationBracket{
			{UpToCount: 10, Rate: d("25")},
			{UpToCount: 25, Rate: d("20")},
			{UpToCount: 0, Rate: d("15")},
		},

		MarginFloorPercent:     d("40"),
		MarginGuardrailPercent: d("45"),
		MarginSliderMin:        35,
		MarginSliderMax:        60,

		SqftPerAcre: 43560,
		TierASqft:   50000,
	}
}
