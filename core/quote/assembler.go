// Package quote - Quote assembly and margin retargeting.
// The assembler is a pure function of (QuoteInput, Configuration): every
// recalculation rebuilds all line items from scratch, no incremental
// mutation. Callers must pass a single configuration snapshot through an
// entire assemble/retarget invocation.
package quote

import (
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"scanquote/core/pricing"
	"scanquote/core/rates"
	"scanquote/core/travel"
	"scanquote/core/types"
	"scanquote/internal/logging"
)

var disciplineLabels = map[types.Discipline]string{
	types.DisciplineArchitecture: "Architecture modeling",
	types.DisciplineMEP:          "MEP modeling",
	types.DisciplineStructural:   "Structural modeling",
	types.DisciplineSite:         "Site modeling",
	types.DisciplineUnknown:      "Unclassified modeling",
}

// Assemble prices a full quote: per-area line items, one travel result,
// category subtotals, margin, integrity status, payment-term premium, and
// the grand total.
func Assemble(input *types.QuoteInput, cfg *rates.Configuration) *types.QuoteResult {
	totalSqft := footprintSqft(input.Areas, cfg)

	var lines []types.LineItem
	for _, area := range input.Areas {
		lines = append(lines, expandArea(area, input.RiskFlags, cfg)...)
	}

	travelResult := travel.Calculate(cfg, input.Origin, input.Miles, totalSqft, input.Travel)
	lines = append(lines, travelLine(travelResult))

	result := aggregate(input.ID, lines, travelResult, totalSqft, input.PaymentTerm, cfg)

	logging.Debug("assembled quote",
		zap.String("quote_id", input.ID),
		zap.Int("lines", len(result.Lines)),
		zap.String("grand_total", result.GrandTotal.StringFixed(2)),
		zap.String("status", string(result.Status)),
	)

	return result
}

// expandArea turns one area into its line items: modeling lines by
// calculator dispatch, an elevation surcharge, and the walkthrough
// overlay add-on.
func expandArea(area types.Area, quoteFlags []types.RiskFlag, cfg *rates.Configuration) []types.LineItem {
	var lines []types.LineItem

	switch {
	case area.BuildingType.IsLandscape():
		lines = append(lines, landscapeLine(area, cfg))
	case area.BuildingType.IsCeilingOnly():
		lines = append(lines, ceilingLine(area, cfg))
	default:
		flags := append(append([]types.RiskFlag{}, area.RiskFlags...), quoteFlags...)
		for _, disc := range area.Disciplines {
			lines = append(lines, disciplineLine(area, disc, flags, cfg))
		}
	}

	if area.Elevations > 0 {
		lines = append(lines, elevationLine(area, cfg))
	}

	if area.Walkthrough {
		lines = append(lines, walkthroughLine(area, cfg))
	}

	return lines
}

func disciplineLine(area types.Area, disc types.Discipline, flags []types.RiskFlag, cfg *rates.Configuration) types.LineItem {
	lod := area.LOD
	if override, ok := area.DisciplineLOD[disc]; ok {
		lod = override
	}

	var configured *types.ConfiguredRates
	if r, ok := area.Rates[disc]; ok {
		configured = &r
	}

	var priced pricing.AreaPrice
	if area.Scope == types.ScopeMixed {
		priced = pricing.PriceMixedArea(cfg, area.Size, disc, lod, area.MixedLOD, configured)
	} else {
		priced = pricing.PriceArea(cfg, area.Size, disc, lod, area.Scope, configured)
	}

	multiplier := pricing.RiskMultiplier(cfg, flags, disc)

	return types.LineItem{
		AreaID:         area.ID,
		AreaName:       area.Name,
		Label:          disciplineLabels[disc],
		Category:       types.CategoryModeling,
		BuildingType:   area.BuildingType,
		Discipline:     disc,
		LOD:            lod,
		Scope:          area.Scope,
		EffectiveSize:  priced.EffectiveSize,
		ClientPrice:    priced.ClientPrice.Mul(multiplier).Round(2),
		CostBasis:      priced.CostBasis.Mul(multiplier).Round(2),
		RiskMultiplier: multiplier,
	}
}

func landscapeLine(area types.Area, cfg *rates.Configuration) types.LineItem {
	priced := pricing.PriceLandscape(cfg, area.BuildingType, area.Size, area.LOD)

	return types.LineItem{
		AreaID:         area.ID,
		AreaName:       area.Name,
		Label:          fmt.Sprintf("Landscape capture (%.1f ac)", priced.EffectiveSize),
		Category:       types.CategoryModeling,
		BuildingType:   area.BuildingType,
		LOD:            area.LOD,
		Scope:          area.Scope,
		EffectiveSize:  priced.EffectiveSize,
		ClientPrice:    priced.ClientPrice,
		CostBasis:      priced.CostBasis,
		RiskMultiplier: decimal.NewFromInt(1),
	}
}

func ceilingLine(area types.Area, cfg *rates.Configuration) types.LineItem {
	priced := pricing.PriceCeiling(cfg, area.Size, area.Scope)

	return types.LineItem{
		AreaID:         area.ID,
		AreaName:       area.Name,
		Label:          "Ceiling-only scan",
		Category:       types.CategoryModeling,
		BuildingType:   area.BuildingType,
		Scope:          area.Scope,
		EffectiveSize:  priced.EffectiveSize,
		ClientPrice:    priced.ClientPrice,
		CostBasis:      priced.CostBasis,
		RiskMultiplier: decimal.NewFromInt(1),
	}
}

func elevationLine(area types.Area, cfg *rates.Configuration) types.LineItem {
	client := pricing.PriceElevations(cfg.ElevationBrackets, area.Elevations).Round(2)
	cost := client.Mul(cfg.FallbackCostRatio).Round(2)

	return types.LineItem{
		AreaID:         area.ID,
		AreaName:       area.Name,
		Label:          fmt.Sprintf("Additional elevations (%d)", area.Elevations),
		Category:       types.CategoryElevation,
		BuildingType:   area.BuildingType,
		ClientPrice:    client,
		CostBasis:      cost,
		RiskMultiplier: decimal.NewFromInt(1),
	}
}

func walkthroughLine(area types.Area, cfg *rates.Configuration) types.LineItem {
	priced := pricing.PriceWalkthrough(cfg, area.Size)

	return types.LineItem{
		AreaID:         area.ID,
		AreaName:       area.Name,
		Label:          "Walkthrough overlay",
		Category:       types.CategoryServiceAddon,
		BuildingType:   area.BuildingType,
		EffectiveSize:  priced.EffectiveSize,
		ClientPrice:    priced.ClientPrice,
		CostBasis:      priced.CostBasis,
		RiskMultiplier: decimal.NewFromInt(1),
	}
}

// travelLine converts the travel result into a pass-through line item:
// client price equals cost, so travel contributes zero engineered margin.
func travelLine(t types.TravelResult) types.LineItem {
	return types.LineItem{
		Label:          t.Label,
		Category:       types.CategoryTravel,
		ClientPrice:    t.Total,
		CostBasis:      t.Total,
		RiskMultiplier: decimal.NewFromInt(1),
	}
}

// footprintSqft totals the project footprint, converting landscape
// acreage to square feet.
func footprintSqft(areas []types.Area, cfg *rates.Configuration) float64 {
	var total float64
	for _, area := range areas {
		size := area.Size
		if size < 0 {
			size = 0
		}
		if area.BuildingType.IsLandscape() {
			total += size * cfg.SqftPerAcre
		} else {
			total += size
		}
	}
	return total
}

// aggregate computes subtotals, totals, margin, integrity status, the
// payment-term premium, and the Tier A flag over a finished line set.
// Retarget re-enters here after rewriting line prices.
func aggregate(quoteID string, lines []types.LineItem, travelResult types.TravelResult, totalSqft float64, term types.PaymentTerm, cfg *rates.Configuration) *types.QuoteResult {
	subtotals := map[types.LineCategory]decimal.Decimal{
		types.CategoryModeling:     decimal.Zero,
		types.CategoryTravel:       decimal.Zero,
		types.CategoryServiceAddon: decimal.Zero,
		types.CategoryElevation:    decimal.Zero,
	}

	totalCost := decimal.Zero
	totalClient := decimal.Zero
	negativeLines := 0
	for _, line := range lines {
		subtotals[line.Category] = subtotals[line.Category].Add(line.ClientPrice)
		totalCost = totalCost.Add(line.CostBasis)
		totalClient = totalClient.Add(line.ClientPrice)
		if line.CostBasis.GreaterThan(line.ClientPrice) {
			negativeLines++
		}
	}

	margin := totalClient.Sub(totalCost)
	marginPercent := decimal.Zero
	if !totalClient.IsZero() {
		marginPercent = margin.Div(totalClient).Mul(decimal.NewFromInt(100)).Round(2)
	}

	status, flags := evaluateIntegrity(marginPercent, cfg)

	if negativeLines > 0 {
		flags = append(flags, types.IntegrityFlag{
			Severity: types.SeverityWarning,
			Message:  fmt.Sprintf("%d line item(s) priced below cost basis", negativeLines),
		})
	}

	tierA := totalSqft >= cfg.TierASqft
	if tierA {
		flags = append(flags, types.IntegrityFlag{
			Severity: types.SeverityInfo,
			Message:  fmt.Sprintf("Tier A project: %.0f sqft total footprint requires manual review", totalSqft),
		})
	}

	premium := totalClient.Mul(cfg.TermPremium(term)).Round(2)

	return &types.QuoteResult{
		QuoteID:            quoteID,
		Lines:              lines,
		Travel:             travelResult,
		Subtotals:          subtotals,
		TotalSqft:          totalSqft,
		TotalCostBasis:     totalCost,
		TotalClientPrice:   totalClient,
		GrossMargin:        margin,
		GrossMarginPercent: marginPercent,
		Status:             status,
		Flags:              flags,
		PaymentTerm:        term,
		PaymentTermPremium: premium,
		GrandTotal:         totalClient.Add(premium),
		TierA:              tierA,
	}
}
