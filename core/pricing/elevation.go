// Package pricing - Progressive elevation surcharge
package pricing

import (
	"github.com/shopspring/decimal"

	"scanquote/core/rates"
)

// PriceElevations computes the surcharge for additional building
// elevations with progressive brackets, tax-table style: each bracket's
// marginal rate applies only to the counts that fall inside it, so the
// per-unit rate diminishes as volume grows.
func PriceElevations(brackets []rates.ElevationBracket, count int) decimal.Decimal {
	if count <= 0 || len(brackets) == 0 {
		return decimal.Zero
	}

	total := decimal.Zero
	remaining := count
	previousCeiling := 0

	for _, bracket := range brackets {
		if remaining <= 0 {
			break
		}

		if bracket.UpToCount == 0 {
			// Unbounded bracket - all remaining counts land here
			total = total.Add(bracket.Rate.Mul(decimal.NewFromInt(int64(remaining))))
			remaining = 0
			break
		}

		width := bracket.UpToCount - previousCeiling
		consumed := remaining
		if consumed > width {
			consumed = width
		}
		total = total.Add(bracket.Rate.Mul(decimal.NewFromInt(int64(consumed))))
		remaining -= consumed
		previousCeiling = bracket.UpToCount
	}

	return total
}
