// Package pricing - Risk premium loading
package pricing

import (
	"github.com/shopspring/decimal"

	"scanquote/core/rates"
	"scanquote/core/types"
)

// RiskMultiplier returns 1 + the sum of active risk premiums for a
// discipline. The loading is additive, not compounding, and is absorbed
// only by the architecture discipline: occupied spaces, hazmat, and
// no-power conditions primarily slow down the lead capture discipline,
// so mechanical/structural/site lines price unaffected. The discipline
// parameter exists to gate that rule.
//
// Duplicate flags (area-level merged with quote-level) count once.
func RiskMultiplier(cfg *rates.Configuration, flags []types.RiskFlag, disc types.Discipline) decimal.Decimal {
	one := decimal.NewFromInt(1)
	if disc != types.DisciplineArchitecture || len(flags) == 0 {
		return one
	}

	seen := make(map[types.RiskFlag]bool, len(flags))
	sum := decimal.Zero
	for _, flag := range flags {
		if seen[flag] {
			continue
		}
		seen[flag] = true
		sum = sum.Add(cfg.RiskPremium(flag))
	}

	return one.Add(sum)
}
