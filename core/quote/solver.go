// Package quote - Margin-target solver
package quote

import (
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"scanquote/core/rates"
	"scanquote/core/types"
	"scanquote/internal/logging"
)

// Retarget recomputes every line item's client price so the quote lands
// on the target gross margin, holding each line's cost basis fixed: a
// cost-plus inversion, price = cost / (1 - target/100). Travel has no
// engineered margin and is never retargeted, so the achieved aggregate
// margin approaches the target rather than matching it exactly when
// travel is present.
//
// The target is clamped to the configured slider bounds. The operation
// is idempotent: reapplying the same target changes nothing.
func Retarget(result *types.QuoteResult, targetPercent float64, cfg *rates.Configuration) *types.QuoteResult {
	clamped := clampTarget(targetPercent, cfg)

	divisor := decimal.NewFromInt(1).Sub(decimal.NewFromFloat(clamped).Div(decimal.NewFromInt(100)))

	lines := make([]types.LineItem, len(result.Lines))
	for i, line := range result.Lines {
		if line.Category == types.CategoryTravel {
			lines[i] = line
			continue
		}
		retargeted := line
		retargeted.ClientPrice = line.CostBasis.Div(divisor).Round(2)
		lines[i] = retargeted
	}

	logging.Debug("retargeted quote",
		zap.String("quote_id", result.QuoteID),
		zap.Float64("target_percent", clamped),
	)

	return aggregate(result.QuoteID, lines, result.Travel, result.TotalSqft, result.PaymentTerm, cfg)
}

// clampTarget bounds the target to the margin slider range so the solver
// can never produce a state the UI cannot represent.
func clampTarget(target float64, cfg *rates.Configuration) float64 {
	if target < cfg.MarginSliderMin {
		return cfg.MarginSliderMin
	}
	if target > cfg.MarginSliderMax {
		return cfg.MarginSliderMax
	}
	return target
}
