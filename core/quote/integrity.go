// Package quote - Margin guardrail evaluation
package quote

import (
	"fmt"

	"github.com/shopspring/decimal"

	"scanquote/core/rates"
	"scanquote/core/types"
)

// evaluateIntegrity maps a gross margin percentage to the guardrail
// verdict. Three states, no transitions: the status is recomputed fresh
// on every assembly. A blocked status is a reported condition; the caller
// turns it into a save-prevention decision.
func evaluateIntegrity(marginPercent decimal.Decimal, cfg *rates.Configuration) (types.IntegrityStatus, []types.IntegrityFlag) {
	switch {
	case marginPercent.LessThan(cfg.MarginFloorPercent):
		return types.IntegrityBlocked, []types.IntegrityFlag{{
			Severity: types.SeverityError,
			Message: fmt.Sprintf("Gross margin %s%% is below the %s%% floor; quote cannot be saved",
				marginPercent.StringFixed(1), cfg.MarginFloorPercent.StringFixed(0)),
		}}

	case marginPercent.LessThan(cfg.MarginGuardrailPercent):
		return types.IntegrityWarning, []types.IntegrityFlag{{
			Severity: types.SeverityWarning,
			Message: fmt.Sprintf("Gross margin %s%% is below the %s%% guardrail",
				marginPercent.StringFixed(1), cfg.MarginGuardrailPercent.StringFixed(0)),
		}}

	default:
		return types.IntegrityPassed, nil
	}
}
