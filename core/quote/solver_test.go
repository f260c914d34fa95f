package quote

import (
	"testing"

	"scanquote/core/rates"
	"scanquote/core/types"
)

// noTravelInput returns a quote whose travel cost is zero, so the
// aggregate margin can hit a target exactly
func noTravelInput() *types.QuoteInput {
	input := singleAreaInput()
	input.Miles = 0
	return input
}

// TestRetargetHitsTargetMargin tests the cost-plus inversion
func TestRetargetHitsTargetMargin(t *testing.T) {
	cfg := rates.Default()
	result := Assemble(noTravelInput(), cfg)

	retargeted := Retarget(result, 50, cfg)

	// 1056.25 / (1 - 0.50) = 2112.50
	if !retargeted.Lines[0].ClientPrice.Equal(d("2112.50")) {
		t.Errorf("line price: got %s, want 2112.50", retargeted.Lines[0].ClientPrice)
	}
	if !retargeted.Lines[0].CostBasis.Equal(d("1056.25")) {
		t.Errorf("cost basis must hold fixed: got %s", retargeted.Lines[0].CostBasis)
	}
	if !retargeted.GrossMarginPercent.Equal(d("50")) {
		t.Errorf("margin percent: got %s, want 50", retargeted.GrossMarginPercent)
	}
	if retargeted.Status != types.IntegrityPassed {
		t.Errorf("status: got %s, want passed", retargeted.Status)
	}
}

// TestRetargetIdempotent tests that reapplying the same target is a no-op
func TestRetargetIdempotent(t *testing.T) {
	cfg := rates.Default()
	result := Assemble(singleAreaInput(), cfg)

	once := Retarget(result, 48, cfg)
	twice := Retarget(once, 48, cfg)

	if !once.GrandTotal.Equal(twice.GrandTotal) {
		t.Errorf("grand total changed on reapplication: %s vs %s", once.GrandTotal, twice.GrandTotal)
	}
	for i := range once.Lines {
		if !once.Lines[i].ClientPrice.Equal(twice.Lines[i].ClientPrice) {
			t.Errorf("line %d price changed: %s vs %s", i, once.Lines[i].ClientPrice, twice.Lines[i].ClientPrice)
		}
	}
}

// TestRetargetSkipsTravel tests that travel is never retargeted
func TestRetargetSkipsTravel(t *testing.T) {
	cfg := rates.Default()
	result := Assemble(singleAreaInput(), cfg) // 10 miles of travel

	retargeted := Retarget(result, 50, cfg)

	var travelLine *types.LineItem
	for i := range retargeted.Lines {
		if retargeted.Lines[i].Category == types.CategoryTravel {
			travelLine = &retargeted.Lines[i]
		}
	}
	if travelLine == nil {
		t.Fatal("travel line missing after retarget")
	}
	if !travelLine.ClientPrice.Equal(d("30")) {
		t.Errorf("travel price changed: got %s, want 30", travelLine.ClientPrice)
	}

	// Aggregate margin approaches but does not equal the target because
	// travel contributes zero margin
	if retargeted.GrossMarginPercent.GreaterThanOrEqual(d("50")) {
		t.Errorf("margin with travel should undershoot target, got %s", retargeted.GrossMarginPercent)
	}
	if retargeted.GrossMarginPercent.LessThan(d("49")) {
		t.Errorf("margin too far from target: %s", retargeted.GrossMarginPercent)
	}
}

// TestRetargetClampsToSliderBounds tests target clamping
func TestRetargetClampsToSliderBounds(t *testing.T) {
	cfg := rates.Default()
	result := Assemble(noTravelInput(), cfg)

	t.Run("above maximum clamps to 60", func(t *testing.T) {
		retargeted := Retarget(result, 95, cfg)
		// 1056.25 / 0.40 = 2640.625 -> 2640.63
		if !retargeted.Lines[0].ClientPrice.Equal(d("2640.63")) {
			t.Errorf("line price: got %s, want 2640.63", retargeted.Lines[0].ClientPrice)
		}
	})

	t.Run("below minimum clamps to 35", func(t *testing.T) {
		retargeted := Retarget(result, 5, cfg)
		// 1056.25 / 0.65 = 1625: exactly the original fallback price
		if !retargeted.Lines[0].ClientPrice.Equal(d("1625")) {
			t.Errorf("line price: got %s, want 1625", retargeted.Lines[0].ClientPrice)
		}
	})
}

// TestRetargetRebuildsAggregates tests that integrity and premium are
// recomputed over the new prices
func TestRetargetRebuildsAggregates(t *testing.T) {
	cfg := rates.Default()
	input := noTravelInput()
	input.PaymentTerm = types.TermNet30
	result := Assemble(input, cfg)

	if result.Status != types.IntegrityBlocked {
		t.Fatalf("precondition: expected blocked, got %s", result.Status)
	}

	retargeted := Retarget(result, 44, cfg)

	if retargeted.Status != types.IntegrityWarning {
		t.Errorf("status: got %s, want warning", retargeted.Status)
	}

	wantPremium := retargeted.TotalClientPrice.Mul(cfg.TermPremium(types.TermNet30)).Round(2)
	if !retargeted.PaymentTermPremium.Equal(wantPremium) {
		t.Errorf("premium: got %s, want %s", retargeted.PaymentTermPremium, wantPremium)
	}
	if !retargeted.GrandTotal.Equal(retargeted.TotalClientPrice.Add(wantPremium)) {
		t.Errorf("grand total not rebuilt")
	}
}
