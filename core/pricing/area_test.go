package pricing

import (
	"testing"

	"github.com/shopspring/decimal"

	"scanquote/core/rates"
	"scanquote/core/types"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// TestPriceAreaFallbackPath tests the base-rate x LOD multiplier path
func TestPriceAreaFallbackPath(t *testing.T) {
	cfg := rates.Default()

	tests := []struct {
		name       string
		size       float64
		disc       types.Discipline
		lod        types.LOD
		scope      types.Scope
		wantClient string
		wantCost   string
		wantSize   float64
	}{
		{
			name:       "architecture at LOD 300 full scope",
			size:       5000,
			disc:       types.DisciplineArchitecture,
			lod:        types.LOD300,
			scope:      types.ScopeFull,
			wantClient: "1625",
			wantCost:   "1056.25",
			wantSize:   5000,
		},
		{
			name:       "interior scope scales price and cost alike",
			size:       5000,
			disc:       types.DisciplineArchitecture,
			lod:        types.LOD300,
			scope:      types.ScopeInterior,
			wantClient: "1056.25",
			wantCost:   "686.56",
			wantSize:   5000,
		},
		{
			name:       "small area floors to minimum billable",
			size:       1000,
			disc:       types.DisciplineArchitecture,
			lod:        types.LOD200,
			scope:      types.ScopeFull,
			wantClient: "750", // 3000 x 0.25 x 1.0
			wantCost:   "487.5",
			wantSize:   3000,
		},
		{
			name:       "unknown discipline silently prices at zero",
			size:       5000,
			disc:       types.DisciplineUnknown,
			lod:        types.LOD300,
			scope:      types.ScopeFull,
			wantClient: "0",
			wantCost:   "0",
			wantSize:   5000,
		},
		{
			name:       "unknown LOD silently prices at zero",
			size:       5000,
			disc:       types.DisciplineArchitecture,
			lod:        types.LODUnknown,
			scope:      types.ScopeFull,
			wantClient: "0",
			wantCost:   "0",
			wantSize:   5000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PriceArea(cfg, tt.size, tt.disc, tt.lod, tt.scope, nil)

			if !got.ClientPrice.Equal(d(tt.wantClient)) {
				t.Errorf("client price: got %s, want %s", got.ClientPrice, tt.wantClient)
			}
			if !got.CostBasis.Equal(d(tt.wantCost)) {
				t.Errorf("cost basis: got %s, want %s", got.CostBasis, tt.wantCost)
			}
			if got.EffectiveSize != tt.wantSize {
				t.Errorf("effective size: got %v, want %v", got.EffectiveSize, tt.wantSize)
			}
		})
	}
}

// TestPriceAreaConfiguredRates tests the negotiated-rate path, which
// bypasses the LOD multiplier entirely
func TestPriceAreaConfiguredRates(t *testing.T) {
	cfg := rates.Default()
	configured := &types.ConfiguredRates{
		ClientRate: d("3.00"),
		CostRate:   d("1.80"),
	}

	got := PriceArea(cfg, 2000, types.DisciplineArchitecture, types.LOD300, types.ScopeFull, configured)

	if got.EffectiveSize != 3000 {
		t.Errorf("effective size: got %v, want 3000 (floored)", got.EffectiveSize)
	}
	if !got.ClientPrice.Equal(d("9000")) {
		t.Errorf("client price: got %s, want 9000", got.ClientPrice)
	}
	if !got.CostBasis.Equal(d("5400")) {
		t.Errorf("cost basis: got %s, want 5400", got.CostBasis)
	}
}

// TestEffectiveSizeProperties tests the floor and monotonicity properties
func TestEffectiveSizeProperties(t *testing.T) {
	const floor = 3000

	sizes := []float64{-500, 0, 1, 2999, 3000, 3001, 10000, 250000}
	previous := 0.0
	for i, size := range sizes {
		got := EffectiveSize(size, floor)

		if got < floor {
			t.Errorf("EffectiveSize(%v) = %v, below floor %v", size, got, floor)
		}
		want := size
		if want < floor {
			want = floor
		}
		if got != want {
			t.Errorf("EffectiveSize(%v) = %v, want max(size, floor) = %v", size, got, want)
		}
		if i > 0 && got < previous {
			t.Errorf("EffectiveSize not monotonic: f(%v) = %v < %v", size, got, previous)
		}
		previous = got
	}
}

// TestPriceMixedArea tests per-portion LOD overrides for mixed scope
func TestPriceMixedArea(t *testing.T) {
	cfg := rates.Default()

	t.Run("per-portion LOD overrides", func(t *testing.T) {
		mixed := &types.MixedScopeLOD{Interior: types.LOD300, Exterior: types.LOD200}
		got := PriceMixedArea(cfg, 5000, types.DisciplineArchitecture, types.LOD300, mixed, nil)

		// interior: 5000 x 0.25 x 1.3 x 0.65 = 1056.25
		// exterior: 5000 x 0.25 x 1.0 x 0.35 = 437.50
		if !got.ClientPrice.Equal(d("1493.75")) {
			t.Errorf("client price: got %s, want 1493.75", got.ClientPrice)
		}
	})

	t.Run("no overrides falls back to area LOD", func(t *testing.T) {
		got := PriceMixedArea(cfg, 5000, types.DisciplineArchitecture, types.LOD300, nil, nil)
		full := PriceArea(cfg, 5000, types.DisciplineArchitecture, types.LOD300, types.ScopeFull, nil)

		// interior 0.65 + exterior 0.35 = full portion at one LOD
		if !got.ClientPrice.Equal(full.ClientPrice) {
			t.Errorf("mixed at uniform LOD: got %s, want %s", got.ClientPrice, full.ClientPrice)
		}
	})
}
