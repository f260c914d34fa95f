package rates

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"

	"scanquote/core/types"
)

// TestLoadMissingFileFallsBack tests that defaults survive a missing file
func TestLoadMissingFileFallsBack(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.hcl"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Version != Default().Version {
		t.Errorf("expected default version, got %s", cfg.Version)
	}
}

// TestLoadOverrides tests field-by-field layering over defaults
func TestLoadOverrides(t *testing.T) {
	src := `
version = "test-rates"
min_billable_sqft = 2500
fallback_cost_ratio = 0.6

base_rate "architecture" {
  rate = 0.30
}

lod_multiplier "350" {
  rate = 1.55
}

travel {
  scan_day_fee             = 350
  scan_day_threshold_miles = 80
}
`
	path := filepath.Join(t.TempDir(), "rates.hcl")
	if err := os.WriteFile(path, []byte(src), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Version != "test-rates" {
		t.Errorf("version: got %s", cfg.Version)
	}
	if cfg.MinBillableSqft != 2500 {
		t.Errorf("min billable: got %v, want 2500", cfg.MinBillableSqft)
	}
	if !cfg.FallbackCostRatio.Equal(decimal.NewFromFloat(0.6)) {
		t.Errorf("cost ratio: got %s, want 0.6", cfg.FallbackCostRatio)
	}
	if !cfg.BaseRate(types.DisciplineArchitecture).Equal(decimal.NewFromFloat(0.30)) {
		t.Errorf("arch base rate: got %s, want 0.30", cfg.BaseRate(types.DisciplineArchitecture))
	}
	if !cfg.LODMultiplier(types.LOD350).Equal(decimal.NewFromFloat(1.55)) {
		t.Errorf("lod 350: got %s, want 1.55", cfg.LODMultiplier(types.LOD350))
	}
	if !cfg.Travel.ScanDayFee.Equal(decimal.NewFromInt(350)) {
		t.Errorf("scan-day fee: got %s, want 350", cfg.Travel.ScanDayFee)
	}
	if cfg.Travel.ScanDayThresholdMiles != 80 {
		t.Errorf("threshold: got %v, want 80", cfg.Travel.ScanDayThresholdMiles)
	}

	// Untouched entries keep their defaults
	if !cfg.BaseRate(types.DisciplineMEP).Equal(decimal.RequireFromString("0.20")) {
		t.Errorf("mep base rate changed: got %s", cfg.BaseRate(types.DisciplineMEP))
	}
	if !cfg.Travel.StandardRatePerMile.Equal(decimal.RequireFromString("3.00")) {
		t.Errorf("standard rate changed: got %s", cfg.Travel.StandardRatePerMile)
	}
}

// TestLoadUnknownLabelsIgnored tests that unrecognized labels cannot give
// the unknown variants a rate
func TestLoadUnknownLabelsIgnored(t *testing.T) {
	src := `
base_rate "holography" {
  rate = 9.99
}
`
	path := filepath.Join(t.TempDir(), "rates.hcl")
	if err := os.WriteFile(path, []byte(src), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.BaseRate(types.DisciplineUnknown).IsZero() {
		t.Errorf("unknown discipline gained a rate: %s", cfg.BaseRate(types.DisciplineUnknown))
	}
}

// TestLoadMalformedFile tests the parse-error boundary
func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rates.hcl")
	if err := os.WriteFile(path, []byte(`version = `), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected a parse error for malformed HCL")
	}
}

// TestSizeTierFor tests travel size-bucket selection
func TestSizeTierFor(t *testing.T) {
	travel := Default().Travel

	tests := []struct {
		sqft float64
		want string
	}{
		{0, "small"},
		{19999, "small"},
		{20000, "medium"},
		{49999, "medium"},
		{50000, "large"},
		{500000, "large"},
	}

	for _, tt := range tests {
		if got := travel.SizeTierFor(tt.sqft); got.Name != tt.want {
			t.Errorf("SizeTierFor(%v) = %s, want %s", tt.sqft, got.Name, tt.want)
		}
	}
}
