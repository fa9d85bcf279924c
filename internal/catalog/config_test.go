package catalog

import (
	"strings"
	"testing"
)

func TestDefaultPricingConfigValid(t *testing.T) {
	if err := DefaultPricingConfig().Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
}

func TestValidate_OverlappingVolumeTiers(t *testing.T) {
	cfg := DefaultPricingConfig()
	cfg.VolumeDiscounts = []VolumeDiscountTier{
		{MinSqFt: 100, MaxSqFt: 300, Discount: 0.05, Multiplier: 0.95},
		{MinSqFt: 250, MaxSqFt: 500, Discount: 0.10, Multiplier: 0.90},
	}
	err := cfg.Validate()
	if err == nil || !strings.Contains(err.Error(), "overlaps") {
		t.Fatalf("expected overlap error, got %v", err)
	}
}

func TestValidate_RushBelowOne(t *testing.T) {
	cfg := DefaultPricingConfig()
	cfg.RushTiers["discounted"] = RushTier{Multiplier: 0.8}
	if cfg.Validate() == nil {
		t.Fatal("expected error for rush multiplier below 1.0")
	}
}

func TestValidate_BadExponent(t *testing.T) {
	cfg := DefaultPricingConfig()
	cfg.Formula.EfficiencyExponent = 1.5
	if cfg.Validate() == nil {
		t.Fatal("expected error for exponent above 1")
	}
}

func TestRushMultiplier_Fallback(t *testing.T) {
	cfg := DefaultPricingConfig()
	if got := cfg.RushMultiplier("overnight-maybe"); got != 1.0 {
		t.Errorf("unknown rush type multiplier = %g, want 1.0", got)
	}
	if got := cfg.RushMultiplier("same-day"); got != 2.0 {
		t.Errorf("same-day multiplier = %g, want 2.0", got)
	}
}

func TestVolumeDiscount_Boundaries(t *testing.T) {
	cfg := DefaultPricingConfig()
	tests := []struct {
		sqft       float64
		multiplier float64
	}{
		{0, 1.0},
		{99.99, 1.0},
		{100, 0.95}, // boundary lands in the tier that starts there
		{249.99, 0.95},
		{250, 0.90},
		{500, 0.85},
		{100000, 0.85}, // last tier is unbounded
	}
	for _, tt := range tests {
		tier := cfg.VolumeDiscount(tt.sqft)
		if tier.Multiplier != tt.multiplier {
			t.Errorf("VolumeDiscount(%g).Multiplier = %g, want %g", tt.sqft, tier.Multiplier, tt.multiplier)
		}
	}
}
