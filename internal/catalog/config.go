package catalog

import (
	"fmt"
	"math"
)

// Product keys used in the constraints and formula-override tables.
const (
	ProductFlatPrints   = "flat-prints"
	ProductFoldedPrints = "folded-prints"
	ProductBooklets     = "booklets"
	ProductNotebooks    = "notebooks"
	ProductNotepads     = "notepads"
	ProductPosters      = "posters"
	ProductPerfectBound = "perfect-bound-books"
)

// FormulaConstants parameterize the shared base cost formula
// C(Q) = (S + F_setup + S_total^e * k + Q*v + Q*f) * r.
type FormulaConstants struct {
	SetupFee           float64 `json:"setup_fee"`
	FinishingSetupFee  float64 `json:"finishing_setup_fee"`
	BaseProductionRate float64 `json:"base_production_rate"`
	EfficiencyExponent float64 `json:"efficiency_exponent"`
}

// ProductConstraints bound the orderable range for one product. Page fields
// are zero for products without a page dimension.
type ProductConstraints struct {
	MinQuantity    int `json:"min_quantity"`
	MaxQuantity    int `json:"max_quantity"`
	MinPages       int `json:"min_pages,omitempty"`
	MaxPages       int `json:"max_pages,omitempty"`
	PageMultiple   int `json:"page_multiple,omitempty"`
	MinCoverWeight int `json:"min_cover_weight,omitempty"`
}

// RushTier maps a turnaround name to a subtotal multiplier.
type RushTier struct {
	Multiplier  float64 `json:"multiplier"`
	Description string  `json:"description"`
}

// VolumeDiscountTier discounts large-format material cost for a half-open
// footage range [MinSqFt, MaxSqFt). MaxSqFt of 0 means unbounded.
type VolumeDiscountTier struct {
	MinSqFt    float64 `json:"min_sqft"`
	MaxSqFt    float64 `json:"max_sqft"`
	Discount   float64 `json:"discount"`
	Multiplier float64 `json:"multiplier"`
}

func (t VolumeDiscountTier) contains(sqft float64) bool {
	if sqft < t.MinSqFt {
		return false
	}
	return t.MaxSqFt == 0 || sqft < t.MaxSqFt
}

// PosterPreset is a named large-format size with a precomputed footage.
type PosterPreset struct {
	SquareFeet float64 `json:"sqft"`
}

// BookletFinishing holds the saddle-stitch labor components.
type BookletFinishing struct {
	BaseLabor       float64 `json:"base_labor"`
	CoverCreasing   float64 `json:"cover_creasing"`
	BindingPerSheet float64 `json:"binding_per_sheet"`
}

// PerfectBinding holds the flat per-book binding labor.
type PerfectBinding struct {
	BaseLabor float64 `json:"base_labor"`
}

// FinishingCosts groups the per-product finishing tables.
type FinishingCosts struct {
	Folding              map[string]float64 `json:"folding"`
	Booklet              BookletFinishing   `json:"booklet_finishing"`
	NotebookBinding      map[string]float64 `json:"notebook_binding"`
	NotebookLabor        map[string]float64 `json:"notebook_labor"`
	NotebookLaborDefault float64            `json:"notebook_labor_default"`
	PerfectBinding       PerfectBinding     `json:"perfect_binding"`
}

// ProductFormula overrides formula constants for a single product.
type ProductFormula struct {
	SetupFeeMultiplier float64 `json:"setup_fee_multiplier"`
	FinishingSetupFee  float64 `json:"finishing_setup_fee"`
}

// PricingConfig is the complete read-only pricing parameter set. It is
// validated once at construction; the engine never mutates it.
type PricingConfig struct {
	Formula         FormulaConstants              `json:"formula"`
	Constraints     map[string]ProductConstraints `json:"product_constraints"`
	Finishing       FinishingCosts                `json:"finishing_costs"`
	RushTiers       map[string]RushTier           `json:"rush_multipliers"`
	VolumeDiscounts []VolumeDiscountTier          `json:"large_format_volume_discounts"`
	PosterPresets   map[string]PosterPreset       `json:"poster_presets"`
	ProductFormulas map[string]ProductFormula     `json:"product_formulas"`
}

// RushMultiplier resolves a rush tier name. Unknown names fall back to the
// standard multiplier 1.0 rather than erroring.
func (c PricingConfig) RushMultiplier(rushType string) float64 {
	if tier, ok := c.RushTiers[rushType]; ok {
		return tier.Multiplier
	}
	return 1.0
}

// VolumeDiscount returns the tier containing totalSqFt, or a no-discount
// tier when none matches. Tiers are disjoint by Validate, so containment
// is unambiguous.
func (c PricingConfig) VolumeDiscount(totalSqFt float64) VolumeDiscountTier {
	for _, tier := range c.VolumeDiscounts {
		if tier.contains(totalSqFt) {
			return tier
		}
	}
	return VolumeDiscountTier{Multiplier: 1.0}
}

// ConstraintsFor returns the constraint row for a product key.
func (c PricingConfig) ConstraintsFor(product string) (ProductConstraints, error) {
	pc, ok := c.Constraints[product]
	if !ok {
		return ProductConstraints{}, fmt.Errorf("no constraints configured for product %q", product)
	}
	return pc, nil
}

// Validate rejects configurations that would make quote-time behavior
// ambiguous: overlapping or unordered volume tiers, non-positive formula
// constants, rush multipliers below 1.0.
func (c PricingConfig) Validate() error {
	f := c.Formula
	if f.SetupFee < 0 || f.FinishingSetupFee < 0 {
		return fmt.Errorf("setup fees must not be negative")
	}
	if f.BaseProductionRate <= 0 {
		return fmt.Errorf("base production rate must be positive")
	}
	if f.EfficiencyExponent <= 0 || f.EfficiencyExponent > 1 {
		return fmt.Errorf("efficiency exponent must be in (0, 1], got %g", f.EfficiencyExponent)
	}

	for name, tier := range c.RushTiers {
		if tier.Multiplier < 1.0 {
			return fmt.Errorf("rush tier %q has multiplier %g below 1.0", name, tier.Multiplier)
		}
	}

	for product, pc := range c.Constraints {
		if pc.MinQuantity <= 0 || pc.MaxQuantity < pc.MinQuantity {
			return fmt.Errorf("product %q has invalid quantity range [%d, %d]", product, pc.MinQuantity, pc.MaxQuantity)
		}
		if pc.PageMultiple > 0 && pc.MinPages%pc.PageMultiple != 0 {
			return fmt.Errorf("product %q min pages %d is not a multiple of %d", product, pc.MinPages, pc.PageMultiple)
		}
	}

	prevMax := math.Inf(-1)
	for i, tier := range c.VolumeDiscounts {
		max := tier.MaxSqFt
		if max == 0 {
			max = math.Inf(1)
		}
		if tier.MinSqFt >= max {
			return fmt.Errorf("volume tier %d has empty range [%g, %g)", i, tier.MinSqFt, tier.MaxSqFt)
		}
		if tier.MinSqFt < prevMax {
			return fmt.Errorf("volume tier %d overlaps the previous tier", i)
		}
		if tier.Multiplier <= 0 || tier.Multiplier > 1 {
			return fmt.Errorf("volume tier %d has multiplier %g outside (0, 1]", i, tier.Multiplier)
		}
		prevMax = max
	}

	return nil
}
