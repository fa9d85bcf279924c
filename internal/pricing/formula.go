package pricing

import "math"

// Markups and click charges shared by the calculators. Click cost is the
// per-impression charge on the press; the markups cover handling and waste
// on top of raw material cost.
const (
	flatMaterialMarkup  = 1.5  // flat and folded prints
	boundMaterialMarkup = 1.25 // booklets, notebooks, notepads, perfect bound

	clickCostDouble = 0.10
	clickCostSingle = 0.05

	SidesSingle = "single-sided"
	SidesDouble = "double-sided"
)

func clickCost(sides string) float64 {
	if sides == SidesDouble {
		return clickCostDouble
	}
	return clickCostSingle
}

func sidesMultiplier(sides string) int {
	if sides == SidesDouble {
		return 2
	}
	return 1
}

// defaultSides fills an empty printing-sides value with the product default.
func defaultSides(sides, fallback string) string {
	if sides == "" {
		return fallback
	}
	return sides
}

// formulaInputs parameterize the shared base cost formula
//
//	C(Q) = (S + F_setup + S_total^e * k + Q*v + Q*f) * r
//
// SheetCount is always a press sheet count, never a piece count: either
// ceil(Q/imposition) for pieces sharing a sheet, or Q*sheets_per_unit for
// multi-sheet products. The exponent e < 1 is the single place economies
// of scale enter the model.
type formulaInputs struct {
	Setup          float64 // S, after any product-specific adjustment
	FinishingSetup float64 // F_setup, zero when no finishing applies
	SheetCount     float64 // S_total
	Quantity       int     // Q
	UnitMaterial   float64 // v
	UnitFinishing  float64 // f
	Rush           float64 // r
}

type formulaResult struct {
	Production float64
	Material   float64
	Finishing  float64
	Subtotal   float64
	Total      float64
	UnitPrice  float64
}

func (e *Engine) runFormula(in formulaInputs) formulaResult {
	f := e.config.Formula
	production := math.Pow(in.SheetCount, f.EfficiencyExponent) * f.BaseProductionRate
	material := float64(in.Quantity) * in.UnitMaterial
	finishing := float64(in.Quantity) * in.UnitFinishing
	subtotal := in.Setup + in.FinishingSetup + production + material + finishing
	total := subtotal * in.Rush

	return formulaResult{
		Production: production,
		Material:   material,
		Finishing:  finishing,
		Subtotal:   subtotal,
		Total:      total,
		UnitPrice:  total / float64(in.Quantity),
	}
}

// round2 rounds to cents. round3 keeps sub-cent precision for per-piece
// prices at scale.
func round2(x float64) float64 { return math.Round(x*100) / 100 }
func round3(x float64) float64 { return math.Round(x*1000) / 1000 }
func round1(x float64) float64 { return math.Round(x*10) / 10 }
