package pricing

import (
	"fmt"
	"math"

	"indigo-pricing/internal/apperror"
	"indigo-pricing/internal/catalog"
)

// PerfectBound prices perfect-bound books. Binding requires a rigid cover,
// so the cover stock's basis weight is enforced against the configured
// minimum, and both stocks must be of the correct type.
func (e *Engine) PerfectBound(in PerfectBoundInput) (*PerfectBoundQuote, error) {
	if err := e.checkQuantity(catalog.ProductPerfectBound, in.Quantity); err != nil {
		return nil, err
	}
	if err := e.checkPages(catalog.ProductPerfectBound, in.Pages); err != nil {
		return nil, err
	}

	textPaper, ok := e.catalog.Paper(in.TextPaperCode)
	if !ok || textPaper.Type != catalog.TextStock {
		return nil, apperror.InvalidSelection("please select a valid text paper")
	}

	coverPaper, ok := e.catalog.Paper(in.CoverPaperCode)
	if !ok || coverPaper.Type != catalog.CoverStock {
		return nil, apperror.InvalidSelection("please select a valid cover paper (cover stock required)")
	}

	constraints, err := e.config.ConstraintsFor(catalog.ProductPerfectBound)
	if err != nil {
		return nil, err
	}
	if coverPaper.BasisWeight() < constraints.MinCoverWeight {
		return nil, apperror.Physical(fmt.Sprintf(
			"cover stock must be %d# or heavier for perfect binding", constraints.MinCoverWeight))
	}

	imp, err := e.impose(in.Width, in.Height)
	if err != nil {
		return nil, err
	}

	sides := defaultSides(in.PrintingSides, SidesDouble)
	sidesMult := sidesMultiplier(sides)
	clicksPerSheet := clickCost(sides)

	pagesPerSheet := imp.Copies * sidesMult

	interiorPages := in.Pages - 4
	interiorSheets := int(math.Ceil(float64(interiorPages) / float64(pagesPerSheet)))
	coverSheets := 1
	totalSheets := interiorSheets + coverSheets

	formula := e.config.Formula
	override := e.config.ProductFormulas[catalog.ProductPerfectBound]
	setupMultiplier := override.SetupFeeMultiplier
	if setupMultiplier == 0 {
		setupMultiplier = 1
	}

	setup := formula.SetupFee * setupMultiplier
	finishingSetup := override.FinishingSetupFee

	interiorCost := float64(interiorSheets) * textPaper.CostPerSheet
	coverCost := float64(coverSheets) * coverPaper.CostPerSheet
	// The cover always runs double-sided regardless of interior sides.
	clickTotal := float64(interiorSheets)*clicksPerSheet + float64(coverSheets)*clickCostDouble
	v := (interiorCost + coverCost + clickTotal) * boundMaterialMarkup

	f := e.config.Finishing.PerfectBinding.BaseLabor

	res := e.runFormula(formulaInputs{
		Setup:          setup,
		FinishingSetup: finishingSetup,
		SheetCount:     float64(in.Quantity * totalSheets),
		Quantity:       in.Quantity,
		UnitMaterial:   v,
		UnitFinishing:  f,
		Rush:           e.config.RushMultiplier(in.RushType),
	})

	return &PerfectBoundQuote{
		PrintingSetupCost:  round2(setup),
		FinishingSetupCost: round2(finishingSetup),
		ProductionCost:     round2(res.Production),
		MaterialCost:       round2(res.Material),
		FinishingCost:      round2(res.Finishing),
		Subtotal:           round2(res.Subtotal),
		RushMultiplier:     e.config.RushMultiplier(in.RushType),
		TotalCost:          round2(res.Total),
		UnitPrice:          round3(res.UnitPrice),
		SheetsRequired:     totalSheets,
		Size:               formatSizeSpaced(in.Width, in.Height),
		TextPaper:          textPaper.DisplayName,
		CoverPaper:         coverPaper.DisplayName,
		Pages:              in.Pages,
		Quantity:           in.Quantity,
		InteriorSheets:     interiorSheets,
		CoverSheets:        coverSheets,
	}, nil
}
