package pricing

import (
	"math"

	"indigo-pricing/internal/apperror"
	"indigo-pricing/internal/catalog"
)

// Per-piece finishing charges for flat work.
const (
	holePunchCost = 0.05
	lanyardCost   = 1.25
)

// FlatPrint prices flat pieces: postcards, flyers, bookmarks, name tags.
// No finishing setup fee applies to this product; hole punch and lanyard
// charges are suppressed entirely on the adhesive stock, which cannot take
// either.
func (e *Engine) FlatPrint(in FlatPrintInput) (*FlatPrintQuote, error) {
	paper, ok := e.catalog.Paper(in.PaperCode)
	if !ok {
		return nil, apperror.InvalidSelection("invalid paper selection")
	}

	if err := e.checkQuantity(catalog.ProductFlatPrints, in.Quantity); err != nil {
		return nil, err
	}

	sides := defaultSides(in.PrintingSides, SidesDouble)
	click := clickCost(sides)

	imp, err := e.impose(in.Width, in.Height)
	if err != nil {
		return nil, err
	}

	v := (paper.CostPerSheet + click) * flatMaterialMarkup / float64(imp.Copies)

	var f float64
	if in.PaperCode != catalog.AdhesiveStockCode {
		if in.HolePunch {
			f += holePunchCost
		}
		if in.Lanyard {
			f += lanyardCost
		}
	}

	sheetsRequired := int(math.Ceil(float64(in.Quantity) / float64(imp.Copies)))

	res := e.runFormula(formulaInputs{
		Setup:          e.config.Formula.SetupFee,
		FinishingSetup: 0,
		SheetCount:     float64(sheetsRequired),
		Quantity:       in.Quantity,
		UnitMaterial:   v,
		UnitFinishing:  f,
		Rush:           e.config.RushMultiplier(in.RushType),
	})

	return &FlatPrintQuote{
		CostBreakdown: CostBreakdown{
			PrintingSetupCost:  round2(e.config.Formula.SetupFee),
			FinishingSetupCost: 0,
			NeedsFinishing:     f > 0,
			ProductionCost:     round2(res.Production),
			MaterialCost:       round2(res.Material),
			FinishingCost:      round2(res.Finishing),
			Subtotal:           round2(res.Subtotal),
			RushMultiplier:     e.config.RushMultiplier(in.RushType),
			TotalCost:          round2(res.Total),
			UnitPrice:          round3(res.UnitPrice),
		},
		SheetsRequired: sheetsRequired,
		PaperUsed:      paper.DisplayName,
		Imposition:     imp.Copies,
		Size:           formatSize(in.Width, in.Height),
	}, nil
}
