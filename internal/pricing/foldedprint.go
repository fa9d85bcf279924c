package pricing

import (
	"math"

	"indigo-pricing/internal/apperror"
	"indigo-pricing/internal/catalog"
)

// tableTentHeightFactor accounts for the stand-up flap: a table tent
// consumes material for 2.5 times its finished height.
const tableTentHeightFactor = 2.5

// FoldedPrint prices brochures and table tents. The finishing setup fee is
// charged only when the fold type carries a per-piece cost.
func (e *Engine) FoldedPrint(in FoldedPrintInput) (*FoldedPrintQuote, error) {
	paper, ok := e.catalog.Paper(in.PaperCode)
	if !ok {
		return nil, apperror.InvalidSelection("invalid paper selection")
	}

	if err := e.checkQuantity(catalog.ProductFoldedPrints, in.Quantity); err != nil {
		return nil, err
	}

	width, height, err := ParseSize(in.Size)
	if err != nil {
		return nil, err
	}

	materialHeight := height
	if in.FoldType == "table-tent" {
		materialHeight = height * tableTentHeightFactor
	}

	imp, err := e.impose(width, materialHeight)
	if err != nil {
		return nil, err
	}

	sides := defaultSides(in.PrintingSides, SidesDouble)
	v := (paper.CostPerSheet + clickCost(sides)) * flatMaterialMarkup / float64(imp.Copies)

	f := e.config.Finishing.Folding[in.FoldType]
	needsFinishing := in.FoldType != "" && in.FoldType != "none" && f > 0

	var finishingSetup float64
	if needsFinishing {
		finishingSetup = e.config.Formula.FinishingSetupFee
	}

	sheetsRequired := int(math.Ceil(float64(in.Quantity) / float64(imp.Copies)))

	res := e.runFormula(formulaInputs{
		Setup:          e.config.Formula.SetupFee,
		FinishingSetup: finishingSetup,
		SheetCount:     float64(sheetsRequired),
		Quantity:       in.Quantity,
		UnitMaterial:   v,
		UnitFinishing:  f,
		Rush:           e.config.RushMultiplier(in.RushType),
	})

	return &FoldedPrintQuote{
		CostBreakdown: CostBreakdown{
			PrintingSetupCost:  round2(e.config.Formula.SetupFee),
			FinishingSetupCost: round2(finishingSetup),
			NeedsFinishing:     needsFinishing,
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
		FoldType:       in.FoldType,
	}, nil
}
