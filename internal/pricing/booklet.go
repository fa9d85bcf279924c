package pricing

import (
	"math"

	"indigo-pricing/internal/apperror"
	"indigo-pricing/internal/catalog"
)

// SelfCover marks a booklet whose cover prints on the text stock, dropping
// the separate cover sheet and the creasing charge.
const SelfCover = "SELF_COVER"

// multiUpWidth/Height bound the flat size at which two booklets share one
// press sheet pass.
const (
	multiUpWidth  = 6.5
	multiUpHeight = 9.0
)

// Booklet prices saddle-stitched booklets. Setup scales with page count
// (2S + 2*pages) because every added signature means more plate and
// imposition work.
func (e *Engine) Booklet(in BookletInput) (*BookletQuote, error) {
	if err := e.checkQuantity(catalog.ProductBooklets, in.Quantity); err != nil {
		return nil, err
	}
	if err := e.checkPages(catalog.ProductBooklets, in.Pages); err != nil {
		return nil, err
	}

	isSelfCover := in.CoverPaperCode == SelfCover

	textPaper, ok := e.catalog.Paper(in.TextPaperCode)
	if !ok {
		return nil, apperror.InvalidSelection("invalid text paper selection")
	}
	coverPaper := textPaper
	if !isSelfCover {
		coverPaper, ok = e.catalog.Paper(in.CoverPaperCode)
		if !ok {
			return nil, apperror.InvalidSelection("invalid paper selection")
		}
	}

	var coverSheets, textSheets float64
	if isSelfCover {
		coverSheets = 0
		textSheets = float64(in.Pages) / 4
	} else {
		coverSheets = 1
		textSheets = float64(in.Pages-4) / 4
	}

	width, height, err := ParseSize(in.Size)
	if err != nil {
		return nil, err
	}

	imp, err := e.impose(width, height)
	if err != nil {
		return nil, err
	}

	multiUp := 1.0
	if width <= multiUpWidth && height <= multiUpHeight {
		multiUp = 2.0
	}

	sides := defaultSides(in.PrintingSides, SidesDouble)
	click := clickCost(sides)

	sheetsPerBooklet := coverSheets + textSheets
	clicksPerBooklet := sheetsPerBooklet / multiUp

	coverCost := coverSheets * coverPaper.CostPerSheet / multiUp
	textCost := textSheets * textPaper.CostPerSheet / multiUp
	materialPerUnit := (coverCost + textCost + clicksPerBooklet*click) * boundMaterialMarkup

	bf := e.config.Finishing.Booklet
	creasing := bf.CoverCreasing
	if isSelfCover {
		creasing = 0
	}
	finishingPerUnit := bf.BaseLabor + creasing + bf.BindingPerSheet*textSheets

	baseSetup := e.config.Formula.SetupFee*2 + 2*float64(in.Pages)
	sheetCount := float64(in.Quantity) * sheetsPerBooklet / multiUp

	res := e.runFormula(formulaInputs{
		Setup:          baseSetup,
		FinishingSetup: e.config.Formula.FinishingSetupFee,
		SheetCount:     sheetCount,
		Quantity:       in.Quantity,
		UnitMaterial:   materialPerUnit,
		UnitFinishing:  finishingPerUnit,
		Rush:           e.config.RushMultiplier(in.RushType),
	})

	coverSheetsRequired := int(math.Ceil(float64(in.Quantity) * coverSheets))
	textSheetsRequired := int(math.Ceil(float64(in.Quantity) * textSheets))

	coverName := coverPaper.DisplayName
	if isSelfCover {
		coverName = "Self Cover"
	}

	return &BookletQuote{
		CostBreakdown: CostBreakdown{
			PrintingSetupCost:  round2(baseSetup),
			FinishingSetupCost: round2(e.config.Formula.FinishingSetupFee),
			NeedsFinishing:     true,
			ProductionCost:     round2(res.Production),
			MaterialCost:       round2(res.Material),
			FinishingCost:      round2(res.Finishing),
			Subtotal:           round2(res.Subtotal),
			RushMultiplier:     e.config.RushMultiplier(in.RushType),
			TotalCost:          round2(res.Total),
			UnitPrice:          round3(res.UnitPrice),
		},
		SheetsRequired: coverSheetsRequired + textSheetsRequired,
		CoverPaperUsed: coverName,
		TextPaperUsed:  textPaper.DisplayName,
		Pages:          in.Pages,
		Imposition:     imp.Copies,
	}, nil
}
