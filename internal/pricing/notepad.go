package pricing

import (
	"math"

	"indigo-pricing/internal/apperror"
	"indigo-pricing/internal/catalog"
)

const (
	// PageContentCustom is the only notepad content that incurs setup.
	PageContentCustom = "custom"

	paddingLaborPerSheet = 0.01
)

// Notepad prices glue-bound notepads. All pads in the run share press
// sheets, so material and click costs are computed against the total press
// sheet count and divided back to a per-pad figure; padding labor scales
// with sheets per pad and is carried as its own labor line, not through the
// formula's finishing term.
func (e *Engine) Notepad(in NotepadInput) (*NotepadQuote, error) {
	if err := e.checkQuantity(catalog.ProductNotepads, in.Quantity); err != nil {
		return nil, err
	}

	textPaper, textOK := e.catalog.Paper(in.TextPaperCode)
	backingPaper, backingOK := e.catalog.Paper(in.BackingPaperCode)
	if !textOK || !backingOK {
		return nil, apperror.InvalidSelection("invalid paper selection")
	}

	var baseSetup float64
	if in.PageContent == PageContentCustom {
		baseSetup = e.config.Formula.SetupFee
	}
	finishingSetup := e.config.Formula.FinishingSetupFee
	totalSetup := baseSetup + finishingSetup

	imp, err := e.impose(in.Width, in.Height)
	if err != nil {
		return nil, err
	}

	sides := defaultSides(in.PrintingSides, SidesSingle)
	click := clickCost(sides)

	quantity := float64(in.Quantity)
	backingSheetsPerPad := 1 / float64(imp.Copies)
	pressSheetsNeeded := quantity * float64(in.Sheets) / float64(imp.Copies)

	textCostPerUnit := pressSheetsNeeded * textPaper.CostPerSheet / quantity
	backingCost := backingSheetsPerPad * backingPaper.CostPerSheet
	clickCostPerUnit := pressSheetsNeeded * click / quantity
	materialPerUnit := (textCostPerUnit + backingCost + clickCostPerUnit) * boundMaterialMarkup

	paddingLabor := float64(in.Sheets) * paddingLaborPerSheet

	f := e.config.Formula
	production := math.Pow(pressSheetsNeeded, f.EfficiencyExponent) * f.BaseProductionRate
	materialTotal := quantity * materialPerUnit
	laborTotal := quantity * paddingLabor

	subtotal := totalSetup + production + materialTotal + laborTotal
	rush := e.config.RushMultiplier(in.RushType)
	total := subtotal * rush

	return &NotepadQuote{
		Quantity:           in.Quantity,
		Size:               formatSizeSpaced(in.Width, in.Height),
		Sheets:             in.Sheets,
		TextPaper:          textPaper.DisplayName,
		BackingPaper:       backingPaper.DisplayName,
		PageContent:        in.PageContent,
		UnitPrice:          round2(total / quantity),
		TotalCost:          round2(total),
		PrintingSetupCost:  round2(baseSetup),
		FinishingSetupCost: round2(finishingSetup),
		TotalSetupCost:     round2(totalSetup),
		ProductionCost:     round2(production),
		MaterialCost:       round2(materialTotal),
		LaborCost:          round2(laborTotal),
		FinishingCost:      round2(laborTotal),
		Subtotal:           round2(subtotal),
		RushMultiplier:     rush,
		SheetsRequired:     int(math.Ceil(pressSheetsNeeded)),
		Imposition:         imp.Copies,
	}, nil
}
