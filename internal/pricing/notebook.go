package pricing

import (
	"math"

	"indigo-pricing/internal/apperror"
	"indigo-pricing/internal/catalog"
)

// PageContentBlank waives the printing setup fee: blank interiors need no
// custom plate.
const PageContentBlank = "blank"

// Notebook prices bound notebooks. Binding hardware and labor come from two
// parallel per-binding tables; an unrecognized binding type still prices,
// with the default labor rate and no hardware charge.
func (e *Engine) Notebook(in NotebookInput) (*NotebookQuote, error) {
	if err := e.checkQuantity(catalog.ProductNotebooks, in.Quantity); err != nil {
		return nil, err
	}

	coverPaper, coverOK := e.catalog.Paper(in.CoverPaperCode)
	textPaper, textOK := e.catalog.Paper(in.TextPaperCode)
	if !coverOK || !textOK {
		return nil, apperror.InvalidSelection("invalid paper selection")
	}

	var baseSetup float64
	if in.PageContent != PageContentBlank {
		baseSetup = e.config.Formula.SetupFee
	}
	finishingSetup := e.config.Formula.FinishingSetupFee
	totalSetup := baseSetup + finishingSetup

	imp, err := e.impose(in.Width, in.Height)
	if err != nil {
		return nil, err
	}

	sides := defaultSides(in.PrintingSides, SidesDouble)
	sidesMult := sidesMultiplier(sides)
	click := clickCost(sides)

	coverSheetsPerUnit := 1 / float64(imp.Copies)
	textSheetsPerUnit := float64(in.Pages) / float64(imp.Copies*sidesMult)

	// The cover always runs double-sided; text clicks follow sheet count.
	coverClicks := 1.0
	textClicks := math.Round(textSheetsPerUnit * float64(sidesMult))
	totalClicks := coverClicks + textClicks

	coverCost := coverSheetsPerUnit * coverPaper.CostPerSheet
	textCost := textSheetsPerUnit * textPaper.CostPerSheet
	materialPerUnit := (coverCost + textCost + totalClicks*click) * boundMaterialMarkup

	bindingHardware := e.config.Finishing.NotebookBinding[in.BindingType]
	labor, ok := e.config.Finishing.NotebookLabor[in.BindingType]
	if !ok {
		labor = e.config.Finishing.NotebookLaborDefault
	}

	f := e.config.Formula
	sheetCount := float64(in.Quantity) * (coverSheetsPerUnit + textSheetsPerUnit)
	production := math.Pow(sheetCount, f.EfficiencyExponent) * f.BaseProductionRate
	materialTotal := float64(in.Quantity) * materialPerUnit
	laborTotal := float64(in.Quantity) * labor
	bindingTotal := float64(in.Quantity) * bindingHardware

	subtotal := totalSetup + production + materialTotal + laborTotal + bindingTotal
	rush := e.config.RushMultiplier(in.RushType)
	total := subtotal * rush

	return &NotebookQuote{
		Quantity:           in.Quantity,
		Width:              in.Width,
		Height:             in.Height,
		Pages:              in.Pages,
		BindingType:        in.BindingType,
		CoverPaper:         coverPaper.DisplayName,
		TextPaper:          textPaper.DisplayName,
		PageContent:        in.PageContent,
		UnitPrice:          round2(total / float64(in.Quantity)),
		TotalCost:          round2(total),
		PrintingSetupCost:  round2(baseSetup),
		FinishingSetupCost: round2(finishingSetup),
		TotalSetupCost:     round2(totalSetup),
		ProductionCost:     round2(production),
		MaterialCost:       round2(materialTotal),
		LaborCost:          round2(laborTotal),
		BindingCost:        round2(bindingTotal),
		Subtotal:           round2(subtotal),
		RushMultiplier:     rush,
		Imposition:         imp.Copies,
	}, nil
}
