package catalog

// AdhesiveStockCode is the reserved sticker stock. Finishing options that
// assume plain paper (hole punch, lanyard) do not apply to it.
const AdhesiveStockCode = "PAC51319WP"

// DefaultPaperStocks is the built-in 13x19 cut-sheet table plus the
// large-format roll materials, matching the shop's production stock list.
func DefaultPaperStocks() []PaperStock {
	return []PaperStock{
		{Code: "LYNODI312FSC", Brand: "Lynx", Type: TextStock, Finish: "Uncoated", SheetSize: "13x19", Weight: "60#", CostPerSheet: 0.08548, DisplayName: "60# Text Uncoated"},
		{Code: "LYNO416FSC", Brand: "Lynx", Type: TextStock, Finish: "Uncoated", SheetSize: "13x19", Weight: "80#", CostPerSheet: 0.11397, DisplayName: "80# Text Uncoated"},
		{Code: "LYNO52FSC", Brand: "Lynx", Type: TextStock, Finish: "Uncoated", SheetSize: "13x19", Weight: "100#", CostPerSheet: 0.1425, DisplayName: "100# Text Uncoated"},
		{Code: "LYNOC76FSC", Brand: "Lynx", Type: CoverStock, Finish: "Uncoated", SheetSize: "13x19", Weight: "80#", CostPerSheet: 0.22408, DisplayName: "80# Cover Uncoated"},
		{Code: "LYNOC95FSC", Brand: "Lynx", Type: CoverStock, Finish: "Uncoated", SheetSize: "13x19", Weight: "100#", CostPerSheet: 0.28010, DisplayName: "100# Cover Uncoated"},
		{Code: "LYNODIC11413FSC", Brand: "Lynx", Type: CoverStock, Finish: "Uncoated", SheetSize: "13x19", Weight: "120#", CostPerSheet: 0.38147, DisplayName: "120# Cover Uncoated"},
		{Code: "COUDCCDIC123513FSC", Brand: "Cougar", Type: CoverStock, Finish: "Uncoated", SheetSize: "13x19", Weight: "130#", CostPerSheet: 0.53800, DisplayName: "130# Cover Uncoated"},
		{Code: "PACDIS42FSC", Brand: "Pacesetter", Type: TextStock, Finish: "Silk", SheetSize: "13x19", Weight: "80#", CostPerSheet: 0.07702, DisplayName: "80# Text Silk"},
		{Code: "PACDIS52FSC", Brand: "Pacesetter", Type: TextStock, Finish: "Silk", SheetSize: "13x19", Weight: "100#", CostPerSheet: 0.09536, DisplayName: "100# Text Silk"},
		{Code: "PACDISC7613FSC", Brand: "Pacesetter", Type: CoverStock, Finish: "Silk", SheetSize: "13x19", Weight: "80#", CostPerSheet: 0.14204, DisplayName: "80# Cover Silk"},
		{Code: "PACDISC9513FSC", Brand: "Pacesetter", Type: CoverStock, Finish: "Silk", SheetSize: "13x19", Weight: "100#", CostPerSheet: 0.17756, DisplayName: "100# Cover Silk"},
		{Code: "PACDISC12413FSC", Brand: "Pacesetter", Type: CoverStock, Finish: "Silk", SheetSize: "13x19", Weight: "130#", CostPerSheet: 0.23176, DisplayName: "130# Cover Silk"},
		{Code: AdhesiveStockCode, Brand: "Pacesetter", Type: AdhesiveStock, Finish: "Adhesive", SheetSize: "13x19", Weight: "Adhesive", CostPerSheet: 3.705, DisplayName: "Adhesive Stock"},

		// Large-format roll materials, priced per square foot.
		{Code: "QMPFL501503", Brand: "Quickmount", Type: LargeFormat, Finish: "Matte", Weight: "Fabric", DisplayName: "Polyester Fabric", MaxWidth: 48, ChargeRate: 9.00},
		{Code: "LFSAT200RL", Brand: "Sihl", Type: LargeFormat, Finish: "Satin", Weight: "8mil", DisplayName: "Satin Photo Paper", MaxWidth: 52, ChargeRate: 6.00},
	}
}

// DefaultPricingConfig is the production formula parameter set.
func DefaultPricingConfig() PricingConfig {
	return PricingConfig{
		Formula: FormulaConstants{
			SetupFee:           30.00,
			FinishingSetupFee:  15.00,
			BaseProductionRate: 1.50,
			EfficiencyExponent: 0.75,
		},
		Constraints: map[string]ProductConstraints{
			ProductFlatPrints:   {MinQuantity: 25, MaxQuantity: 5000},
			ProductFoldedPrints: {MinQuantity: 25, MaxQuantity: 2500},
			ProductBooklets:     {MinQuantity: 10, MaxQuantity: 1000, MinPages: 8, MaxPages: 48, PageMultiple: 4},
			ProductNotebooks:    {MinQuantity: 10, MaxQuantity: 500},
			ProductNotepads:     {MinQuantity: 10, MaxQuantity: 500},
			ProductPosters:      {MinQuantity: 1, MaxQuantity: 20},
			ProductPerfectBound: {MinQuantity: 10, MaxQuantity: 250, MinPages: 8, MaxPages: 500, PageMultiple: 2, MinCoverWeight: 80},
		},
		Finishing: FinishingCosts{
			Folding: map[string]float64{
				"bifold":     0.10,
				"trifold":    0.10,
				"gatefold":   0.15,
				"table-tent": 0.20,
			},
			Booklet: BookletFinishing{
				BaseLabor:       0.50,
				CoverCreasing:   0.10,
				BindingPerSheet: 0.05,
			},
			NotebookBinding: map[string]float64{
				"spiral-coil": 0.45,
				"wire-o":      0.55,
				"perfect":     0.25,
			},
			NotebookLabor: map[string]float64{
				"spiral-coil": 2.50,
				"wire-o":      2.75,
				"perfect":     3.00,
			},
			NotebookLaborDefault: 2.50,
			PerfectBinding:       PerfectBinding{BaseLabor: 4.50},
		},
		RushTiers: map[string]RushTier{
			"standard": {Multiplier: 1.0, Description: "Standard (3-5 business days)"},
			"2-day":    {Multiplier: 1.25, Description: "2-Day Rush (+25%)"},
			"next-day": {Multiplier: 1.50, Description: "Next-Day Rush (+50%)"},
			"same-day": {Multiplier: 2.0, Description: "Same-Day Rush (+100%)"},
		},
		VolumeDiscounts: []VolumeDiscountTier{
			{MinSqFt: 100, MaxSqFt: 250, Discount: 0.05, Multiplier: 0.95},
			{MinSqFt: 250, MaxSqFt: 500, Discount: 0.10, Multiplier: 0.90},
			{MinSqFt: 500, MaxSqFt: 0, Discount: 0.15, Multiplier: 0.85},
		},
		PosterPresets: map[string]PosterPreset{
			"18x24": {SquareFeet: 3.0},
			"22x28": {SquareFeet: 4.3},
			"24x36": {SquareFeet: 6.0},
			"36x48": {SquareFeet: 12.0},
		},
		ProductFormulas: map[string]ProductFormula{
			ProductPerfectBound: {SetupFeeMultiplier: 2.0, FinishingSetupFee: 30.00},
		},
	}
}
