package pricing

// CostBreakdown carries the additive cost decomposition shared by the
// sheet-fed products. Field names are a stable contract with display and
// quoting code; currency fields are rounded to 2 decimals and UnitPrice to
// 3 decimals for per-piece products (2 elsewhere).
type CostBreakdown struct {
	PrintingSetupCost  float64 `json:"printing_setup_cost"`
	FinishingSetupCost float64 `json:"finishing_setup_cost"`
	NeedsFinishing     bool    `json:"needs_finishing"`
	ProductionCost     float64 `json:"production_cost"`
	MaterialCost       float64 `json:"material_cost"`
	FinishingCost      float64 `json:"finishing_cost"`
	Subtotal           float64 `json:"subtotal"`
	RushMultiplier     float64 `json:"rush_multiplier"`
	TotalCost          float64 `json:"total_cost"`
	UnitPrice          float64 `json:"unit_price"`
}

// FlatPrintInput prices postcards, flyers, bookmarks and name tags.
type FlatPrintInput struct {
	Quantity      int     `json:"quantity"`
	Width         float64 `json:"width"`
	Height        float64 `json:"height"`
	PaperCode     string  `json:"paper_code"`
	PrintingSides string  `json:"printing_sides"`
	HolePunch     bool    `json:"hole_punch"`
	Lanyard       bool    `json:"lanyard"`
	RushType      string  `json:"rush_type"`
}

type FlatPrintQuote struct {
	CostBreakdown
	SheetsRequired int    `json:"sheets_required"`
	PaperUsed      string `json:"paper_used"`
	Imposition     int    `json:"imposition"`
	Size           string `json:"size"`
}

// FoldedPrintInput prices brochures and table tents.
type FoldedPrintInput struct {
	Quantity      int    `json:"quantity"`
	Size          string `json:"size"`
	PaperCode     string `json:"paper_code"`
	FoldType      string `json:"fold_type"`
	PrintingSides string `json:"printing_sides"`
	RushType      string `json:"rush_type"`
}

type FoldedPrintQuote struct {
	CostBreakdown
	SheetsRequired int    `json:"sheets_required"`
	PaperUsed      string `json:"paper_used"`
	Imposition     int    `json:"imposition"`
	FoldType       string `json:"fold_type"`
}

// BookletInput prices saddle-stitched booklets. CoverPaperCode may be the
// SelfCover sentinel to print the cover on the text stock.
type BookletInput struct {
	Quantity       int    `json:"quantity"`
	Size           string `json:"size"`
	Pages          int    `json:"pages"`
	CoverPaperCode string `json:"cover_paper_code"`
	TextPaperCode  string `json:"text_paper_code"`
	PrintingSides  string `json:"printing_sides"`
	RushType       string `json:"rush_type"`
}

type BookletQuote struct {
	CostBreakdown
	SheetsRequired int    `json:"sheets_required"`
	CoverPaperUsed string `json:"cover_paper_used"`
	TextPaperUsed  string `json:"text_paper_used"`
	Pages          int    `json:"pages"`
	Imposition     int    `json:"imposition"`
}

// NotebookInput prices bound notebooks.
type NotebookInput struct {
	Quantity       int     `json:"quantity"`
	Width          float64 `json:"width"`
	Height         float64 `json:"height"`
	Pages          int     `json:"pages"`
	BindingType    string  `json:"binding_type"`
	CoverPaperCode string  `json:"cover_paper_code"`
	TextPaperCode  string  `json:"text_paper_code"`
	PageContent    string  `json:"page_content"`
	PrintingSides  string  `json:"printing_sides"`
	RushType       string  `json:"rush_type"`
}

// NotebookQuote decomposes cost into setup, production, material, labor and
// binding lines; labor and binding replace the generic finishing term.
type NotebookQuote struct {
	Quantity           int     `json:"quantity"`
	Width              float64 `json:"width"`
	Height             float64 `json:"height"`
	Pages              int     `json:"pages"`
	BindingType        string  `json:"binding_type"`
	CoverPaper         string  `json:"cover_paper"`
	TextPaper          string  `json:"text_paper"`
	PageContent        string  `json:"page_content"`
	UnitPrice          float64 `json:"unit_price"`
	TotalCost          float64 `json:"total_cost"`
	PrintingSetupCost  float64 `json:"printing_setup_cost"`
	FinishingSetupCost float64 `json:"finishing_setup_cost"`
	TotalSetupCost     float64 `json:"total_setup_cost"`
	ProductionCost     float64 `json:"production_cost"`
	MaterialCost       float64 `json:"material_cost"`
	LaborCost          float64 `json:"labor_cost"`
	BindingCost        float64 `json:"binding_cost"`
	Subtotal           float64 `json:"subtotal"`
	RushMultiplier     float64 `json:"rush_multiplier"`
	Imposition         int     `json:"imposition"`
}

// NotepadInput prices glue-bound notepads; Sheets is pages per pad.
type NotepadInput struct {
	Quantity         int     `json:"quantity"`
	Width            float64 `json:"width"`
	Height           float64 `json:"height"`
	Sheets           int     `json:"sheets"`
	TextPaperCode    string  `json:"text_paper_code"`
	BackingPaperCode string  `json:"backing_paper_code"`
	PageContent      string  `json:"page_content"`
	PrintingSides    string  `json:"printing_sides"`
	RushType         string  `json:"rush_type"`
}

type NotepadQuote struct {
	Quantity           int     `json:"quantity"`
	Size               string  `json:"size"`
	Sheets             int     `json:"sheets"`
	TextPaper          string  `json:"text_paper"`
	BackingPaper       string  `json:"backing_paper"`
	PageContent        string  `json:"page_content"`
	UnitPrice          float64 `json:"unit_price"`
	TotalCost          float64 `json:"total_cost"`
	PrintingSetupCost  float64 `json:"printing_setup_cost"`
	FinishingSetupCost float64 `json:"finishing_setup_cost"`
	TotalSetupCost     float64 `json:"total_setup_cost"`
	ProductionCost     float64 `json:"production_cost"`
	MaterialCost       float64 `json:"material_cost"`
	LaborCost          float64 `json:"labor_cost"`
	FinishingCost      float64 `json:"finishing_cost"`
	Subtotal           float64 `json:"subtotal"`
	RushMultiplier     float64 `json:"rush_multiplier"`
	SheetsRequired     int     `json:"sheets_required"`
	Imposition         int     `json:"imposition"`
}

// PosterInput prices large-format work by area. Either PresetSize or both
// Width and Height must be given.
type PosterInput struct {
	Quantity     int     `json:"quantity"`
	MaterialCode string  `json:"material_code"`
	Width        float64 `json:"width,omitempty"`
	Height       float64 `json:"height,omitempty"`
	PresetSize   string  `json:"preset_size,omitempty"`
	RushType     string  `json:"rush_type"`
}

type PosterQuote struct {
	CostBreakdown
	SquareFootage      float64 `json:"square_footage"`
	TotalSquareFootage float64 `json:"total_square_footage"`
	MaterialRate       float64 `json:"material_rate"`
	MaterialUsed       string  `json:"material_used"`
	VolumeDiscount     float64 `json:"volume_discount"`
	VolumeSavings      float64 `json:"volume_savings"`
}

// PerfectBoundInput prices perfect-bound books.
type PerfectBoundInput struct {
	Quantity       int     `json:"quantity"`
	Width          float64 `json:"width"`
	Height         float64 `json:"height"`
	Pages          int     `json:"pages"`
	TextPaperCode  string  `json:"text_paper_code"`
	CoverPaperCode string  `json:"cover_paper_code"`
	PrintingSides  string  `json:"printing_sides"`
	RushType       string  `json:"rush_type"`
}

type PerfectBoundQuote struct {
	PrintingSetupCost  float64 `json:"printing_setup_cost"`
	FinishingSetupCost float64 `json:"finishing_setup_cost"`
	ProductionCost     float64 `json:"production_cost"`
	MaterialCost       float64 `json:"material_cost"`
	FinishingCost      float64 `json:"finishing_cost"`
	Subtotal           float64 `json:"subtotal"`
	RushMultiplier     float64 `json:"rush_multiplier"`
	TotalCost          float64 `json:"total_cost"`
	UnitPrice          float64 `json:"unit_price"`
	SheetsRequired     int     `json:"sheets_required"`
	Size               string  `json:"size"`
	TextPaper          string  `json:"text_paper"`
	CoverPaper         string  `json:"cover_paper"`
	Pages              int     `json:"pages"`
	Quantity           int     `json:"quantity"`
	InteriorSheets     int     `json:"interior_sheets"`
	CoverSheets        int     `json:"cover_sheets"`
}
