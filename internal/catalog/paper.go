package catalog

import (
	"sort"
	"strconv"
	"strings"
)

// Stock type values as stored in the catalog.
const (
	TextStock     = "text_stock"
	CoverStock    = "cover_stock"
	AdhesiveStock = "adhesive_stock"
	LargeFormat   = "large_format"
)

// PaperStock describes one orderable stock. CostPerSheet applies to cut-sheet
// stocks; ChargeRate and MaxWidth apply to large-format roll materials.
type PaperStock struct {
	Code         string  `db:"code" json:"code"`
	DisplayName  string  `db:"display_name" json:"display_name"`
	Brand        string  `db:"brand" json:"brand"`
	Type         string  `db:"type" json:"type"`
	Finish       string  `db:"finish" json:"finish"`
	SheetSize    string  `db:"sheet_size" json:"sheet_size"`
	Weight       string  `db:"weight" json:"weight"`
	CostPerSheet float64 `db:"cost_per_sheet" json:"cost_per_sheet"`
	MaxWidth     float64 `db:"max_width" json:"max_width,omitempty"`
	ChargeRate   float64 `db:"charge_rate" json:"charge_rate,omitempty"`
}

// BasisWeight parses the numeric part of a weight string like "80#".
// Non-numeric weights (e.g. adhesive stock) report 0.
func (p PaperStock) BasisWeight() int {
	s := strings.TrimSuffix(strings.TrimSpace(p.Weight), "#")
	w, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return w
}

// Catalog is an immutable paper lookup table. It is built once at startup
// and never mutated, so it is safe to share across goroutines.
type Catalog struct {
	papers map[string]PaperStock
}

func NewCatalog(stocks []PaperStock) Catalog {
	papers := make(map[string]PaperStock, len(stocks))
	for _, s := range stocks {
		papers[s.Code] = s
	}
	return Catalog{papers: papers}
}

// Paper looks up a stock by code.
func (c Catalog) Paper(code string) (PaperStock, bool) {
	p, ok := c.papers[code]
	return p, ok
}

// Papers returns all stocks ordered by code.
func (c Catalog) Papers() []PaperStock {
	out := make([]PaperStock, 0, len(c.papers))
	for _, p := range c.papers {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

func (c Catalog) Len() int {
	return len(c.papers)
}
