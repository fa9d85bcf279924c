package pricing

import (
	"testing"

	"indigo-pricing/internal/apperror"
)

func TestBooklet_SeparateCover(t *testing.T) {
	e := newTestEngine(t)

	q, err := e.Booklet(BookletInput{
		Quantity:       100,
		Size:           "5.5x8.5",
		Pages:          16,
		CoverPaperCode: "LYNOC95FSC",
		TextPaperCode:  "PACDIS42FSC",
	})
	if err != nil {
		t.Fatal(err)
	}

	// 16 pages, separate cover: 1 cover + 3 text sheets per booklet, 2-up,
	// so 200 press sheets. Setup is 2*30 + 2*16 = 92.
	if !nearlyEqual(q.PrintingSetupCost, 92.00) {
		t.Errorf("printing setup = %g, want 92.00", q.PrintingSetupCost)
	}
	if !nearlyEqual(q.FinishingSetupCost, 15.00) {
		t.Errorf("finishing setup = %g, want 15.00", q.FinishingSetupCost)
	}
	if !nearlyEqual(q.ProductionCost, 79.77) {
		t.Errorf("production = %g, want 79.77", q.ProductionCost)
	}
	if !nearlyEqual(q.MaterialCost, 56.95) {
		t.Errorf("material = %g, want 56.95", q.MaterialCost)
	}
	// 0.50 labor + 0.10 creasing + 0.05 * 3 text sheets = 0.75 per booklet.
	if !nearlyEqual(q.FinishingCost, 75.00) {
		t.Errorf("finishing = %g, want 75.00", q.FinishingCost)
	}
	if !nearlyEqual(q.Subtotal, 318.72) {
		t.Errorf("subtotal = %g, want 318.72", q.Subtotal)
	}
	if !nearlyEqual(q.UnitPrice, 3.187) {
		t.Errorf("unit price = %g, want 3.187", q.UnitPrice)
	}
	if q.SheetsRequired != 400 {
		t.Errorf("sheets required = %d, want 400", q.SheetsRequired)
	}
	if !q.NeedsFinishing {
		t.Error("booklets always need finishing")
	}
	if q.CoverPaperUsed != "100# Cover Uncoated" || q.TextPaperUsed != "80# Text Silk" {
		t.Errorf("paper names = %q / %q", q.CoverPaperUsed, q.TextPaperUsed)
	}
}

func TestBooklet_SelfCover(t *testing.T) {
	e := newTestEngine(t)

	q, err := e.Booklet(BookletInput{
		Quantity:       100,
		Size:           "5.5x8.5",
		Pages:          16,
		CoverPaperCode: SelfCover,
		TextPaperCode:  "PACDIS42FSC",
	})
	if err != nil {
		t.Fatal(err)
	}

	// Self cover: 4 text sheets, no cover sheet, no creasing.
	// Finishing is 0.50 + 0.05 * 4 = 0.70 per booklet.
	if !nearlyEqual(q.FinishingCost, 70.00) {
		t.Errorf("finishing = %g, want 70.00", q.FinishingCost)
	}
	if q.CoverPaperUsed != "Self Cover" {
		t.Errorf("cover paper = %q, want Self Cover", q.CoverPaperUsed)
	}
	if q.SheetsRequired != 400 {
		t.Errorf("sheets required = %d, want 400", q.SheetsRequired)
	}
}

func TestBooklet_PageConstraints(t *testing.T) {
	e := newTestEngine(t)

	base := BookletInput{
		Quantity:       100,
		Size:           "5.5x8.5",
		CoverPaperCode: "LYNOC95FSC",
		TextPaperCode:  "PACDIS42FSC",
	}

	for _, pages := range []int{8, 48} {
		in := base
		in.Pages = pages
		if _, err := e.Booklet(in); err != nil {
			t.Errorf("pages %d should be accepted: %v", pages, err)
		}
	}
	for _, pages := range []int{4, 15, 52} {
		in := base
		in.Pages = pages
		_, err := e.Booklet(in)
		if !apperror.Is(err, apperror.KindConstraint) {
			t.Errorf("pages %d: expected constraint error, got %v", pages, err)
		}
	}
}

func TestBooklet_LargeFormatNotMultiUp(t *testing.T) {
	e := newTestEngine(t)

	small, err := e.Booklet(BookletInput{
		Quantity: 100, Size: "5.5x8.5", Pages: 16,
		CoverPaperCode: "LYNOC95FSC", TextPaperCode: "PACDIS42FSC",
	})
	if err != nil {
		t.Fatal(err)
	}
	large, err := e.Booklet(BookletInput{
		Quantity: 100, Size: "8.5x11", Pages: 16,
		CoverPaperCode: "LYNOC95FSC", TextPaperCode: "PACDIS42FSC",
	})
	if err != nil {
		t.Fatal(err)
	}
	// A letter-size booklet runs one-up, so it consumes twice the press
	// sheets and must not be cheaper than the half-size run.
	if large.TotalCost <= small.TotalCost {
		t.Errorf("letter booklet (%g) should cost more than half-size (%g)", large.TotalCost, small.TotalCost)
	}
}

func TestBooklet_InvalidTextPaper(t *testing.T) {
	e := newTestEngine(t)
	_, err := e.Booklet(BookletInput{
		Quantity: 100, Size: "5.5x8.5", Pages: 16,
		CoverPaperCode: "LYNOC95FSC", TextPaperCode: "NOPE",
	})
	if !apperror.Is(err, apperror.KindInvalidSelection) {
		t.Fatalf("expected invalid selection, got %v", err)
	}
}
