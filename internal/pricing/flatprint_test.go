package pricing

import (
	"testing"

	"indigo-pricing/internal/apperror"
	"indigo-pricing/internal/catalog"
)

func TestFlatPrint_Postcards(t *testing.T) {
	e := newTestEngine(t)

	q, err := e.FlatPrint(FlatPrintInput{
		Quantity:  100,
		Width:     4,
		Height:    6,
		PaperCode: "LYNO416FSC",
		RushType:  "standard",
	})
	if err != nil {
		t.Fatal(err)
	}

	// 4 up per sheet, 25 sheets: production 25^0.75 * 1.5 = 16.77,
	// material 100 * (0.11397+0.10)*1.5/4 = 8.02.
	if q.Imposition != 4 {
		t.Errorf("imposition = %d, want 4", q.Imposition)
	}
	if q.SheetsRequired != 25 {
		t.Errorf("sheets required = %d, want 25", q.SheetsRequired)
	}
	if !nearlyEqual(q.PrintingSetupCost, 30.00) {
		t.Errorf("printing setup = %g, want 30.00", q.PrintingSetupCost)
	}
	if q.FinishingSetupCost != 0 {
		t.Errorf("finishing setup = %g, want 0", q.FinishingSetupCost)
	}
	if !nearlyEqual(q.ProductionCost, 16.77) {
		t.Errorf("production = %g, want 16.77", q.ProductionCost)
	}
	if !nearlyEqual(q.MaterialCost, 8.02) {
		t.Errorf("material = %g, want 8.02", q.MaterialCost)
	}
	if !nearlyEqual(q.Subtotal, 54.79) {
		t.Errorf("subtotal = %g, want 54.79", q.Subtotal)
	}
	if !nearlyEqual(q.TotalCost, 54.79) {
		t.Errorf("total = %g, want 54.79", q.TotalCost)
	}
	if !nearlyEqual(q.UnitPrice, 0.548) {
		t.Errorf("unit price = %g, want 0.548", q.UnitPrice)
	}
	if q.NeedsFinishing {
		t.Error("needs finishing should be false without hole punch or lanyard")
	}
	if q.Size != `4"x6"` {
		t.Errorf("size = %q", q.Size)
	}
	if q.PaperUsed != "80# Text Uncoated" {
		t.Errorf("paper used = %q", q.PaperUsed)
	}
}

func TestFlatPrint_HolePunchAndLanyard(t *testing.T) {
	e := newTestEngine(t)

	q, err := e.FlatPrint(FlatPrintInput{
		Quantity:  100,
		Width:     4,
		Height:    6,
		PaperCode: "LYNO416FSC",
		HolePunch: true,
		Lanyard:   true,
	})
	if err != nil {
		t.Fatal(err)
	}
	if !q.NeedsFinishing {
		t.Error("needs finishing should be true")
	}
	// 100 * (0.05 + 1.25)
	if !nearlyEqual(q.FinishingCost, 130.00) {
		t.Errorf("finishing = %g, want 130.00", q.FinishingCost)
	}
	// Still no finishing setup fee for flat work.
	if q.FinishingSetupCost != 0 {
		t.Errorf("finishing setup = %g, want 0", q.FinishingSetupCost)
	}
}

func TestFlatPrint_AdhesiveSuppressesFinishing(t *testing.T) {
	e := newTestEngine(t)

	q, err := e.FlatPrint(FlatPrintInput{
		Quantity:  100,
		Width:     4,
		Height:    6,
		PaperCode: catalog.AdhesiveStockCode,
		HolePunch: true,
		Lanyard:   true,
	})
	if err != nil {
		t.Fatal(err)
	}
	if q.NeedsFinishing || q.FinishingCost != 0 {
		t.Errorf("adhesive stock should carry no finishing, got %g", q.FinishingCost)
	}
}

func TestFlatPrint_SingleSidedClick(t *testing.T) {
	e := newTestEngine(t)

	q, err := e.FlatPrint(FlatPrintInput{
		Quantity:      100,
		Width:         4,
		Height:        6,
		PaperCode:     "LYNO416FSC",
		PrintingSides: SidesSingle,
	})
	if err != nil {
		t.Fatal(err)
	}
	// 100 * (0.11397+0.05)*1.5/4
	if !nearlyEqual(q.MaterialCost, 6.15) {
		t.Errorf("material = %g, want 6.15", q.MaterialCost)
	}
}

func TestFlatPrint_RushMultiplier(t *testing.T) {
	e := newTestEngine(t)

	q, err := e.FlatPrint(FlatPrintInput{
		Quantity:  100,
		Width:     4,
		Height:    6,
		PaperCode: "LYNO416FSC",
		RushType:  "same-day",
	})
	if err != nil {
		t.Fatal(err)
	}
	if q.RushMultiplier != 2.0 {
		t.Errorf("rush multiplier = %g, want 2.0", q.RushMultiplier)
	}
	if !nearlyEqual(q.TotalCost, 109.59) {
		t.Errorf("total = %g, want 109.59", q.TotalCost)
	}
	// Subtotal stays pre-rush.
	if !nearlyEqual(q.Subtotal, 54.79) {
		t.Errorf("subtotal = %g, want 54.79", q.Subtotal)
	}
}

func TestFlatPrint_UnknownRushFallsBack(t *testing.T) {
	e := newTestEngine(t)

	q, err := e.FlatPrint(FlatPrintInput{
		Quantity:  100,
		Width:     4,
		Height:    6,
		PaperCode: "LYNO416FSC",
		RushType:  "yesterday",
	})
	if err != nil {
		t.Fatalf("unknown rush type should not error: %v", err)
	}
	if q.RushMultiplier != 1.0 {
		t.Errorf("rush multiplier = %g, want 1.0", q.RushMultiplier)
	}
	if !nearlyEqual(q.TotalCost, q.Subtotal) {
		t.Errorf("total %g should equal subtotal %g without rush", q.TotalCost, q.Subtotal)
	}
}

func TestFlatPrint_QuantityBounds(t *testing.T) {
	e := newTestEngine(t)

	for _, quantity := range []int{25, 5000} {
		if _, err := e.FlatPrint(FlatPrintInput{
			Quantity: quantity, Width: 4, Height: 6, PaperCode: "LYNO416FSC",
		}); err != nil {
			t.Errorf("quantity %d should be accepted: %v", quantity, err)
		}
	}
	for _, quantity := range []int{0, 24, 5001} {
		_, err := e.FlatPrint(FlatPrintInput{
			Quantity: quantity, Width: 4, Height: 6, PaperCode: "LYNO416FSC",
		})
		if !apperror.Is(err, apperror.KindConstraint) {
			t.Errorf("quantity %d: expected constraint error, got %v", quantity, err)
		}
	}
}

func TestFlatPrint_UnknownPaper(t *testing.T) {
	e := newTestEngine(t)
	_, err := e.FlatPrint(FlatPrintInput{Quantity: 100, Width: 4, Height: 6, PaperCode: "NOPE"})
	if !apperror.Is(err, apperror.KindInvalidSelection) {
		t.Fatalf("expected invalid selection, got %v", err)
	}
}

func TestFlatPrint_OversizeTrim(t *testing.T) {
	e := newTestEngine(t)
	_, err := e.FlatPrint(FlatPrintInput{Quantity: 100, Width: 13, Height: 19, PaperCode: "LYNO416FSC"})
	if !apperror.Is(err, apperror.KindGeometry) {
		t.Fatalf("expected geometry error, got %v", err)
	}
}
