package pricing

import (
	"testing"

	"indigo-pricing/internal/apperror"
)

func TestNotebook_SpiralCoil(t *testing.T) {
	e := newTestEngine(t)

	q, err := e.Notebook(NotebookInput{
		Quantity:       50,
		Width:          5.5,
		Height:         8.5,
		Pages:          100,
		BindingType:    "spiral-coil",
		CoverPaperCode: "LYNOC95FSC",
		TextPaperCode:  "LYNO416FSC",
		PageContent:    "lined",
	})
	if err != nil {
		t.Fatal(err)
	}

	if q.Imposition != 4 {
		t.Errorf("imposition = %d, want 4", q.Imposition)
	}
	// Lined content still pays the printing setup.
	if !nearlyEqual(q.PrintingSetupCost, 30.00) {
		t.Errorf("printing setup = %g, want 30.00", q.PrintingSetupCost)
	}
	if !nearlyEqual(q.FinishingSetupCost, 15.00) {
		t.Errorf("finishing setup = %g, want 15.00", q.FinishingSetupCost)
	}
	if !nearlyEqual(q.TotalSetupCost, 45.00) {
		t.Errorf("total setup = %g, want 45.00", q.TotalSetupCost)
	}
	// Per unit: 0.25 cover sheets, 12.5 text sheets double-sided, 26 clicks.
	// (0.25*0.28010 + 12.5*0.11397 + 26*0.10) * 1.25 = 5.1183 each.
	if !nearlyEqual(q.MaterialCost, 255.92) {
		t.Errorf("material = %g, want 255.92", q.MaterialCost)
	}
	if !nearlyEqual(q.LaborCost, 125.00) {
		t.Errorf("labor = %g, want 125.00", q.LaborCost)
	}
	// 50 * 0.45 spiral coil hardware.
	if !nearlyEqual(q.BindingCost, 22.50) {
		t.Errorf("binding = %g, want 22.50", q.BindingCost)
	}

	sum := q.TotalSetupCost + q.ProductionCost + q.MaterialCost + q.LaborCost + q.BindingCost
	if diff := q.Subtotal - sum; diff > 0.05 || diff < -0.05 {
		t.Errorf("subtotal %g does not match component sum %g", q.Subtotal, sum)
	}
	if !nearlyEqual(q.TotalCost, q.Subtotal) {
		t.Errorf("standard rush total %g should equal subtotal %g", q.TotalCost, q.Subtotal)
	}
}

func TestNotebook_BlankContentWaivesSetup(t *testing.T) {
	e := newTestEngine(t)

	q, err := e.Notebook(NotebookInput{
		Quantity:       50,
		Width:          5.5,
		Height:         8.5,
		Pages:          100,
		BindingType:    "spiral-coil",
		CoverPaperCode: "LYNOC95FSC",
		TextPaperCode:  "LYNO416FSC",
		PageContent:    PageContentBlank,
	})
	if err != nil {
		t.Fatal(err)
	}
	if q.PrintingSetupCost != 0 {
		t.Errorf("printing setup = %g, want 0 for blank pages", q.PrintingSetupCost)
	}
	// The finishing setup still applies: blank notebooks are still bound.
	if !nearlyEqual(q.TotalSetupCost, 15.00) {
		t.Errorf("total setup = %g, want 15.00", q.TotalSetupCost)
	}
}

func TestNotebook_UnknownBindingUsesDefaultLabor(t *testing.T) {
	e := newTestEngine(t)

	q, err := e.Notebook(NotebookInput{
		Quantity:       50,
		Width:          5.5,
		Height:         8.5,
		Pages:          100,
		BindingType:    "velo",
		CoverPaperCode: "LYNOC95FSC",
		TextPaperCode:  "LYNO416FSC",
	})
	if err != nil {
		t.Fatal(err)
	}
	if q.BindingCost != 0 {
		t.Errorf("binding = %g, want 0 for unknown hardware", q.BindingCost)
	}
	// Default labor rate 2.50 * 50.
	if !nearlyEqual(q.LaborCost, 125.00) {
		t.Errorf("labor = %g, want 125.00", q.LaborCost)
	}
}

func TestNotebook_WireOCostsMore(t *testing.T) {
	e := newTestEngine(t)

	in := NotebookInput{
		Quantity:       50,
		Width:          5.5,
		Height:         8.5,
		Pages:          100,
		CoverPaperCode: "LYNOC95FSC",
		TextPaperCode:  "LYNO416FSC",
	}

	in.BindingType = "spiral-coil"
	spiral, err := e.Notebook(in)
	if err != nil {
		t.Fatal(err)
	}
	in.BindingType = "wire-o"
	wireO, err := e.Notebook(in)
	if err != nil {
		t.Fatal(err)
	}
	if wireO.TotalCost <= spiral.TotalCost {
		t.Errorf("wire-o (%g) should cost more than spiral coil (%g)", wireO.TotalCost, spiral.TotalCost)
	}
}

func TestNotebook_QuantityBounds(t *testing.T) {
	e := newTestEngine(t)

	for _, quantity := range []int{9, 501} {
		_, err := e.Notebook(NotebookInput{
			Quantity: quantity, Width: 5.5, Height: 8.5, Pages: 100,
			BindingType: "spiral-coil", CoverPaperCode: "LYNOC95FSC", TextPaperCode: "LYNO416FSC",
		})
		if !apperror.Is(err, apperror.KindConstraint) {
			t.Errorf("quantity %d: expected constraint error, got %v", quantity, err)
		}
	}
}

func TestNotebook_OversizeTrim(t *testing.T) {
	e := newTestEngine(t)
	_, err := e.Notebook(NotebookInput{
		Quantity: 50, Width: 14, Height: 20, Pages: 100,
		BindingType: "spiral-coil", CoverPaperCode: "LYNOC95FSC", TextPaperCode: "LYNO416FSC",
	})
	if !apperror.Is(err, apperror.KindGeometry) {
		t.Fatalf("expected geometry error, got %v", err)
	}
}
