// Package pricing computes retail quotes for the shop's seven product lines.
// Every calculation is a pure function of its inputs plus the immutable
// catalog and configuration the engine was constructed with, so one Engine
// can serve concurrent callers without synchronization.
package pricing

import (
	"fmt"

	"indigo-pricing/internal/apperror"
	"indigo-pricing/internal/catalog"
	"indigo-pricing/internal/imposition"
)

// SheetCalculator reports how many finished pieces fit per press sheet for
// a given trim size. It must be side-effect free.
type SheetCalculator interface {
	Calculate(trimWidth, trimHeight float64) (imposition.Result, error)
}

// Engine holds the read-only data every calculator needs.
type Engine struct {
	catalog catalog.Catalog
	config  catalog.PricingConfig
	sheets  SheetCalculator
}

// NewEngine validates the configuration once and returns a ready engine.
func NewEngine(cat catalog.Catalog, cfg catalog.PricingConfig, sheets SheetCalculator) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("pricing.NewEngine: %w", err)
	}
	if sheets == nil {
		sheets = imposition.Calculator{}
	}
	return &Engine{catalog: cat, config: cfg, sheets: sheets}, nil
}

// Catalog exposes the engine's paper table for display surfaces.
func (e *Engine) Catalog() catalog.Catalog {
	return e.catalog
}

func (e *Engine) checkQuantity(product string, quantity int) error {
	pc, err := e.config.ConstraintsFor(product)
	if err != nil {
		return err
	}
	if quantity < pc.MinQuantity || quantity > pc.MaxQuantity {
		return apperror.Constraint(fmt.Sprintf(
			"quantity must be between %d and %d", pc.MinQuantity, pc.MaxQuantity))
	}
	return nil
}

func (e *Engine) checkPages(product string, pages int) error {
	pc, err := e.config.ConstraintsFor(product)
	if err != nil {
		return err
	}
	if pages < pc.MinPages || pages > pc.MaxPages {
		return apperror.Constraint(fmt.Sprintf(
			"page count must be between %d and %d", pc.MinPages, pc.MaxPages))
	}
	if pc.PageMultiple > 0 && pages%pc.PageMultiple != 0 {
		return apperror.Constraint(fmt.Sprintf(
			"page count must be a multiple of %d", pc.PageMultiple))
	}
	return nil
}

// impose runs the sheet calculator and normalizes the zero-copy case into
// a geometry error so no calculator ever divides by zero.
func (e *Engine) impose(width, height float64) (imposition.Result, error) {
	res, err := e.sheets.Calculate(width, height)
	if err != nil {
		return imposition.Result{}, err
	}
	if res.Copies <= 0 {
		return imposition.Result{}, apperror.Geometry("unable to calculate imposition for given dimensions")
	}
	return res, nil
}
