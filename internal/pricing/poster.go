package pricing

import (
	"fmt"

	"indigo-pricing/internal/apperror"
	"indigo-pricing/internal/catalog"
)

// Large-format physical limits for custom sizes. Presets are pre-approved
// and bypass these checks.
const (
	posterMinDimension   = 6.0
	posterMaxHeight      = 120.0
	posterMaxSquareFeet  = 50.0
	posterFallbackWidth  = 54.0
	squareInchesPerSqFt  = 144.0
)

// Poster prices large-format work purely by area: no imposition, no setup,
// no production term. The only cost driver is material footage, discounted
// by the volume tier the full run's footage lands in.
func (e *Engine) Poster(in PosterInput) (*PosterQuote, error) {
	material, ok := e.catalog.Paper(in.MaterialCode)
	if !ok {
		return nil, apperror.InvalidSelection(fmt.Sprintf("material %s not found", in.MaterialCode))
	}

	if err := e.checkQuantity(catalog.ProductPosters, in.Quantity); err != nil {
		return nil, err
	}

	var squareFootage float64
	if in.PresetSize != "" {
		preset, ok := e.config.PosterPresets[in.PresetSize]
		if !ok {
			return nil, apperror.InvalidSelection(fmt.Sprintf("size %s not found for posters", in.PresetSize))
		}
		squareFootage = preset.SquareFeet
	} else {
		if in.Width <= 0 || in.Height <= 0 {
			return nil, apperror.Constraint("width and height required for custom size")
		}
		if in.Width < posterMinDimension || in.Height < posterMinDimension {
			return nil, apperror.Geometry("custom dimensions must be at least 6 inches")
		}

		maxWidth := material.MaxWidth
		if maxWidth == 0 {
			maxWidth = posterFallbackWidth
		}
		if in.Width > maxWidth {
			return nil, apperror.Geometry(fmt.Sprintf("width cannot exceed %g inches for this material", maxWidth))
		}
		if in.Height > posterMaxHeight {
			return nil, apperror.Geometry(fmt.Sprintf("height cannot exceed %g inches", posterMaxHeight))
		}

		squareFootage = in.Width * in.Height / squareInchesPerSqFt
		if squareFootage > posterMaxSquareFeet {
			return nil, apperror.Geometry(fmt.Sprintf("total area cannot exceed %g square feet", posterMaxSquareFeet))
		}
	}

	quantity := float64(in.Quantity)
	totalSquareFootage := squareFootage * quantity
	tier := e.config.VolumeDiscount(totalSquareFootage)

	materialPerPoster := squareFootage * material.ChargeRate * tier.Multiplier
	totalMaterialCost := materialPerPoster * quantity

	rush := e.config.RushMultiplier(in.RushType)
	subtotal := totalMaterialCost
	total := subtotal * rush

	undiscounted := squareFootage * material.ChargeRate * quantity
	volumeSavings := undiscounted - totalMaterialCost

	return &PosterQuote{
		CostBreakdown: CostBreakdown{
			PrintingSetupCost:  0,
			FinishingSetupCost: 0,
			NeedsFinishing:     false,
			ProductionCost:     0,
			MaterialCost:       round2(totalMaterialCost),
			FinishingCost:      0,
			Subtotal:           round2(subtotal),
			RushMultiplier:     rush,
			TotalCost:          round2(total),
			UnitPrice:          round2(total / quantity),
		},
		SquareFootage:      round1(squareFootage),
		TotalSquareFootage: round1(totalSquareFootage),
		MaterialRate:       round2(material.ChargeRate),
		MaterialUsed:       material.DisplayName,
		VolumeDiscount:     tier.Discount,
		VolumeSavings:      round2(volumeSavings),
	}, nil
}
