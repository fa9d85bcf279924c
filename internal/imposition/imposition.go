package imposition

import (
	"fmt"
	"math"

	"indigo-pricing/internal/apperror"
)

// HP Indigo production specifications. The printable area already excludes
// gripper margins; customer trim sizes gain 0.125" of bleed on every side
// before they are fit onto the sheet.
const (
	Bleed           = 0.125
	PrintableWidth  = 12.48
	PrintableHeight = 18.26
	MaxTrimWidth    = PrintableWidth - 2*Bleed
	MaxTrimHeight   = PrintableHeight - 2*Bleed
	MinDimension    = 1.0
)

// Result describes how many finished pieces fit on one press sheet.
type Result struct {
	Copies      int
	Efficiency  float64 // percent of sheet area used, 1 decimal
	Orientation string  // "portrait" or "landscape"
	BleedWidth  float64
	BleedHeight float64
}

// Calculator fits rectangular trim sizes onto the press sheet, trying both
// orientations and keeping the better one.
type Calculator struct{}

// Calculate returns the copies-per-sheet count for the given trim size.
// Dimensions under 1" or bleed sizes exceeding the printable area are
// geometry errors; a successful result always has Copies >= 1.
func (Calculator) Calculate(trimWidth, trimHeight float64) (Result, error) {
	if trimWidth < MinDimension || trimHeight < MinDimension {
		return Result{}, apperror.Geometry("dimensions must be at least 1 inch")
	}

	bleedWidth := trimWidth + 2*Bleed
	bleedHeight := trimHeight + 2*Bleed

	if bleedWidth > PrintableWidth || bleedHeight > PrintableHeight {
		return Result{}, apperror.Geometry(fmt.Sprintf(
			`size too large: maximum trim size is %.2f" x %.2f"`, MaxTrimWidth, MaxTrimHeight))
	}

	portrait := grid(bleedWidth, bleedHeight)
	landscape := grid(bleedHeight, bleedWidth)

	copies := portrait
	orientation := "portrait"
	if landscape > portrait {
		copies = landscape
		orientation = "landscape"
	}

	if copies == 0 {
		return Result{}, apperror.Geometry("unable to calculate imposition for given dimensions")
	}

	itemArea := bleedWidth * bleedHeight
	sheetArea := PrintableWidth * PrintableHeight
	efficiency := float64(copies) * itemArea / sheetArea * 100

	return Result{
		Copies:      copies,
		Efficiency:  math.Round(efficiency*10) / 10,
		Orientation: orientation,
		BleedWidth:  math.Round(bleedWidth*1000) / 1000,
		BleedHeight: math.Round(bleedHeight*1000) / 1000,
	}, nil
}

func grid(w, h float64) int {
	across := int(math.Floor(PrintableWidth / w))
	down := int(math.Floor(PrintableHeight / h))
	return across * down
}
