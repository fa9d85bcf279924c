package pricing

import (
	"fmt"
	"strconv"
	"strings"

	"indigo-pricing/internal/apperror"
)

// ParseSize parses size strings like "4x6", "8.5x11" or `5.5"x8.5"`,
// returning width and height in inches. Inch marks are tolerated because
// they appear in customer-facing size labels.
func ParseSize(size string) (width, height float64, err error) {
	cleaned := strings.NewReplacer(`"`, "", `'`, "").Replace(strings.TrimSpace(size))
	parts := strings.Split(cleaned, "x")
	if len(parts) != 2 {
		return 0, 0, apperror.Constraint(fmt.Sprintf("invalid size %q, expected WxH", size))
	}

	width, werr := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	height, herr := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if werr != nil || herr != nil || width <= 0 || height <= 0 {
		return 0, 0, apperror.Constraint(fmt.Sprintf("invalid size %q, expected WxH", size))
	}
	return width, height, nil
}

func formatSize(width, height float64) string {
	return fmt.Sprintf(`%g"x%g"`, width, height)
}

func formatSizeSpaced(width, height float64) string {
	return fmt.Sprintf(`%g" x %g"`, width, height)
}
