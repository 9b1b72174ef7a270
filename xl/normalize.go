package xl

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Excel displays at most 11 digits of a number; anything outside these
// limits is mangled, see
// https://support.microsoft.com/en-us/help/2643223/long-numbers-are-displayed-incorrectly-in-excel
var (
	LargeNumberPositiveLimit = decimal.RequireFromString("99999999999")
	LargeNumberNegativeLimit = decimal.RequireFromString("-99999999999")
)

// IsLargeNumber reports whether d lies outside the range Excel can display.
func IsLargeNumber(d decimal.Decimal) bool {
	return d.LessThan(LargeNumberNegativeLimit) || d.GreaterThan(LargeNumberPositiveLimit)
}

// normalizeSheet prepares the cells of a sheet for writing. It must run
// before styles are collected, since it may change cell formatting.
//
// Large numbers are detected by value, not by their current format, so
// running it again on the same sheet changes nothing.
func normalizeSheet(sheet *Sheet) error {
	switch sheet.LargeNumberHandling {
	case None:
	case StoreAsText:
		for _, c := range sheet.Cells.m {
			n, ok := c.Value.(Number)
			if !ok || !IsLargeNumber(n.Decimal) {
				continue
			}
			c.Style.Format = FormatGeneral
			if c.Style.Horizontal == HAlignNone {
				c.Style.Horizontal = HAlignRight
			}
			c.IgnoredErrors.NumberStoredAsText = true
		}
	default:
		return fmt.Errorf("%w: %d in sheet %q", ErrInvalidLargeNumberMode, sheet.LargeNumberHandling, sheet.name)
	}

	for addr, c := range sheet.Cells.m {
		if d, ok := c.Value.(Date); ok {
			if _, err := ToOADate(d.Time); err != nil {
				return fmt.Errorf("cell %s of sheet %q: %w", addr, sheet.name, err)
			}
		}
	}
	return nil
}
