package store

// cells.go converts between persisted cell text and row values.
//
// The writer always produces canonical text (plain integers, shortest exact
// decimals), so a table read back from a file this package wrote is identical
// to the one that was saved. The reader is a little more lenient to cope with
// files that passed through a spreadsheet program:
//   - Excel formula prefixes (="value")
//   - Integral floats in the quantity column ("10.0")

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// cleanCell trims whitespace and strips an Excel formula wrapper.
func cleanCell(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, `="`) && strings.HasSuffix(s, `"`) && len(s) >= 3 {
		return s[2 : len(s)-1]
	}
	return s
}

// parseQuantity reads a whole, non-negative quantity.
func parseQuantity(s string) (int64, error) {
	s = cleanCell(s)
	if s == "" {
		return 0, fmt.Errorf("invalid number: empty quantity")
	}

	if q, err := strconv.ParseInt(s, 10, 64); err == nil {
		if q < 0 {
			return 0, fmt.Errorf("invalid number: negative quantity %d", q)
		}
		return q, nil
	}

	// Accept "10.0" but not "10.5".
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("invalid number: quantity %q", s)
	}
	if !d.Equal(d.Truncate(0)) {
		return 0, fmt.Errorf("invalid number: fractional quantity %q", s)
	}
	if d.IsNegative() {
		return 0, fmt.Errorf("invalid number: negative quantity %s", d)
	}
	return d.IntPart(), nil
}

// parseDecimal reads a money column value.
func parseDecimal(column, s string) (decimal.Decimal, error) {
	s = cleanCell(s)
	if s == "" {
		return decimal.Zero, fmt.Errorf("invalid number: empty %s", column)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid number: %s %q", column, s)
	}
	return d, nil
}

func formatQuantity(q int64) string {
	return strconv.FormatInt(q, 10)
}

func formatDecimal(d decimal.Decimal) string {
	return d.String()
}
