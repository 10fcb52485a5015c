package web

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/brunocosta1987/estoque/internal/inventory"
	"github.com/shopspring/decimal"
)

// parseQuantity reads a whole quantity from a form field.
func parseQuantity(s string) (int64, error) {
	q, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", inventory.ErrInvalidQuantity, s)
	}
	return q, nil
}

// parseUnitValue reads a unit value from a form field. A decimal comma is
// accepted since browsers in pt-BR may submit one.
func parseUnitValue(s string) (decimal.Decimal, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %q", inventory.ErrInvalidUnitValue, s)
	}
	return d, nil
}
