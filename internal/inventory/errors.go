package inventory

import (
	"errors"
	"fmt"
)

var (
	// ErrInsufficientStock is returned when an outbound asks for more than is stocked.
	ErrInsufficientStock = errors.New("insufficient stock")

	// ErrEmptyTable is returned when an outbound is attempted on a table with no rows.
	ErrEmptyTable = errors.New("empty table")

	// ErrUnknownItem is returned when an outbound names an item the table does not hold.
	ErrUnknownItem = errors.New("unknown item")

	// ErrInvalidQuantity is returned by request validation for quantities below 1.
	ErrInvalidQuantity = errors.New("invalid quantity")

	// ErrStockLimit is returned by ValidateFor when an inbound would push an
	// item's quantity past the largest representable stock.
	ErrStockLimit = errors.New("stock limit exceeded")

	// ErrInvalidUnitValue is returned by request validation for negative unit values.
	ErrInvalidUnitValue = errors.New("invalid unit value")

	// ErrInvalidItem is returned by request validation for blank item names.
	ErrInvalidItem = errors.New("invalid item name")

	// ErrInvalidTable wraps table invariant violations found by Validate.
	ErrInvalidTable = errors.New("invalid table")
)

// StockError describes a rejected outbound. It matches ErrInsufficientStock
// with errors.Is.
type StockError struct {
	Item      string
	Requested int64
	Available int64
}

func (e *StockError) Error() string {
	return fmt.Sprintf("insufficient stock for %q: requested %d, available %d",
		e.Item, e.Requested, e.Available)
}

func (e *StockError) Is(target error) bool {
	return target == ErrInsufficientStock
}
