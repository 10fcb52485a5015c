// Package inventory holds the stock table and the two operations that mutate it.
//
// The table is a plain value: it is loaded from storage, changed by at most one
// operation and written back in full. Nothing in this package touches storage,
// so every operation here is a pure function of its inputs.
package inventory

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Column names of the persisted table, in their fixed order.
const (
	ColumnItem       = "Item"
	ColumnQuantity   = "Quantidade"
	ColumnUnitValue  = "Valor_Unitário"
	ColumnTotalValue = "Valor_Total"
)

// Columns is the fixed column order of the table.
var Columns = []string{ColumnItem, ColumnQuantity, ColumnUnitValue, ColumnTotalValue}

// Row is one stocked item.
type Row struct {
	Item       string
	Quantity   int64
	UnitValue  decimal.Decimal
	TotalValue decimal.Decimal
}

// NewRow builds a row with its total derived from quantity and unit value.
func NewRow(item string, quantity int64, unitValue decimal.Decimal) Row {
	return Row{
		Item:       item,
		Quantity:   quantity,
		UnitValue:  unitValue,
		TotalValue: totalOf(quantity, unitValue),
	}
}

// Equal reports whether two rows carry the same values.
// Decimals compare numerically, so 5 and 5.00 are equal.
func (r Row) Equal(o Row) bool {
	return r.Item == o.Item &&
		r.Quantity == o.Quantity &&
		r.UnitValue.Equal(o.UnitValue) &&
		r.TotalValue.Equal(o.TotalValue)
}

func (r Row) String() string {
	return fmt.Sprintf("(%q, %d, %s, %s)", r.Item, r.Quantity, r.UnitValue, r.TotalValue)
}

func totalOf(quantity int64, unitValue decimal.Decimal) decimal.Decimal {
	return decimal.NewFromInt(quantity).Mul(unitValue)
}

// Table is the ordered set of rows, keyed by item name.
type Table struct {
	Rows []Row
}

// Len returns the number of rows.
func (t Table) Len() int { return len(t.Rows) }

// IsEmpty reports whether the table has no rows.
func (t Table) IsEmpty() bool { return len(t.Rows) == 0 }

// Find returns the index of the row named item.
// Lookup is a linear scan on the exact name.
func (t Table) Find(item string) (int, bool) {
	for i, r := range t.Rows {
		if r.Item == item {
			return i, true
		}
	}
	return -1, false
}

// Items returns the item names in table order.
func (t Table) Items() []string {
	items := make([]string, len(t.Rows))
	for i, r := range t.Rows {
		items[i] = r.Item
	}
	return items
}

// Clone returns a copy that shares no row storage with t.
func (t Table) Clone() Table {
	if t.Rows == nil {
		return Table{}
	}
	rows := make([]Row, len(t.Rows))
	copy(rows, t.Rows)
	return Table{Rows: rows}
}

// Equal reports whether both tables hold the same rows in the same order.
func (t Table) Equal(o Table) bool {
	if len(t.Rows) != len(o.Rows) {
		return false
	}
	for i := range t.Rows {
		if !t.Rows[i].Equal(o.Rows[i]) {
			return false
		}
	}
	return true
}

// GrandTotal sums the total value of every row.
func (t Table) GrandTotal() decimal.Decimal {
	sum := decimal.Zero
	for _, r := range t.Rows {
		sum = sum.Add(r.TotalValue)
	}
	return sum
}

// totalPlaces is the precision totals are compared at in Validate. Files
// written through float arithmetic carry totals like 0.30000000000000004.
const totalPlaces = 9

// Validate checks the table invariants: unique item names, non-negative
// quantities and unit values, and total == quantity * unit value.
// All violations are reported together.
func (t Table) Validate() error {
	var errs []string
	seen := make(map[string]bool, len(t.Rows))

	for i, r := range t.Rows {
		if seen[r.Item] {
			errs = append(errs, fmt.Sprintf("row %d: duplicate item %q", i+1, r.Item))
		}
		seen[r.Item] = true

		if r.Quantity < 0 {
			errs = append(errs, fmt.Sprintf("row %d: negative quantity %d", i+1, r.Quantity))
		}
		if r.UnitValue.IsNegative() {
			errs = append(errs, fmt.Sprintf("row %d: negative unit value %s", i+1, r.UnitValue))
		}
		if want := totalOf(r.Quantity, r.UnitValue); !r.TotalValue.Round(totalPlaces).Equal(want.Round(totalPlaces)) {
			errs = append(errs, fmt.Sprintf("row %d: total %s, want %s", i+1, r.TotalValue, want))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w:\n  - %s", ErrInvalidTable, strings.Join(errs, "\n  - "))
	}
	return nil
}
