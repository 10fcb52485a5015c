package inventory

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// OutcomeKind classifies the result of an operation.
type OutcomeKind int

const (
	// Received means an inbound was applied.
	Received OutcomeKind = iota
	// Dispatched means an outbound was applied.
	Dispatched
	// Rejected means an outbound was refused and the table is unchanged.
	Rejected
	// Skipped means there was nothing to operate on.
	Skipped
)

func (k OutcomeKind) String() string {
	switch k {
	case Received:
		return "received"
	case Dispatched:
		return "dispatched"
	case Rejected:
		return "rejected"
	case Skipped:
		return "skipped"
	default:
		return fmt.Sprintf("OutcomeKind(%d)", int(k))
	}
}

// Outcome is the signal an operation produces alongside the new table.
type Outcome struct {
	Kind      OutcomeKind
	Item      string
	Quantity  int64
	Available int64 // stock on hand for the item after the operation
	Created   bool  // inbound appended a new row
}

// Changed reports whether the operation produced a table that must be persisted.
func (o Outcome) Changed() bool {
	return o.Kind == Received || o.Kind == Dispatched
}

// InboundRequest asks to receive Quantity units of Item at UnitValue each.
type InboundRequest struct {
	Item      string
	Quantity  int64
	UnitValue decimal.Decimal
}

// Validate applies the constraints the input form enforces.
func (r InboundRequest) Validate() error {
	if strings.TrimSpace(r.Item) == "" {
		return ErrInvalidItem
	}
	if r.Quantity < 1 {
		return fmt.Errorf("%w: %d (minimum 1)", ErrInvalidQuantity, r.Quantity)
	}
	if r.UnitValue.IsNegative() {
		return fmt.Errorf("%w: %s (minimum 0)", ErrInvalidUnitValue, r.UnitValue)
	}
	return nil
}

// ValidateFor checks the request against t: the received quantity added to
// the item's current stock must stay representable.
func (r InboundRequest) ValidateFor(t Table) error {
	i, ok := t.Find(r.Item)
	if !ok {
		return nil
	}
	if stock := t.Rows[i].Quantity; r.Quantity > math.MaxInt64-stock {
		return fmt.Errorf("%w: %w: %d on top of %d for %q",
			ErrInvalidQuantity, ErrStockLimit, r.Quantity, stock, r.Item)
	}
	return nil
}

// OutboundRequest asks to remove Quantity units of Item.
type OutboundRequest struct {
	Item     string
	Quantity int64
}

// Validate applies the constraints the input form enforces.
func (r OutboundRequest) Validate() error {
	if strings.TrimSpace(r.Item) == "" {
		return ErrInvalidItem
	}
	if r.Quantity < 1 {
		return fmt.Errorf("%w: %d (minimum 1)", ErrInvalidQuantity, r.Quantity)
	}
	return nil
}

// Inbound adds stock for an item, creating the row if the item is new.
//
// An existing row gets the quantity added and its unit value replaced by the
// request's (the price is not averaged). The input table is not modified.
// Inbound never rejects; callers check the request with Validate and
// ValidateFor beforehand.
func Inbound(t Table, req InboundRequest) (Table, Outcome) {
	next := t.Clone()
	out := Outcome{Kind: Received, Item: req.Item, Quantity: req.Quantity}

	if i, ok := next.Find(req.Item); ok {
		r := next.Rows[i]
		next.Rows[i] = NewRow(r.Item, r.Quantity+req.Quantity, req.UnitValue)
		out.Available = next.Rows[i].Quantity
		return next, out
	}

	next.Rows = append(next.Rows, NewRow(req.Item, req.Quantity, req.UnitValue))
	out.Available = req.Quantity
	out.Created = true
	return next, out
}

// Outbound removes stock for an existing item.
//
// On an empty table it does nothing and returns ErrEmptyTable. When the
// requested quantity exceeds the stock it returns a *StockError and the
// original table. Otherwise the quantity is subtracted and the total
// recomputed with the unit value unchanged. The input table is never modified.
func Outbound(t Table, req OutboundRequest) (Table, Outcome, error) {
	out := Outcome{Item: req.Item, Quantity: req.Quantity}

	if t.IsEmpty() {
		out.Kind = Skipped
		return t, out, ErrEmptyTable
	}

	i, ok := t.Find(req.Item)
	if !ok {
		out.Kind = Rejected
		return t, out, fmt.Errorf("%w: %q", ErrUnknownItem, req.Item)
	}

	stock := t.Rows[i].Quantity
	if req.Quantity > stock {
		out.Kind = Rejected
		out.Available = stock
		return t, out, &StockError{Item: req.Item, Requested: req.Quantity, Available: stock}
	}

	next := t.Clone()
	r := next.Rows[i]
	next.Rows[i] = NewRow(r.Item, r.Quantity-req.Quantity, r.UnitValue)

	out.Kind = Dispatched
	out.Available = next.Rows[i].Quantity
	return next, out, nil
}
