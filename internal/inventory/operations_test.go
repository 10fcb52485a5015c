package inventory

import (
	"errors"
	"math"
	"testing"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func row(item string, qty int64, unit, total string) Row {
	return Row{Item: item, Quantity: qty, UnitValue: dec(unit), TotalValue: dec(total)}
}

func sampleTables() []Table {
	return []Table{
		{},
		{Rows: []Row{row("Bolt", 10, "0.50", "5.00")}},
		{Rows: []Row{
			row("Bolt", 15, "0.60", "9.00"),
			row("Nut", 0, "0.10", "0"),
			row("Washer", 200, "0.025", "5.000"),
		}},
	}
}

// ============================================================================
// Scenarios
// ============================================================================

func TestScenarioA_InboundOnEmptyTable(t *testing.T) {
	got, out := Inbound(Table{}, InboundRequest{Item: "Bolt", Quantity: 10, UnitValue: dec("0.50")})

	want := Table{Rows: []Row{row("Bolt", 10, "0.50", "5.00")}}
	if !got.Equal(want) {
		t.Errorf("Inbound() table = %v, want %v", got.Rows, want.Rows)
	}
	if out.Kind != Received || !out.Created {
		t.Errorf("Inbound() outcome = %+v, want received/created", out)
	}
}

func TestScenarioB_InboundReplacesUnitValue(t *testing.T) {
	start := Table{Rows: []Row{row("Bolt", 10, "0.50", "5.00")}}

	got, out := Inbound(start, InboundRequest{Item: "Bolt", Quantity: 5, UnitValue: dec("0.60")})

	want := Table{Rows: []Row{row("Bolt", 15, "0.60", "9.00")}}
	if !got.Equal(want) {
		t.Errorf("Inbound() table = %v, want %v", got.Rows, want.Rows)
	}
	if out.Created {
		t.Error("Inbound() on existing item reported Created")
	}
	if out.Available != 15 {
		t.Errorf("Outcome.Available = %d, want 15", out.Available)
	}
}

func TestScenarioC_OutboundInsufficientStock(t *testing.T) {
	start := Table{Rows: []Row{row("Bolt", 15, "0.60", "9.00")}}
	before := start.Clone()

	got, out, err := Outbound(start, OutboundRequest{Item: "Bolt", Quantity: 20})

	if !errors.Is(err, ErrInsufficientStock) {
		t.Fatalf("Outbound() error = %v, want ErrInsufficientStock", err)
	}
	var se *StockError
	if !errors.As(err, &se) || se.Available != 15 || se.Requested != 20 {
		t.Errorf("Outbound() StockError = %+v, want available 15 requested 20", se)
	}
	if !got.Equal(before) || !start.Equal(before) {
		t.Errorf("Outbound() mutated table: got %v", got.Rows)
	}
	if out.Kind != Rejected || out.Available != 15 {
		t.Errorf("Outbound() outcome = %+v, want rejected with 15 available", out)
	}
}

func TestScenarioD_OutboundSubtracts(t *testing.T) {
	start := Table{Rows: []Row{row("Bolt", 15, "0.60", "9.00")}}

	got, out, err := Outbound(start, OutboundRequest{Item: "Bolt", Quantity: 5})
	if err != nil {
		t.Fatalf("Outbound() error = %v", err)
	}

	want := Table{Rows: []Row{row("Bolt", 10, "0.60", "6.00")}}
	if !got.Equal(want) {
		t.Errorf("Outbound() table = %v, want %v", got.Rows, want.Rows)
	}
	if out.Kind != Dispatched || out.Available != 10 {
		t.Errorf("Outbound() outcome = %+v, want dispatched with 10 available", out)
	}
}

// ============================================================================
// Properties over a handful of tables
// ============================================================================

func TestInbound_Properties(t *testing.T) {
	requests := []InboundRequest{
		{Item: "Bolt", Quantity: 1, UnitValue: dec("0")},
		{Item: "Bolt", Quantity: 7, UnitValue: dec("1.99")},
		{Item: "Gear", Quantity: 3, UnitValue: dec("12.345")},
		{Item: "Nut", Quantity: 1000, UnitValue: dec("0.01")},
	}

	for _, start := range sampleTables() {
		for _, req := range requests {
			before := start.Clone()
			got, _ := Inbound(start, req)

			if !start.Equal(before) {
				t.Fatalf("Inbound(%+v) modified its input", req)
			}

			i, ok := got.Find(req.Item)
			if !ok {
				t.Fatalf("Inbound(%+v): item missing from result", req)
			}
			r := got.Rows[i]
			if want := decimal.NewFromInt(r.Quantity).Mul(r.UnitValue); !r.TotalValue.Equal(want) {
				t.Errorf("Inbound(%+v): total = %s, want %s", req, r.TotalValue, want)
			}

			_, existed := start.Find(req.Item)
			wantLen := start.Len()
			if !existed {
				wantLen++
			}
			if got.Len() != wantLen {
				t.Errorf("Inbound(%+v): len = %d, want %d", req, got.Len(), wantLen)
			}

			for _, other := range start.Rows {
				if other.Item == req.Item {
					continue
				}
				j, _ := got.Find(other.Item)
				if !got.Rows[j].Equal(other) {
					t.Errorf("Inbound(%+v) altered unrelated row %v", req, other)
				}
			}

			if err := got.Validate(); err != nil {
				t.Errorf("Inbound(%+v) produced invalid table: %v", req, err)
			}
		}
	}
}

func TestOutbound_Properties(t *testing.T) {
	for _, start := range sampleTables() {
		for _, r := range start.Rows {
			for _, qty := range []int64{1, r.Quantity, r.Quantity + 1} {
				if qty < 1 {
					continue
				}
				req := OutboundRequest{Item: r.Item, Quantity: qty}
				before := start.Clone()

				got, _, err := Outbound(start, req)

				if qty > r.Quantity {
					if !errors.Is(err, ErrInsufficientStock) {
						t.Errorf("Outbound(%+v) error = %v, want ErrInsufficientStock", req, err)
					}
					if !got.Equal(before) {
						t.Errorf("Outbound(%+v) changed table on rejection", req)
					}
					continue
				}

				if err != nil {
					t.Fatalf("Outbound(%+v) error = %v", req, err)
				}
				i, _ := got.Find(r.Item)
				nr := got.Rows[i]
				if nr.Quantity != r.Quantity-qty {
					t.Errorf("Outbound(%+v): quantity = %d, want %d", req, nr.Quantity, r.Quantity-qty)
				}
				if nr.TotalValue.IsNegative() {
					t.Errorf("Outbound(%+v): negative total %s", req, nr.TotalValue)
				}
				if !nr.UnitValue.Equal(r.UnitValue) {
					t.Errorf("Outbound(%+v): unit value changed to %s", req, nr.UnitValue)
				}
				if err := got.Validate(); err != nil {
					t.Errorf("Outbound(%+v) produced invalid table: %v", req, err)
				}
				if !start.Equal(before) {
					t.Errorf("Outbound(%+v) modified its input", req)
				}
			}
		}
	}
}

func TestOutbound_EmptyTable(t *testing.T) {
	got, out, err := Outbound(Table{}, OutboundRequest{Item: "Bolt", Quantity: 1})
	if !errors.Is(err, ErrEmptyTable) {
		t.Fatalf("Outbound() error = %v, want ErrEmptyTable", err)
	}
	if out.Kind != Skipped || out.Changed() {
		t.Errorf("Outbound() outcome = %+v, want skipped", out)
	}
	if !got.IsEmpty() {
		t.Errorf("Outbound() returned %d rows, want 0", got.Len())
	}
}

func TestOutbound_UnknownItem(t *testing.T) {
	start := Table{Rows: []Row{row("Bolt", 15, "0.60", "9.00")}}

	got, out, err := Outbound(start, OutboundRequest{Item: "Screw", Quantity: 1})
	if !errors.Is(err, ErrUnknownItem) {
		t.Fatalf("Outbound() error = %v, want ErrUnknownItem", err)
	}
	if out.Kind != Rejected {
		t.Errorf("Outbound() kind = %v, want rejected", out.Kind)
	}
	if !got.Equal(start) {
		t.Error("Outbound() changed table for unknown item")
	}
}

func TestOutbound_DrainToZero(t *testing.T) {
	start := Table{Rows: []Row{row("Bolt", 15, "0.60", "9.00")}}

	got, _, err := Outbound(start, OutboundRequest{Item: "Bolt", Quantity: 15})
	if err != nil {
		t.Fatalf("Outbound() error = %v", err)
	}
	if got.Len() != 1 {
		t.Fatalf("row removed at zero stock; len = %d", got.Len())
	}
	if want := row("Bolt", 0, "0.60", "0"); !got.Rows[0].Equal(want) {
		t.Errorf("row = %v, want %v", got.Rows[0], want)
	}
}

func TestRequestValidate(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"inbound ok", InboundRequest{Item: "Bolt", Quantity: 1, UnitValue: dec("0")}.Validate(), nil},
		{"inbound zero qty", InboundRequest{Item: "Bolt", Quantity: 0}.Validate(), ErrInvalidQuantity},
		{"inbound negative price", InboundRequest{Item: "Bolt", Quantity: 1, UnitValue: dec("-0.01")}.Validate(), ErrInvalidUnitValue},
		{"inbound blank item", InboundRequest{Item: "  ", Quantity: 1}.Validate(), ErrInvalidItem},
		{"outbound ok", OutboundRequest{Item: "Bolt", Quantity: 2}.Validate(), nil},
		{"outbound negative qty", OutboundRequest{Item: "Bolt", Quantity: -3}.Validate(), ErrInvalidQuantity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.want == nil {
				if tt.err != nil {
					t.Errorf("Validate() = %v, want nil", tt.err)
				}
				return
			}
			if !errors.Is(tt.err, tt.want) {
				t.Errorf("Validate() = %v, want %v", tt.err, tt.want)
			}
		})
	}
}

func TestInboundValidateFor_StockLimit(t *testing.T) {
	tbl := Table{Rows: []Row{row("Bolt", 10, "0.50", "5.00")}}

	tests := []struct {
		name string
		req  InboundRequest
		want error
	}{
		{"new item at max", InboundRequest{Item: "Nut", Quantity: math.MaxInt64}, nil},
		{"fits exactly", InboundRequest{Item: "Bolt", Quantity: math.MaxInt64 - 10}, nil},
		{"one past the limit", InboundRequest{Item: "Bolt", Quantity: math.MaxInt64 - 9}, ErrStockLimit},
		{"max on existing", InboundRequest{Item: "Bolt", Quantity: math.MaxInt64}, ErrStockLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.ValidateFor(tbl)
			if tt.want == nil {
				if err != nil {
					t.Errorf("ValidateFor() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.want) || !errors.Is(err, ErrInvalidQuantity) {
				t.Errorf("ValidateFor() = %v, want %v wrapping ErrInvalidQuantity", err, tt.want)
			}
		})
	}
}

func TestInbound_AtStockLimitKeepsInvariants(t *testing.T) {
	tbl := Table{Rows: []Row{row("Bolt", 10, "0.50", "5.00")}}
	req := InboundRequest{Item: "Bolt", Quantity: math.MaxInt64 - 10, UnitValue: dec("0.50")}
	if err := req.ValidateFor(tbl); err != nil {
		t.Fatalf("ValidateFor() = %v", err)
	}

	got, out := Inbound(tbl, req)
	if out.Available != math.MaxInt64 {
		t.Errorf("Available = %d, want %d", out.Available, int64(math.MaxInt64))
	}
	if err := got.Validate(); err != nil {
		t.Errorf("Validate() after Inbound = %v", err)
	}
}
