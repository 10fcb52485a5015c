package inventory

import (
	"errors"
	"strings"
	"testing"
)

func TestTableFind(t *testing.T) {
	tbl := Table{Rows: []Row{row("Bolt", 1, "1", "1"), row("Nut", 2, "1", "2")}}

	if i, ok := tbl.Find("Nut"); !ok || i != 1 {
		t.Errorf("Find(Nut) = %d, %v, want 1, true", i, ok)
	}
	if _, ok := tbl.Find("nut"); ok {
		t.Error("Find is expected to match names exactly")
	}
	if got := strings.Join(tbl.Items(), ","); got != "Bolt,Nut" {
		t.Errorf("Items() = %q, want %q", got, "Bolt,Nut")
	}
}

func TestTableClone_Independent(t *testing.T) {
	tbl := Table{Rows: []Row{row("Bolt", 1, "1", "1")}}
	c := tbl.Clone()
	c.Rows[0].Quantity = 99

	if tbl.Rows[0].Quantity != 1 {
		t.Error("Clone shares row storage with the original")
	}
}

func TestTableEqual_NumericDecimals(t *testing.T) {
	a := Table{Rows: []Row{row("Bolt", 10, "0.5", "5")}}
	b := Table{Rows: []Row{row("Bolt", 10, "0.50", "5.00")}}
	if !a.Equal(b) {
		t.Error("Equal should compare decimals numerically")
	}
}

func TestTableValidate(t *testing.T) {
	tests := []struct {
		name    string
		table   Table
		wantErr string
	}{
		{"empty", Table{}, ""},
		{"consistent", Table{Rows: []Row{row("Bolt", 10, "0.50", "5.00")}}, ""},
		{"duplicate", Table{Rows: []Row{row("Bolt", 1, "1", "1"), row("Bolt", 1, "1", "1")}}, "duplicate item"},
		{"bad total", Table{Rows: []Row{row("Bolt", 10, "0.50", "4.00")}}, "total 4"},
		{"negative qty", Table{Rows: []Row{row("Bolt", -1, "1", "-1")}}, "negative quantity"},
		{"float total", Table{Rows: []Row{row("Bolt", 3, "0.1", "0.30000000000000004")}}, ""},
		{"total off by a cent", Table{Rows: []Row{row("Bolt", 3, "0.1", "0.31")}}, "total 0.31"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.table.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, ErrInvalidTable) {
				t.Fatalf("Validate() = %v, want ErrInvalidTable", err)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %q, want it to mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestGrandTotal(t *testing.T) {
	tbl := Table{Rows: []Row{row("Bolt", 10, "0.50", "5.00"), row("Nut", 3, "1.10", "3.30")}}
	if got := tbl.GrandTotal(); !got.Equal(dec("8.30")) {
		t.Errorf("GrandTotal() = %s, want 8.30", got)
	}
}
