package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/brunocosta1987/estoque/internal/inventory"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

func sampleTable() inventory.Table {
	return inventory.Table{Rows: []inventory.Row{
		inventory.NewRow("Bolt", 15, decimal.RequireFromString("0.60")),
		inventory.NewRow("Nut", 4, decimal.RequireFromString("1.25")),
	}}
}

func TestXLSX_SheetContents(t *testing.T) {
	data, err := XLSX(sampleTable())
	if err != nil {
		t.Fatalf("XLSX() error = %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("OpenReader() error = %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) != 1 || sheets[0] != SheetName {
		t.Fatalf("sheets = %v, want [%s]", sheets, SheetName)
	}

	rows, err := f.GetRows(SheetName)
	if err != nil {
		t.Fatalf("GetRows() error = %v", err)
	}

	want := [][]string{
		{"Item", "Quantidade", "Valor_Unitário", "Valor_Total"},
		{"Bolt", "15", "0.6", "9"},
		{"Nut", "4", "1.25", "5"},
	}
	if len(rows) != len(want) {
		t.Fatalf("rows = %d, want %d", len(rows), len(want))
	}
	for i := range want {
		if strings.Join(rows[i], "|") != strings.Join(want[i], "|") {
			t.Errorf("row %d = %v, want %v", i, rows[i], want[i])
		}
	}
}

func TestXLSX_EmptyTableHasHeader(t *testing.T) {
	data, err := XLSX(inventory.Table{})
	if err != nil {
		t.Fatalf("XLSX() error = %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("OpenReader() error = %v", err)
	}
	defer f.Close()

	rows, _ := f.GetRows(SheetName)
	if len(rows) != 1 || len(rows[0]) != 4 {
		t.Errorf("rows = %v, want header only", rows)
	}
}

func TestFormatter(t *testing.T) {
	f, err := NewFormatter("BRL")
	if err != nil {
		t.Fatalf("NewFormatter() error = %v", err)
	}

	got := f.Money(decimal.RequireFromString("1234.5"))
	if !strings.Contains(got, "R$") || !strings.Contains(got, "1.234,50") {
		t.Errorf("Money(1234.5) = %q, want R$ 1.234,50", got)
	}
	if f.Currency() != "BRL" {
		t.Errorf("Currency() = %q, want BRL", f.Currency())
	}
}

func TestFormatter_RoundsToMinorUnit(t *testing.T) {
	f, _ := NewFormatter("USD")
	if got := f.Money(decimal.RequireFromString("0.025")); got != "$0.03" {
		t.Errorf("Money(0.025) = %q, want $0.03", got)
	}
}

func TestNewFormatter_UnknownCurrency(t *testing.T) {
	if _, err := NewFormatter("XYZ"); err == nil {
		t.Fatal("NewFormatter() expected error for unknown code")
	}
}

func TestMarkdown(t *testing.T) {
	f, _ := NewFormatter("USD")
	labels := Labels{Heading: "Balance", Empty: "Nothing here.", Total: "Total"}

	md := Markdown(sampleTable(), f, labels)

	for _, want := range []string{
		"# Balance",
		"| Item | Quantidade | Valor_Unitário | Valor_Total |",
		"| Bolt | 15 | $0.60 | $9.00 |",
		"| Nut | 4 | $1.25 | $5.00 |",
		"**Total:** $14.00",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("Markdown() missing %q:\n%s", want, md)
		}
	}
}

func TestMarkdown_Empty(t *testing.T) {
	md := Markdown(inventory.Table{}, Formatter{}, Labels{Heading: "H", Empty: "Nothing here."})
	if !strings.Contains(md, "Nothing here.") || strings.Contains(md, "|") {
		t.Errorf("Markdown() = %q", md)
	}
}

func TestMarkdown_EscapesPipes(t *testing.T) {
	tbl := inventory.Table{Rows: []inventory.Row{inventory.NewRow("A|B", 1, decimal.NewFromInt(1))}}
	md := Markdown(tbl, Formatter{}, Labels{})
	if !strings.Contains(md, `A\|B`) {
		t.Errorf("Markdown() did not escape pipe:\n%s", md)
	}
}
