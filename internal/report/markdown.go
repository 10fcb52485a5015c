package report

import (
	"strings"

	"github.com/brunocosta1987/estoque/internal/inventory"
)

// Labels are the localized strings of the Markdown report.
type Labels struct {
	Heading string
	Empty   string
	Total   string
}

// Markdown renders the balance report: a heading, the table with values in
// the formatter's currency, and the grand total.
func Markdown(t inventory.Table, f Formatter, l Labels) string {
	var b strings.Builder

	b.WriteString("# ")
	b.WriteString(l.Heading)
	b.WriteString("\n\n")

	if t.IsEmpty() {
		b.WriteString(l.Empty)
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString("| " + strings.Join(inventory.Columns, " | ") + " |\n")
	b.WriteString("|---|--:|--:|--:|\n")
	for _, r := range t.Rows {
		b.WriteString("| ")
		b.WriteString(escapeCell(r.Item))
		b.WriteString(" | ")
		b.WriteString(f.Quantity(r.Quantity))
		b.WriteString(" | ")
		b.WriteString(f.Money(r.UnitValue))
		b.WriteString(" | ")
		b.WriteString(f.Money(r.TotalValue))
		b.WriteString(" |\n")
	}

	b.WriteString("\n**")
	b.WriteString(l.Total)
	b.WriteString(":** ")
	b.WriteString(f.Money(t.GrandTotal()))
	b.WriteString("\n")
	return b.String()
}

func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.ReplaceAll(s, "\n", " ")
}
