package cli

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/brunocosta1987/estoque/internal/report"
	"github.com/google/subcommands"
)

// reportCmd prints the balance report.
type reportCmd struct {
	app *App
}

func (*reportCmd) Name() string     { return "relatorio" }
func (*reportCmd) Synopsis() string { return "display the stock balance report" }
func (*reportCmd) Usage() string {
	return `estoque relatorio

  Displays every item with its quantity, unit value and total, followed by
  the total stock value.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {}

func (c *reportCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	svc, err := c.app.Service()
	if err != nil {
		c.app.errorf("Error: %v", err)
		return subcommands.ExitFailure
	}

	md, err := svc.BalanceMarkdown(c.app.actionContext(ctx))
	if err != nil {
		return c.app.finish(svc.ErrorNotice(err, nil), err)
	}
	c.app.printMarkdown(md)
	return subcommands.ExitSuccess
}

// exportCmd holds the flags for the 'exportar' subcommand.
type exportCmd struct {
	app    *App
	output string
}

func (*exportCmd) Name() string     { return "exportar" }
func (*exportCmd) Synopsis() string { return "write the balance report as an Excel file" }
func (*exportCmd) Usage() string {
	return `estoque exportar [-o <file>]

  Writes the stock table to an xlsx workbook.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", report.FileName, "output file")
}

func (c *exportCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	svc, err := c.app.Service()
	if err != nil {
		c.app.errorf("Error: %v", err)
		return subcommands.ExitFailure
	}

	// Render first so a failed load leaves an existing file untouched.
	var buf bytes.Buffer
	if err := svc.ExportSpreadsheet(c.app.actionContext(ctx), &buf); err != nil {
		return c.app.finish(svc.ErrorNotice(err, nil), err)
	}
	if err := os.WriteFile(c.output, buf.Bytes(), 0o644); err != nil {
		c.app.errorf("Error writing %q: %v", c.output, err)
		return subcommands.ExitFailure
	}

	fmt.Fprintln(c.app.Out, c.output)
	return subcommands.ExitSuccess
}

// itemsCmd lists the registered items.
type itemsCmd struct {
	app *App
}

func (*itemsCmd) Name() string     { return "itens" }
func (*itemsCmd) Synopsis() string { return "list registered items, one per line" }
func (*itemsCmd) Usage() string {
	return `estoque itens

  Lists the item names accepted by 'saida', in table order.
`
}

func (c *itemsCmd) SetFlags(f *flag.FlagSet) {}

func (c *itemsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	svc, err := c.app.Service()
	if err != nil {
		c.app.errorf("Error: %v", err)
		return subcommands.ExitFailure
	}

	items, err := svc.Items(c.app.actionContext(ctx))
	if err != nil {
		return c.app.finish(svc.ErrorNotice(err, nil), err)
	}
	for _, item := range items {
		fmt.Fprintln(c.app.Out, item)
	}
	return subcommands.ExitSuccess
}
