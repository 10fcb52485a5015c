package cli

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// inboundCmd holds the flags for the 'entrada' subcommand.
type inboundCmd struct {
	app       *App
	item      string
	quantity  int64
	unitValue string
}

func (*inboundCmd) Name() string     { return "entrada" }
func (*inboundCmd) Synopsis() string { return "record received stock for an item" }
func (*inboundCmd) Usage() string {
	return `estoque entrada -item <name> -q <quantity> -v <unit value>

  Adds quantity units of the item, creating it when new. The unit value
  replaces the item's previous one.
`
}

func (c *inboundCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.item, "item", "", "item name")
	f.Int64Var(&c.quantity, "q", 1, "quantity received, at least 1")
	f.StringVar(&c.unitValue, "v", "0", "unit value, at least 0")
}

func (c *inboundCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.item == "" {
		c.app.errorf("Error: -item is required")
		return subcommands.ExitUsageError
	}
	unit, err := decimal.NewFromString(c.unitValue)
	if err != nil {
		c.app.errorf("Error parsing unit value %q: %v", c.unitValue, err)
		return subcommands.ExitUsageError
	}

	svc, err := c.app.Service()
	if err != nil {
		c.app.errorf("Error: %v", err)
		return subcommands.ExitFailure
	}

	n, err := svc.Inbound(c.app.actionContext(ctx), c.item, c.quantity, unit)
	return c.app.finish(n, err)
}

// outboundCmd holds the flags for the 'saida' subcommand.
type outboundCmd struct {
	app      *App
	item     string
	quantity int64
}

func (*outboundCmd) Name() string     { return "saida" }
func (*outboundCmd) Synopsis() string { return "record stock leaving for an item" }
func (*outboundCmd) Usage() string {
	return `estoque saida -item <name> -q <quantity>

  Removes quantity units of an existing item. Nothing is written when the
  stock is insufficient.
`
}

func (c *outboundCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.item, "item", "", "item name, as listed by 'itens'")
	f.Int64Var(&c.quantity, "q", 1, "quantity to remove, at least 1")
}

func (c *outboundCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.item == "" {
		c.app.errorf("Error: -item is required")
		return subcommands.ExitUsageError
	}

	svc, err := c.app.Service()
	if err != nil {
		c.app.errorf("Error: %v", err)
		return subcommands.ExitFailure
	}

	n, err := svc.Outbound(c.app.actionContext(ctx), c.item, c.quantity)
	return c.app.finish(n, err)
}
