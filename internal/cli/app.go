// Package cli implements the estoque command line: the same inbound,
// outbound and report actions as the web UI, run against the stock file.
package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/brunocosta1987/estoque/internal/core"
	"github.com/brunocosta1987/estoque/internal/i18n"
	"github.com/brunocosta1987/estoque/internal/report"
	"github.com/brunocosta1987/estoque/internal/store"
	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
)

// App carries what every subcommand needs. Commands read StorePath after
// flag parsing, so the global -store flag can point it elsewhere.
type App struct {
	StorePath string
	Locale    string
	Currency  string

	Out io.Writer
	Err io.Writer

	// Plain disables terminal styling of Markdown output.
	Plain bool
}

// NewApp returns an App writing to stdout and stderr.
func NewApp(storePath, locale, currency string) *App {
	return &App{
		StorePath: storePath,
		Locale:    locale,
		Currency:  currency,
		Out:       os.Stdout,
		Err:       os.Stderr,
	}
}

// Register adds the subcommands to c.
func Register(c *subcommands.Commander, app *App) {
	c.Register(c.HelpCommand(), "")
	c.Register(c.FlagsCommand(), "")
	c.Register(c.CommandsCommand(), "")

	c.Register(&inboundCmd{app: app}, "movimentos")
	c.Register(&outboundCmd{app: app}, "movimentos")

	c.Register(&reportCmd{app: app}, "relatórios")
	c.Register(&exportCmd{app: app}, "relatórios")
	c.Register(&itemsCmd{app: app}, "relatórios")
}

// RegisterFlags binds the global flags of the command line to app.
func RegisterFlags(f *flag.FlagSet, app *App) {
	f.StringVar(&app.StorePath, "store", app.StorePath, "Path to the stock CSV file")
	f.BoolVar(&app.Plain, "plain", app.Plain, "print Markdown without terminal styling")
}

// Service opens the stock file and builds the ledger service.
func (a *App) Service() (*core.Service, error) {
	catalog, err := i18n.New(a.Locale)
	if err != nil {
		return nil, err
	}
	format, err := report.NewFormatter(a.Currency)
	if err != nil {
		return nil, err
	}
	return core.NewService(store.New(a.StorePath),
		core.WithCatalog(catalog),
		core.WithFormatter(format),
	), nil
}

// actionContext tags ctx as a command line action.
func (a *App) actionContext(ctx context.Context) context.Context {
	return core.ContextWithSource(ctx, core.SourceCLI)
}

// errorf prints a failure on the error stream.
func (a *App) errorf(format string, args ...any) {
	fmt.Fprintf(a.Err, format+"\n", args...)
}

// printNotice writes n to the output, or to the error stream when it is not
// a success.
func (a *App) printNotice(n core.Notice) {
	w := a.Out
	if n.Level != core.LevelSuccess && n.Level != core.LevelInfo {
		w = a.Err
	}
	if n.Code != "" {
		fmt.Fprintf(w, "%s (%s)\n", n.Message, n.Code)
		return
	}
	fmt.Fprintln(w, n.Message)
}

// printMarkdown renders md for the terminal, falling back to the raw text.
func (a *App) printMarkdown(md string) {
	if a.Plain {
		fmt.Fprint(a.Out, md)
		return
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		fmt.Fprint(a.Out, md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Fprint(a.Out, md)
		return
	}
	fmt.Fprint(a.Out, out)
}

// finish prints the outcome of an action and maps it to the exit status.
// Errors with no specific user message also print the technical error, as
// the generic notice alone gives nothing to act on.
func (a *App) finish(n core.Notice, err error) subcommands.ExitStatus {
	a.printNotice(n)
	if err == nil {
		return subcommands.ExitSuccess
	}
	if !core.IsUserFacing(err) {
		a.errorf("Error: %v", err)
	}
	return subcommands.ExitFailure
}
