// Command estoque records stock movements and prints the balance report
// from the command line.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path"

	"github.com/brunocosta1987/estoque/internal/cli"
	"github.com/brunocosta1987/estoque/internal/config"
	"github.com/brunocosta1987/estoque/internal/logging"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
)

func main() {
	// A missing .env is fine; the environment and defaults still apply.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(int(subcommands.ExitUsageError))
	}

	// Entries go to stderr so command output stays clean. Action entries are
	// noise on a terminal, so only warnings show unless LOG_LEVEL is set.
	level := cfg.Logging.Level
	if _, ok := os.LookupEnv("LOG_LEVEL"); !ok {
		level = "warn"
	}
	logging.Setup(os.Stderr, level, cfg.Logging.Format)

	app := cli.NewApp(cfg.Store.Path, cfg.App.Locale, cfg.App.Currency)
	cli.RegisterFlags(flag.CommandLine, app)

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	cli.Register(commander, app)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
