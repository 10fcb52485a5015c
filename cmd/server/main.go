package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/brunocosta1987/estoque/internal/config"
	"github.com/brunocosta1987/estoque/internal/core"
	"github.com/brunocosta1987/estoque/internal/i18n"
	"github.com/brunocosta1987/estoque/internal/logging"
	"github.com/brunocosta1987/estoque/internal/report"
	"github.com/brunocosta1987/estoque/internal/store"
	"github.com/brunocosta1987/estoque/internal/web"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file if it exists (Overload overwrites existing env vars)
	if err := godotenv.Overload(); err != nil {
		slog.Info("no .env file found, using environment variables")
	} else {
		slog.Info("loaded .env file (overwriting existing env vars)")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logging.Setup(os.Stdout, cfg.Logging.Level, cfg.Logging.Format)
	slog.Info("configuration loaded", "config", cfg.String())

	catalog, err := i18n.New(cfg.App.Locale)
	if err != nil {
		slog.Error("failed to load messages", "error", err)
		os.Exit(1)
	}
	format, err := report.NewFormatter(cfg.App.Currency)
	if err != nil {
		slog.Error("failed to set up currency", "error", err)
		os.Exit(1)
	}

	st := store.New(cfg.Store.Path)

	// A malformed stock file is reported now rather than on the first action.
	if t, err := st.Load(context.Background()); err != nil {
		slog.Error("stock file cannot be read",
			"path", st.Path(),
			"error", err,
			"hint", core.FormatUserError(err),
		)
		os.Exit(1)
	} else {
		slog.Info("stock file loaded", "path", st.Path(), "items", t.Len())
	}

	service := core.NewService(st,
		core.WithCatalog(catalog),
		core.WithFormatter(format),
	)
	server := web.NewServer(service, cfg.Server)

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		slog.Info("shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("shutdown error", "error", err)
		}
	}()

	if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}
