package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/smartsplit/smartsplit/internal/config"
	"github.com/smartsplit/smartsplit/internal/ledger"
	"github.com/smartsplit/smartsplit/internal/server"
	"github.com/smartsplit/smartsplit/internal/storage/csvfile"
	"github.com/smartsplit/smartsplit/pkg/logging"
)

func main() {
	cfg := config.Load()
	logging.Setup(logging.ParseLevel(cfg.LogLevel), cfg.LogFormat)

	if err := cfg.Validate(); err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	lgr := ledger.New(cfg.Currency)
	archive := csvfile.New()
	srv := server.New(lgr, archive, server.NewMetrics())

	httpServer := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: srv.Handler(),
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("Server starting", "address", httpServer.Addr, "currency", cfg.Currency)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("Shutdown failed", "error", err)
		os.Exit(1)
	}
}
