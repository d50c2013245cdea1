// Command sourceidd serves the source identifier conversion API over HTTP.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	httpadapter "github.com/couchcryptid/fdsn-sourceid/internal/adapter/http"
	"github.com/couchcryptid/fdsn-sourceid/internal/config"
	"github.com/couchcryptid/fdsn-sourceid/internal/converter"
	"github.com/couchcryptid/fdsn-sourceid/internal/observability"
	"github.com/jonboulle/clockwork"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	cacheSize := 0
	if cfg.CacheEnabled {
		cacheSize = cfg.CacheSize
		logger.Info("parse cache enabled", "cache_size", cacheSize)
	} else {
		logger.Info("parse cache disabled")
	}

	svc := converter.NewService(logger, metrics, clockwork.NewRealClock(), cacheSize)
	srv := httpadapter.NewServer(cfg.HTTPAddr, svc, svc, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}

	logger.Info("shutdown complete")
}
