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

	"lolstats/internal/collector"
	"lolstats/internal/config"
	"lolstats/internal/relay"
	"lolstats/internal/riot"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := setupLogging(cfg.Logging.Level)
	logger.Info("Starting relay", "addr", cfg.Addr(), "api_key", riot.MaskKey(cfg.Riot.APIKey))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, err := riot.NewClient(cfg.Riot.APIKey, riot.WithRateLimit(cfg.Riot.RequestsPerSecond, int(cfg.Riot.RequestsPerSecond)))
	if err != nil {
		logger.Error("Failed to create Riot client", "error", err)
		os.Exit(1)
	}
	if cfg.Riot.ValidateKey {
		validateKey(ctx, logger, client)
	}

	srv := &http.Server{
		Addr: cfg.Addr(),
		Handler: relay.NewServer(client, relay.Config{
			Collector: collector.Config{
				PageSize:    cfg.Paging.PageSize,
				DropTail:    cfg.Paging.DropTail,
				WorkerCount: cfg.Paging.Workers,
			},
			CORSOrigins: cfg.Server.CORSOrigins,
			Logger:      logger,
		}),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Relay listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("Server failed", "error", err)
			os.Exit(1)
		}
	case <-ctx.Done():
		logger.Info("Shutting down...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed", "error", err)
		os.Exit(1)
	}
	logger.Info("Relay stopped")
}

func setupLogging(level string) *slog.Logger {
	logLevel, err := config.ParseLevel(level)
	if err != nil {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(logger)
	return logger
}

// validateKey logs whether the key is accepted. Startup continues either way.
func validateKey(ctx context.Context, logger *slog.Logger, client *riot.Client) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	valid, err := client.CheckKey(ctx, riot.DefaultRegion)
	switch {
	case err != nil:
		logger.Warn("Could not validate API key", "error", err)
	case !valid:
		logger.Warn("API key was rejected by Riot; development keys expire every 24 hours")
	default:
		logger.Info("API key validated")
	}
}
