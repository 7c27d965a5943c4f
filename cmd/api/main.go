package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/myams/ams-backend/internal/api"
	"github.com/myams/ams-backend/internal/application/service"
	"github.com/myams/ams-backend/internal/infrastructure/config"
	"github.com/myams/ams-backend/internal/infrastructure/logging"
	"github.com/myams/ams-backend/internal/infrastructure/storage"
	"github.com/myams/ams-backend/internal/shopee"
)

func main() {
	configFile := flag.String("config", "config.yaml", "Configuration file path")
	flag.Parse()

	cfg := config.LoadOrEnvWithPath(*configFile)

	logger := logging.NewLoggerWithSystem(cfg.Observability.Logging, "api")

	if err := cfg.Validate(); err != nil {
		logger.Error("Invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	store, err := storage.NewStorage(cfg.Storage.DatabasePath)
	if err != nil {
		logger.Error("Failed to initialize storage", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer store.Close()

	client, err := shopee.NewClient(shopee.ClientConfig{
		BaseURL:     cfg.Shopee.BaseURL,
		PartnerID:   cfg.Shopee.PartnerID,
		PartnerKey:  cfg.Shopee.PartnerKey,
		RedirectURL: cfg.Shopee.RedirectURL,
		Timeout:     cfg.Fetch.RequestTimeout,
	}, logger)
	if err != nil {
		logger.Error("Failed to create Shopee client", slog.String("error", err.Error()))
		os.Exit(1)
	}

	svc := service.NewReportService(cfg, client, store, logger)

	server := api.NewServer(api.Config{
		Port:           cfg.API.Port,
		AllowedOrigins: cfg.API.AllowedOrigins,
	}, svc, logger)

	// Serve until interrupted, then drain in-flight requests.
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("Server failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
	case sig := <-sigCh:
		logger.Info("Received signal", slog.String("signal", sig.String()))

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			logger.Error("Shutdown failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	logger.Info("Server stopped")
}
