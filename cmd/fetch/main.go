package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/myams/ams-backend/internal/application/service"
	"github.com/myams/ams-backend/internal/export"
	"github.com/myams/ams-backend/internal/infrastructure/config"
	"github.com/myams/ams-backend/internal/infrastructure/logging"
	"github.com/myams/ams-backend/internal/infrastructure/storage"
	"github.com/myams/ams-backend/internal/shopee"
)

func main() {
	var (
		configFile = flag.String("config", "config.yaml", "Configuration file path")
		shopName   = flag.String("shop", "", "Authorized shop name")
		startDate  = flag.String("start", "", "Start date (YYYY-MM-DD, WIB)")
		endDate    = flag.String("end", "", "End date (YYYY-MM-DD, WIB)")
		outFile    = flag.String("out", "", "Output .xlsx path (default: conversion_<shop>_<start>_<end>.xlsx)")
		authURL    = flag.Bool("auth-url", false, "Print the shop authorization URL and exit")
		verbose    = flag.Bool("verbose", false, "Enable verbose logging")
	)
	flag.Parse()

	cfg := config.LoadOrEnvWithPath(*configFile)
	if *verbose {
		cfg.Observability.Logging.Level = "debug"
	}

	logger := logging.NewLoggerWithSystem(cfg.Observability.Logging, "fetch")

	if err := cfg.Validate(); err != nil {
		logger.Error("Invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

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

	if *authURL {
		fmt.Println(client.AuthURL())
		return
	}

	if *shopName == "" || *startDate == "" || *endDate == "" {
		flag.Usage()
		os.Exit(2)
	}

	store, err := storage.NewStorage(cfg.Storage.DatabasePath)
	if err != nil {
		logger.Error("Failed to initialize storage", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer store.Close()

	svc := service.NewReportService(cfg, client, store, logger)

	result, err := svc.FetchReport(context.Background(), *shopName, *startDate, *endDate)
	if err != nil {
		if errors.Is(err, storage.ErrTokenNotFound) {
			logger.Error("No stored token for shop; authorize it first",
				slog.String("shop", *shopName))
			os.Exit(1)
		}
		if result != nil && result.Partial {
			logger.Warn("Fetch failed partway; writing what was collected",
				slog.String("error", err.Error()),
				slog.Int("orders", result.OrderCount),
				slog.Int("rows", len(result.Rows)))
		} else {
			logger.Error("Fetch failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	for _, w := range result.Warnings {
		logger.Warn(w)
	}

	path := *outFile
	if path == "" {
		path = fmt.Sprintf("conversion_%s_%s.xlsx", *shopName, result.DateRange)
	}

	content, err := export.XLSX(result.Rows)
	if err != nil {
		logger.Error("Failed to build workbook", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		logger.Error("Failed to write file", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("Report written",
		slog.String("file", path),
		slog.Int("orders", result.OrderCount),
		slog.Int("rows", len(result.Rows)))
}
