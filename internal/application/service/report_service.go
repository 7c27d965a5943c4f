// Package service orchestrates the conversion-report pipeline: credential
// lookup, date-range normalization, the paginated fetch, flattening, export
// and archival.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/myams/ams-backend/internal/domain/report"
	"github.com/myams/ams-backend/internal/domain/timezone"
	"github.com/myams/ams-backend/internal/export"
	"github.com/myams/ams-backend/internal/infrastructure/config"
	"github.com/myams/ams-backend/internal/infrastructure/storage"
	"github.com/myams/ams-backend/internal/shopee"
)

// ErrFetchInProgress is returned when a fetch is started while another is
// still running. One fetch runs at a time; the upstream page counter is
// stateful and the UI triggers fetches synchronously.
var ErrFetchInProgress = errors.New("a conversion fetch is already in progress")

// ShopeeClient is the slice of the API client the service depends on.
type ShopeeClient interface {
	AuthURL() string
	ExchangeToken(ctx context.Context, code string, shopID int64) (*shopee.TokenResult, error)
	shopee.ReportClient
}

// FetchResult summarizes one conversion-report fetch. Rows is the full
// flattened report; on a failed fetch it holds the pages accumulated before
// the failure, and Partial is set.
type FetchResult struct {
	RunID      string
	ShopName   string
	DateRange  string
	StartTS    int64
	EndTS      int64
	OrderCount int
	Rows       []report.Row
	Warnings   []string
	ReportID   int64 // archive id; zero when the fetch failed before archival
	Partial    bool
}

// ReportService manages conversion-report operations.
type ReportService struct {
	cfg     *config.Config
	client  ShopeeClient
	fetcher *shopee.Fetcher
	repo    storage.Repository
	logger  *slog.Logger

	// Guards the single in-flight fetch.
	fetchMu sync.Mutex
}

// NewReportService creates a report service.
func NewReportService(cfg *config.Config, client ShopeeClient, repo storage.Repository, logger *slog.Logger) *ReportService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReportService{
		cfg:     cfg,
		client:  client,
		fetcher: shopee.NewFetcher(client, cfg.Fetch.PageSize, cfg.Fetch.PageDelay, logger),
		repo:    repo,
		logger:  logger.With(slog.String("system", "report")),
	}
}

// AuthURL returns the signed shop-authorization URL for the user to visit.
func (s *ReportService) AuthURL() string {
	return s.client.AuthURL()
}

// ExchangeToken trades an authorization code for tokens and stores them under
// shopName.
func (s *ReportService) ExchangeToken(ctx context.Context, code string, shopID int64, shopName string) (*storage.Credential, error) {
	if shopName == "" {
		return nil, fmt.Errorf("shop name is required")
	}

	tok, err := s.client.ExchangeToken(ctx, code, shopID)
	if err != nil {
		return nil, err
	}

	cred := &storage.Credential{
		ShopName:     shopName,
		ShopID:       shopID,
		AccessToken:  tok.AccessToken,
		RefreshToken: tok.RefreshToken,
		UpdatedAt:    time.Now().UTC(),
	}
	if err := s.repo.UpsertToken(cred); err != nil {
		return nil, fmt.Errorf("store token for %q: %w", shopName, err)
	}

	s.logger.Info("token stored", slog.String("shop", shopName), slog.Int64("shop_id", shopID))
	return cred, nil
}

// ListShops returns the shops with stored credentials.
func (s *ReportService) ListShops() ([]string, error) {
	return s.repo.ListShopNames()
}

// FetchReport runs the full pipeline for one shop and date range
// (inclusive WIB calendar dates, "YYYY-MM-DD").
//
// On upstream or transport failure the returned result is non-nil and carries
// the partially accumulated rows alongside the error; nothing is archived.
// On success the export is archived and ReportID set.
func (s *ReportService) FetchReport(ctx context.Context, shopName, startDate, endDate string) (*FetchResult, error) {
	if !s.fetchMu.TryLock() {
		return nil, ErrFetchInProgress
	}
	defer s.fetchMu.Unlock()

	start, err := timezone.ParseDate(startDate)
	if err != nil {
		return nil, err
	}
	end, err := timezone.ParseDate(endDate)
	if err != nil {
		return nil, err
	}
	if end.Before(start) {
		return nil, fmt.Errorf("end date %s is before start date %s", endDate, startDate)
	}

	cred, err := s.repo.GetToken(shopName)
	if err != nil {
		if errors.Is(err, storage.ErrTokenNotFound) {
			return nil, fmt.Errorf("shop %q has no stored token, authorize it first: %w", shopName, err)
		}
		return nil, fmt.Errorf("load token for %q: %w", shopName, err)
	}

	startTs, endTs, warnings := timezone.EpochRange(start, end)

	result := &FetchResult{
		RunID:     uuid.NewString(),
		ShopName:  shopName,
		DateRange: startDate + "_" + endDate,
		StartTS:   startTs,
		EndTS:     endTs,
		Warnings:  warnings,
	}

	s.logger.Info("starting conversion fetch",
		slog.String("run_id", result.RunID),
		slog.String("shop", shopName),
		slog.String("range", result.DateRange))

	orders, fetchErr := s.fetcher.FetchAll(ctx, shopee.FetchRequest{
		ShopID:      cred.ShopID,
		AccessToken: cred.AccessToken,
		StartTS:     startTs,
		EndTS:       endTs,
	})

	result.OrderCount = len(orders)
	result.Rows = report.Flatten(orders)

	if fetchErr != nil {
		result.Partial = true
		s.logger.Error("conversion fetch failed",
			slog.String("run_id", result.RunID),
			slog.Int("partial_orders", len(orders)),
			slog.String("error", fetchErr.Error()))
		return result, fetchErr
	}

	data, err := export.XLSX(result.Rows)
	if err != nil {
		return result, fmt.Errorf("render export: %w", err)
	}

	id, err := s.repo.SaveReport(&storage.ReportRecord{
		ShopName:  shopName,
		DateRange: "CONVERSION " + result.DateRange,
		Content:   data,
	})
	if err != nil {
		return result, fmt.Errorf("archive report: %w", err)
	}
	result.ReportID = id

	s.logger.Info("conversion fetch complete",
		slog.String("run_id", result.RunID),
		slog.Int("orders", result.OrderCount),
		slog.Int("rows", len(result.Rows)),
		slog.Int64("report_id", id))

	return result, nil
}

// History lists archived reports for a shop, newest first.
func (s *ReportService) History(shopName string, limit int) ([]storage.ReportSummary, error) {
	return s.repo.ListReports(shopName, limit)
}

// GetReport returns one archived report, content included.
func (s *ReportService) GetReport(id int64) (*storage.ReportRecord, error) {
	return s.repo.GetReport(id)
}
