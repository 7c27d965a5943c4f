package shopee

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// ReportClient is the single call the fetcher needs from the API client.
type ReportClient interface {
	GetConversionReportPage(ctx context.Context, query ReportQuery) (*ReportPage, error)
}

// FetchRequest identifies one full conversion-report fetch.
type FetchRequest struct {
	ShopID      int64
	AccessToken string
	StartTS     int64
	EndTS       int64
}

// Fetcher walks the conversion report page by page until the upstream
// indicates exhaustion. Pages are fetched strictly sequentially: the page
// counter is only meaningful after the prior page resolved, so there is
// nothing to parallelize.
type Fetcher struct {
	client   ReportClient
	pageSize int
	delay    time.Duration
	logger   *slog.Logger
}

// NewFetcher creates a fetcher. delay is the pause inserted between
// successful page fetches to stay under the upstream rate limit; it is not
// applied after the terminal page.
func NewFetcher(client ReportClient, pageSize int, delay time.Duration, logger *slog.Logger) *Fetcher {
	if pageSize <= 0 {
		pageSize = 100
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Fetcher{
		client:   client,
		pageSize: pageSize,
		delay:    delay,
		logger:   logger.With(slog.String("system", "fetch")),
	}
}

// FetchAll accumulates every page of the conversion report for the request.
//
// On failure (transport error, upstream error envelope, or cancellation
// between pages) it returns the pages accumulated so far together with the
// error; the caller decides whether partial results are usable. An empty page
// terminates the walk regardless of has_more, which upstream is known to
// report inconsistently on the last page.
func (f *Fetcher) FetchAll(ctx context.Context, req FetchRequest) ([]RawOrder, error) {
	var orders []RawOrder

	for pageNo := 1; ; pageNo++ {
		page, err := f.client.GetConversionReportPage(ctx, ReportQuery{
			ShopID:      req.ShopID,
			AccessToken: req.AccessToken,
			StartTS:     req.StartTS,
			EndTS:       req.EndTS,
			PageNo:      pageNo,
			PageSize:    f.pageSize,
		})
		if err != nil {
			return orders, fmt.Errorf("fetch page %d: %w", pageNo, err)
		}

		if len(page.List) == 0 {
			f.logger.Debug("empty page, stopping", slog.Int("page_no", pageNo))
			return orders, nil
		}

		orders = append(orders, page.List...)
		f.logger.Info("fetched page",
			slog.Int("page_no", pageNo),
			slog.Int("orders", len(page.List)),
			slog.Int("accumulated", len(orders)))

		if !page.HasMore {
			return orders, nil
		}

		// Rate-limit pause before the next page; cancellation here keeps
		// the last fully fetched page's data intact.
		if err := f.pause(ctx); err != nil {
			return orders, err
		}
	}
}

func (f *Fetcher) pause(ctx context.Context) error {
	if f.delay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(f.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
