package shopee

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Shopee open-platform endpoint paths.
const (
	pathAuthPartner      = "/api/v2/shop/auth_partner"
	pathTokenGet         = "/api/v2/auth/token/get"
	pathConversionReport = "/api/v2/ams/get_conversion_report"
)

// APIError is an explicit error returned in a Shopee response envelope.
// The upstream message is preserved verbatim for diagnostics.
type APIError struct {
	Code      string
	Message   string
	RequestID string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("shopee api error %s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("shopee api error %s", e.Code)
}

// ClientConfig holds what the client needs to talk to the open platform.
type ClientConfig struct {
	BaseURL     string
	PartnerID   int64
	PartnerKey  string
	RedirectURL string
	Timeout     time.Duration
}

// Client is a minimal Shopee open-platform client covering the affiliate
// (AMS) surface: authorization URL, token exchange and the conversion report.
type Client struct {
	baseURL     string
	redirectURL string
	signer      *Signer
	httpClient  *http.Client
	logger      *slog.Logger
	now         func() time.Time
}

// NewClient creates a client. Partner credentials are validated here; a
// missing key is a configuration error, not a per-call one.
func NewClient(cfg ClientConfig, logger *slog.Logger) (*Client, error) {
	signer, err := NewSigner(cfg.PartnerID, cfg.PartnerKey)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL:     cfg.BaseURL,
		redirectURL: cfg.RedirectURL,
		signer:      signer,
		httpClient:  &http.Client{Timeout: timeout},
		logger:      logger.With(slog.String("system", "shopee")),
		now:         time.Now,
	}, nil
}

// AuthURL builds the signed shop-authorization URL. The URL is handed to the
// user to visit; it is never fetched by this system.
func (c *Client) AuthURL() string {
	ts := c.now().Unix()
	q := url.Values{}
	q.Set("partner_id", strconv.FormatInt(c.signer.PartnerID(), 10))
	q.Set("timestamp", strconv.FormatInt(ts, 10))
	q.Set("sign", c.signer.SignBasic(pathAuthPartner, ts))
	q.Set("redirect", c.redirectURL)
	return c.baseURL + pathAuthPartner + "?" + q.Encode()
}

// ExchangeToken trades an authorization code for an access/refresh token pair.
func (c *Client) ExchangeToken(ctx context.Context, code string, shopID int64) (*TokenResult, error) {
	ts := c.now().Unix()
	q := url.Values{}
	q.Set("partner_id", strconv.FormatInt(c.signer.PartnerID(), 10))
	q.Set("timestamp", strconv.FormatInt(ts, 10))
	q.Set("sign", c.signer.SignBasic(pathTokenGet, ts))

	body, err := json.Marshal(map[string]any{
		"code":       code,
		"shop_id":    shopID,
		"partner_id": c.signer.PartnerID(),
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+pathTokenGet+"?"+q.Encode(), bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	raw, err := c.do(req)
	if err != nil {
		return nil, err
	}

	var result struct {
		envelopeFields
		TokenResult
	}
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("decode token response: %w", err)
	}
	if result.Error != "" {
		return nil, &APIError{Code: result.Error, Message: result.Message, RequestID: result.RequestID}
	}
	if result.AccessToken == "" {
		return nil, fmt.Errorf("token exchange returned no access_token")
	}
	return &result.TokenResult, nil
}

// ReportQuery identifies one conversion-report page request.
type ReportQuery struct {
	ShopID      int64
	AccessToken string
	StartTS     int64 // place_order_time_start, inclusive epoch seconds
	EndTS       int64 // place_order_time_end, inclusive epoch seconds
	PageNo      int
	PageSize    int
}

// GetConversionReportPage fetches a single page of the conversion report.
// The timestamp and signature are computed fresh per call; a retried page must
// go through here again rather than reuse a stale pair.
func (c *Client) GetConversionReportPage(ctx context.Context, query ReportQuery) (*ReportPage, error) {
	ts := c.now().Unix()
	q := url.Values{}
	q.Set("partner_id", strconv.FormatInt(c.signer.PartnerID(), 10))
	q.Set("timestamp", strconv.FormatInt(ts, 10))
	q.Set("access_token", query.AccessToken)
	q.Set("shop_id", strconv.FormatInt(query.ShopID, 10))
	q.Set("sign", c.signer.SignFull(pathConversionReport, ts, query.AccessToken, query.ShopID))
	q.Set("page_no", strconv.Itoa(query.PageNo))
	q.Set("page_size", strconv.Itoa(query.PageSize))
	q.Set("place_order_time_start", strconv.FormatInt(query.StartTS, 10))
	q.Set("place_order_time_end", strconv.FormatInt(query.EndTS, 10))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+pathConversionReport+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}

	raw, err := c.do(req)
	if err != nil {
		return nil, err
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("decode report page: %w", err)
	}
	if env.Error != "" {
		return nil, &APIError{Code: env.Error, Message: env.Message, RequestID: env.RequestID}
	}

	var page ReportPage
	if len(env.Response) > 0 {
		if err := json.Unmarshal(env.Response, &page); err != nil {
			return nil, fmt.Errorf("decode report page: %w", err)
		}
	}
	return &page, nil
}

// envelopeFields mirrors envelope for embedding in flat responses
// (token exchange returns its payload at the top level).
type envelopeFields struct {
	Error     string `json:"error"`
	Message   string `json:"message"`
	RequestID string `json:"request_id"`
}

func (c *Client) do(req *http.Request) ([]byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("shopee request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read shopee response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("non-200 response",
			slog.String("path", req.URL.Path),
			slog.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("shopee returned status %d: %s", resp.StatusCode, truncate(raw, 200))
	}
	return raw, nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
