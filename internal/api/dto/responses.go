package dto

import "time"

// AuthURLResponse carries the signed authorization URL.
type AuthURLResponse struct {
	AuthURL string `json:"auth_url"`
}

// ExchangeTokenResponse confirms a stored credential.
type ExchangeTokenResponse struct {
	ShopName  string    `json:"shop_name"`
	ShopID    int64     `json:"shop_id"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ShopListResponse lists authorized shops.
type ShopListResponse struct {
	Shops []string `json:"shops"`
}

// FetchReportResponse summarizes a completed (or partial) fetch.
type FetchReportResponse struct {
	RunID      string   `json:"run_id"`
	ShopName   string   `json:"shop_name"`
	DateRange  string   `json:"date_range"`
	OrderCount int      `json:"order_count"`
	RowCount   int      `json:"row_count"`
	Warnings   []string `json:"warnings,omitempty"`
	ReportID   int64    `json:"report_id,omitempty"`
	Partial    bool     `json:"partial,omitempty"`
}

// FetchErrorResponse reports a failed fetch together with how much data was
// accumulated before the failure, so the caller can judge the partial result.
type FetchErrorResponse struct {
	Error      string `json:"error"`
	Message    string `json:"message"`
	RunID      string `json:"run_id,omitempty"`
	Partial    bool   `json:"partial"`
	OrderCount int    `json:"order_count"`
	RowCount   int    `json:"row_count"`
}

// ReportSummaryResponse is one entry of the report history.
type ReportSummaryResponse struct {
	ID        int64     `json:"id"`
	ShopName  string    `json:"shop_name"`
	DateRange string    `json:"date_range"`
	SizeBytes int64     `json:"size_bytes"`
	CreatedAt time.Time `json:"created_at"`
}

// ReportHistoryResponse lists archived reports, newest first.
type ReportHistoryResponse struct {
	Reports []ReportSummaryResponse `json:"reports"`
}
