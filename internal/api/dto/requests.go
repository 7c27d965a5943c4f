package dto

// ExchangeTokenRequest is the body of POST /api/auth/token.
type ExchangeTokenRequest struct {
	Code     string `json:"code"`
	ShopID   int64  `json:"shop_id"`
	ShopName string `json:"shop_name"`
}

// FetchReportRequest is the body of POST /api/reports/fetch.
// Dates are inclusive WIB calendar dates, "YYYY-MM-DD".
type FetchReportRequest struct {
	ShopName  string `json:"shop_name"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}
