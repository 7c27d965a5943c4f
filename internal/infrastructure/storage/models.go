package storage

import "time"

// Credential is one shop's token set, unique per shop name. Written by the
// token-exchange flow and read-only to the fetch pipeline.
type Credential struct {
	ShopName     string    `json:"shop_name"`
	ShopID       int64     `json:"shop_id"`
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ReportRecord is one archived export, content included.
type ReportRecord struct {
	ID        int64     `json:"id"`
	ShopName  string    `json:"shop_name"`
	DateRange string    `json:"date_range"`
	Content   []byte    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

// ReportSummary is a ReportRecord without its content, for history listings.
type ReportSummary struct {
	ID        int64     `json:"id"`
	ShopName  string    `json:"shop_name"`
	DateRange string    `json:"date_range"`
	SizeBytes int64     `json:"size_bytes"`
	CreatedAt time.Time `json:"created_at"`
}
