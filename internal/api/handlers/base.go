package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/myams/ams-backend/internal/api/dto"
	"github.com/myams/ams-backend/internal/application/service"
	"github.com/myams/ams-backend/internal/infrastructure/storage"
)

// ReportService is the application surface the handlers expose over HTTP.
// *service.ReportService satisfies it; tests substitute a stub.
type ReportService interface {
	AuthURL() string
	ExchangeToken(ctx context.Context, code string, shopID int64, shopName string) (*storage.Credential, error)
	ListShops() ([]string, error)
	FetchReport(ctx context.Context, shopName, startDate, endDate string) (*service.FetchResult, error)
	History(shopName string, limit int) ([]storage.ReportSummary, error)
	GetReport(id int64) (*storage.ReportRecord, error)
}

// Base provides shared functionality for all handlers.
type Base struct {
	svc ReportService
}

// NewBase creates a new base handler backed by the given service.
func NewBase(svc ReportService) *Base {
	return &Base{svc: svc}
}

// WriteJSON writes a JSON response with the given status code.
func (b *Base) WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// WriteError writes an error response with the given status code.
func (b *Base) WriteError(w http.ResponseWriter, status int, err dto.APIError) {
	b.WriteJSON(w, status, err)
}

// ParseIntParam parses an integer query parameter with a default value.
func ParseIntParam(r *http.Request, name string, defaultVal int) int {
	val := r.URL.Query().Get(name)
	if val == "" {
		return defaultVal
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return parsed
}
