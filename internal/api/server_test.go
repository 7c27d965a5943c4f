package api

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/myams/ams-backend/internal/application/service"
	"github.com/myams/ams-backend/internal/infrastructure/storage"
)

// noopService satisfies the handler interface with empty results; routing
// tests only care about status codes.
type noopService struct{}

func (noopService) AuthURL() string { return "https://example.test/auth" }

func (noopService) ExchangeToken(context.Context, string, int64, string) (*storage.Credential, error) {
	return &storage.Credential{}, nil
}

func (noopService) ListShops() ([]string, error) { return nil, nil }

func (noopService) FetchReport(context.Context, string, string, string) (*service.FetchResult, error) {
	return &service.FetchResult{}, nil
}

func (noopService) History(string, int) ([]storage.ReportSummary, error) { return nil, nil }

func (noopService) GetReport(int64) (*storage.ReportRecord, error) {
	return nil, storage.ErrReportNotFound
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	svc := &noopService{}
	logger := slog.New(slog.NewTextHandler(testWriter{t}, nil))
	return NewServer(DefaultConfig(), svc, logger)
}

type testWriter struct{ t *testing.T }

func (w testWriter) Write(p []byte) (int, error) {
	w.t.Log(string(p))
	return len(p), nil
}

func TestServerRoutes(t *testing.T) {
	server := newTestServer(t)

	tests := []struct {
		name   string
		method string
		path   string
		want   int
	}{
		{"health", "GET", "/health", http.StatusOK},
		{"auth url", "GET", "/api/auth/url", http.StatusOK},
		{"shops", "GET", "/api/shops", http.StatusOK},
		{"history without shop", "GET", "/api/reports/history", http.StatusBadRequest},
		{"unknown route", "GET", "/api/nope", http.StatusNotFound},
		{"fetch requires POST", "GET", "/api/reports/fetch", http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			w := httptest.NewRecorder()
			server.Router().ServeHTTP(w, req)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestServerCORS(t *testing.T) {
	server := newTestServer(t)

	t.Run("allowed origin echoed", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/shops", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		w := httptest.NewRecorder()
		server.Router().ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("preflight short-circuits", func(t *testing.T) {
		req := httptest.NewRequest("OPTIONS", "/api/reports/fetch", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		req.Header.Set("Access-Control-Request-Method", "POST")
		w := httptest.NewRecorder()
		server.Router().ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("unknown origin gets no CORS headers", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/shops", nil)
		req.Header.Set("Origin", "https://evil.example")
		w := httptest.NewRecorder()
		server.Router().ServeHTTP(w, req)

		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})
}
