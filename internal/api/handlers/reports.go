package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/myams/ams-backend/internal/api/dto"
	"github.com/myams/ams-backend/internal/application/service"
	"github.com/myams/ams-backend/internal/infrastructure/storage"
	"github.com/myams/ams-backend/internal/shopee"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ReportsHandler handles conversion-report HTTP requests.
type ReportsHandler struct {
	*Base
}

// NewReportsHandler creates a new reports handler.
func NewReportsHandler(svc ReportService) *ReportsHandler {
	return &ReportsHandler{Base: NewBase(svc)}
}

// Fetch handles POST /api/reports/fetch - runs the full pipeline for a shop
// and date range. The fetch is synchronous; only one runs at a time.
func (h *ReportsHandler) Fetch(w http.ResponseWriter, r *http.Request) {
	var req dto.FetchReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.WriteError(w, http.StatusBadRequest, dto.BadRequest("invalid JSON body"))
		return
	}
	if req.ShopName == "" || req.StartDate == "" || req.EndDate == "" {
		h.WriteError(w, http.StatusBadRequest, dto.BadRequest("shop_name, start_date and end_date are required"))
		return
	}

	result, err := h.svc.FetchReport(r.Context(), req.ShopName, req.StartDate, req.EndDate)
	if err != nil {
		h.writeFetchError(w, result, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, dto.FetchReportResponse{
		RunID:      result.RunID,
		ShopName:   result.ShopName,
		DateRange:  result.DateRange,
		OrderCount: result.OrderCount,
		RowCount:   len(result.Rows),
		Warnings:   result.Warnings,
		ReportID:   result.ReportID,
	})
}

// writeFetchError maps pipeline failures onto distinct, actionable responses.
func (h *ReportsHandler) writeFetchError(w http.ResponseWriter, result *service.FetchResult, err error) {
	switch {
	case errors.Is(err, service.ErrFetchInProgress):
		h.WriteError(w, http.StatusConflict, dto.FetchInProgress())

	case errors.Is(err, storage.ErrTokenNotFound):
		h.WriteError(w, http.StatusNotFound, dto.TokenMissing(err.Error()))

	default:
		resp := dto.FetchErrorResponse{
			Error:   "fetch_failed",
			Message: err.Error(),
		}
		status := http.StatusInternalServerError

		var apiErr *shopee.APIError
		if errors.As(err, &apiErr) {
			resp.Error = "upstream_error"
			resp.Message = apiErr.Message
			status = http.StatusBadGateway
		} else if result == nil {
			// Failed before the fetch started: bad dates or similar
			h.WriteError(w, http.StatusBadRequest, dto.BadRequest(err.Error()))
			return
		} else {
			status = http.StatusBadGateway
		}

		if result != nil {
			resp.RunID = result.RunID
			resp.Partial = result.Partial
			resp.OrderCount = result.OrderCount
			resp.RowCount = len(result.Rows)
		}
		h.WriteJSON(w, status, resp)
	}
}

// History handles GET /api/reports/history?shop_name=&limit= - lists archived
// reports for a shop, newest first.
func (h *ReportsHandler) History(w http.ResponseWriter, r *http.Request) {
	shopName := r.URL.Query().Get("shop_name")
	if shopName == "" {
		h.WriteError(w, http.StatusBadRequest, dto.BadRequest("shop_name is required"))
		return
	}
	limit := ParseIntParam(r, "limit", 20)

	reports, err := h.svc.History(shopName, limit)
	if err != nil {
		h.WriteError(w, http.StatusInternalServerError, dto.InternalError())
		return
	}

	resp := dto.ReportHistoryResponse{Reports: make([]dto.ReportSummaryResponse, 0, len(reports))}
	for _, rec := range reports {
		resp.Reports = append(resp.Reports, dto.ReportSummaryResponse{
			ID:        rec.ID,
			ShopName:  rec.ShopName,
			DateRange: rec.DateRange,
			SizeBytes: rec.SizeBytes,
			CreatedAt: rec.CreatedAt,
		})
	}
	h.WriteJSON(w, http.StatusOK, resp)
}

// Download handles GET /api/reports/{id}/download - streams an archived
// export as an .xlsx attachment.
func (h *ReportsHandler) Download(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, dto.BadRequest("invalid report id"))
		return
	}

	rec, err := h.svc.GetReport(id)
	if err != nil {
		if errors.Is(err, storage.ErrReportNotFound) {
			h.WriteError(w, http.StatusNotFound, dto.NotFound("report not found"))
			return
		}
		h.WriteError(w, http.StatusInternalServerError, dto.InternalError())
		return
	}

	filename := fmt.Sprintf("Seller_Conversion_%s_%d.xlsx", rec.ShopName, rec.ID)
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(rec.Content)
}
