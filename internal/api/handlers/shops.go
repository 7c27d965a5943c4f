package handlers

import (
	"net/http"

	"github.com/myams/ams-backend/internal/api/dto"
)

// ShopsHandler handles shop-registry HTTP requests.
type ShopsHandler struct {
	*Base
}

// NewShopsHandler creates a new shops handler.
func NewShopsHandler(svc ReportService) *ShopsHandler {
	return &ShopsHandler{Base: NewBase(svc)}
}

// List handles GET /api/shops - returns all authorized shop names.
func (h *ShopsHandler) List(w http.ResponseWriter, r *http.Request) {
	names, err := h.svc.ListShops()
	if err != nil {
		h.WriteError(w, http.StatusInternalServerError, dto.InternalError())
		return
	}
	if names == nil {
		names = []string{}
	}
	h.WriteJSON(w, http.StatusOK, dto.ShopListResponse{Shops: names})
}
