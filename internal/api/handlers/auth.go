package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/myams/ams-backend/internal/api/dto"
	"github.com/myams/ams-backend/internal/shopee"
)

// AuthHandler handles shop-authorization HTTP requests.
type AuthHandler struct {
	*Base
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(svc ReportService) *AuthHandler {
	return &AuthHandler{Base: NewBase(svc)}
}

// URL handles GET /api/auth/url - returns the signed authorization URL for
// the user to visit.
func (h *AuthHandler) URL(w http.ResponseWriter, r *http.Request) {
	h.WriteJSON(w, http.StatusOK, dto.AuthURLResponse{AuthURL: h.svc.AuthURL()})
}

// ExchangeToken handles POST /api/auth/token - trades an authorization code
// for tokens and stores them under the given shop name.
func (h *AuthHandler) ExchangeToken(w http.ResponseWriter, r *http.Request) {
	var req dto.ExchangeTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.WriteError(w, http.StatusBadRequest, dto.BadRequest("invalid JSON body"))
		return
	}
	if req.Code == "" || req.ShopID == 0 || req.ShopName == "" {
		h.WriteError(w, http.StatusBadRequest, dto.BadRequest("code, shop_id and shop_name are required"))
		return
	}

	cred, err := h.svc.ExchangeToken(r.Context(), req.Code, req.ShopID, req.ShopName)
	if err != nil {
		var apiErr *shopee.APIError
		if errors.As(err, &apiErr) {
			h.WriteError(w, http.StatusBadGateway, dto.UpstreamError(apiErr.Message))
			return
		}
		h.WriteError(w, http.StatusInternalServerError, dto.InternalError())
		return
	}

	h.WriteJSON(w, http.StatusOK, dto.ExchangeTokenResponse{
		ShopName:  cred.ShopName,
		ShopID:    cred.ShopID,
		UpdatedAt: cred.UpdatedAt,
	})
}
