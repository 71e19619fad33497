package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/dmitrijs2005/tillbox/internal/server/models"
)

type checkoutRequest struct {
	Items []models.CartLine `json:"items"`
}

// Checkout handles POST /api/checkout
func (s *Server) Checkout(w http.ResponseWriter, r *http.Request) {
	var req checkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	sale, err := s.checkout.Checkout(r.Context(), req.Items)
	if err != nil {
		s.respondServiceError(w, r, err)
		return
	}
	s.respondData(w, http.StatusCreated, sale)
}
