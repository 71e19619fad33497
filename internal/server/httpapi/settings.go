package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/dmitrijs2005/tillbox/internal/server/models"
)

// GetSettings handles GET /api/settings
func (s *Server) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := s.settings.Load(r.Context())
	if err != nil {
		s.respondServiceError(w, r, err)
		return
	}
	s.respondData(w, http.StatusOK, settings)
}

// SaveSettings handles PUT /api/settings
func (s *Server) SaveSettings(w http.ResponseWriter, r *http.Request) {
	var settings models.StoreSettings
	if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
		s.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := s.settings.Save(r.Context(), &settings); err != nil {
		s.respondServiceError(w, r, err)
		return
	}
	s.respondMessage(w, http.StatusOK, "settings saved")
}

// ListPrinters handles GET /api/printers
func (s *Server) ListPrinters(w http.ResponseWriter, r *http.Request) {
	s.respondData(w, http.StatusOK, s.settings.FindPrinters(r.Context()))
}

// TestPrint handles POST /api/printers/test
func (s *Server) TestPrint(w http.ResponseWriter, r *http.Request) {
	if err := s.settings.TestPrint(r.Context()); err != nil {
		s.respondServiceError(w, r, err)
		return
	}
	s.respondMessage(w, http.StatusOK, "test page sent to printer")
}
