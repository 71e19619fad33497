package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/tillbox/internal/shared"
)

// Response is the envelope every endpoint answers with.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func (s *Server) respondData(w http.ResponseWriter, status int, data interface{}) {
	s.respondJSON(w, status, Response{Success: true, Data: data})
}

func (s *Server) respondMessage(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, Response{Success: true, Message: message})
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, Response{Success: false, Error: message})
}

// respondServiceError maps service errors onto HTTP statuses. Internal
// details never reach the client on a 500.
func (s *Server) respondServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, shared.ErrorNotFound):
		s.respondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, shared.ErrorValidation):
		s.respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, shared.ErrorUnauthorized), errors.Is(err, shared.ErrorInvalidToken):
		s.respondError(w, http.StatusUnauthorized, err.Error())
	default:
		s.logger.Error(r.Context(), err.Error())
		s.respondError(w, http.StatusInternalServerError, "internal error")
	}
}
