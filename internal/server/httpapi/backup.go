package httpapi

import (
	"encoding/json"
	"net/http"
)

// Backup handles POST /api/backup
func (s *Server) Backup(w http.ResponseWriter, r *http.Request) {
	path, err := s.backup.Backup(r.Context())
	if err != nil {
		s.respondServiceError(w, r, err)
		return
	}
	s.respondData(w, http.StatusCreated, map[string]string{"path": path})
}

// Restore handles POST /api/restore. The restore is staged only; it takes
// effect on next startup.
func (s *Server) Restore(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Path      string `json:"path"`
		ObjectKey string `json:"object_key"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := s.backup.RequestRestore(r.Context(), req.Path, req.ObjectKey); err != nil {
		s.respondServiceError(w, r, err)
		return
	}
	s.respondMessage(w, http.StatusOK, "restore staged; restart the server to apply it")
}
