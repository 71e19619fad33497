package httpapi

import (
	"encoding/json"
	"net/http"
)

// Login handles POST /api/auth/login
func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ok, token, err := s.users.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		s.respondServiceError(w, r, err)
		return
	}
	if !ok {
		s.respondError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	s.respondData(w, http.StatusOK, map[string]string{"token": token})
}

// SetPassword handles POST /api/auth/password. The credential being changed
// is the one behind the presented session token.
func (s *Server) SetPassword(w http.ResponseWriter, r *http.Request) {
	username, ok := r.Context().Value(usernameKey).(string)
	if !ok {
		s.respondError(w, http.StatusUnauthorized, "User not found in context")
		return
	}

	var req struct {
		NewPassword string `json:"new_password"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := s.users.SetPassword(r.Context(), username, req.NewPassword); err != nil {
		s.respondServiceError(w, r, err)
		return
	}
	s.respondMessage(w, http.StatusOK, "password updated")
}
