package httpapi

import "net/http"

// Transactions handles GET /api/reports/transactions
func (s *Server) Transactions(w http.ResponseWriter, r *http.Request) {
	list, err := s.reports.Transactions(r.Context())
	if err != nil {
		s.respondServiceError(w, r, err)
		return
	}
	s.respondData(w, http.StatusOK, list)
}

// ProductPerformance handles GET /api/reports/performance
func (s *Server) ProductPerformance(w http.ResponseWriter, r *http.Request) {
	items, err := s.reports.ProductPerformance(r.Context())
	if err != nil {
		s.respondServiceError(w, r, err)
		return
	}
	s.respondData(w, http.StatusOK, items)
}

// LowStock handles GET /api/reports/low-stock
func (s *Server) LowStock(w http.ResponseWriter, r *http.Request) {
	items, err := s.reports.LowStock(r.Context())
	if err != nil {
		s.respondServiceError(w, r, err)
		return
	}
	s.respondData(w, http.StatusOK, items)
}

// RevenueOverview handles GET /api/reports/revenue
func (s *Server) RevenueOverview(w http.ResponseWriter, r *http.Request) {
	overview, err := s.reports.RevenueOverview(r.Context())
	if err != nil {
		s.respondServiceError(w, r, err)
		return
	}
	s.respondData(w, http.StatusOK, overview)
}
