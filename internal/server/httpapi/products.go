package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

type productRequest struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Stock int64   `json:"stock"`
}

// ListProducts handles GET /api/products
func (s *Server) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := s.inventory.List(r.Context())
	if err != nil {
		s.respondServiceError(w, r, err)
		return
	}
	s.respondData(w, http.StatusOK, products)
}

// AddProduct handles POST /api/products
func (s *Server) AddProduct(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	product, err := s.inventory.Add(r.Context(), req.Name, req.Price, req.Stock)
	if err != nil {
		s.respondServiceError(w, r, err)
		return
	}
	s.respondData(w, http.StatusCreated, product)
}

// UpdateProduct handles PUT /api/products/{id}
func (s *Server) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	var req productRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	product, err := s.inventory.Update(r.Context(), id, req.Name, req.Price, req.Stock)
	if err != nil {
		s.respondServiceError(w, r, err)
		return
	}
	s.respondData(w, http.StatusOK, product)
}

// DeleteProduct handles DELETE /api/products/{id}
func (s *Server) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	if err := s.inventory.Delete(r.Context(), id); err != nil {
		s.respondServiceError(w, r, err)
		return
	}
	s.respondMessage(w, http.StatusOK, "product deleted")
}
