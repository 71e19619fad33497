// Package httpapi exposes the store's operations over HTTP/JSON for the
// front-of-house UI: inventory, checkout, reports, settings, authentication
// and backups.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dmitrijs2005/tillbox/internal/logging"
	"github.com/dmitrijs2005/tillbox/internal/server/services"
)

type Server struct {
	address   string
	logger    logging.Logger
	inventory *services.InventoryService
	checkout  *services.CheckoutService
	reports   *services.ReportsService
	settings  *services.SettingsService
	users     *services.UserService
	backup    *services.BackupService
	jwtSecret []byte
}

func NewServer(
	address string,
	logger logging.Logger,
	inventory *services.InventoryService,
	checkout *services.CheckoutService,
	reports *services.ReportsService,
	settings *services.SettingsService,
	users *services.UserService,
	backup *services.BackupService,
	secretKey string,
) *Server {
	return &Server{
		address:   address,
		logger:    logger.With("module", "http_server"),
		inventory: inventory,
		checkout:  checkout,
		reports:   reports,
		settings:  settings,
		users:     users,
		backup:    backup,
		jwtSecret: []byte(secretKey),
	}
}

// Routes builds the router. Everything under /api requires a session token,
// except the login endpoint which issues one.
func (s *Server) Routes() *mux.Router {
	r := mux.NewRouter()

	r.Use(s.requestIDMiddleware, s.loggingMiddleware, s.metricsMiddleware)

	r.HandleFunc("/health", s.HealthCheck).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	// public: issues the session token the rest of the API requires
	r.HandleFunc("/api/auth/login", s.Login).Methods("POST")

	r.HandleFunc("/api/products", s.auth(s.ListProducts)).Methods("GET")
	r.HandleFunc("/api/products", s.auth(s.AddProduct)).Methods("POST")
	r.HandleFunc("/api/products/{id}", s.auth(s.UpdateProduct)).Methods("PUT")
	r.HandleFunc("/api/products/{id}", s.auth(s.DeleteProduct)).Methods("DELETE")

	r.HandleFunc("/api/checkout", s.auth(s.Checkout)).Methods("POST")

	r.HandleFunc("/api/reports/transactions", s.auth(s.Transactions)).Methods("GET")
	r.HandleFunc("/api/reports/performance", s.auth(s.ProductPerformance)).Methods("GET")
	r.HandleFunc("/api/reports/low-stock", s.auth(s.LowStock)).Methods("GET")
	r.HandleFunc("/api/reports/revenue", s.auth(s.RevenueOverview)).Methods("GET")

	r.HandleFunc("/api/settings", s.auth(s.GetSettings)).Methods("GET")
	r.HandleFunc("/api/settings", s.auth(s.SaveSettings)).Methods("PUT")

	r.HandleFunc("/api/auth/password", s.auth(s.SetPassword)).Methods("POST")

	r.HandleFunc("/api/backup", s.auth(s.Backup)).Methods("POST")
	r.HandleFunc("/api/restore", s.auth(s.Restore)).Methods("POST")

	r.HandleFunc("/api/printers", s.auth(s.ListPrinters)).Methods("GET")
	r.HandleFunc("/api/printers/test", s.auth(s.TestPrint)).Methods("POST")

	return r
}

// Run serves until the context is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.address,
		Handler:      s.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

// HealthCheck handles GET /health
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}
