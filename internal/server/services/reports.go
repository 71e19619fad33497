package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/tillbox/internal/server/models"
	"github.com/dmitrijs2005/tillbox/internal/server/repositories/repomanager"
)

// ReportsService answers the read-only aggregation queries over committed
// sales. Revenue figures come from line-item price snapshots, so later
// catalog edits never change historical numbers.
type ReportsService struct {
	db                *sql.DB
	repomanager       repomanager.RepositoryManager
	lowStockThreshold int64
}

func NewReportsService(db *sql.DB, m repomanager.RepositoryManager, lowStockThreshold int64) *ReportsService {
	return &ReportsService{db: db, repomanager: m, lowStockThreshold: lowStockThreshold}
}

func (s *ReportsService) Transactions(ctx context.Context) ([]models.TransactionSummary, error) {
	result, err := s.repomanager.Reports(s.db).ListTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing transactions: %w", err)
	}
	if result == nil {
		result = []models.TransactionSummary{}
	}
	return result, nil
}

func (s *ReportsService) ProductPerformance(ctx context.Context) ([]models.ProductPerformance, error) {
	result, err := s.repomanager.Reports(s.db).ProductPerformance(ctx)
	if err != nil {
		return nil, fmt.Errorf("error aggregating product performance: %w", err)
	}
	if result == nil {
		result = []models.ProductPerformance{}
	}
	return result, nil
}

func (s *ReportsService) LowStock(ctx context.Context) ([]models.ProductPerformance, error) {
	result, err := s.repomanager.Reports(s.db).LowStock(ctx, s.lowStockThreshold)
	if err != nil {
		return nil, fmt.Errorf("error listing low stock products: %w", err)
	}
	if result == nil {
		result = []models.ProductPerformance{}
	}
	return result, nil
}

func (s *ReportsService) RevenueOverview(ctx context.Context) (*models.RevenueOverview, error) {
	overview, err := s.repomanager.Reports(s.db).RevenueOverview(ctx)
	if err != nil {
		return nil, fmt.Errorf("error computing revenue overview: %w", err)
	}
	return overview, nil
}
