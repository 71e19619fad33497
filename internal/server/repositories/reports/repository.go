// Package reports contains the read-only aggregation queries over sales,
// sale items and products. Nothing here mutates the store.
package reports

import (
	"context"

	"github.com/dmitrijs2005/tillbox/internal/server/models"
)

type Repository interface {
	// ListTransactions returns all sales newest-first, each with the names
	// of the products sold in it. A deleted product contributes no name.
	ListTransactions(ctx context.Context) ([]models.TransactionSummary, error)

	// ProductPerformance returns units sold, revenue and current stock per
	// product. Products with no sales appear with zeros.
	ProductPerformance(ctx context.Context) ([]models.ProductPerformance, error)

	// LowStock is ProductPerformance filtered to products whose stock is
	// below the given threshold.
	LowStock(ctx context.Context, threshold int64) ([]models.ProductPerformance, error)

	// RevenueOverview sums total_paid over the local-time day/week/month
	// windows, each independently zero when no sales match.
	RevenueOverview(ctx context.Context) (*models.RevenueOverview, error)
}
