package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/tillbox/internal/dbx"
	"github.com/dmitrijs2005/tillbox/internal/logging"
	"github.com/dmitrijs2005/tillbox/internal/server/models"
	"github.com/dmitrijs2005/tillbox/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/tillbox/internal/shared"
)

// CheckoutService commits sales. The sale header, its line items and the
// stock decrements are applied inside one transaction: either the whole sale
// lands or the store is left exactly as before.
type CheckoutService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	logger      logging.Logger
}

func NewCheckoutService(db *sql.DB, m repomanager.RepositoryManager, logger logging.Logger) *CheckoutService {
	return &CheckoutService{
		db:          db,
		repomanager: m,
		logger:      logger.With("module", "checkout"),
	}
}

// Checkout validates the cart, computes the total from the submitted price
// snapshots and commits the sale atomically. Prices and names are trusted as
// submitted; product ids are verified to exist. Stock may go negative — the
// store accepts oversells.
func (s *CheckoutService) Checkout(ctx context.Context, lines []models.CartLine) (*models.SalesTransaction, error) {
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: %w", shared.ErrorValidation, shared.ErrorEmptyCart)
	}

	var totalPaid float64
	for _, line := range lines {
		if line.Quantity <= 0 {
			return nil, fmt.Errorf("%w: %w (product %d)", shared.ErrorValidation, shared.ErrorInvalidQuantity, line.ProductID)
		}
		totalPaid += line.Price * float64(line.Quantity)
	}

	var saleID int64

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		salesRepo := s.repomanager.Sales(tx)
		productsRepo := s.repomanager.Products(tx)

		id, err := salesRepo.CreateSale(ctx, totalPaid)
		if err != nil {
			return err
		}
		saleID = id

		for _, line := range lines {
			if err := salesRepo.AddLineItem(ctx, saleID, line.ProductID, line.Quantity, line.Price); err != nil {
				return err
			}
			if err := productsRepo.DecrementStock(ctx, line.ProductID, line.Quantity); err != nil {
				if errors.Is(err, shared.ErrorNotFound) {
					return fmt.Errorf("%w: product %d", shared.ErrorNotFound, line.ProductID)
				}
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	saleTime, err := s.repomanager.Sales(s.db).GetSaleTime(ctx, saleID)
	if err != nil {
		return nil, fmt.Errorf("error reading back sale time: %w", err)
	}

	s.logger.Info(ctx, "sale committed", "sale_id", saleID, "lines", len(lines), "total_paid", totalPaid)

	return &models.SalesTransaction{
		ID:        saleID,
		Date:      saleTime,
		TotalPaid: totalPaid,
		Items:     lines,
	}, nil
}
