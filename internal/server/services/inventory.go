// Package services contains the application services sitting between the
// HTTP command surface and the repositories.
package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/tillbox/internal/server/models"
	"github.com/dmitrijs2005/tillbox/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/tillbox/internal/shared"
)

// InventoryService implements catalog management: list, add, edit and delete
// products.
type InventoryService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewInventoryService(db *sql.DB, m repomanager.RepositoryManager) *InventoryService {
	return &InventoryService{db: db, repomanager: m}
}

func (s *InventoryService) List(ctx context.Context) ([]models.Product, error) {
	items, err := s.repomanager.Products(s.db).List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing products: %w", err)
	}
	if items == nil {
		items = []models.Product{}
	}
	return items, nil
}

func (s *InventoryService) Add(ctx context.Context, name string, price float64, stock int64) (*models.Product, error) {
	if err := validateProduct(name, price, stock); err != nil {
		return nil, err
	}

	product, err := s.repomanager.Products(s.db).Create(ctx, &models.Product{
		Name:  strings.TrimSpace(name),
		Price: price,
		Stock: stock,
	})
	if err != nil {
		return nil, fmt.Errorf("error creating product: %w", err)
	}

	return product, nil
}

func (s *InventoryService) Update(ctx context.Context, id int64, name string, price float64, stock int64) (*models.Product, error) {
	if err := validateProduct(name, price, stock); err != nil {
		return nil, err
	}

	product := &models.Product{ID: id, Name: strings.TrimSpace(name), Price: price, Stock: stock}

	if err := s.repomanager.Products(s.db).Update(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

func (s *InventoryService) Delete(ctx context.Context, id int64) error {
	return s.repomanager.Products(s.db).Delete(ctx, id)
}

func validateProduct(name string, price float64, stock int64) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: product name is required", shared.ErrorValidation)
	}
	if price < 0 {
		return fmt.Errorf("%w: price must not be negative", shared.ErrorValidation)
	}
	if stock < 0 {
		return fmt.Errorf("%w: stock must not be negative", shared.ErrorValidation)
	}
	return nil
}
