// Package products contains the catalog repository: CRUD over products and
// the stock decrement applied during checkout.
package products

import (
	"context"

	"github.com/dmitrijs2005/tillbox/internal/server/models"
)

type Repository interface {
	// List returns all products in storage order (not guaranteed sorted).
	List(ctx context.Context) ([]models.Product, error)

	// Create inserts the product and fills in its generated id.
	Create(ctx context.Context, p *models.Product) (*models.Product, error)

	// Update rewrites name, price and stock of an existing product.
	// Returns shared.ErrorNotFound if no row matches the id.
	Update(ctx context.Context, p *models.Product) error

	// Delete removes the product. Returns shared.ErrorNotFound if no row
	// matches the id. Historical sale items referencing it are kept.
	Delete(ctx context.Context, id int64) error

	// DecrementStock subtracts quantity from the product's stock level.
	// Returns shared.ErrorNotFound if no row matches the id.
	DecrementStock(ctx context.Context, id int64, quantity int64) error
}
