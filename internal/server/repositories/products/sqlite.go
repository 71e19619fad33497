package products

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/tillbox/internal/dbx"
	"github.com/dmitrijs2005/tillbox/internal/server/models"
	"github.com/dmitrijs2005/tillbox/internal/shared"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) List(ctx context.Context) ([]models.Product, error) {
	query := `SELECT id, name, price, stock FROM products`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select products: %w", err)
	}
	defer rows.Close()

	var result []models.Product
	for rows.Next() {
		var item models.Product
		if err := rows.Scan(&item.ID, &item.Name, &item.Price, &item.Stock); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

func (r *SQLiteRepository) Create(ctx context.Context, p *models.Product) (*models.Product, error) {
	query := `INSERT INTO products (name, price, stock) VALUES (?, ?, ?)`

	res, err := r.db.ExecContext(ctx, query, p.Name, p.Price, p.Stock)
	if err != nil {
		return nil, fmt.Errorf("failed to insert product: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read generated id: %w", err)
	}

	p.ID = id
	return p, nil
}

func (r *SQLiteRepository) Update(ctx context.Context, p *models.Product) error {
	query := `UPDATE products SET name = ?, price = ?, stock = ? WHERE id = ?`

	res, err := r.db.ExecContext(ctx, query, p.Name, p.Price, p.Stock, p.ID)
	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}

	return requireRowAffected(res)
}

func (r *SQLiteRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	return requireRowAffected(res)
}

func (r *SQLiteRepository) DecrementStock(ctx context.Context, id int64, quantity int64) error {
	query := `UPDATE products SET stock = stock - ? WHERE id = ?`

	res, err := r.db.ExecContext(ctx, query, quantity, id)
	if err != nil {
		return fmt.Errorf("failed to decrement stock: %w", err)
	}

	return requireRowAffected(res)
}

// requireRowAffected maps zero-rows-affected to shared.ErrorNotFound, the
// contract for updates and deletes against a missing id.
func requireRowAffected(res interface{ RowsAffected() (int64, error) }) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if n == 0 {
		return shared.ErrorNotFound
	}
	return nil
}
