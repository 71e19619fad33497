package sales

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/tillbox/internal/dbx"
	"github.com/dmitrijs2005/tillbox/internal/shared"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
// Checkout binds it to a transaction so the header and its items commit as one unit.
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) CreateSale(ctx context.Context, totalPaid float64) (int64, error) {
	res, err := r.db.ExecContext(ctx, `INSERT INTO sales (total_paid) VALUES (?)`, totalPaid)
	if err != nil {
		return 0, fmt.Errorf("failed to insert sale: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read generated sale id: %w", err)
	}

	return id, nil
}

func (r *SQLiteRepository) AddLineItem(ctx context.Context, saleID, productID, quantity int64, price float64) error {
	query := `INSERT INTO sale_items (sale_id, product_id, quantity, price) VALUES (?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query, saleID, productID, quantity, price)
	if err != nil {
		return fmt.Errorf("failed to insert sale item: %w", err)
	}

	return nil
}

func (r *SQLiteRepository) GetSaleTime(ctx context.Context, saleID int64) (string, error) {
	var saleTime string

	err := r.db.QueryRowContext(ctx, `SELECT sale_time FROM sales WHERE id = ?`, saleID).Scan(&saleTime)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", shared.ErrorNotFound
		}
		return "", fmt.Errorf("failed to select sale time: %w", err)
	}

	return saleTime, nil
}
