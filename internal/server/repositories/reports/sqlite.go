package reports

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/tillbox/internal/dbx"
	"github.com/dmitrijs2005/tillbox/internal/server/models"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) ListTransactions(ctx context.Context) ([]models.TransactionSummary, error) {
	query := `SELECT id, sale_time, total_paid FROM sales ORDER BY sale_time DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select sales: %w", err)
	}
	defer rows.Close()

	var result []models.TransactionSummary
	for rows.Next() {
		var tx models.TransactionSummary
		if err := rows.Scan(&tx.ID, &tx.Date, &tx.TotalPaid); err != nil {
			return nil, err
		}
		tx.Items = []string{}
		result = append(result, tx)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	names, err := r.itemNamesBySale(ctx)
	if err != nil {
		return nil, err
	}
	for i := range result {
		if items, ok := names[result[i].ID]; ok {
			result[i].Items = items
		}
	}

	return result, nil
}

// itemNamesBySale joins line items to the current catalog; items whose
// product was deleted since the sale are dropped.
func (r *SQLiteRepository) itemNamesBySale(ctx context.Context) (map[int64][]string, error) {
	query := `
		SELECT si.sale_id, p.name
		FROM sale_items si
		JOIN products p ON si.product_id = p.id
		ORDER BY si.sale_id, si.id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select sale items: %w", err)
	}
	defer rows.Close()

	names := make(map[int64][]string)
	for rows.Next() {
		var saleID int64
		var name string
		if err := rows.Scan(&saleID, &name); err != nil {
			return nil, err
		}
		names[saleID] = append(names[saleID], name)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return names, nil
}

func (r *SQLiteRepository) ProductPerformance(ctx context.Context) ([]models.ProductPerformance, error) {
	query := `
		SELECT p.id, p.name,
			COALESCE(SUM(si.quantity), 0) AS sales_count,
			COALESCE(SUM(si.quantity * si.price), 0) AS revenue,
			p.stock
		FROM products p
		LEFT JOIN sale_items si ON si.product_id = p.id
		GROUP BY p.id`

	return r.selectPerformance(ctx, query)
}

func (r *SQLiteRepository) LowStock(ctx context.Context, threshold int64) ([]models.ProductPerformance, error) {
	query := `
		SELECT p.id, p.name,
			COALESCE(SUM(si.quantity), 0) AS sales_count,
			COALESCE(SUM(si.quantity * si.price), 0) AS revenue,
			p.stock
		FROM products p
		LEFT JOIN sale_items si ON si.product_id = p.id
		WHERE p.stock < ?
		GROUP BY p.id`

	return r.selectPerformance(ctx, query, threshold)
}

func (r *SQLiteRepository) selectPerformance(ctx context.Context, query string, args ...any) ([]models.ProductPerformance, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select product performance: %w", err)
	}
	defer rows.Close()

	var result []models.ProductPerformance
	for rows.Next() {
		var item models.ProductPerformance
		if err := rows.Scan(&item.ID, &item.Name, &item.SalesCount, &item.Revenue, &item.Stock); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

func (r *SQLiteRepository) RevenueOverview(ctx context.Context) (*models.RevenueOverview, error) {
	// sale_time is stored in UTC (CURRENT_TIMESTAMP); the 'localtime'
	// modifier moves both sides of the comparison into the store's zone.
	windows := []struct {
		dest  *float64
		query string
	}{
		{query: `SELECT COALESCE(SUM(total_paid),0) FROM sales WHERE date(sale_time,'localtime') = date('now','localtime')`},
		{query: `SELECT COALESCE(SUM(total_paid),0) FROM sales WHERE date(sale_time,'localtime') >= date('now','localtime','-6 days')`},
		{query: `SELECT COALESCE(SUM(total_paid),0) FROM sales WHERE date(sale_time,'localtime') >= date('now','localtime','-29 days')`},
	}

	overview := &models.RevenueOverview{}
	windows[0].dest = &overview.Daily
	windows[1].dest = &overview.Weekly
	windows[2].dest = &overview.Monthly

	for _, w := range windows {
		if err := r.db.QueryRowContext(ctx, w.query).Scan(w.dest); err != nil {
			return nil, fmt.Errorf("failed to sum revenue: %w", err)
		}
	}

	return overview, nil
}
