// Package sales contains the write-side repository for committed sales:
// sale headers and their line items. Rows are immutable once inserted.
package sales

import "context"

type Repository interface {
	// CreateSale inserts a sale header with the given total and returns its
	// generated id. The timestamp is assigned by the storage engine.
	CreateSale(ctx context.Context, totalPaid float64) (int64, error)

	// AddLineItem inserts one line item referencing the sale. Price is the
	// snapshot captured at sale time.
	AddLineItem(ctx context.Context, saleID, productID, quantity int64, price float64) error

	// GetSaleTime returns the server-assigned timestamp of the sale.
	GetSaleTime(ctx context.Context, saleID int64) (string, error)
}
