package models

// CartLine is one client-submitted line of a cart: the product, the quantity,
// and the price the client saw. Name and price are snapshots; the committed
// sale keeps them even if the catalog changes later.
type CartLine struct {
	ProductID int64   `json:"id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int64   `json:"quantity"`
}

// SalesTransaction is one committed sale: the server-assigned id and
// timestamp, the total paid, and the cart lines it was built from.
type SalesTransaction struct {
	ID        int64      `json:"id"`
	Date      string     `json:"date"`
	TotalPaid float64    `json:"total_paid"`
	Items     []CartLine `json:"items"`
}

// TransactionSummary is a sale as shown in the transactions report: the
// line-item product names instead of full lines. A product deleted after the
// sale contributes no name.
type TransactionSummary struct {
	ID        int64    `json:"id"`
	Date      string   `json:"date"`
	TotalPaid float64  `json:"total_paid"`
	Items     []string `json:"items"`
}

// ProductPerformance aggregates a product's sales history: units sold and
// revenue over all committed line items (snapshot prices, never the live
// price), plus the current stock level.
type ProductPerformance struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	SalesCount int64   `json:"sales_count"`
	Revenue    float64 `json:"revenue"`
	Stock      int64   `json:"stock"`
}

// RevenueOverview sums total_paid over rolling local-time windows: today,
// the last 7 days and the last 30 days, current day inclusive.
type RevenueOverview struct {
	Daily   float64 `json:"daily"`
	Weekly  float64 `json:"weekly"`
	Monthly float64 `json:"monthly"`
}
