// Package models contains the persisted and wire-level types of the store.
package models

// Product is one catalog item with its current price and stock level.
type Product struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Stock int64   `json:"stock"`
}
