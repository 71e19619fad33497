package products

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/dmitrijs2005/tillbox/internal/server/models"
	"github.com/dmitrijs2005/tillbox/internal/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE products (
  id    INTEGER PRIMARY KEY AUTOINCREMENT,
  name  TEXT NOT NULL,
  price REAL NOT NULL,
  stock INTEGER NOT NULL DEFAULT 0
);`)
	require.NoError(t, err)
	return db
}

func TestCreate_AssignsID(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	p, err := r.Create(ctx, &models.Product{Name: "Coffee", Price: 3.5, Stock: 10})
	require.NoError(t, err)
	require.NotZero(t, p.ID)

	p2, err := r.Create(ctx, &models.Product{Name: "Tea", Price: 2.0, Stock: 4})
	require.NoError(t, err)
	require.Greater(t, p2.ID, p.ID)
}

func TestList_ReturnsAllProducts(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	_, err := r.Create(ctx, &models.Product{Name: "Coffee", Price: 3.5, Stock: 10})
	require.NoError(t, err)
	_, err = r.Create(ctx, &models.Product{Name: "Tea", Price: 2.0, Stock: 4})
	require.NoError(t, err)

	items, err := r.List(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Equal(t, "Coffee", items[0].Name)
	assert.Equal(t, 3.5, items[0].Price)
}

func TestList_EmptyTable(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)

	items, err := r.List(context.Background())
	require.NoError(t, err)
	require.Empty(t, items)
}

func TestUpdate_RewritesAllFields(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	p, err := r.Create(ctx, &models.Product{Name: "Coffee", Price: 3.5, Stock: 10})
	require.NoError(t, err)

	p.Name = "Espresso"
	p.Price = 4.0
	p.Stock = 7
	require.NoError(t, r.Update(ctx, p))

	items, err := r.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, models.Product{ID: p.ID, Name: "Espresso", Price: 4.0, Stock: 7}, items[0])
}

func TestUpdate_MissingID_ReturnsNotFound(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)

	err := r.Update(context.Background(), &models.Product{ID: 42, Name: "x", Price: 1, Stock: 1})
	require.Error(t, err)
	require.True(t, errors.Is(err, shared.ErrorNotFound))
}

func TestDelete_RemovesRow(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	p, err := r.Create(ctx, &models.Product{Name: "Coffee", Price: 3.5, Stock: 10})
	require.NoError(t, err)

	require.NoError(t, r.Delete(ctx, p.ID))

	items, err := r.List(ctx)
	require.NoError(t, err)
	require.Empty(t, items)
}

func TestDelete_MissingID_ReturnsNotFound(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)

	err := r.Delete(context.Background(), 42)
	require.True(t, errors.Is(err, shared.ErrorNotFound))
}

func TestDecrementStock(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	p, err := r.Create(ctx, &models.Product{Name: "Coffee", Price: 3.5, Stock: 10})
	require.NoError(t, err)
	other, err := r.Create(ctx, &models.Product{Name: "Tea", Price: 2.0, Stock: 4})
	require.NoError(t, err)

	require.NoError(t, r.DecrementStock(ctx, p.ID, 2))

	items, err := r.List(ctx)
	require.NoError(t, err)
	for _, item := range items {
		switch item.ID {
		case p.ID:
			assert.EqualValues(t, 8, item.Stock)
		case other.ID:
			assert.EqualValues(t, 4, item.Stock, "other products must not change")
		}
	}
}

func TestDecrementStock_MissingID_ReturnsNotFound(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)

	err := r.DecrementStock(context.Background(), 99, 1)
	require.True(t, errors.Is(err, shared.ErrorNotFound))
}
