package services

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"testing"

	"github.com/dmitrijs2005/tillbox/internal/logging"
	"github.com/dmitrijs2005/tillbox/internal/server/models"
	"github.com/dmitrijs2005/tillbox/internal/server/repositories/repomanager"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

// setupStore opens an in-memory store with the full schema, pinned to a
// single connection like production.
func setupStore(t *testing.T) (*sql.DB, repomanager.RepositoryManager) {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE products (
  id    INTEGER PRIMARY KEY AUTOINCREMENT,
  name  TEXT NOT NULL,
  price REAL NOT NULL,
  stock INTEGER NOT NULL DEFAULT 0
);
CREATE TABLE sales (
  id         INTEGER PRIMARY KEY AUTOINCREMENT,
  sale_time  TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
  total_paid REAL NOT NULL
);
CREATE TABLE sale_items (
  id         INTEGER PRIMARY KEY AUTOINCREMENT,
  sale_id    INTEGER NOT NULL,
  product_id INTEGER NOT NULL,
  quantity   INTEGER NOT NULL,
  price      REAL NOT NULL
);
CREATE TABLE settings (
  key   TEXT PRIMARY KEY,
  value TEXT
);
CREATE TABLE users (
  id            INTEGER PRIMARY KEY AUTOINCREMENT,
  username      TEXT UNIQUE NOT NULL,
  password_hash TEXT NOT NULL
);`)
	require.NoError(t, err)

	return db, repomanager.NewSQLiteRepositoryManager()
}

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func addProduct(t *testing.T, db *sql.DB, m repomanager.RepositoryManager, name string, price float64, stock int64) *models.Product {
	t.Helper()
	p, err := m.Products(db).Create(context.Background(), &models.Product{Name: name, Price: price, Stock: stock})
	require.NoError(t, err)
	return p
}

func productStock(t *testing.T, db *sql.DB, id int64) int64 {
	t.Helper()
	var stock int64
	require.NoError(t, db.QueryRow(`SELECT stock FROM products WHERE id = ?`, id).Scan(&stock))
	return stock
}

func countTable(t *testing.T, db *sql.DB, table string) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM `+table).Scan(&n))
	return n
}
