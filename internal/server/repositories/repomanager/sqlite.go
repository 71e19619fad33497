// Package repomanager provides a concrete RepositoryManager for SQLite,
// wiring together repository constructors and database migrations (via goose).
package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/tillbox/internal/dbx"
	"github.com/dmitrijs2005/tillbox/internal/server/migrations"
	"github.com/dmitrijs2005/tillbox/internal/server/repositories/products"
	"github.com/dmitrijs2005/tillbox/internal/server/repositories/reports"
	"github.com/dmitrijs2005/tillbox/internal/server/repositories/sales"
	"github.com/dmitrijs2005/tillbox/internal/server/repositories/settings"
	"github.com/dmitrijs2005/tillbox/internal/server/repositories/users"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

// SQLiteRepositoryManager vends SQLite-backed repository implementations
// and exposes a schema migration hook.
type SQLiteRepositoryManager struct{}

// NewSQLiteRepositoryManager constructs a SQLite-backed RepositoryManager.
func NewSQLiteRepositoryManager() *SQLiteRepositoryManager {
	return &SQLiteRepositoryManager{}
}

// Products returns a products.Repository bound to the provided DBTX.
func (m *SQLiteRepositoryManager) Products(db dbx.DBTX) products.Repository {
	return products.NewSQLiteRepository(db)
}

// Sales returns a sales.Repository bound to the provided DBTX.
func (m *SQLiteRepositoryManager) Sales(db dbx.DBTX) sales.Repository {
	return sales.NewSQLiteRepository(db)
}

// Reports returns a reports.Repository bound to the provided DBTX.
func (m *SQLiteRepositoryManager) Reports(db dbx.DBTX) reports.Repository {
	return reports.NewSQLiteRepository(db)
}

// Settings returns a settings.Repository bound to the provided DBTX.
func (m *SQLiteRepositoryManager) Settings(db dbx.DBTX) settings.Repository {
	return settings.NewSQLiteRepository(db)
}

// Users returns a users.Repository bound to the provided DBTX.
func (m *SQLiteRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewSQLiteRepository(db)
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations sets up goose with the embedded migrations and runs them
// against the provided database connection. Safe to run on every startup.
func (m *SQLiteRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}
	if err := gooseUpContext(ctx, db, "."); err != nil {
		return err
	}
	return nil
}
