package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/tillbox/internal/dbx"
	"github.com/dmitrijs2005/tillbox/internal/server/repositories/products"
	"github.com/dmitrijs2005/tillbox/internal/server/repositories/reports"
	"github.com/dmitrijs2005/tillbox/internal/server/repositories/sales"
	"github.com/dmitrijs2005/tillbox/internal/server/repositories/settings"
	"github.com/dmitrijs2005/tillbox/internal/server/repositories/users"
)

// RepositoryManager vends repositories bound to a DBTX. Services pass the
// shared *sql.DB for single-statement work and a *sql.Tx when several
// statements must commit together (checkout).
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Products(db dbx.DBTX) products.Repository
	Sales(db dbx.DBTX) sales.Repository
	Reports(db dbx.DBTX) reports.Repository
	Settings(db dbx.DBTX) settings.Repository
	Users(db dbx.DBTX) users.Repository
}
