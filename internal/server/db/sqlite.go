// Package db owns the lifecycle of the store's data file: applying a staged
// restore, opening the SQLite database, running migrations and seeding the
// default administrator.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/dmitrijs2005/tillbox/internal/cryptox"
	"github.com/dmitrijs2005/tillbox/internal/logging"
	"github.com/dmitrijs2005/tillbox/internal/server/models"
	"github.com/dmitrijs2005/tillbox/internal/server/repositories/repomanager"
	_ "modernc.org/sqlite"
)

const (
	// DefaultAdminUsername is the account seeded on first run.
	DefaultAdminUsername = "admin"

	// defaultAdminPassword is a first-run bootstrap credential only.
	// Its presence is logged loudly; operators are expected to change it.
	defaultAdminPassword = "admin"
)

// RestorePath returns the staging path where a restored data file waits for
// the next startup.
func RestorePath(dataFile string) string {
	return dataFile + ".restore"
}

// Open prepares the store: swaps in a staged restore file if one exists,
// opens the data file, pins the pool to a single connection so every logical
// operation owns the session for its duration, runs migrations, and seeds the
// administrator when the users table is empty.
func Open(ctx context.Context, dataFile string, m repomanager.RepositoryManager, logger logging.Logger) (*sql.DB, error) {
	if err := applyStagedRestore(ctx, dataFile, logger); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", dataFile)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	// One writer at a time: the whole store serializes on this connection.
	db.SetMaxOpenConns(1)

	if err := m.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration error: %w", err)
	}

	if err := seedAdmin(ctx, db, m, logger); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("seed error: %w", err)
	}

	return db, nil
}

func applyStagedRestore(ctx context.Context, dataFile string, logger logging.Logger) error {
	staged := RestorePath(dataFile)

	if _, err := os.Stat(staged); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("checking staged restore: %w", err)
	}

	if err := os.Rename(staged, dataFile); err != nil {
		return fmt.Errorf("applying staged restore: %w", err)
	}

	logger.Warn(ctx, "applied staged restore file", "data_file", dataFile)
	return nil
}

func seedAdmin(ctx context.Context, db *sql.DB, m repomanager.RepositoryManager, logger logging.Logger) error {
	repo := m.Users(db)

	n, err := repo.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	hash, err := cryptox.HashPassword(defaultAdminPassword)
	if err != nil {
		return err
	}

	if _, err := repo.Create(ctx, &models.User{Username: DefaultAdminUsername, PasswordHash: hash}); err != nil {
		return err
	}

	logger.Warn(ctx, "seeded default administrator with the well-known credential; change the password immediately",
		"username", DefaultAdminUsername)

	return nil
}
