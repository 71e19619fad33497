package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/tillbox/internal/dbx"
	"github.com/dmitrijs2005/tillbox/internal/server/models"
	"github.com/dmitrijs2005/tillbox/internal/shared"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	query := `SELECT id, username, password_hash FROM users WHERE username = ?`

	user := &models.User{}
	err := r.db.QueryRowContext(ctx, query, username).Scan(&user.ID, &user.Username, &user.PasswordHash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, shared.ErrorNotFound
		}
		return nil, fmt.Errorf("failed to select user: %w", err)
	}

	return user, nil
}

func (r *SQLiteRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	query := `INSERT INTO users (username, password_hash) VALUES (?, ?)`

	res, err := r.db.ExecContext(ctx, query, user.Username, user.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("failed to insert user: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read generated id: %w", err)
	}

	user.ID = id
	return user, nil
}

func (r *SQLiteRepository) UpdatePasswordHash(ctx context.Context, username, passwordHash string) error {
	query := `UPDATE users SET password_hash = ? WHERE username = ?`

	res, err := r.db.ExecContext(ctx, query, passwordHash, username)
	if err != nil {
		return fmt.Errorf("failed to update password hash: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if n == 0 {
		return shared.ErrorNotFound
	}

	return nil
}

func (r *SQLiteRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return n, nil
}
