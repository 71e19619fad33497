// Package users contains the repository for the administrative account.
package users

import (
	"context"

	"github.com/dmitrijs2005/tillbox/internal/server/models"
)

type Repository interface {
	// GetByUsername returns the user, or shared.ErrorNotFound.
	GetByUsername(ctx context.Context, username string) (*models.User, error)

	// Create inserts a user and fills in its generated id.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// UpdatePasswordHash replaces the stored credential hash.
	// Returns shared.ErrorNotFound if no row matches the username.
	UpdatePasswordHash(ctx context.Context, username, passwordHash string) error

	// Count returns the number of users; used to decide whether the default
	// administrator needs seeding.
	Count(ctx context.Context) (int64, error)
}
