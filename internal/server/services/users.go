package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/tillbox/internal/cryptox"
	"github.com/dmitrijs2005/tillbox/internal/logging"
	"github.com/dmitrijs2005/tillbox/internal/server/auth"
	"github.com/dmitrijs2005/tillbox/internal/server/config"
	"github.com/dmitrijs2005/tillbox/internal/server/db"
	"github.com/dmitrijs2005/tillbox/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/tillbox/internal/shared"
)

// UserService authenticates the administrative user and manages its
// credential. Login deliberately reports only yes/no: an unknown username
// and a wrong password are indistinguishable to the caller.
type UserService struct {
	db                           *sql.DB
	repomanager                  repomanager.RepositoryManager
	logger                       logging.Logger
	jwtSecret                    []byte
	sessionTokenValidityDuration time.Duration
}

func NewUserService(database *sql.DB, m repomanager.RepositoryManager, cfg *config.Config, logger logging.Logger) *UserService {
	return &UserService{
		db:                           database,
		repomanager:                  m,
		logger:                       logger.With("module", "users"),
		jwtSecret:                    []byte(cfg.SecretKey),
		sessionTokenValidityDuration: cfg.SessionTokenValidityDuration,
	}
}

// Login verifies the credential. On success it returns true and a session
// token for the HTTP surface; on any mismatch it returns false with an empty
// token and a nil error.
func (s *UserService) Login(ctx context.Context, username, password string) (bool, string, error) {
	user, err := s.repomanager.Users(s.db).GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, shared.ErrorNotFound) {
			return false, "", nil
		}
		return false, "", fmt.Errorf("error loading user: %w", err)
	}

	ok, err := cryptox.VerifyPassword(password, user.PasswordHash)
	if err != nil {
		return false, "", err
	}
	if !ok {
		return false, "", nil
	}

	if username == db.DefaultAdminUsername && password == "admin" {
		s.logger.Warn(ctx, "login with the default seed credential; change the password", "username", username)
	}

	token, err := auth.GenerateToken(user.Username, s.jwtSecret, s.sessionTokenValidityDuration)
	if err != nil {
		return false, "", fmt.Errorf("error generating session token: %w", err)
	}

	return true, token, nil
}

// SetPassword re-hashes the credential with a fresh salt.
func (s *UserService) SetPassword(ctx context.Context, username, newPassword string) error {
	if newPassword == "" {
		return fmt.Errorf("%w: password is required", shared.ErrorValidation)
	}

	hash, err := cryptox.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}

	return s.repomanager.Users(s.db).UpdatePasswordHash(ctx, username, hash)
}
