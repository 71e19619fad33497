package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/tillbox/internal/cryptox"
	"github.com/dmitrijs2005/tillbox/internal/server/auth"
	"github.com/dmitrijs2005/tillbox/internal/server/config"
	"github.com/dmitrijs2005/tillbox/internal/server/models"
	"github.com/dmitrijs2005/tillbox/internal/shared"
	"github.com/stretchr/testify/require"
)

func userServiceFixture(t *testing.T) (*UserService, *config.Config) {
	t.Helper()
	db, m := setupStore(t)

	hash, err := cryptox.HashPassword("admin")
	require.NoError(t, err)
	_, err = m.Users(db).Create(context.Background(), &models.User{Username: "admin", PasswordHash: hash})
	require.NoError(t, err)

	cfg := &config.Config{
		SecretKey:                    "testSecretKey",
		SessionTokenValidityDuration: time.Hour,
	}
	return NewUserService(db, m, cfg, testLogger()), cfg
}

func TestUserLogin_Success(t *testing.T) {
	svc, cfg := userServiceFixture(t)

	ok, token, err := svc.Login(context.Background(), "admin", "admin")
	require.NoError(t, err)
	require.True(t, ok)
	require.NotEmpty(t, token)

	username, err := auth.GetUsernameFromToken(token, []byte(cfg.SecretKey))
	require.NoError(t, err)
	require.Equal(t, "admin", username)
}

func TestUserLogin_WrongPassword(t *testing.T) {
	svc, _ := userServiceFixture(t)

	ok, token, err := svc.Login(context.Background(), "admin", "nope")
	require.NoError(t, err)
	require.False(t, ok)
	require.Empty(t, token)
}

func TestUserLogin_UnknownUser(t *testing.T) {
	svc, _ := userServiceFixture(t)

	ok, token, err := svc.Login(context.Background(), "ghost", "admin")
	require.NoError(t, err)
	require.False(t, ok)
	require.Empty(t, token)
}

func TestUserSetPassword(t *testing.T) {
	svc, _ := userServiceFixture(t)
	ctx := context.Background()

	require.NoError(t, svc.SetPassword(ctx, "admin", "s3cret!"))

	ok, _, err := svc.Login(ctx, "admin", "admin")
	require.NoError(t, err)
	require.False(t, ok)

	ok, token, err := svc.Login(ctx, "admin", "s3cret!")
	require.NoError(t, err)
	require.True(t, ok)
	require.NotEmpty(t, token)
}

func TestUserSetPassword_Empty(t *testing.T) {
	svc, _ := userServiceFixture(t)

	err := svc.SetPassword(context.Background(), "admin", "")
	require.Error(t, err)
	require.True(t, errors.Is(err, shared.ErrorValidation))
}

func TestUserSetPassword_UnknownUser(t *testing.T) {
	svc, _ := userServiceFixture(t)

	err := svc.SetPassword(context.Background(), "ghost", "s3cret!")
	require.Error(t, err)
	require.True(t, errors.Is(err, shared.ErrorNotFound))
}
