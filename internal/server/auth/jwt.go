// Package auth issues and verifies the session tokens handed out on login.
package auth

import (
	"time"

	"github.com/dmitrijs2005/tillbox/internal/shared"
	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the standard registered claims plus the authenticated
// username.
type Claims struct {
	jwt.RegisteredClaims
	Username string
}

// GenerateToken signs an HS256 session token for the given username.
func GenerateToken(username string, secretKey []byte, validityDuration time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validityDuration)),
		},
		Username: username,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// GetUsernameFromToken verifies the token signature and expiry and returns
// the embedded username.
func GetUsernameFromToken(tokenString string, secretKey []byte) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	})
	if err != nil {
		return "", err
	}

	if !token.Valid {
		return "", shared.ErrorInvalidToken
	}

	return claims.Username, nil
}
