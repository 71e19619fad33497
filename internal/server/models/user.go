package models

// User is the administrative account. Exactly one is seeded on first run.
// PasswordHash is an Argon2id PHC string; the plaintext never persists.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
}
