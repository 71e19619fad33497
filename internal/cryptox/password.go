// Package cryptox implements password hashing and verification for the
// administrative user. Hashes are Argon2id in PHC string format, e.g.
//
//	$argon2id$v=19$m=65536,t=1,p=4$<salt>$<hash>
//
// so stores created by earlier versions of the product remain readable.
package cryptox

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/tillbox/internal/shared"
	"golang.org/x/crypto/argon2"
)

const (
	argonTime    = 1
	argonMemory  = 64 * 1024
	argonThreads = 4
	argonKeyLen  = 32
	saltLen      = 16
)

var b64 = base64.RawStdEncoding

// HashPassword derives an Argon2id hash of password with a fresh random salt
// and returns it encoded as a PHC string.
func HashPassword(password string) (string, error) {
	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generating salt: %w", err)
	}

	key := argon2.IDKey([]byte(password), salt, argonTime, argonMemory, argonThreads, argonKeyLen)

	encoded := fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, argonMemory, argonTime, argonThreads,
		b64.EncodeToString(salt), b64.EncodeToString(key))

	return encoded, nil
}

// VerifyPassword re-derives the key from the candidate password using the
// parameters stored in the PHC string and compares in constant time.
// A malformed stored hash is reported as shared.ErrorValidation.
func VerifyPassword(password, encoded string) (bool, error) {
	salt, key, time, memory, threads, err := decodeHash(encoded)
	if err != nil {
		return false, err
	}

	candidate := argon2.IDKey([]byte(password), salt, time, memory, threads, uint32(len(key)))

	return subtle.ConstantTimeCompare(key, candidate) == 1, nil
}

func decodeHash(encoded string) (salt, key []byte, time, memory uint32, threads uint8, err error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return nil, nil, 0, 0, 0, fmt.Errorf("%w: unsupported hash format", shared.ErrorValidation)
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return nil, nil, 0, 0, 0, fmt.Errorf("%w: unsupported argon2 version", shared.ErrorValidation)
	}

	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &time, &threads); err != nil {
		return nil, nil, 0, 0, 0, fmt.Errorf("%w: malformed argon2 parameters", shared.ErrorValidation)
	}

	salt, err = b64.DecodeString(parts[4])
	if err != nil {
		return nil, nil, 0, 0, 0, fmt.Errorf("%w: malformed salt", shared.ErrorValidation)
	}

	key, err = b64.DecodeString(parts[5])
	if err != nil {
		return nil, nil, 0, 0, 0, fmt.Errorf("%w: malformed hash", shared.ErrorValidation)
	}

	return salt, key, time, memory, threads, nil
}
