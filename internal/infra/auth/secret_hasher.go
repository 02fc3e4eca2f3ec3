// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/sha256"
	"encoding/base64"
	"errors"

	"goalazo/config"
	"goalazo/internal/domain/service"
)

// sha256SecretHasher peppers passwords by hashing them together with a
// process-wide secret. The sha256+base64 form is a storage compatibility
// surface: existing password hashes were produced from exactly this digest.
type sha256SecretHasher struct {
	secret string
}

// NewSecretHasher is the constructor for sha256SecretHasher.
func NewSecretHasher(cfg *config.Config) (service.SecretHasher, error) {
	if cfg.SecretKey.Pepper == "" {
		return nil, errors.New("password pepper secret must be provided")
	}

	return &sha256SecretHasher{secret: cfg.SecretKey.Pepper}, nil
}

// Pepper returns base64(sha256(password || secret)). Deterministic for a
// fixed secret, fixed-length for any input.
func (h *sha256SecretHasher) Pepper(password string) string {
	sum := sha256.Sum256([]byte(password + h.secret))

	return base64.StdEncoding.EncodeToString(sum[:])
}
