package auth

import (
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"

	"goalazo/config"
	"goalazo/internal/domain/service"
)

// bcryptHasher is a concrete implementation of the PasswordHasher interface
// using bcrypt over a peppered digest.
type bcryptHasher struct {
	secretHasher service.SecretHasher
	cost         int
}

// NewBcryptHasher is the constructor for bcryptHasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewBcryptHasher(secretHasher service.SecretHasher, cfg *config.Config) service.PasswordHasher {
	cost := bcrypt.DefaultCost
	if cfg != nil && cfg.Auth != nil && cfg.Auth.BcryptCost > 0 {
		cost = cfg.Auth.BcryptCost
	}

	return &bcryptHasher{secretHasher: secretHasher, cost: cost}
}

// NewBcryptHasherWithCost builds a hasher with an explicit cost factor.
func NewBcryptHasherWithCost(secretHasher service.SecretHasher, cost int) service.PasswordHasher {
	return &bcryptHasher{secretHasher: secretHasher, cost: cost}
}

// Hash peppers the password and generates a salted bcrypt hash from the
// digest. bcrypt draws a fresh random salt per call, so identical passwords
// never produce identical hashes.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(h.secretHasher.Pepper(password)), h.cost)
	if err != nil {
		return "", errors.Wrap(err, "bcrypt hash failed")
	}

	return string(bytes), nil
}

// Check compares a plaintext password with a stored hash. A mismatch is not
// an error; only a failure of the bcrypt primitive itself is.
func (h *bcryptHasher) Check(password, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(h.secretHasher.Pepper(password)))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}

	return false, errors.Wrap(err, "bcrypt compare failed")
}
