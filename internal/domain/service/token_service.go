package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"goalazo/internal/domain/entity"
)

// TokenClaims is the claims set embedded in an access token: the
// AuthenticatedUser projection minus the token itself.
type TokenClaims struct {
	UserID           int64     `json:"id"`
	Name             string    `json:"name"`
	IsAdmin          bool      `json:"isAdmin"`
	IsAutoGenerated  bool      `json:"isAutoGenerated"`
	RegistrationDate time.Time `json:"registrationDate"`
	jwt.RegisteredClaims
}

// AuthUser rebuilds the caller-facing user projection from validated claims.
// No fresh token is attached; the validated token remains the credential.
func (c *TokenClaims) AuthUser() *entity.AuthenticatedUser {
	return &entity.AuthenticatedUser{
		ID:               c.UserID,
		Name:             c.Name,
		IsAdmin:          c.IsAdmin,
		IsAutoGenerated:  c.IsAutoGenerated,
		RegistrationDate: c.RegistrationDate,
	}
}

// TokenService defines the interface for issuing and validating access
// tokens. This abstracts the token format from the use cases.
type TokenService interface {
	// Issue signs the user's claims into a bearer token with a fixed expiry.
	Issue(user *entity.AuthenticatedUser) (string, error)

	// Validate verifies signature and expiry and reconstructs the claims.
	// Signature mismatch and expiry both return an error.
	Validate(token string) (*TokenClaims, error)
}
