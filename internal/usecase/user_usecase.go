// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"goalazo/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data for registering a user. Name and Password
// are either both set (explicit registration) or both empty (anonymous
// registration with a generated name).
type RegisterInput struct {
	Name     string
	Password string
}

// AuthenticateInput defines the credentials for a login attempt.
type AuthenticateInput struct {
	Name     string
	Password string
}

// SetUserFilterInput defines the data for creating a filter and linking it to
// the calling user in one atomic step.
type SetUserFilterInput struct {
	UserID               int64
	FilterName           string
	TeamIDs              []int64
	CompetitionSeriesIDs []int64
}

// UserUsecase defines the interface for user-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	// Register creates a user, anonymous or explicit, and returns the
	// authenticated projection carrying a fresh token.
	Register(ctx context.Context, input *RegisterInput) (*entity.AuthenticatedUser, error)

	// Authenticate verifies credentials and returns the authenticated
	// projection carrying a fresh token. Every credential failure surfaces
	// as the same authentication error.
	Authenticate(ctx context.Context, input *AuthenticateInput) (*entity.AuthenticatedUser, error)

	// CheckAuthentication validates a previously issued token and returns
	// the identity embedded in it, without issuing a new token.
	CheckAuthentication(ctx context.Context, token string) (*entity.AuthenticatedUser, error)

	// SetUserFilter creates a filter and links it to the user atomically.
	SetUserFilter(ctx context.Context, input *SetUserFilterInput) (*entity.Filter, error)

	// GetUserFilters returns the filters saved by the user.
	GetUserFilters(ctx context.Context, userID int64, limit int) ([]*entity.Filter, error)
}
