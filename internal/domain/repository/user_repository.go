// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"goalazo/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByName retrieves a single user by their unique name.
	FindByName(ctx context.Context, name string) (*entity.User, error)

	// Create persists a new user. The storage uniqueness constraint on name
	// is the arbiter for concurrent creates; the loser observes a name
	// conflict error.
	Create(ctx context.Context, user *entity.User) error

	// LinkFilter associates an existing filter with a user.
	LinkFilter(ctx context.Context, userID, filterID int64) error

	// ListFilters returns the filters linked to a user, newest first.
	ListFilters(ctx context.Context, userID int64, limit int) ([]*entity.Filter, error)
}
