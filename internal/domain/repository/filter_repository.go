package repository

import (
	"context"
	"errors"

	"goalazo/internal/domain/entity"
)

// ErrFilterNotFound is returned when a filter lookup finds nothing.
var ErrFilterNotFound = errors.New("filter not found")

// FilterRepository defines persistence operations for filters and their
// team / competition-series link rows.
type FilterRepository interface {
	// Create persists a filter together with its link rows and fills in the
	// generated ID.
	Create(ctx context.Context, filter *entity.Filter) error

	// FindByID retrieves a filter with its link sets.
	FindByID(ctx context.Context, id int64) (*entity.Filter, error)
}
