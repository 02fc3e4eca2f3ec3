package usecase

import (
	"context"

	"goalazo/internal/domain/entity"
	"goalazo/internal/domain/repository"
)

// CreateFilterInput defines the data required to create a filter.
type CreateFilterInput struct {
	Name                 string
	TeamIDs              []int64
	CompetitionSeriesIDs []int64
}

// FilterUsecase defines the interface for filter-related business operations.
type FilterUsecase interface {
	// CreateFilter persists a filter with its link rows. It takes a
	// transaction-bound repository factory so callers can compose it into a
	// larger atomic operation.
	CreateFilter(ctx context.Context, repos repository.RepositoryFactory, input *CreateFilterInput) (*entity.Filter, error)

	// GetFilter returns a filter with its link sets.
	GetFilter(ctx context.Context, filterID int64) (*entity.Filter, error)
}
