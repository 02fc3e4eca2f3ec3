package usecase

import (
	"context"

	"github.com/paulmach/orb"

	"goalazo/internal/domain/entity"
)

// MatchUsecase defines match and viewing read operations.
type MatchUsecase interface {
	// GetFilterMatches returns upcoming matches referenced by a filter.
	GetFilterMatches(ctx context.Context, filterID int64, limit int) ([]*entity.Match, error)

	// GetMatchViewings returns the viewings of a match inside a map section.
	GetMatchViewings(ctx context.Context, matchID int64, section orb.Bound) ([]*entity.Viewing, error)
}
