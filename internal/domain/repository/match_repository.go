package repository

import (
	"context"

	"github.com/paulmach/orb"

	"goalazo/internal/domain/entity"
)

// MatchRepository serves match and viewing reads.
type MatchRepository interface {
	// FindByFilter returns upcoming matches referenced by a filter's teams or
	// competition series, ordered by kick-off, with both teams preloaded.
	FindByFilter(ctx context.Context, filterID int64, limit int) ([]*entity.Match, error)

	// FindViewings returns the viewings of a match whose locations fall
	// inside the given map section, with locations preloaded.
	FindViewings(ctx context.Context, matchID int64, section orb.Bound) ([]*entity.Viewing, error)
}
