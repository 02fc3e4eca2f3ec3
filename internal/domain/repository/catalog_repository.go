package repository

import (
	"context"

	"goalazo/internal/domain/entity"
)

// CatalogRepository serves the read side of the reference data: countries,
// competitions, competition series and teams. All operations are plain
// bounded list queries.
type CatalogRepository interface {
	ListCountries(ctx context.Context, limit int) ([]*entity.Country, error)

	// ListCountryCompetitions returns the competitions held in a country,
	// with their competition series preloaded.
	ListCountryCompetitions(ctx context.Context, countryID int64, limit int) ([]*entity.Competition, error)

	ListCompetitionSeries(ctx context.Context, limit int) ([]*entity.CompetitionSeries, error)

	ListCompetitionTeams(ctx context.Context, competitionID int64, limit int) ([]*entity.Team, error)

	ListTeams(ctx context.Context) ([]*entity.Team, error)
}
