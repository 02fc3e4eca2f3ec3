package usecase

import (
	"context"

	"goalazo/internal/domain/entity"
)

// CatalogUsecase defines the read-side operations over the reference data.
type CatalogUsecase interface {
	GetCountries(ctx context.Context, limit int) ([]*entity.Country, error)
	GetCountryCompetitions(ctx context.Context, countryID int64, limit int) ([]*entity.Competition, error)
	GetCompetitionSeries(ctx context.Context, limit int) ([]*entity.CompetitionSeries, error)
	GetCompetitionTeams(ctx context.Context, competitionID int64, limit int) ([]*entity.Team, error)
	GetTeams(ctx context.Context) ([]*entity.Team, error)
}
