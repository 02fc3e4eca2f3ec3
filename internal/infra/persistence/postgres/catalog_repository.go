package postgres

import (
	"context"

	"goalazo/internal/domain/entity"
	"goalazo/internal/domain/repository"
	"goalazo/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// catalogRepository implements the domain's CatalogRepository interface using GORM.
// All its operations are bounded read-only list queries over the reference data.
type catalogRepository struct {
	db *gorm.DB
}

// NewCatalogRepository is the constructor for catalogRepository.
func NewCatalogRepository(db *gorm.DB) repository.CatalogRepository {
	return &catalogRepository{db: db}
}

// ListCountries returns countries ordered by name.
func (repo *catalogRepository) ListCountries(ctx context.Context, limit int) ([]*entity.Country, error) {
	var countryMs []*model.CountryModel
	query := repo.db.WithContext(ctx).Order("name ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&countryMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list countries")
	}

	countries := make([]*entity.Country, 0, len(countryMs))
	for _, countryM := range countryMs {
		countries = append(countries, &entity.Country{ID: countryM.ID, Name: countryM.Name})
	}

	return countries, nil
}

// ListCountryCompetitions returns the competitions held in a country with
// their competition series preloaded.
func (repo *catalogRepository) ListCountryCompetitions(ctx context.Context, countryID int64, limit int) ([]*entity.Competition, error) {
	var competitionMs []*model.CompetitionModel
	query := repo.db.WithContext(ctx).
		Where("country_id = ?", countryID).
		Preload("CompetitionSeries").
		Order("season_start DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&competitionMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list country competitions")
	}

	competitions := make([]*entity.Competition, 0, len(competitionMs))
	for _, competitionM := range competitionMs {
		competitions = append(competitions, toCompetitionDomain(competitionM))
	}

	return competitions, nil
}

// ListCompetitionSeries returns competition series ordered by name.
func (repo *catalogRepository) ListCompetitionSeries(ctx context.Context, limit int) ([]*entity.CompetitionSeries, error) {
	var seriesMs []*model.CompetitionSeriesModel
	query := repo.db.WithContext(ctx).Order("name ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&seriesMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list competition series")
	}

	series := make([]*entity.CompetitionSeries, 0, len(seriesMs))
	for _, seriesM := range seriesMs {
		series = append(series, &entity.CompetitionSeries{ID: seriesM.ID, Name: seriesM.Name})
	}

	return series, nil
}

// ListCompetitionTeams returns the teams taking part in a competition.
func (repo *catalogRepository) ListCompetitionTeams(ctx context.Context, competitionID int64, limit int) ([]*entity.Team, error) {
	var teamMs []*model.TeamModel
	query := repo.db.WithContext(ctx).
		Joins("JOIN competition_teams ON competition_teams.team_id = teams.id").
		Where("competition_teams.competition_id = ?", competitionID).
		Order("teams.name ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&teamMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list competition teams")
	}

	return toTeamsDomain(teamMs), nil
}

// ListTeams returns all teams ordered by name.
func (repo *catalogRepository) ListTeams(ctx context.Context) ([]*entity.Team, error) {
	var teamMs []*model.TeamModel
	if err := repo.db.WithContext(ctx).Order("name ASC").Find(&teamMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list teams")
	}

	return toTeamsDomain(teamMs), nil
}

// toCompetitionDomain converts a GORM CompetitionModel to a domain Competition entity.
func toCompetitionDomain(data *model.CompetitionModel) *entity.Competition {
	if data == nil {
		return nil
	}

	competition := &entity.Competition{
		ID:                  data.ID,
		CompetitionSeriesID: data.CompetitionSeriesID,
		CountryID:           data.CountryID,
		SeasonStart:         data.SeasonStart,
		SeasonEnd:           data.SeasonEnd,
	}
	if data.CompetitionSeries != nil {
		competition.CompetitionSeries = &entity.CompetitionSeries{
			ID:   data.CompetitionSeries.ID,
			Name: data.CompetitionSeries.Name,
		}
	}

	return competition
}

// toTeamsDomain converts a slice of GORM TeamModel to domain Team entities.
func toTeamsDomain(data []*model.TeamModel) []*entity.Team {
	teams := make([]*entity.Team, 0, len(data))
	for _, teamM := range data {
		teams = append(teams, &entity.Team{ID: teamM.ID, Name: teamM.Name})
	}

	return teams
}
