package postgres

import (
	"context"

	"goalazo/internal/domain/entity"
	domainerrors "goalazo/internal/domain/errors"
	"goalazo/internal/domain/repository"
	"goalazo/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// filterRepository implements the domain's FilterRepository interface using GORM.
type filterRepository struct {
	db *gorm.DB
}

// NewFilterRepository is the constructor for filterRepository.
func NewFilterRepository(db *gorm.DB) repository.FilterRepository {
	return &filterRepository{db: db}
}

// Create persists a filter together with its team and competition-series link
// rows. GORM inserts the associations alongside the parent row, so when this
// runs inside txManager.Execute the whole write is one atomic unit.
func (repo *filterRepository) Create(ctx context.Context, filter *entity.Filter) error {
	filterM := fromFilterDomain(filter)

	if err := repo.db.WithContext(ctx).Create(filterM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("unknown team or competition series reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create filter")
	}

	filter.ID = filterM.ID

	return nil
}

// FindByID retrieves a filter with its link sets.
func (repo *filterRepository) FindByID(ctx context.Context, id int64) (*entity.Filter, error) {
	var filterM model.FilterModel
	err := repo.db.WithContext(ctx).
		Preload("FilterTeams").
		Preload("FilterCompetitionSeries").
		First(&filterM, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFilterNotFound
		}

		return nil, errors.Wrap(err, "failed to find filter by id")
	}

	return toFilterDomain(&filterM), nil
}

// toFilterDomain converts a GORM FilterModel to a domain Filter entity.
func toFilterDomain(data *model.FilterModel) *entity.Filter {
	if data == nil {
		return nil
	}

	teamIDs := make([]int64, 0, len(data.FilterTeams))
	for _, link := range data.FilterTeams {
		teamIDs = append(teamIDs, link.TeamID)
	}

	seriesIDs := make([]int64, 0, len(data.FilterCompetitionSeries))
	for _, link := range data.FilterCompetitionSeries {
		seriesIDs = append(seriesIDs, link.CompetitionSeriesID)
	}

	return &entity.Filter{
		ID:                   data.ID,
		Name:                 data.Name,
		TeamIDs:              teamIDs,
		CompetitionSeriesIDs: seriesIDs,
	}
}

// fromFilterDomain converts a domain Filter entity to a GORM FilterModel for persistence.
func fromFilterDomain(data *entity.Filter) *model.FilterModel {
	if data == nil {
		return nil
	}

	filterTeams := make([]model.FilterTeamModel, 0, len(data.TeamIDs))
	for _, teamID := range data.TeamIDs {
		filterTeams = append(filterTeams, model.FilterTeamModel{TeamID: teamID})
	}

	filterSeries := make([]model.FilterCompetitionSeriesModel, 0, len(data.CompetitionSeriesIDs))
	for _, seriesID := range data.CompetitionSeriesIDs {
		filterSeries = append(filterSeries, model.FilterCompetitionSeriesModel{CompetitionSeriesID: seriesID})
	}

	return &model.FilterModel{
		ID:                      data.ID,
		Name:                    data.Name,
		FilterTeams:             filterTeams,
		FilterCompetitionSeries: filterSeries,
	}
}
