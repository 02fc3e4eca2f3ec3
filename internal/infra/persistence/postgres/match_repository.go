package postgres

import (
	"context"
	"time"

	"goalazo/internal/domain/entity"
	"goalazo/internal/domain/repository"
	"goalazo/internal/infra/persistence/model"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// matchRepository implements the domain's MatchRepository interface using GORM.
type matchRepository struct {
	db *gorm.DB
}

// NewMatchRepository is the constructor for matchRepository.
func NewMatchRepository(db *gorm.DB) repository.MatchRepository {
	return &matchRepository{db: db}
}

// FindByFilter returns upcoming matches whose teams or competition series are
// referenced by the filter's link rows, ordered by kick-off.
func (repo *matchRepository) FindByFilter(ctx context.Context, filterID int64, limit int) ([]*entity.Match, error) {
	var matchMs []*model.MatchModel
	query := repo.db.WithContext(ctx).
		Joins("LEFT JOIN competitions ON competitions.id = matches.competition_id").
		Where(`matches.team_home_id IN (SELECT team_id FROM filter_teams WHERE filter_id = @filter)
			OR matches.team_away_id IN (SELECT team_id FROM filter_teams WHERE filter_id = @filter)
			OR competitions.competition_series_id IN (SELECT competition_series_id FROM filter_competition_series WHERE filter_id = @filter)`,
			map[string]any{"filter": filterID}).
		Where("matches.kick_off >= ?", time.Now()).
		Preload("HomeTeam").
		Preload("AwayTeam").
		Order("matches.kick_off ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&matchMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find matches by filter")
	}

	matches := make([]*entity.Match, 0, len(matchMs))
	for _, matchM := range matchMs {
		matches = append(matches, toMatchDomain(matchM))
	}

	return matches, nil
}

// FindViewings returns the viewings of a match whose locations fall inside
// the given map section, with locations preloaded.
func (repo *matchRepository) FindViewings(ctx context.Context, matchID int64, section orb.Bound) ([]*entity.Viewing, error) {
	var viewingMs []*model.ViewingModel
	err := repo.db.WithContext(ctx).
		Joins("JOIN locations ON locations.id = viewings.location_id").
		Where("viewings.match_id = ?", matchID).
		Where("locations.longitude BETWEEN ? AND ?", section.Min.Lon(), section.Max.Lon()).
		Where("locations.latitude BETWEEN ? AND ?", section.Min.Lat(), section.Max.Lat()).
		Preload("Location").
		Order("viewings.start_time ASC").
		Find(&viewingMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find viewings by match")
	}

	viewings := make([]*entity.Viewing, 0, len(viewingMs))
	for _, viewingM := range viewingMs {
		viewings = append(viewings, toViewingDomain(viewingM))
	}

	return viewings, nil
}

// toMatchDomain converts a GORM MatchModel to a domain Match entity.
func toMatchDomain(data *model.MatchModel) *entity.Match {
	if data == nil {
		return nil
	}

	match := &entity.Match{
		ID:            data.ID,
		TeamHomeID:    data.TeamHomeID,
		TeamAwayID:    data.TeamAwayID,
		CompetitionID: data.CompetitionID,
		KickOff:       data.KickOff,
	}
	if data.HomeTeam != nil {
		match.HomeTeam = &entity.Team{ID: data.HomeTeam.ID, Name: data.HomeTeam.Name}
	}
	if data.AwayTeam != nil {
		match.AwayTeam = &entity.Team{ID: data.AwayTeam.ID, Name: data.AwayTeam.Name}
	}

	return match
}

// toViewingDomain converts a GORM ViewingModel to a domain Viewing entity.
func toViewingDomain(data *model.ViewingModel) *entity.Viewing {
	if data == nil {
		return nil
	}

	viewing := &entity.Viewing{
		ID:         data.ID,
		MatchID:    data.MatchID,
		LocationID: data.LocationID,
		StartTime:  data.StartTime,
	}
	if data.Location != nil {
		viewing.Location = &entity.Location{
			ID:       data.Location.ID,
			Position: orb.Point{data.Location.Longitude, data.Location.Latitude},
			Address:  data.Location.Address,
			PostCode: data.Location.PostCode,
			City:     data.Location.City,
			Country:  data.Location.Country,
		}
	}

	return viewing
}
