package impl

import (
	"context"
	"log/slog"

	deliverycontext "goalazo/internal/delivery/context"
	"goalazo/internal/domain/entity"
	"goalazo/internal/domain/repository"
	"goalazo/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// catalogService implements the CatalogUsecase interface. It is a thin
// read-through layer over the catalog repository.
type catalogService struct {
	catalogRepo repository.CatalogRepository
	logger      *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	CatalogRepo repository.CatalogRepository
	Logger      *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		catalogRepo: params.CatalogRepo,
		logger:      params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *catalogService) GetCountries(ctx context.Context, limit int) ([]*entity.Country, error) {
	countries, err := srv.catalogRepo.ListCountries(ctx, limit)
	if err != nil {
		srv.log(ctx).Error("Failed to list countries", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list countries")
	}

	return countries, nil
}

func (srv *catalogService) GetCountryCompetitions(ctx context.Context, countryID int64, limit int) ([]*entity.Competition, error) {
	competitions, err := srv.catalogRepo.ListCountryCompetitions(ctx, countryID, limit)
	if err != nil {
		srv.log(ctx).Error("Failed to list country competitions", slog.Int64("countryID", countryID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list country competitions")
	}

	return competitions, nil
}

func (srv *catalogService) GetCompetitionSeries(ctx context.Context, limit int) ([]*entity.CompetitionSeries, error) {
	series, err := srv.catalogRepo.ListCompetitionSeries(ctx, limit)
	if err != nil {
		srv.log(ctx).Error("Failed to list competition series", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list competition series")
	}

	return series, nil
}

func (srv *catalogService) GetCompetitionTeams(ctx context.Context, competitionID int64, limit int) ([]*entity.Team, error) {
	teams, err := srv.catalogRepo.ListCompetitionTeams(ctx, competitionID, limit)
	if err != nil {
		srv.log(ctx).Error("Failed to list competition teams", slog.Int64("competitionID", competitionID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list competition teams")
	}

	return teams, nil
}

func (srv *catalogService) GetTeams(ctx context.Context) ([]*entity.Team, error) {
	teams, err := srv.catalogRepo.ListTeams(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list teams", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list teams")
	}

	return teams, nil
}
