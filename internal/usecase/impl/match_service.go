package impl

import (
	"context"
	"log/slog"

	deliverycontext "goalazo/internal/delivery/context"
	"goalazo/internal/domain/entity"
	domainerrors "goalazo/internal/domain/errors"
	"goalazo/internal/domain/repository"
	"goalazo/internal/usecase"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// matchService implements the MatchUsecase interface.
type matchService struct {
	matchRepo  repository.MatchRepository
	filterRepo repository.FilterRepository
	logger     *slog.Logger
}

// MatchServiceParams holds dependencies for MatchService, injected by Fx.
type MatchServiceParams struct {
	fx.In

	MatchRepo  repository.MatchRepository
	FilterRepo repository.FilterRepository
	Logger     *slog.Logger
}

// NewMatchService is the constructor for matchService.
func NewMatchService(params MatchServiceParams) usecase.MatchUsecase {
	return &matchService{
		matchRepo:  params.MatchRepo,
		filterRepo: params.FilterRepo,
		logger:     params.Logger,
	}
}

func (srv *matchService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetFilterMatches returns upcoming matches referenced by a filter's teams or
// competition series.
func (srv *matchService) GetFilterMatches(ctx context.Context, filterID int64, limit int) ([]*entity.Match, error) {
	if _, err := srv.filterRepo.FindByID(ctx, filterID); err != nil {
		if errors.Is(err, repository.ErrFilterNotFound) {
			return nil, domainerrors.ErrFilterNotFound.WrapMessage("filter not found")
		}

		return nil, errors.Wrap(err, "failed to find filter")
	}

	matches, err := srv.matchRepo.FindByFilter(ctx, filterID, limit)
	if err != nil {
		srv.log(ctx).Error("Failed to find filter matches", slog.Int64("filterID", filterID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to find filter matches")
	}

	return matches, nil
}

// GetMatchViewings returns the viewings of a match inside a map section.
func (srv *matchService) GetMatchViewings(ctx context.Context, matchID int64, section orb.Bound) ([]*entity.Viewing, error) {
	viewings, err := srv.matchRepo.FindViewings(ctx, matchID, section)
	if err != nil {
		srv.log(ctx).Error("Failed to find match viewings", slog.Int64("matchID", matchID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to find match viewings")
	}

	return viewings, nil
}
