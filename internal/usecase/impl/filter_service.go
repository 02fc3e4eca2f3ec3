package impl

import (
	"context"
	"log/slog"

	deliverycontext "goalazo/internal/delivery/context"
	"goalazo/internal/domain/entity"
	domainerrors "goalazo/internal/domain/errors"
	"goalazo/internal/domain/repository"
	"goalazo/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// filterService implements the FilterUsecase interface.
type filterService struct {
	filterRepo repository.FilterRepository
	logger     *slog.Logger
}

// FilterServiceParams holds dependencies for FilterService, injected by Fx.
type FilterServiceParams struct {
	fx.In

	FilterRepo repository.FilterRepository
	Logger     *slog.Logger
}

// NewFilterService is the constructor for filterService.
func NewFilterService(params FilterServiceParams) usecase.FilterUsecase {
	return &filterService{
		filterRepo: params.FilterRepo,
		logger:     params.Logger,
	}
}

func (srv *filterService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateFilter persists a filter with its link rows through the
// transaction-bound repository from the given factory.
func (srv *filterService) CreateFilter(ctx context.Context, repos repository.RepositoryFactory, input *usecase.CreateFilterInput) (*entity.Filter, error) {
	filter := &entity.Filter{
		Name:                 input.Name,
		TeamIDs:              input.TeamIDs,
		CompetitionSeriesIDs: input.CompetitionSeriesIDs,
	}
	if !filter.HasLinks() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("filter needs at least one team or competition series")
	}

	if err := repos.FilterRepo().Create(ctx, filter); err != nil {
		srv.log(ctx).Warn("Failed to create filter", slog.String("name", input.Name), slog.Any("error", err))

		return nil, err
	}

	return filter, nil
}

// GetFilter returns a filter with its link sets.
func (srv *filterService) GetFilter(ctx context.Context, filterID int64) (*entity.Filter, error) {
	filter, err := srv.filterRepo.FindByID(ctx, filterID)
	if err != nil {
		if errors.Is(err, repository.ErrFilterNotFound) {
			return nil, domainerrors.ErrFilterNotFound.WrapMessage("filter not found")
		}

		return nil, errors.Wrap(err, "failed to find filter")
	}

	return filter, nil
}
