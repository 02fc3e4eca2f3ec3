package impl

import (
	"context"
	"testing"
	"time"

	"goalazo/internal/domain/entity"
	domainerrors "goalazo/internal/domain/errors"
	"goalazo/internal/domain/repository"
	mockRepo "goalazo/internal/mocks/repository"
	"goalazo/internal/usecase"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// matchServiceFixtures holds all test dependencies for match service tests.
type matchServiceFixtures struct {
	service    usecase.MatchUsecase
	matchRepo  *mockRepo.MockMatchRepository
	filterRepo *mockRepo.MockFilterRepository
}

func createTestMatchService(t *testing.T) matchServiceFixtures {
	matchRepo := mockRepo.NewMockMatchRepository(t)
	filterRepo := mockRepo.NewMockFilterRepository(t)

	service := NewMatchService(MatchServiceParams{
		MatchRepo:  matchRepo,
		FilterRepo: filterRepo,
		Logger:     newDiscardLogger(),
	})

	return matchServiceFixtures{
		service:    service,
		matchRepo:  matchRepo,
		filterRepo: filterRepo,
	}
}

func TestMatchService_GetFilterMatches_Success(t *testing.T) {
	fx := createTestMatchService(t)

	ctx := context.Background()
	stored := []*entity.Match{
		{ID: 1, TeamHomeID: 10, TeamAwayID: 20, CompetitionID: 5, KickOff: time.Now().Add(time.Hour)},
		{ID: 2, TeamHomeID: 30, TeamAwayID: 10, CompetitionID: 5, KickOff: time.Now().Add(2 * time.Hour)},
	}

	fx.filterRepo.EXPECT().FindByID(ctx, int64(21)).Return(&entity.Filter{ID: 21, TeamIDs: []int64{10}}, nil)
	fx.matchRepo.EXPECT().FindByFilter(ctx, int64(21), 50).Return(stored, nil)

	matches, err := fx.service.GetFilterMatches(ctx, 21, 50)

	require.NoError(t, err)
	assert.Equal(t, stored, matches)
}

func TestMatchService_GetFilterMatches_UnknownFilter(t *testing.T) {
	fx := createTestMatchService(t)

	ctx := context.Background()

	fx.filterRepo.EXPECT().FindByID(ctx, int64(404)).Return(nil, repository.ErrFilterNotFound)

	matches, err := fx.service.GetFilterMatches(ctx, 404, 50)

	assert.Error(t, err)
	assert.Nil(t, matches)
	assert.True(t, errors.Is(err, domainerrors.ErrFilterNotFound))
}

func TestMatchService_GetMatchViewings(t *testing.T) {
	fx := createTestMatchService(t)

	ctx := context.Background()
	section := orb.MultiPoint{{13.2, 52.4}, {13.6, 52.6}}.Bound()
	stored := []*entity.Viewing{
		{ID: 1, MatchID: 9, LocationID: 3, StartTime: time.Now().Add(time.Hour)},
	}

	fx.matchRepo.EXPECT().FindViewings(ctx, int64(9), section).Return(stored, nil)

	viewings, err := fx.service.GetMatchViewings(ctx, 9, section)

	require.NoError(t, err)
	assert.Equal(t, stored, viewings)
}
