package impl

import (
	"context"
	"testing"

	"goalazo/internal/domain/entity"
	domainerrors "goalazo/internal/domain/errors"
	"goalazo/internal/domain/repository"
	mockRepo "goalazo/internal/mocks/repository"
	"goalazo/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// filterServiceFixtures holds all test dependencies for filter service tests.
type filterServiceFixtures struct {
	service    usecase.FilterUsecase
	filterRepo *mockRepo.MockFilterRepository
}

func createTestFilterService(t *testing.T) filterServiceFixtures {
	filterRepo := mockRepo.NewMockFilterRepository(t)

	service := NewFilterService(FilterServiceParams{
		FilterRepo: filterRepo,
		Logger:     newDiscardLogger(),
	})

	return filterServiceFixtures{
		service:    service,
		filterRepo: filterRepo,
	}
}

func TestFilterService_CreateFilter_Success(t *testing.T) {
	fx := createTestFilterService(t)

	ctx := context.Background()
	input := &usecase.CreateFilterInput{
		Name:                 "My Teams",
		TeamIDs:              []int64{1, 2},
		CompetitionSeriesIDs: []int64{3},
	}

	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	txFilterRepo := mockRepo.NewMockFilterRepository(t)
	mockFactory.EXPECT().FilterRepo().Return(txFilterRepo)

	txFilterRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Filter")).
		Run(func(ctx context.Context, filter *entity.Filter) {
			assert.Equal(t, "My Teams", filter.Name)
			assert.Equal(t, []int64{1, 2}, filter.TeamIDs)
			assert.Equal(t, []int64{3}, filter.CompetitionSeriesIDs)
			filter.ID = 21
		}).
		Return(nil)

	filter, err := fx.service.CreateFilter(ctx, mockFactory, input)

	require.NoError(t, err)
	require.NotNil(t, filter)
	assert.Equal(t, int64(21), filter.ID)
}

func TestFilterService_CreateFilter_NoLinks(t *testing.T) {
	fx := createTestFilterService(t)

	ctx := context.Background()
	mockFactory := mockRepo.NewMockRepositoryFactory(t)

	filter, err := fx.service.CreateFilter(ctx, mockFactory, &usecase.CreateFilterInput{Name: "Empty"})

	assert.Error(t, err)
	assert.Nil(t, filter)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	mockFactory.AssertNotCalled(t, "FilterRepo")
}

func TestFilterService_CreateFilter_RepoFailure(t *testing.T) {
	fx := createTestFilterService(t)

	ctx := context.Background()
	input := &usecase.CreateFilterInput{Name: "My Teams", TeamIDs: []int64{1}}

	createErr := domainerrors.ErrValidationFailed.WrapMessage("filter references an unknown team or competition series")

	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	txFilterRepo := mockRepo.NewMockFilterRepository(t)
	mockFactory.EXPECT().FilterRepo().Return(txFilterRepo)
	txFilterRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Filter")).Return(createErr)

	filter, err := fx.service.CreateFilter(ctx, mockFactory, input)

	assert.Error(t, err)
	assert.Nil(t, filter)
	assert.Equal(t, createErr, err)
}

func TestFilterService_GetFilter_Success(t *testing.T) {
	fx := createTestFilterService(t)

	ctx := context.Background()
	stored := &entity.Filter{ID: 21, Name: "My Teams", TeamIDs: []int64{1, 2}}

	fx.filterRepo.EXPECT().FindByID(ctx, int64(21)).Return(stored, nil)

	filter, err := fx.service.GetFilter(ctx, 21)

	require.NoError(t, err)
	assert.Equal(t, stored, filter)
}

func TestFilterService_GetFilter_NotFound(t *testing.T) {
	fx := createTestFilterService(t)

	ctx := context.Background()

	fx.filterRepo.EXPECT().FindByID(ctx, int64(404)).Return(nil, repository.ErrFilterNotFound)

	filter, err := fx.service.GetFilter(ctx, 404)

	assert.Error(t, err)
	assert.Nil(t, filter)
	assert.True(t, errors.Is(err, domainerrors.ErrFilterNotFound))
}
