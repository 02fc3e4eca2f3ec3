package impl

import (
	"context"
	"testing"
	"time"

	"goalazo/internal/domain/entity"
	domainerrors "goalazo/internal/domain/errors"
	"goalazo/internal/domain/repository"
	"goalazo/internal/domain/service"
	mockRepo "goalazo/internal/mocks/repository"
	mockSvc "goalazo/internal/mocks/service"
	mockUc "goalazo/internal/mocks/usecase"
	"goalazo/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service      usecase.UserUsecase
	txManager    *mockRepo.MockTransactionManager
	userRepo     *mockRepo.MockUserRepository
	filterUc     *mockUc.MockFilterUsecase
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestUserService(t *testing.T) userServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	filterUc := mockUc.NewMockFilterUsecase(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	service := NewUserService(UserServiceParams{
		TxManager:    txManager,
		UserRepo:     userRepo,
		FilterUc:     filterUc,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	})

	return userServiceFixtures{
		service:      service,
		txManager:    txManager,
		userRepo:     userRepo,
		filterUc:     filterUc,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestUserService_Register_Anonymous(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			user.ID = 7
		}).
		Return(nil)

	fx.tokenService.EXPECT().
		Issue(mock.AnythingOfType("*entity.AuthenticatedUser")).
		Return("signed-token", nil)

	output, err := fx.service.Register(ctx, &usecase.RegisterInput{})

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, int64(7), output.ID)
	assert.True(t, output.IsAutoGenerated)
	assert.Equal(t, "signed-token", output.Token)

	// Anonymous users get a random UUID as their name.
	_, parseErr := uuid.Parse(output.Name)
	assert.NoError(t, parseErr)
}

func TestUserService_Register_Explicit(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{Name: "alice", Password: "Password123!"}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			assert.Equal(t, "alice", user.Name)
			assert.Equal(t, "hashed_password", user.PasswordHash)
			assert.False(t, user.IsAutoGenerated)
			user.ID = 11
		}).
		Return(nil)

	fx.tokenService.EXPECT().
		Issue(mock.AnythingOfType("*entity.AuthenticatedUser")).
		Return("signed-token", nil)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, int64(11), output.ID)
	assert.Equal(t, "alice", output.Name)
	assert.False(t, output.IsAutoGenerated)
	assert.Equal(t, "signed-token", output.Token)
}

func TestUserService_Register_NameWithoutPassword(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	output, err := fx.service.Register(ctx, &usecase.RegisterInput{Name: "alice"})

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestUserService_Register_PasswordWithoutName(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	output, err := fx.service.Register(ctx, &usecase.RegisterInput{Password: "Password123!"})

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestUserService_Register_HashFailure(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{Name: "alice", Password: "Password123!"}

	fx.hasher.EXPECT().Hash(input.Password).Return("", errors.New("bcrypt hash failed"))

	output, err := fx.service.Register(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrHashingFailure))
}

func TestUserService_Register_NameConflict(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{Name: "alice", Password: "Password123!"}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(domainerrors.ErrUniqueNameConflict.WrapMessage("name already exists"))

	output, err := fx.service.Register(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrUniqueNameConflict))
}

func TestUserService_Authenticate_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.AuthenticateInput{Name: "alice", Password: "Password123!"}

	stored := &entity.User{
		ID:               11,
		Name:             "alice",
		PasswordHash:     "hashed_password",
		RegistrationDate: time.Now(),
	}

	fx.userRepo.EXPECT().FindByName(ctx, input.Name).Return(stored, nil)
	fx.hasher.EXPECT().Check(input.Password, stored.PasswordHash).Return(true, nil)
	fx.tokenService.EXPECT().
		Issue(mock.AnythingOfType("*entity.AuthenticatedUser")).
		Return("signed-token", nil)

	output, err := fx.service.Authenticate(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, stored.ID, output.ID)
	assert.Equal(t, "signed-token", output.Token)
}

func TestUserService_Authenticate_UnknownName(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByName(ctx, "nobody").
		Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.Authenticate(ctx, &usecase.AuthenticateInput{Name: "nobody", Password: "whatever"})

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrAuthenticationFailed))
}

func TestUserService_Authenticate_WrongPassword(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	stored := &entity.User{ID: 11, Name: "alice", PasswordHash: "hashed_password"}

	fx.userRepo.EXPECT().FindByName(ctx, "alice").Return(stored, nil)
	fx.hasher.EXPECT().Check("wrong", stored.PasswordHash).Return(false, nil)

	output, err := fx.service.Authenticate(ctx, &usecase.AuthenticateInput{Name: "alice", Password: "wrong"})

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrAuthenticationFailed))
}

func TestUserService_Authenticate_CheckPrimitiveFailure(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	stored := &entity.User{ID: 11, Name: "alice", PasswordHash: "hashed_password"}

	fx.userRepo.EXPECT().FindByName(ctx, "alice").Return(stored, nil)
	fx.hasher.EXPECT().
		Check("Password123!", stored.PasswordHash).
		Return(false, errors.New("bcrypt compare failed"))

	output, err := fx.service.Authenticate(ctx, &usecase.AuthenticateInput{Name: "alice", Password: "Password123!"})

	assert.Error(t, err)
	assert.Nil(t, output)

	// A broken hashing primitive is an internal fault, not a wrong password.
	assert.True(t, errors.Is(err, domainerrors.ErrHashingFailure))
	assert.False(t, errors.Is(err, domainerrors.ErrAuthenticationFailed))
}

func TestUserService_Authenticate_MissingHash(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	stored := &entity.User{ID: 11, Name: "alice"}

	fx.userRepo.EXPECT().FindByName(ctx, "alice").Return(stored, nil)

	output, err := fx.service.Authenticate(ctx, &usecase.AuthenticateInput{Name: "alice", Password: "whatever"})

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrAuthenticationFailed))
}

func TestUserService_Authenticate_AutoGeneratedIgnoresPassword(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	stored := &entity.User{
		ID:              7,
		Name:            "3e4f9c6a-9f7d-4f44-b5e8-8a7c7d4f2b11",
		IsAutoGenerated: true,
	}

	fx.userRepo.EXPECT().FindByName(ctx, stored.Name).Return(stored, nil)
	fx.tokenService.EXPECT().
		Issue(mock.AnythingOfType("*entity.AuthenticatedUser")).
		Return("signed-token", nil)

	// The random name is the credential. The password, even a wrong one, is
	// ignored and the hasher is never consulted.
	output, err := fx.service.Authenticate(ctx, &usecase.AuthenticateInput{Name: stored.Name, Password: "anything"})

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, stored.ID, output.ID)
	assert.Equal(t, "signed-token", output.Token)
	fx.hasher.AssertNotCalled(t, "Check", mock.Anything, mock.Anything)
}

func TestUserService_CheckAuthentication_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	claims := &service.TokenClaims{
		UserID:           11,
		Name:             "alice",
		RegistrationDate: time.Now(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}

	fx.tokenService.EXPECT().Validate("valid-token").Return(claims, nil)

	output, err := fx.service.CheckAuthentication(ctx, "valid-token")

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, int64(11), output.ID)
	assert.Equal(t, "alice", output.Name)

	// The validated token stays the credential, no fresh one is issued.
	assert.Empty(t, output.Token)
	fx.tokenService.AssertNotCalled(t, "Issue", mock.Anything)
}

func TestUserService_CheckAuthentication_InvalidToken(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.tokenService.EXPECT().Validate("bad-token").Return(nil, errors.New("failed to verify token"))

	output, err := fx.service.CheckAuthentication(ctx, "bad-token")

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrAuthenticationFailed))
}

func TestUserService_SetUserFilter_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.SetUserFilterInput{
		UserID:               11,
		FilterName:           "My Teams",
		TeamIDs:              []int64{1, 2},
		CompetitionSeriesIDs: []int64{3},
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			fx.filterUc.EXPECT().
				CreateFilter(ctx, mockFactory, mock.AnythingOfType("*usecase.CreateFilterInput")).
				Return(&entity.Filter{
					ID:                   21,
					Name:                 input.FilterName,
					TeamIDs:              input.TeamIDs,
					CompetitionSeriesIDs: input.CompetitionSeriesIDs,
				}, nil)

			mockUserRepo.EXPECT().LinkFilter(ctx, input.UserID, int64(21)).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	output, err := fx.service.SetUserFilter(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, int64(21), output.ID)
	assert.Equal(t, "My Teams", output.Name)
}

func TestUserService_SetUserFilter_MissingName(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.SetUserFilterInput{UserID: 11, TeamIDs: []int64{1}}

	output, err := fx.service.SetUserFilter(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	// Validation happens before the transaction is ever opened.
	fx.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestUserService_SetUserFilter_NoLinks(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.SetUserFilterInput{UserID: 11, FilterName: "Empty"}

	output, err := fx.service.SetUserFilter(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	fx.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestUserService_SetUserFilter_LinkFailureRollsBack(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.SetUserFilterInput{
		UserID:     11,
		FilterName: "My Teams",
		TeamIDs:    []int64{1},
	}

	linkErr := domainerrors.NewDatabaseExecuteError(errors.New("connection reset"), "link user filter")

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			fx.filterUc.EXPECT().
				CreateFilter(ctx, mockFactory, mock.AnythingOfType("*usecase.CreateFilterInput")).
				Return(&entity.Filter{ID: 21, Name: input.FilterName, TeamIDs: input.TeamIDs}, nil)

			mockUserRepo.EXPECT().LinkFilter(ctx, input.UserID, int64(21)).Return(linkErr)

			_ = fn(mockFactory)
		}).
		Return(linkErr)

	output, err := fx.service.SetUserFilter(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)

	// The link step's error comes back unchanged after the rollback.
	assert.Equal(t, linkErr, err)
}

func TestUserService_GetUserFilters(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	stored := []*entity.Filter{
		{ID: 2, Name: "Newest", TeamIDs: []int64{5}},
		{ID: 1, Name: "Oldest", CompetitionSeriesIDs: []int64{9}},
	}

	fx.userRepo.EXPECT().ListFilters(ctx, int64(11), 10).Return(stored, nil)

	filters, err := fx.service.GetUserFilters(ctx, 11, 10)

	require.NoError(t, err)
	assert.Equal(t, stored, filters)
}
