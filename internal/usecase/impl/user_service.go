// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "goalazo/internal/delivery/context"
	"goalazo/internal/domain/entity"
	domainerrors "goalazo/internal/domain/errors"
	"goalazo/internal/domain/repository"
	"goalazo/internal/domain/service"
	"goalazo/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	filterUc     usecase.FilterUsecase
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	FilterUc     usecase.FilterUsecase
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		filterUc:     params.FilterUc,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a user and returns the authenticated projection with a
// fresh token. An empty name requests an anonymous user: the server picks a
// random UUID name and stores no password. A non-empty name must come with a
// password and produces an explicitly registered user.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterInput) (*entity.AuthenticatedUser, error) {
	if (input.Name == "") != (input.Password == "") {
		srv.log(ctx).Warn("Registration rejected, name and password must come together")

		return nil, domainerrors.ErrValidationFailed.WrapMessage("name and password must both be provided or both be omitted")
	}

	newUser := &entity.User{
		Name:             input.Name,
		RegistrationDate: time.Now(),
	}
	if input.Name == "" {
		newUser.Name = uuid.NewString()
		newUser.IsAutoGenerated = true
	} else {
		hash, err := srv.hasher.Hash(input.Password)
		if err != nil {
			srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

			return nil, domainerrors.ErrHashingFailure.WrapMessage("failed to hash password during registration")
		}
		newUser.PasswordHash = hash
	}

	if err := srv.userRepo.Create(ctx, newUser); err != nil {
		srv.log(ctx).Warn("Failed to create user", slog.String("name", newUser.Name), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("User registered", slog.Int64("userID", newUser.ID), slog.Bool("autoGenerated", newUser.IsAutoGenerated))

	return srv.issueAuthUser(ctx, newUser)
}

// Authenticate verifies a name/password pair. Every credential failure,
// unknown name, missing password hash or mismatch, collapses into the same
// authentication error so callers cannot probe which names exist. A failure
// of the hashing primitive itself stays distinct as a hashing failure.
func (srv *userService) Authenticate(ctx context.Context, input *usecase.AuthenticateInput) (*entity.AuthenticatedUser, error) {
	user, err := srv.userRepo.FindByName(ctx, input.Name)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Authentication failed, unknown name")

			return nil, domainerrors.ErrAuthenticationFailed.WrapMessage("authentication failed")
		}

		return nil, errors.Wrap(err, "failed to find user by name")
	}

	// Auto-generated users carry no password. Knowing the random name is the
	// credential, so whatever password was sent is ignored.
	if !user.IsAutoGenerated {
		if user.PasswordHash == "" {
			srv.log(ctx).Warn("Authentication failed, user has no password hash", slog.Int64("userID", user.ID))

			return nil, domainerrors.ErrAuthenticationFailed.WrapMessage("authentication failed")
		}

		ok, err := srv.hasher.Check(input.Password, user.PasswordHash)
		if err != nil {
			// A failure of the hashing primitive is an internal fault, not a
			// wrong password.
			srv.log(ctx).Error("Password check failed", slog.Int64("userID", user.ID), slog.Any("error", err))

			return nil, domainerrors.ErrHashingFailure.WrapMessage("failed to check password")
		}
		if !ok {
			srv.log(ctx).Warn("Authentication failed, password mismatch", slog.Int64("userID", user.ID))

			return nil, domainerrors.ErrAuthenticationFailed.WrapMessage("authentication failed")
		}
	}

	srv.log(ctx).Debug("User authenticated", slog.Int64("userID", user.ID))

	return srv.issueAuthUser(ctx, user)
}

// CheckAuthentication validates a previously issued token and returns the
// identity embedded in it. No fresh token is issued; expiry stays absolute.
func (srv *userService) CheckAuthentication(ctx context.Context, token string) (*entity.AuthenticatedUser, error) {
	claims, err := srv.tokenService.Validate(token)
	if err != nil {
		srv.log(ctx).Warn("Token validation failed", slog.Any("error", err))

		return nil, domainerrors.ErrAuthenticationFailed.WrapMessage("invalid or expired token")
	}

	return claims.AuthUser(), nil
}

// SetUserFilter creates a filter and links it to the user within a single
// transaction. If the link step fails the filter creation is rolled back and
// the link step's error is returned unchanged.
func (srv *userService) SetUserFilter(ctx context.Context, input *usecase.SetUserFilterInput) (*entity.Filter, error) {
	if input.FilterName == "" || (len(input.TeamIDs) == 0 && len(input.CompetitionSeriesIDs) == 0) {
		srv.log(ctx).Warn("Filter rejected, missing name or links", slog.Int64("userID", input.UserID))

		return nil, domainerrors.ErrValidationFailed.WrapMessage("filter needs a name and at least one team or competition series")
	}

	var createdFilter *entity.Filter
	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		filter, err := srv.filterUc.CreateFilter(ctx, repos, &usecase.CreateFilterInput{
			Name:                 input.FilterName,
			TeamIDs:              input.TeamIDs,
			CompetitionSeriesIDs: input.CompetitionSeriesIDs,
		})
		if err != nil {
			return err
		}

		if err := repos.UserRepo().LinkFilter(ctx, input.UserID, filter.ID); err != nil {
			return err
		}

		createdFilter = filter

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to set user filter", slog.Int64("userID", input.UserID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("User filter created", slog.Int64("userID", input.UserID), slog.Int64("filterID", createdFilter.ID))

	return createdFilter, nil
}

// GetUserFilters returns the filters saved by the user.
func (srv *userService) GetUserFilters(ctx context.Context, userID int64, limit int) ([]*entity.Filter, error) {
	filters, err := srv.userRepo.ListFilters(ctx, userID, limit)
	if err != nil {
		srv.log(ctx).Error("Failed to list user filters", slog.Int64("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list user filters")
	}

	return filters, nil
}

// issueAuthUser builds the caller-facing projection and attaches a fresh token.
func (srv *userService) issueAuthUser(ctx context.Context, user *entity.User) (*entity.AuthenticatedUser, error) {
	authUser := entity.AuthUserFromUser(user)

	token, err := srv.tokenService.Issue(authUser)
	if err != nil {
		srv.log(ctx).Error("Failed to issue token", slog.Int64("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue token")
	}
	authUser.Token = token

	return authUser, nil
}
