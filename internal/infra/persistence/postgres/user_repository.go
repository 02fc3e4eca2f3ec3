// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
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

// userRepository implements the domain's UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a repository.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByName retrieves a single user by their unique name.
func (repo *userRepository) FindByName(ctx context.Context, name string) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Where("name = ?", name).
		First(&userM).Error
	if err != nil {
		// If the error is 'record not found', return a domain-specific error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by name")
	}

	// Map the persistence model back to a pure domain entity before returning.
	return toUserDomain(&userM), nil
}

// Create persists a new user entity. The unique index on name is the arbiter
// for concurrent registrations under the same name.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUniqueNameConflict.WrapMessage("name already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("missing required user information")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("invalid foreign key reference")
		}
		// For other database errors, return a generic database error
		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	// Update the user entity with the generated ID.
	user.ID = userM.ID

	return nil
}

// LinkFilter associates an existing filter with a user through the join table.
func (repo *userRepository) LinkFilter(ctx context.Context, userID, filterID int64) error {
	linkM := &model.UserFilterModel{UserID: userID, FilterID: filterID}

	if err := repo.db.WithContext(ctx).Create(linkM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrFilterNotFound.WrapMessage("filter or user does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to link filter to user")
	}

	return nil
}

// ListFilters returns the filters linked to a user, newest first.
func (repo *userRepository) ListFilters(ctx context.Context, userID int64, limit int) ([]*entity.Filter, error) {
	var filterMs []*model.FilterModel
	query := repo.db.WithContext(ctx).
		Joins("JOIN user_filters ON user_filters.filter_id = filters.id").
		Where("user_filters.user_id = ?", userID).
		Preload("FilterTeams").
		Preload("FilterCompetitionSeries").
		Order("filters.id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&filterMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list user filters")
	}

	filters := make([]*entity.Filter, 0, len(filterMs))
	for _, filterM := range filterMs {
		filters = append(filters, toFilterDomain(filterM))
	}

	return filters, nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	var passwordHash string
	if data.PasswordHash != nil {
		passwordHash = *data.PasswordHash
	}

	return &entity.User{
		ID:               data.ID,
		Name:             data.Name,
		PasswordHash:     passwordHash,
		IsAutoGenerated:  data.IsAutoGenerated,
		IsAdmin:          data.IsAdmin,
		RegistrationDate: data.RegistrationDate,
	}
}

// fromUserDomain converts a domain User entity to a GORM UserModel for persistence.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	var passwordHash *string
	if data.PasswordHash != "" {
		hash := data.PasswordHash
		passwordHash = &hash
	}

	return &model.UserModel{
		ID:               data.ID,
		Name:             data.Name,
		PasswordHash:     passwordHash,
		IsAutoGenerated:  data.IsAutoGenerated,
		IsAdmin:          data.IsAdmin,
		RegistrationDate: data.RegistrationDate,
	}
}
