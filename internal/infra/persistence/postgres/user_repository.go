// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"strings"
	"time"

	"beautymarket/internal/domain/entity"
	domainerrors "beautymarket/internal/domain/errors"
	"beautymarket/internal/domain/repository"
	"beautymarket/internal/infra/persistence/model"
	"beautymarket/internal/infra/persistence/postgres/query"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// userRepository implements the repository.UserRepository interface.
// Point lookups and writes go through the GORM Gen query builder; the admin
// listing keeps the raw builder for its ILIKE search and KYC subquery.
type userRepository struct {
	db *gorm.DB
	q  *query.Query
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		db: db,
		q:  query.Use(db),
	}
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	u := repo.q.UserModel

	userM, err := u.WithContext(ctx).
		Where(u.ID.Eq(id)).
		First()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by ID")
	}

	return toUserDomain(userM), nil
}

// FindByEmail reads from the primary so a login right after sign-up sees the new row.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	u := repo.q.UserModel

	userM, err := u.WithContext(ctx).
		WriteDB().
		Where(u.Email.Lower().Eq(strings.ToLower(email))).
		First()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(userM), nil
}

// FindByUsername retrieves a single user by username.
func (repo *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	u := repo.q.UserModel

	userM, err := u.WithContext(ctx).
		WriteDB().
		Where(u.Username.Eq(username)).
		First()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by username")
	}

	return toUserDomain(userM), nil
}

// Create persists a new user entity to the storage.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.q.UserModel.WithContext(ctx).Create(userM); err != nil {
		if isUniqueConstraintViolation(err) {
			return duplicateUserError(err)
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// Update modifies an existing user entity in the storage.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	u := repo.q.UserModel

	result, err := u.WithContext(ctx).
		Where(u.ID.Eq(user.ID)).
		Updates(map[string]any{
			"username":  user.Username,
			"email":     strings.ToLower(user.Email),
			"phone":     user.Phone,
			"user_type": string(user.UserType),
			"is_active": user.IsActive,
		})
	if err != nil {
		if isUniqueConstraintViolation(err) {
			return duplicateUserError(err)
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update user")
	}

	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// SetActive activates or deactivates a user.
func (repo *userRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	u := repo.q.UserModel

	result, err := u.WithContext(ctx).
		Where(u.ID.Eq(id)).
		Update(u.IsActive, active)
	if err != nil {
		return errors.Wrap(err, "failed to set user active flag")
	}

	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// TouchLastLogin records a successful login.
func (repo *userRepository) TouchLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	u := repo.q.UserModel

	if _, err := u.WithContext(ctx).
		Where(u.ID.Eq(id)).
		UpdateColumn(u.LastLoginAt, at); err != nil {
		return errors.Wrap(err, "failed to update last login")
	}

	return nil
}

// AcquireSessionMutex locks the user row until the surrounding transaction ends.
func (repo *userRepository) AcquireSessionMutex(ctx context.Context, id uuid.UUID) error {
	u := repo.q.UserModel

	if _, err := u.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Select(u.ID).
		Where(u.ID.Eq(id)).
		First(); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return repository.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to lock user row")
	}

	return nil
}

// List returns one page of users matching filter and the total count.
func (repo *userRepository) List(ctx context.Context, filter repository.UserFilter) ([]*entity.User, int64, error) {
	tx := repo.db.WithContext(ctx).Model(&model.UserModel{})

	if filter.UserType != "" {
		tx = tx.Where("user_type = ?", string(filter.UserType))
	}
	if filter.IsActive != nil {
		tx = tx.Where("is_active = ?", *filter.IsActive)
	}
	if filter.KYCStatus != "" {
		tx = tx.Where("id IN (?)", repo.db.Model(&model.UserKYCModel{}).
			Select("user_id").
			Where("status = ?", string(filter.KYCStatus)))
	}
	if filter.Search != "" {
		like := containsPattern(filter.Search)
		tx = tx.Where("username ILIKE ? OR email ILIKE ? OR phone ILIKE ?", like, like, like)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count users")
	}

	var userModels []*model.UserModel
	if err := tx.
		Order("created_at DESC").
		Offset(filter.Offset()).
		Limit(filter.PageSize).
		Find(&userModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list users")
	}

	return toUserDomains(userModels), total, nil
}

// Count returns the number of users.
func (repo *userRepository) Count(ctx context.Context) (int64, error) {
	total, err := repo.q.UserModel.WithContext(ctx).Count()
	if err != nil {
		return 0, errors.Wrap(err, "failed to count users")
	}

	return total, nil
}

// FindRecent returns the newest users.
func (repo *userRepository) FindRecent(ctx context.Context, limit int) ([]*entity.User, error) {
	u := repo.q.UserModel

	userModels, err := u.WithContext(ctx).
		Order(u.CreatedAt.Desc()).
		Limit(limit).
		Find()
	if err != nil {
		return nil, errors.Wrap(err, "failed to find recent users")
	}

	return toUserDomains(userModels), nil
}

// --- Mapper Functions ---

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:          data.ID,
		Username:    data.Username,
		Email:       data.Email,
		Phone:       data.Phone,
		UserType:    entity.Role(data.UserType),
		IsActive:    data.IsActive,
		LastLoginAt: data.LastLoginAt,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func toUserDomains(models []*model.UserModel) []*entity.User {
	users := make([]*entity.User, 0, len(models))
	for _, userM := range models {
		users = append(users, toUserDomain(userM))
	}

	return users
}

// fromUserDomain converts a domain User entity to a GORM UserModel.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:          data.ID,
		Username:    data.Username,
		Email:       strings.ToLower(data.Email),
		Phone:       data.Phone,
		UserType:    string(data.UserType),
		IsActive:    data.IsActive,
		LastLoginAt: data.LastLoginAt,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func duplicateUserError(err error) error {
	if strings.Contains(violatedConstraint(err), "username") {
		return repository.ErrDuplicateUsername
	}

	return repository.ErrDuplicateUser
}
