package postgres

import (
	"context"

	"beautymarket/internal/domain/entity"
	domainerrors "beautymarket/internal/domain/errors"
	"beautymarket/internal/domain/repository"
	"beautymarket/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// profileRepository implements the repository.ProfileRepository interface.
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{
		db: db,
	}
}

// FindProfile retrieves the profile of a user.
func (repo *profileRepository) FindProfile(ctx context.Context, userID uuid.UUID) (*entity.UserProfile, error) {
	var profileM model.UserProfileModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile")
	}

	return toProfileDomain(&profileM), nil
}

// SaveProfile inserts the profile or overwrites the existing one.
func (repo *profileRepository) SaveProfile(ctx context.Context, profile *entity.UserProfile) error {
	profileM := fromProfileDomain(profile)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"display_name", "bio", "avatar_url", "date_of_birth", "updated_at"}),
		}).
		Create(profileM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("profile owner does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to save profile")
	}

	profile.CreatedAt = profileM.CreatedAt
	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

// FindVerification retrieves the age verification state of a user.
func (repo *profileRepository) FindVerification(ctx context.Context, userID uuid.UUID) (*entity.UserVerification, error) {
	var verificationM model.UserVerificationModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&verificationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVerificationNotFound
		}

		return nil, errors.Wrap(err, "failed to find verification")
	}

	return toVerificationDomain(&verificationM), nil
}

// SaveVerification inserts the verification row or overwrites the existing one.
func (repo *profileRepository) SaveVerification(ctx context.Context, verification *entity.UserVerification) error {
	verificationM := fromVerificationDomain(verification)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"age_verified", "age_verified_at", "verification_token", "token_expires_at", "updated_at",
			}),
		}).
		Create(verificationM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("verification owner does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to save verification")
	}

	verification.CreatedAt = verificationM.CreatedAt
	verification.UpdatedAt = verificationM.UpdatedAt

	return nil
}

// --- Mapper Functions ---

func toProfileDomain(data *model.UserProfileModel) *entity.UserProfile {
	if data == nil {
		return nil
	}

	return &entity.UserProfile{
		UserID:      data.UserID,
		DisplayName: data.DisplayName,
		Bio:         data.Bio,
		AvatarURL:   data.AvatarURL,
		DateOfBirth: data.DateOfBirth,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromProfileDomain(data *entity.UserProfile) *model.UserProfileModel {
	return &model.UserProfileModel{
		UserID:      data.UserID,
		DisplayName: data.DisplayName,
		Bio:         data.Bio,
		AvatarURL:   data.AvatarURL,
		DateOfBirth: data.DateOfBirth,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func toVerificationDomain(data *model.UserVerificationModel) *entity.UserVerification {
	if data == nil {
		return nil
	}

	return &entity.UserVerification{
		UserID:            data.UserID,
		AgeVerified:       data.AgeVerified,
		AgeVerifiedAt:     data.AgeVerifiedAt,
		VerificationToken: data.VerificationToken,
		TokenExpiresAt:    data.TokenExpiresAt,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}

func fromVerificationDomain(data *entity.UserVerification) *model.UserVerificationModel {
	return &model.UserVerificationModel{
		UserID:            data.UserID,
		AgeVerified:       data.AgeVerified,
		AgeVerifiedAt:     data.AgeVerifiedAt,
		VerificationToken: data.VerificationToken,
		TokenExpiresAt:    data.TokenExpiresAt,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}
