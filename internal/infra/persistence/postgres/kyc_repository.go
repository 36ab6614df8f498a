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

// kycRepository implements the repository.KYCRepository interface.
type kycRepository struct {
	db *gorm.DB
}

// NewKYCRepository is the constructor for kycRepository.
func NewKYCRepository(db *gorm.DB) repository.KYCRepository {
	return &kycRepository{
		db: db,
	}
}

// FindByID retrieves a KYC record with its user.
func (repo *kycRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.UserKYC, error) {
	var kycM model.UserKYCModel

	if err := repo.db.WithContext(ctx).
		Preload("User").
		Where("id = ?", id).
		First(&kycM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrKYCNotFound
		}

		return nil, errors.Wrap(err, "failed to find kyc by ID")
	}

	return toKYCDomain(&kycM), nil
}

// FindByUserID retrieves the KYC record of a user.
func (repo *kycRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.UserKYC, error) {
	var kycM model.UserKYCModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&kycM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrKYCNotFound
		}

		return nil, errors.Wrap(err, "failed to find kyc by user")
	}

	return toKYCDomain(&kycM), nil
}

// Save inserts or updates the record keyed by user.
func (repo *kycRepository) Save(ctx context.Context, kyc *entity.UserKYC) error {
	kycM := fromKYCDomain(kyc)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"id_document_url", "selfie_url", "status", "rejection_reason",
				"submitted_at", "reviewed_at", "reviewed_by", "updated_at",
			}),
		}).
		Create(kycM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("kyc owner does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to save kyc")
	}

	kyc.ID = kycM.ID
	kyc.CreatedAt = kycM.CreatedAt
	kyc.UpdatedAt = kycM.UpdatedAt

	return nil
}

// List returns one page of KYC records with their users populated, newest submissions first.
func (repo *kycRepository) List(ctx context.Context, filter repository.KYCFilter) ([]*entity.UserKYC, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.UserKYCModel{})

	if filter.Status != "" {
		query = query.Where("user_kyc.status = ?", string(filter.Status))
	}
	if filter.Search != "" {
		like := containsPattern(filter.Search)
		query = query.Where("user_kyc.user_id IN (?)", repo.db.Model(&model.UserModel{}).
			Select("id").
			Where("username ILIKE ? OR email ILIKE ?", like, like))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count kyc records")
	}

	var kycModels []*model.UserKYCModel
	if err := query.
		Preload("User").
		Order("user_kyc.submitted_at DESC NULLS LAST").
		Offset(filter.Offset()).
		Limit(filter.PageSize).
		Find(&kycModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list kyc records")
	}

	records := make([]*entity.UserKYC, 0, len(kycModels))
	for _, kycM := range kycModels {
		records = append(records, toKYCDomain(kycM))
	}

	return records, total, nil
}

// --- Mapper Functions ---

func toKYCDomain(data *model.UserKYCModel) *entity.UserKYC {
	if data == nil {
		return nil
	}

	return &entity.UserKYC{
		ID:              data.ID,
		UserID:          data.UserID,
		IDDocumentURL:   data.IDDocumentURL,
		SelfieURL:       data.SelfieURL,
		Status:          entity.KYCStatus(data.Status),
		RejectionReason: data.RejectionReason,
		SubmittedAt:     data.SubmittedAt,
		ReviewedAt:      data.ReviewedAt,
		ReviewedBy:      data.ReviewedBy,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
		User:            toUserDomain(data.User),
	}
}

func fromKYCDomain(data *entity.UserKYC) *model.UserKYCModel {
	return &model.UserKYCModel{
		ID:              data.ID,
		UserID:          data.UserID,
		IDDocumentURL:   data.IDDocumentURL,
		SelfieURL:       data.SelfieURL,
		Status:          string(data.Status),
		RejectionReason: data.RejectionReason,
		SubmittedAt:     data.SubmittedAt,
		ReviewedAt:      data.ReviewedAt,
		ReviewedBy:      data.ReviewedBy,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}
