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

// reviewRepository implements the repository.ReviewRepository interface.
type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository is the constructor for reviewRepository.
func NewReviewRepository(db *gorm.DB) repository.ReviewRepository {
	return &reviewRepository{
		db: db,
	}
}

// Upsert creates or replaces the review of (product, user).
func (repo *reviewRepository) Upsert(ctx context.Context, review *entity.ProductReview) error {
	reviewM := fromReviewDomain(review)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "product_id"}, {Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"rating", "comment", "updated_at"}),
		}).
		Create(reviewM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrProductNotFound
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("rating must be between 1 and 5")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to save review")
	}

	review.ID = reviewM.ID
	review.CreatedAt = reviewM.CreatedAt
	review.UpdatedAt = reviewM.UpdatedAt

	return nil
}

// ListByProduct returns reviews newest first.
func (repo *reviewRepository) ListByProduct(ctx context.Context, productID uuid.UUID) ([]*entity.ProductReview, error) {
	var reviewModels []*model.ProductReviewModel

	if err := repo.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("created_at DESC").
		Find(&reviewModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	reviews := make([]*entity.ProductReview, 0, len(reviewModels))
	for _, reviewM := range reviewModels {
		reviews = append(reviews, toReviewDomain(reviewM))
	}

	return reviews, nil
}

// Rating returns the average rating and the review count of a product.
func (repo *reviewRepository) Rating(ctx context.Context, productID uuid.UUID) (*entity.ProductRating, error) {
	var rating entity.ProductRating

	if err := repo.db.WithContext(ctx).
		Model(&model.ProductReviewModel{}).
		Select("COALESCE(AVG(rating), 0) AS average_rating, COUNT(id) AS review_count").
		Where("product_id = ?", productID).
		Scan(&rating).Error; err != nil {
		return nil, errors.Wrap(err, "failed to compute product rating")
	}

	return &rating, nil
}

func toReviewDomain(data *model.ProductReviewModel) *entity.ProductReview {
	return &entity.ProductReview{
		ID:        data.ID,
		ProductID: data.ProductID,
		UserID:    data.UserID,
		Rating:    data.Rating,
		Comment:   data.Comment,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromReviewDomain(data *entity.ProductReview) *model.ProductReviewModel {
	return &model.ProductReviewModel{
		ID:        data.ID,
		ProductID: data.ProductID,
		UserID:    data.UserID,
		Rating:    data.Rating,
		Comment:   data.Comment,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
