package repository

import (
	"context"

	"beautymarket/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	// ErrProductNotFound is returned when a product does not exist.
	ErrProductNotFound = errors.New("product not found")
	// ErrCategoryNotFound is returned when a category does not exist.
	ErrCategoryNotFound = errors.New("category not found")
	// ErrDuplicateCategory is returned when a category name is already used.
	ErrDuplicateCategory = errors.New("category already exists")
)

// ProductFilter narrows a product listing. Zero values mean "no constraint".
type ProductFilter struct {
	CategoryID  *uuid.UUID
	SellerID    *uuid.UUID
	IsActive    *bool
	SearchTerms []string
	// MatchSeller also matches search terms against the seller's username.
	MatchSeller bool
	MinPrice    *float64
	MaxPrice    *float64
	Sort        entity.ProductSort
	entity.Pagination
}

// ProductRepository persists products and their images.
type ProductRepository interface {
	// Create inserts the product together with its images.
	Create(ctx context.Context, product *entity.Product) error

	// Update saves the product's scalar fields.
	Update(ctx context.Context, product *entity.Product) error

	// ReplaceImages swaps the product's images for the given set.
	ReplaceImages(ctx context.Context, productID uuid.UUID, images []entity.ProductImage) error

	Delete(ctx context.Context, id uuid.UUID) error

	// FindByID returns the product with images loaded.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// List returns one page of products matching filter and the total count.
	List(ctx context.Context, filter ProductFilter) ([]*entity.Product, int64, error)

	// FindRelated returns active products in the same category, excluding one product.
	FindRelated(ctx context.Context, categoryID, excludeID uuid.UUID, limit int) ([]*entity.Product, error)

	// FindPopular returns active reviewed products by average rating, then review count.
	FindPopular(ctx context.Context, limit int) ([]*entity.RatedProduct, error)

	// FindFeatured returns active products with enough good reviews, newest first.
	FindFeatured(ctx context.Context, minReviews int, minRating float64, limit int) ([]*entity.RatedProduct, error)

	// LockForUpdate loads the products with a row lock for the rest of the transaction.
	LockForUpdate(ctx context.Context, ids []uuid.UUID) ([]*entity.Product, error)

	// AdjustStock adds delta (may be negative) to the product quantity.
	AdjustStock(ctx context.Context, id uuid.UUID, delta int) error

	SetActive(ctx context.Context, id uuid.UUID, active bool) error

	Count(ctx context.Context) (int64, error)
}

// CategoryRepository persists catalog categories.
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	Update(ctx context.Context, category *entity.Category) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)

	// ListActive returns active categories ordered by name.
	ListActive(ctx context.Context) ([]*entity.Category, error)

	// ListWithCounts returns active categories with their active product counts.
	ListWithCounts(ctx context.Context) ([]*entity.CategoryWithCount, error)
}

// ReviewRepository persists product reviews.
type ReviewRepository interface {
	// Upsert creates or replaces the review of (product, user).
	Upsert(ctx context.Context, review *entity.ProductReview) error

	// ListByProduct returns reviews newest first.
	ListByProduct(ctx context.Context, productID uuid.UUID) ([]*entity.ProductReview, error)

	Rating(ctx context.Context, productID uuid.UUID) (*entity.ProductRating, error)
}
