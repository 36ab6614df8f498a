package usecase

import (
	"context"

	"beautymarket/internal/domain/entity"

	"github.com/google/uuid"
)

// ProductUsecase defines the catalog, review and seller operations.
type ProductUsecase interface {
	Home(ctx context.Context) (*HomeOutput, error)
	ListProducts(ctx context.Context, input *ProductListInput) (*entity.PageResult[*entity.Product], error)
	GetProduct(ctx context.Context, productID uuid.UUID, viewer Viewer) (*ProductDetail, error)
	PopularProducts(ctx context.Context) ([]*entity.RatedProduct, error)
	FeaturedProducts(ctx context.Context) ([]*entity.RatedProduct, error)
	Categories(ctx context.Context) ([]*entity.CategoryWithCount, error)
	AddReview(ctx context.Context, userID, productID uuid.UUID, input *ReviewInput) (*entity.ProductReview, error)

	SellerProducts(ctx context.Context, sellerID uuid.UUID) ([]*entity.Product, error)
	CreateProduct(ctx context.Context, sellerID uuid.UUID, input *ProductInput) (*entity.Product, error)
	UpdateProduct(ctx context.Context, sellerID, productID uuid.UUID, input *ProductInput) (*entity.Product, error)
	DeleteProduct(ctx context.Context, sellerID, productID uuid.UUID) error
}

// Viewer identifies who is looking at a page, for tracking only.
type Viewer struct {
	UserID *uuid.UUID
	Client ClientInfo
}

// --- Input DTOs ---

// ProductListInput holds the catalog filters.
type ProductListInput struct {
	CategoryID *uuid.UUID
	Search     string
	MinPrice   *float64
	MaxPrice   *float64
	Sort       entity.ProductSort
	Page       int
	Viewer     Viewer
}

// ReviewInput defines a review submission.
type ReviewInput struct {
	Rating  int
	Comment string
}

// ProductInput defines the seller-editable product fields.
type ProductInput struct {
	CategoryID  uuid.UUID
	Name        string
	Description string
	Price       float64
	Quantity    int
	ImageURLs   []string
}

// --- Output DTOs ---

// HomeOutput is the storefront landing data.
type HomeOutput struct {
	Products   []*entity.Product  `json:"products"`
	Categories []*entity.Category `json:"categories"`
}

// ProductDetail is a product with its reviews and related products.
type ProductDetail struct {
	Product  *entity.Product         `json:"product"`
	Reviews  []*entity.ProductReview `json:"reviews"`
	Rating   *entity.ProductRating   `json:"rating"`
	Related  []*entity.Product       `json:"related"`
	Category *entity.Category        `json:"category,omitempty"`
}
