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

// productRepository implements the repository.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{
		db: db,
	}
}

// ratingRow is the per-product review aggregate used by the popular and featured listings.
type ratingRow struct {
	ProductID     uuid.UUID
	AverageRating float64
	ReviewCount   int64
}

func orderedImages(db *gorm.DB) *gorm.DB {
	return db.Order("sort_order ASC")
}

// Create inserts the product together with its images.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrCategoryNotFound.WrapMessage("invalid category or seller reference")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("price and quantity must not be negative")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	created := toProductDomain(productM)
	product.ID = created.ID
	product.Images = created.Images
	product.CreatedAt = created.CreatedAt
	product.UpdatedAt = created.UpdatedAt

	return nil
}

// Update saves the product's scalar fields.
func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", product.ID).
		Updates(map[string]any{
			"category_id": product.CategoryID,
			"name":        product.Name,
			"description": product.Description,
			"price":       product.Price,
			"quantity":    product.Quantity,
			"is_active":   product.IsActive,
		})

	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrCategoryNotFound.WrapMessage("invalid category reference")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update product")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// ReplaceImages swaps the product's images for the given set.
func (repo *productRepository) ReplaceImages(ctx context.Context, productID uuid.UUID, images []entity.ProductImage) error {
	db := repo.db.WithContext(ctx)

	if err := db.Where("product_id = ?", productID).Delete(&model.ProductImageModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete product images")
	}

	if len(images) == 0 {
		return nil
	}

	imageModels := make([]*model.ProductImageModel, 0, len(images))
	for _, img := range images {
		imageM := fromProductImageDomain(img)
		imageM.ProductID = productID
		imageModels = append(imageModels, imageM)
	}

	if err := db.Create(&imageModels).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create product images")
	}

	return nil
}

// Delete removes a product and, by cascade, its images and cart lines.
func (repo *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ProductModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete product")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// FindByID returns the product with images loaded.
func (repo *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel

	if err := repo.db.WithContext(ctx).
		Preload("Images", orderedImages).
		Where("id = ?", id).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by ID")
	}

	return toProductDomain(&productM), nil
}

// List returns one page of products matching filter and the total count.
func (repo *productRepository) List(ctx context.Context, filter repository.ProductFilter) ([]*entity.Product, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.ProductModel{})

	if filter.CategoryID != nil {
		query = query.Where("products.category_id = ?", *filter.CategoryID)
	}
	if filter.SellerID != nil {
		query = query.Where("products.seller_id = ?", *filter.SellerID)
	}
	if filter.IsActive != nil {
		query = query.Where("products.is_active = ?", *filter.IsActive)
	}
	if filter.MinPrice != nil {
		query = query.Where("products.price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("products.price <= ?", *filter.MaxPrice)
	}
	if len(filter.SearchTerms) > 0 && filter.MatchSeller {
		query = query.Joins("JOIN users ON users.id = products.seller_id")
	}
	for _, term := range filter.SearchTerms {
		like := containsPattern(term)
		if filter.MatchSeller {
			query = query.Where("(products.name ILIKE ? OR products.description ILIKE ? OR users.username ILIKE ?)", like, like, like)
		} else {
			query = query.Where("(products.name ILIKE ? OR products.description ILIKE ?)", like, like)
		}
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count products")
	}

	switch filter.Sort {
	case entity.ProductSortPriceAsc:
		query = query.Order("products.price ASC").Order("products.created_at DESC")
	case entity.ProductSortPriceDesc:
		query = query.Order("products.price DESC").Order("products.created_at DESC")
	case entity.ProductSortRating:
		query = query.
			Joins("LEFT JOIN (?) AS ratings ON ratings.product_id = products.id",
				repo.db.Model(&model.ProductReviewModel{}).
					Select("product_id, AVG(rating) AS average_rating").
					Group("product_id")).
			Order("COALESCE(ratings.average_rating, 0) DESC").
			Order("products.created_at DESC")
	default:
		query = query.Order("products.created_at DESC")
	}

	var productModels []*model.ProductModel
	if err := query.
		Select("products.*").
		Preload("Images", orderedImages).
		Offset(filter.Offset()).
		Limit(filter.PageSize).
		Find(&productModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list products")
	}

	return toProductDomains(productModels), total, nil
}

// FindRelated returns active products in the same category, excluding one product.
func (repo *productRepository) FindRelated(ctx context.Context, categoryID, excludeID uuid.UUID, limit int) ([]*entity.Product, error) {
	var productModels []*model.ProductModel

	if err := repo.db.WithContext(ctx).
		Preload("Images", orderedImages).
		Where("category_id = ? AND id <> ? AND is_active = ?", categoryID, excludeID, true).
		Order("created_at DESC").
		Limit(limit).
		Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find related products")
	}

	return toProductDomains(productModels), nil
}

// FindPopular returns active reviewed products by average rating, then review count.
func (repo *productRepository) FindPopular(ctx context.Context, limit int) ([]*entity.RatedProduct, error) {
	var rows []ratingRow

	if err := repo.db.WithContext(ctx).
		Table("product_reviews").
		Select("product_reviews.product_id, AVG(product_reviews.rating) AS average_rating, COUNT(product_reviews.id) AS review_count").
		Joins("JOIN products ON products.id = product_reviews.product_id AND products.is_active = ?", true).
		Group("product_reviews.product_id").
		Order("average_rating DESC").
		Order("review_count DESC").
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find popular products")
	}

	return repo.attachProducts(ctx, rows)
}

// FindFeatured returns active products with enough good reviews, newest first.
func (repo *productRepository) FindFeatured(ctx context.Context, minReviews int, minRating float64, limit int) ([]*entity.RatedProduct, error) {
	var rows []ratingRow

	if err := repo.db.WithContext(ctx).
		Table("product_reviews").
		Select("product_reviews.product_id, AVG(product_reviews.rating) AS average_rating, COUNT(product_reviews.id) AS review_count").
		Joins("JOIN products ON products.id = product_reviews.product_id AND products.is_active = ?", true).
		Group("product_reviews.product_id, products.created_at").
		Having("COUNT(product_reviews.id) >= ? AND AVG(product_reviews.rating) >= ?", minReviews, minRating).
		Order("products.created_at DESC").
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find featured products")
	}

	return repo.attachProducts(ctx, rows)
}

// attachProducts loads the products named by rows, keeping the order of rows.
func (repo *productRepository) attachProducts(ctx context.Context, rows []ratingRow) ([]*entity.RatedProduct, error) {
	if len(rows) == 0 {
		return []*entity.RatedProduct{}, nil
	}

	ids := make([]uuid.UUID, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ProductID)
	}

	var productModels []*model.ProductModel
	if err := repo.db.WithContext(ctx).
		Preload("Images", orderedImages).
		Where("id IN ?", ids).
		Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load rated products")
	}

	byID := make(map[uuid.UUID]*model.ProductModel, len(productModels))
	for _, productM := range productModels {
		byID[productM.ID] = productM
	}

	rated := make([]*entity.RatedProduct, 0, len(rows))
	for _, row := range rows {
		productM, ok := byID[row.ProductID]
		if !ok {
			continue
		}
		rated = append(rated, &entity.RatedProduct{
			Product: *toProductDomain(productM),
			ProductRating: entity.ProductRating{
				AverageRating: row.AverageRating,
				ReviewCount:   row.ReviewCount,
			},
		})
	}

	return rated, nil
}

// LockForUpdate loads the products with a row lock for the rest of the transaction.
func (repo *productRepository) LockForUpdate(ctx context.Context, ids []uuid.UUID) ([]*entity.Product, error) {
	if len(ids) == 0 {
		return []*entity.Product{}, nil
	}

	var productModels []*model.ProductModel

	// Locks are taken in id order.
	if err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id IN ?", ids).
		Order("id ASC").
		Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to lock products")
	}

	return toProductDomains(productModels), nil
}

// AdjustStock adds delta (may be negative) to the product quantity.
func (repo *productRepository) AdjustStock(ctx context.Context, id uuid.UUID, delta int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", id).
		UpdateColumn("quantity", gorm.Expr("quantity + ?", delta))

	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrInsufficientStock
		}

		return errors.Wrap(result.Error, "failed to adjust stock")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// SetActive approves or withdraws a product.
func (repo *productRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", id).
		Update("is_active", active)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to set product active flag")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// Count returns the number of products.
func (repo *productRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := repo.db.WithContext(ctx).Model(&model.ProductModel{}).Count(&total).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count products")
	}

	return total, nil
}

// --- Mapper Functions ---

func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	images := make([]entity.ProductImage, 0, len(data.Images))
	for i := range data.Images {
		images = append(images, toProductImageDomain(&data.Images[i]))
	}

	return &entity.Product{
		ID:          data.ID,
		SellerID:    data.SellerID,
		CategoryID:  data.CategoryID,
		Name:        data.Name,
		Description: data.Description,
		Price:       data.Price,
		Quantity:    data.Quantity,
		IsActive:    data.IsActive,
		Images:      images,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func toProductDomains(models []*model.ProductModel) []*entity.Product {
	products := make([]*entity.Product, 0, len(models))
	for _, productM := range models {
		products = append(products, toProductDomain(productM))
	}

	return products
}

func fromProductDomain(data *entity.Product) *model.ProductModel {
	images := make([]model.ProductImageModel, 0, len(data.Images))
	for _, img := range data.Images {
		images = append(images, *fromProductImageDomain(img))
	}

	return &model.ProductModel{
		ID:          data.ID,
		SellerID:    data.SellerID,
		CategoryID:  data.CategoryID,
		Name:        data.Name,
		Description: data.Description,
		Price:       data.Price,
		Quantity:    data.Quantity,
		IsActive:    data.IsActive,
		Images:      images,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func toProductImageDomain(data *model.ProductImageModel) entity.ProductImage {
	return entity.ProductImage{
		ID:        data.ID,
		ProductID: data.ProductID,
		ImageURL:  data.ImageURL,
		IsPrimary: data.IsPrimary,
		SortOrder: data.SortOrder,
		CreatedAt: data.CreatedAt,
	}
}

func fromProductImageDomain(data entity.ProductImage) *model.ProductImageModel {
	return &model.ProductImageModel{
		ID:        data.ID,
		ProductID: data.ProductID,
		ImageURL:  data.ImageURL,
		IsPrimary: data.IsPrimary,
		SortOrder: data.SortOrder,
		CreatedAt: data.CreatedAt,
	}
}
