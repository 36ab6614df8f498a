package impl

import (
	"context"
	"log/slog"
	"strings"

	"beautymarket/config"
	deliverycontext "beautymarket/internal/delivery/context"
	"beautymarket/internal/domain/constants"
	"beautymarket/internal/domain/entity"
	domainerrors "beautymarket/internal/domain/errors"
	"beautymarket/internal/domain/repository"
	"beautymarket/internal/domain/service"
	"beautymarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type productService struct {
	txManager    repository.TransactionManager
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	reviewRepo   repository.ReviewRepository
	cache        productCache
	ttl          config.CacheConfig
	tracker      usecase.AnalyticsTracker
	logger       *slog.Logger
}

// ProductServiceParams holds dependencies for productService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	ProductRepo  repository.ProductRepository
	CategoryRepo repository.CategoryRepository
	ReviewRepo   repository.ReviewRepository
	Cache        service.Cache
	Metrics      service.MetricsRecorder
	Tracker      usecase.AnalyticsTracker
	Config       *config.Config
	Logger       *slog.Logger
}

// NewProductService creates the ProductUsecase.
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		txManager:    params.TxManager,
		productRepo:  params.ProductRepo,
		categoryRepo: params.CategoryRepo,
		reviewRepo:   params.ReviewRepo,
		cache: productCache{
			cache:   params.Cache,
			metrics: params.Metrics,
			logger:  params.Logger,
		},
		ttl:     params.Config.Cache,
		tracker: params.Tracker,
		logger:  params.Logger,
	}
}

func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func activeOnly() *bool {
	active := true

	return &active
}

// Home returns the newest active products and the active categories.
func (srv *productService) Home(ctx context.Context) (*usecase.HomeOutput, error) {
	products, _, err := srv.productRepo.List(ctx, repository.ProductFilter{
		IsActive:   activeOnly(),
		Sort:       entity.ProductSortNewest,
		Pagination: entity.Pagination{Page: 1, PageSize: constants.HomeProductCount},
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list home products")
	}

	categories, err := srv.categoryRepo.ListActive(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return &usecase.HomeOutput{Products: products, Categories: categories}, nil
}

// ListProducts returns one page of active products. Listings without a price filter are cached.
func (srv *productService) ListProducts(ctx context.Context, input *usecase.ProductListInput) (*entity.PageResult[*entity.Product], error) {
	if input.MinPrice != nil && *input.MinPrice < 0 || input.MaxPrice != nil && *input.MaxPrice < 0 {
		return nil, errors.Wrap(domainerrors.ErrInvalidPriceRange, "price must not be negative")
	}
	if input.MinPrice != nil && input.MaxPrice != nil && *input.MinPrice > *input.MaxPrice {
		return nil, errors.Wrap(domainerrors.ErrInvalidPriceRange, "min_price is greater than max_price")
	}

	search := strings.TrimSpace(input.Search)
	page := entity.NewPagination(input.Page, constants.ProductPageSize, constants.ProductPageSize)
	sort := entity.ParseProductSort(string(input.Sort))
	cacheable := input.MinPrice == nil && input.MaxPrice == nil

	var sortPart string
	if input.Sort != "" {
		sortPart = string(sort)
	}
	key := productListKey(input.CategoryID, search, sortPart, page.Page)

	var result *entity.PageResult[*entity.Product]
	if cacheable && srv.cache.get(ctx, cacheProductList, key, &result) && result != nil {
		srv.trackSearch(ctx, input.Viewer, search, result.Total)

		return result, nil
	}

	products, total, err := srv.productRepo.List(ctx, repository.ProductFilter{
		CategoryID:  input.CategoryID,
		IsActive:    activeOnly(),
		SearchTerms: entity.SearchTerms(search),
		MinPrice:    input.MinPrice,
		MaxPrice:    input.MaxPrice,
		Sort:        sort,
		Pagination:  page,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	result = entity.NewPageResult(products, page, total)
	if cacheable {
		srv.cache.set(ctx, key, result, srv.ttl.ProductListTTL)
	}
	srv.trackSearch(ctx, input.Viewer, search, total)

	return result, nil
}

func (srv *productService) trackSearch(ctx context.Context, viewer usecase.Viewer, search string, total int64) {
	if search == "" {
		return
	}
	srv.tracker.TrackSearch(ctx, viewer.UserID, search, int(total), viewer.Client)
}

// GetProduct returns an active product with its reviews, rating and related products.
func (srv *productService) GetProduct(ctx context.Context, productID uuid.UUID, viewer usecase.Viewer) (*usecase.ProductDetail, error) {
	key := productDetailKey(productID)

	var detail *usecase.ProductDetail
	if !srv.cache.get(ctx, cacheProductDetail, key, &detail) || detail == nil {
		loaded, err := srv.loadProductDetail(ctx, productID)
		if err != nil {
			return nil, err
		}
		detail = loaded
		srv.cache.set(ctx, key, detail, srv.ttl.ProductDetailTTL)
	}

	srv.tracker.TrackProductView(ctx, productID, viewer.UserID, viewer.Client)

	return detail, nil
}

func (srv *productService) loadProductDetail(ctx context.Context, productID uuid.UUID) (*usecase.ProductDetail, error) {
	product, err := srv.activeProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	reviews, err := srv.reviewRepo.ListByProduct(ctx, productID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	rating, err := srv.reviewRepo.Rating(ctx, productID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load rating")
	}

	related, err := srv.productRepo.FindRelated(ctx, product.CategoryID, product.ID, constants.RelatedProducts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find related products")
	}

	detail := &usecase.ProductDetail{
		Product: product,
		Reviews: reviews,
		Rating:  rating,
		Related: related,
	}

	category, err := srv.categoryRepo.FindByID(ctx, product.CategoryID)
	switch {
	case err == nil:
		detail.Category = category
	case errors.Is(err, repository.ErrCategoryNotFound):
	default:
		return nil, errors.Wrap(err, "failed to find category")
	}

	return detail, nil
}

// activeProduct hides inactive products behind a not-found error.
func (srv *productService) activeProduct(ctx context.Context, productID uuid.UUID) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProductNotFound, "product not found")
		}

		return nil, errors.Wrap(err, "failed to find product")
	}
	if !product.IsActive {
		return nil, errors.Wrap(domainerrors.ErrProductNotFound, "product is not active")
	}

	return product, nil
}

func (srv *productService) PopularProducts(ctx context.Context) ([]*entity.RatedProduct, error) {
	var products []*entity.RatedProduct
	if srv.cache.get(ctx, cachePopular, popularProductsKey, &products) {
		return products, nil
	}

	products, err := srv.productRepo.FindPopular(ctx, constants.PopularProducts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find popular products")
	}
	srv.cache.set(ctx, popularProductsKey, products, srv.ttl.PopularTTL)

	return products, nil
}

func (srv *productService) FeaturedProducts(ctx context.Context) ([]*entity.RatedProduct, error) {
	products, err := srv.productRepo.FindFeatured(ctx, constants.FeaturedMinReview, constants.FeaturedMinRating, constants.FeaturedProducts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find featured products")
	}

	return products, nil
}

func (srv *productService) Categories(ctx context.Context) ([]*entity.CategoryWithCount, error) {
	var categories []*entity.CategoryWithCount
	if srv.cache.get(ctx, cacheCategories, categoriesKey, &categories) {
		return categories, nil
	}

	categories, err := srv.categoryRepo.ListWithCounts(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}
	srv.cache.set(ctx, categoriesKey, categories, srv.ttl.CategoryTTL)

	return categories, nil
}

// AddReview creates or replaces the user's review of an active product.
func (srv *productService) AddReview(ctx context.Context, userID, productID uuid.UUID, input *usecase.ReviewInput) (*entity.ProductReview, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("rating must be between 1 and 5")
	}

	product, err := srv.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProductNotFound, "product not found")
		}

		return nil, errors.Wrap(err, "failed to find product")
	}
	if !product.IsActive {
		return nil, errors.Wrap(domainerrors.ErrProductInactive, "cannot review an inactive product")
	}

	review := &entity.ProductReview{
		ProductID: productID,
		UserID:    userID,
		Rating:    input.Rating,
		Comment:   strings.TrimSpace(input.Comment),
	}
	if err := srv.reviewRepo.Upsert(ctx, review); err != nil {
		return nil, errors.Wrap(err, "failed to save review")
	}

	srv.cache.invalidateProduct(ctx, productID, false)
	srv.tracker.TrackActivity(ctx, userID, entity.ActivityReview, "Reviewed "+product.Name, usecase.ClientInfo{})

	return review, nil
}

// SellerProducts lists the seller's own products, newest first, including inactive ones.
func (srv *productService) SellerProducts(ctx context.Context, sellerID uuid.UUID) ([]*entity.Product, error) {
	products, _, err := srv.productRepo.List(ctx, repository.ProductFilter{
		SellerID:   &sellerID,
		Sort:       entity.ProductSortNewest,
		Pagination: entity.Pagination{Page: 1, PageSize: constants.SellerProducts},
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list seller products")
	}

	return products, nil
}

// CreateProduct stores a new inactive product awaiting admin approval.
func (srv *productService) CreateProduct(ctx context.Context, sellerID uuid.UUID, input *usecase.ProductInput) (*entity.Product, error) {
	if err := srv.validateProductInput(ctx, input); err != nil {
		return nil, err
	}

	product := &entity.Product{
		SellerID:    sellerID,
		CategoryID:  input.CategoryID,
		Name:        strings.TrimSpace(input.Name),
		Description: strings.TrimSpace(input.Description),
		Price:       entity.RoundMoney(input.Price),
		Quantity:    input.Quantity,
		IsActive:    false,
		Images:      entity.BuildProductImages(uuid.Nil, input.ImageURLs),
	}
	if err := srv.productRepo.Create(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}

	srv.cache.invalidateProduct(ctx, product.ID, true)
	srv.log(ctx).Info("Product created", slog.Any("productID", product.ID), slog.Any("sellerID", sellerID))

	return product, nil
}

// UpdateProduct edits one of the seller's products and replaces its images.
func (srv *productService) UpdateProduct(ctx context.Context, sellerID, productID uuid.UUID, input *usecase.ProductInput) (*entity.Product, error) {
	if err := srv.validateProductInput(ctx, input); err != nil {
		return nil, err
	}

	var (
		product         *entity.Product
		categoryChanged bool
	)
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.ProductRepo()

		owned, err := ownedProduct(ctx, productRepo, sellerID, productID)
		if err != nil {
			return err
		}

		categoryChanged = owned.CategoryID != input.CategoryID
		owned.CategoryID = input.CategoryID
		owned.Name = strings.TrimSpace(input.Name)
		owned.Description = strings.TrimSpace(input.Description)
		owned.Price = entity.RoundMoney(input.Price)
		owned.Quantity = input.Quantity

		if err := productRepo.Update(ctx, owned); err != nil {
			return errors.Wrap(err, "failed to update product")
		}

		images := entity.BuildProductImages(productID, input.ImageURLs)
		if err := productRepo.ReplaceImages(ctx, productID, images); err != nil {
			return errors.Wrap(err, "failed to replace product images")
		}
		owned.Images = images
		product = owned

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute update product transaction")
	}

	srv.cache.invalidateProduct(ctx, productID, categoryChanged)

	return product, nil
}

// DeleteProduct removes one of the seller's products.
func (srv *productService) DeleteProduct(ctx context.Context, sellerID, productID uuid.UUID) error {
	product, err := ownedProduct(ctx, srv.productRepo, sellerID, productID)
	if err != nil {
		return err
	}

	if err := srv.productRepo.Delete(ctx, productID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return errors.Wrap(domainerrors.ErrProductNotFound, "product not found")
		}

		return errors.Wrap(err, "failed to delete product")
	}

	srv.cache.invalidateProduct(ctx, productID, product.IsActive)
	srv.log(ctx).Info("Product deleted", slog.Any("productID", productID), slog.Any("sellerID", sellerID))

	return nil
}

func (srv *productService) validateProductInput(ctx context.Context, input *usecase.ProductInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return domainerrors.ErrValidationFailed.WrapMessage("name is required")
	}
	if input.Price <= 0 {
		return domainerrors.ErrValidationFailed.WrapMessage("price must be positive")
	}
	if input.Quantity < 0 {
		return domainerrors.ErrValidationFailed.WrapMessage("quantity must not be negative")
	}

	category, err := srv.categoryRepo.FindByID(ctx, input.CategoryID)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return errors.Wrap(domainerrors.ErrCategoryNotFound, "category not found")
		}

		return errors.Wrap(err, "failed to find category")
	}
	if !category.IsActive {
		return errors.Wrap(domainerrors.ErrCategoryNotFound, "category is not active")
	}

	return nil
}

// ownedProduct hides products of other sellers behind a not-found error.
func ownedProduct(ctx context.Context, productRepo repository.ProductRepository, sellerID, productID uuid.UUID) (*entity.Product, error) {
	product, err := productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProductNotFound, "product not found")
		}

		return nil, errors.Wrap(err, "failed to find product")
	}
	if product.SellerID != sellerID {
		return nil, errors.Wrap(domainerrors.ErrProductNotFound, "product belongs to another seller")
	}

	return product, nil
}
