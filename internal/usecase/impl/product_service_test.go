package impl

import (
	"context"
	"testing"

	"beautymarket/internal/domain/constants"
	"beautymarket/internal/domain/entity"
	domainerrors "beautymarket/internal/domain/errors"
	"beautymarket/internal/domain/repository"
	mockRepo "beautymarket/internal/mocks/repository"
	mockSvc "beautymarket/internal/mocks/service"
	mockUsecase "beautymarket/internal/mocks/usecase"
	"beautymarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type productServiceFixtures struct {
	service   *productService
	txManager *mockRepo.MockTransactionManager
	repos     *repoMocks
	cache     *mockSvc.MockCache
	metrics   *mockSvc.MockMetricsRecorder
	tracker   *mockUsecase.MockAnalyticsTracker
}

func createTestProductService(t *testing.T) productServiceFixtures {
	repos := newRepoMocks(t)
	txManager := mockRepo.NewMockTransactionManager(t)
	cache := mockSvc.NewMockCache(t)
	metrics := mockSvc.NewMockMetricsRecorder(t)
	tracker := mockUsecase.NewMockAnalyticsTracker(t)

	svc := NewProductService(ProductServiceParams{
		TxManager:    txManager,
		ProductRepo:  repos.products,
		CategoryRepo: repos.categories,
		ReviewRepo:   repos.reviews,
		Cache:        cache,
		Metrics:      metrics,
		Tracker:      tracker,
		Config:       newTestConfig(0),
		Logger:       newDiscardLogger(),
	}).(*productService)

	return productServiceFixtures{
		service:   svc,
		txManager: txManager,
		repos:     repos,
		cache:     cache,
		metrics:   metrics,
		tracker:   tracker,
	}
}

func (fx productServiceFixtures) expectInvalidation(productID uuid.UUID, categoryChanged bool) {
	keys := []string{productDetailKey(productID), popularProductsKey}
	if categoryChanged {
		keys = append(keys, categoriesKey)
	}
	fx.cache.On("Delete", mock.Anything, keys).Return(nil).Once()
	fx.cache.On("DeletePattern", mock.Anything, productListPattern).Return(nil).Once()
}

func TestProductListKey(t *testing.T) {
	categoryID := uuid.MustParse("6f1c1a52-0d4e-4d0b-9c61-1f2b3c4d5e6f")

	tests := []struct {
		name       string
		categoryID *uuid.UUID
		search     string
		sort       string
		page       int
		want       string
	}{
		{name: "plain", page: 1, want: "products:page_1"},
		{name: "category", categoryID: &categoryID, page: 2, want: "products:category_" + categoryID.String() + ":page_2"},
		{name: "search is sanitised", search: "  Rose   Oil! ", page: 1, want: "products:search_rose_oil%21:page_1"},
		{name: "cyrillic search", search: "Крем", page: 1, want: "products:search_крем:page_1"},
		{name: "glob characters are encoded", search: "serum*", page: 1, want: "products:search_serum%2A:page_1"},
		{name: "all parts", categoryID: &categoryID, search: "serum", sort: "price_asc", page: 3,
			want: "products:category_" + categoryID.String() + ":search_serum:sort_price_asc:page_3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, productListKey(tt.categoryID, tt.search, tt.sort, tt.page))
		})
	}
}

func TestProductListKey_DistinctSearchesDoNotShareKeys(t *testing.T) {
	pairs := [][2]string{
		{"крем", "мыло"},
		{"lip-gloss", "lip_gloss"},
		{"lip-gloss", "lipgloss"},
		{"色", "香"},
	}

	for _, pair := range pairs {
		assert.NotEqual(t, productListKey(nil, pair[0], "", 1), productListKey(nil, pair[1], "", 1), "%q vs %q", pair[0], pair[1])
	}
}

func TestProductService_ListProducts_CacheMissStoresAndTracksSearch(t *testing.T) {
	fx := createTestProductService(t)
	userID := uuid.New()
	products := []*entity.Product{{ID: uuid.New(), Name: "Rose Serum", IsActive: true}}
	key := "products:search_rose_serum:page_1"

	fx.cache.On("Get", mock.Anything, key, mock.Anything).Return(false, nil)
	fx.metrics.On("CacheLookup", cacheProductList, false).Return()
	fx.repos.products.On("List", mock.Anything, mock.MatchedBy(func(f repository.ProductFilter) bool {
		return f.IsActive != nil && *f.IsActive &&
			assert.ObjectsAreEqual([]string{"rose", "serum"}, f.SearchTerms) &&
			f.Sort == entity.ProductSortNewest &&
			f.Page == 1 && f.PageSize == constants.ProductPageSize
	})).Return(products, int64(1), nil)
	fx.cache.On("Set", mock.Anything, key, mock.Anything, mock.Anything).Return(nil)
	fx.tracker.On("TrackSearch", mock.Anything, &userID, "rose serum", 1, usecase.ClientInfo{IPAddress: "10.0.0.1"}).Return()

	result, err := fx.service.ListProducts(context.Background(), &usecase.ProductListInput{
		Search: "  rose serum ",
		Viewer: usecase.Viewer{UserID: &userID, Client: usecase.ClientInfo{IPAddress: "10.0.0.1"}},
	})

	require.NoError(t, err)
	assert.Equal(t, products, result.Items)
	assert.Equal(t, int64(1), result.Total)
	assert.Equal(t, 1, result.TotalPages)
}

func TestProductService_ListProducts_CacheHit(t *testing.T) {
	fx := createTestProductService(t)
	cached := &entity.PageResult[*entity.Product]{Items: []*entity.Product{{Name: "Cached"}}, Page: 1, Total: 1}

	fx.cache.On("Get", mock.Anything, "products:sort_price_desc:page_2", mock.Anything).
		Run(func(args mock.Arguments) {
			*args.Get(2).(**entity.PageResult[*entity.Product]) = cached
		}).
		Return(true, nil)
	fx.metrics.On("CacheLookup", cacheProductList, true).Return()

	result, err := fx.service.ListProducts(context.Background(), &usecase.ProductListInput{
		Sort: entity.ProductSortPriceDesc,
		Page: 2,
	})

	require.NoError(t, err)
	assert.Equal(t, cached, result)
	fx.repos.products.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}

func TestProductService_ListProducts_PriceFilterBypassesCache(t *testing.T) {
	fx := createTestProductService(t)
	minPrice, maxPrice := 10.0, 50.0

	fx.repos.products.On("List", mock.Anything, mock.MatchedBy(func(f repository.ProductFilter) bool {
		return *f.MinPrice == 10 && *f.MaxPrice == 50
	})).Return([]*entity.Product{}, int64(0), nil)

	result, err := fx.service.ListProducts(context.Background(), &usecase.ProductListInput{MinPrice: &minPrice, MaxPrice: &maxPrice})

	require.NoError(t, err)
	assert.Empty(t, result.Items)
}

func TestProductService_ListProducts_InvalidPriceRange(t *testing.T) {
	fx := createTestProductService(t)
	minPrice, maxPrice := 50.0, 10.0

	_, err := fx.service.ListProducts(context.Background(), &usecase.ProductListInput{MinPrice: &minPrice, MaxPrice: &maxPrice})

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidPriceRange))
}

func TestProductService_GetProduct_LoadsAndTracksView(t *testing.T) {
	fx := createTestProductService(t)
	product := &entity.Product{ID: uuid.New(), CategoryID: uuid.New(), Name: "Lip Tint", IsActive: true}
	category := &entity.Category{ID: product.CategoryID, Name: "Lips"}
	reviews := []*entity.ProductReview{{Rating: 5}}
	rating := &entity.ProductRating{AverageRating: 5, ReviewCount: 1}
	related := []*entity.Product{{ID: uuid.New()}}
	client := usecase.ClientInfo{IPAddress: "10.0.0.2", UserAgent: "test"}

	fx.cache.On("Get", mock.Anything, productDetailKey(product.ID), mock.Anything).Return(false, nil)
	fx.metrics.On("CacheLookup", cacheProductDetail, false).Return()
	fx.repos.products.On("FindByID", mock.Anything, product.ID).Return(product, nil)
	fx.repos.reviews.On("ListByProduct", mock.Anything, product.ID).Return(reviews, nil)
	fx.repos.reviews.On("Rating", mock.Anything, product.ID).Return(rating, nil)
	fx.repos.products.On("FindRelated", mock.Anything, product.CategoryID, product.ID, constants.RelatedProducts).Return(related, nil)
	fx.repos.categories.On("FindByID", mock.Anything, product.CategoryID).Return(category, nil)
	fx.cache.On("Set", mock.Anything, productDetailKey(product.ID), mock.Anything, mock.Anything).Return(nil)
	fx.tracker.On("TrackProductView", mock.Anything, product.ID, (*uuid.UUID)(nil), client).Return()

	detail, err := fx.service.GetProduct(context.Background(), product.ID, usecase.Viewer{Client: client})

	require.NoError(t, err)
	assert.Equal(t, product, detail.Product)
	assert.Equal(t, reviews, detail.Reviews)
	assert.Equal(t, rating, detail.Rating)
	assert.Equal(t, related, detail.Related)
	assert.Equal(t, category, detail.Category)
}

func TestProductService_GetProduct_InactiveIsNotFound(t *testing.T) {
	fx := createTestProductService(t)
	product := &entity.Product{ID: uuid.New(), IsActive: false}

	fx.cache.On("Get", mock.Anything, productDetailKey(product.ID), mock.Anything).Return(false, nil)
	fx.metrics.On("CacheLookup", cacheProductDetail, false).Return()
	fx.repos.products.On("FindByID", mock.Anything, product.ID).Return(product, nil)

	_, err := fx.service.GetProduct(context.Background(), product.ID, usecase.Viewer{})

	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}

func TestProductService_PopularProducts_CacheErrorFallsBackToRepo(t *testing.T) {
	fx := createTestProductService(t)
	popular := []*entity.RatedProduct{{Product: entity.Product{Name: "Cushion"}}}

	fx.cache.On("Get", mock.Anything, popularProductsKey, mock.Anything).Return(false, errors.New("redis down"))
	fx.metrics.On("CacheLookup", cachePopular, false).Return()
	fx.repos.products.On("FindPopular", mock.Anything, constants.PopularProducts).Return(popular, nil)
	fx.cache.On("Set", mock.Anything, popularProductsKey, popular, mock.Anything).Return(errors.New("redis down"))

	products, err := fx.service.PopularProducts(context.Background())

	require.NoError(t, err)
	assert.Equal(t, popular, products)
}

func TestProductService_AddReview(t *testing.T) {
	fx := createTestProductService(t)
	userID := uuid.New()
	product := &entity.Product{ID: uuid.New(), Name: "Toner", IsActive: true}

	fx.repos.products.On("FindByID", mock.Anything, product.ID).Return(product, nil)
	fx.repos.reviews.On("Upsert", mock.Anything, mock.MatchedBy(func(r *entity.ProductReview) bool {
		return r.UserID == userID && r.ProductID == product.ID && r.Rating == 4 && r.Comment == "nice"
	})).Return(nil)
	fx.expectInvalidation(product.ID, false)
	fx.tracker.On("TrackActivity", mock.Anything, userID, entity.ActivityReview, "Reviewed Toner", usecase.ClientInfo{}).Return()

	review, err := fx.service.AddReview(context.Background(), userID, product.ID, &usecase.ReviewInput{Rating: 4, Comment: " nice "})

	require.NoError(t, err)
	assert.Equal(t, 4, review.Rating)
}

func TestProductService_AddReview_Errors(t *testing.T) {
	t.Run("rating out of range", func(t *testing.T) {
		fx := createTestProductService(t)

		_, err := fx.service.AddReview(context.Background(), uuid.New(), uuid.New(), &usecase.ReviewInput{Rating: 6})

		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	})

	t.Run("inactive product", func(t *testing.T) {
		fx := createTestProductService(t)
		product := &entity.Product{ID: uuid.New()}
		fx.repos.products.On("FindByID", mock.Anything, product.ID).Return(product, nil)

		_, err := fx.service.AddReview(context.Background(), uuid.New(), product.ID, &usecase.ReviewInput{Rating: 3})

		assert.True(t, errors.Is(err, domainerrors.ErrProductInactive))
	})
}

func TestProductService_CreateProduct_InactiveWithPrimaryImage(t *testing.T) {
	fx := createTestProductService(t)
	sellerID := uuid.New()
	category := &entity.Category{ID: uuid.New(), IsActive: true}
	createdID := uuid.New()

	fx.repos.categories.On("FindByID", mock.Anything, category.ID).Return(category, nil)
	fx.repos.products.On("Create", mock.Anything, mock.MatchedBy(func(p *entity.Product) bool {
		return p.SellerID == sellerID && !p.IsActive && len(p.Images) == 2 &&
			p.Images[0].IsPrimary && !p.Images[1].IsPrimary && p.Images[1].SortOrder == 1
	})).
		Run(func(args mock.Arguments) {
			args.Get(1).(*entity.Product).ID = createdID
		}).
		Return(nil)
	fx.expectInvalidation(createdID, true)

	product, err := fx.service.CreateProduct(context.Background(), sellerID, &usecase.ProductInput{
		CategoryID: category.ID,
		Name:       "Sheet Mask",
		Price:      9.999,
		Quantity:   5,
		ImageURLs:  []string{"https://cdn/a.png", "https://cdn/b.png"},
	})

	require.NoError(t, err)
	assert.Equal(t, createdID, product.ID)
	assert.Equal(t, 10.0, product.Price)
}

func TestProductService_UpdateProduct_NonOwnerGetsNotFound(t *testing.T) {
	fx := createTestProductService(t)
	fx.repos.runsTx(fx.txManager)
	category := &entity.Category{ID: uuid.New(), IsActive: true}
	product := &entity.Product{ID: uuid.New(), SellerID: uuid.New()}

	fx.repos.categories.On("FindByID", mock.Anything, category.ID).Return(category, nil)
	fx.repos.products.On("FindByID", mock.Anything, product.ID).Return(product, nil)

	_, err := fx.service.UpdateProduct(context.Background(), uuid.New(), product.ID, &usecase.ProductInput{
		CategoryID: category.ID,
		Name:       "Stolen",
		Price:      1,
	})

	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}

func TestProductService_UpdateProduct_ReplacesImagesAndInvalidatesCategory(t *testing.T) {
	fx := createTestProductService(t)
	fx.repos.runsTx(fx.txManager)
	sellerID := uuid.New()
	newCategory := &entity.Category{ID: uuid.New(), IsActive: true}
	product := &entity.Product{ID: uuid.New(), SellerID: sellerID, CategoryID: uuid.New(), IsActive: true}

	fx.repos.categories.On("FindByID", mock.Anything, newCategory.ID).Return(newCategory, nil)
	fx.repos.products.On("FindByID", mock.Anything, product.ID).Return(product, nil)
	fx.repos.products.On("Update", mock.Anything, product).Return(nil)
	fx.repos.products.On("ReplaceImages", mock.Anything, product.ID, mock.MatchedBy(func(images []entity.ProductImage) bool {
		return len(images) == 1 && images[0].ImageURL == "https://cdn/new.png" && images[0].IsPrimary
	})).Return(nil)
	fx.expectInvalidation(product.ID, true)

	updated, err := fx.service.UpdateProduct(context.Background(), sellerID, product.ID, &usecase.ProductInput{
		CategoryID: newCategory.ID,
		Name:       "Renamed",
		Price:      12,
		Quantity:   3,
		ImageURLs:  []string{"https://cdn/new.png"},
	})

	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)
	assert.True(t, updated.IsActive)
}

func TestProductService_DeleteProduct(t *testing.T) {
	fx := createTestProductService(t)
	sellerID := uuid.New()
	product := &entity.Product{ID: uuid.New(), SellerID: sellerID, IsActive: true}

	fx.repos.products.On("FindByID", mock.Anything, product.ID).Return(product, nil)
	fx.repos.products.On("Delete", mock.Anything, product.ID).Return(nil)
	fx.expectInvalidation(product.ID, true)

	err := fx.service.DeleteProduct(context.Background(), sellerID, product.ID)

	assert.NoError(t, err)
}

func TestProductService_SellerProducts(t *testing.T) {
	fx := createTestProductService(t)
	sellerID := uuid.New()
	products := []*entity.Product{{ID: uuid.New()}, {ID: uuid.New()}}

	fx.repos.products.On("List", mock.Anything, mock.MatchedBy(func(f repository.ProductFilter) bool {
		return f.SellerID != nil && *f.SellerID == sellerID && f.IsActive == nil
	})).Return(products, int64(2), nil)

	result, err := fx.service.SellerProducts(context.Background(), sellerID)

	require.NoError(t, err)
	assert.Len(t, result, 2)
}
