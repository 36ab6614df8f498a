package handler

import (
	"net/http"
	"testing"

	domainerrors "beautymarket/internal/domain/errors"
	"beautymarket/internal/domain/entity"
	mockUsecase "beautymarket/internal/mocks/usecase"
	"beautymarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProductHandler_ListProducts(t *testing.T) {
	categoryID := uuid.New()

	t.Run("filters are passed through", func(t *testing.T) {
		productUC := mockUsecase.NewMockProductUsecase(t)
		productUC.On("ListProducts", mock.Anything, mock.MatchedBy(func(in *usecase.ProductListInput) bool {
			return in.CategoryID != nil && *in.CategoryID == categoryID &&
				in.Search == "serum" &&
				in.MinPrice != nil && *in.MinPrice == 10 &&
				in.MaxPrice == nil &&
				in.Sort == entity.ProductSortPriceAsc &&
				in.Page == 2 &&
				in.Viewer.UserID == nil
		})).Return(&entity.PageResult[*entity.Product]{
			Items: []*entity.Product{{ID: uuid.New(), Name: "Serum"}},
			Page:  2,
			Total: 21,
		}, nil)

		c, rec := newTestContext(testRequest{
			method: http.MethodGet,
			target: "/api/v1/products?category=" + categoryID.String() + "&search=serum&min_price=10&sort=price_asc&page=2",
		})

		require.NoError(t, NewProductHandler(ProductHandlerParams{ProductUC: productUC}).ListProducts(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var page entity.PageResult[*entity.Product]
		decodeData(t, rec, &page)
		assert.Len(t, page.Items, 1)
		assert.Equal(t, int64(21), page.Total)
	})

	t.Run("bad price", func(t *testing.T) {
		c, rec := newTestContext(testRequest{method: http.MethodGet, target: "/api/v1/products?min_price=cheap"})

		require.NoError(t, NewProductHandler(ProductHandlerParams{ProductUC: mockUsecase.NewMockProductUsecase(t)}).ListProducts(c))
		requireErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_ERROR")
	})

	t.Run("negative price", func(t *testing.T) {
		c, rec := newTestContext(testRequest{method: http.MethodGet, target: "/api/v1/products?max_price=-1"})

		require.NoError(t, NewProductHandler(ProductHandlerParams{ProductUC: mockUsecase.NewMockProductUsecase(t)}).ListProducts(c))
		requireErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_ERROR")
	})

	t.Run("bad category", func(t *testing.T) {
		c, rec := newTestContext(testRequest{method: http.MethodGet, target: "/api/v1/products?category=skincare"})

		require.NoError(t, NewProductHandler(ProductHandlerParams{ProductUC: mockUsecase.NewMockProductUsecase(t)}).ListProducts(c))
		requireErrorCode(t, rec, http.StatusBadRequest, "INVALID_ID")
	})
}

func TestProductHandler_GetProduct(t *testing.T) {
	productID := uuid.New()
	userID := uuid.New()

	tests := []struct {
		name       string
		id         string
		setupMocks func(productUC *mockUsecase.MockProductUsecase)
		wantStatus int
		wantCode   string
	}{
		{
			name: "found with viewer",
			id:   productID.String(),
			setupMocks: func(productUC *mockUsecase.MockProductUsecase) {
				productUC.On("GetProduct", mock.Anything, productID, mock.MatchedBy(func(v usecase.Viewer) bool {
					return v.UserID != nil && *v.UserID == userID
				})).Return(&usecase.ProductDetail{Product: &entity.Product{ID: productID}}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "not found",
			id:   productID.String(),
			setupMocks: func(productUC *mockUsecase.MockProductUsecase) {
				productUC.On("GetProduct", mock.Anything, productID, mock.Anything).
					Return(nil, domainerrors.ErrProductNotFound)
			},
			wantStatus: http.StatusNotFound,
			wantCode:   "PRODUCT_NOT_FOUND",
		},
		{
			name:       "invalid id",
			id:         "42",
			setupMocks: func(*mockUsecase.MockProductUsecase) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_ID",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			productUC := mockUsecase.NewMockProductUsecase(t)
			tt.setupMocks(productUC)

			c, rec := newTestContext(testRequest{
				method: http.MethodGet,
				target: "/api/v1/products/" + tt.id,
				params: map[string]string{"id": tt.id},
				userID: userID,
			})

			require.NoError(t, NewProductHandler(ProductHandlerParams{ProductUC: productUC}).GetProduct(c))
			if tt.wantCode != "" {
				requireErrorCode(t, rec, tt.wantStatus, tt.wantCode)

				return
			}
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestProductHandler_CreateProduct(t *testing.T) {
	sellerID := uuid.New()
	categoryID := uuid.New()

	t.Run("created", func(t *testing.T) {
		productUC := mockUsecase.NewMockProductUsecase(t)
		productUC.On("CreateProduct", mock.Anything, sellerID, mock.MatchedBy(func(in *usecase.ProductInput) bool {
			return in.CategoryID == categoryID && in.Name == "Night Cream" && in.Price == 25.5 && in.Quantity == 3
		})).Return(&entity.Product{ID: uuid.New(), SellerID: sellerID, Name: "Night Cream"}, nil)

		c, rec := newTestContext(testRequest{
			method: http.MethodPost,
			target: "/api/v1/seller/products",
			body:   `{"category_id":"` + categoryID.String() + `","name":"Night Cream","price":25.5,"quantity":3}`,
			userID: sellerID,
		})

		require.NoError(t, NewProductHandler(ProductHandlerParams{ProductUC: productUC}).CreateProduct(c))
		assert.Equal(t, http.StatusCreated, rec.Code)

		var product entity.Product
		decodeData(t, rec, &product)
		assert.Equal(t, sellerID, product.SellerID)
	})

	t.Run("zero price rejected", func(t *testing.T) {
		c, rec := newTestContext(testRequest{
			method: http.MethodPost,
			target: "/api/v1/seller/products",
			body:   `{"category_id":"` + categoryID.String() + `","name":"Night Cream","price":0}`,
			userID: sellerID,
		})

		require.NoError(t, NewProductHandler(ProductHandlerParams{ProductUC: mockUsecase.NewMockProductUsecase(t)}).CreateProduct(c))
		requireErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_ERROR")
	})

	t.Run("markup in name rejected", func(t *testing.T) {
		c, rec := newTestContext(testRequest{
			method: http.MethodPost,
			target: "/api/v1/seller/products",
			body:   `{"category_id":"` + categoryID.String() + `","name":"<b>Cream</b>","price":5}`,
			userID: sellerID,
		})

		require.NoError(t, NewProductHandler(ProductHandlerParams{ProductUC: mockUsecase.NewMockProductUsecase(t)}).CreateProduct(c))
		requireErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_ERROR")
	})

	t.Run("anonymous", func(t *testing.T) {
		c, rec := newTestContext(testRequest{method: http.MethodPost, target: "/api/v1/seller/products", body: `{}`})

		require.NoError(t, NewProductHandler(ProductHandlerParams{ProductUC: mockUsecase.NewMockProductUsecase(t)}).CreateProduct(c))
		requireErrorCode(t, rec, http.StatusUnauthorized, "INVALID_TOKEN")
	})
}

func TestProductHandler_AddReview(t *testing.T) {
	userID := uuid.New()
	productID := uuid.New()

	t.Run("rating out of range", func(t *testing.T) {
		c, rec := newTestContext(testRequest{
			method: http.MethodPost,
			target: "/api/v1/products/" + productID.String() + "/reviews",
			body:   `{"rating":6}`,
			params: map[string]string{"id": productID.String()},
			userID: userID,
		})

		require.NoError(t, NewProductHandler(ProductHandlerParams{ProductUC: mockUsecase.NewMockProductUsecase(t)}).AddReview(c))
		requireErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_ERROR")
	})

	t.Run("created", func(t *testing.T) {
		productUC := mockUsecase.NewMockProductUsecase(t)
		productUC.On("AddReview", mock.Anything, userID, productID, &usecase.ReviewInput{Rating: 4, Comment: "nice"}).
			Return(&entity.ProductReview{ID: uuid.New(), Rating: 4}, nil)

		c, rec := newTestContext(testRequest{
			method: http.MethodPost,
			target: "/api/v1/products/" + productID.String() + "/reviews",
			body:   `{"rating":4,"comment":"nice"}`,
			params: map[string]string{"id": productID.String()},
			userID: userID,
		})

		require.NoError(t, NewProductHandler(ProductHandlerParams{ProductUC: productUC}).AddReview(c))
		assert.Equal(t, http.StatusCreated, rec.Code)
	})
}

func TestProductHandler_DeleteProduct(t *testing.T) {
	sellerID := uuid.New()
	productID := uuid.New()

	t.Run("deleted", func(t *testing.T) {
		productUC := mockUsecase.NewMockProductUsecase(t)
		productUC.On("DeleteProduct", mock.Anything, sellerID, productID).Return(nil)

		c, rec := newTestContext(testRequest{
			method: http.MethodDelete,
			target: "/api/v1/seller/products/" + productID.String(),
			params: map[string]string{"id": productID.String()},
			userID: sellerID,
		})

		require.NoError(t, NewProductHandler(ProductHandlerParams{ProductUC: productUC}).DeleteProduct(c))
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("unexpected error goes to the error handler", func(t *testing.T) {
		productUC := mockUsecase.NewMockProductUsecase(t)
		productUC.On("DeleteProduct", mock.Anything, sellerID, productID).Return(errors.New("connection reset"))

		c, _ := newTestContext(testRequest{
			method: http.MethodDelete,
			target: "/api/v1/seller/products/" + productID.String(),
			params: map[string]string{"id": productID.String()},
			userID: sellerID,
		})

		err := NewProductHandler(ProductHandlerParams{ProductUC: productUC}).DeleteProduct(c)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "connection reset")
	})
}
