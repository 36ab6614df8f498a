package usecase

import (
	"context"
	"testing"

	"beautymarket/internal/domain/entity"
	"beautymarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

var _ usecase.ProductUsecase = (*MockProductUsecase)(nil)

// MockProductUsecase is a testify mock for usecase.ProductUsecase.
type MockProductUsecase struct {
	mock.Mock
}

// NewMockProductUsecase creates a mock that asserts its expectations when the test ends.
func NewMockProductUsecase(t *testing.T) *MockProductUsecase {
	m := &MockProductUsecase{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockProductUsecase) Home(ctx context.Context) (*usecase.HomeOutput, error) {
	args := m.Called(ctx)

	var r0 *usecase.HomeOutput
	if v := args.Get(0); v != nil {
		r0 = v.(*usecase.HomeOutput)
	}

	return r0, args.Error(1)
}

func (m *MockProductUsecase) ListProducts(ctx context.Context, input *usecase.ProductListInput) (*entity.PageResult[*entity.Product], error) {
	args := m.Called(ctx, input)

	var r0 *entity.PageResult[*entity.Product]
	if v := args.Get(0); v != nil {
		r0 = v.(*entity.PageResult[*entity.Product])
	}

	return r0, args.Error(1)
}

func (m *MockProductUsecase) GetProduct(ctx context.Context, productID uuid.UUID, viewer usecase.Viewer) (*usecase.ProductDetail, error) {
	args := m.Called(ctx, productID, viewer)

	var r0 *usecase.ProductDetail
	if v := args.Get(0); v != nil {
		r0 = v.(*usecase.ProductDetail)
	}

	return r0, args.Error(1)
}

func (m *MockProductUsecase) PopularProducts(ctx context.Context) ([]*entity.RatedProduct, error) {
	args := m.Called(ctx)

	var r0 []*entity.RatedProduct
	if v := args.Get(0); v != nil {
		r0 = v.([]*entity.RatedProduct)
	}

	return r0, args.Error(1)
}

func (m *MockProductUsecase) FeaturedProducts(ctx context.Context) ([]*entity.RatedProduct, error) {
	args := m.Called(ctx)

	var r0 []*entity.RatedProduct
	if v := args.Get(0); v != nil {
		r0 = v.([]*entity.RatedProduct)
	}

	return r0, args.Error(1)
}

func (m *MockProductUsecase) Categories(ctx context.Context) ([]*entity.CategoryWithCount, error) {
	args := m.Called(ctx)

	var r0 []*entity.CategoryWithCount
	if v := args.Get(0); v != nil {
		r0 = v.([]*entity.CategoryWithCount)
	}

	return r0, args.Error(1)
}

func (m *MockProductUsecase) AddReview(ctx context.Context, userID uuid.UUID, productID uuid.UUID, input *usecase.ReviewInput) (*entity.ProductReview, error) {
	args := m.Called(ctx, userID, productID, input)

	var r0 *entity.ProductReview
	if v := args.Get(0); v != nil {
		r0 = v.(*entity.ProductReview)
	}

	return r0, args.Error(1)
}

func (m *MockProductUsecase) SellerProducts(ctx context.Context, sellerID uuid.UUID) ([]*entity.Product, error) {
	args := m.Called(ctx, sellerID)

	var r0 []*entity.Product
	if v := args.Get(0); v != nil {
		r0 = v.([]*entity.Product)
	}

	return r0, args.Error(1)
}

func (m *MockProductUsecase) CreateProduct(ctx context.Context, sellerID uuid.UUID, input *usecase.ProductInput) (*entity.Product, error) {
	args := m.Called(ctx, sellerID, input)

	var r0 *entity.Product
	if v := args.Get(0); v != nil {
		r0 = v.(*entity.Product)
	}

	return r0, args.Error(1)
}

func (m *MockProductUsecase) UpdateProduct(ctx context.Context, sellerID uuid.UUID, productID uuid.UUID, input *usecase.ProductInput) (*entity.Product, error) {
	args := m.Called(ctx, sellerID, productID, input)

	var r0 *entity.Product
	if v := args.Get(0); v != nil {
		r0 = v.(*entity.Product)
	}

	return r0, args.Error(1)
}

func (m *MockProductUsecase) DeleteProduct(ctx context.Context, sellerID uuid.UUID, productID uuid.UUID) error {
	args := m.Called(ctx, sellerID, productID)
	return args.Error(0)
}
