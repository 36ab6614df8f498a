package repository

import (
	"context"
	"testing"

	"beautymarket/internal/domain/entity"
	"beautymarket/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

var _ repository.ProductRepository = (*MockProductRepository)(nil)

// MockProductRepository is a testify mock for repository.ProductRepository.
type MockProductRepository struct {
	mock.Mock
}

// NewMockProductRepository creates a mock that asserts its expectations when the test ends.
func NewMockProductRepository(t *testing.T) *MockProductRepository {
	m := &MockProductRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockProductRepository) Create(ctx context.Context, product *entity.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Update(ctx context.Context, product *entity.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) ReplaceImages(ctx context.Context, productID uuid.UUID, images []entity.ProductImage) error {
	args := m.Called(ctx, productID, images)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	args := m.Called(ctx, id)

	var r0 *entity.Product
	if v := args.Get(0); v != nil {
		r0 = v.(*entity.Product)
	}

	return r0, args.Error(1)
}

func (m *MockProductRepository) List(ctx context.Context, filter repository.ProductFilter) ([]*entity.Product, int64, error) {
	args := m.Called(ctx, filter)

	var r0 []*entity.Product
	if v := args.Get(0); v != nil {
		r0 = v.([]*entity.Product)
	}

	var r1 int64
	if v := args.Get(1); v != nil {
		r1 = v.(int64)
	}

	return r0, r1, args.Error(2)
}

func (m *MockProductRepository) FindRelated(ctx context.Context, categoryID uuid.UUID, excludeID uuid.UUID, limit int) ([]*entity.Product, error) {
	args := m.Called(ctx, categoryID, excludeID, limit)

	var r0 []*entity.Product
	if v := args.Get(0); v != nil {
		r0 = v.([]*entity.Product)
	}

	return r0, args.Error(1)
}

func (m *MockProductRepository) FindPopular(ctx context.Context, limit int) ([]*entity.RatedProduct, error) {
	args := m.Called(ctx, limit)

	var r0 []*entity.RatedProduct
	if v := args.Get(0); v != nil {
		r0 = v.([]*entity.RatedProduct)
	}

	return r0, args.Error(1)
}

func (m *MockProductRepository) FindFeatured(ctx context.Context, minReviews int, minRating float64, limit int) ([]*entity.RatedProduct, error) {
	args := m.Called(ctx, minReviews, minRating, limit)

	var r0 []*entity.RatedProduct
	if v := args.Get(0); v != nil {
		r0 = v.([]*entity.RatedProduct)
	}

	return r0, args.Error(1)
}

func (m *MockProductRepository) LockForUpdate(ctx context.Context, ids []uuid.UUID) ([]*entity.Product, error) {
	args := m.Called(ctx, ids)

	var r0 []*entity.Product
	if v := args.Get(0); v != nil {
		r0 = v.([]*entity.Product)
	}

	return r0, args.Error(1)
}

func (m *MockProductRepository) AdjustStock(ctx context.Context, id uuid.UUID, delta int) error {
	args := m.Called(ctx, id, delta)
	return args.Error(0)
}

func (m *MockProductRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	args := m.Called(ctx, id, active)
	return args.Error(0)
}

func (m *MockProductRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)

	var r0 int64
	if v := args.Get(0); v != nil {
		r0 = v.(int64)
	}

	return r0, args.Error(1)
}
