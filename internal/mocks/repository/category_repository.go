package repository

import (
	"context"
	"testing"

	"beautymarket/internal/domain/entity"
	"beautymarket/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

var _ repository.CategoryRepository = (*MockCategoryRepository)(nil)

// MockCategoryRepository is a testify mock for repository.CategoryRepository.
type MockCategoryRepository struct {
	mock.Mock
}

// NewMockCategoryRepository creates a mock that asserts its expectations when the test ends.
func NewMockCategoryRepository(t *testing.T) *MockCategoryRepository {
	m := &MockCategoryRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockCategoryRepository) Create(ctx context.Context, category *entity.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) Update(ctx context.Context, category *entity.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	args := m.Called(ctx, id)

	var r0 *entity.Category
	if v := args.Get(0); v != nil {
		r0 = v.(*entity.Category)
	}

	return r0, args.Error(1)
}

func (m *MockCategoryRepository) ListActive(ctx context.Context) ([]*entity.Category, error) {
	args := m.Called(ctx)

	var r0 []*entity.Category
	if v := args.Get(0); v != nil {
		r0 = v.([]*entity.Category)
	}

	return r0, args.Error(1)
}

func (m *MockCategoryRepository) ListWithCounts(ctx context.Context) ([]*entity.CategoryWithCount, error) {
	args := m.Called(ctx)

	var r0 []*entity.CategoryWithCount
	if v := args.Get(0); v != nil {
		r0 = v.([]*entity.CategoryWithCount)
	}

	return r0, args.Error(1)
}
