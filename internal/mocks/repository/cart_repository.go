package repository

import (
	"context"
	"testing"

	"beautymarket/internal/domain/entity"
	"beautymarket/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

var _ repository.CartRepository = (*MockCartRepository)(nil)

// MockCartRepository is a testify mock for repository.CartRepository.
type MockCartRepository struct {
	mock.Mock
}

// NewMockCartRepository creates a mock that asserts its expectations when the test ends.
func NewMockCartRepository(t *testing.T) *MockCartRepository {
	m := &MockCartRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockCartRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.CartItem, error) {
	args := m.Called(ctx, userID)

	var r0 []*entity.CartItem
	if v := args.Get(0); v != nil {
		r0 = v.([]*entity.CartItem)
	}

	return r0, args.Error(1)
}

func (m *MockCartRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.CartItem, error) {
	args := m.Called(ctx, id)

	var r0 *entity.CartItem
	if v := args.Get(0); v != nil {
		r0 = v.(*entity.CartItem)
	}

	return r0, args.Error(1)
}

func (m *MockCartRepository) FindByUserAndProduct(ctx context.Context, userID uuid.UUID, productID uuid.UUID) (*entity.CartItem, error) {
	args := m.Called(ctx, userID, productID)

	var r0 *entity.CartItem
	if v := args.Get(0); v != nil {
		r0 = v.(*entity.CartItem)
	}

	return r0, args.Error(1)
}

func (m *MockCartRepository) Create(ctx context.Context, item *entity.CartItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockCartRepository) UpdateQuantity(ctx context.Context, id uuid.UUID, quantity int) error {
	args := m.Called(ctx, id, quantity)
	return args.Error(0)
}

func (m *MockCartRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCartRepository) ClearByUser(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}
