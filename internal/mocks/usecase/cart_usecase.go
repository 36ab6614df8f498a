package usecase

import (
	"context"
	"testing"

	"beautymarket/internal/domain/entity"
	"beautymarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

var _ usecase.CartUsecase = (*MockCartUsecase)(nil)

// MockCartUsecase is a testify mock for usecase.CartUsecase.
type MockCartUsecase struct {
	mock.Mock
}

// NewMockCartUsecase creates a mock that asserts its expectations when the test ends.
func NewMockCartUsecase(t *testing.T) *MockCartUsecase {
	m := &MockCartUsecase{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockCartUsecase) GetCart(ctx context.Context, userID uuid.UUID) (*entity.Cart, error) {
	args := m.Called(ctx, userID)

	var r0 *entity.Cart
	if v := args.Get(0); v != nil {
		r0 = v.(*entity.Cart)
	}

	return r0, args.Error(1)
}

func (m *MockCartUsecase) AddToCart(ctx context.Context, userID uuid.UUID, input *usecase.AddToCartInput) (*entity.Cart, error) {
	args := m.Called(ctx, userID, input)

	var r0 *entity.Cart
	if v := args.Get(0); v != nil {
		r0 = v.(*entity.Cart)
	}

	return r0, args.Error(1)
}

func (m *MockCartUsecase) UpdateCartItem(ctx context.Context, userID uuid.UUID, itemID uuid.UUID, quantity int) (*entity.Cart, error) {
	args := m.Called(ctx, userID, itemID, quantity)

	var r0 *entity.Cart
	if v := args.Get(0); v != nil {
		r0 = v.(*entity.Cart)
	}

	return r0, args.Error(1)
}

func (m *MockCartUsecase) RemoveCartItem(ctx context.Context, userID uuid.UUID, itemID uuid.UUID) (*entity.Cart, error) {
	args := m.Called(ctx, userID, itemID)

	var r0 *entity.Cart
	if v := args.Get(0); v != nil {
		r0 = v.(*entity.Cart)
	}

	return r0, args.Error(1)
}

func (m *MockCartUsecase) ClearCart(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}
