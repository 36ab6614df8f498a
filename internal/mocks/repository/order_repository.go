package repository

import (
	"context"
	"testing"

	"beautymarket/internal/domain/entity"
	"beautymarket/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

var _ repository.OrderRepository = (*MockOrderRepository)(nil)

// MockOrderRepository is a testify mock for repository.OrderRepository.
type MockOrderRepository struct {
	mock.Mock
}

// NewMockOrderRepository creates a mock that asserts its expectations when the test ends.
func NewMockOrderRepository(t *testing.T) *MockOrderRepository {
	m := &MockOrderRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockOrderRepository) Create(ctx context.Context, order *entity.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	args := m.Called(ctx, id)

	var r0 *entity.Order
	if v := args.Get(0); v != nil {
		r0 = v.(*entity.Order)
	}

	return r0, args.Error(1)
}

func (m *MockOrderRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	args := m.Called(ctx, id)

	var r0 *entity.Order
	if v := args.Get(0); v != nil {
		r0 = v.(*entity.Order)
	}

	return r0, args.Error(1)
}

func (m *MockOrderRepository) ListByUser(ctx context.Context, userID uuid.UUID, page entity.Pagination) ([]*entity.Order, int64, error) {
	args := m.Called(ctx, userID, page)

	var r0 []*entity.Order
	if v := args.Get(0); v != nil {
		r0 = v.([]*entity.Order)
	}

	var r1 int64
	if v := args.Get(1); v != nil {
		r1 = v.(int64)
	}

	return r0, r1, args.Error(2)
}

func (m *MockOrderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockOrderRepository) AppendHistory(ctx context.Context, entry *entity.OrderStatusHistory) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockOrderRepository) FindItems(ctx context.Context, orderID uuid.UUID) ([]entity.OrderItem, error) {
	args := m.Called(ctx, orderID)

	var r0 []entity.OrderItem
	if v := args.Get(0); v != nil {
		r0 = v.([]entity.OrderItem)
	}

	return r0, args.Error(1)
}

func (m *MockOrderRepository) FindPayment(ctx context.Context, orderID uuid.UUID) (*entity.Payment, error) {
	args := m.Called(ctx, orderID)

	var r0 *entity.Payment
	if v := args.Get(0); v != nil {
		r0 = v.(*entity.Payment)
	}

	return r0, args.Error(1)
}

func (m *MockOrderRepository) UpdatePayment(ctx context.Context, payment *entity.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *MockOrderRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)

	var r0 int64
	if v := args.Get(0); v != nil {
		r0 = v.(int64)
	}

	return r0, args.Error(1)
}

func (m *MockOrderRepository) TotalRevenue(ctx context.Context) (float64, error) {
	args := m.Called(ctx)

	var r0 float64
	if v := args.Get(0); v != nil {
		r0 = v.(float64)
	}

	return r0, args.Error(1)
}
