package usecase

import (
	"context"
	"testing"

	"beautymarket/internal/domain/entity"
	"beautymarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

var _ usecase.OrderUsecase = (*MockOrderUsecase)(nil)

// MockOrderUsecase is a testify mock for usecase.OrderUsecase.
type MockOrderUsecase struct {
	mock.Mock
}

// NewMockOrderUsecase creates a mock that asserts its expectations when the test ends.
func NewMockOrderUsecase(t *testing.T) *MockOrderUsecase {
	m := &MockOrderUsecase{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockOrderUsecase) CheckoutSummary(ctx context.Context, userID uuid.UUID) (*entity.Cart, error) {
	args := m.Called(ctx, userID)

	var r0 *entity.Cart
	if v := args.Get(0); v != nil {
		r0 = v.(*entity.Cart)
	}

	return r0, args.Error(1)
}

func (m *MockOrderUsecase) PlaceOrder(ctx context.Context, userID uuid.UUID, input *usecase.PlaceOrderInput) (*entity.Order, error) {
	args := m.Called(ctx, userID, input)

	var r0 *entity.Order
	if v := args.Get(0); v != nil {
		r0 = v.(*entity.Order)
	}

	return r0, args.Error(1)
}

func (m *MockOrderUsecase) ListOrders(ctx context.Context, userID uuid.UUID, page int) (*entity.PageResult[*entity.Order], error) {
	args := m.Called(ctx, userID, page)

	var r0 *entity.PageResult[*entity.Order]
	if v := args.Get(0); v != nil {
		r0 = v.(*entity.PageResult[*entity.Order])
	}

	return r0, args.Error(1)
}

func (m *MockOrderUsecase) GetOrder(ctx context.Context, userID uuid.UUID, orderID uuid.UUID) (*entity.Order, error) {
	args := m.Called(ctx, userID, orderID)

	var r0 *entity.Order
	if v := args.Get(0); v != nil {
		r0 = v.(*entity.Order)
	}

	return r0, args.Error(1)
}

func (m *MockOrderUsecase) CancelOrder(ctx context.Context, userID uuid.UUID, orderID uuid.UUID) (*entity.Order, error) {
	args := m.Called(ctx, userID, orderID)

	var r0 *entity.Order
	if v := args.Get(0); v != nil {
		r0 = v.(*entity.Order)
	}

	return r0, args.Error(1)
}

func (m *MockOrderUsecase) OrderQRCode(ctx context.Context, userID uuid.UUID, orderID uuid.UUID) ([]byte, error) {
	args := m.Called(ctx, userID, orderID)

	var r0 []byte
	if v := args.Get(0); v != nil {
		r0 = v.([]byte)
	}

	return r0, args.Error(1)
}

func (m *MockOrderUsecase) UpdateOrderStatus(ctx context.Context, adminID uuid.UUID, orderID uuid.UUID, input *usecase.UpdateOrderStatusInput) (*entity.Order, error) {
	args := m.Called(ctx, adminID, orderID, input)

	var r0 *entity.Order
	if v := args.Get(0); v != nil {
		r0 = v.(*entity.Order)
	}

	return r0, args.Error(1)
}

func (m *MockOrderUsecase) UpdatePayment(ctx context.Context, adminID uuid.UUID, orderID uuid.UUID, input *usecase.UpdatePaymentInput) (*entity.Payment, error) {
	args := m.Called(ctx, adminID, orderID, input)

	var r0 *entity.Payment
	if v := args.Get(0); v != nil {
		r0 = v.(*entity.Payment)
	}

	return r0, args.Error(1)
}

func (m *MockOrderUsecase) ConfirmDelivery(ctx context.Context, adminID uuid.UUID, qrData string) (*entity.Order, error) {
	args := m.Called(ctx, adminID, qrData)

	var r0 *entity.Order
	if v := args.Get(0); v != nil {
		r0 = v.(*entity.Order)
	}

	return r0, args.Error(1)
}
