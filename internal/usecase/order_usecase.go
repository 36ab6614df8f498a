package usecase

import (
	"context"

	"beautymarket/internal/domain/entity"

	"github.com/google/uuid"
)

// CartUsecase defines the shopping cart operations.
type CartUsecase interface {
	GetCart(ctx context.Context, userID uuid.UUID) (*entity.Cart, error)
	AddToCart(ctx context.Context, userID uuid.UUID, input *AddToCartInput) (*entity.Cart, error)
	UpdateCartItem(ctx context.Context, userID, itemID uuid.UUID, quantity int) (*entity.Cart, error)
	RemoveCartItem(ctx context.Context, userID, itemID uuid.UUID) (*entity.Cart, error)
	ClearCart(ctx context.Context, userID uuid.UUID) error
}

// OrderUsecase defines checkout, order history and fulfilment operations.
type OrderUsecase interface {
	CheckoutSummary(ctx context.Context, userID uuid.UUID) (*entity.Cart, error)
	PlaceOrder(ctx context.Context, userID uuid.UUID, input *PlaceOrderInput) (*entity.Order, error)
	ListOrders(ctx context.Context, userID uuid.UUID, page int) (*entity.PageResult[*entity.Order], error)
	GetOrder(ctx context.Context, userID, orderID uuid.UUID) (*entity.Order, error)
	CancelOrder(ctx context.Context, userID, orderID uuid.UUID) (*entity.Order, error)
	OrderQRCode(ctx context.Context, userID, orderID uuid.UUID) ([]byte, error)

	UpdateOrderStatus(ctx context.Context, adminID, orderID uuid.UUID, input *UpdateOrderStatusInput) (*entity.Order, error)
	UpdatePayment(ctx context.Context, adminID, orderID uuid.UUID, input *UpdatePaymentInput) (*entity.Payment, error)
	ConfirmDelivery(ctx context.Context, adminID uuid.UUID, qrData string) (*entity.Order, error)
}

// --- Input DTOs ---

// AddToCartInput names the product and quantity to add.
type AddToCartInput struct {
	ProductID uuid.UUID
	Quantity  int
	Client    ClientInfo
}

// PlaceOrderInput defines the checkout form.
type PlaceOrderInput struct {
	DeliveryAddress string
	PaymentMethod   string
	Client          ClientInfo
}

// UpdateOrderStatusInput moves an order to a new status.
type UpdateOrderStatusInput struct {
	Status entity.OrderStatus
	Notes  string
}

// UpdatePaymentInput records the payment outcome.
type UpdatePaymentInput struct {
	Status        entity.PaymentStatus
	TransactionID string
}
