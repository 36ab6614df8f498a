package repository

import (
	"context"

	"beautymarket/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	// ErrCartItemNotFound is returned when a cart line does not exist.
	ErrCartItemNotFound = errors.New("cart item not found")
	// ErrOrderNotFound is returned when an order does not exist.
	ErrOrderNotFound = errors.New("order not found")
	// ErrPaymentNotFound is returned when an order has no payment.
	ErrPaymentNotFound = errors.New("payment not found")
)

// CartRepository persists cart lines.
type CartRepository interface {
	// ListByUser returns the user's cart with products loaded, oldest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.CartItem, error)

	FindByID(ctx context.Context, id uuid.UUID) (*entity.CartItem, error)
	FindByUserAndProduct(ctx context.Context, userID, productID uuid.UUID) (*entity.CartItem, error)
	Create(ctx context.Context, item *entity.CartItem) error
	UpdateQuantity(ctx context.Context, id uuid.UUID, quantity int) error
	Delete(ctx context.Context, id uuid.UUID) error
	ClearByUser(ctx context.Context, userID uuid.UUID) error
}

// OrderRepository persists orders with their items, status history and payment.
type OrderRepository interface {
	// Create inserts the order and its items, history and payment.
	Create(ctx context.Context, order *entity.Order) error

	// FindByID returns the order with items, history (newest first) and payment.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// FindByIDForUpdate loads the order row with a lock, without associations.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// ListByUser returns one page of the user's orders, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID, page entity.Pagination) ([]*entity.Order, int64, error)

	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error
	AppendHistory(ctx context.Context, entry *entity.OrderStatusHistory) error

	FindItems(ctx context.Context, orderID uuid.UUID) ([]entity.OrderItem, error)

	FindPayment(ctx context.Context, orderID uuid.UUID) (*entity.Payment, error)
	UpdatePayment(ctx context.Context, payment *entity.Payment) error

	Count(ctx context.Context) (int64, error)

	// TotalRevenue sums non-cancelled orders.
	TotalRevenue(ctx context.Context) (float64, error)
}
