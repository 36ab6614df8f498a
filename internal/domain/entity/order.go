package entity

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus is the fulfilment state of an order.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:    {OrderStatusProcessing, OrderStatusCancelled},
	OrderStatusProcessing: {OrderStatusShipped, OrderStatusCancelled},
	OrderStatusShipped:    {OrderStatusDelivered},
}

// IsValid checks if the OrderStatus is a known value.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	default:
		return false
	}
}

// CanTransitionTo reports whether an order may move from s to next.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}

	return false
}

// IsTerminal reports whether no further transitions are possible.
func (s OrderStatus) IsTerminal() bool {
	return len(orderTransitions[s]) == 0
}

// CartItem is one line in a user's cart. Unique per (user, product).
type CartItem struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int       `json:"quantity"`
	Product   *Product  `json:"product,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Subtotal returns price times quantity, or zero when the product is not loaded.
func (c *CartItem) Subtotal() float64 {
	if c.Product == nil {
		return 0
	}

	return RoundMoney(c.Product.Price * float64(c.Quantity))
}

// Cart is the computed view of a user's cart.
type Cart struct {
	Items     []*CartItem `json:"items"`
	Subtotal  float64     `json:"subtotal"`
	ItemCount int         `json:"item_count"`
}

// NewCart sums the given items.
func NewCart(items []*CartItem) *Cart {
	if items == nil {
		items = []*CartItem{}
	}
	cart := &Cart{Items: items}
	for _, it := range items {
		cart.Subtotal += it.Subtotal()
		cart.ItemCount += it.Quantity
	}
	cart.Subtotal = RoundMoney(cart.Subtotal)

	return cart
}

// Order is a placed purchase.
type Order struct {
	ID              uuid.UUID            `json:"id"`
	UserID          uuid.UUID            `json:"user_id"`
	OrderNumber     string               `json:"order_number"`
	TotalAmount     float64              `json:"total_amount"`
	Status          OrderStatus          `json:"status"`
	DeliveryAddress string               `json:"delivery_address"`
	Items           []OrderItem          `json:"items,omitempty"`
	History         []OrderStatusHistory `json:"history,omitempty"`
	Payment         *Payment             `json:"payment,omitempty"`
	CreatedAt       time.Time            `json:"created_at"`
	UpdatedAt       time.Time            `json:"updated_at"`
}

// ItemCount returns the total number of units in the order.
func (o *Order) ItemCount() int {
	n := 0
	for _, it := range o.Items {
		n += it.Quantity
	}

	return n
}

// OrderItem is a purchased product line with the price captured at checkout.
type OrderItem struct {
	ID          uuid.UUID `json:"id"`
	OrderID     uuid.UUID `json:"order_id"`
	ProductID   uuid.UUID `json:"product_id"`
	ProductName string    `json:"product_name"`
	Quantity    int       `json:"quantity"`
	UnitPrice   float64   `json:"unit_price"`
	TotalPrice  float64   `json:"total_price"`
}

// OrderStatusHistory records one status change of an order.
type OrderStatusHistory struct {
	ID        uuid.UUID   `json:"id"`
	OrderID   uuid.UUID   `json:"order_id"`
	Status    OrderStatus `json:"status"`
	Notes     string      `json:"notes,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
}

// PaymentStatus is the settlement state of a payment.
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusRefunded  PaymentStatus = "refunded"
)

// IsValid checks if the PaymentStatus is a known value.
func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusCompleted, PaymentStatusFailed, PaymentStatusRefunded:
		return true
	default:
		return false
	}
}

// Payment belongs to exactly one order.
type Payment struct {
	ID            uuid.UUID     `json:"id"`
	OrderID       uuid.UUID     `json:"order_id"`
	PaymentMethod string        `json:"payment_method"`
	TransactionID string        `json:"transaction_id,omitempty"`
	Amount        float64       `json:"amount"`
	Status        PaymentStatus `json:"status"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// NewOrderNumber formats an order number as ORD-YYYYMMDDHHMMSS-<suffix>.
func NewOrderNumber(now time.Time, suffix string) string {
	return "ORD-" + now.UTC().Format("20060102150405") + "-" + suffix
}
