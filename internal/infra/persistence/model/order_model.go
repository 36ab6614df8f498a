package model

import (
	"time"

	"github.com/google/uuid"
)

// CartItemModel mirrors the 'cart_items' table. One line per (user, product).
type CartItemModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_cart_user_product"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_cart_user_product"`
	Quantity  int       `gorm:"not null;check:quantity > 0"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Product *ProductModel `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (CartItemModel) TableName() string {
	return "cart_items"
}

// OrderModel mirrors the 'orders' table.
type OrderModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID          uuid.UUID `gorm:"type:uuid;not null;index"`
	OrderNumber     string    `gorm:"type:varchar(40);uniqueIndex;not null"`
	TotalAmount     float64   `gorm:"type:numeric(12,2);not null"`
	Status          string    `gorm:"type:varchar(20);not null;default:pending;index"`
	DeliveryAddress string    `gorm:"type:text;not null"`
	CreatedAt       time.Time `gorm:"index"`
	UpdatedAt       time.Time

	Items   []OrderItemModel          `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	History []OrderStatusHistoryModel `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Payment *PaymentModel             `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel mirrors the 'order_items' table. Prices are captured at checkout.
type OrderItemModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	OrderID     uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductID   uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductName string    `gorm:"type:varchar(200);not null"`
	Quantity    int       `gorm:"not null"`
	UnitPrice   float64   `gorm:"type:numeric(12,2);not null"`
	TotalPrice  float64   `gorm:"type:numeric(12,2);not null"`
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}

// OrderStatusHistoryModel mirrors the 'order_status_history' table.
type OrderStatusHistoryModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	OrderID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Status    string    `gorm:"type:varchar(20);not null"`
	Notes     string    `gorm:"type:text"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderStatusHistoryModel) TableName() string {
	return "order_status_history"
}

// PaymentModel mirrors the 'payments' table. One payment per order.
type PaymentModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	OrderID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	PaymentMethod string    `gorm:"type:varchar(50);not null"`
	TransactionID string    `gorm:"type:varchar(100)"`
	Amount        float64   `gorm:"type:numeric(12,2);not null"`
	Status        string    `gorm:"type:varchar(20);not null;default:pending"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (PaymentModel) TableName() string {
	return "payments"
}
