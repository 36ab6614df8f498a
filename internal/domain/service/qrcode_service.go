package service

import (
	"github.com/google/uuid"
)

// OrderQRPayload is what an order QR code encodes.
type OrderQRPayload struct {
	OrderID     uuid.UUID
	OrderNumber string
}

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateOrderQR renders a PNG QR code identifying an order.
	GenerateOrderQR(orderID uuid.UUID, orderNumber string) ([]byte, error)

	// ParseOrderQR decodes scanned QR content.
	ParseOrderQR(qrData string) (*OrderQRPayload, error)
}
