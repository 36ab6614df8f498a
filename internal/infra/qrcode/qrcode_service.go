package qrcode

import (
	"encoding/json"

	domainerrors "beautymarket/internal/domain/errors"
	"beautymarket/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const orderQRType = "order"

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// QRCodeData represents the QR code data structure
type QRCodeData struct {
	Type        string `json:"type"`
	OrderID     string `json:"order_id"`
	OrderNumber string `json:"order_number"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateOrderQR renders the order identity as a PNG QR code.
func (s *qrcodeService) GenerateOrderQR(orderID uuid.UUID, orderNumber string) ([]byte, error) {
	jsonData, err := json.Marshal(QRCodeData{
		Type:        orderQRType,
		OrderID:     orderID.String(),
		OrderNumber: orderNumber,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal QR code data")
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParseOrderQR parses scanned QR content back into an order reference.
func (s *qrcodeService) ParseOrderQR(qrData string) (*service.OrderQRPayload, error) {
	var data QRCodeData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return nil, domainerrors.ErrInvalidQRCode.WrapMessage("failed to unmarshal QR code data")
	}

	if data.Type != orderQRType {
		return nil, domainerrors.ErrInvalidQRCode.WrapMessage("invalid QR code type: " + data.Type)
	}

	orderID, err := uuid.Parse(data.OrderID)
	if err != nil {
		return nil, domainerrors.ErrInvalidQRCode.WrapMessage("failed to parse order ID")
	}
	if data.OrderNumber == "" {
		return nil, domainerrors.ErrInvalidQRCode.WrapMessage("missing order number")
	}

	return &service.OrderQRPayload{OrderID: orderID, OrderNumber: data.OrderNumber}, nil
}
