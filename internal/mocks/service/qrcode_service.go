package service

import (
	"testing"

	"beautymarket/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

var _ service.QRCodeService = (*MockQRCodeService)(nil)

// MockQRCodeService is a testify mock for service.QRCodeService.
type MockQRCodeService struct {
	mock.Mock
}

// NewMockQRCodeService creates a mock that asserts its expectations when the test ends.
func NewMockQRCodeService(t *testing.T) *MockQRCodeService {
	m := &MockQRCodeService{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockQRCodeService) GenerateOrderQR(orderID uuid.UUID, orderNumber string) ([]byte, error) {
	args := m.Called(orderID, orderNumber)

	var r0 []byte
	if v := args.Get(0); v != nil {
		r0 = v.([]byte)
	}

	return r0, args.Error(1)
}

func (m *MockQRCodeService) ParseOrderQR(qrData string) (*service.OrderQRPayload, error) {
	args := m.Called(qrData)

	var r0 *service.OrderQRPayload
	if v := args.Get(0); v != nil {
		r0 = v.(*service.OrderQRPayload)
	}

	return r0, args.Error(1)
}
